package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"teampulse/internal/service"
	"teampulse/internal/transport/rest/handler"
	"teampulse/internal/transport/rest/middleware"
	"teampulse/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService     *service.AuthService
	UserService     *service.UserService
	CheckinService  *service.CheckinService
	AnswerService   *service.AnswerService
	WellnessService *service.WellnessService
	PlanService     *service.PlanService
	AdminService    *service.AdminService
	WSHub           *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService, c.UserService)
	checkinHandler := handler.NewCheckinHandler(c.CheckinService, c.AnswerService, c.UserService)
	wellnessHandler := handler.NewWellnessHandler(c.WellnessService, c.PlanService, c.UserService)
	adminHandler := handler.NewAdminHandler(c.AdminService, c.UserService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")

	// WebSocket routes (public with token in query param)
	v1.HandleFunc("/ws/feed", wsHandler.FeedWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// User routes (require user auth)
	userRoutes := v1.NewRoute().Subrouter()
	userRoutes.Use(authMW.RequireUser)

	userRoutes.HandleFunc("/checkins/today", checkinHandler.Today).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/checkins/schedule", checkinHandler.Schedule).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/checkins/answers", checkinHandler.SubmitAnswers).Methods("POST", "OPTIONS")
	userRoutes.HandleFunc("/checkins/streak", checkinHandler.Streak).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/wellness/metrics", wellnessHandler.Metrics).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/wellness/score", wellnessHandler.Score).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/wellness/signal", wellnessHandler.Signal).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/wellness/correlations", wellnessHandler.Correlations).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/wellness/benchmark", wellnessHandler.Benchmark).Methods("GET", "OPTIONS")
	userRoutes.HandleFunc("/wellness/plan", wellnessHandler.Plan).Methods("GET", "OPTIONS")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/auth/token", authHandler.IssueUserToken).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/admin/users", adminHandler.ListUsers).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/admin/users", adminHandler.CreateUser).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/admin/users/{userId}/signal", adminHandler.UserSignal).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/admin/users/{userId}/goals", adminHandler.UpdateGoals).Methods("PUT", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
