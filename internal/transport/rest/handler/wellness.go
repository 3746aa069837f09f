package handler

import (
	"net/http"
	"strconv"

	"teampulse/internal/model"
	"teampulse/internal/service"
	"teampulse/internal/transport/rest/middleware"
)

const (
	defaultMetricsPeriodDays = 7
	defaultScoreWindowDays   = 14
)

// WellnessHandler handles the analytics endpoints
type WellnessHandler struct {
	wellnessSvc *service.WellnessService
	planSvc     *service.PlanService
	userSvc     *service.UserService
}

// NewWellnessHandler creates a new wellness handler
func NewWellnessHandler(wellnessSvc *service.WellnessService, planSvc *service.PlanService, userSvc *service.UserService) *WellnessHandler {
	return &WellnessHandler{
		wellnessSvc: wellnessSvc,
		planSvc:     planSvc,
		userSvc:     userSvc,
	}
}

// Metrics handles GET /v1/wellness/metrics?period=7d|30d
func (h *WellnessHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	periodDays := defaultMetricsPeriodDays
	if r.URL.Query().Get("period") == "30d" {
		periodDays = 30
	}

	report, err := h.wellnessSvc.GetMetrics(r.Context(), userID, periodDays)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute metrics")
		return
	}
	if report == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"available": false,
			"reason":    "not enough answers yet",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"available": true,
		"metrics":   report.Metrics,
		"risk":      report.Risk,
	})
}

// Score handles GET /v1/wellness/score?window=14
func (h *WellnessHandler) Score(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	windowDays := defaultScoreWindowDays
	if raw := r.URL.Query().Get("window"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 90 {
			windowDays = n
		}
	}

	score, err := h.wellnessSvc.GetRollingScore(r.Context(), userID, windowDays)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute score")
		return
	}

	writeJSON(w, http.StatusOK, score)
}

// Signal handles GET /v1/wellness/signal
func (h *WellnessHandler) Signal(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	signal, err := h.wellnessSvc.GetEarlySignal(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to evaluate signal")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"detected": signal != nil,
		"signal":   signal,
	})
}

// Correlations handles GET /v1/wellness/correlations
func (h *WellnessHandler) Correlations(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	insights, err := h.wellnessSvc.GetCorrelations(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute correlations")
		return
	}
	if insights == nil {
		insights = []model.CorrelationInsight{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"insights": insights})
}

// Benchmark handles GET /v1/wellness/benchmark
func (h *WellnessHandler) Benchmark(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	benchmark, err := h.wellnessSvc.GetSelfBenchmark(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute benchmark")
		return
	}
	if benchmark == nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"available": false,
			"reason":    "not enough answers this week",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"available": true,
		"benchmark": benchmark,
	})
}

// Plan handles GET /v1/wellness/plan
func (h *WellnessHandler) Plan(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	goals := model.DefaultGoals()
	if user, err := h.userSvc.Get(r.Context(), userID); err == nil && user != nil {
		goals = user.Goals
	}

	plan, err := h.planSvc.GenerateDaily(r.Context(), userID, goals)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate plan")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"items": plan})
}
