package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"teampulse/internal/model"
	"teampulse/internal/service"
)

// AdminHandler handles the admin dashboard endpoints
type AdminHandler struct {
	adminSvc *service.AdminService
	userSvc  *service.UserService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminSvc *service.AdminService, userSvc *service.UserService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc, userSvc: userSvc}
}

// ListUsers handles GET /v1/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	overviews, err := h.adminSvc.ListOverviews(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	if overviews == nil {
		overviews = []model.UserOverview{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"users": overviews})
}

type createUserRequest struct {
	Name      string `json:"name"`
	Team      string `json:"team,omitempty"`
	Frequency string `json:"frequency,omitempty"`
}

// CreateUser handles POST /v1/admin/users
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userSvc.Create(r.Context(), req.Name, req.Team, req.Frequency)
	if err != nil {
		if err == service.ErrNameRequired {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// UserSignal handles GET /v1/admin/users/{userId}/signal
func (h *AdminHandler) UserSignal(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	user, signal, err := h.adminSvc.UserSignal(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to evaluate signal")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":     user,
		"detected": signal != nil,
		"signal":   signal,
	})
}

type updateGoalsRequest struct {
	Goals model.GoalSettings `json:"goals"`
}

// UpdateGoals handles PUT /v1/admin/users/{userId}/goals
func (h *AdminHandler) UpdateGoals(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var req updateGoalsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.userSvc.Get(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load user")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	if err := h.userSvc.UpdateGoals(r.Context(), userID, req.Goals); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update goals")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}
