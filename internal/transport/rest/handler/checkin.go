package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"teampulse/internal/service"
	"teampulse/internal/transport/rest/middleware"
)

// isSubmissionError reports whether the error is a client-side
// validation failure rather than a store outage.
func isSubmissionError(err error) bool {
	return errors.Is(err, service.ErrNoAnswers) ||
		errors.Is(err, service.ErrUnknownDimension) ||
		errors.Is(err, service.ErrValueOutOfRange) ||
		errors.Is(err, service.ErrEmptyText)
}

// CheckinHandler handles check-in endpoints
type CheckinHandler struct {
	checkinSvc *service.CheckinService
	answerSvc  *service.AnswerService
	userSvc    *service.UserService
}

// NewCheckinHandler creates a new check-in handler
func NewCheckinHandler(checkinSvc *service.CheckinService, answerSvc *service.AnswerService, userSvc *service.UserService) *CheckinHandler {
	return &CheckinHandler{
		checkinSvc: checkinSvc,
		answerSvc:  answerSvc,
		userSvc:    userSvc,
	}
}

// Today handles GET /v1/checkins/today
func (h *CheckinHandler) Today(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	checkin, err := h.checkinSvc.GenerateToday(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate check-in")
		return
	}

	writeJSON(w, http.StatusOK, checkin)
}

// Schedule handles GET /v1/checkins/schedule
func (h *CheckinHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.userSvc.Get(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load user")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	schedule, err := h.checkinSvc.Schedule(r.Context(), user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute schedule")
		return
	}

	writeJSON(w, http.StatusOK, schedule)
}

type submitAnswersRequest struct {
	Answers []service.AnswerSubmission `json:"answers"`
}

// SubmitAnswers handles POST /v1/checkins/answers
func (h *CheckinHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req submitAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.answerSvc.Submit(r.Context(), userID, req.Answers)
	if err != nil {
		if isSubmissionError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, "failed to store answers")
		}
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// Streak handles GET /v1/checkins/streak
func (h *CheckinHandler) Streak(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	streak, err := h.answerSvc.Streak(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load streak")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"streak": streak})
}
