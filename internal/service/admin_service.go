package service

import (
	"context"

	"teampulse/internal/model"
	"teampulse/internal/repository"
)

const overviewWindowDays = 14

// AdminService assembles the team overview for the admin dashboard.
type AdminService struct {
	userRepo repository.UserRepo
	wellness *WellnessService
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo repository.UserRepo, wellness *WellnessService) *AdminService {
	return &AdminService{userRepo: userRepo, wellness: wellness}
}

// ListOverviews returns every user with their rolling score, risk tier
// and whether an early signal is currently firing. Per-user analytics
// failures degrade that row rather than failing the whole listing.
func (s *AdminService) ListOverviews(ctx context.Context) ([]model.UserOverview, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]model.UserOverview, 0, len(users))
	for _, u := range users {
		overview := model.UserOverview{User: *u, RiskLevel: model.RiskLow}

		if score, err := s.wellness.GetRollingScore(ctx, u.ID, overviewWindowDays); err == nil {
			overview.RollingScore = score
		}
		if report, err := s.wellness.GetMetrics(ctx, u.ID, benchmarkWindowDays); err == nil && report != nil {
			overview.RiskLevel = report.Risk
		}
		if signal, err := s.wellness.GetEarlySignal(ctx, u.ID); err == nil && signal != nil {
			overview.HasSignal = true
		}
		overviews = append(overviews, overview)
	}
	return overviews, nil
}

// UserSignal returns the early signal detail for one user, or nil when
// the user is unknown or the detector has not fired.
func (s *AdminService) UserSignal(ctx context.Context, userID string) (*model.User, *model.EarlySignal, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, nil
	}
	signal, err := s.wellness.GetEarlySignal(ctx, userID)
	if err != nil {
		return user, nil, err
	}
	return user, signal, nil
}
