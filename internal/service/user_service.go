package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"teampulse/internal/model"
	"teampulse/internal/repository"
)

var ErrNameRequired = errors.New("name is required")

// UserService manages check-in participants.
type UserService struct {
	userRepo repository.UserRepo
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepo) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create registers a new user with defaults filled in.
func (s *UserService) Create(ctx context.Context, name, team, frequency string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	user := &model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Team:      strings.TrimSpace(team),
		Frequency: model.ParseFrequency(frequency),
		Goals:     model.DefaultGoals(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns a user by ID, nil when unknown.
func (s *UserService) Get(ctx context.Context, userID string) (*model.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateGoals replaces the user's wellbeing targets.
func (s *UserService) UpdateGoals(ctx context.Context, userID string, goals model.GoalSettings) error {
	return s.userRepo.UpdateGoals(ctx, userID, goals)
}
