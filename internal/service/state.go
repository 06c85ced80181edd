package service

import (
	"context"
	"time"

	"roombot/internal/domain"
	"roombot/internal/models"

	"github.com/rs/zerolog"
)

// StateService управляет незавершенными формами пользователей.
type StateService struct {
	stateRepo domain.StateRepository
	logger    *zerolog.Logger
}

func NewStateService(stateRepo domain.StateRepository, logger *zerolog.Logger) *StateService {
	return &StateService{
		stateRepo: stateRepo,
		logger:    logger,
	}
}

func (s *StateService) GetFormState(ctx context.Context, userID int64) (*models.FormState, error) {
	state, err := s.stateRepo.GetState(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to get form state")
		return nil, err
	}

	return state, nil
}

func (s *StateService) SetFormState(ctx context.Context, userID int64, step string, fields map[string]interface{}) error {
	state := &models.FormState{
		UserID:      userID,
		CurrentStep: step,
		Fields:      fields,
	}
	return s.stateRepo.SetState(ctx, state)
}

func (s *StateService) ClearFormState(ctx context.Context, userID int64) error {
	return s.stateRepo.ClearState(ctx, userID)
}

func (s *StateService) CheckRateLimit(ctx context.Context, userID int64, limit int, window time.Duration) (bool, error) {
	return s.stateRepo.CheckRateLimit(ctx, userID, limit, window)
}
