package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"roombot/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStateRepository struct {
	mock.Mock
}

func (m *mockStateRepository) GetState(ctx context.Context, userID int64) (*models.FormState, error) {
	args := m.Called(ctx, userID)
	if state := args.Get(0); state != nil {
		return state.(*models.FormState), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStateRepository) SetState(ctx context.Context, state *models.FormState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *mockStateRepository) ClearState(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockStateRepository) CheckRateLimit(ctx context.Context, userID int64, limit int, window time.Duration) (bool, error) {
	args := m.Called(ctx, userID, limit, window)
	return args.Bool(0), args.Error(1)
}

func newTestStateService(repo *mockStateRepository) *StateService {
	logger := zerolog.New(io.Discard)
	return NewStateService(repo, &logger)
}

func TestGetFormState(t *testing.T) {
	repo := &mockStateRepository{}
	svc := newTestStateService(repo)

	want := &models.FormState{UserID: 42, CurrentStep: models.StateEnterUsername}
	repo.On("GetState", mock.Anything, int64(42)).Return(want, nil)

	got, err := svc.GetFormState(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
}

func TestGetFormStateError(t *testing.T) {
	repo := &mockStateRepository{}
	svc := newTestStateService(repo)

	repo.On("GetState", mock.Anything, int64(42)).Return(nil, errors.New("redis down"))

	_, err := svc.GetFormState(context.Background(), 42)
	assert.Error(t, err)
}

func TestSetFormState(t *testing.T) {
	repo := &mockStateRepository{}
	svc := newTestStateService(repo)

	repo.On("SetState", mock.Anything, mock.MatchedBy(func(state *models.FormState) bool {
		return state.UserID == 42 &&
			state.CurrentStep == models.StateEnterCapacity &&
			state.Fields["room_name"] == "R1"
	})).Return(nil)

	err := svc.SetFormState(context.Background(), 42, models.StateEnterCapacity, map[string]interface{}{"room_name": "R1"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestClearFormState(t *testing.T) {
	repo := &mockStateRepository{}
	svc := newTestStateService(repo)

	repo.On("ClearState", mock.Anything, int64(42)).Return(nil)

	require.NoError(t, svc.ClearFormState(context.Background(), 42))
	repo.AssertExpectations(t)
}

func TestCheckRateLimit(t *testing.T) {
	repo := &mockStateRepository{}
	svc := newTestStateService(repo)

	repo.On("CheckRateLimit", mock.Anything, int64(42), 20, time.Minute).Return(false, nil)

	allowed, err := svc.CheckRateLimit(context.Background(), 42, 20, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)
	repo.AssertExpectations(t)
}
