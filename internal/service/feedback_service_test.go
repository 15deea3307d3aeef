package service_test

import (
	"context"
	"testing"

	"community-events/internal/model"
	repoMocks "community-events/internal/repository/mocks"
	"community-events/internal/service"
	apperrors "community-events/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupFeedbackService(t *testing.T) (*repoMocks.FeedbackRepositoryMock, *repoMocks.EventRepositoryMock, service.FeedbackService) {
	t.Helper()
	repo := repoMocks.NewFeedbackRepositoryMock()
	eventRepo := repoMocks.NewEventRepositoryMock()
	svc := service.NewFeedbackService(repo, eventRepo)
	return repo, eventRepo, svc
}

func TestFeedbackService_Create(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")

	t.Run("Success", func(t *testing.T) {
		repo, eventRepo, svc := setupFeedbackService(t)

		eventRepo.On("FindByEventID", ctx, eventID).
			Return(&model.Event{ID: 7, EventID: eventID, Name: "Open House"}, nil).Once()
		repo.On("Create", ctx, mock.MatchedBy(func(f *model.Feedback) bool {
			return f.EventID == 7 && f.User == "jane.doe" && f.Rating == 4
		})).Return(&model.Feedback{ID: 1, EventID: 7, User: "jane.doe", Rating: 4}, nil).Once()

		created, err := svc.Create(ctx, "jane.doe", eventID, 4, "Great venue")

		require.NoError(t, err)
		assert.Equal(t, 4, created.Rating)
		repo.AssertExpectations(t)
		eventRepo.AssertExpectations(t)
	})

	t.Run("Failed - anonymous", func(t *testing.T) {
		_, _, svc := setupFeedbackService(t)

		_, err := svc.Create(ctx, "", eventID, 4, "")

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Failed - rating out of range", func(t *testing.T) {
		_, _, svc := setupFeedbackService(t)

		_, err := svc.Create(ctx, "jane.doe", eventID, 0, "")
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, err = svc.Create(ctx, "jane.doe", eventID, 6, "")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("Failed - unknown event", func(t *testing.T) {
		repo, eventRepo, svc := setupFeedbackService(t)

		eventRepo.On("FindByEventID", ctx, eventID).
			Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.Create(ctx, "jane.doe", eventID, 4, "")

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestFeedbackService_ListByEvent(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.MustParse("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11")

	t.Run("Success - resolves uuid to the internal id", func(t *testing.T) {
		repo, eventRepo, svc := setupFeedbackService(t)

		eventRepo.On("FindByEventID", ctx, eventID).
			Return(&model.Event{ID: 7, EventID: eventID}, nil).Once()
		repo.On("ListByEventID", ctx, 7).
			Return([]*model.Feedback{{ID: 1, EventID: 7, Rating: 5}}, nil).Once()

		feedback, err := svc.ListByEvent(ctx, eventID)

		require.NoError(t, err)
		require.Len(t, feedback, 1)
		repo.AssertExpectations(t)
	})
}
