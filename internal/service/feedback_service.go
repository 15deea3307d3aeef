package service

import (
	"context"
	"fmt"

	"community-events/internal/model"
	"community-events/internal/repository"
	apperrors "community-events/pkg/app_errors"

	"github.com/google/uuid"
)

type FeedbackService interface {
	Create(ctx context.Context, actor string, eventID uuid.UUID, rating int, comment string) (*model.Feedback, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Feedback, error)
}

type FeedbackServiceImpl struct {
	repo      repository.FeedbackRepository
	eventRepo repository.EventRepository
}

func NewFeedbackService(repo repository.FeedbackRepository, eventRepo repository.EventRepository) FeedbackService {
	return &FeedbackServiceImpl{repo: repo, eventRepo: eventRepo}
}

func (s *FeedbackServiceImpl) Create(ctx context.Context, actor string, eventID uuid.UUID, rating int, comment string) (*model.Feedback, error) {
	if actor == "" {
		return nil, fmt.Errorf("%w: missing submitter", apperrors.ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", apperrors.ErrValidation)
	}

	event, err := s.eventRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	feedback := &model.Feedback{
		FeedbackID: uuid.New(),
		EventID:    event.ID,
		User:       actor,
		Rating:     rating,
		Comment:    comment,
	}
	return s.repo.Create(ctx, feedback)
}

func (s *FeedbackServiceImpl) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Feedback, error) {
	event, err := s.eventRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByEventID(ctx, event.ID)
}
