package mocks

import (
	"context"

	"community-events/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type FeedbackRepositoryMock struct {
	mock.Mock
}

func NewFeedbackRepositoryMock() *FeedbackRepositoryMock {
	return &FeedbackRepositoryMock{}
}

func (m *FeedbackRepositoryMock) Create(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error) {
	args := m.Called(ctx, feedback)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *FeedbackRepositoryMock) FindByFeedbackID(ctx context.Context, feedbackID uuid.UUID) (*model.Feedback, error) {
	args := m.Called(ctx, feedbackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *FeedbackRepositoryMock) ListByEventID(ctx context.Context, eventID int) ([]*model.Feedback, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Feedback), args.Error(1)
}
