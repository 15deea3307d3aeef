package mocks

import (
	"context"

	"community-events/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type FeedbackServiceMock struct {
	mock.Mock
}

func NewFeedbackServiceMock() *FeedbackServiceMock {
	return &FeedbackServiceMock{}
}

func (m *FeedbackServiceMock) Create(ctx context.Context, actor string, eventID uuid.UUID, rating int, comment string) (*model.Feedback, error) {
	args := m.Called(ctx, actor, eventID, rating, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Feedback), args.Error(1)
}

func (m *FeedbackServiceMock) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]*model.Feedback, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Feedback), args.Error(1)
}
