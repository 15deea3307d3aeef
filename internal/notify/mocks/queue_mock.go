package mocks

import (
	"context"

	"community-events/internal/notify"

	"github.com/stretchr/testify/mock"
)

type QueueMock struct {
	mock.Mock
}

func NewQueueMock() *QueueMock {
	return &QueueMock{}
}

func (m *QueueMock) Publish(ctx context.Context, msg *notify.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *QueueMock) Subscribe(ctx context.Context) (<-chan notify.Delivery, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan notify.Delivery), args.Error(1)
}
