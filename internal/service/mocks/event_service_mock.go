package mocks

import (
	"context"

	"community-events/internal/model"
	"community-events/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type EventServiceMock struct {
	mock.Mock
}

func NewEventServiceMock() *EventServiceMock {
	return &EventServiceMock{}
}

func (m *EventServiceMock) event(args mock.Arguments) (*model.Event, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventServiceMock) events(args mock.Arguments) ([]*model.Event, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Event), args.Error(1)
}

func (m *EventServiceMock) Create(ctx context.Context, actor string, in service.CreateEventInput) (*model.Event, error) {
	return m.event(m.Called(ctx, actor, in))
}

func (m *EventServiceMock) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	return m.event(m.Called(ctx, eventID))
}

func (m *EventServiceMock) ApprovedUpcoming(ctx context.Context) ([]*model.Event, error) {
	return m.events(m.Called(ctx))
}

func (m *EventServiceMock) PendingUpcoming(ctx context.Context) ([]*model.Event, error) {
	return m.events(m.Called(ctx))
}

func (m *EventServiceMock) Past(ctx context.Context) ([]*model.Event, error) {
	return m.events(m.Called(ctx))
}

func (m *EventServiceMock) Mine(ctx context.Context, member string) ([]*model.Event, error) {
	return m.events(m.Called(ctx, member))
}

func (m *EventServiceMock) CalendarEvents(ctx context.Context) ([]*model.Event, error) {
	return m.events(m.Called(ctx))
}

func (m *EventServiceMock) Approve(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return m.event(m.Called(ctx, actor, eventID))
}

func (m *EventServiceMock) Cancel(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return m.event(m.Called(ctx, actor, eventID))
}

func (m *EventServiceMock) Expire(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return m.event(m.Called(ctx, actor, eventID))
}

func (m *EventServiceMock) Delete(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return m.event(m.Called(ctx, actor, eventID))
}

func (m *EventServiceMock) Undelete(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return m.event(m.Called(ctx, actor, eventID))
}

func (m *EventServiceMock) AddStaff(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return m.event(m.Called(ctx, actor, eventID))
}

func (m *EventServiceMock) RemoveStaff(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return m.event(m.Called(ctx, actor, eventID))
}

func (m *EventServiceMock) MarkReminded(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
