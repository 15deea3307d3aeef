package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"community-events/internal/clock"
	"community-events/internal/model"
	"community-events/internal/notify"
	"community-events/internal/repository"
	apperrors "community-events/pkg/app_errors"
	"community-events/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateEventInput is the validated submission for a new event request.
type CreateEventInput struct {
	Name          string
	StartTime     time.Time
	EndTime       time.Time
	Type          string
	EstimatedSize string
	ContactName   string
	ContactPhone  string
	Details       string
	URL           string
	Fee           string
	Notes         string
	Rooms         []string
}

// EventService is the single mutation funnel for events. Every transition
// takes the acting handle explicitly, persists atomically and appends an
// audit log entry; transitions that land on approved additionally notify the
// owner. Authorization is the caller's responsibility.
type EventService interface {
	Create(ctx context.Context, actor string, in CreateEventInput) (*model.Event, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)

	ApprovedUpcoming(ctx context.Context) ([]*model.Event, error)
	PendingUpcoming(ctx context.Context) ([]*model.Event, error)
	Past(ctx context.Context) ([]*model.Event, error)
	Mine(ctx context.Context, member string) ([]*model.Event, error)
	CalendarEvents(ctx context.Context) ([]*model.Event, error)

	Approve(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error)
	Cancel(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error)
	Expire(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error)
	Delete(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error)
	Undelete(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error)
	AddStaff(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error)
	RemoveStaff(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error)

	MarkReminded(ctx context.Context, event *model.Event) error
}

var phonePattern = regexp.MustCompile(`^[0-9+][0-9\-\.\s()]{6,19}$`)

type EventServiceImpl struct {
	repo  repository.EventRepository
	queue notify.Queue
	clock clock.Clock
	log   *zap.Logger
}

func NewEventService(repo repository.EventRepository, queue notify.Queue, clk clock.Clock) EventService {
	return &EventServiceImpl{
		repo:  repo,
		queue: queue,
		clock: clk,
		log:   logger.WithComponent("event"),
	}
}

func (s *EventServiceImpl) Create(ctx context.Context, actor string, in CreateEventInput) (*model.Event, error) {
	if err := validateCreate(actor, in); err != nil {
		return nil, err
	}

	expires := s.clock.Now().AddDate(0, 0, model.PendingLifetimeDays)
	event := &model.Event{
		EventID:       uuid.New(),
		Name:          in.Name,
		Member:        actor,
		StartTime:     in.StartTime,
		EndTime:       in.EndTime,
		Status:        model.StatusPending,
		Staff:         []string{},
		Rooms:         in.Rooms,
		Details:       in.Details,
		Notes:         in.Notes,
		URL:           in.URL,
		Fee:           in.Fee,
		Type:          in.Type,
		EstimatedSize: in.EstimatedSize,
		ContactName:   in.ContactName,
		ContactPhone:  in.ContactPhone,
		Expired:       &expires,
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info("event submitted", zap.String("actor", actor), zap.String("event", created.Name))
	s.publish(ctx, notify.KindOwnerConfirmation, created)
	if !created.IsStaffed() {
		s.publish(ctx, notify.KindStaffNeeded, created)
	}
	s.publish(ctx, notify.KindNewEvent, created)
	return created, nil
}

func validateCreate(actor string, in CreateEventInput) error {
	if actor == "" {
		return fmt.Errorf("%w: missing submitter", apperrors.ErrValidation)
	}
	if in.Name == "" || in.Type == "" || in.ContactName == "" {
		return fmt.Errorf("%w: name, type and contact name are required", apperrors.ErrValidation)
	}
	if in.EndTime.Before(in.StartTime) {
		return fmt.Errorf("%w: end time must be after start time", apperrors.ErrValidation)
	}
	size, err := strconv.Atoi(in.EstimatedSize)
	if err != nil || size <= 0 {
		return fmt.Errorf("%w: estimated size must be a positive number", apperrors.ErrValidation)
	}
	if !phonePattern.MatchString(in.ContactPhone) {
		return fmt.Errorf("%w: contact phone is not a valid phone number", apperrors.ErrValidation)
	}
	for _, room := range in.Rooms {
		if _, ok := model.RoomOptions[room]; !ok {
			return fmt.Errorf("%w: unknown room %q", apperrors.ErrValidation, room)
		}
	}
	return nil
}

func (s *EventServiceImpl) GetByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	return s.repo.FindByEventID(ctx, eventID)
}

func (s *EventServiceImpl) ApprovedUpcoming(ctx context.Context) ([]*model.Event, error) {
	return s.repo.ApprovedUpcoming(ctx, s.clock.Today())
}

func (s *EventServiceImpl) PendingUpcoming(ctx context.Context) ([]*model.Event, error) {
	return s.repo.PendingUpcoming(ctx, s.clock.Today())
}

func (s *EventServiceImpl) Past(ctx context.Context) ([]*model.Event, error) {
	return s.repo.Past(ctx, s.clock.Today())
}

func (s *EventServiceImpl) Mine(ctx context.Context, member string) ([]*model.Event, error) {
	return s.repo.Mine(ctx, member)
}

func (s *EventServiceImpl) CalendarEvents(ctx context.Context) ([]*model.Event, error) {
	return s.repo.CalendarEvents(ctx)
}

// transition loads the event, applies mutate, persists the result and writes
// the audit entry. Landing on approved always notifies the owner, including
// on re-approval.
func (s *EventServiceImpl) transition(
	ctx context.Context,
	actor string,
	eventID uuid.UUID,
	action string,
	mutate func(*model.Event),
) (*model.Event, error) {
	event, err := s.repo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	mutate(event)
	event.UpdatedAt = s.clock.Now()

	updated, err := s.repo.Update(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("%s event: %w", action, err)
	}

	s.log.Info("event "+action,
		zap.String("actor", actor),
		zap.String("event", updated.Name),
		zap.String("status", string(updated.Status)))

	if updated.Status == model.StatusApproved {
		s.publish(ctx, notify.KindOwnerApproved, updated)
	}
	return updated, nil
}

func (s *EventServiceImpl) Approve(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return s.transition(ctx, actor, eventID, "approved", func(e *model.Event) {
		e.Approve()
	})
}

func (s *EventServiceImpl) Cancel(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return s.transition(ctx, actor, eventID, "canceled", func(e *model.Event) {
		e.Cancel()
	})
}

func (s *EventServiceImpl) Expire(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return s.transition(ctx, actor, eventID, "expired", func(e *model.Event) {
		e.Expire(s.clock.Now())
	})
}

func (s *EventServiceImpl) Delete(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return s.transition(ctx, actor, eventID, "deleted", func(e *model.Event) {
		e.Delete()
	})
}

func (s *EventServiceImpl) Undelete(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return s.transition(ctx, actor, eventID, "undeleted", func(e *model.Event) {
		e.Undelete()
	})
}

func (s *EventServiceImpl) AddStaff(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return s.transition(ctx, actor, eventID, "staffed", func(e *model.Event) {
		e.AddStaff(actor)
	})
}

func (s *EventServiceImpl) RemoveStaff(ctx context.Context, actor string, eventID uuid.UUID) (*model.Event, error) {
	return s.transition(ctx, actor, eventID, "unstaffed", func(e *model.Event) {
		e.RemoveStaff(actor)
	})
}

func (s *EventServiceImpl) MarkReminded(ctx context.Context, event *model.Event) error {
	if err := s.repo.SetReminded(ctx, event.ID, s.clock.Now()); err != nil {
		return err
	}
	event.Reminded = true
	return nil
}

func (s *EventServiceImpl) publish(ctx context.Context, kind notify.Kind, event *model.Event) {
	if err := s.queue.Publish(ctx, &notify.Message{Kind: kind, Event: event}); err != nil {
		s.log.Warn("notification publish failed",
			zap.String("kind", string(kind)),
			zap.String("event", event.Name),
			zap.Error(err))
	}
}
