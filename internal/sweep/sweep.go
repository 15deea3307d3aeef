// Package sweep holds the periodic batch jobs that drive time-based
// lifecycle transitions: expiring stale applications, warning owners ahead
// of expiration, and reminding owners of imminent approved events.
package sweep

import (
	"context"

	"community-events/internal/clock"
	"community-events/internal/model"
	"community-events/internal/notify"
	"community-events/internal/repository"
	"community-events/internal/service"
	"community-events/pkg/logger"

	"go.uber.org/zap"
)

// SystemActor is the acting identity recorded for sweep-driven transitions.
const SystemActor = "system"

type Runner struct {
	repo    repository.EventRepository
	service service.EventService
	queue   notify.Queue
	clock   clock.Clock
	log     *zap.Logger
}

func NewRunner(repo repository.EventRepository, svc service.EventService, queue notify.Queue, clk clock.Clock) *Runner {
	return &Runner{
		repo:    repo,
		service: svc,
		queue:   queue,
		clock:   clk,
		log:     logger.WithComponent("sweep"),
	}
}

// Expire transitions events whose expiration date falls within today and
// notifies each owner. Expired events no longer match the selection, so a
// second run on the same day is a no-op.
func (r *Runner) Expire(ctx context.Context) error {
	today := r.clock.Today()
	events, err := r.repo.ExpiringBetween(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	for _, event := range events {
		expired, err := r.service.Expire(ctx, SystemActor, event.EventID)
		if err != nil {
			r.log.Error("expire failed", zap.String("event", event.Name), zap.Error(err))
			continue
		}
		r.publish(ctx, notify.KindOwnerExpired, expired)
	}
	r.log.Info("expire sweep finished", zap.Int("expired", len(events)))
	return nil
}

// ExpiryWarning notifies owners whose applications expire in ten days. It
// does not mutate state and carries no dedupe flag, so re-running within the
// same day re-sends the warning: delivery is at least once.
func (r *Runner) ExpiryWarning(ctx context.Context) error {
	from := r.clock.Today().AddDate(0, 0, model.ExpiryWarningLeadDays)
	events, err := r.repo.ExpiringBetween(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return err
	}
	for _, event := range events {
		r.publish(ctx, notify.KindOwnerExpiring, event)
	}
	r.log.Info("expiry-warning sweep finished", zap.Int("warned", len(events)))
	return nil
}

// Remind notifies owners of approved events starting within three days,
// provided the application is at least two days old. The reminded flag is
// set afterwards, making this sweep idempotent per event.
func (r *Runner) Remind(ctx context.Context) error {
	events, err := r.repo.DueForReminder(ctx, r.clock.Now())
	if err != nil {
		return err
	}
	for _, event := range events {
		r.publish(ctx, notify.KindOwnerReminder, event)
		if err := r.service.MarkReminded(ctx, event); err != nil {
			r.log.Error("mark reminded failed", zap.String("event", event.Name), zap.Error(err))
		}
	}
	r.log.Info("reminder sweep finished", zap.Int("reminded", len(events)))
	return nil
}

func (r *Runner) publish(ctx context.Context, kind notify.Kind, event *model.Event) {
	if err := r.queue.Publish(ctx, &notify.Message{Kind: kind, Event: event}); err != nil {
		r.log.Warn("notification publish failed",
			zap.String("kind", string(kind)),
			zap.String("event", event.Name),
			zap.Error(err))
	}
}

// RunAll executes the three sweeps in sequence; used by the cron schedule.
func (r *Runner) RunAll(ctx context.Context) {
	if err := r.Expire(ctx); err != nil {
		r.log.Error("expire sweep failed", zap.Error(err))
	}
	if err := r.ExpiryWarning(ctx); err != nil {
		r.log.Error("expiry-warning sweep failed", zap.Error(err))
	}
	if err := r.Remind(ctx); err != nil {
		r.log.Error("reminder sweep failed", zap.Error(err))
	}
}
