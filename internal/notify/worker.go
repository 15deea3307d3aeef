package notify

import (
	"context"
	"fmt"

	"community-events/config"
	"community-events/internal/membership"
	"community-events/internal/model"
	"community-events/pkg/logger"

	"go.uber.org/zap"
)

// Worker drains the notification queue, renders each message and hands it to
// the mailer. Send failures are logged and dropped; notifications are best
// effort and must never block or fail a lifecycle transition.
type Worker struct {
	queue  Queue
	mailer Mailer
	cfg    config.SMTPConfig
}

func NewWorker(queue Queue, mailer Mailer, cfg config.SMTPConfig) *Worker {
	return &Worker{queue: queue, mailer: mailer, cfg: cfg}
}

func (w *Worker) Start(ctx context.Context) error {
	deliveries, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("notify")
		for d := range deliveries {
			to, subject, body := w.render(d.Data)
			if to == "" {
				d.Ack()
				continue
			}
			if err := w.mailer.Send(to, subject, body); err != nil {
				log.Warn("notification send failed",
					zap.String("kind", string(d.Data.Kind)),
					zap.String("event", d.Data.Event.Name),
					zap.Error(err))
			}
			d.Ack()
		}
	}()
	return nil
}

func (w *Worker) ownerAddress(handle string) string {
	if handle == "" {
		return ""
	}
	return handle + "@" + w.cfg.MailDomain
}

func (w *Worker) render(msg *Message) (to, subject, body string) {
	e := msg.Event
	owner := membership.HumanName(e.Member)

	switch msg.Kind {
	case KindOwnerConfirmation:
		return w.ownerAddress(e.Member),
			"Event application submitted",
			fmt.Sprintf("%s, this is a confirmation that your event:\n\n%s\n\n"+
				"has been submitted for approval. If staff is needed for your event, they "+
				"will be notified of your request. You will be notified as soon as it's "+
				"approved and on the calendar.", owner, e.Name)
	case KindStaffNeeded:
		return w.cfg.TeamAddress,
			fmt.Sprintf("Staff needed: %s", e.Name),
			fmt.Sprintf("The event %q on %s needs %d staff member(s) before it can be approved.",
				e.Name, e.StartTime.Format("Jan 2, 2006 3:04 PM"), e.StaffNeeded())
	case KindNewEvent:
		return w.cfg.TeamAddress,
			fmt.Sprintf("New event request: %s", e.Name),
			fmt.Sprintf("%s submitted %q for %s. It is waiting for review.",
				owner, e.Name, e.StartTime.Format("Jan 2, 2006 3:04 PM"))
	case KindOwnerApproved:
		return w.ownerAddress(e.Member),
			fmt.Sprintf("Event approved: %s", e.Name),
			fmt.Sprintf("Your event %q has been approved and is on the calendar.", e.Name)
	case KindOwnerExpiring:
		return w.ownerAddress(e.Member),
			fmt.Sprintf("Event application expiring: %s", e.Name),
			fmt.Sprintf("Your event application %q will expire in %d days unless it is approved.",
				e.Name, model.ExpiryWarningLeadDays)
	case KindOwnerExpired:
		return w.ownerAddress(e.Member),
			fmt.Sprintf("Event application expired: %s", e.Name),
			fmt.Sprintf("Your event application %q was not approved in time and has expired. "+
				"You are welcome to submit it again.", e.Name)
	case KindOwnerReminder:
		return w.ownerAddress(e.Member),
			fmt.Sprintf("Upcoming event: %s", e.Name),
			fmt.Sprintf("A reminder that your event %q starts %s.",
				e.Name, e.StartTime.Format("Jan 2, 2006 3:04 PM"))
	}
	return "", "", ""
}
