// Package notify carries lifecycle notifications from the mutation funnel to
// the mail transport. Delivery is best effort: a lost notification never
// fails the transition that produced it.
package notify

import (
	"context"

	"community-events/internal/model"
)

// Kind names a lifecycle trigger.
type Kind string

const (
	KindOwnerConfirmation Kind = "owner_confirmation"
	KindStaffNeeded       Kind = "staff_needed"
	KindNewEvent          Kind = "new_event"
	KindOwnerApproved     Kind = "owner_approved"
	KindOwnerExpiring     Kind = "owner_expiring"
	KindOwnerExpired      Kind = "owner_expired"
	KindOwnerReminder     Kind = "owner_reminder"
)

// Message is one notification to be rendered and sent.
type Message struct {
	Kind  Kind
	Event *model.Event
}

type Delivery struct {
	Data *Message
	Ack  func()
	Nack func(requeue bool)
}

type Queue interface {
	Publish(ctx context.Context, msg *Message) error
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}
