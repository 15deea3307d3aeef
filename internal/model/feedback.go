package model

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is a rated comment left on a past event. Immutable once created.
type Feedback struct {
	ID         int       `json:"id" db:"id"`
	FeedbackID uuid.UUID `json:"feedback_id" db:"feedback_id"`
	EventID    int       `json:"event_id" db:"event_id"`
	User       string    `json:"user" db:"user_handle"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
