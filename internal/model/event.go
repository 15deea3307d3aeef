package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	// GuestsPerStaff is how many expected guests one staff member covers.
	GuestsPerStaff = 25

	// FallbackStaffNeeded is used when the stored size estimate is not a
	// usable number.
	FallbackStaffNeeded = 2

	// PendingLifetimeDays is how long a submission may sit unapproved
	// before the expire sweep picks it up.
	PendingLifetimeDays = 30

	// ExpiryWarningLeadDays is how far ahead of the expiration date the
	// warning sweep notifies the owner.
	ExpiryWarningLeadDays = 10

	// ReminderLeadDays / ReminderMinAgeDays bound the reminder sweep:
	// approved events starting within the lead window, submitted at least
	// the minimum age ago.
	ReminderLeadDays   = 3
	ReminderMinAgeDays = 2
)

// RoomOptions are the bookable rooms with their capacities.
var RoomOptions = map[string]int{
	"Cave":            15,
	"Deck":            30,
	"Savanna":         120,
	"140b":            129,
	"Cubby 1":         2,
	"Cubby 2":         2,
	"Cubby 3":         2,
	"Upstairs Office": 2,
	"Front Area":      20,
}

// Event is an event request moving through the approval workflow. All
// lifecycle changes go through the transition methods below; callers never
// assign Status directly. Times are naive local wall-clock values.
type Event struct {
	ID      int       `json:"id" db:"id"`
	EventID uuid.UUID `json:"event_id" db:"event_id"`
	Name    string    `json:"name" db:"name"`
	Member  string    `json:"member" db:"member"`

	StartTime time.Time `json:"start_time" db:"start_time"`
	EndTime   time.Time `json:"end_time" db:"end_time"`

	Status     EventStatus  `json:"status" db:"status"`
	PrevStatus *EventStatus `json:"-" db:"prev_status"`

	Staff []string `json:"staff" db:"staff"`
	Rooms []string `json:"rooms" db:"rooms"`

	Details string `json:"details" db:"details"`
	Notes   string `json:"notes" db:"notes"`
	URL     string `json:"url" db:"url"`
	Fee     string `json:"fee" db:"fee"`
	Type    string `json:"type" db:"type"`

	// EstimatedSize is kept as submitted text; StaffNeeded guards against
	// it being corrupted after creation.
	EstimatedSize string `json:"estimated_size" db:"estimated_size"`

	ContactName  string `json:"contact_name" db:"contact_name"`
	ContactPhone string `json:"contact_phone" db:"contact_phone"`

	Expired  *time.Time `json:"expired,omitempty" db:"expired"`
	Reminded bool       `json:"reminded" db:"reminded"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// StaffNeeded is the staffing threshold derived from the size estimate.
// A corrupted estimate falls back to a safe default instead of failing.
func (e *Event) StaffNeeded() int {
	n, err := strconv.Atoi(e.EstimatedSize)
	if err != nil || n < 0 {
		return FallbackStaffNeeded
	}
	return n / GuestsPerStaff
}

func (e *Event) IsStaffed() bool {
	return len(e.Staff) >= e.StaffNeeded()
}

// IsApproved reports whether the events team has signed off. Note: this does
// not necessarily mean status is "approved"; an understaffed or since-canceled
// event has still been signed off.
func (e *Event) IsApproved() bool {
	switch e.Status {
	case StatusUnderstaffed, StatusApproved, StatusCanceled:
		return true
	}
	return false
}

func (e *Event) IsCanceled() bool {
	return e.Status == StatusCanceled
}

func (e *Event) IsDeleted() bool {
	return e.Status == StatusDeleted
}

// IsPast reports whether the event ended before the given start-of-today.
func (e *Event) IsPast(today time.Time) bool {
	return e.EndTime.Before(today)
}

func (e *Event) HasStaff(handle string) bool {
	for _, s := range e.Staff {
		if s == handle {
			return true
		}
	}
	return false
}

// Approve moves the event to approved when the staffing threshold is met,
// clearing the expiration timer; otherwise it moves to understaffed and the
// timer keeps running.
func (e *Event) Approve() {
	if e.IsStaffed() {
		e.Status = StatusApproved
		e.Expired = nil
	} else {
		e.Status = StatusUnderstaffed
	}
}

// Cancel is valid from any state.
func (e *Event) Cancel() {
	e.Status = StatusCanceled
}

// Delete soft-deletes the event, remembering the prior status so Undelete
// can restore it. Events are never physically removed.
func (e *Event) Delete() {
	if e.Status == StatusDeleted {
		return
	}
	prev := e.Status
	e.PrevStatus = &prev
	e.Status = StatusDeleted
}

// Undelete restores the status the event held before deletion, falling back
// to pending when that is unknown. Calling it on a live event is a no-op.
func (e *Event) Undelete() {
	if e.Status != StatusDeleted {
		return
	}
	if e.PrevStatus != nil && *e.PrevStatus != StatusDeleted {
		e.Status = *e.PrevStatus
	} else {
		e.Status = StatusPending
	}
	e.PrevStatus = nil
}

// Expire marks the event expired as of now.
func (e *Event) Expire(now time.Time) {
	e.Status = StatusExpired
	e.Expired = &now
}

// AddStaff signs a member up to work the event. Signing up twice is a no-op.
// Crossing the staffing threshold promotes an understaffed event to approved.
func (e *Event) AddStaff(handle string) bool {
	if e.HasStaff(handle) {
		return false
	}
	e.Staff = append(e.Staff, handle)
	if e.IsStaffed() && e.Status == StatusUnderstaffed {
		e.Status = StatusApproved
		e.Expired = nil
	}
	return true
}

// RemoveStaff withdraws a member. Dropping below the threshold demotes an
// approved event back to understaffed.
func (e *Event) RemoveStaff(handle string) bool {
	for i, s := range e.Staff {
		if s == handle {
			e.Staff = append(e.Staff[:i], e.Staff[i+1:]...)
			if !e.IsStaffed() && e.Status == StatusApproved {
				e.Status = StatusUnderstaffed
			}
			return true
		}
	}
	return false
}
