package model

// EventStatus is the lifecycle state of an event request.
type EventStatus string

const (
	StatusPending      EventStatus = "pending"
	StatusUnderstaffed EventStatus = "understaffed"
	StatusApproved     EventStatus = "approved"
	StatusCanceled     EventStatus = "canceled"
	StatusOnHold       EventStatus = "onhold"
	StatusExpired      EventStatus = "expired"
	StatusDeleted      EventStatus = "deleted"
)

// IsValid reports whether the status is a known lifecycle state.
func (s EventStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusUnderstaffed, StatusApproved, StatusCanceled,
		StatusOnHold, StatusExpired, StatusDeleted:
		return true
	}
	return false
}

// IsTerminal reports whether the event has left the active part of the
// lifecycle. Staff cannot sign up or withdraw once an event is terminal.
func (s EventStatus) IsTerminal() bool {
	switch s {
	case StatusCanceled, StatusExpired, StatusDeleted:
		return true
	}
	return false
}
