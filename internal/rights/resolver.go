// Package rights derives per-request capability records from group
// membership and event state. It decides what a user may do; actually doing
// it is the service layer's job.
package rights

import (
	"context"

	"community-events/internal/membership"
	"community-events/internal/model"
)

const (
	GroupEvents = "events"
	GroupStaff  = "staff"
)

type Resolver struct {
	directory membership.Directory
}

func NewResolver(directory membership.Directory) *Resolver {
	return &Resolver{directory: directory}
}

// Resolve computes the capability record for handle on event. An empty
// handle is anonymous and gets no capabilities. Membership is looked up once
// per call; the cached result is authoritative for the request.
func (r *Resolver) Resolve(ctx context.Context, handle string, event *model.Event) model.Capabilities {
	if handle == "" {
		return model.Capabilities{}
	}

	isAdmin := membership.Contains(r.directory.Group(ctx, GroupEvents), handle)
	isStaff := membership.Contains(r.directory.Group(ctx, GroupStaff), handle)
	onEvent := event.HasStaff(handle)

	return model.Capabilities{
		IsAdmin:       isAdmin,
		IsStaffMember: isStaff,
		CanApprove:    event.Status == model.StatusPending && isAdmin,
		CanStaff: isStaff && !onEvent &&
			(event.Status == model.StatusPending ||
				event.Status == model.StatusUnderstaffed ||
				event.Status == model.StatusApproved),
		CanUnstaff: onEvent && !event.Status.IsTerminal(),
		CanCancel:  isAdmin,
	}
}
