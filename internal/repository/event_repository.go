package repository

import (
	"context"
	"time"

	"community-events/internal/model"
	apperrors "community-events/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error)
	// Update persists the full mutable state of the event in a single
	// statement, so a transition either lands completely or not at all.
	// UpdatedAt is taken from the event; callers stamp it with their clock.
	Update(ctx context.Context, event *model.Event) (*model.Event, error)

	// Query views, each parameterized by start-of-today.
	ApprovedUpcoming(ctx context.Context, today time.Time) ([]*model.Event, error)
	PendingUpcoming(ctx context.Context, today time.Time) ([]*model.Event, error)
	Past(ctx context.Context, today time.Time) ([]*model.Event, error)
	Mine(ctx context.Context, member string) ([]*model.Event, error)
	CalendarEvents(ctx context.Context) ([]*model.Event, error)

	// Sweep selections.
	ExpiringBetween(ctx context.Context, from, to time.Time) ([]*model.Event, error)
	DueForReminder(ctx context.Context, now time.Time) ([]*model.Event, error)
	SetReminded(ctx context.Context, id int, now time.Time) error
}

const eventColumns = `
	id, event_id, name, member, start_time, end_time, status, prev_status,
	staff, rooms, details, notes, url, fee, type, estimated_size,
	contact_name, contact_phone, expired, reminded, created_at, updated_at`

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{pool: pool}
}

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.EventID,
		&event.Name,
		&event.Member,
		&event.StartTime,
		&event.EndTime,
		&event.Status,
		&event.PrevStatus,
		&event.Staff,
		&event.Rooms,
		&event.Details,
		&event.Notes,
		&event.URL,
		&event.Fee,
		&event.Type,
		&event.EstimatedSize,
		&event.ContactName,
		&event.ContactPhone,
		&event.Expired,
		&event.Reminded,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*model.Event, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		INSERT INTO events (
			event_id, name, member, start_time, end_time, status, staff, rooms,
			details, notes, url, fee, type, estimated_size,
			contact_name, contact_phone, expired
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING` + eventColumns

	return scanEvent(r.pool.QueryRow(ctx, query,
		event.EventID, event.Name, event.Member, event.StartTime, event.EndTime,
		event.Status, event.Staff, event.Rooms,
		event.Details, event.Notes, event.URL, event.Fee, event.Type,
		event.EstimatedSize, event.ContactName, event.ContactPhone, event.Expired,
	))
}

func (r *EventRepositoryImpl) FindByEventID(ctx context.Context, eventID uuid.UUID) (*model.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE event_id = $1
	`
	event, err := scanEvent(r.pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *EventRepositoryImpl) Update(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := `
		UPDATE events
		SET status = $1, prev_status = $2, staff = $3, expired = $4,
		    reminded = $5, updated_at = $6
		WHERE id = $7
		RETURNING` + eventColumns

	updated, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.Status, event.PrevStatus, event.Staff, event.Expired,
		event.Reminded, event.UpdatedAt, event.ID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *EventRepositoryImpl) ApprovedUpcoming(ctx context.Context, today time.Time) ([]*model.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE status = ANY($1) AND start_time > $2
		ORDER BY start_time ASC
	`
	return r.queryEvents(ctx, query,
		[]model.EventStatus{model.StatusApproved, model.StatusCanceled}, today)
}

func (r *EventRepositoryImpl) PendingUpcoming(ctx context.Context, today time.Time) ([]*model.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE status = ANY($1) AND start_time > $2
		ORDER BY start_time ASC
	`
	return r.queryEvents(ctx, query,
		[]model.EventStatus{model.StatusPending, model.StatusUnderstaffed, model.StatusOnHold, model.StatusExpired},
		today)
}

func (r *EventRepositoryImpl) Past(ctx context.Context, today time.Time) ([]*model.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE end_time < $1
		ORDER BY start_time DESC
	`
	return r.queryEvents(ctx, query, today)
}

func (r *EventRepositoryImpl) Mine(ctx context.Context, member string) ([]*model.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE member = $1
		ORDER BY start_time ASC
	`
	return r.queryEvents(ctx, query, member)
}

func (r *EventRepositoryImpl) CalendarEvents(ctx context.Context) ([]*model.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE status = ANY($1)
		ORDER BY start_time ASC
	`
	return r.queryEvents(ctx, query,
		[]model.EventStatus{model.StatusApproved, model.StatusCanceled})
}

func (r *EventRepositoryImpl) ExpiringBetween(ctx context.Context, from, to time.Time) ([]*model.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE status = ANY($1) AND expired >= $2 AND expired < $3
		ORDER BY id ASC
	`
	return r.queryEvents(ctx, query,
		[]model.EventStatus{model.StatusPending, model.StatusUnderstaffed}, from, to)
}

func (r *EventRepositoryImpl) DueForReminder(ctx context.Context, now time.Time) ([]*model.Event, error) {
	query := `SELECT` + eventColumns + `
		FROM events
		WHERE status = $1
		  AND reminded = FALSE
		  AND start_time > $2
		  AND start_time <= $3
		  AND created_at <= $4
		ORDER BY id ASC
	`
	return r.queryEvents(ctx, query,
		model.StatusApproved,
		now,
		now.AddDate(0, 0, model.ReminderLeadDays),
		now.AddDate(0, 0, -model.ReminderMinAgeDays),
	)
}

func (r *EventRepositoryImpl) SetReminded(ctx context.Context, id int, now time.Time) error {
	query := `
		UPDATE events
		SET reminded = TRUE, updated_at = $1
		WHERE id = $2
	`
	result, err := r.pool.Exec(ctx, query, now, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}
	return nil
}
