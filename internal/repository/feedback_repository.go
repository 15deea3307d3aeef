package repository

import (
	"context"

	"community-events/internal/model"
	apperrors "community-events/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error)
	FindByFeedbackID(ctx context.Context, feedbackID uuid.UUID) (*model.Feedback, error)
	ListByEventID(ctx context.Context, eventID int) ([]*model.Feedback, error)
}

type FeedbackRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewFeedbackRepository(pool *pgxpool.Pool) FeedbackRepository {
	return &FeedbackRepositoryImpl{pool: pool}
}

func (r *FeedbackRepositoryImpl) Create(ctx context.Context, feedback *model.Feedback) (*model.Feedback, error) {
	query := `
		INSERT INTO feedback (feedback_id, event_id, user_handle, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, feedback_id, event_id, user_handle, rating, comment, created_at
	`
	err := r.pool.QueryRow(ctx, query,
		feedback.FeedbackID, feedback.EventID, feedback.User, feedback.Rating, feedback.Comment,
	).Scan(
		&feedback.ID,
		&feedback.FeedbackID,
		&feedback.EventID,
		&feedback.User,
		&feedback.Rating,
		&feedback.Comment,
		&feedback.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return feedback, nil
}

func (r *FeedbackRepositoryImpl) FindByFeedbackID(ctx context.Context, feedbackID uuid.UUID) (*model.Feedback, error) {
	query := `
		SELECT id, feedback_id, event_id, user_handle, rating, comment, created_at
		FROM feedback
		WHERE feedback_id = $1
	`
	var feedback model.Feedback
	err := r.pool.QueryRow(ctx, query, feedbackID).Scan(
		&feedback.ID,
		&feedback.FeedbackID,
		&feedback.EventID,
		&feedback.User,
		&feedback.Rating,
		&feedback.Comment,
		&feedback.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrFeedbackNotFound
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackRepositoryImpl) ListByEventID(ctx context.Context, eventID int) ([]*model.Feedback, error) {
	query := `
		SELECT id, feedback_id, event_id, user_handle, rating, comment, created_at
		FROM feedback
		WHERE event_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feedbacks := make([]*model.Feedback, 0)
	for rows.Next() {
		var feedback model.Feedback
		err := rows.Scan(
			&feedback.ID,
			&feedback.FeedbackID,
			&feedback.EventID,
			&feedback.User,
			&feedback.Rating,
			&feedback.Comment,
			&feedback.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		feedbacks = append(feedbacks, &feedback)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return feedbacks, nil
}
