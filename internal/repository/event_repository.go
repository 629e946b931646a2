package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"go.uber.org/zap"
)

type EventRepository interface {
	// ListPending returns unprocessed events created before olderThan that have failed
	// fewer than maxAttempts times, least attempted first.
	ListPending(ctx context.Context, olderThan time.Time, maxAttempts, limit int) ([]models.LedgerEvent, error)
	MarkProcessed(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type eventRepo struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepo{db: db}
}

func insertEvent(ctx context.Context, tx *sql.Tx, ev models.LedgerEvent) error {
	payload := string(ev.Payload)
	if payload == "" {
		payload = "{}"
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO ledger_events (id, kind, aggregate_id, user_id, payload)
		VALUES ($1, $2, $3, $4, $5)
	`, ev.ID, ev.Kind, ev.AggregateID, ev.UserID, payload)
	return err
}

func (r *eventRepo) ListPending(ctx context.Context, olderThan time.Time, maxAttempts, limit int) ([]models.LedgerEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, kind, aggregate_id, user_id, payload, attempts, last_error, created_at, processed_at
		FROM ledger_events
		WHERE processed_at IS NULL AND created_at < $1 AND attempts < $2
		ORDER BY attempts, created_at
		LIMIT $3
	`, olderThan, maxAttempts, limit)
	if err != nil {
		logger.Log.Error("failed to query pending events", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var events []models.LedgerEvent
	for rows.Next() {
		var (
			ev      models.LedgerEvent
			payload []byte
		)
		if err := rows.Scan(&ev.ID, &ev.Kind, &ev.AggregateID, &ev.UserID, &payload, &ev.Attempts,
			&ev.LastError, &ev.CreatedAt, &ev.ProcessedAt); err != nil {
			return nil, err
		}
		ev.Payload = payload
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (r *eventRepo) MarkProcessed(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE ledger_events SET processed_at = now(), attempts = attempts + 1, last_error = NULL
		WHERE id = $1 AND processed_at IS NULL
	`, id)
	return err
}

func (r *eventRepo) MarkFailed(ctx context.Context, id string, reason string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE ledger_events SET attempts = attempts + 1, last_error = $2
		WHERE id = $1
	`, id, reason)
	return err
}
