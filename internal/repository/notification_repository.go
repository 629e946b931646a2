package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	// Create inserts n; when n.DedupeKey is already taken the stored record is returned with created=false.
	Create(ctx context.Context, n *models.Notification) (stored *models.Notification, created bool, err error)
	GetByID(ctx context.Context, id int64) (*models.Notification, error)
	ListForUser(ctx context.Context, userID int64, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
	UnreadCount(ctx context.Context, userID int64) (int, error)
}

type notificationRepo struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

const notificationColumns = `id, title, message, target_user_id, created_by, dedupe_key, created_at`

func scanNotification(row rowScanner) (*models.Notification, error) {
	var n models.Notification
	err := row.Scan(&n.ID, &n.Title, &n.Message, &n.TargetUserID, &n.CreatedBy, &n.DedupeKey, &n.CreatedAt)
	if isNoRows(err) {
		return nil, apperrors.ErrNotificationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepo) Create(ctx context.Context, n *models.Notification) (*models.Notification, bool, error) {
	stored, err := scanNotification(r.db.QueryRowContext(ctx, `
		INSERT INTO notifications (title, message, target_user_id, created_by, dedupe_key)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (dedupe_key) DO NOTHING
		RETURNING `+notificationColumns,
		n.Title, n.Message, n.TargetUserID, n.CreatedBy, n.DedupeKey))
	if err == nil {
		return stored, true, nil
	}
	if pgCode(err) == pgForeignKeyViolation {
		return nil, false, apperrors.ErrUserNotFound
	}
	if !errors.Is(err, apperrors.ErrNotificationNotFound) || n.DedupeKey == nil {
		return nil, false, err
	}

	stored, err = scanNotification(r.db.QueryRowContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE dedupe_key = $1`, *n.DedupeKey))
	if err != nil {
		return nil, false, err
	}
	return stored, false, nil
}

func (r *notificationRepo) GetByID(ctx context.Context, id int64) (*models.Notification, error) {
	return scanNotification(r.db.QueryRowContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id))
}

func (r *notificationRepo) ListForUser(ctx context.Context, userID int64, limit int) ([]models.Notification, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT n.id, n.title, n.message, n.target_user_id, n.created_by, n.dedupe_key, n.created_at,
		       (nr.user_id IS NOT NULL) AS read
		FROM notifications n
		LEFT JOIN notification_reads nr ON nr.notification_id = n.id AND nr.user_id = $1
		WHERE n.target_user_id = $1 OR n.target_user_id IS NULL
		ORDER BY n.created_at DESC, n.id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		logger.Log.Error("failed to query notifications", zap.Error(err))
		return nil, err
	}
	defer closeRows(rows)

	var list []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.TargetUserID, &n.CreatedBy, &n.DedupeKey,
			&n.CreatedAt, &n.Read); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *notificationRepo) MarkRead(ctx context.Context, id, userID int64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notification_reads (notification_id, user_id) VALUES ($1, $2)
		ON CONFLICT (notification_id, user_id) DO NOTHING
	`, id, userID)
	if pgCode(err) == pgForeignKeyViolation {
		return apperrors.ErrNotificationNotFound
	}
	return err
}

func (r *notificationRepo) UnreadCount(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT count(*)
		FROM notifications n
		WHERE (n.target_user_id = $1 OR n.target_user_id IS NULL)
		  AND NOT EXISTS (
		      SELECT 1 FROM notification_reads nr WHERE nr.notification_id = n.id AND nr.user_id = $1
		  )
	`, userID).Scan(&count)
	return count, err
}
