package service

import (
	"context"
	"errors"
	"strings"

	"github.com/a2sh3r/stablex/internal/apperrors"
	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/a2sh3r/stablex/internal/realtime"
	"github.com/a2sh3r/stablex/internal/repository"
	"go.uber.org/zap"
)

// NotifyParams describes a notification. A nil Target broadcasts to every user,
// a nil CreatedBy marks a system notification.
type NotifyParams struct {
	Target    *int64
	Title     string
	Message   string
	CreatedBy *int64
	DedupeKey string
}

type NotificationService interface {
	Notify(ctx context.Context, p NotifyParams) (*models.Notification, error)
	Create(ctx context.Context, operatorID int64, req models.NotificationRequest) (*models.Notification, error)
	List(ctx context.Context, userID int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
	UnreadCount(ctx context.Context, userID int64) (int, error)
}

type notificationService struct {
	repo    repository.NotificationRepository
	emitter realtime.Emitter
}

func NewNotificationService(repo repository.NotificationRepository, emitter realtime.Emitter) NotificationService {
	return &notificationService{repo: repo, emitter: emitter}
}

// Notify persists first and pushes second; a failed push is only logged.
// A repeated DedupeKey returns the stored notification without pushing again.
func (s *notificationService) Notify(ctx context.Context, p NotifyParams) (*models.Notification, error) {
	n := &models.Notification{
		Title:        p.Title,
		Message:      p.Message,
		TargetUserID: p.Target,
		CreatedBy:    p.CreatedBy,
		DedupeKey:    optionalString(p.DedupeKey),
	}

	stored, created, err := s.repo.Create(ctx, n)
	if err != nil {
		return nil, err
	}
	if !created {
		return stored, nil
	}

	room := realtime.BroadcastRoom
	if stored.TargetUserID != nil {
		room = realtime.UserRoom(*stored.TargetUserID)
	}
	if err := s.emitter.Emit(ctx, room, realtime.EventNotificationCreated, stored); err != nil {
		logger.Log.Warn("failed to push notification", zap.Int64("notification_id", stored.ID), zap.String("room", room), zap.Error(err))
	}
	return stored, nil
}

func (s *notificationService) Create(ctx context.Context, operatorID int64, req models.NotificationRequest) (*models.Notification, error) {
	title := strings.TrimSpace(req.Title)
	message := strings.TrimSpace(req.Message)
	if title == "" {
		return nil, apperrors.NewValidationError("title", "is required")
	}
	if message == "" {
		return nil, apperrors.NewValidationError("message", "is required")
	}

	return s.Notify(ctx, NotifyParams{
		Target:    req.TargetUserID,
		Title:     title,
		Message:   message,
		CreatedBy: &operatorID,
	})
}

func (s *notificationService) List(ctx context.Context, userID int64) ([]models.Notification, error) {
	return s.repo.ListForUser(ctx, userID, 0)
}

// MarkRead is idempotent. Notifications addressed to someone else are reported as not found.
func (s *notificationService) MarkRead(ctx context.Context, id, userID int64) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.TargetUserID != nil && *n.TargetUserID != userID {
		return apperrors.ErrNotificationNotFound
	}
	return s.repo.MarkRead(ctx, id, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.repo.UnreadCount(ctx, userID)
}

// notifySafely is used for side-effect notifications whose failure must not fail the caller.
func notifySafely(ctx context.Context, n NotificationService, p NotifyParams) error {
	_, err := n.Notify(ctx, p)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		logger.Log.Error("failed to create notification", zap.String("dedupe_key", p.DedupeKey), zap.Error(err))
		return err
	}
	return nil
}
