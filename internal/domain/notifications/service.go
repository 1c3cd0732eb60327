package notifications

import (
	"context"
	"log/slog"
)

// Mailer delivers a plain-text email. Implementations must not block
// for longer than the context allows.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type Service struct {
	store  StoreAPI
	mailer Mailer
	logger *slog.Logger
}

func NewService(store StoreAPI, mailer Mailer, logger *slog.Logger) *Service {
	return &Service{store: store, mailer: mailer, logger: logger}
}

// Notify persists an in-app notification and, when a mailer is
// configured, attempts email delivery. Email failures are logged and
// do not fail the notification.
func (s *Service) Notify(ctx context.Context, userID int64, ntype, title, body string) error {
	if err := s.store.CreateNotification(ctx, userID, ntype, title, body); err != nil {
		return err
	}

	if s.mailer == nil {
		return nil
	}

	email, err := s.store.UserEmail(ctx, userID)
	if err != nil {
		s.logger.Warn("notification email lookup failed", slog.Int64("userId", userID), slog.Any("error", err))
		return nil
	}

	if err := s.mailer.Send(ctx, email, title, body); err != nil {
		s.logger.Warn("notification email send failed", slog.Int64("userId", userID), slog.Any("error", err))
	}
	return nil
}

// NotifyAll fans a notification out to a set of users. Per-user
// failures are logged and skipped so one bad row does not block the
// rest of the batch.
func (s *Service) NotifyAll(ctx context.Context, userIDs []int64, ntype, title, body string) {
	for _, id := range userIDs {
		if err := s.Notify(ctx, id, ntype, title, body); err != nil {
			s.logger.Error("notification create failed", slog.Int64("userId", id), slog.Any("error", err))
		}
	}
}

func (s *Service) List(ctx context.Context, userID int64, limit, offset int) ([]Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	items, err := s.store.ListNotifications(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Notification{}
	}
	return items, nil
}

func (s *Service) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.store.CountUnread(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return s.store.MarkRead(ctx, userID, notificationID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID int64) error {
	return s.store.MarkAllRead(ctx, userID)
}
