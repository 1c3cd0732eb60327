package notifications

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

type fakeStore struct {
	created   []Notification
	emails    map[int64]string
	emailErr  error
	listItems []Notification
	listLimit int
}

func (f *fakeStore) CreateNotification(ctx context.Context, userID int64, ntype, title, body string) error {
	f.created = append(f.created, Notification{UserID: userID, Type: ntype, Title: title, Body: body})
	return nil
}

func (f *fakeStore) ListNotifications(ctx context.Context, userID int64, limit, offset int) ([]Notification, error) {
	f.listLimit = limit
	return f.listItems, nil
}

func (f *fakeStore) CountUnread(ctx context.Context, userID int64) (int, error) { return 0, nil }
func (f *fakeStore) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return nil
}
func (f *fakeStore) MarkAllRead(ctx context.Context, userID int64) error { return nil }

func (f *fakeStore) UserEmail(ctx context.Context, userID int64) (string, error) {
	if f.emailErr != nil {
		return "", f.emailErr
	}
	return f.emails[userID], nil
}

type fakeMailer struct {
	sent []string
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

func TestNotifyPersistsAndMails(t *testing.T) {
	store := &fakeStore{emails: map[int64]string{7: "nurse@clinic.example"}}
	mailer := &fakeMailer{}
	svc := NewService(store, mailer, slog.Default())

	if err := svc.Notify(context.Background(), 7, TypeScreeningReminder, "Reminder", "Screening tomorrow"); err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if len(store.created) != 1 {
		t.Fatalf("created = %d, want 1", len(store.created))
	}
	if store.created[0].Type != TypeScreeningReminder {
		t.Fatalf("type = %q, want %q", store.created[0].Type, TypeScreeningReminder)
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "nurse@clinic.example" {
		t.Fatalf("sent = %v, want one mail to nurse@clinic.example", mailer.sent)
	}
}

func TestNotifySurvivesMailFailure(t *testing.T) {
	store := &fakeStore{emails: map[int64]string{3: "admin@clinic.example"}}
	mailer := &fakeMailer{err: errors.New("smtp down")}
	svc := NewService(store, mailer, slog.Default())

	if err := svc.Notify(context.Background(), 3, TypeDocumentExpired, "Expired", "Certificate lapsed"); err != nil {
		t.Fatalf("mail failure should not fail Notify, got: %v", err)
	}
	if len(store.created) != 1 {
		t.Fatalf("created = %d, want 1", len(store.created))
	}
}

func TestNotifySurvivesEmailLookupFailure(t *testing.T) {
	store := &fakeStore{emailErr: errors.New("no such user")}
	svc := NewService(store, &fakeMailer{}, slog.Default())

	if err := svc.Notify(context.Background(), 99, TypeQuoteDecision, "Decision", "Accepted"); err != nil {
		t.Fatalf("lookup failure should not fail Notify, got: %v", err)
	}
}

func TestNotifyAllContinuesPastFailures(t *testing.T) {
	store := &fakeStore{emails: map[int64]string{}}
	svc := NewService(store, nil, slog.Default())

	svc.NotifyAll(context.Background(), []int64{1, 2, 3}, TypeScreeningConflict, "Conflict", "Overlap detected")
	if len(store.created) != 3 {
		t.Fatalf("created = %d, want 3", len(store.created))
	}
}

func TestListClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls back to default", 0, 20},
		{"negative falls back to default", -5, 20},
		{"over cap falls back to default", 500, 20},
		{"in range kept", 50, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			svc := NewService(store, nil, slog.Default())
			items, err := svc.List(context.Background(), 1, tc.limit, 0)
			if err != nil {
				t.Fatalf("List returned error: %v", err)
			}
			if store.listLimit != tc.want {
				t.Fatalf("limit = %d, want %d", store.listLimit, tc.want)
			}
			if items == nil {
				t.Fatal("List must return a non-nil slice")
			}
		})
	}
}
