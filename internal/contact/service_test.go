package contact

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/summit-coaching/assistant-api/internal/domain"
)

type fakeMailer struct {
	sent []domain.MailMessage
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg domain.MailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakeRecords struct {
	contacts []*domain.ContactRecord
	count    int64
}

func (f *fakeRecords) InsertBooking(context.Context, *domain.BookingRecord) error { return nil }

func (f *fakeRecords) InsertContactSubmission(_ context.Context, rec *domain.ContactRecord) error {
	f.contacts = append(f.contacts, rec)
	return nil
}

func (f *fakeRecords) CountContactSubmissionsSince(context.Context, string, int64) (int64, error) {
	return f.count, nil
}

func (f *fakeRecords) Ping(context.Context) error { return nil }
func (f *fakeRecords) Close() error               { return nil }

func validRequest() Request {
	return Request{
		Name:    "Ana Lopez",
		Email:   "ana@example.com",
		Message: "I'd like to learn more about the Momentum program.",
	}
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantMsg string
	}{
		{"missing name", func(r *Request) { r.Name = "" }, "name is required"},
		{"short name", func(r *Request) { r.Name = "A" }, "at least 2"},
		{"missing email", func(r *Request) { r.Email = "" }, "email is required"},
		{"bad email", func(r *Request) { r.Email = "nope" }, "email format"},
		{"long email", func(r *Request) { r.Email = strings.Repeat("a", 250) + "@example.com" }, "too long"},
		{"missing message", func(r *Request) { r.Message = "" }, "message is required"},
		{"short message", func(r *Request) { r.Message = "hi" }, "at least 10"},
		{"bad phone", func(r *Request) { r.Phone = "call me maybe" }, "phone format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{}
			svc := NewService(NewGuard(5*time.Minute), mailer, &fakeRecords{}, "team@summit.example")

			req := validRequest()
			tt.mutate(&req)

			err := svc.Submit(context.Background(), req)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			found := false
			for _, m := range verr.Messages {
				if strings.Contains(m, tt.wantMsg) {
					found = true
				}
			}
			if !found {
				t.Errorf("messages %v missing %q", verr.Messages, tt.wantMsg)
			}
			if len(mailer.sent) != 0 {
				t.Error("no mail on validation failure")
			}
		})
	}
}

func TestSubmit_Success(t *testing.T) {
	mailer := &fakeMailer{}
	records := &fakeRecords{}
	svc := NewService(NewGuard(5*time.Minute), mailer, records, "team@summit.example")

	if err := svc.Submit(context.Background(), validRequest()); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if len(mailer.sent) != 2 {
		t.Fatalf("Expected notification + autoreply, got %d mails", len(mailer.sent))
	}
	if mailer.sent[0].To != "team@summit.example" {
		t.Errorf("notification went to %q", mailer.sent[0].To)
	}
	if mailer.sent[1].To != "ana@example.com" {
		t.Errorf("autoreply went to %q", mailer.sent[1].To)
	}
	if len(records.contacts) != 1 {
		t.Errorf("Expected one contact record, got %d", len(records.contacts))
	}
}

func TestSubmit_DuplicateWindow(t *testing.T) {
	svc := NewService(NewGuard(5*time.Minute), &fakeMailer{}, &fakeRecords{}, "team@summit.example")

	if err := svc.Submit(context.Background(), validRequest()); err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}
	err := svc.Submit(context.Background(), validRequest())
	if !errors.Is(err, domain.ErrDuplicateSubmission) {
		t.Errorf("expected ErrDuplicateSubmission, got %v", err)
	}
}

func TestSubmit_RecordedSubmissionBlocksResend(t *testing.T) {
	// A fresh guard with a prior submission on record, as after a
	// process restart.
	mailer := &fakeMailer{}
	svc := NewService(NewGuard(5*time.Minute), mailer, &fakeRecords{count: 1}, "team@summit.example")

	err := svc.Submit(context.Background(), validRequest())
	if !errors.Is(err, domain.ErrDuplicateSubmission) {
		t.Errorf("expected ErrDuplicateSubmission, got %v", err)
	}
	if len(mailer.sent) != 0 {
		t.Errorf("no mail expected, got %d", len(mailer.sent))
	}
}

func TestSubmit_MailFailureDoesNotMarkGuard(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp down")}
	guard := NewGuard(5 * time.Minute)
	svc := NewService(guard, mailer, &fakeRecords{}, "team@summit.example")

	err := svc.Submit(context.Background(), validRequest())
	if err == nil || errors.Is(err, domain.ErrDuplicateSubmission) {
		t.Fatalf("expected gateway error, got %v", err)
	}

	// A retry after the outage must not be treated as a duplicate.
	mailer.err = nil
	if err := svc.Submit(context.Background(), validRequest()); err != nil {
		t.Errorf("retry after mail failure rejected: %v", err)
	}
}
