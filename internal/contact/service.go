// Package contact handles contact-form submissions: validation, the
// duplicate-submission guard, and email notifications.
package contact

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/summit-coaching/assistant-api/internal/domain"
	"github.com/summit-coaching/assistant-api/internal/mail"
	"github.com/summit-coaching/assistant-api/internal/store"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s().]{7,20}$`)
)

const (
	minMessageLen = 10
	maxNameLen    = 100
	maxEmailLen   = 254
	maxMessageLen = 5000
)

// Service validates and dispatches contact-form submissions.
type Service struct {
	guard         *Guard
	mailer        domain.Mailer
	records       store.Repository
	businessEmail string
	now           func() time.Time
}

// NewService creates the contact service.
func NewService(guard *Guard, mailer domain.Mailer, records store.Repository, businessEmail string) *Service {
	return &Service{
		guard:         guard,
		mailer:        mailer,
		records:       records,
		businessEmail: businessEmail,
		now:           time.Now,
	}
}

// Guard exposes the duplicate guard so main can run its sweep loop.
func (s *Service) Guard() *Guard {
	return s.guard
}

// Request is one contact-form submission.
type Request struct {
	Name             string
	Email            string
	Message          string
	Phone            string
	Subject          string
	PreferredContact string
}

// Submit validates the request, applies the duplicate guard, sends the
// business notification and the autoreply, and records the submission.
// Mail failure surfaces as an error; the guard is only marked after a
// successful dispatch so the submitter can retry.
func (s *Service) Submit(ctx context.Context, req Request) error {
	if err := validate(req); err != nil {
		return err
	}

	if !s.guard.Allow(req.Email) {
		return domain.ErrDuplicateSubmission
	}

	// The in-memory guard resets on restart; recorded submissions do
	// not. Check them too so a restart can't be used to double-send.
	since := s.now().Add(-s.guard.Window()).Unix()
	if n, err := s.records.CountContactSubmissionsSince(ctx, req.Email, since); err != nil {
		slog.Warn("duplicate backstop check failed", "email", req.Email, "error", err)
	} else if n > 0 {
		return domain.ErrDuplicateSubmission
	}

	data := mail.ContactEmailData{
		Name:             strings.TrimSpace(req.Name),
		Email:            strings.TrimSpace(req.Email),
		Phone:            strings.TrimSpace(req.Phone),
		Subject:          strings.TrimSpace(req.Subject),
		Message:          strings.TrimSpace(req.Message),
		PreferredContact: strings.TrimSpace(req.PreferredContact),
	}

	notification, err := mail.RenderContactNotification(data)
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}
	if err := s.mailer.Send(ctx, domain.MailMessage{
		To:       s.businessEmail,
		Subject:  "New contact form submission from " + data.Name,
		HTMLBody: notification,
	}); err != nil {
		return fmt.Errorf("send business notification: %w", err)
	}

	autoreply, err := mail.RenderContactAutoreply(data)
	if err != nil {
		return fmt.Errorf("render autoreply: %w", err)
	}
	if err := s.mailer.Send(ctx, domain.MailMessage{
		To:       data.Email,
		Subject:  "We got your message - Summit Coaching",
		HTMLBody: autoreply,
	}); err != nil {
		return fmt.Errorf("send autoreply: %w", err)
	}

	s.guard.Mark(data.Email)

	rec := &domain.ContactRecord{
		ID:               uuid.NewString(),
		Name:             data.Name,
		Email:            data.Email,
		Phone:            data.Phone,
		Subject:          data.Subject,
		Message:          data.Message,
		PreferredContact: data.PreferredContact,
		CreatedAt:        s.now(),
	}
	if err := s.records.InsertContactSubmission(ctx, rec); err != nil {
		// Bookkeeping failure never blocks the submission.
		slog.Error("failed to record contact submission", "email", data.Email, "error", err)
	}

	return nil
}

func validate(req Request) error {
	var msgs []string

	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		msgs = append(msgs, "name is required")
	case len(name) < 2:
		msgs = append(msgs, "name must be at least 2 characters")
	case len(name) > maxNameLen:
		msgs = append(msgs, "name is too long")
	}

	email := strings.TrimSpace(req.Email)
	switch {
	case email == "":
		msgs = append(msgs, "email is required")
	case len(email) > maxEmailLen:
		msgs = append(msgs, "email is too long")
	case !emailPattern.MatchString(email):
		msgs = append(msgs, "email format is invalid")
	}

	message := strings.TrimSpace(req.Message)
	switch {
	case message == "":
		msgs = append(msgs, "message is required")
	case len(message) < minMessageLen:
		msgs = append(msgs, fmt.Sprintf("message must be at least %d characters", minMessageLen))
	case len(message) > maxMessageLen:
		msgs = append(msgs, "message is too long")
	}

	if phone := strings.TrimSpace(req.Phone); phone != "" && !phonePattern.MatchString(phone) {
		msgs = append(msgs, "phone format is invalid")
	}

	if len(msgs) > 0 {
		return &domain.ValidationError{Messages: msgs}
	}
	return nil
}
