// Package booking handles discovery-call booking requests and their
// email notifications.
package booking

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

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultCoach is used when the request does not select a coach.
const DefaultCoach = "dana"

// sessionRecorder is the slice of the chat service bookings need:
// marking a session as booked and retrieving its user name.
type sessionRecorder interface {
	RecordBooking(id string, d domain.BookingDetails) (userName string, ok bool)
}

// Service validates booking requests, issues scheduling links, and
// dispatches the confirmation and notification mails.
type Service struct {
	sessions      sessionRecorder
	mailer        domain.Mailer
	records       store.Repository
	businessEmail string
	schedulingURL string

	now      func() time.Time
	newToken func() string
}

// NewService creates the booking service. schedulingURL is the base
// calendar URL the opaque token is appended to.
func NewService(sessions sessionRecorder, mailer domain.Mailer, records store.Repository, businessEmail, schedulingURL string) *Service {
	return &Service{
		sessions:      sessions,
		mailer:        mailer,
		records:       records,
		businessEmail: businessEmail,
		schedulingURL: schedulingURL,
		now:           time.Now,
		newToken:      func() string { return uuid.NewString() },
	}
}

// Request is one booking submission.
type Request struct {
	Name      string
	Email     string
	SessionID string
	Message   string
	Coach     string
}

// Result is the outcome of a booking request. EmailSent is false when
// the mail gateway failed; the scheduling link is still valid.
type Result struct {
	SchedulingLink string
	EmailSent      bool
	Message        string
}

// Book processes one booking request. Mail failure degrades to a
// successful result without confirmation; only validation rejects the
// request.
func (s *Service) Book(ctx context.Context, req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	coach := strings.TrimSpace(req.Coach)
	if coach == "" {
		coach = DefaultCoach
	}

	token := s.newToken()
	link := s.schedulingURL + "/" + token
	now := s.now()

	// Personalize from the chat session when we have one. Unknown
	// session ids are fine; the mails just carry less context.
	details := domain.BookingDetails{
		Name:     req.Name,
		Email:    req.Email,
		Coach:    coach,
		BookedAt: now,
	}
	userName, known := s.sessions.RecordBooking(req.SessionID, details)

	data := mail.BookingEmailData{
		Name:           req.Name,
		Email:          req.Email,
		Coach:          coach,
		Message:        req.Message,
		SessionID:      req.SessionID,
		SchedulingLink: link,
	}
	if known && userName != domain.DefaultUserName {
		data.PersonalNote = fmt.Sprintf("Great chatting with you, %s - looking forward to digging in together.", userName)
	}

	emailSent := s.dispatchMails(ctx, data)

	rec := &domain.BookingRecord{
		ID:             uuid.NewString(),
		SessionID:      req.SessionID,
		Name:           req.Name,
		Email:          req.Email,
		Coach:          coach,
		Message:        req.Message,
		SchedulingLink: link,
		CreatedAt:      now,
	}
	if err := s.records.InsertBooking(ctx, rec); err != nil {
		// Bookkeeping failure never blocks the booking.
		slog.Error("failed to record booking", "email", req.Email, "error", err)
	}

	msg := "You're all set! Check your email for the scheduling link."
	if !emailSent {
		msg = "Your scheduling link is ready below. We couldn't send the confirmation email, so save the link now."
	}

	return &Result{
		SchedulingLink: link,
		EmailSent:      emailSent,
		Message:        msg,
	}, nil
}

// dispatchMails sends the client confirmation and business
// notification. Either failing flips the degraded path; the booking
// itself has already succeeded.
func (s *Service) dispatchMails(ctx context.Context, data mail.BookingEmailData) bool {
	sent := true

	confirmation, err := mail.RenderBookingConfirmation(data)
	if err == nil {
		err = s.mailer.Send(ctx, domain.MailMessage{
			To:       data.Email,
			Subject:  "Your Summit Coaching discovery call",
			HTMLBody: confirmation,
		})
	}
	if err != nil {
		slog.Warn("booking confirmation mail failed", "to", data.Email, "error", err)
		sent = false
	}

	notification, err := mail.RenderBookingNotification(data)
	if err == nil {
		err = s.mailer.Send(ctx, domain.MailMessage{
			To:       s.businessEmail,
			Subject:  "New discovery call request: " + data.Name,
			HTMLBody: notification,
		})
	}
	if err != nil {
		slog.Warn("booking business notification failed", "error", err)
		sent = false
	}

	return sent
}

func validate(req Request) error {
	var msgs []string
	if strings.TrimSpace(req.Name) == "" {
		msgs = append(msgs, "name is required")
	}
	email := strings.TrimSpace(req.Email)
	if email == "" {
		msgs = append(msgs, "email is required")
	} else if !emailPattern.MatchString(email) {
		msgs = append(msgs, "email format is invalid")
	}
	if len(msgs) > 0 {
		return &domain.ValidationError{Messages: msgs}
	}
	return nil
}
