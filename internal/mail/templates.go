package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// Notification bodies are small self-contained HTML fragments; mail
// clients get no external CSS or images.

var bookingConfirmationTmpl = template.Must(template.New("booking_confirmation").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px">
  <h2>Your discovery call with Summit Coaching</h2>
  <p>Hi {{.Name}},</p>
  <p>Thanks for booking a free 30-minute discovery call. Pick a time that
  works for you here:</p>
  <p><a href="{{.SchedulingLink}}">{{.SchedulingLink}}</a></p>
  {{if .PersonalNote}}<p>{{.PersonalNote}}</p>{{end}}
  <p>Talk soon,<br>Dana Reyes<br>Summit Coaching</p>
</div>`))

var bookingNotificationTmpl = template.Must(template.New("booking_notification").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px">
  <h2>New discovery call request</h2>
  <ul>
    <li><strong>Name:</strong> {{.Name}}</li>
    <li><strong>Email:</strong> {{.Email}}</li>
    <li><strong>Coach:</strong> {{.Coach}}</li>
    {{if .SessionID}}<li><strong>Chat session:</strong> {{.SessionID}}</li>{{end}}
  </ul>
  {{if .Message}}<p><strong>Message:</strong></p><p>{{.Message}}</p>{{end}}
  <p>Scheduling link sent: <a href="{{.SchedulingLink}}">{{.SchedulingLink}}</a></p>
</div>`))

var contactNotificationTmpl = template.Must(template.New("contact_notification").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px">
  <h2>New contact form submission</h2>
  <ul>
    <li><strong>Name:</strong> {{.Name}}</li>
    <li><strong>Email:</strong> {{.Email}}</li>
    {{if .Phone}}<li><strong>Phone:</strong> {{.Phone}}</li>{{end}}
    {{if .Subject}}<li><strong>Subject:</strong> {{.Subject}}</li>{{end}}
    {{if .PreferredContact}}<li><strong>Preferred contact:</strong> {{.PreferredContact}}</li>{{end}}
  </ul>
  <p><strong>Message:</strong></p>
  <p>{{.Message}}</p>
</div>`))

var contactAutoreplyTmpl = template.Must(template.New("contact_autoreply").Parse(`
<div style="font-family:Arial,sans-serif;max-width:600px">
  <h2>We got your message</h2>
  <p>Hi {{.Name}},</p>
  <p>Thanks for reaching out to Summit Coaching. We read every message
  and will get back to you within one business day.</p>
  <p>Warmly,<br>Dana Reyes<br>Summit Coaching</p>
</div>`))

// BookingEmailData feeds the booking templates.
type BookingEmailData struct {
	Name           string
	Email          string
	Coach          string
	Message        string
	SessionID      string
	SchedulingLink string
	PersonalNote   string
}

// ContactEmailData feeds the contact templates.
type ContactEmailData struct {
	Name             string
	Email            string
	Phone            string
	Subject          string
	Message          string
	PreferredContact string
}

// RenderBookingConfirmation renders the client-facing booking email.
func RenderBookingConfirmation(d BookingEmailData) (string, error) {
	return render(bookingConfirmationTmpl, d)
}

// RenderBookingNotification renders the business-facing booking email.
func RenderBookingNotification(d BookingEmailData) (string, error) {
	return render(bookingNotificationTmpl, d)
}

// RenderContactNotification renders the business-facing contact email.
func RenderContactNotification(d ContactEmailData) (string, error) {
	return render(contactNotificationTmpl, d)
}

// RenderContactAutoreply renders the submitter-facing autoreply.
func RenderContactAutoreply(d ContactEmailData) (string, error) {
	return render(contactAutoreplyTmpl, d)
}

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render %s: %w", t.Name(), err)
	}
	return b.String(), nil
}
