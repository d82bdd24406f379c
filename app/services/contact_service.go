package services

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/joycybakery/fournil/config"
	"github.com/joycybakery/fournil/pkg/mail"
	"github.com/joycybakery/fournil/pkg/metrics"
)

// Contact relay error taxonomy, mirroring the signals the form expects:
// invalid argument, failed precondition, internal.
var (
	ErrMissingFields     = errors.New("contact: missing required fields")
	ErrRelayUnconfigured = errors.New("contact: email service not configured")
	ErrRelayFailed       = errors.New("contact: failed to send email")
)

// ContactForm is a visitor's contact-form submission.
type ContactForm struct {
	Name    string `json:"name" validate:"required,max=255"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"nullable,max=50"`
	Subject string `json:"subject" validate:"required,max=255"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactService relays validated form submissions to the bakery's inbox.
// Stateless pass-through; nothing is persisted.
type ContactService struct {
	send func(form ContactForm) error
}

func NewContactService() *ContactService {
	return &ContactService{send: sendContactEmail}
}

// Relay validates and forwards the submission.
//   - Blank required field → ErrMissingFields, nothing sent.
//   - SMTP unconfigured → ErrRelayUnconfigured.
//   - Transport failure → ErrRelayFailed.
func (s *ContactService) Relay(form ContactForm) error {
	if strings.TrimSpace(form.Name) == "" ||
		strings.TrimSpace(form.Email) == "" ||
		strings.TrimSpace(form.Subject) == "" ||
		strings.TrimSpace(form.Message) == "" {
		metrics.ContactRelays.WithLabelValues("invalid").Inc()
		return ErrMissingFields
	}

	if err := s.send(form); err != nil {
		if errors.Is(err, mail.ErrNotConfigured) {
			metrics.ContactRelays.WithLabelValues("unconfigured").Inc()
			return ErrRelayUnconfigured
		}
		metrics.ContactRelays.WithLabelValues("error").Inc()
		return fmt.Errorf("%w: %v", ErrRelayFailed, err)
	}

	metrics.ContactRelays.WithLabelValues("sent").Inc()
	return nil
}

// sendContactEmail builds the HTML relay message and sends it to the
// configured recipient, with Reply-To pointing back at the visitor.
func sendContactEmail(form ContactForm) error {
	phone := form.Phone
	if phone == "" {
		phone = "Not provided"
	}

	body := fmt.Sprintf(`
        <h2>New Contact Form Submission</h2>
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> %s</p>
        <p><strong>Phone:</strong> %s</p>
        <p><strong>Subject:</strong> %s</p>
        <h3>Message:</h3>
        <p>%s</p>
        <hr>
        <p><em>This message was sent from your website contact form.</em></p>`,
		html.EscapeString(form.Name),
		html.EscapeString(form.Email),
		html.EscapeString(phone),
		html.EscapeString(form.Subject),
		strings.ReplaceAll(html.EscapeString(form.Message), "\n", "<br>"),
	)

	return mail.To(config.ContactRecipient()).
		ReplyTo(form.Email).
		Subject("Contact Form: " + form.Subject).
		Body(body).
		Send()
}
