// Package notification provides a multi-channel notification system.
//
// Define a Notification:
//
//	type OrderReady struct{ Order models.Order }
//	func (n *OrderReady) Via() []string { return []string{"mail"} }
//	func (n *OrderReady) ToMail() notification.MailData {
//	    return notification.MailData{
//	        Subject: "Your order is ready for pickup",
//	        Body:    "<h1>Bonjour!</h1>…",
//	    }
//	}
//
// Send:
//
//	notification.Send(order.UserEmail, &OrderReady{Order: order})
package notification

import (
	"fmt"
	"time"

	fhttp "github.com/joycybakery/fournil/pkg/http"
	"github.com/joycybakery/fournil/pkg/logger"
	"github.com/joycybakery/fournil/pkg/mail"
)

// ------------------- Channel data structs -------------------

// MailData carries the data needed to send an email notification.
type MailData struct {
	To      string // overrides the notifiable address if set
	ReplyTo string
	Subject string
	Body    string // HTML
	Text    string // plain-text fallback
}

// WebhookData carries an arbitrary JSON payload to POST to a URL.
type WebhookData struct {
	URL     string
	Payload interface{}
	Headers map[string]string
}

// ------------------- Notification interface -------------------

// Notification is the interface every notification must satisfy.
type Notification interface {
	// Via returns the list of channel names: "mail", "webhook".
	Via() []string
}

// Mailable can be implemented to support the mail channel.
type Mailable interface {
	ToMail() MailData
}

// Webhookable can be implemented to support the webhook channel.
type Webhookable interface {
	ToWebhook() WebhookData
}

// ------------------- Send -------------------

// Send dispatches the notification through all channels returned by Via().
// address is typically an email address used for the mail channel.
func Send(address string, n Notification) []error {
	var errs []error
	for _, channel := range n.Via() {
		if err := dispatch(address, channel, n); err != nil {
			logger.Error("notification: channel failed",
				"channel", channel, "error", err)
			errs = append(errs, err)
		}
	}
	return errs
}

// SendAsync dispatches the notification in a background goroutine.
func SendAsync(address string, n Notification) {
	go func() {
		if errs := Send(address, n); len(errs) > 0 {
			for _, e := range errs {
				logger.Error("notification: async error", "error", e)
			}
		}
	}()
}

func dispatch(address, channel string, n Notification) error {
	switch channel {
	case "mail":
		m, ok := n.(Mailable)
		if !ok {
			return fmt.Errorf("notification: %T does not implement Mailable", n)
		}
		return sendMail(address, m.ToMail())

	case "webhook":
		wh, ok := n.(Webhookable)
		if !ok {
			return fmt.Errorf("notification: %T does not implement Webhookable", n)
		}
		return sendWebhook(wh.ToWebhook())

	default:
		return fmt.Errorf("notification: unknown channel %q", channel)
	}
}

// ------------------- Mail channel -------------------

func sendMail(address string, d MailData) error {
	to := d.To
	if to == "" {
		to = address
	}

	msg := mail.To(to).Subject(d.Subject)
	if d.ReplyTo != "" {
		msg.ReplyTo(d.ReplyTo)
	}
	if d.Body != "" {
		msg.Body(d.Body)
	} else {
		msg.Text(d.Text)
	}
	return msg.Send()
}

// ------------------- Webhook channel -------------------

func sendWebhook(d WebhookData) error {
	if d.URL == "" {
		return fmt.Errorf("notification: webhook URL is empty")
	}

	resp, err := fhttp.Post(d.URL).
		Headers(d.Headers).
		Timeout(10 * time.Second).
		Retry(3, time.Second).
		Body(d.Payload).
		Send()
	if err != nil {
		return fmt.Errorf("notification: webhook send: %w", err)
	}
	return resp.Throw()
}
