// Package jobs defines the queued background jobs and wires the domain
// event listeners that dispatch them. Call Boot once at startup.
package jobs

import (
	"fmt"
	"time"

	"github.com/joycybakery/fournil/app/models"
	"github.com/joycybakery/fournil/app/services"
	"github.com/joycybakery/fournil/config"
	"github.com/joycybakery/fournil/pkg/event"
	"github.com/joycybakery/fournil/pkg/logger"
	"github.com/joycybakery/fournil/pkg/metrics"
	"github.com/joycybakery/fournil/pkg/notification"
	"github.com/joycybakery/fournil/pkg/queue"
)

// statusSubjects maps a new order status to the customer-facing email
// subject. Statuses without an entry send no email.
var statusSubjects = map[string]string{
	models.StatusConfirmed: "Votre commande est confirmée",
	models.StatusReady:     "Votre commande est prête !",
	models.StatusCompleted: "Merci pour votre commande",
}

// OrderStatusEmailJob notifies a customer that their order moved to a new
// status. Dispatched by the order.status_changed listener; phone orders
// without an email address are skipped at dispatch time.
type OrderStatusEmailJob struct {
	OrderID   string `json:"orderId"`
	UserEmail string `json:"userEmail"`
	From      string `json:"from"`
	To        string `json:"to"`
}

// Handle sends the notification through the configured channels.
func (j OrderStatusEmailJob) Handle() error {
	start := time.Now()
	errs := notification.Send(j.UserEmail, &orderStatusNotification{job: j})
	if len(errs) > 0 {
		metrics.RecordQueueJob("OrderStatusEmailJob", "failed", start)
		return fmt.Errorf("order status notification: %d channel(s) failed: %v", len(errs), errs[0])
	}
	metrics.RecordQueueJob("OrderStatusEmailJob", "success", start)
	return nil
}

// orderStatusNotification renders the job through the notification channels.
type orderStatusNotification struct {
	job OrderStatusEmailJob
}

func (n *orderStatusNotification) Via() []string {
	channels := []string{"mail"}
	if config.Get("ORDER_WEBHOOK_URL", "") != "" {
		channels = append(channels, "webhook")
	}
	return channels
}

func (n *orderStatusNotification) ToMail() notification.MailData {
	subject, ok := statusSubjects[n.job.To]
	if !ok {
		subject = "Mise à jour de votre commande"
	}
	body := fmt.Sprintf(`
        <h2>%s</h2>
        <p>Bonjour,</p>
        <p>Votre commande <strong>%s</strong> est maintenant <strong>%s</strong>.</p>
        <p>À très bientôt à la boulangerie !</p>`,
		subject, n.job.OrderID, n.job.To)

	return notification.MailData{Subject: subject, Body: body}
}

func (n *orderStatusNotification) ToWebhook() notification.WebhookData {
	return notification.WebhookData{
		URL: config.Get("ORDER_WEBHOOK_URL", ""),
		Payload: map[string]string{
			"orderId": n.job.OrderID,
			"from":    n.job.From,
			"to":      n.job.To,
		},
	}
}

// Boot registers job types with the queue and hooks the domain events that
// dispatch them. Call once at startup, before queue.StartWorkers.
func Boot() {
	queue.Register("OrderStatusEmailJob", func() queue.Job { return &OrderStatusEmailJob{} })

	event.Listen(services.EventOrderStatusChanged, func(payload interface{}) {
		changed, ok := payload.(services.OrderStatusChanged)
		if !ok {
			return
		}
		if changed.UserEmail == "" {
			return // phone order without a captured address
		}
		job := OrderStatusEmailJob{
			OrderID:   changed.OrderID,
			UserEmail: changed.UserEmail,
			From:      changed.From,
			To:        changed.To,
		}
		if err := queue.Dispatch(job); err != nil {
			logger.Error("jobs: dispatch status email", "order_id", changed.OrderID, "error", err)
		}
	})
}
