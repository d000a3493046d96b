package workers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/wamique00786/wesalvator/internal/config"
	"github.com/wamique00786/wesalvator/internal/domain"
)

// NewDeliverer builds the deliverer for the configured channel.
func NewDeliverer(cfg config.NotifyConfig, logger *slog.Logger) Deliverer {
	switch cfg.Channel {
	case config.NotifyWebhook:
		return NewWebhookDeliverer(cfg.WebhookURL)
	case config.NotifySendGrid:
		return NewSendGridDeliverer(cfg.SendGridAPIKey, cfg.FromName, cfg.FromEmail)
	default:
		return NewLogDeliverer(logger)
	}
}

type WebhookDeliverer struct {
	url  string
	http *http.Client
}

func NewWebhookDeliverer(url string) *WebhookDeliverer {
	return &WebhookDeliverer{url: url, http: &http.Client{Timeout: 5 * time.Second}}
}

func (d *WebhookDeliverer) Channel() string { return string(config.NotifyWebhook) }

func (d *WebhookDeliverer) Deliver(ctx context.Context, n domain.Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}

type SendGridDeliverer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

func NewSendGridDeliverer(apiKey, fromName, fromEmail string) *SendGridDeliverer {
	return &SendGridDeliverer{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// WithBaseURL points the client at another mail send endpoint.
func (d *SendGridDeliverer) WithBaseURL(url string) *SendGridDeliverer {
	d.client.BaseURL = url
	return d
}

func (d *SendGridDeliverer) Channel() string { return string(config.NotifySendGrid) }

func (d *SendGridDeliverer) Deliver(ctx context.Context, n domain.Notification) error {
	if n.RecipientEmail == "" {
		return fmt.Errorf("recipient %s has no e-mail", n.RecipientID)
	}
	subject, text := renderNotification(n)

	from := mail.NewEmail(d.fromName, d.fromEmail)
	to := mail.NewEmail(n.RecipientName, n.RecipientEmail)
	message := mail.NewSingleEmail(from, subject, to, text, "")

	resp, err := d.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
}

// LogDeliverer only writes the notification to the log.
type LogDeliverer struct {
	logger *slog.Logger
}

func NewLogDeliverer(logger *slog.Logger) *LogDeliverer {
	return &LogDeliverer{logger: logger}
}

func (d *LogDeliverer) Channel() string { return string(config.NotifyLog) }

func (d *LogDeliverer) Deliver(_ context.Context, n domain.Notification) error {
	subject, _ := renderNotification(n)
	d.logger.Info(subject,
		slog.String("recipient_id", n.RecipientID.String()),
		slog.String("recipient_email", n.RecipientEmail),
		slog.String("report_id", n.ReportID.String()),
		slog.String("priority", string(n.Priority)),
	)
	return nil
}

func renderNotification(n domain.Notification) (subject, text string) {
	switch n.Kind {
	case domain.NotifyAdminReview:
		subject = "Animal Report Requires Review"
	default:
		subject = "New Animal Rescue Assignment"
	}

	text = fmt.Sprintf(`Hello %s,

A %s priority animal report needs attention.

Description: %s
Location: https://www.google.com/maps?q=%f,%f
Reported by: %s
Report ID: %s
`, n.RecipientName, n.Priority, n.Description, n.Latitude, n.Longitude, n.ReporterName, n.ReportID)

	if n.ReporterPhone != "" {
		text += fmt.Sprintf("Reporter phone: %s\n", n.ReporterPhone)
	}
	return subject, text
}
