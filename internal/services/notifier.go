package services

import (
	"fmt"
	"log/slog"

	"github.com/rugbyanthemzone/anthem-backend/internal/config"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier sends best-effort transactional email. Every method is safe to
// call from a goroutine and never returns an error: delivery failures are
// logged and dropped.
type Notifier struct {
	cfg *config.Config
}

func NewNotifier(cfg *config.Config) *Notifier {
	return &Notifier{cfg: cfg}
}

func (n *Notifier) SendWelcome(toEmail string) {
	n.send(toEmail, "Welcome to Rugby Anthem Zone",
		"Your account is ready. Head to the pricing page to unlock premium match content.")
}

func (n *Notifier) SendSubscriptionActivated(toEmail, tierCode string) {
	n.send(toEmail, "Your subscription is active",
		fmt.Sprintf("Your %s subscription is now active. Enjoy the rugby!", tierCode))
}

func (n *Notifier) send(toEmail, subject, body string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("notifier panic recovered", "error", fmt.Sprint(r))
		}
	}()

	if n.cfg.SendGridAPIKey == "" || toEmail == "" {
		return
	}

	from := mail.NewEmail("Rugby Anthem Zone", n.cfg.FromEmail)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(n.cfg.SendGridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		slog.Error("email send failed", "subject", subject, "error", err)
		return
	}
	if resp.StatusCode >= 400 {
		slog.Error("email send rejected", "subject", subject, "status", resp.StatusCode)
	}
}
