// Package mail provides the outbound email implementation of the Mailer service.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"

	"accounts/config"
	"accounts/internal/domain/service"
)

const defaultFromAddress = "onboarding@resend.dev"

// resendMailer delivers verification and reset links through the Resend API.
type resendMailer struct {
	client *resend.Client
	from   string
	appURL string
	logger *slog.Logger
}

// NewResendMailer is the constructor for resendMailer.
func NewResendMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg == nil || cfg.Mail == nil {
		return nil, errors.New("mail configuration must be provided")
	}
	if cfg.Mail.APIKey == "" {
		logger.Warn("Mail API key not configured, email sending will fail")
	}

	from := cfg.Mail.FromAddress
	if from == "" {
		from = defaultFromAddress
	}

	return &resendMailer{
		client: resend.NewClient(cfg.Mail.APIKey),
		from:   from,
		appURL: strings.TrimRight(cfg.Mail.AppURL, "/"),
		logger: logger,
	}, nil
}

// SendVerificationEmail sends an email-verification link.
func (m *resendMailer) SendVerificationEmail(ctx context.Context, email, token string) (string, error) {
	url := fmt.Sprintf("%s/verify-email?token=%s", m.appURL, token)

	return m.send(ctx, email, "Verify your email address",
		fmt.Sprintf(`<h1>Verify your email address</h1>
<p>Please click the link below to verify your email address:</p>
<p><a href="%s">%s</a></p>
<p>If you did not request this verification, please ignore this email.</p>`, url, url),
		fmt.Sprintf("Please verify your email address by visiting: %s", url),
	)
}

// SendPasswordResetEmail sends a password-reset link.
func (m *resendMailer) SendPasswordResetEmail(ctx context.Context, email, token string) (string, error) {
	url := fmt.Sprintf("%s/reset-password?token=%s", m.appURL, token)

	return m.send(ctx, email, "Reset your password",
		fmt.Sprintf(`<h1>Reset your password</h1>
<p>You requested to reset your password. Click the link below to reset it:</p>
<p><a href="%s">%s</a></p>
<p>This link will expire in 1 hour.</p>
<p>If you did not request a password reset, please ignore this email.</p>`, url, url),
		fmt.Sprintf("Reset your password by visiting: %s", url),
	)
}

// send dispatches a single message and returns the provider-side message ID.
func (m *resendMailer) send(ctx context.Context, to, subject, html, text string) (string, error) {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to send email to %s", to)
	}

	m.logger.Info("Email sent", slog.String("to", to), slog.String("id", sent.Id))

	return sent.Id, nil
}
