package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/Grenders/transport-api/internal/config"
	"github.com/Grenders/transport-api/internal/domain/repository"
)

type client struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewSMTPMailer creates a Mailer delivering over plain SMTP
func NewSMTPMailer(cfg *config.SMTPConfig, logger *zap.Logger) repository.Mailer {
	return &client{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// SendPasswordReset delivers the password-reset link to the address
func (c *client) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Password reset")
	msg.SetBody("text/plain", fmt.Sprintf(
		"You requested a password reset.\n\n"+
			"Follow this link to choose a new password:\n%s\n\n"+
			"The link is valid for one hour. If you did not request a reset, ignore this message.",
		resetURL,
	))

	if err := c.dialer.DialAndSend(msg); err != nil {
		c.logger.Error("Failed to send password reset mail",
			zap.String("to", to),
			zap.Error(err))
		return fmt.Errorf("send password reset mail: %w", err)
	}

	c.logger.Info("Password reset mail sent", zap.String("to", to))
	return nil
}
