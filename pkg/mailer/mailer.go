// Package mailer dispatches confirmation codes out of band. Delivery is
// best effort: callers persist the user first and surface dispatch
// failures without rolling anything back.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"kinohub/pkg/utils"

	"go.uber.org/zap"
)

type Mailer interface {
	SendConfirmationCode(ctx context.Context, to, username, code string) error
}

// New returns an SMTP mailer when a host is configured and a log-only
// mailer otherwise, so development setups still see the code.
func New(config utils.EmailConfig, log *zap.Logger) Mailer {
	if config.Host == "" {
		return &logMailer{log: log.With(zap.String("mailer", "log"))}
	}
	return &smtpMailer{
		config: config,
		log:    log.With(zap.String("mailer", "smtp")),
	}
}

type smtpMailer struct {
	config utils.EmailConfig
	log    *zap.Logger
}

func (m *smtpMailer) SendConfirmationCode(ctx context.Context, to, username, code string) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	var auth smtp.Auth
	if m.config.User != "" {
		auth = smtp.PlainAuth("", m.config.User, m.config.Password, m.config.Host)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Your confirmation code\r\n\r\n"+
		"Hi %s,\r\n\r\nYour registration code: %s\r\n",
		m.config.From, to, username, code)

	if err := smtp.SendMail(addr, auth, m.config.From, []string{to}, []byte(msg)); err != nil {
		m.log.Error("Failed to send confirmation code",
			zap.Error(err),
			zap.String("to", to),
		)
		return fmt.Errorf("send confirmation code to %s: %w", to, err)
	}

	m.log.Info("Confirmation code sent", zap.String("to", to))
	return nil
}

// logMailer writes the code to the log instead of sending it.
type logMailer struct {
	log *zap.Logger
}

func (m *logMailer) SendConfirmationCode(ctx context.Context, to, username, code string) error {
	m.log.Info("Confirmation code generated",
		zap.String("to", to),
		zap.String("username", username),
		zap.String("code", code),
	)
	return nil
}
