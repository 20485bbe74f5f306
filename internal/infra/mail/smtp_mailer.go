// Package mail sends transactional email over SMTP.
package mail

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/fx"
)

// smtpMailer implements the Mailer interface via an SMTP relay.
type smtpMailer struct {
	client *gomail.Client
	from   string
	logger *slog.Logger
}

// MailerParams holds dependencies for the SMTP mailer, injected by Fx.
type MailerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer is the constructor for smtpMailer.
func NewMailer(params MailerParams) (service.Mailer, error) {
	cfg := params.Config.SMTP
	if cfg == nil {
		return nil, errors.New("smtp config is required")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
	}
	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	return &smtpMailer{
		client: client,
		from:   cfg.From,
		logger: params.Logger,
	}, nil
}

// Send delivers one message to all recipients.
func (m *smtpMailer) Send(ctx context.Context, mail *service.Mail) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "set sender")
	}
	if err := msg.To(mail.Recipients...); err != nil {
		return errors.Wrap(err, "set recipients")
	}
	msg.Subject(mail.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, mail.Body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return errors.Wrap(err, "send mail")
	}

	m.logger.Debug("Mail sent",
		slog.String("subject", mail.Subject),
		slog.Int("recipients", len(mail.Recipients)),
	)

	return nil
}
