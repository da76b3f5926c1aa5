package notification

import (
	"context"
	"log/slog"

	"storehub/config"
	deliverycontext "storehub/internal/delivery/context"
	"storehub/internal/domain/service"
	"storehub/internal/errors"

	"gopkg.in/gomail.v2"
)

// mailSender is satisfied by *gomail.Dialer.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type smtpNotifier struct {
	sender mailSender
	from   string
	logger *slog.Logger
}

var _ service.Notifier = (*smtpNotifier)(nil)

// NewSMTPNotifier sends plain-text mails through the configured server.
// A new connection is dialed per message.
func NewSMTPNotifier(cfg *config.SMTPConfig, logger *slog.Logger) service.Notifier {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &smtpNotifier{
		sender: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
		logger: logger,
	}
}

func (n *smtpNotifier) Notify(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "notify")
	}
	if to == "" {
		return errors.New("notify: empty recipient")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := n.sender.DialAndSend(msg); err != nil {
		return errors.Wrapf(err, "send mail to %s", to)
	}

	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Debug("Mail sent",
		slog.String("to", to),
		slog.String("subject", subject),
	)

	return nil
}
