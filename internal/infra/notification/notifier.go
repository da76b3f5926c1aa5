// Package notification delivers vendor notifications by e-mail.
package notification

import (
	"context"
	"log/slog"

	"storehub/config"
	deliverycontext "storehub/internal/delivery/context"
	"storehub/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the parameters required for the notifier.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New returns an SMTP notifier when smtp is configured, and a notifier that
// only logs the message otherwise.
func New(params Params) service.Notifier {
	if params.Config.SMTP == nil || params.Config.SMTP.Host == "" {
		params.Logger.Warn("SMTP is not configured, notifications will only be logged")

		return NewLogNotifier(params.Logger)
	}

	return NewSMTPNotifier(params.Config.SMTP, params.Logger)
}

type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a notifier that writes messages to the log.
func NewLogNotifier(logger *slog.Logger) service.Notifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, to, subject, body string) error {
	deliverycontext.GetLoggerOrDefault(ctx, n.logger).Info("Notification",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}
