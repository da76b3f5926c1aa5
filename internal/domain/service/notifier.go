package service

import "context"

// Notifier delivers plain-text messages to an account's e-mail address.
type Notifier interface {
	Notify(ctx context.Context, to, subject, body string) error
}
