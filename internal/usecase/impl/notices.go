package impl

import (
	"context"
	"fmt"
	"log/slog"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/service"

	"github.com/pkg/errors"
)

// notice is a plain-text mail sent to a vendor.
type notice struct {
	subject string
	body    string
}

func storeDecisionNotice(vendorName, storeName string, status entity.StoreStatus) notice {
	return notice{
		subject: fmt.Sprintf("Your Store Request has been %s", status),
		body: fmt.Sprintf("Hello %s,\n\nYour request for the store %q has been %s.\n\nThank you,\nAdmin",
			vendorName, storeName, status),
	}
}

func storeDeletedNotice(vendorName, storeName string) notice {
	return notice{
		subject: "Your Store has been Deleted",
		body: fmt.Sprintf("Hello %s,\n\nYour store %q has been deleted by the administrator.\n\nThank you,\nAdmin",
			vendorName, storeName),
	}
}

func accountDeletedNotice(vendorName string) notice {
	return notice{
		subject: "Your Account has been Deleted",
		body: fmt.Sprintf("Hello %s,\n\nYour vendor account and all associated stores have been deleted by the administrator.\n\nThank you,\nAdmin",
			vendorName),
	}
}

// send delivers the notice. Callers treat failures as best-effort.
func (n notice) send(ctx context.Context, notifier service.Notifier, logger *slog.Logger, to *entity.Account) error {
	if to == nil || to.Email == "" {
		return errors.New("recipient has no e-mail address")
	}

	if err := notifier.Notify(ctx, to.Email, n.subject, n.body); err != nil {
		return errors.Wrapf(err, "notify %s", to.Email)
	}

	logger.Info("Vendor notified", slog.String("to", to.Email), slog.String("subject", n.subject))

	return nil
}
