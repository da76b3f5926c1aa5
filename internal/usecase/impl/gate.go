package impl

import (
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authorize admits the principal when it holds the capability. A missing
// principal is unauthenticated, a principal with the wrong role is forbidden.
func authorize(principal *entity.Principal, capability entity.Capability) error {
	if capability == entity.CapabilityPublic {
		return nil
	}
	if principal == nil || !principal.Role.IsValid() {
		return domainerrors.ErrUnauthenticated
	}
	if !principal.Can(capability) {
		return domainerrors.ErrForbidden.WithDetails("requires " + string(capability))
	}

	return nil
}

// authorizeOwner admits the admin, or a vendor acting on a resource it owns.
// Ownership failures are reported as forbidden, never as not found.
func authorizeOwner(principal *entity.Principal, ownerID uuid.UUID) error {
	if err := authorize(principal, entity.CapabilityVendor); err != nil {
		return err
	}
	if principal.IsAdmin() || principal.Owns(ownerID) {
		return nil
	}

	return domainerrors.ErrNotResourceOwner
}

// translateRepoError maps persistence sentinels onto application errors.
// Anything unknown becomes a database execution error.
func translateRepoError(err error, action string) error {
	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return domainerrors.ErrAccountNotFound.WrapMessage(action)
	case errors.Is(err, repository.ErrStoreNotFound):
		return domainerrors.ErrStoreNotFound.WrapMessage(action)
	case errors.Is(err, repository.ErrProductNotFound):
		return domainerrors.ErrProductNotFound.WrapMessage(action)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return domainerrors.ErrAccountAlreadyExists.WrapMessage(action)
	case errors.Is(err, repository.ErrStatusConflict):
		return domainerrors.ErrInvalidStatusTransition.WrapMessage(action)
	default:
		return domainerrors.NewDatabaseExecuteError(err, action)
	}
}
