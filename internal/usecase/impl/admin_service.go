package impl

import (
	"context"
	"log/slog"

	deliverycontext "storehub/internal/delivery/context"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/repository"
	"storehub/internal/domain/service"
	"storehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	accountRepo repository.AccountRepository
	storeRepo   repository.StoreRepository
	notifier    service.Notifier
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	StoreRepo   repository.StoreRepository
	Notifier    service.Notifier
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		accountRepo: params.AccountRepo,
		storeRepo:   params.StoreRepo,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPendingRequests returns stores awaiting a decision with their vendor's contact.
func (srv *adminService) ListPendingRequests(ctx context.Context, principal *entity.Principal) ([]*usecase.StoreWithVendor, error) {
	return srv.listStores(ctx, principal, repository.StoreFilter{Status: entity.StoreStatusPending})
}

// ListAllStores returns every store regardless of status.
func (srv *adminService) ListAllStores(ctx context.Context, principal *entity.Principal) ([]*usecase.StoreWithVendor, error) {
	return srv.listStores(ctx, principal, repository.StoreFilter{})
}

func (srv *adminService) listStores(ctx context.Context, principal *entity.Principal, filter repository.StoreFilter) ([]*usecase.StoreWithVendor, error) {
	if err := authorize(principal, entity.CapabilityAdmin); err != nil {
		return nil, err
	}

	stores, err := srv.storeRepo.List(ctx, filter)
	if err != nil {
		return nil, translateRepoError(err, "list stores")
	}

	contacts, err := srv.vendorContacts(ctx, stores)
	if err != nil {
		return nil, err
	}

	result := make([]*usecase.StoreWithVendor, len(stores))
	for i, store := range stores {
		result[i] = &usecase.StoreWithVendor{Store: store, Vendor: contacts[store.VendorID]}
	}

	return result, nil
}

// vendorContacts resolves the owners of the given stores. Owners that are not
// vendors (the admin may own stores) are looked up one by one; owners that no
// longer exist are left out.
func (srv *adminService) vendorContacts(ctx context.Context, stores []*entity.Store) (map[uuid.UUID]*usecase.VendorContact, error) {
	contacts := make(map[uuid.UUID]*usecase.VendorContact)
	if len(stores) == 0 {
		return contacts, nil
	}

	vendors, err := srv.accountRepo.ListByRole(ctx, entity.RoleVendor)
	if err != nil {
		return nil, translateRepoError(err, "list vendors")
	}
	for _, vendor := range vendors {
		contacts[vendor.ID] = toVendorContact(vendor)
	}

	for _, store := range stores {
		if _, ok := contacts[store.VendorID]; ok {
			continue
		}

		owner, err := srv.accountRepo.FindByID(ctx, store.VendorID)
		if errors.Is(err, repository.ErrAccountNotFound) {
			contacts[store.VendorID] = nil

			continue
		}
		if err != nil {
			return nil, translateRepoError(err, "find store owner")
		}
		contacts[owner.ID] = toVendorContact(owner)
	}

	return contacts, nil
}

func toVendorContact(account *entity.Account) *usecase.VendorContact {
	return &usecase.VendorContact{
		ID:    account.ID,
		Name:  account.Name,
		Email: account.Email,
		Phone: account.Phone,
	}
}

// SetStoreStatus approves or rejects a pending store and notifies its vendor.
// Decided stores cannot be moved again.
func (srv *adminService) SetStoreStatus(ctx context.Context, principal *entity.Principal, storeID uuid.UUID, status entity.StoreStatus) (*entity.Store, error) {
	if err := authorize(principal, entity.CapabilityAdmin); err != nil {
		return nil, err
	}
	if status != entity.StoreStatusApproved && status != entity.StoreStatusRejected {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status must be approved or rejected")
	}

	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, translateRepoError(err, "find store")
	}
	if !store.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails("store is already " + store.Status.String())
	}

	if err := srv.storeRepo.UpdateStatus(ctx, store.ID, store.Status, status); err != nil {
		return nil, translateRepoError(err, "update store status")
	}
	store.Status = status

	logger := srv.log(ctx).With(slog.String("storeID", store.ID.String()))
	logger.Info("Store request decided", slog.String("status", status.String()))

	vendor, err := srv.accountRepo.FindByID(ctx, store.VendorID)
	if err != nil {
		logger.Warn("Vendor notification skipped", slog.Any("error", err))

		return store, nil
	}
	if err := storeDecisionNotice(vendor.Name, store.Name, status).send(ctx, srv.notifier, logger, vendor); err != nil {
		logger.Warn("Vendor notification failed", slog.Any("error", err))
	}

	return store, nil
}

// ListVendors returns every vendor account.
func (srv *adminService) ListVendors(ctx context.Context, principal *entity.Principal) ([]*entity.Account, error) {
	if err := authorize(principal, entity.CapabilityAdmin); err != nil {
		return nil, err
	}

	vendors, err := srv.accountRepo.ListByRole(ctx, entity.RoleVendor)
	if err != nil {
		return nil, translateRepoError(err, "list vendors")
	}

	return vendors, nil
}
