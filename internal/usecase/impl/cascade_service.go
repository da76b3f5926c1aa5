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

// cascadeStep is one stage of a cascading deletion. Every step is safe to
// re-run, so a deletion interrupted halfway can simply be retried.
type cascadeStep struct {
	name string
	run  func(ctx context.Context) error
	// bestEffort steps log their failure and let the deletion continue.
	bestEffort bool
}

// cascadeService implements the CascadeUsecase interface. Steps run in a
// fixed order: dependents are removed before the root, and favorites are
// scrubbed before the stores they point to disappear.
type cascadeService struct {
	accountRepo repository.AccountRepository
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	assets      service.AssetStorage
	notifier    service.Notifier
	logger      *slog.Logger
}

// CascadeServiceParams holds dependencies for CascadeService, injected by Fx.
type CascadeServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	Assets      service.AssetStorage
	Notifier    service.Notifier
	Logger      *slog.Logger
}

// NewCascadeService is the constructor for cascadeService.
func NewCascadeService(params CascadeServiceParams) usecase.CascadeUsecase {
	return &cascadeService{
		accountRepo: params.AccountRepo,
		storeRepo:   params.StoreRepo,
		productRepo: params.ProductRepo,
		assets:      params.Assets,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

func (srv *cascadeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeleteStore removes a store, its products, their images and every favorite
// pointing at it. The vendor is notified when the admin deletes a store it
// does not own.
func (srv *cascadeService) DeleteStore(ctx context.Context, principal *entity.Principal, storeID uuid.UUID) (*usecase.CascadeReport, error) {
	if err := authorize(principal, entity.CapabilityVendor); err != nil {
		return nil, err
	}

	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, translateRepoError(err, "find store")
	}
	if err := authorizeOwner(principal, store.VendorID); err != nil {
		return nil, err
	}

	logger := srv.log(ctx).With(slog.String("storeID", store.ID.String()))
	report := &usecase.CascadeReport{RootID: store.ID}
	stores := []*entity.Store{store}

	var products []*entity.Product
	steps := srv.dependentSteps(logger, report, &stores, &products)
	if principal.IsAdmin() && !principal.Owns(store.VendorID) {
		steps = append(steps, cascadeStep{
			name:       "notify vendor",
			bestEffort: true,
			run: func(ctx context.Context) error {
				vendor, err := srv.accountRepo.FindByID(ctx, store.VendorID)
				if err != nil {
					return errors.Wrap(err, "find vendor")
				}

				return storeDeletedNotice(vendor.Name, store.Name).send(ctx, srv.notifier, logger, vendor)
			},
		})
	}

	if err := srv.execute(ctx, logger, steps); err != nil {
		return nil, err
	}

	logger.Info("Store deleted",
		slog.Int64("products", report.ProductsDeleted),
		slog.Int64("favoritesScrubbed", report.FavoritesScrubbed),
	)

	return report, nil
}

// DeleteVendor removes a vendor account with all of its stores, their
// products, every related image and every favorite pointing at those stores.
func (srv *cascadeService) DeleteVendor(ctx context.Context, principal *entity.Principal, vendorID uuid.UUID) (*usecase.CascadeReport, error) {
	if err := authorize(principal, entity.CapabilityAdmin); err != nil {
		return nil, err
	}

	vendor, err := srv.accountRepo.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrVendorNotFound
		}

		return nil, translateRepoError(err, "find vendor")
	}
	if !vendor.IsVendor() {
		return nil, domainerrors.ErrVendorNotFound.WithDetails("account is not a vendor")
	}

	logger := srv.log(ctx).With(slog.String("vendorID", vendor.ID.String()))
	report := &usecase.CascadeReport{RootID: vendor.ID}

	var stores []*entity.Store
	var products []*entity.Product

	steps := []cascadeStep{{
		name: "enumerate stores",
		run: func(ctx context.Context) error {
			found, err := srv.storeRepo.List(ctx, repository.StoreFilter{VendorID: vendor.ID})
			stores = found

			return err
		},
	}}
	steps = append(steps, srv.dependentSteps(logger, report, &stores, &products)...)
	steps = append(steps,
		cascadeStep{
			name: "delete vendor account",
			run: func(ctx context.Context) error {
				return srv.accountRepo.Delete(ctx, vendor.ID)
			},
		},
		cascadeStep{
			name:       "notify vendor",
			bestEffort: true,
			run: func(ctx context.Context) error {
				return accountDeletedNotice(vendor.Name).send(ctx, srv.notifier, logger, vendor)
			},
		},
	)

	if err := srv.execute(ctx, logger, steps); err != nil {
		return nil, err
	}

	logger.Info("Vendor deleted",
		slog.Int64("stores", report.StoresDeleted),
		slog.Int64("products", report.ProductsDeleted),
		slog.Int64("favoritesScrubbed", report.FavoritesScrubbed),
	)

	return report, nil
}

// dependentSteps builds the shared tail of both deletions: enumerate
// products, clean up images, delete products, scrub favorites, delete stores.
// The store set is read when the steps run, so an earlier step may fill it.
func (srv *cascadeService) dependentSteps(
	logger *slog.Logger,
	report *usecase.CascadeReport,
	stores *[]*entity.Store,
	products *[]*entity.Product,
) []cascadeStep {
	storeIDs := func() []uuid.UUID {
		ids := make([]uuid.UUID, len(*stores))
		for i, store := range *stores {
			ids[i] = store.ID
		}

		return ids
	}

	return []cascadeStep{
		{
			name: "enumerate products",
			run: func(ctx context.Context) error {
				found, err := srv.productRepo.ListByStores(ctx, storeIDs())
				*products = found

				return err
			},
		},
		{
			name:       "clean up assets",
			bestEffort: true,
			run: func(ctx context.Context) error {
				refs := make([]string, 0, len(*products)+len(*stores))
				for _, product := range *products {
					refs = append(refs, product.Image)
				}
				for _, store := range *stores {
					refs = append(refs, store.AssetRefs()...)
				}

				tally := cleanupAssets(ctx, srv.assets, logger, refs...)
				report.AssetsDeleted += tally.deleted
				report.AssetsMissing += tally.missing
				report.AssetFailures += tally.failures

				return nil
			},
		},
		{
			name: "delete products",
			run: func(ctx context.Context) error {
				deleted, err := srv.productRepo.DeleteByStores(ctx, storeIDs())
				report.ProductsDeleted = deleted

				return err
			},
		},
		{
			name: "scrub favorites",
			run: func(ctx context.Context) error {
				modified, err := srv.accountRepo.RemoveFavoritesEverywhere(ctx, storeIDs())
				report.FavoritesScrubbed = modified

				return err
			},
		},
		{
			name: "delete stores",
			run: func(ctx context.Context) error {
				deleted, err := srv.storeRepo.DeleteByIDs(ctx, storeIDs())
				report.StoresDeleted = deleted

				return err
			},
		},
	}
}

// execute runs the steps in order and stops at the first failing step that
// is not best-effort. Completed steps are not rolled back.
func (srv *cascadeService) execute(ctx context.Context, logger *slog.Logger, steps []cascadeStep) error {
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			if step.bestEffort {
				logger.Warn("Cascade step failed, continuing", slog.String("step", step.name), slog.Any("error", err))

				continue
			}

			logger.Error("Cascade step failed", slog.String("step", step.name), slog.Any("error", err))

			return translateRepoError(err, step.name)
		}

		logger.Debug("Cascade step completed", slog.String("step", step.name))
	}

	return nil
}
