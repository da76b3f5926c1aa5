package impl

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

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

// storeService implements the StoreUsecase interface.
type storeService struct {
	accountRepo repository.AccountRepository
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	assets      service.AssetStorage
	logger      *slog.Logger
	now         func() time.Time
}

// StoreServiceParams holds dependencies for StoreService, injected by Fx.
type StoreServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	Assets      service.AssetStorage
	Logger      *slog.Logger
}

// NewStoreService is the constructor for storeService.
func NewStoreService(params StoreServiceParams) usecase.StoreUsecase {
	return &storeService{
		accountRepo: params.AccountRepo,
		storeRepo:   params.StoreRepo,
		productRepo: params.ProductRepo,
		assets:      params.Assets,
		logger:      params.Logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (srv *storeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListApprovedStores searches approved stores by name, category or address.
func (srv *storeService) ListApprovedStores(ctx context.Context, keyword string) ([]*entity.Store, error) {
	stores, err := srv.storeRepo.List(ctx, repository.StoreFilter{
		Status:  entity.StoreStatusApproved,
		Keyword: strings.TrimSpace(keyword),
	})
	if err != nil {
		return nil, translateRepoError(err, "list approved stores")
	}

	return stores, nil
}

// GetStore returns a store with its products.
func (srv *storeService) GetStore(ctx context.Context, storeID uuid.UUID) (*usecase.StoreDetail, error) {
	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, translateRepoError(err, "find store")
	}

	products, err := srv.productRepo.ListByStore(ctx, store.ID, "")
	if err != nil {
		return nil, translateRepoError(err, "list store products")
	}

	return &usecase.StoreDetail{Store: store, Products: products}, nil
}

// RequestStore records a new store awaiting moderation.
func (srv *storeService) RequestStore(ctx context.Context, principal *entity.Principal, input usecase.RequestStoreInput) (*entity.Store, error) {
	if err := authorize(principal, entity.CapabilityVendor); err != nil {
		return nil, err
	}

	address := entity.Address{
		Area:     strings.TrimSpace(input.Address.Area),
		City:     strings.TrimSpace(input.Address.City),
		District: strings.TrimSpace(input.Address.District),
	}
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	if name == "" || input.Image == "" || category == "" ||
		address.Area == "" || address.City == "" || address.District == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("please provide all store details")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store id")
	}

	now := srv.now()
	store := &entity.Store{
		ID:        id,
		VendorID:  principal.AccountID,
		Name:      name,
		Image:     input.Image,
		Category:  category,
		Address:   address,
		Status:    entity.StoreStatusPending,
		Reviews:   []entity.Review{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := srv.storeRepo.Create(ctx, store); err != nil {
		return nil, translateRepoError(err, "create store")
	}

	srv.log(ctx).Info("Store requested", slog.String("storeID", store.ID.String()), slog.String("vendorID", store.VendorID.String()))

	return store, nil
}

// ListMyStores returns the caller's stores in any status.
func (srv *storeService) ListMyStores(ctx context.Context, principal *entity.Principal, keyword string) ([]*entity.Store, error) {
	if err := authorize(principal, entity.CapabilityVendor); err != nil {
		return nil, err
	}

	stores, err := srv.storeRepo.List(ctx, repository.StoreFilter{
		VendorID: principal.AccountID,
		Keyword:  strings.TrimSpace(keyword),
		NameOnly: true,
	})
	if err != nil {
		return nil, translateRepoError(err, "list vendor stores")
	}

	return stores, nil
}

// ownedStore loads a store and checks the caller may manage it.
func (srv *storeService) ownedStore(ctx context.Context, principal *entity.Principal, storeID uuid.UUID) (*entity.Store, error) {
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

	return store, nil
}

// CreateProduct lists a product in an approved store.
func (srv *storeService) CreateProduct(ctx context.Context, principal *entity.Principal, storeID uuid.UUID, input usecase.CreateProductInput) (*entity.Product, error) {
	store, err := srv.ownedStore(ctx, principal, storeID)
	if err != nil {
		return nil, err
	}
	if !store.IsApproved() {
		return nil, domainerrors.ErrStoreNotApproved.WithDetails("cannot add products to a non-approved store")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if input.Price < 0 || math.IsNaN(input.Price) || math.IsInf(input.Price, 0) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must be a non-negative number")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate product id")
	}

	now := srv.now()
	product := &entity.Product{
		ID:          id,
		StoreID:     store.ID,
		VendorID:    store.VendorID,
		Name:        name,
		Image:       input.Image,
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, translateRepoError(err, "create product")
	}

	return product, nil
}

// ListStoreProducts returns the products of a store the caller manages.
func (srv *storeService) ListStoreProducts(ctx context.Context, principal *entity.Principal, storeID uuid.UUID, keyword string) ([]*entity.Product, error) {
	store, err := srv.ownedStore(ctx, principal, storeID)
	if err != nil {
		return nil, err
	}

	products, err := srv.productRepo.ListByStore(ctx, store.ID, strings.TrimSpace(keyword))
	if err != nil {
		return nil, translateRepoError(err, "list store products")
	}

	return products, nil
}

// DeleteProduct removes a product and, on a best-effort basis, its image.
func (srv *storeService) DeleteProduct(ctx context.Context, principal *entity.Principal, storeID, productID uuid.UUID) error {
	if err := authorize(principal, entity.CapabilityVendor); err != nil {
		return err
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return translateRepoError(err, "find product")
	}
	if product.StoreID != storeID {
		return domainerrors.ErrProductNotFound.WithDetails("product does not belong to this store")
	}
	if err := authorizeOwner(principal, product.VendorID); err != nil {
		return err
	}

	cleanupAssets(ctx, srv.assets, srv.log(ctx), product.Image)

	if err := srv.productRepo.Delete(ctx, product.ID); err != nil {
		return translateRepoError(err, "delete product")
	}

	return nil
}

// AddReview appends the caller's review and recomputes the store rating.
// Concurrent reviews on the same store may overwrite each other.
func (srv *storeService) AddReview(ctx context.Context, principal *entity.Principal, storeID uuid.UUID, input usecase.AddReviewInput) (*entity.Store, error) {
	if err := authorize(principal, entity.CapabilityAuthenticated); err != nil {
		return nil, err
	}

	comment := strings.TrimSpace(input.Comment)
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rating must be between 1 and 5")
	}
	if comment == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("comment is required")
	}

	store, err := srv.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		return nil, translateRepoError(err, "find store")
	}
	if !store.IsApproved() {
		return nil, domainerrors.ErrStoreNotApproved.WithDetails("cannot review a non-approved store")
	}
	if store.HasReviewBy(principal.AccountID) {
		return nil, domainerrors.ErrDuplicateReview
	}

	reviewer, err := srv.accountRepo.FindByID(ctx, principal.AccountID)
	if err != nil {
		return nil, translateRepoError(err, "find reviewer")
	}

	store.AppendReview(entity.Review{
		AccountID: reviewer.ID,
		Name:      reviewer.Name,
		Rating:    input.Rating,
		Comment:   comment,
		CreatedAt: srv.now(),
	})
	if err := srv.storeRepo.SaveReviews(ctx, store); err != nil {
		return nil, translateRepoError(err, "save reviews")
	}

	srv.log(ctx).Debug("Review added",
		slog.String("storeID", store.ID.String()),
		slog.Int("reviewCount", store.ReviewCount),
		slog.Float64("rating", store.Rating),
	)

	return store, nil
}
