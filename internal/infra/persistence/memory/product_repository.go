package memory

import (
	"context"
	"slices"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/repository"

	"github.com/google/uuid"
)

var _ repository.ProductRepository = (*productRepository)(nil)

type productRepository struct {
	db *DB
}

// NewProductRepository returns a ProductRepository backed by db.
func NewProductRepository(db *DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(_ context.Context, product *entity.Product) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	t := now()
	product.CreatedAt = t
	product.UpdatedAt = t
	r.db.products[product.ID] = copyProduct(product)

	return nil
}

func (r *productRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	product, ok := r.db.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return copyProduct(product), nil
}

func (r *productRepository) ListByStore(_ context.Context, storeID uuid.UUID, keyword string) ([]*entity.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	result := make([]*entity.Product, 0)
	for _, product := range r.db.products {
		if product.StoreID != storeID {
			continue
		}
		if keyword != "" && !containsFold(product.Name, keyword) {
			continue
		}
		result = append(result, copyProduct(product))
	}
	sortNewestFirst(result)

	return result, nil
}

func (r *productRepository) ListByStores(_ context.Context, storeIDs []uuid.UUID) ([]*entity.Product, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	stores := idSet(storeIDs)
	result := make([]*entity.Product, 0)
	for _, product := range r.db.products {
		if _, ok := stores[product.StoreID]; ok {
			result = append(result, copyProduct(product))
		}
	}
	sortNewestFirst(result)

	return result, nil
}

func (r *productRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.products, id)

	return nil
}

func (r *productRepository) DeleteByStores(_ context.Context, storeIDs []uuid.UUID) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stores := idSet(storeIDs)
	var deleted int64
	for id, product := range r.db.products {
		if _, ok := stores[product.StoreID]; ok {
			delete(r.db.products, id)
			deleted++
		}
	}

	return deleted, nil
}

func sortNewestFirst(products []*entity.Product) {
	slices.SortFunc(products, func(a, b *entity.Product) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
