package memory

import (
	"context"
	"slices"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/repository"

	"github.com/google/uuid"
)

var _ repository.StoreRepository = (*storeRepository)(nil)

type storeRepository struct {
	db *DB
}

// NewStoreRepository returns a StoreRepository backed by db.
func NewStoreRepository(db *DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(_ context.Context, store *entity.Store) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if store.ID == uuid.Nil {
		store.ID = uuid.New()
	}
	t := now()
	store.CreatedAt = t
	store.UpdatedAt = t
	r.db.stores[store.ID] = copyStore(store)

	return nil
}

func (r *storeRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	store, ok := r.db.stores[id]
	if !ok {
		return nil, repository.ErrStoreNotFound
	}

	return copyStore(store), nil
}

func (r *storeRepository) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	result := make([]*entity.Store, 0, len(ids))
	for _, id := range ids {
		if store, ok := r.db.stores[id]; ok {
			result = append(result, copyStore(store))
		}
	}

	return result, nil
}

func (r *storeRepository) List(_ context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	result := make([]*entity.Store, 0)
	for _, store := range r.db.stores {
		if filter.Status != "" && store.Status != filter.Status {
			continue
		}
		if filter.VendorID != uuid.Nil && store.VendorID != filter.VendorID {
			continue
		}
		if filter.Keyword != "" && !matchesKeyword(store, filter.Keyword, filter.NameOnly) {
			continue
		}
		result = append(result, copyStore(store))
	}

	slices.SortFunc(result, func(a, b *entity.Store) int {
		switch {
		case a.Rating > b.Rating:
			return -1
		case a.Rating < b.Rating:
			return 1
		default:
			return b.CreatedAt.Compare(a.CreatedAt)
		}
	})

	return result, nil
}

func matchesKeyword(store *entity.Store, keyword string, nameOnly bool) bool {
	if containsFold(store.Name, keyword) {
		return true
	}
	if nameOnly {
		return false
	}

	return containsFold(store.Category, keyword) ||
		containsFold(store.Address.Area, keyword) ||
		containsFold(store.Address.City, keyword) ||
		containsFold(store.Address.District, keyword)
}

func (r *storeRepository) UpdateStatus(_ context.Context, id uuid.UUID, from, to entity.StoreStatus) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	store, ok := r.db.stores[id]
	if !ok {
		return repository.ErrStoreNotFound
	}
	if store.Status != from {
		return repository.ErrStatusConflict
	}
	store.Status = to
	store.UpdatedAt = now()

	return nil
}

func (r *storeRepository) SaveReviews(_ context.Context, store *entity.Store) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	existing, ok := r.db.stores[store.ID]
	if !ok {
		return repository.ErrStoreNotFound
	}
	existing.Reviews = slices.Clone(store.Reviews)
	existing.Rating = store.Rating
	existing.ReviewCount = store.ReviewCount
	existing.UpdatedAt = now()

	return nil
}

func (r *storeRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.stores, id)

	return nil
}

func (r *storeRepository) DeleteByIDs(_ context.Context, ids []uuid.UUID) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var deleted int64
	for _, id := range ids {
		if _, ok := r.db.stores[id]; ok {
			delete(r.db.stores, id)
			deleted++
		}
	}

	return deleted, nil
}
