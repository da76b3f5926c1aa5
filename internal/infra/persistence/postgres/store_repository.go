package postgres

import (
	"context"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/repository"
	"storehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ repository.StoreRepository = (*storeRepository)(nil)

// storeRepository implements repository.StoreRepository using GORM.
// Embedded reviews are stored in store_reviews and preloaded in creation order.
type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

func (repo *storeRepository) withReviews(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Reviews", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC")
	})
}

func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	m := fromStoreDomain(store)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create store")
	}

	store.CreatedAt = m.CreatedAt
	store.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *storeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var m model.StoreModel
	if err := repo.withReviews(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return toStoreDomain(&m), nil
}

func (repo *storeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Store, error) {
	if len(ids) == 0 {
		return []*entity.Store{}, nil
	}

	return repo.find(repo.withReviews(ctx).Where("id IN ?", ids))
}

func (repo *storeRepository) List(ctx context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	query := repo.withReviews(ctx)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.VendorID != uuid.Nil {
		query = query.Where("vendor_id = ?", filter.VendorID)
	}
	if filter.Keyword != "" {
		pattern := likePattern(filter.Keyword)
		if filter.NameOnly {
			query = query.Where("name ILIKE ?", pattern)
		} else {
			query = query.Where(
				"name ILIKE ? OR category ILIKE ? OR area ILIKE ? OR city ILIKE ? OR district ILIKE ?",
				pattern, pattern, pattern, pattern, pattern,
			)
		}
	}

	return repo.find(query.Order("rating DESC").Order("created_at DESC"))
}

func (repo *storeRepository) find(query *gorm.DB) ([]*entity.Store, error) {
	var models []model.StoreModel
	if err := query.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	result := make([]*entity.Store, len(models))
	for i := range models {
		result[i] = toStoreDomain(&models[i])
	}

	return result, nil
}

func (repo *storeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.StoreStatus) error {
	res := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ? AND status = ?", id, from.String()).
		Update("status", to.String())
	if res.Error != nil {
		return errors.Wrap(res.Error, "failed to update store status")
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check store existence")
	}
	if count == 0 {
		return repository.ErrStoreNotFound
	}

	return repository.ErrStatusConflict
}

func (repo *storeRepository) SaveReviews(ctx context.Context, store *entity.Store) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.StoreModel{}).
			Where("id = ?", store.ID).
			Updates(map[string]any{
				"rating":       store.Rating,
				"review_count": store.ReviewCount,
			})
		if res.Error != nil {
			return errors.Wrap(res.Error, "failed to update store rating")
		}
		if res.RowsAffected == 0 {
			return repository.ErrStoreNotFound
		}

		if err := tx.Where("store_id = ?", store.ID).Delete(&model.StoreReviewModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to clear reviews")
		}

		reviews := fromReviewsDomain(store)
		if len(reviews) == 0 {
			return nil
		}

		return errors.Wrap(tx.Create(&reviews).Error, "failed to insert reviews")
	})
}

func (repo *storeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repo.DeleteByIDs(ctx, []uuid.UUID{id})

	return err
}

func (repo *storeRepository) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted int64
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id IN ?", ids).Delete(&model.StoreReviewModel{}).Error; err != nil {
			return err
		}

		res := tx.Where("id IN ?", ids).Delete(&model.StoreModel{})
		deleted = res.RowsAffected

		return res.Error
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete stores")
	}

	return deleted, nil
}
