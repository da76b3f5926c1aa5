package postgres

import (
	"context"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/repository"
	"storehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var _ repository.ProductRepository = (*productRepository)(nil)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	m := fromProductDomain(product)
	if err := repo.db.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	product.CreatedAt = m.CreatedAt
	product.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var m model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return toProductDomain(&m), nil
}

func (repo *productRepository) ListByStore(ctx context.Context, storeID uuid.UUID, keyword string) ([]*entity.Product, error) {
	query := repo.db.WithContext(ctx).Where("store_id = ?", storeID)
	if keyword != "" {
		query = query.Where("name ILIKE ?", likePattern(keyword))
	}

	return repo.find(query)
}

func (repo *productRepository) ListByStores(ctx context.Context, storeIDs []uuid.UUID) ([]*entity.Product, error) {
	if len(storeIDs) == 0 {
		return []*entity.Product{}, nil
	}

	return repo.find(repo.db.WithContext(ctx).Where("store_id IN ?", storeIDs))
}

func (repo *productRepository) find(query *gorm.DB) ([]*entity.Product, error) {
	var models []model.ProductModel
	if err := query.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	result := make([]*entity.Product, len(models))
	for i := range models {
		result[i] = toProductDomain(&models[i])
	}

	return result, nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func (repo *productRepository) DeleteByStores(ctx context.Context, storeIDs []uuid.UUID) (int64, error) {
	if len(storeIDs) == 0 {
		return 0, nil
	}

	res := repo.db.WithContext(ctx).Where("store_id IN ?", storeIDs).Delete(&model.ProductModel{})
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "failed to delete products")
	}

	return res.RowsAffected, nil
}
