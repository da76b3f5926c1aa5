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

var _ repository.AccountRepository = (*accountRepository)(nil)

// accountRepository implements repository.AccountRepository using GORM.
// Favorites are rows of account_favorites keyed by (account_id, store_id).
type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var m model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Favorites").
		Where(query, arg).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return toAccountDomain(&m), nil
}

func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "email = ?", email)
}

func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	m := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return errors.Wrap(err, "failed to create account")
	}

	account.CreatedAt = m.CreatedAt
	account.UpdatedAt = m.UpdatedAt

	return nil
}

func (repo *accountRepository) ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error) {
	var models []model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Favorites").
		Where("role = ?", role.String()).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	result := make([]*entity.Account, len(models))
	for i := range models {
		result[i] = toAccountDomain(&models[i])
	}

	return result, nil
}

func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", id).Delete(&model.AccountFavoriteModel{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&model.AccountModel{}).Error
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}

func (repo *accountRepository) ensureExists(ctx context.Context, id uuid.UUID) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check account existence")
	}
	if count == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (repo *accountRepository) AddFavorite(ctx context.Context, accountID, storeID uuid.UUID) error {
	if err := repo.ensureExists(ctx, accountID); err != nil {
		return err
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.AccountFavoriteModel{AccountID: accountID, StoreID: storeID}).Error
	if err != nil {
		return errors.Wrap(err, "failed to add favorite")
	}

	return nil
}

func (repo *accountRepository) RemoveFavorite(ctx context.Context, accountID, storeID uuid.UUID) error {
	if err := repo.ensureExists(ctx, accountID); err != nil {
		return err
	}

	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND store_id = ?", accountID, storeID).
		Delete(&model.AccountFavoriteModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

func (repo *accountRepository) RemoveFavoritesEverywhere(ctx context.Context, storeIDs []uuid.UUID) (int64, error) {
	if len(storeIDs) == 0 {
		return 0, nil
	}

	var affected int64
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.AccountFavoriteModel{}).
			Where("store_id IN ?", storeIDs).
			Distinct("account_id").
			Count(&affected).Error; err != nil {
			return err
		}

		return tx.Where("store_id IN ?", storeIDs).Delete(&model.AccountFavoriteModel{}).Error
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to scrub favorites")
	}

	return affected, nil
}
