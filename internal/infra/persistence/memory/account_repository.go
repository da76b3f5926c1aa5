package memory

import (
	"context"
	"slices"
	"strings"

	"storehub/internal/domain/entity"
	"storehub/internal/domain/repository"

	"github.com/google/uuid"
)

var _ repository.AccountRepository = (*accountRepository)(nil)

type accountRepository struct {
	db *DB
}

// NewAccountRepository returns an AccountRepository backed by db.
func NewAccountRepository(db *DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	account, ok := r.db.accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return copyAccount(account), nil
}

func (r *accountRepository) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	for _, account := range r.db.accounts {
		if strings.EqualFold(account.Email, email) {
			return copyAccount(account), nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *accountRepository) Create(_ context.Context, account *entity.Account) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, existing := range r.db.accounts {
		if strings.EqualFold(existing.Email, account.Email) {
			return repository.ErrDuplicateEmail
		}
	}

	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	t := now()
	account.CreatedAt = t
	account.UpdatedAt = t
	r.db.accounts[account.ID] = copyAccount(account)

	return nil
}

func (r *accountRepository) ListByRole(_ context.Context, role entity.Role) ([]*entity.Account, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	result := make([]*entity.Account, 0)
	for _, account := range r.db.accounts {
		if account.Role == role {
			result = append(result, copyAccount(account))
		}
	}
	slices.SortFunc(result, func(a, b *entity.Account) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result, nil
}

func (r *accountRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	delete(r.db.accounts, id)

	return nil
}

func (r *accountRepository) AddFavorite(_ context.Context, accountID, storeID uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	account, ok := r.db.accounts[accountID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	if !slices.Contains(account.Favorites, storeID) {
		account.Favorites = append(account.Favorites, storeID)
		account.UpdatedAt = now()
	}

	return nil
}

func (r *accountRepository) RemoveFavorite(_ context.Context, accountID, storeID uuid.UUID) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	account, ok := r.db.accounts[accountID]
	if !ok {
		return repository.ErrAccountNotFound
	}
	if slices.Contains(account.Favorites, storeID) {
		account.Favorites = slices.DeleteFunc(account.Favorites, func(id uuid.UUID) bool { return id == storeID })
		account.UpdatedAt = now()
	}

	return nil
}

func (r *accountRepository) RemoveFavoritesEverywhere(_ context.Context, storeIDs []uuid.UUID) (int64, error) {
	if len(storeIDs) == 0 {
		return 0, nil
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	removed := idSet(storeIDs)
	var modified int64
	for _, account := range r.db.accounts {
		before := len(account.Favorites)
		account.Favorites = slices.DeleteFunc(account.Favorites, func(id uuid.UUID) bool {
			_, ok := removed[id]

			return ok
		})
		if len(account.Favorites) != before {
			account.UpdatedAt = now()
			modified++
		}
	}

	return modified, nil
}
