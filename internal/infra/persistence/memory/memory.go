// Package memory provides in-memory implementations of the repositories.
// It is intended for tests and local development without a database.
package memory

import (
	"slices"
	"strings"
	"sync"
	"time"

	"storehub/internal/domain/entity"

	"github.com/google/uuid"
)

// DB is a thread-safe in-memory store shared by the memory repositories.
type DB struct {
	mu sync.RWMutex

	accounts map[uuid.UUID]*entity.Account
	stores   map[uuid.UUID]*entity.Store
	products map[uuid.UUID]*entity.Product
}

// New creates an empty in-memory database.
func New() *DB {
	return &DB{
		accounts: make(map[uuid.UUID]*entity.Account),
		stores:   make(map[uuid.UUID]*entity.Store),
		products: make(map[uuid.UUID]*entity.Product),
	}
}

func now() time.Time {
	return time.Now().UTC()
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return set
}

func copyAccount(a *entity.Account) *entity.Account {
	cp := *a
	cp.Favorites = slices.Clone(a.Favorites)

	return &cp
}

func copyStore(s *entity.Store) *entity.Store {
	cp := *s
	cp.Reviews = slices.Clone(s.Reviews)

	return &cp
}

func copyProduct(p *entity.Product) *entity.Product {
	cp := *p

	return &cp
}
