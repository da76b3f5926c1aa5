package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is listed inside exactly one store. VendorID is copied from the store.
type Product struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	VendorID    uuid.UUID
	Name        string
	Image       string
	Description string
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
