package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID     uuid.UUID `gorm:"type:uuid;index;not null"`
	VendorID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Image       string    `gorm:"type:varchar(512)"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:numeric(12,2);not null;check:price >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// All lists every model for AutoMigrate, parents before children.
func All() []any {
	return []any{
		&AccountModel{},
		&AccountFavoriteModel{},
		&StoreModel{},
		&StoreReviewModel{},
		&ProductModel{},
	}
}
