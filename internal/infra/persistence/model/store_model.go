package model

import (
	"time"

	"github.com/google/uuid"
)

// StoreModel mirrors the 'stores' table. Reviews live in 'store_reviews'.
type StoreModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"type:varchar(200);not null"`
	Image       string    `gorm:"type:varchar(512)"`
	Category    string    `gorm:"type:varchar(100);not null"`
	Area        string    `gorm:"type:varchar(100);not null"`
	City        string    `gorm:"type:varchar(100);not null"`
	District    string    `gorm:"type:varchar(100);not null"`
	Status      string    `gorm:"type:varchar(16);index:idx_stores_status_rating,priority:1;not null"`
	Rating      float64   `gorm:"index:idx_stores_status_rating,priority:2,sort:desc;not null;default:0"`
	ReviewCount int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Reviews []StoreReviewModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// StoreReviewModel mirrors the 'store_reviews' table. One review per (store, account).
type StoreReviewModel struct {
	StoreID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Rating    int       `gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreReviewModel) TableName() string {
	return "store_reviews"
}
