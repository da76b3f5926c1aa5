// Package model holds the GORM persistence models of the relational backend.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);index:idx_accounts_role_created,priority:1;not null"`
	Phone        string    `gorm:"type:varchar(16)"`
	CreatedAt    time.Time `gorm:"index:idx_accounts_role_created,priority:2,sort:desc"`
	UpdatedAt    time.Time

	Favorites []AccountFavoriteModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// AccountFavoriteModel mirrors the 'account_favorites' join table. The
// composite primary key makes the favorites a set.
type AccountFavoriteModel struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	StoreID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountFavoriteModel) TableName() string {
	return "account_favorites"
}
