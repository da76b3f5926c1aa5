package mongo

import (
	"time"

	"storehub/internal/domain/entity"

	"github.com/google/uuid"
)

type accountDoc struct {
	ID           string    `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	Phone        string    `bson:"phone,omitempty"`
	Favorites    []string  `bson:"favorites"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func accountToDoc(a *entity.Account) *accountDoc {
	return &accountDoc{
		ID:           a.ID.String(),
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         a.Role.String(),
		Phone:        a.Phone,
		Favorites:    idStrings(a.Favorites),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func accountFromDoc(d *accountDoc) *entity.Account {
	id, _ := uuid.Parse(d.ID) //nolint:errcheck // stored IDs are always valid

	return &entity.Account{
		ID:           id,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         entity.Role(d.Role),
		Phone:        d.Phone,
		Favorites:    parseIDs(d.Favorites),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type addressDoc struct {
	Area     string `bson:"area"`
	City     string `bson:"city"`
	District string `bson:"district"`
}

type reviewDoc struct {
	AccountID string    `bson:"account_id"`
	Name      string    `bson:"name"`
	Rating    int       `bson:"rating"`
	Comment   string    `bson:"comment"`
	CreatedAt time.Time `bson:"created_at"`
}

type storeDoc struct {
	ID          string      `bson:"_id"`
	VendorID    string      `bson:"vendor_id"`
	Name        string      `bson:"name"`
	Image       string      `bson:"image"`
	Category    string      `bson:"category"`
	Address     addressDoc  `bson:"address"`
	Status      string      `bson:"status"`
	Reviews     []reviewDoc `bson:"reviews"`
	Rating      float64     `bson:"rating"`
	ReviewCount int         `bson:"review_count"`
	CreatedAt   time.Time   `bson:"created_at"`
	UpdatedAt   time.Time   `bson:"updated_at"`
}

func reviewsToDocs(reviews []entity.Review) []reviewDoc {
	docs := make([]reviewDoc, len(reviews))
	for i, r := range reviews {
		docs[i] = reviewDoc{
			AccountID: r.AccountID.String(),
			Name:      r.Name,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
	}

	return docs
}

func storeToDoc(s *entity.Store) *storeDoc {
	return &storeDoc{
		ID:       s.ID.String(),
		VendorID: s.VendorID.String(),
		Name:     s.Name,
		Image:    s.Image,
		Category: s.Category,
		Address: addressDoc{
			Area:     s.Address.Area,
			City:     s.Address.City,
			District: s.Address.District,
		},
		Status:      s.Status.String(),
		Reviews:     reviewsToDocs(s.Reviews),
		Rating:      s.Rating,
		ReviewCount: s.ReviewCount,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func storeFromDoc(d *storeDoc) *entity.Store {
	id, _ := uuid.Parse(d.ID)             //nolint:errcheck // stored IDs are always valid
	vendorID, _ := uuid.Parse(d.VendorID) //nolint:errcheck // stored IDs are always valid

	reviews := make([]entity.Review, len(d.Reviews))
	for i, r := range d.Reviews {
		accountID, _ := uuid.Parse(r.AccountID) //nolint:errcheck // stored IDs are always valid
		reviews[i] = entity.Review{
			AccountID: accountID,
			Name:      r.Name,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
	}

	return &entity.Store{
		ID:       id,
		VendorID: vendorID,
		Name:     d.Name,
		Image:    d.Image,
		Category: d.Category,
		Address: entity.Address{
			Area:     d.Address.Area,
			City:     d.Address.City,
			District: d.Address.District,
		},
		Status:      entity.StoreStatus(d.Status),
		Reviews:     reviews,
		Rating:      d.Rating,
		ReviewCount: d.ReviewCount,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type productDoc struct {
	ID          string    `bson:"_id"`
	StoreID     string    `bson:"store_id"`
	VendorID    string    `bson:"vendor_id"`
	Name        string    `bson:"name"`
	Image       string    `bson:"image"`
	Description string    `bson:"description"`
	Price       float64   `bson:"price"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func productToDoc(p *entity.Product) *productDoc {
	return &productDoc{
		ID:          p.ID.String(),
		StoreID:     p.StoreID.String(),
		VendorID:    p.VendorID.String(),
		Name:        p.Name,
		Image:       p.Image,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func productFromDoc(d *productDoc) *entity.Product {
	id, _ := uuid.Parse(d.ID)             //nolint:errcheck // stored IDs are always valid
	storeID, _ := uuid.Parse(d.StoreID)   //nolint:errcheck // stored IDs are always valid
	vendorID, _ := uuid.Parse(d.VendorID) //nolint:errcheck // stored IDs are always valid

	return &entity.Product{
		ID:          id,
		StoreID:     storeID,
		VendorID:    vendorID,
		Name:        d.Name,
		Image:       d.Image,
		Description: d.Description,
		Price:       d.Price,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
