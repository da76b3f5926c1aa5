package postgres

import (
	"storehub/internal/domain/entity"
	"storehub/internal/infra/persistence/model"

	"github.com/google/uuid"
)

func toAccountDomain(m *model.AccountModel) *entity.Account {
	favorites := make([]uuid.UUID, 0, len(m.Favorites))
	for _, f := range m.Favorites {
		favorites = append(favorites, f.StoreID)
	}

	return &entity.Account{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		Phone:        m.Phone,
		Favorites:    favorites,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         a.Role.String(),
		Phone:        a.Phone,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func toStoreDomain(m *model.StoreModel) *entity.Store {
	reviews := make([]entity.Review, len(m.Reviews))
	for i, r := range m.Reviews {
		reviews[i] = entity.Review{
			AccountID: r.AccountID,
			Name:      r.Name,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
	}

	return &entity.Store{
		ID:       m.ID,
		VendorID: m.VendorID,
		Name:     m.Name,
		Image:    m.Image,
		Category: m.Category,
		Address: entity.Address{
			Area:     m.Area,
			City:     m.City,
			District: m.District,
		},
		Status:      entity.StoreStatus(m.Status),
		Reviews:     reviews,
		Rating:      m.Rating,
		ReviewCount: m.ReviewCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromStoreDomain(s *entity.Store) *model.StoreModel {
	return &model.StoreModel{
		ID:          s.ID,
		VendorID:    s.VendorID,
		Name:        s.Name,
		Image:       s.Image,
		Category:    s.Category,
		Area:        s.Address.Area,
		City:        s.Address.City,
		District:    s.Address.District,
		Status:      s.Status.String(),
		Rating:      s.Rating,
		ReviewCount: s.ReviewCount,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func fromReviewsDomain(s *entity.Store) []model.StoreReviewModel {
	reviews := make([]model.StoreReviewModel, len(s.Reviews))
	for i, r := range s.Reviews {
		reviews[i] = model.StoreReviewModel{
			StoreID:   s.ID,
			AccountID: r.AccountID,
			Name:      r.Name,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		}
	}

	return reviews
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:          m.ID,
		StoreID:     m.StoreID,
		VendorID:    m.VendorID,
		Name:        m.Name,
		Image:       m.Image,
		Description: m.Description,
		Price:       m.Price,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ID:          p.ID,
		StoreID:     p.StoreID,
		VendorID:    p.VendorID,
		Name:        p.Name,
		Image:       p.Image,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
