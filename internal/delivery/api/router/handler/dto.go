package handler

import (
	"time"

	"storehub/internal/domain/entity"
	"storehub/internal/usecase"

	"github.com/google/uuid"
)

// --- Requests ---

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=customer vendor"`
	Phone    string `json:"phone"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AddressRequest is the postal address of a requested store.
type AddressRequest struct {
	Area     string `json:"area" validate:"required"`
	City     string `json:"city" validate:"required"`
	District string `json:"district" validate:"required"`
}

// StoreRequest is the body of POST /api/stores/request.
// Image is the publicId returned by the upload endpoint.
type StoreRequest struct {
	Name     string         `json:"name" validate:"required"`
	Image    string         `json:"image" validate:"required"`
	Category string         `json:"category" validate:"required"`
	Address  AddressRequest `json:"address"`
}

// ProductRequest is the body of POST /api/stores/:id/products.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"min=0"`
}

// ReviewRequest is the body of POST /api/stores/:id/reviews.
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// StatusRequest is the body of PUT /api/admin/requests/:id.
type StatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// --- Responses ---

// AccountResponse never carries the password hash.
type AccountResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      entity.Role `json:"role"`
	Phone     string      `json:"phone,omitempty"`
	Favorites []uuid.UUID `json:"favorites"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AccountResponse
	Token string `json:"token"`
}

// ProfileResponse is the caller's account with favorite stores expanded.
type ProfileResponse struct {
	AccountResponse
	FavoriteStores []StoreResponse `json:"favoriteStores"`
}

// FavoriteResponse reports the membership of a store after a toggle.
type FavoriteResponse struct {
	StoreID   uuid.UUID `json:"storeId"`
	Favorited bool      `json:"favorited"`
	Message   string    `json:"message"`
}

// AddressResponse is a store address.
type AddressResponse struct {
	Area     string `json:"area"`
	City     string `json:"city"`
	District string `json:"district"`
}

// ReviewResponse is one review on a store.
type ReviewResponse struct {
	AccountID uuid.UUID `json:"accountId"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// StoreResponse is a store as shown to clients.
type StoreResponse struct {
	ID          uuid.UUID          `json:"id"`
	VendorID    uuid.UUID          `json:"vendorId"`
	Name        string             `json:"name"`
	Image       string             `json:"image"`
	Category    string             `json:"category"`
	Address     AddressResponse    `json:"address"`
	Status      entity.StoreStatus `json:"status"`
	Rating      float64            `json:"rating"`
	ReviewCount int                `json:"numReviews"`
	Reviews     []ReviewResponse   `json:"reviews"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// StoreDetailResponse is a store together with its products.
type StoreDetailResponse struct {
	StoreResponse
	Products []ProductResponse `json:"products"`
}

// ProductResponse is a product as shown to clients.
type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	StoreID     uuid.UUID `json:"storeId"`
	VendorID    uuid.UUID `json:"vendorId"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

// VendorContactResponse is the owner of a store as shown to the admin.
type VendorContactResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone,omitempty"`
}

// AdminStoreResponse is a store joined with its owner. Vendor is null when
// the owner no longer exists.
type AdminStoreResponse struct {
	StoreResponse
	Vendor *VendorContactResponse `json:"vendor"`
}

// CascadeResponse summarizes a cascading deletion.
type CascadeResponse struct {
	Message           string    `json:"message"`
	ID                uuid.UUID `json:"id"`
	StoresDeleted     int64     `json:"storesDeleted"`
	ProductsDeleted   int64     `json:"productsDeleted"`
	FavoritesScrubbed int64     `json:"favoritesScrubbed"`
	AssetsDeleted     int       `json:"assetsDeleted"`
	AssetsMissing     int       `json:"assetsMissing"`
	AssetFailures     int       `json:"assetFailures"`
}

// --- Mappers ---

func toAccountResponse(account *entity.Account) AccountResponse {
	favorites := account.Favorites
	if favorites == nil {
		favorites = []uuid.UUID{}
	}

	return AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Email:     account.Email,
		Role:      account.Role,
		Phone:     account.Phone,
		Favorites: favorites,
		CreatedAt: account.CreatedAt,
	}
}

func toAccountResponses(accounts []*entity.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, toAccountResponse(account))
	}

	return out
}

func toStoreResponse(store *entity.Store) StoreResponse {
	reviews := make([]ReviewResponse, 0, len(store.Reviews))
	for _, review := range store.Reviews {
		reviews = append(reviews, ReviewResponse{
			AccountID: review.AccountID,
			Name:      review.Name,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}

	return StoreResponse{
		ID:       store.ID,
		VendorID: store.VendorID,
		Name:     store.Name,
		Image:    store.Image,
		Category: store.Category,
		Address: AddressResponse{
			Area:     store.Address.Area,
			City:     store.Address.City,
			District: store.Address.District,
		},
		Status:      store.Status,
		Rating:      store.Rating,
		ReviewCount: store.ReviewCount,
		Reviews:     reviews,
		CreatedAt:   store.CreatedAt,
	}
}

func toStoreResponses(stores []*entity.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, store := range stores {
		out = append(out, toStoreResponse(store))
	}

	return out
}

func toProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		StoreID:     product.StoreID,
		VendorID:    product.VendorID,
		Name:        product.Name,
		Image:       product.Image,
		Description: product.Description,
		Price:       product.Price,
		CreatedAt:   product.CreatedAt,
	}
}

func toProductResponses(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, toProductResponse(product))
	}

	return out
}

func toAdminStoreResponses(entries []*usecase.StoreWithVendor) []AdminStoreResponse {
	out := make([]AdminStoreResponse, 0, len(entries))
	for _, entry := range entries {
		item := AdminStoreResponse{StoreResponse: toStoreResponse(entry.Store)}
		if entry.Vendor != nil {
			item.Vendor = &VendorContactResponse{
				ID:    entry.Vendor.ID,
				Name:  entry.Vendor.Name,
				Email: entry.Vendor.Email,
				Phone: entry.Vendor.Phone,
			}
		}
		out = append(out, item)
	}

	return out
}

func toCascadeResponse(message string, report *usecase.CascadeReport) CascadeResponse {
	return CascadeResponse{
		Message:           message,
		ID:                report.RootID,
		StoresDeleted:     report.StoresDeleted,
		ProductsDeleted:   report.ProductsDeleted,
		FavoritesScrubbed: report.FavoritesScrubbed,
		AssetsDeleted:     report.AssetsDeleted,
		AssetsMissing:     report.AssetsMissing,
		AssetFailures:     report.AssetFailures,
	}
}
