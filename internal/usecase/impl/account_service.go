// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"storehub/config"
	deliverycontext "storehub/internal/delivery/context"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/domain/repository"
	"storehub/internal/domain/service"
	"storehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vendorPhonePattern accepts ten digit mobile numbers starting with 6-9.
var vendorPhonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo  repository.AccountRepository
	storeRepo    repository.StoreRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	admin        config.AdminConfig
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	StoreRepo    repository.StoreRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	admin := params.Config.Admin
	admin.Email = normalizeEmail(admin.Email)

	return &accountService{
		accountRepo:  params.AccountRepo,
		storeRepo:    params.StoreRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		admin:        admin,
		logger:       params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a customer or vendor account and signs it in.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" || input.Role == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email, password and role are required")
	}
	if !input.Role.IsRegistrable() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be customer or vendor")
	}

	phone := ""
	if input.Role == entity.RoleVendor {
		phone = strings.TrimSpace(input.Phone)
		if !vendorPhonePattern.MatchString(phone) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("vendors need a valid 10-digit phone number")
		}
	}

	if srv.isAdminEmail(email) {
		return nil, domainerrors.ErrAccountAlreadyExists
	}

	srv.log(ctx).Info("Registering account", slog.String("email", email), slog.String("role", input.Role.String()))

	_, err := srv.accountRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, domainerrors.ErrAccountAlreadyExists
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, translateRepoError(err, "find account by email")
	}

	account, err := srv.newAccount(name, email, input.Password, input.Role, phone)
	if err != nil {
		return nil, err
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, translateRepoError(err, "create account")
	}

	srv.log(ctx).Debug("Account registered", slog.String("accountID", account.ID.String()))

	return srv.signIn(account)
}

// Login verifies credentials. The configured admin account is created on its
// first successful login.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email and password are required")
	}

	if srv.isAdminEmail(email) && input.Password == srv.admin.Password {
		return srv.loginAdmin(ctx)
	}

	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, translateRepoError(err, "find account by email")
	}
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.signIn(account)
}

func (srv *accountService) loginAdmin(ctx context.Context) (*usecase.AuthOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, srv.admin.Email)
	if errors.Is(err, repository.ErrAccountNotFound) {
		account, err = srv.createAdmin(ctx)
	}
	if err != nil {
		return nil, translateRepoError(err, "load admin account")
	}

	// An account registered under the admin address before the admin ever
	// logged in keeps its own role.
	if account.Role != entity.RoleAdmin || !srv.hasher.Check(srv.admin.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Admin login rejected", slog.String("accountID", account.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.signIn(account)
}

func (srv *accountService) createAdmin(ctx context.Context) (*entity.Account, error) {
	name := srv.admin.Name
	if name == "" {
		name = "Admin"
	}

	account, err := srv.newAccount(name, srv.admin.Email, srv.admin.Password, entity.RoleAdmin, "")
	if err != nil {
		return nil, err
	}

	err = srv.accountRepo.Create(ctx, account)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// Another request created it first.
		return srv.accountRepo.FindByEmail(ctx, srv.admin.Email)
	}
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Admin account created", slog.String("accountID", account.ID.String()))

	return account, nil
}

func (srv *accountService) isAdminEmail(email string) bool {
	return srv.admin.Email != "" && srv.admin.Password != "" && email == srv.admin.Email
}

func (srv *accountService) newAccount(name, email, password string, role entity.Role, phone string) (*entity.Account, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate account id")
	}

	now := time.Now().UTC()

	return &entity.Account{
		ID:           id,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Phone:        phone,
		Favorites:    []uuid.UUID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

func (srv *accountService) signIn(account *entity.Account) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{Account: account, Token: token}, nil
}

// Profile returns the caller's account with favorites resolved. Favorites
// pointing at stores that no longer exist are skipped.
func (srv *accountService) Profile(ctx context.Context, principal *entity.Principal) (*usecase.ProfileOutput, error) {
	if err := authorize(principal, entity.CapabilityAuthenticated); err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, principal.AccountID)
	if err != nil {
		return nil, translateRepoError(err, "find account")
	}

	favorites, err := srv.storeRepo.FindByIDs(ctx, account.Favorites)
	if err != nil {
		return nil, translateRepoError(err, "load favorite stores")
	}

	return &usecase.ProfileOutput{Account: account, Favorites: favorites}, nil
}

// ResolvePrincipal verifies the token and reloads the account so that a
// deleted account loses access immediately. The role comes from storage.
func (srv *accountService) ResolvePrincipal(ctx context.Context, token string) (*entity.Principal, error) {
	if token == "" {
		return nil, domainerrors.ErrUnauthenticated
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrUnauthenticated.WrapMessage("invalid token")
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnauthenticated.WrapMessage("account no longer exists")
		}

		return nil, translateRepoError(err, "find account")
	}

	return account.Principal(), nil
}

// ToggleFavorite adds the store to the caller's favorites, or removes it when
// already present.
func (srv *accountService) ToggleFavorite(ctx context.Context, principal *entity.Principal, storeID uuid.UUID) (*usecase.FavoriteOutput, error) {
	if err := authorize(principal, entity.CapabilityAuthenticated); err != nil {
		return nil, err
	}

	if _, err := srv.storeRepo.FindByID(ctx, storeID); err != nil {
		return nil, translateRepoError(err, "find store")
	}

	account, err := srv.accountRepo.FindByID(ctx, principal.AccountID)
	if err != nil {
		return nil, translateRepoError(err, "find account")
	}

	if account.HasFavorite(storeID) {
		if err := srv.accountRepo.RemoveFavorite(ctx, account.ID, storeID); err != nil {
			return nil, translateRepoError(err, "remove favorite")
		}

		return &usecase.FavoriteOutput{StoreID: storeID, Favorited: false}, nil
	}

	if err := srv.accountRepo.AddFavorite(ctx, account.ID, storeID); err != nil {
		return nil, translateRepoError(err, "add favorite")
	}

	return &usecase.FavoriteOutput{StoreID: storeID, Favorited: true}, nil
}
