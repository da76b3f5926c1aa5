package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storehub/internal/delivery/context"
	"storehub/internal/domain/entity"
	domainerrors "storehub/internal/domain/errors"
	"storehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AuthMiddleware authenticates bearer tokens and enforces capabilities.
type AuthMiddleware struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Authenticate resolves the bearer token into a principal and stores it in
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("authorization header is missing")
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("token must be a Bearer token")
		}

		ctx := c.Request().Context()
		principal, err := m.accountUC.ResolvePrincipal(ctx, strings.TrimSpace(token))
		if err != nil {
			return err
		}

		reqLogger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(
			slog.String("account_id", principal.AccountID.String()),
		)
		ctx = deliverycontext.WithPrincipal(ctx, principal)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireCapability rejects callers lacking the capability.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireCapability(capability entity.Capability) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := GetPrincipal(c)
			if principal == nil {
				return domainerrors.ErrUnauthenticated
			}
			if !principal.Can(capability) {
				return domainerrors.ErrForbidden.WithDetails("requires " + string(capability))
			}

			return next(c)
		}
	}
}

// GetPrincipal returns the authenticated caller, or nil on public routes.
func GetPrincipal(c echo.Context) *entity.Principal {
	return deliverycontext.PrincipalFrom(c.Request().Context())
}
