package middleware

import (
	"strings"

	deliverycontext "bakeandtaste/internal/delivery/context"
	"bakeandtaste/internal/domain/entity"
	domainerrors "bakeandtaste/internal/domain/errors"
	"bakeandtaste/internal/domain/service"
	"bakeandtaste/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	IdentityUC   usecase.IdentityUsecase
}

// AuthMiddleware authenticates bearer tokens and resolves the caller's profile.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	identityUC usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc:   params.TokenService,
		identityUC: params.IdentityUC,
	}
}

// Authenticate validates the access token and stores the principal.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("invalid or expired token")
		}

		principalID, err := claims.PrincipalID()
		if err != nil {
			return domainerrors.ErrUnauthenticated.WrapMessage("token subject is not a principal")
		}

		deliverycontext.SetPrincipalID(c, principalID)

		return next(c)
	}
}

// LoadProfile resolves the caller's profile. It must run after Authenticate.
func (m *AuthMiddleware) LoadProfile(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principalID, ok := deliverycontext.GetPrincipalID(c)
		if !ok {
			return domainerrors.ErrUnauthenticated.WrapMessage("no authenticated principal")
		}

		profile, err := m.identityUC.ResolveProfile(c.Request().Context(), principalID)
		if err != nil {
			return err
		}

		deliverycontext.SetProfile(c, profile)

		return next(c)
	}
}

// RequireRole rejects callers whose profile does not have role. It must run after LoadProfile.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile, ok := deliverycontext.GetProfile(c)
			if !ok {
				return domainerrors.ErrUnauthenticated.WrapMessage("no resolved profile")
			}

			if profile.Role != role {
				return domainerrors.ErrUnauthorized.WrapMessage("requires the " + role.String() + " role")
			}

			return next(c)
		}
	}
}
