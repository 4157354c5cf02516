package http

import (
	"net/http"
	"strings"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// principalContextKey is where the auth middleware stores the verified principal.
const principalContextKey = "principal"

// publicRoutes are served without a token. Keys are "METHOD route-pattern".
var publicRoutes = map[string]struct{}{
	"POST /api/v1/customers/register":    {},
	"POST /api/v1/customers/login":       {},
	"POST /api/v1/vendors/register":      {},
	"POST /api/v1/vendors/login":         {},
	"GET /api/v1/vendors":                {},
	"GET /api/v1/vendors/:vendorId":      {},
	"GET /api/v1/vendors/:vendorId/menu": {},
}

// AuthMiddleware verifies the bearer token on every non-public route and
// stores the resulting principal in the echo context.
func AuthMiddleware(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			routeKey := ctx.Request().Method + " " + ctx.Path()
			if _, ok := publicRoutes[routeKey]; ok {
				return next(ctx)
			}

			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return jsonError(ctx, http.StatusUnauthorized, "missing bearer token")
			}

			principal, err := tokens.Verify(strings.TrimPrefix(header, prefix))
			if err != nil {
				return jsonError(ctx, http.StatusUnauthorized, "token is invalid or expired")
			}

			ctx.Set(principalContextKey, principal)
			return next(ctx)
		}
	}
}

// principalID extracts the authenticated principal's id, enforcing the role
// the endpoint is scoped to. A valid token with the wrong role gets 403.
func principalID(ctx echo.Context, role auth.Role) (kernel.UUID, error) {
	principal, ok := ctx.Get(principalContextKey).(auth.Principal)
	if !ok {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	if principal.Role != role {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusForbidden, "wrong role for this endpoint")
	}

	id, err := kernel.UUIDFromString(principal.ID)
	if err != nil {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	return id, nil
}
