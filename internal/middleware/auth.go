package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/deppfellow/boardhub/internal/errs"
	"github.com/deppfellow/boardhub/internal/response"
	"github.com/deppfellow/boardhub/internal/server"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates callers with Clerk session tokens.
type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{server: s}
}

// RequireAuth rejects requests without a valid Clerk bearer token and
// stores the caller's user id and organization role on the Echo context.
func (auth *AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return echo.WrapMiddleware(
		clerkhttp.WithHeaderAuthorization(
			clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(auth.writeUnauthorized)),
		),
	)(func(c echo.Context) error {
		claims, ok := clerk.SessionClaimsFromContext(c.Request().Context())
		if !ok {
			GetLogger(c).Warn().Msg("could not get session claims from context")
			return errs.NewUnauthorizedError("Unauthorized")
		}

		c.Set(UserIDKey, claims.Subject)
		c.Set(UserRoleKey, claims.ActiveOrganizationRole)

		GetLogger(c).Debug().
			Str("user_id", claims.Subject).
			Msg("user authenticated")

		return next(c)
	})
}

// writeUnauthorized runs outside Echo's error funnel, so it writes the
// failure envelope itself.
func (auth *AuthMiddleware) writeUnauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w.WriteHeader(http.StatusUnauthorized)

	body := response.Failure(errs.NewUnauthorizedError("Unauthorized"))
	if err := json.NewEncoder(w).Encode(body); err != nil {
		auth.server.Logger.Error().Err(err).Msg("failed to write unauthorized response")
		return
	}

	auth.server.Logger.Warn().
		Str("path", r.URL.Path).
		Msg("rejected request without valid session token")
}
