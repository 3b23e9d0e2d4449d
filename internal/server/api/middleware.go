package api

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ledgerline/taxintake/internal/common"
	"github.com/ledgerline/taxintake/internal/server/auth"
)

// userIDKey is the context key the auth middleware stores the caller id under.
const userIDKey = "userID"

// JWTAuth returns middleware that validates the bearer token and stores the
// authenticated user id in the request context.
func JWTAuth(secretKey []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(common.AccessTokenHeaderName)
			if header == "" {
				return RespondWithError(c, NewUnauthorizedError("missing access token"))
			}
			token := strings.TrimPrefix(header, "Bearer ")

			userID, err := auth.GetUserIDFromToken(token, secretKey)
			if err != nil {
				return RespondWithError(c, mapServiceError(err))
			}

			c.Set(userIDKey, userID)
			return next(c)
		}
	}
}

// currentUserID returns the id set by JWTAuth, or "" outside authenticated routes.
func currentUserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
