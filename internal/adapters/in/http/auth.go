package http

import (
	"net/http"
	"strings"

	"laundry/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key holding the authenticated actor.
const actorContextKey = "actor"

// Actor is the verified identity extracted from the access token. The id is
// the laundry partner id used for all ownership checks downstream.
type Actor struct {
	ID    kernel.UUID
	Email string
	Role  string
}

type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token and stores the Actor on the
// request context. Token issuance lives in another subsystem; this service
// only verifies.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if token == "" {
				return c.JSON(http.StatusUnauthorized, errorBody("missing bearer token"))
			}

			claims := accessClaims{}
			parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !parsed.Valid {
				return c.JSON(http.StatusUnauthorized, errorBody("invalid token"))
			}

			actorID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody("invalid token subject"))
			}

			c.Set(actorContextKey, Actor{
				ID:    actorID,
				Email: claims.Email,
				Role:  claims.Role,
			})

			return next(c)
		}
	}
}

// actorFromContext retrieves the authenticated actor set by AuthMiddleware.
func actorFromContext(c echo.Context) (Actor, bool) {
	actor, ok := c.Get(actorContextKey).(Actor)
	return actor, ok
}

func extractBearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
