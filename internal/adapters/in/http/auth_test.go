package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var authTestSecret = []byte("test-secret")

func signedToken(t *testing.T, subject string, secret []byte) string {
	t.Helper()

	claims := accessClaims{
		Email: "partner@laundry.id",
		Role:  "partner",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	return token
}

func invokeAuthMiddleware(t *testing.T, authorization string) (*httptest.ResponseRecorder, Actor, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	var (
		actor   Actor
		reached bool
	)
	next := func(c echo.Context) error {
		actor, reached = actorFromContext(c)
		return c.NoContent(http.StatusOK)
	}

	err := AuthMiddleware(authTestSecret)(next)(ctx)
	require.NoError(t, err)

	return rec, actor, reached
}

func TestAuthMiddleware_ValidTokenSetsActor(t *testing.T) {
	subject := "0b9f9f4e-6c5a-4d2a-9c38-4f1df3a9e101"
	token := signedToken(t, subject, authTestSecret)

	rec, actor, reached := invokeAuthMiddleware(t, "Bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
	assert.Equal(t, subject, actor.ID.String())
	assert.Equal(t, "partner@laundry.id", actor.Email)
	assert.Equal(t, "partner", actor.Role)
}

func TestAuthMiddleware_LowercaseSchemeAccepted(t *testing.T) {
	token := signedToken(t, "0b9f9f4e-6c5a-4d2a-9c38-4f1df3a9e101", authTestSecret)

	rec, _, reached := invokeAuthMiddleware(t, "bearer "+token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reached)
}

func TestAuthMiddleware_MissingHeaderRejected(t *testing.T) {
	rec, _, reached := invokeAuthMiddleware(t, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_WrongSecretRejected(t *testing.T) {
	token := signedToken(t, "0b9f9f4e-6c5a-4d2a-9c38-4f1df3a9e101", []byte("other-secret"))

	rec, _, reached := invokeAuthMiddleware(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_ExpiredTokenRejected(t *testing.T) {
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "0b9f9f4e-6c5a-4d2a-9c38-4f1df3a9e101",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(authTestSecret)
	require.NoError(t, err)

	rec, _, reached := invokeAuthMiddleware(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestAuthMiddleware_NonUUIDSubjectRejected(t *testing.T) {
	token := signedToken(t, "not-a-uuid", authTestSecret)

	rec, _, reached := invokeAuthMiddleware(t, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}
