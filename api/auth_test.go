package api

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testPassword = "correct horse"
	testSecret   = "test-secret"
)

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	h := newAuthHandler(testPassword, []byte(testSecret))

	rec := performRequest(t, h.login(), http.MethodPost, "/auth/login", map[string]any{
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp loginResponse
	decodeResponse(t, rec, &resp)
	assert.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)

	subject, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)

	expiry, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.NotNil(t, expiry)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	h := newAuthHandler(testPassword, []byte(testSecret))

	rec := performRequest(t, h.login(), http.MethodPost, "/auth/login", map[string]any{
		"password": "guess",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRequiresPassword(t *testing.T) {
	h := newAuthHandler(testPassword, []byte(testSecret))

	rec := performRequest(t, h.login(), http.MethodPost, "/auth/login", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginUnconfiguredPasswordIsUnauthorized(t *testing.T) {
	h := newAuthHandler("", []byte(testSecret))

	rec := performRequest(t, h.login(), http.MethodPost, "/auth/login", map[string]any{
		"password": "anything",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Router-level coverage: public routes stay open, admin routes demand the
// session token that /auth/login hands out.
func TestRouterAdminRoutesRequireSession(t *testing.T) {
	router := newRouter(newTestDatabase(t), withConfig(map[string]string{
		"ADMIN_PASSWORD": testPassword,
		"JWT_SECRET":     testSecret,
	}))

	// Public read works without any token.
	listRec := performRequest(t, router.ServeHTTP, http.MethodGet, "/projects", nil)
	assert.Equal(t, http.StatusOK, listRec.Code)

	// Writes without a token are turned away.
	createBody := map[string]any{"title": "locked out"}
	anonRec := performRequest(t, router.ServeHTTP, http.MethodPost, "/projects", createBody)
	assert.Equal(t, http.StatusUnauthorized, anonRec.Code)

	// A garbage token is turned away too.
	badReq := performRequest(t, func(w http.ResponseWriter, r *http.Request) {
		r.Header.Set("Authorization", "Bearer not-a-token")
		router.ServeHTTP(w, r)
	}, http.MethodPost, "/projects", createBody)
	assert.Equal(t, http.StatusUnauthorized, badReq.Code)

	// Log in, then the same write succeeds.
	loginRec := performRequest(t, router.ServeHTTP, http.MethodPost, "/auth/login", map[string]any{
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, loginRec.Code, loginRec.Body.String())

	var login loginResponse
	decodeResponse(t, loginRec, &login)
	require.NotEmpty(t, login.Token)

	authedRec := performRequest(t, func(w http.ResponseWriter, r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+login.Token)
		router.ServeHTTP(w, r)
	}, http.MethodPost, "/projects", createBody)
	assert.Equal(t, http.StatusCreated, authedRec.Code, authedRec.Body.String())
}

func TestRouterTokenSignedWithOtherSecretRejected(t *testing.T) {
	router := newRouter(newTestDatabase(t), withConfig(map[string]string{
		"ADMIN_PASSWORD": testPassword,
		"JWT_SECRET":     testSecret,
	}))

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "admin",
	}).SignedString([]byte("some other secret"))
	require.NoError(t, err)

	rec := performRequest(t, func(w http.ResponseWriter, r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+forged)
		router.ServeHTTP(w, r)
	}, http.MethodDelete, "/projects?id=1", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
