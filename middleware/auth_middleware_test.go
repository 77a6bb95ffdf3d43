package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sweetshop-api/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newGuardedRouter() (*gin.Engine, map[string]string) {
	router := gin.New()
	captured := map[string]string{}
	router.GET("/protected", AuthMiddleware(), func(c *gin.Context) {
		captured["userId"] = c.GetString("userId")
		captured["email"] = c.GetString("email")
		captured["role"] = c.GetString("role")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, captured
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	router, _ := newGuardedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	router, _ := newGuardedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RedirectsHTMLClients(t *testing.T) {
	router, _ := newGuardedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/login", w.Header().Get("Location"))
}

func TestAuthMiddleware_BearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.NewString()
	token, _, err := services.GenerateToken(userID, "user@example.com", "admin")
	require.NoError(t, err)

	router, captured := newGuardedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, captured["userId"])
	assert.Equal(t, "user@example.com", captured["email"])
	assert.Equal(t, "admin", captured["role"])
}

func TestAuthMiddleware_CookieToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.NewString()
	token, _, err := services.GenerateToken(userID, "user@example.com", "user")
	require.NoError(t, err)

	router, captured := newGuardedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, captured["userId"])
	assert.Equal(t, "user", captured["role"])
}
