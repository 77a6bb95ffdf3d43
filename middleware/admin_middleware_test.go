package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAdminRouter(role string, withRole bool) *gin.Engine {
	router := gin.New()
	router.GET("/admin", func(c *gin.Context) {
		if withRole {
			c.Set("role", role)
		}
		c.Next()
	}, AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestAdminMiddleware_NoAuthContext(t *testing.T) {
	router := newAdminRouter("", false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminMiddleware_UserRoleForbidden(t *testing.T) {
	router := newAdminRouter("user", true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddleware_AdminRolePasses(t *testing.T) {
	router := newAdminRouter("admin", true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
