package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUserID(c), "email": CurrentEmail(c)})
	})
	return r
}

func TestAuthRejectsMissingCredential(t *testing.T) {
	jwt.SetSecret("mw-test-secret")
	r := authTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestAuthAcceptsCookie(t *testing.T) {
	jwt.SetSecret("mw-test-secret")
	token, err := jwt.Sign("abc123", "a@b.c", time.Hour)
	require.NoError(t, err)

	r := authTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "abc123")
}

func TestAuthAcceptsBearerHeader(t *testing.T) {
	jwt.SetSecret("mw-test-secret")
	token, err := jwt.Sign("abc123", "a@b.c", time.Hour)
	require.NoError(t, err)

	r := authTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	jwt.SetSecret("mw-test-secret")
	token, err := jwt.Sign("abc123", "a@b.c", -time.Minute)
	require.NoError(t, err)

	r := authTestRouter()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "abc", NormalizeToken("Bearer abc"))
	assert.Equal(t, "abc", NormalizeToken("  bearer   abc "))
	assert.Equal(t, "abc", NormalizeToken("abc"))
	assert.Equal(t, "", NormalizeToken("   "))
}
