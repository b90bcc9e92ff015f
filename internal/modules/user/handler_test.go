package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mindhaven/core/internal/middleware"
	"github.com/mindhaven/core/internal/models"
	"github.com/mindhaven/core/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeStore struct {
	byEmail map[string]*models.UserModel
}

func newFakeStore() *fakeStore {
	return &fakeStore{byEmail: map[string]*models.UserModel{}}
}

func (f *fakeStore) GetByID(_ context.Context, id string) (*models.UserModel, error) {
	for _, u := range f.byEmail {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*models.UserModel, error) {
	return f.byEmail[email], nil
}

func (f *fakeStore) Create(_ context.Context, u *models.UserModel) error {
	u.ID = primitive.NewObjectID()
	f.byEmail[u.Email] = u
	return nil
}

func setupRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	jwt.SetSecret("user-test-secret")
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(NewService(store), "", false).RegisterRoutes(api, middleware.Auth())
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestSignupSuccess(t *testing.T) {
	r := setupRouter(newFakeStore())

	resp := postJSON(t, r, "/api/v1/user/signup", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "secret1",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "Ada", out["name"])
	assert.Equal(t, "ada@example.com", out["email"])

	cookies := resp.Result().Cookies()
	var found bool
	for _, ck := range cookies {
		if ck.Name == middleware.CookieName && ck.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected auth cookie to be set")
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	r := setupRouter(store)

	first := postJSON(t, r, "/api/v1/user/signup", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, first.Code)

	second := postJSON(t, r, "/api/v1/user/signup", gin.H{
		"name": "Ada Again", "email": "Ada@Example.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestSignupValidation(t *testing.T) {
	r := setupRouter(newFakeStore())

	cases := map[string]gin.H{
		"missing name":   {"email": "a@b.com", "password": "secret1"},
		"bad email":      {"name": "Ada", "email": "not-an-email", "password": "secret1"},
		"short password": {"name": "Ada", "email": "a@b.com", "password": "short"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			resp := postJSON(t, r, "/api/v1/user/signup", body)
			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			assert.Contains(t, resp.Body.String(), "field")
		})
	}
}

func TestLoginFlow(t *testing.T) {
	store := newFakeStore()
	r := setupRouter(store)

	signup := postJSON(t, r, "/api/v1/user/signup", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, signup.Code)

	ok := postJSON(t, r, "/api/v1/user/login", gin.H{
		"email": "ada@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusOK, ok.Code)

	wrongPwd := postJSON(t, r, "/api/v1/user/login", gin.H{
		"email": "ada@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusForbidden, wrongPwd.Code)

	unknown := postJSON(t, r, "/api/v1/user/login", gin.H{
		"email": "nobody@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusForbidden, unknown.Code)
}

func TestAuthStatus(t *testing.T) {
	store := newFakeStore()
	r := setupRouter(store)

	signup := postJSON(t, r, "/api/v1/user/signup", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, signup.Code)

	var token string
	for _, ck := range signup.Result().Cookies() {
		if ck.Name == middleware.CookieName {
			token = ck.Value
		}
	}
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/auth-status", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "ada@example.com")

	// no credential at all
	anon := httptest.NewRecorder()
	r.ServeHTTP(anon, httptest.NewRequest(http.MethodGet, "/api/v1/user/auth-status", nil))
	assert.Equal(t, http.StatusUnauthorized, anon.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	store := newFakeStore()
	r := setupRouter(store)

	signup := postJSON(t, r, "/api/v1/user/signup", gin.H{
		"name": "Ada", "email": "ada@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, signup.Code)

	var token string
	for _, ck := range signup.Result().Cookies() {
		if ck.Name == middleware.CookieName {
			token = ck.Value
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: token})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	var cleared bool
	for _, ck := range resp.Result().Cookies() {
		if ck.Name == middleware.CookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "expected auth cookie to be expired")
}
