package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/cinema/internal/model"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCheckAuthenticated(t *testing.T) {
	assert.ErrorIs(t, CheckAuthenticated(nil), ErrUnauthorized)
	assert.NoError(t, CheckAuthenticated(&model.SessionUser{ID: 1, Role: model.RoleUser}))
}

func TestCheckAdmin(t *testing.T) {
	tests := []struct {
		name    string
		user    *model.SessionUser
		wantErr error
	}{
		{name: "anonymous", user: nil, wantErr: ErrUnauthorized},
		{name: "regular user", user: &model.SessionUser{ID: 1, Role: model.RoleUser}, wantErr: ErrForbidden},
		{name: "admin", user: &model.SessionUser{ID: 1, Role: model.RoleAdmin}, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAdmin(tt.user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func newAuthRouter() *gin.Engine {
	r := gin.New()
	r.GET("/private", RequireAuth(testSecret), func(c *gin.Context) {
		su := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"name": su.Name, "role": su.Role})
	})
	r.GET("/admin", RequireAuth(testSecret), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func signToken(t *testing.T, role string, expiry time.Duration) string {
	t.Helper()
	token, err := GenerateToken(&model.User{
		ID:    42,
		Email: "ana@example.com",
		Name:  "Ana",
		Role:  role,
	}, testSecret, expiry)
	require.NoError(t, err)
	return token
}

func TestRequireAuth(t *testing.T) {
	r := newAuthRouter()

	t.Run("valid token cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, model.RoleUser, time.Hour)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ana")
	})

	t.Run("valid bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, model.RoleUser, time.Hour))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing token redirects page requests", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Accept", "text/html")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/auth/login?redirect=/private", w.Header().Get("Location"))
	})

	t.Run("expired token returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, model.RoleUser, -time.Minute)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "not-a-jwt"})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAdmin(t *testing.T) {
	r := newAuthRouter()

	t.Run("regular user gets 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, model.RoleUser, time.Hour)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, model.RoleAdmin, time.Hour)})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestCurrentUser_Anonymous(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Nil(t, CurrentUser(c))
}
