package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cother/cother/database"
	"github.com/cother/cother/database/mock"
)

func okHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func setIdentity(user *database.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, user)
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(mock.NewMockDB())

	router := gin.New()
	router.GET("/protected", svc.RequireAuth(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"token is required"}`, w.Body.String())
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := newTestService(mock.NewMockDB())

	router := gin.New()
	router.GET("/protected", svc.RequireAuth(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"invalid token"}`, w.Body.String())
}

func TestRequireAuth_AttachesIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := mock.NewMockDB()
	svc := newTestService(db)
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@x.com", "pw123", "alice")
	require.NoError(t, err)
	_, token, err := svc.Login(ctx, "a@x.com", "pw123")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", svc.RequireAuth(), func(c *gin.Context) {
		identity := Identity(c)
		require.NotNil(t, identity)
		c.JSON(http.StatusOK, gin.H{"username": identity.Username})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username":"alice"}`, w.Body.String())
}

func TestRequireOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)

	identity := &database.User{}
	identity.ID = 7

	router := gin.New()
	router.GET("/users/:id", setIdentity(identity), RequireOwner(), okHandler)

	tests := []struct {
		name string
		path string
		want int
	}{
		{"owner", "/users/7", http.StatusOK},
		{"other user", "/users/8", http.StatusForbidden},
		{"not a number", "/users/abc", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireOwner_MissingIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/users/:id", RequireOwner(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRequireAdmin_AllRoles(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		role database.Role
		want int
	}{
		{database.RoleAdministrator, http.StatusOK},
		{database.RoleUser, http.StatusForbidden},
		{database.RoleModerator, http.StatusForbidden},
		{database.RoleGuest, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			identity := &database.User{
				Authentication: database.Authentication{Role: tt.role},
			}
			identity.ID = 1

			router := gin.New()
			router.GET("/admin", setIdentity(identity), RequireAdmin(), okHandler)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRequireAdmin_MissingIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/admin", RequireAdmin(), okHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
