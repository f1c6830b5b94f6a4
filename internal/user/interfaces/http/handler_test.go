package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	authapp "github.com/wyfcoding/storefront/internal/auth/application"
	"github.com/wyfcoding/storefront/internal/user/application"
	"github.com/wyfcoding/storefront/internal/user/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- fakes ----

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Save(_ context.Context, user *domain.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users[user.ID.Hex()] = user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID.Hex()]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID.Hex()] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByResetToken(_ context.Context, token string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ResetPasswordToken == token {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newRouter(repo *fakeUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tokens := authapp.NewTokenService("test-secret", "test", time.Hour)
	cmd := application.NewUserCommandService(repo, tokens, nil, nil)
	query := application.NewUserQueryService(repo)

	router := gin.New()
	api := router.Group("/api/v1")
	NewUserHandler(cmd, query).RegisterRoutes(api, api.Group(""))
	return router
}

func post(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ---- tests ----

func TestRegister_PasswordLengthBoundary(t *testing.T) {
	router := newRouter(newFakeUserRepo())

	t.Run("seven chars rejected", func(t *testing.T) {
		w := post(router, "/api/v1/auth/register",
			`{"name":"Jane","email":"jane@example.com","password":"seven77"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("eight chars accepted", func(t *testing.T) {
		w := post(router, "/api/v1/auth/register",
			`{"name":"Jane","email":"jane@example.com","password":"eight888"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"token"`)
	})
}

func TestResetPassword_PasswordLengthBoundary(t *testing.T) {
	repo := newFakeUserRepo()
	router := newRouter(repo)

	user := domain.NewUser("Jane", "jane@example.com", "hash")
	user.SetResetToken("valid-token", time.Now())
	require.NoError(t, repo.Save(context.Background(), user))

	t.Run("seven chars rejected", func(t *testing.T) {
		w := post(router, "/api/v1/users/reset-password",
			`{"token":"valid-token","password":"seven77"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("eight chars accepted", func(t *testing.T) {
		w := post(router, "/api/v1/users/reset-password",
			`{"token":"valid-token","password":"eight888"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
