package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smart-sales-api/internal/model"
	"smart-sales-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubUserRepo struct {
	users map[uuid.UUID]*model.User
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) FindByUsername(context.Context, string) (*model.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *stubUserRepo) FindAll(context.Context) ([]model.User, error) { return nil, nil }
func (r *stubUserRepo) ExistsByUsername(context.Context, string) (bool, error) { return false, nil }
func (r *stubUserRepo) ExistsByEmail(context.Context, string) (bool, error) { return false, nil }
func (r *stubUserRepo) Create(context.Context, *model.User) error { return nil }
func (r *stubUserRepo) UpdatePassword(context.Context, uuid.UUID, string) error { return nil }
func (r *stubUserRepo) UpdateLastLogin(context.Context, uuid.UUID, time.Time) error { return nil }
func (r *stubUserRepo) Delete(context.Context, uuid.UUID) error { return nil }

func TestRequireAuth(t *testing.T) {
	tokens := jwt.NewManager("test-secret", 5*time.Minute, time.Hour)

	active := &model.User{Username: "clerk", IsActive: true}
	active.ID = uuid.New()
	disabled := &model.User{Username: "gone", IsActive: false}
	disabled.ID = uuid.New()
	repo := &stubUserRepo{users: map[uuid.UUID]*model.User{active.ID: active, disabled.ID: disabled}}

	app := fiber.New()
	app.Get("/me", RequireAuth(repo, tokens), func(c *fiber.Ctx) error {
		return c.SendString(UserID(c).String() + " " + c.Locals(LocalUsername).(string))
	})

	call := func(header string) int {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	pair, err := tokens.IssuePair(jwt.Subject{UserID: active.ID, Username: active.Username})
	require.NoError(t, err)

	t.Run("AccessTokenPasses", func(t *testing.T) {
		require.Equal(t, http.StatusOK, call("Bearer "+pair.Access))
	})

	t.Run("MissingOrMalformedHeader", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, call(""))
		require.Equal(t, http.StatusUnauthorized, call("Token "+pair.Access))
		require.Equal(t, http.StatusUnauthorized, call("Bearer"))
	})

	t.Run("RefreshTokenRejected", func(t *testing.T) {
		require.Equal(t, http.StatusUnauthorized, call("Bearer "+pair.Refresh))
	})

	t.Run("UnknownOrDisabledUser", func(t *testing.T) {
		ghost, err := tokens.IssuePair(jwt.Subject{UserID: uuid.New()})
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, call("Bearer "+ghost.Access))

		off, err := tokens.IssuePair(jwt.Subject{UserID: disabled.ID})
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, call("Bearer "+off.Access))
	})
}
