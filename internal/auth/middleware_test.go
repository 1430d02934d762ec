package auth

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/travel-planner/internal/domain"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (r *stubUserRepo) Update(ctx context.Context, user *domain.User) error { return nil }
func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, mongo.ErrNoDocuments
}
func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, mongo.ErrNoDocuments
}
func (r *stubUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return nil, mongo.ErrNoDocuments
}
func (r *stubUserRepo) Summaries(ctx context.Context, ids []primitive.ObjectID) ([]domain.UserSummary, error) {
	return nil, nil
}

func newTestApp(t *testing.T, tm *TokenManager, repo *stubUserRepo) *fiber.App {
	t.Helper()
	mw := NewAuthMiddleware(tm, repo)
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"success": false, "msg": domainErr.Message})
		},
	})
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		user, ok := CurrentUser(c)
		if !ok {
			return fiber.ErrInternalServerError
		}
		return c.JSON(fiber.Map{"id": user.ID.Hex()})
	})
	return app
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	t.Parallel()

	userID := primitive.NewObjectID()
	repo := &stubUserRepo{users: map[string]*domain.User{
		userID.Hex(): {ID: userID, Username: "alice"},
	}}
	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.GenerateToken(userID.Hex())
	require.NoError(t, err)

	app := newTestApp(t, tm, repo)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, NewTokenManager("secret", time.Hour), &stubUserRepo{})

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.GenerateToken(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	app := newTestApp(t, tm, &stubUserRepo{})

	for _, header := range []string{token, "Basic " + token, "Bearer"} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 401, resp.StatusCode, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	t.Parallel()

	app := newTestApp(t, NewTokenManager("secret", time.Hour), &stubUserRepo{})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddleware_UserNoLongerExists(t *testing.T) {
	t.Parallel()

	// Valid signature but the subject was deleted; must still be rejected.
	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.GenerateToken(primitive.NewObjectID().Hex())
	require.NoError(t, err)

	app := newTestApp(t, tm, &stubUserRepo{users: map[string]*domain.User{}})

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}
