package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/travel-planner/internal/config"
	apperrors "github.com/spec-kit/travel-planner/pkg/util"
)

func newAuthService(repo *memUserRepo) *AuthService {
	return NewAuthService(config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		BcryptCost:    bcrypt.MinCost,
	}, repo)
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, status, domainErr.HTTPStatus)
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()

	s := newAuthService(newMemUserRepo())
	ctx := context.Background()

	user, token, _, err := s.Register(ctx, "alice", "Alice@Example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash, "hash must be stored")
	assert.NotEqual(t, "secret1", user.PasswordHash)

	loggedIn, loginToken, _, err := s.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loggedIn.ID)

	// The issued token resolves back to the same user.
	subject, err := s.TokenManager().ParseToken(loginToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), subject)
}

func TestRegister_Validation(t *testing.T) {
	t.Parallel()

	s := newAuthService(newMemUserRepo())
	ctx := context.Background()

	_, _, _, err := s.Register(ctx, "", "a@b.co", "secret1")
	requireStatus(t, err, 400)

	_, _, _, err = s.Register(ctx, "bob", "not-an-email", "secret1")
	requireStatus(t, err, 400)

	_, _, _, err = s.Register(ctx, "bob", "b@b.co", "short")
	requireStatus(t, err, 400)
}

func TestRegister_Duplicates(t *testing.T) {
	t.Parallel()

	s := newAuthService(newMemUserRepo())
	ctx := context.Background()

	_, _, _, err := s.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, _, _, err = s.Register(ctx, "alice2", "alice@example.com", "secret1")
	requireStatus(t, err, 400)

	_, _, _, err = s.Register(ctx, "alice", "other@example.com", "secret1")
	requireStatus(t, err, 400)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	t.Parallel()

	s := newAuthService(newMemUserRepo())
	ctx := context.Background()

	_, _, _, err := s.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	// Unknown email and wrong password produce the same 401.
	_, _, _, err = s.Login(ctx, "ghost@example.com", "secret1")
	requireStatus(t, err, 401)
	assert.Contains(t, err.Error(), "Invalid credentials")

	_, _, _, err = s.Login(ctx, "alice@example.com", "wrong-password")
	requireStatus(t, err, 401)
	assert.Contains(t, err.Error(), "Invalid credentials")
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	s := newAuthService(repo)
	ctx := context.Background()

	alice, _, _, err := s.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	_, _, _, err = s.Register(ctx, "bob", "bob@example.com", "secret1")
	require.NoError(t, err)

	name := "Alice A."
	updated, err := s.UpdateProfile(ctx, alice, ProfileUpdateInput{Name: &name, Username: "alice-2"})
	require.NoError(t, err)
	assert.Equal(t, "Alice A.", updated.Name)
	assert.Equal(t, "alice-2", updated.Username)

	// Taking bob's email is a conflict.
	_, err = s.UpdateProfile(ctx, updated, ProfileUpdateInput{Email: "bob@example.com"})
	requireStatus(t, err, 400)

	// Taking bob's username is a conflict.
	_, err = s.UpdateProfile(ctx, updated, ProfileUpdateInput{Username: "bob"})
	requireStatus(t, err, 400)
}

func TestChangePassword(t *testing.T) {
	t.Parallel()

	s := newAuthService(newMemUserRepo())
	ctx := context.Background()

	alice, _, _, err := s.Register(ctx, "alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	err = s.ChangePassword(ctx, alice, "wrong", "newsecret")
	requireStatus(t, err, 400)

	err = s.ChangePassword(ctx, alice, "secret1", "short")
	requireStatus(t, err, 400)

	require.NoError(t, s.ChangePassword(ctx, alice, "secret1", "newsecret"))

	_, _, _, err = s.Login(ctx, "alice@example.com", "secret1")
	requireStatus(t, err, 401)
	_, _, _, err = s.Login(ctx, "alice@example.com", "newsecret")
	require.NoError(t, err)
}
