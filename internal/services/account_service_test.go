package services

import (
	"context"
	"testing"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository/memstore"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountService(t *testing.T) (*AccountService, *memstore.Store) {
	t.Helper()
	store := memstore.New()
	return NewAccountService(store, testConfig()), store
}

func register(t *testing.T, svc *AccountService, email, password string) *dto.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: email, Password: password, Name: "Ada",
	})
	require.NoError(t, err)
	return resp
}

func TestRegister_IssuesTokenForNormalizedEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService(t)

	resp := register(t, svc, "  Ada@Example.COM ", "secret1")
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "Ada", resp.User.Name)
	require.NotEmpty(t, resp.Token)

	parsed, err := jwt.Parse(resp.Token, func(*jwt.Token) (interface{}, error) {
		return []byte(testConfig().JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)

	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, resp.User.ID.String(), claims["sub"])
	assert.Equal(t, "ada@example.com", claims["email"])
	assert.Equal(t, "wellness-test", claims["iss"])
	assert.NotEmpty(t, claims["jti"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService(t)
	register(t, svc, "ada@example.com", "secret1")

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "ADA@example.com", Password: "other12", Name: "Someone",
	})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestRegister_RejectsPlaceholderName(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService(t)

	for _, name := range []string{"", "   ", "string", "String"} {
		_, err := svc.Register(context.Background(), &dto.RegisterRequest{
			Email: "n@example.com", Password: "secret1", Name: name,
		})
		assert.ErrorIs(t, err, ErrInvalidName, "name %q", name)
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService(t)
	registered := register(t, svc, "ada@example.com", "secret1")

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "Ada@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, resp.User.ID)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "ada@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService(t)
	ctx := context.Background()
	ada := register(t, svc, "ada@example.com", "secret1")
	register(t, svc, "bob@example.com", "secret1")

	_, err := svc.UpdateProfile(ctx, ada.User.ID, &dto.UpdateProfileRequest{Email: "bob@example.com", Name: "Ada"})
	assert.ErrorIs(t, err, ErrEmailInUse)

	// keeping the own email is not a conflict
	updated, err := svc.UpdateProfile(ctx, ada.User.ID, &dto.UpdateProfileRequest{Email: "ada@example.com", Name: "Ada L."})
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", updated.Name)

	updated, err = svc.UpdateProfile(ctx, ada.User.ID, &dto.UpdateProfileRequest{Email: "lovelace@example.com", Name: "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "lovelace@example.com", updated.Email)

	_, err = svc.UpdateProfile(ctx, ada.User.ID, &dto.UpdateProfileRequest{Email: "lovelace@example.com", Name: "string"})
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestUpdatePassword(t *testing.T) {
	t.Parallel()
	svc, _ := newAccountService(t)
	ctx := context.Background()
	ada := register(t, svc, "ada@example.com", "secret1")

	err := svc.UpdatePassword(ctx, ada.User.ID, &dto.UpdatePasswordRequest{CurrentPassword: "nope", NewPassword: "secret2"})
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	err = svc.UpdatePassword(ctx, ada.User.ID, &dto.UpdatePasswordRequest{CurrentPassword: "secret1", NewPassword: "secret1"})
	assert.ErrorIs(t, err, ErrPasswordUnchanged)

	require.NoError(t, svc.UpdatePassword(ctx, ada.User.ID, &dto.UpdatePasswordRequest{CurrentPassword: "secret1", NewPassword: "secret2"}))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "secret2"})
	assert.NoError(t, err)
}

func TestDeleteAccount_RemovesCheckins(t *testing.T) {
	t.Parallel()
	svc, store := newAccountService(t)
	ctx := context.Background()
	ada := register(t, svc, "ada@example.com", "secret1")
	addCheckin(t, store, ada.User.ID, fixedNow, 3, 3, 3)

	assert.ErrorIs(t, svc.DeleteAccount(ctx, ada.User.ID, "wrong"), ErrIncorrectPassword)
	require.NoError(t, svc.DeleteAccount(ctx, ada.User.ID, "secret1"))

	_, err := svc.GetProfile(ctx, ada.User.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	times, err := store.CheckinTimes(ctx, ada.User.ID)
	require.NoError(t, err)
	assert.Empty(t, times)
}
