package directory

import (
	"context"
	"testing"
	"time"

	go_jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimmyqrg/parkoreen-sub001/internal/models"
)

var secret = []byte("test-secret")

func signToken(t *testing.T, claims go_jwt.MapClaims) string {
	t.Helper()
	token := go_jwt.NewWithClaims(go_jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func accessToken(t *testing.T, id int) string {
	now := time.Now()
	return signToken(t, go_jwt.MapClaims{
		"id":  id,
		"iat": now.Unix(),
		"exp": now.Add(time.Hour).Unix(),
		"typ": "access",
	})
}

type fakeUserRepo struct {
	users map[int]*models.User
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	return r.users[id], nil
}

func TestResolve(t *testing.T) {
	repo := &fakeUserRepo{users: map[int]*models.User{
		42: {
			ID:              42,
			DisplayName:     "Amy",
			ColorHue:        120,
			ColorSaturation: 70,
			ColorLightness:  55,
		},
	}}
	dir := New(secret, repo)

	identity, err := dir.Resolve(context.Background(), accessToken(t, 42))
	require.NoError(t, err)
	assert.Equal(t, 42, identity.UserID)
	assert.Equal(t, "Amy", identity.DisplayName)
	assert.Equal(t, 120.0, identity.Color.H)
}

func TestResolveDeletedUser(t *testing.T) {
	dir := New(secret, &fakeUserRepo{users: map[int]*models.User{}})

	_, err := dir.Resolve(context.Background(), accessToken(t, 42))
	assert.ErrorIs(t, err, ErrAuth)
}

func TestResolveMalformedCredential(t *testing.T) {
	dir := New(secret, &fakeUserRepo{users: map[int]*models.User{}})

	_, err := dir.Resolve(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrAuth)
}

func TestResolveExpiredCredential(t *testing.T) {
	dir := New(secret, &fakeUserRepo{users: map[int]*models.User{}})

	expired := signToken(t, go_jwt.MapClaims{
		"id":  1,
		"exp": time.Now().Add(-time.Hour).Unix(),
		"typ": "access",
	})
	_, err := dir.Resolve(context.Background(), expired)
	assert.ErrorIs(t, err, ErrAuth)
}

func TestResolveRejectsRefreshToken(t *testing.T) {
	dir := New(secret, &fakeUserRepo{users: map[int]*models.User{}})

	refresh := signToken(t, go_jwt.MapClaims{
		"id":  1,
		"exp": time.Now().Add(time.Hour).Unix(),
		"typ": "refresh",
	})
	_, err := dir.Resolve(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrAuth)
}

func TestTokenDirectoryResolve(t *testing.T) {
	dir := NewTokenDirectory(secret)

	token := signToken(t, go_jwt.MapClaims{
		"id":    7,
		"name":  "Bob",
		"hue":   210.0,
		"sat":   80.0,
		"light": 60.0,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"typ":   "access",
	})

	identity, err := dir.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, 7, identity.UserID)
	assert.Equal(t, "Bob", identity.DisplayName)
	assert.Equal(t, 210.0, identity.Color.H)
	assert.Equal(t, 80.0, identity.Color.S)
}

func TestTokenDirectoryRequiresName(t *testing.T) {
	dir := NewTokenDirectory(secret)

	token := signToken(t, go_jwt.MapClaims{
		"id":  7,
		"exp": time.Now().Add(time.Hour).Unix(),
		"typ": "access",
	})

	_, err := dir.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrAuth)
}
