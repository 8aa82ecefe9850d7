package directory

import (
	"context"
	"errors"
	"fmt"

	go_jwt "github.com/golang-jwt/jwt/v5"

	"github.com/jimmyqrg/parkoreen-sub001/internal/palette"
	"github.com/jimmyqrg/parkoreen-sub001/internal/repository"
)

// ErrAuth marks a rejected credential: malformed, expired, wrong token
// type, or a user that no longer exists. The session stays connected and
// may retry.
var ErrAuth = errors.New("invalid credentials")

// Identity is what the user directory resolves a bearer credential to.
type Identity struct {
	UserID      int
	DisplayName string
	Color       palette.Color
}

type Directory interface {
	Resolve(ctx context.Context, credential string) (*Identity, error)
}

type userDirectory struct {
	secretKey []byte
	users     repository.UserRepository
}

func New(secretKey []byte, users repository.UserRepository) Directory {
	return &userDirectory{secretKey: secretKey, users: users}
}

func (d *userDirectory) Resolve(ctx context.Context, credential string) (*Identity, error) {
	token, err := go_jwt.Parse(credential, func(t *go_jwt.Token) (interface{}, error) {
		if t.Method != go_jwt.SigningMethodHS256 {
			return nil, go_jwt.ErrSignatureInvalid
		}
		return d.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrAuth
	}

	claims, ok := token.Claims.(go_jwt.MapClaims)
	if !ok || claims["typ"] != "access" {
		return nil, ErrAuth
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrAuth
	}

	user, err := d.users.GetUserByID(ctx, int(id))
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	if user == nil {
		return nil, ErrAuth
	}

	return &Identity{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Color:       user.Color(),
	}, nil
}
