package directory

import (
	"context"

	go_jwt "github.com/golang-jwt/jwt/v5"

	"github.com/jimmyqrg/parkoreen-sub001/internal/palette"
)

type tokenDirectory struct {
	secretKey []byte
}

// NewTokenDirectory resolves identity straight from the token claims
// (id, name, hue/sat/light) without a users table. For standalone runs
// where the account service database is not reachable.
func NewTokenDirectory(secretKey []byte) Directory {
	return &tokenDirectory{secretKey: secretKey}
}

func (d *tokenDirectory) Resolve(ctx context.Context, credential string) (*Identity, error) {
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
	name, ok := claims["name"].(string)
	if !ok || name == "" {
		return nil, ErrAuth
	}

	color := palette.Color{H: 0, S: 70, L: 55}
	if h, ok := claims["hue"].(float64); ok {
		color.H = h
	}
	if s, ok := claims["sat"].(float64); ok {
		color.S = s
	}
	if l, ok := claims["light"].(float64); ok {
		color.L = l
	}

	return &Identity{UserID: int(id), DisplayName: name, Color: color}, nil
}
