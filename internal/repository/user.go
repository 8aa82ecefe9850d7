package repository

import (
	"context"

	"github.com/jimmyqrg/parkoreen-sub001/internal/models"
)

// UserRepository reads the users table owned by the account service.
type UserRepository interface {
	GetUserByID(ctx context.Context, id int) (*models.User, error)
}
