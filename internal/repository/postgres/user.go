package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jimmyqrg/parkoreen-sub001/internal/models"
	"github.com/jimmyqrg/parkoreen-sub001/internal/repository"
)

type postgresUserRepo struct {
	db *gorm.DB
}

func NewPostgresUserRepository(db *gorm.DB) repository.UserRepository {
	return &postgresUserRepo{db: db}
}

func (r *postgresUserRepo) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
