package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jimmyqrg/parkoreen-sub001/internal/models"
	"github.com/jimmyqrg/parkoreen-sub001/internal/repository"
)

type postgresRoomStore struct {
	db *gorm.DB
}

func NewPostgresRoomStore(db *gorm.DB) repository.RoomStore {
	return &postgresRoomStore{db: db}
}

func (s *postgresRoomStore) CreateIfAbsent(ctx context.Context, record *models.RoomRecord) (bool, error) {
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(record)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *postgresRoomStore) Get(ctx context.Context, code string) (*models.RoomRecord, error) {
	var record models.RoomRecord
	err := s.db.WithContext(ctx).Where("code = ?", code).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (s *postgresRoomStore) Delete(ctx context.Context, code string) error {
	return s.db.WithContext(ctx).Where("code = ?", code).Delete(&models.RoomRecord{}).Error
}
