package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jimmyqrg/parkoreen-sub001/internal/models"
	"github.com/jimmyqrg/parkoreen-sub001/internal/repository"
)

const keyPrefix = "room:"

type redisRoomStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRoomStore stores room records as JSON under "room:<code>".
// SETNX gives the create-if-absent guarantee. A non-zero ttl bounds the
// lifetime of records leaked by a crashed coordinator.
func NewRedisRoomStore(client *redis.Client, ttl time.Duration) repository.RoomStore {
	return &redisRoomStore{client: client, ttl: ttl}
}

func (s *redisRoomStore) CreateIfAbsent(ctx context.Context, record *models.RoomRecord) (bool, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return false, err
	}
	return s.client.SetNX(ctx, keyPrefix+record.Code, data, s.ttl).Result()
}

func (s *redisRoomStore) Get(ctx context.Context, code string) (*models.RoomRecord, error) {
	data, err := s.client.Get(ctx, keyPrefix+code).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var record models.RoomRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *redisRoomStore) Delete(ctx context.Context, code string) error {
	return s.client.Del(ctx, keyPrefix+code).Err()
}
