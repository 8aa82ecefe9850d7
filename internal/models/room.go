package models

import (
	"time"
)

// RoomRecord is the durable configuration of a room. Live membership is
// never persisted here; it is derived from the session table. The record
// outlives the host's connection so a reconnecting host keeps authority.
type RoomRecord struct {
	Code             string    `json:"code" gorm:"primaryKey"`
	HostUserID       int       `json:"host_user_id"`
	MaxPlayers       int       `json:"max_players"`
	PasswordRequired bool      `json:"password_required"`
	PasswordHash     string    `json:"password_hash"`
	LevelData        []byte    `json:"level_data"`
	CreatedAt        time.Time `json:"created_at"`
}

func (RoomRecord) TableName() string {
	return "room_records"
}
