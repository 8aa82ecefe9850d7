package repository

import (
	"context"

	"github.com/jimmyqrg/parkoreen-sub001/internal/models"
)

// RoomStore persists room configuration keyed by room code. It must offer
// atomic create-if-absent so two concurrent creates cannot both claim the
// same code, even across coordinator restarts.
type RoomStore interface {
	// CreateIfAbsent persists the record unless a record with the same
	// code already exists. Returns false on collision.
	CreateIfAbsent(ctx context.Context, record *models.RoomRecord) (bool, error)
	// Get returns the record for code, or nil if absent.
	Get(ctx context.Context, code string) (*models.RoomRecord, error)
	// Delete removes the record for code. Deleting an absent code is not
	// an error.
	Delete(ctx context.Context, code string) error
}
