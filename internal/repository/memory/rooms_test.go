package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimmyqrg/parkoreen-sub001/internal/models"
)

func TestCreateIfAbsent(t *testing.T) {
	store := NewMemoryRoomStore()
	ctx := context.Background()

	created, err := store.CreateIfAbsent(ctx, &models.RoomRecord{Code: "AAAAAA", MaxPlayers: 2})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = store.CreateIfAbsent(ctx, &models.RoomRecord{Code: "AAAAAA", MaxPlayers: 8})
	require.NoError(t, err)
	assert.False(t, created)

	record, err := store.Get(ctx, "AAAAAA")
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, 2, record.MaxPlayers, "losing create must not overwrite")
}

func TestGetAbsent(t *testing.T) {
	store := NewMemoryRoomStore()

	record, err := store.Get(context.Background(), "ZZZZZZ")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestDelete(t *testing.T) {
	store := NewMemoryRoomStore()
	ctx := context.Background()

	_, err := store.CreateIfAbsent(ctx, &models.RoomRecord{Code: "AAAAAA"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "AAAAAA"))
	require.NoError(t, store.Delete(ctx, "AAAAAA"))

	record, err := store.Get(ctx, "AAAAAA")
	require.NoError(t, err)
	assert.Nil(t, record)
}
