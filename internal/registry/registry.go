package registry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jimmyqrg/parkoreen-sub001/internal/colors"
	"github.com/jimmyqrg/parkoreen-sub001/internal/models"
	"github.com/jimmyqrg/parkoreen-sub001/internal/repository"
)

// Alphabet excludes glyphs that read alike on a shared screen (0/O, 1/I).
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const CodeLength = 6

const allocationRetryLimit = 10

// ErrGenerationExhausted means every generated code collided with an
// existing record. Transient: the caller should retry the whole create.
var ErrGenerationExhausted = errors.New("could not allocate a new room code")

// Config is the immutable room configuration supplied at creation.
type Config struct {
	MaxPlayers       int
	PasswordRequired bool
	Password         string
	LevelData        []byte
}

// Registry mints collision-free room codes and owns the persisted room
// records. The store's create-if-absent keeps codes unique even when two
// creates race across suspension points.
type Registry struct {
	store repository.RoomStore
}

func New(store repository.RoomStore) *Registry {
	return &Registry{store: store}
}

func (r *Registry) CreateRoom(ctx context.Context, hostUserID int, config Config) (*models.RoomRecord, error) {
	passwordHash := ""
	if config.PasswordRequired {
		hash, err := bcrypt.GenerateFromPassword([]byte(config.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("room password hash failed: %w", err)
		}
		passwordHash = string(hash)
	}

	var codeBuilder strings.Builder
	for i := 0; i < allocationRetryLimit; i++ {
		generateCode(&codeBuilder)
		roomCode := codeBuilder.String()
		codeBuilder.Reset()

		record := &models.RoomRecord{
			Code:             roomCode,
			HostUserID:       hostUserID,
			MaxPlayers:       config.MaxPlayers,
			PasswordRequired: config.PasswordRequired,
			PasswordHash:     passwordHash,
			LevelData:        config.LevelData,
			CreatedAt:        time.Now(),
		}

		created, err := r.store.CreateIfAbsent(ctx, record)
		if err != nil {
			return nil, fmt.Errorf("room record create failed: %w", err)
		}
		if created {
			log.Printf("[%v] --> %v", colors.Room(hostUserID), colors.Room(roomCode))
			return record, nil
		}
	}

	return nil, ErrGenerationExhausted
}

// LookupRoom returns nil when no record exists for code.
func (r *Registry) LookupRoom(ctx context.Context, code string) (*models.RoomRecord, error) {
	record, err := r.store.Get(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("room record lookup failed: %w", err)
	}
	return record, nil
}

// DeleteRoom is idempotent.
func (r *Registry) DeleteRoom(ctx context.Context, code string) error {
	if err := r.store.Delete(ctx, code); err != nil {
		return fmt.Errorf("room record delete failed: %w", err)
	}
	return nil
}

// CheckPassword reports whether password opens record's gate.
func CheckPassword(record *models.RoomRecord, password string) bool {
	if !record.PasswordRequired {
		return true
	}
	err := bcrypt.CompareHashAndPassword([]byte(record.PasswordHash), []byte(password))
	return err == nil
}

func generateCode(builder *strings.Builder) {
	for i := 0; i < CodeLength; i++ {
		builder.WriteByte(Alphabet[rand.IntN(len(Alphabet))])
	}
}
