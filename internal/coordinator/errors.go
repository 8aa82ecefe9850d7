package coordinator

import (
	"errors"

	"github.com/jimmyqrg/parkoreen-sub001/internal/directory"
	"github.com/jimmyqrg/parkoreen-sub001/internal/registry"
)

// The lifecycle error taxonomy. Every one of these is reported to the
// originating session as a non-fatal error message; none close the
// connection. Messages go to clients verbatim.
var (
	ErrAlreadyInRoom    = errors.New("Already in a room")
	ErrRoomNotFound     = errors.New("Room not found")
	ErrPasswordRequired = errors.New("Password required")
	ErrRoomFull         = errors.New("Room is full")
	ErrDuplicateAccount = errors.New("Account already in this room")
	ErrNotAuthorized    = errors.New("Not authorized")
)

// errorMessage maps a handler error to the text sent to the client.
// Anything outside the taxonomy is surfaced as a generic error so a
// failing collaborator never leaks internals or kills the session.
func errorMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrAlreadyInRoom),
		errors.Is(err, ErrRoomNotFound),
		errors.Is(err, ErrPasswordRequired),
		errors.Is(err, ErrRoomFull),
		errors.Is(err, ErrDuplicateAccount),
		errors.Is(err, ErrNotAuthorized):
		return err.Error(), false
	case errors.Is(err, directory.ErrAuth):
		return "Invalid credentials", false
	case errors.Is(err, registry.ErrGenerationExhausted):
		return "Could not allocate a room code, try again", false
	default:
		return "Internal server error", true
	}
}
