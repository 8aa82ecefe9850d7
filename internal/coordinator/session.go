package coordinator

import (
	"github.com/jimmyqrg/parkoreen-sub001/internal/directory"
	"github.com/jimmyqrg/parkoreen-sub001/internal/palette"
	"github.com/jimmyqrg/parkoreen-sub001/internal/protocol"
)

// Sender pushes a coordinator->client message down one connection.
type Sender interface {
	Send(data []byte) error
}

// Session is the coordinator-side state of one live connection. Owned
// exclusively by the coordinator actor; never persisted.
type Session struct {
	ID       string
	send     Sender
	identity *directory.Identity
	roomCode string
	isHost   bool
	color    palette.Color
}

func (s *Session) authenticated() bool {
	return s.identity != nil
}

func (s *Session) inRoom() bool {
	return s.roomCode != ""
}

func (s *Session) rosterEntry() protocol.RosterEntry {
	return protocol.RosterEntry{
		ID:    s.ID,
		Name:  s.identity.DisplayName,
		Color: s.color,
	}
}
