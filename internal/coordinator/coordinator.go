package coordinator

import (
	"context"
	"log"
	"time"

	"github.com/jimmyqrg/parkoreen-sub001/internal/colors"
	"github.com/jimmyqrg/parkoreen-sub001/internal/directory"
	"github.com/jimmyqrg/parkoreen-sub001/internal/palette"
	"github.com/jimmyqrg/parkoreen-sub001/internal/protocol"
	"github.com/jimmyqrg/parkoreen-sub001/internal/registry"
)

type Options struct {
	// StoreTimeout bounds calls against the room record store and the
	// user directory. A store call blocks the actor, so this is the
	// upper bound on how long one slow message can stall the rest.
	StoreTimeout time.Duration
	// ChatLimit is the chat truncation length in UTF-16 code units.
	ChatLimit int
	// DefaultMaxPlayers applies when create_room sends no capacity.
	DefaultMaxPlayers int
}

func DefaultOptions() Options {
	return Options{
		StoreTimeout:      5 * time.Second,
		ChatLimit:         200,
		DefaultMaxPlayers: 8,
	}
}

// Coordinator groups live sessions into rooms and relays state between
// room members. A single goroutine (Run) drains the command queue, so
// the session table needs no locks: every mutation happens on the actor.
type Coordinator struct {
	directory directory.Directory
	registry  *registry.Registry
	options   Options
	sessions  map[string]*Session
	commands  chan func()
}

func New(dir directory.Directory, reg *registry.Registry, options Options) *Coordinator {
	return &Coordinator{
		directory: dir,
		registry:  reg,
		options:   options,
		sessions:  make(map[string]*Session),
		commands:  make(chan func(), 256),
	}
}

// Run drains the command queue until Close is called. All lifecycle and
// relay handlers execute here, one at a time.
func (c *Coordinator) Run() {
	for command := range c.commands {
		command()
	}
}

func (c *Coordinator) Close() {
	close(c.commands)
}

// Connect registers a fresh, unauthenticated session for a new
// connection.
func (c *Coordinator) Connect(sessionID string, send Sender) {
	c.commands <- func() { c.connect(sessionID, send) }
}

// Disconnect announces the departure to whatever room the session held,
// then removes it from the session table. The room itself stays open:
// only the host's explicit leave closes it, so a dropped host can
// rejoin.
func (c *Coordinator) Disconnect(sessionID string) {
	c.commands <- func() { c.disconnect(sessionID) }
}

// HandleMessage dispatches one inbound wire message. Messages from a
// single connection arrive here in order and are processed in order.
func (c *Coordinator) HandleMessage(sessionID string, raw []byte) {
	c.commands <- func() { c.dispatch(sessionID, raw) }
}

func (c *Coordinator) connect(sessionID string, send Sender) {
	c.sessions[sessionID] = &Session{ID: sessionID, send: send}
}

func (c *Coordinator) disconnect(sessionID string) {
	session, ok := c.sessions[sessionID]
	if !ok {
		return
	}
	if session.inRoom() {
		c.announceLeave(session)
	}
	delete(c.sessions, sessionID)
	log.Printf("[%v] disconnected", colors.Left(sessionID))
}

func (c *Coordinator) dispatch(sessionID string, raw []byte) {
	session, ok := c.sessions[sessionID]
	if !ok {
		return
	}

	envelope, err := protocol.Decode(raw)
	if err != nil {
		log.Printf("[%v] %v", colors.Warning(sessionID), colors.Warning(err))
		c.send(session, protocol.TagError, protocol.Error{Message: "Bad wire message"})
		return
	}

	if !session.authenticated() && envelope.Type != protocol.TagAuth {
		c.send(session, protocol.TagError, protocol.Error{Message: ErrNotAuthorized.Error()})
		return
	}

	if err := c.handle(session, envelope); err != nil {
		message, internal := errorMessage(err)
		if internal {
			log.Printf("[%v] %v failed: %v",
				colors.Error(sessionID), colors.Error(envelope.Type), err)
		}
		c.send(session, protocol.TagError, protocol.Error{Message: message})
	}
}

func (c *Coordinator) handle(session *Session, envelope protocol.Envelope) error {
	switch envelope.Type {
	case protocol.TagAuth:
		var p protocol.Auth
		if err := envelope.As(&p); err != nil {
			return err
		}
		return c.handleAuth(session, p)

	case protocol.TagCreateRoom:
		var p protocol.CreateRoom
		if err := envelope.As(&p); err != nil {
			return err
		}
		return c.handleCreateRoom(session, p)

	case protocol.TagJoinRoom:
		var p protocol.JoinRoom
		if err := envelope.As(&p); err != nil {
			return err
		}
		return c.handleJoinRoom(session, p)

	case protocol.TagRejoinRoom:
		var p protocol.RejoinRoom
		if err := envelope.As(&p); err != nil {
			return err
		}
		return c.handleRejoinRoom(session, p)

	case protocol.TagLeaveRoom:
		return c.handleLeaveRoom(session)

	case protocol.TagKickPlayer:
		var p protocol.KickPlayer
		if err := envelope.As(&p); err != nil {
			return err
		}
		return c.handleKickPlayer(session, p)

	case protocol.TagPosition:
		var p protocol.Position
		if err := envelope.As(&p); err != nil {
			return err
		}
		return c.handlePosition(session, p)

	case protocol.TagChat:
		var p protocol.Chat
		if err := envelope.As(&p); err != nil {
			return err
		}
		return c.handleChat(session, p)

	default:
		c.send(session, protocol.TagError, protocol.Error{Message: "Unknown message type"})
		return nil
	}
}

// storeContext bounds one collaborator call.
func (c *Coordinator) storeContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.options.StoreTimeout)
}

func (c *Coordinator) send(session *Session, tag string, payload any) {
	if err := session.send.Send(protocol.Encode(tag, payload)); err != nil {
		log.Printf("[%v] send %v failed: %v",
			colors.Warning(session.ID), colors.Warning(tag), err)
	}
}

// roster is the live membership of a room, derived by scanning the
// session table. Membership is a fact about the current process only.
func (c *Coordinator) roster(roomCode string) []*Session {
	var members []*Session
	for _, session := range c.sessions {
		if session.roomCode == roomCode {
			members = append(members, session)
		}
	}
	return members
}

func rosterEntries(members []*Session) []protocol.RosterEntry {
	entries := []protocol.RosterEntry{}
	for _, member := range members {
		entries = append(entries, member.rosterEntry())
	}
	return entries
}

func rosterColors(members []*Session) []palette.Color {
	var used []palette.Color
	for _, member := range members {
		used = append(used, member.color)
	}
	return used
}

// broadcast sends payload to every session in the room except exclude.
func (c *Coordinator) broadcast(roomCode string, exclude *Session, tag string, payload any) {
	data := protocol.Encode(tag, payload)
	for _, session := range c.sessions {
		if session.roomCode != roomCode || session == exclude {
			continue
		}
		if err := session.send.Send(data); err != nil {
			log.Printf("[%v] broadcast %v failed: %v",
				colors.Warning(session.ID), colors.Warning(tag), err)
		}
	}
}
