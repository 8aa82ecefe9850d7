package coordinator

import (
	"log"

	"github.com/jimmyqrg/parkoreen-sub001/internal/colors"
	"github.com/jimmyqrg/parkoreen-sub001/internal/palette"
	"github.com/jimmyqrg/parkoreen-sub001/internal/protocol"
	"github.com/jimmyqrg/parkoreen-sub001/internal/registry"
)

func (c *Coordinator) handleAuth(session *Session, p protocol.Auth) error {
	// Re-authenticating while in a room would swap the identity under
	// the roster.
	if session.inRoom() {
		return ErrAlreadyInRoom
	}

	ctx, cancel := c.storeContext()
	defer cancel()

	identity, err := c.directory.Resolve(ctx, p.Credential)
	if err != nil {
		return err
	}

	session.identity = identity
	log.Printf("[%v] authenticated as %v",
		colors.Joined(session.ID), colors.Joined(identity.DisplayName))
	c.send(session, protocol.TagAuthSuccess, protocol.AuthSuccess{})
	return nil
}

func (c *Coordinator) handleCreateRoom(session *Session, p protocol.CreateRoom) error {
	if session.inRoom() {
		return ErrAlreadyInRoom
	}

	maxPlayers := p.MaxPlayers
	if maxPlayers <= 0 {
		maxPlayers = c.options.DefaultMaxPlayers
	}

	ctx, cancel := c.storeContext()
	defer cancel()

	record, err := c.registry.CreateRoom(ctx, session.identity.UserID, registry.Config{
		MaxPlayers:       maxPlayers,
		PasswordRequired: p.PasswordRequired,
		Password:         p.Password,
		LevelData:        p.LevelData,
	})
	if err != nil {
		return err
	}

	session.roomCode = record.Code
	session.isHost = true
	session.color = palette.Allocate(nil)

	c.send(session, protocol.TagRoomCreated, protocol.RoomCreated{Code: record.Code})
	return nil
}

func (c *Coordinator) handleJoinRoom(session *Session, p protocol.JoinRoom) error {
	if session.inRoom() {
		return ErrAlreadyInRoom
	}

	ctx, cancel := c.storeContext()
	defer cancel()

	record, err := c.registry.LookupRoom(ctx, p.Code)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrRoomNotFound
	}
	if !registry.CheckPassword(record, p.Password) {
		return ErrPasswordRequired
	}

	members := c.roster(record.Code)
	if len(members) >= record.MaxPlayers {
		return ErrRoomFull
	}
	for _, member := range members {
		if member.identity.UserID == session.identity.UserID {
			return ErrDuplicateAccount
		}
	}

	session.roomCode = record.Code
	session.isHost = false
	session.color = palette.Allocate(rosterColors(members))

	c.broadcast(record.Code, session, protocol.TagPlayerJoined, session.rosterEntry())
	c.send(session, protocol.TagRoomJoined, protocol.RoomJoined{
		Code:      record.Code,
		LevelData: record.LevelData,
		Roster:    rosterEntries(members),
	})

	log.Printf("[%v] joined %v", colors.Joined(session.ID), colors.Joined(record.Code))
	return nil
}

func (c *Coordinator) handleRejoinRoom(session *Session, p protocol.RejoinRoom) error {
	if session.inRoom() {
		return ErrAlreadyInRoom
	}

	ctx, cancel := c.storeContext()
	defer cancel()

	record, err := c.registry.LookupRoom(ctx, p.Code)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrRoomNotFound
	}

	// Host authority lives on the record, not on the session that
	// created the room, so a reconnecting host keeps it.
	members := c.roster(record.Code)

	session.roomCode = record.Code
	session.isHost = record.HostUserID == session.identity.UserID
	session.color = palette.Allocate(rosterColors(members))

	c.broadcast(record.Code, session, protocol.TagPlayerJoined, session.rosterEntry())
	c.send(session, protocol.TagRoomRejoined, protocol.RoomRejoined{
		Code:   record.Code,
		IsHost: session.isHost,
		Roster: rosterEntries(members),
	})

	log.Printf("[%v] rejoined %v", colors.Joined(session.ID), colors.Joined(record.Code))
	return nil
}

func (c *Coordinator) handleLeaveRoom(session *Session) error {
	if !session.inRoom() {
		return nil
	}
	if session.isHost {
		c.closeRoom(session)
	} else {
		c.announceLeave(session)
	}
	return nil
}

// closeRoom runs the host's explicit leave: every remaining member is
// evicted (connections stay open) and the record is deleted. This is
// the only transition that deletes a RoomRecord.
func (c *Coordinator) closeRoom(session *Session) {
	roomCode := session.roomCode
	session.roomCode = ""
	session.isHost = false

	for _, member := range c.roster(roomCode) {
		c.send(member, protocol.TagRoomClosed,
			protocol.RoomClosed{Message: "The host closed the room"})
		member.roomCode = ""
		member.isHost = false
	}

	ctx, cancel := c.storeContext()
	defer cancel()
	if err := c.registry.DeleteRoom(ctx, roomCode); err != nil {
		log.Printf("[%v] %v", colors.Error(roomCode), colors.Error(err))
	}

	log.Printf("[%v] Room closed", colors.Left(roomCode))
}

// announceLeave drops the session from its room and tells the remaining
// roster. The record stays: a disconnecting host keeps the room open so
// it can rejoin and pick its authority back up.
func (c *Coordinator) announceLeave(session *Session) {
	roomCode := session.roomCode
	session.roomCode = ""
	session.isHost = false

	c.broadcast(roomCode, nil, protocol.TagPlayerLeft, protocol.PlayerLeft{
		ID:   session.ID,
		Name: session.identity.DisplayName,
	})
	log.Printf("[%v] left %v", colors.Left(session.ID), colors.Left(roomCode))
}

func (c *Coordinator) handleKickPlayer(session *Session, p protocol.KickPlayer) error {
	if !session.inRoom() || !session.isHost {
		return ErrNotAuthorized
	}

	target, ok := c.sessions[p.TargetSessionID]
	if !ok || target == session || target.roomCode != session.roomCode {
		// The target may have disconnected already; a stale kick is not
		// an error.
		return nil
	}

	left := protocol.PlayerLeft{
		ID:     target.ID,
		Name:   target.identity.DisplayName,
		Kicked: true,
	}

	c.send(target, protocol.TagPlayerKicked,
		protocol.PlayerKicked{Message: "You were kicked from the room"})
	target.roomCode = ""
	target.isHost = false

	c.broadcast(session.roomCode, nil, protocol.TagPlayerLeft, left)
	log.Printf("[%v] kicked %v", colors.Kick(session.ID), colors.Kick(target.ID))
	return nil
}
