package coordinator

import (
	"unicode/utf16"

	"github.com/jimmyqrg/parkoreen-sub001/internal/protocol"
)

// The relay is a pure fan-out; it validates nothing about the payload.
// Messages from a session that is not in a room are dropped silently,
// since they are usually just in flight across a kick or room close.

func (c *Coordinator) handlePosition(session *Session, p protocol.Position) error {
	if !session.inRoom() {
		return nil
	}
	c.broadcast(session.roomCode, session, protocol.TagPlayerPosition, protocol.PlayerPosition{
		ID: session.ID,
		X:  p.X,
		Y:  p.Y,
		VX: p.VX,
		VY: p.VY,
	})
	return nil
}

func (c *Coordinator) handleChat(session *Session, p protocol.Chat) error {
	if !session.inRoom() {
		return nil
	}
	c.broadcast(session.roomCode, nil, protocol.TagChatMessage, protocol.ChatMessage{
		ID:      session.ID,
		Name:    session.identity.DisplayName,
		Color:   session.color,
		Message: truncate(p.Message, c.options.ChatLimit),
	})
	return nil
}

// truncate cuts a message to limit UTF-16 code units without splitting a
// surrogate pair.
func truncate(message string, limit int) string {
	units := utf16.Encode([]rune(message))
	if len(units) <= limit {
		return message
	}
	units = units[:limit]
	if last := units[len(units)-1]; last >= 0xD800 && last < 0xDC00 {
		units = units[:len(units)-1]
	}
	return string(utf16.Decode(units))
}
