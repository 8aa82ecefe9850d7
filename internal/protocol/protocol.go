package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/jimmyqrg/parkoreen-sub001/internal/palette"
)

// Client -> coordinator message tags.
const (
	TagAuth       = "auth"
	TagCreateRoom = "create_room"
	TagJoinRoom   = "join_room"
	TagRejoinRoom = "rejoin_room"
	TagLeaveRoom  = "leave_room"
	TagPosition   = "position"
	TagKickPlayer = "kick_player"
	TagChat       = "chat"
)

// Coordinator -> client message tags.
const (
	TagAuthSuccess    = "auth_success"
	TagError          = "error"
	TagRoomCreated    = "room_created"
	TagRoomJoined     = "room_joined"
	TagRoomRejoined   = "room_rejoined"
	TagPlayerJoined   = "player_joined"
	TagPlayerLeft     = "player_left"
	TagPlayerPosition = "player_position"
	TagPlayerKicked   = "player_kicked"
	TagRoomClosed     = "room_closed"
	TagChatMessage    = "chat_message"
)

// Envelope is the tagged record every wire message travels in.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

func Decode(raw []byte) (Envelope, error) {
	var e Envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		return Envelope{}, fmt.Errorf("malformed wire message: %w", err)
	}
	if e.Type == "" {
		return Envelope{}, fmt.Errorf("wire message has no type tag")
	}
	return e, nil
}

func (e Envelope) As(v any) error {
	if len(e.Data) == 0 {
		return nil
	}
	return json.Unmarshal(e.Data, v)
}

// Encode wraps a payload in an envelope. Payload marshalling of the
// types below cannot fail, so the error is swallowed.
func Encode(tag string, v any) []byte {
	data, _ := json.Marshal(v)
	raw, _ := json.Marshal(Envelope{Type: tag, Data: data})
	return raw
}

type Auth struct {
	Credential string `json:"credential"`
}

type CreateRoom struct {
	LevelData        []byte `json:"levelData"`
	MaxPlayers       int    `json:"maxPlayers"`
	PasswordRequired bool   `json:"passwordRequired"`
	Password         string `json:"password"`
}

type JoinRoom struct {
	Code     string `json:"code"`
	Password string `json:"password,omitempty"`
}

type RejoinRoom struct {
	Code string `json:"code"`
}

type Position struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

type KickPlayer struct {
	TargetSessionID string `json:"targetSessionId"`
}

type Chat struct {
	Message string `json:"message"`
}

// RosterEntry describes one live room member.
type RosterEntry struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Color palette.Color `json:"color"`
}

type AuthSuccess struct{}

type Error struct {
	Message string `json:"message"`
}

type RoomCreated struct {
	Code string `json:"code"`
}

type RoomJoined struct {
	Code      string        `json:"code"`
	LevelData []byte        `json:"levelData"`
	Roster    []RosterEntry `json:"roster"`
}

type RoomRejoined struct {
	Code   string        `json:"code"`
	IsHost bool          `json:"isHost"`
	Roster []RosterEntry `json:"roster"`
}

type PlayerJoined struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Color palette.Color `json:"color"`
}

type PlayerLeft struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Kicked bool   `json:"kicked,omitempty"`
}

type PlayerPosition struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

type PlayerKicked struct {
	Message string `json:"message"`
}

type RoomClosed struct {
	Message string `json:"message"`
}

type ChatMessage struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Color   palette.Color `json:"color"`
	Message string        `json:"message"`
}
