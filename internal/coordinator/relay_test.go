package coordinator

import (
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jimmyqrg/parkoreen-sub001/internal/protocol"
)

func TestPositionRelayExcludesSender(t *testing.T) {
	f := newFixture()
	f.addUser("tok-host", 1, "Host")
	f.addUser("tok-amy", 2, "Amy")

	hostSender := f.connect(t, "host", "tok-host")
	code := f.createRoom(t, "host", hostSender, protocol.CreateRoom{MaxPlayers: 4})

	amySender := f.connect(t, "amy", "tok-amy")
	f.dispatch("amy", protocol.TagJoinRoom, protocol.JoinRoom{Code: code})
	hostSender.reset()
	amySender.reset()

	f.dispatch("amy", protocol.TagPosition, protocol.Position{X: 10, Y: -3, VX: 1.5, VY: 0})

	positions := hostSender.byType(protocol.TagPlayerPosition)
	require.Len(t, positions, 1)
	p := payload[protocol.PlayerPosition](t, positions[0])
	assert.Equal(t, "amy", p.ID)
	assert.Equal(t, 10.0, p.X)
	assert.Equal(t, -3.0, p.Y)
	assert.Equal(t, 1.5, p.VX)

	assert.Empty(t, amySender.byType(protocol.TagPlayerPosition))
}

func TestPositionOutsideRoomIsDropped(t *testing.T) {
	f := newFixture()
	f.addUser("tok", 1, "Amy")
	sender := f.connect(t, "s1", "tok")

	f.dispatch("s1", protocol.TagPosition, protocol.Position{X: 1})

	assert.Empty(t, sender.sent)
}

func TestChatRelayIncludesSender(t *testing.T) {
	f := newFixture()
	f.addUser("tok-host", 1, "Host")
	f.addUser("tok-amy", 2, "Amy")

	hostSender := f.connect(t, "host", "tok-host")
	code := f.createRoom(t, "host", hostSender, protocol.CreateRoom{MaxPlayers: 4})

	amySender := f.connect(t, "amy", "tok-amy")
	f.dispatch("amy", protocol.TagJoinRoom, protocol.JoinRoom{Code: code})
	hostSender.reset()
	amySender.reset()

	f.dispatch("amy", protocol.TagChat, protocol.Chat{Message: "gg"})

	for name, sender := range map[string]*fakeSender{"host": hostSender, "amy": amySender} {
		messages := sender.byType(protocol.TagChatMessage)
		require.Len(t, messages, 1, "session %s", name)
		chat := payload[protocol.ChatMessage](t, messages[0])
		assert.Equal(t, "amy", chat.ID)
		assert.Equal(t, "Amy", chat.Name)
		assert.Equal(t, "gg", chat.Message)
	}
}

func TestChatTruncation(t *testing.T) {
	f := newFixture()
	f.addUser("tok-host", 1, "Host")

	hostSender := f.connect(t, "host", "tok-host")
	f.createRoom(t, "host", hostSender, protocol.CreateRoom{MaxPlayers: 4})

	f.dispatch("host", protocol.TagChat, protocol.Chat{Message: strings.Repeat("a", 300)})

	messages := hostSender.byType(protocol.TagChatMessage)
	require.Len(t, messages, 1)
	chat := payload[protocol.ChatMessage](t, messages[0])
	assert.Len(t, chat.Message, 200)
}

func TestTruncateCountsUTF16Units(t *testing.T) {
	// Each emoji is one rune but two UTF-16 code units.
	message := strings.Repeat("\U0001F600", 120)

	truncated := truncate(message, 200)

	assert.Len(t, utf16.Encode([]rune(truncated)), 200)
	assert.Equal(t, 100, strings.Count(truncated, "\U0001F600"))
}

func TestTruncateNeverSplitsSurrogatePair(t *testing.T) {
	message := "x" + strings.Repeat("\U0001F600", 120)

	truncated := truncate(message, 200)

	// 1 + 2*99 = 199 units: the 200th unit would be half an emoji.
	assert.Len(t, utf16.Encode([]rune(truncated)), 199)
	assert.NotContains(t, truncated, string(rune(0xFFFD)))
}

func TestTruncateShortMessageUntouched(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 200))
}
