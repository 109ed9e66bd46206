package game

import (
	game_constants "Drawr/constants/game"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinAssignsHostAndBroadcasts(t *testing.T) {
	room, emitter, players := newTestRoom(t, ModeDraw, "ana", "bob")

	assert.Equal(t, players[0].ID, room.HostID(), "first joiner becomes host")
	assert.Equal(t, 2, emitter.countRoomEvents("room_state"), "every roster mutation broadcasts")
}

func TestJoinDefaultNameHasSuffix(t *testing.T) {
	room, _, _ := newTestRoom(t, ModeDraw)
	p := room.Join("ana", "", 0)

	assert.True(t, strings.HasPrefix(p.Name, "player"))
	assert.Len(t, p.Name, len("player")+2, "default name carries a two-digit suffix")
}

func TestSetProfileClampsName(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana")

	long := strings.Repeat("x", 60)
	room.SetProfile(players[0].ID, long, 3)

	room.mu.Lock()
	defer room.mu.Unlock()
	assert.Len(t, players[0].Name, game_constants.MaxNameLength)
	assert.Equal(t, 3, players[0].Icon)
}

func TestSetProfileIgnoresEmptyName(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana")

	room.SetProfile(players[0].ID, "   ", -1)

	room.mu.Lock()
	defer room.mu.Unlock()
	assert.Equal(t, "ana", players[0].Name)
	assert.Equal(t, 0, players[0].Icon)
}

func TestDisconnectRetainsPlayerRecord(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob")

	room.Disconnect(players[1].ID)

	room.mu.Lock()
	defer room.mu.Unlock()
	require.Len(t, room.players, 2, "disconnect flips the flag, it never removes the record")
	assert.False(t, players[1].Connected)
	assert.Len(t, room.activeRosterLocked(), 1)
}

func TestHostFailoverInJoinOrder(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob", "cleo")

	room.Disconnect(players[0].ID)
	assert.Equal(t, players[1].ID, room.HostID(), "first remaining connected player in join order")

	room.Disconnect(players[1].ID)
	assert.Equal(t, players[2].ID, room.HostID())

	room.Disconnect(players[2].ID)
	assert.Empty(t, room.HostID(), "empty roster leaves no host")
	assert.True(t, room.Empty())
}

func TestActiveRosterPreservesJoinOrder(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob", "cleo")

	room.Disconnect(players[1].ID)
	active := room.ActiveRoster()

	require.Len(t, active, 2)
	assert.Equal(t, players[0].ID, active[0].ID)
	assert.Equal(t, players[2].ID, active[1].ID)
}

func TestRegistryOneRoomPerIdentifier(t *testing.T) {
	reg := NewRegistry(newRecordingEmitter())

	a := reg.Create("room1", ModeDraw)
	b := reg.Create("room1", ModeGolf)
	assert.Same(t, a, b, "creating over an existing id returns the existing room")
	assert.Equal(t, 1, reg.Count())
}

func TestRegistryGeneratesIDs(t *testing.T) {
	reg := NewRegistry(newRecordingEmitter())

	room := reg.Create("", ModeDraw)
	assert.Len(t, room.ID, idLength)

	found, ok := reg.Get(room.ID)
	require.True(t, ok)
	assert.Same(t, room, found)
}

func TestRegistryEvict(t *testing.T) {
	reg := NewRegistry(newRecordingEmitter())
	room := reg.Create("gone", ModeDraw)

	reg.Evict("gone")
	_, ok := reg.Get("gone")
	assert.False(t, ok, "an evicted room is no longer retrievable")
	assert.Equal(t, StateLobby, room.CurrentState())
}

func TestSnapshotHidesSecretWord(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob")

	room.mu.Lock()
	room.state = StateTurnActive
	room.round = newRoundContext(players[0].ID, []string{"guitar", "x", "y"})
	room.round.Word = "guitar"
	room.round.Revealed[0] = true
	room.mu.Unlock()

	snap := room.Snapshot()
	assert.Equal(t, "G_____", snap.MaskedWord)
	assert.NotContains(t, snap.MaskedWord, "guitar")
}
