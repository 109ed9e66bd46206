package game

import (
	game_constants "Drawr/constants/game"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoom(t *testing.T, mode Mode, playerNames ...string) (*Room, *recordingEmitter, []*Player) {
	t.Helper()
	emitter := newRecordingEmitter()
	reg := NewRegistry(emitter)
	room := reg.Create("test-room", mode)

	players := make([]*Player, 0, len(playerNames))
	for _, name := range playerNames {
		players = append(players, room.Join(name, name, 0))
	}
	return room, emitter, players
}

func TestQueueDistribution(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob", "cleo", "dani")

	room.mu.Lock()
	room.buildQueueLocked()
	queue := append([]string(nil), room.queue...)
	room.mu.Unlock()

	require.Len(t, queue, len(players)*game_constants.TURNS_PER_PLAYER)

	counts := make(map[string]int)
	for _, id := range queue {
		counts[id]++
	}
	for _, p := range players {
		assert.Equal(t, game_constants.TURNS_PER_PLAYER, counts[p.ID],
			"player %s should appear exactly %d times", p.Name, game_constants.TURNS_PER_PLAYER)
	}
}

func TestQueueFullConsumption(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob", "cleo")

	room.mu.Lock()
	room.buildQueueLocked()
	turns := make(map[string]int)
	for {
		id, ok := room.nextActorLocked()
		if !ok {
			break
		}
		turns[id]++
	}
	room.mu.Unlock()

	for _, p := range players {
		assert.Equal(t, game_constants.TURNS_PER_PLAYER, turns[p.ID])
	}
}

func TestQueueLazyPruning(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob")

	room.mu.Lock()
	// Hand-build a queue headed by a soon-to-be-stale entry
	room.queue = []string{players[0].ID, players[1].ID}
	room.playerLocked(players[0].ID).Connected = false

	id, ok := room.nextActorLocked()
	room.mu.Unlock()

	require.True(t, ok)
	assert.Equal(t, players[1].ID, id, "stale entry should be discarded, not returned")
}

func TestQueueProactivePruningOnDisconnect(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob", "cleo")

	room.mu.Lock()
	room.buildQueueLocked()
	room.mu.Unlock()

	room.Disconnect(players[1].ID)

	room.mu.Lock()
	defer room.mu.Unlock()
	for _, id := range room.queue {
		assert.NotEqual(t, players[1].ID, id, "disconnected player must be pruned from the queue")
	}
	assert.Len(t, room.queue, 2*game_constants.TURNS_PER_PLAYER)
}

func TestQueueExhaustionEndsGame(t *testing.T) {
	room, _, _ := newTestRoom(t, ModeDraw, "ana", "bob")

	room.mu.Lock()
	room.queue = nil
	room.beginRoundLocked()
	state := room.state
	room.mu.Unlock()

	assert.Equal(t, StateGameOver, state)
}
