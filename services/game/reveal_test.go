package game

import (
	"testing"
	"time"

	game_constants "Drawr/constants/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskWord(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		revealed map[int]bool
		want     string
	}{
		{"all hidden baseline", "ice cream", nil, "___ _____"},
		{"space position in reveal set still renders space", "ice cream", map[int]bool{3: true}, "___ _____"},
		{"revealed letter renders uppercase", "ice cream", map[int]bool{0: true}, "I__ _____"},
		{"multiple reveals", "ice cream", map[int]bool{0: true, 4: true}, "I__ C____"},
		{"single word", "guitar", map[int]bool{2: true}, "__I___"},
		{"fully revealed", "ace", map[int]bool{0: true, 1: true, 2: true}, "ACE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskWord(tt.word, tt.revealed))
		})
	}
}

func TestRevealHintSkipsSpaces(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob")

	room.mu.Lock()
	room.round = newRoundContext(players[0].ID, []string{"ice cream", "x", "y"})
	room.round.Word = "ice cream"

	// Reveal everything; the space at index 3 must never be revealed
	for i := 0; i < len("ice cream"); i++ {
		room.revealHintLocked()
	}
	revealed := room.round.Revealed
	hints := room.round.HintsUsed
	room.mu.Unlock()

	assert.False(t, revealed[3], "space position must not be revealed")
	assert.Equal(t, len("ice cream")-1, hints)
}

func TestRevealGrowsMonotonically(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob")

	room.mu.Lock()
	room.round = newRoundContext(players[0].ID, []string{"guitar", "x", "y"})
	room.round.Word = "guitar"
	room.revealHintLocked()
	require.Len(t, room.round.Revealed, 1)
	room.revealHintLocked()
	assert.Len(t, room.round.Revealed, 2)
	assert.Equal(t, 2, room.round.HintsUsed)
	room.mu.Unlock()
}

func TestCountdownTicksAndRevealsAtCheckpoint(t *testing.T) {
	room, emitter, players := newTestRoom(t, ModeDraw, "ana", "bob")
	actor := players[0]

	room.mu.Lock()
	room.state = StateTurnActive
	room.roundNum = 1
	room.round = newRoundContext(actor.ID, []string{"guitar", "x", "y"})
	room.round.Word = "guitar"
	// Pin the clock one second above the first hint checkpoint
	room.round.Remaining = game_constants.HintCheckpoints[0] + 1
	room.startCountdownLocked()
	room.mu.Unlock()

	// Long enough for exactly one tick
	time.Sleep(game_constants.TICK_INTERVAL + 500*time.Millisecond)

	room.mu.Lock()
	remaining := room.round.Remaining
	hints := room.round.HintsUsed
	room.cancelTimerLocked()
	room.mu.Unlock()

	assert.Equal(t, game_constants.HintCheckpoints[0], remaining, "each tick decrements one second")
	assert.Equal(t, 1, hints, "crossing the checkpoint reveals exactly one hint")
	assert.GreaterOrEqual(t, emitter.countRoomEvents("countdown_tick"), 1, "every tick is broadcast")
	assert.Equal(t, StateTurnActive, room.CurrentState(), "the round keeps running above zero")
}

func TestCountdownResolvesAtZero(t *testing.T) {
	room, emitter, players := newTestRoom(t, ModeDraw, "ana", "bob")
	actor := players[0]

	room.mu.Lock()
	room.state = StateTurnActive
	room.roundNum = 1
	room.round = newRoundContext(actor.ID, []string{"guitar", "x", "y"})
	room.round.Word = "guitar"
	room.round.Remaining = 1
	room.startCountdownLocked()
	room.mu.Unlock()

	time.Sleep(game_constants.TICK_INTERVAL + 500*time.Millisecond)

	assert.Equal(t, StateRoundEnd, room.CurrentState(), "the clock hitting zero resolves the round")
	assert.Equal(t, 1, emitter.countRoomEvents("round_end"))
	assert.GreaterOrEqual(t, emitter.countRoomEvents("countdown_tick"), 1)

	room.mu.Lock()
	assert.Zero(t, room.round.Remaining, "remaining seconds floor at zero")
	room.mu.Unlock()
}

func TestCorrectGuessRecordsAndSuppresses(t *testing.T) {
	room, emitter, players := newTestRoom(t, ModeDraw, "ana", "bob", "cleo")
	actor, guesser := players[0], players[1]

	room.mu.Lock()
	room.state = StateTurnActive
	room.round = newRoundContext(actor.ID, []string{"guitar", "x", "y"})
	room.round.Word = "guitar"
	room.round.Remaining = 45
	room.mu.Unlock()

	assert.False(t, room.Guess(guesser.ID, "piano"), "wrong guess is relayed as chat")
	assert.True(t, room.Guess(guesser.ID, "  GUITAR "), "case and whitespace are normalized")

	room.mu.Lock()
	rec := room.round.Guesses[guesser.ID]
	room.mu.Unlock()
	require.NotNil(t, rec)
	assert.True(t, rec.Correct)
	assert.Equal(t, 45, rec.TimeLeft)
	assert.Equal(t, 0, rec.HintsUsed)
	assert.Equal(t, 1, emitter.countRoomEvents("player_guessed"))

	// Correctness, once set, is immutable: a repeat is a silent no-op
	assert.False(t, room.Guess(guesser.ID, "guitar"))
	room.mu.Lock()
	assert.Equal(t, 45, room.round.Guesses[guesser.ID].TimeLeft)
	room.mu.Unlock()
}

func TestActorCannotGuess(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob")
	actor := players[0]

	room.mu.Lock()
	room.state = StateTurnActive
	room.round = newRoundContext(actor.ID, []string{"guitar", "x", "y"})
	room.round.Word = "guitar"
	room.mu.Unlock()

	assert.False(t, room.Guess(actor.ID, "guitar"))
}

func TestEveryoneGuessedEarlyExit(t *testing.T) {
	room, emitter, players := newTestRoom(t, ModeDraw, "ana", "bob", "cleo")
	actor := players[0]

	room.mu.Lock()
	room.state = StateTurnActive
	room.roundNum = 1
	room.round = newRoundContext(actor.ID, []string{"guitar", "x", "y"})
	room.round.Word = "guitar"
	room.mu.Unlock()

	room.Guess(players[1].ID, "guitar")
	assert.Equal(t, StateTurnActive, room.CurrentState(), "round keeps running while a guesser is missing")

	room.Guess(players[2].ID, "guitar")
	assert.Equal(t, StateRoundEnd, room.CurrentState(), "round resolves once every non-actor guessed")
	assert.Equal(t, 1, emitter.countRoomEvents("round_end"))
}
