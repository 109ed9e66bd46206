package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuesserScore(t *testing.T) {
	tests := []struct {
		name      string
		timeLeft  int
		hintsUsed int
		want      int
	}{
		{"instant guess no hints is clamped to max", 60, 0, 250},
		{"timeout with all hints is min", 0, 3, 0},
		{"spec example", 45, 0, 240}, // round(200*45/60 + 30*3)
		{"half time two hints", 30, 2, 130},
		{"one second left no hints", 1, 0, 93},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GuesserScore(tt.timeLeft, tt.hintsUsed)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 250)
		})
	}
}

func TestActorScore(t *testing.T) {
	tests := []struct {
		name     string
		correct  int
		eligible int
		avgTime  float64
		want     int
	}{
		{"everyone instantly", 3, 3, 60, 500},
		{"nobody guessed", 0, 3, 0, 0},
		{"half the room halfway", 1, 2, 30, 250},
		{"zero eligible guarded", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActorScore(tt.correct, tt.eligible, tt.avgTime)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 500)
		})
	}
}

func TestGolfScore(t *testing.T) {
	assert.Equal(t, 250, GolfScore(1, true), "hole in one pays max")
	assert.Equal(t, 42, GolfScore(6, true)) // round(250*1/6)
	assert.Equal(t, 0, GolfScore(6, false), "unfinished hole pays nothing")
	assert.Equal(t, 0, GolfScore(0, true))
}

func TestLeaderboardIsAdditive(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob")
	actor, guesser := players[0], players[1]

	room.mu.Lock()
	room.scores[guesser.ID] = 100
	room.round = newRoundContext(actor.ID, []string{"guitar", "x", "y"})
	room.round.Word = "guitar"
	room.round.Guesses[guesser.ID] = &GuessRecord{Correct: true, TimeLeft: 45, HintsUsed: 0}
	room.applyDrawScoresLocked()
	score := room.scores[guesser.ID]
	room.mu.Unlock()

	assert.Equal(t, 340, score, "round points are added on top of the running total")
}

func TestNoCorrectGuessersBranch(t *testing.T) {
	room, _, players := newTestRoom(t, ModeDraw, "ana", "bob", "cleo")
	actor := players[0]

	room.mu.Lock()
	room.round = newRoundContext(actor.ID, []string{"guitar", "x", "y"})
	room.round.Word = "guitar"
	awards := room.applyDrawScoresLocked()
	room.mu.Unlock()

	assert.Equal(t, 0, awards[actor.ID], "with C=0 the actor score depends only on the avg term, which is 0")
	assert.Len(t, awards, 1)
}
