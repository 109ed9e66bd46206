package sync

import (
	models "Drawr/models/postgres"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyScoreFirstGame(t *testing.T) {
	stats := models.UserStatsPayload{}

	applyScore(&stats, 340, true)

	assert.Equal(t, 1, stats.GamesPlayed)
	assert.Equal(t, 1, stats.GamesWon)
	assert.Equal(t, 340, stats.TotalScore)
	assert.Equal(t, 340, stats.BestScore)
}

func TestApplyScoreAccumulates(t *testing.T) {
	stats := models.UserStatsPayload{
		GamesPlayed: 5,
		GamesWon:    2,
		TotalScore:  900,
		BestScore:   400,
	}

	applyScore(&stats, 250, false)

	assert.Equal(t, 6, stats.GamesPlayed)
	assert.Equal(t, 2, stats.GamesWon, "losing a game must not bump the win count")
	assert.Equal(t, 1150, stats.TotalScore)
	assert.Equal(t, 400, stats.BestScore, "a lower score must not replace the best")
}

func TestApplyScoreNewBest(t *testing.T) {
	stats := models.UserStatsPayload{BestScore: 100}

	applyScore(&stats, 500, true)

	assert.Equal(t, 500, stats.BestScore)
}
