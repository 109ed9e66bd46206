package sync

import (
	models "Drawr/models/postgres"
	"Drawr/services/game"
	"Drawr/services/redis"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// SyncManager moves terminal game results from the in-memory engine into
// PostgreSQL. Rooms themselves are never persisted; only the final
// scoreboard of a finished game crosses this boundary.
type SyncManager struct {
	redisClient *redis.RedisClient
	db          *gorm.DB
}

// NewSyncManager creates a new instance of the synchronization manager
func NewSyncManager(redisClient *redis.RedisClient, db *gorm.DB) *SyncManager {
	return &SyncManager{
		redisClient: redisClient,
		db:          db,
	}
}

// PersistGameResult writes a MatchRecord and folds the final scores into
// each participant's lifetime stats. Intended to run as the registry's
// game-over hook, off the room's lock.
func (sm *SyncManager) PersistGameResult(roomID string, mode game.Mode, scoresByUser map[string]int) error {
	winner, best := "", -1
	for username, score := range scoresByUser {
		if score > best {
			winner, best = username, score
		}
	}

	scoreboard, err := json.Marshal(scoresByUser)
	if err != nil {
		return fmt.Errorf("error marshaling scoreboard: %v", err)
	}

	record := models.MatchRecord{
		RoomID:     roomID,
		Mode:       string(mode),
		Winner:     winner,
		Scoreboard: scoreboard,
		FinishedAt: time.Now(),
	}

	return sm.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("error persisting match record: %v", err)
		}

		for username, score := range scoresByUser {
			if err := sm.updateProfileStats(tx, username, score, username == winner); err != nil {
				// A missing profile (guest player) is not an error worth
				// rolling back the whole match record for
				log.Printf("[SYNC-WARN] Could not update stats for %s: %v", username, err)
			}
		}
		return nil
	})
}

// applyScore folds one game result into a player's lifetime stats.
func applyScore(stats *models.UserStatsPayload, score int, won bool) {
	stats.GamesPlayed++
	stats.TotalScore += score
	if won {
		stats.GamesWon++
	}
	if score > stats.BestScore {
		stats.BestScore = score
	}
}

func (sm *SyncManager) updateProfileStats(tx *gorm.DB, username string, score int, won bool) error {
	var profile models.GameProfile
	if err := tx.Where("username = ?", username).First(&profile).Error; err != nil {
		return fmt.Errorf("error fetching profile: %v", err)
	}

	var stats models.UserStatsPayload
	if len(profile.UserStats) > 0 {
		if err := json.Unmarshal(profile.UserStats, &stats); err != nil {
			return fmt.Errorf("error unmarshaling stats: %v", err)
		}
	}

	applyScore(&stats, score, won)

	updated, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("error marshaling stats: %v", err)
	}

	return tx.Model(&models.GameProfile{}).
		Where("username = ?", username).
		Updates(map[string]interface{}{
			"user_stats":   updated,
			"is_in_a_game": false,
		}).Error
}
