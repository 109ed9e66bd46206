package postgres

import (
	"gorm.io/datatypes"
)

/*
 * 'GameProfile' defines the structure for a user's game profile. It is
 * referenced in User and MatchRecord and aggregates lifetime play stats.
 */
type GameProfile struct {
	Username  string         `gorm:"primaryKey;size:50;not null"`
	UserStats datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	UserIcon  int            `gorm:"default:0"`
	IsInAGame bool           `gorm:"default:false"`
}

// UserStatsPayload is the shape stored inside GameProfile.UserStats.
type UserStatsPayload struct {
	GamesPlayed int `json:"games_played"`
	GamesWon    int `json:"games_won"`
	TotalScore  int `json:"total_score"`
	BestScore   int `json:"best_score"`
}
