package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'MatchRecord' stores the final scoreboard of a finished game. Rooms
 * themselves never touch the database; a record is written once, when
 * a game reaches its terminal state.
 */
type MatchRecord struct {
	ID         uint           `gorm:"primaryKey;autoIncrement"`
	RoomID     string         `gorm:"size:10;not null;index"`
	Mode       string         `gorm:"size:20;not null"`
	Winner     string         `gorm:"size:50"`
	Scoreboard datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	FinishedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP"`
}
