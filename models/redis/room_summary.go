package redis

// RoomSummary is the advisory directory entry for a joinable room.
// The authoritative room lives in process memory; this copy only
// feeds the public room listing and may lag behind reality.
type RoomSummary struct {
	RoomID      string `json:"room_id"`
	Mode        string `json:"mode"`
	HostName    string `json:"host_name"`
	PlayerCount int    `json:"player_count"`
	MaxPlayers  int    `json:"max_players"`
	InProgress  bool   `json:"in_progress"`
	CreatedAt   int64  `json:"created_at"` // Unix timestamp
}
