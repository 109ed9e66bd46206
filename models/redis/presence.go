package redis

type PlayerStatus string

const (
	StatusOnline  PlayerStatus = "online"
	StatusOffline PlayerStatus = "offline"
	StatusPlaying PlayerStatus = "playing"
)

type PlayerPresence struct {
	Username string       `json:"username"`
	Status   PlayerStatus `json:"status"`
	RoomID   string       `json:"room_id,omitempty"`
	LastPing int64        `json:"last_ping"` // Unix timestamp
}
