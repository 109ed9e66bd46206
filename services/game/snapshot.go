package game

// Outbound payload types. The broadcast layer only serializes state, it
// never mutates it; secret round data (the unmasked word, the choices) is
// never part of a room-wide payload.

// PlayerSnapshot is the public view of one roster entry.
type PlayerSnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      int    `json:"icon"`
	Connected bool   `json:"connected"`
	Ready     bool   `json:"ready"`
	Score     int    `json:"score"`
}

// RoomSnapshot is the full room state broadcast after every mutation.
type RoomSnapshot struct {
	RoomID  string           `json:"room_id"`
	Mode    Mode             `json:"mode"`
	State   State            `json:"state"`
	HostID  string           `json:"host_id"`
	Round   int              `json:"round"`
	ActorID string           `json:"actor_id,omitempty"`
	Players []PlayerSnapshot `json:"players"`

	// Round-visible fields, present only while a round is live
	MaskedWord string       `json:"masked_word,omitempty"`
	Remaining  int          `json:"remaining,omitempty"`
	Ball       *BallPayload `json:"ball,omitempty"`
	Course     *Course      `json:"course,omitempty"`
}

type WordChoicesPayload struct {
	Choices []string `json:"choices"`
	Timeout int      `json:"timeout"`
}

type RoundStartPayload struct {
	Round      int    `json:"round"`
	ActorID    string `json:"actor_id"`
	MaskedWord string `json:"masked_word"`
	Seconds    int    `json:"seconds"`
}

type TickPayload struct {
	Remaining  int    `json:"remaining"`
	MaskedWord string `json:"masked_word"`
	HintsUsed  int    `json:"hints_used"`
}

type PlayerGuessedPayload struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	TimeLeft int    `json:"time_left"`
}

type RoundEndPayload struct {
	Round   int            `json:"round"`
	ActorID string         `json:"actor_id"`
	Word    string         `json:"word,omitempty"`
	Strokes int            `json:"strokes,omitempty"`
	Sunk    bool           `json:"sunk,omitempty"`
	Awards  map[string]int `json:"awards"`
	Scores  map[string]int `json:"scores"`
}

type GameOverPayload struct {
	Rounds int            `json:"rounds"`
	Scores map[string]int `json:"scores"`
}

type BallPayload struct {
	Pos     Vec2 `json:"pos"`
	Strokes int  `json:"strokes"`
	Sunk    bool `json:"sunk"`
}

type NoticePayload struct {
	Message string `json:"message"`
}

// Snapshot builds the public room view.
func (r *Room) Snapshot() RoomSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Room) snapshotLocked() RoomSnapshot {
	snap := RoomSnapshot{
		RoomID:  r.ID,
		Mode:    r.Mode,
		State:   r.state,
		HostID:  r.hostID,
		Round:   r.roundNum,
		ActorID: r.actorIDLocked(),
		Players: make([]PlayerSnapshot, 0, len(r.players)),
	}
	for _, p := range r.players {
		snap.Players = append(snap.Players, PlayerSnapshot{
			ID:        p.ID,
			Name:      p.Name,
			Icon:      p.Icon,
			Connected: p.Connected,
			Ready:     p.Ready,
			Score:     r.scores[p.ID],
		})
	}
	if r.round != nil && r.round.Word != "" {
		snap.MaskedWord = MaskWord(r.round.Word, r.round.Revealed)
		snap.Remaining = r.round.Remaining
	}
	if r.ball != nil {
		snap.Ball = &BallPayload{Pos: r.ball.Pos, Strokes: r.ball.Strokes, Sunk: r.ball.Sunk}
		snap.Course = r.ball.Course
	}
	return snap
}

func (r *Room) scoresSnapshotLocked() map[string]int {
	scores := make(map[string]int, len(r.scores))
	for id, pts := range r.scores {
		scores[id] = pts
	}
	return scores
}

// broadcastStateLocked publishes the room snapshot to every member. Every
// mutating roster or lifecycle operation ends with this.
func (r *Room) broadcastStateLocked() {
	r.emitter.ToRoom(r.ID, "room_state", r.snapshotLocked())
}
