package game

import (
	game_constants "Drawr/constants/game"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Mode selects which round variant a room runs.
type Mode string

const (
	ModeDraw Mode = "draw"
	ModeGolf Mode = "golf"
)

// State is the room lifecycle state. At most one holds at any instant.
type State string

const (
	StateLobby      State = "lobby"
	StateRoundStart State = "round_start"
	StateTurnActive State = "turn_active"
	StateRoundEnd   State = "round_end"
	StateGameOver   State = "game_over"
)

// Player is owned exclusively by its Room. Disconnecting flips Connected
// only; the record is retained so leaderboard entries and queue slots stay
// valid. Per-round transient fields live in the round contexts.
type Player struct {
	ID        string
	Username  string // auth identity, used for stats persistence
	Name      string // display name, user-settable
	Icon      int
	Connected bool
	Ready     bool
}

// Room is an isolated multiplayer session. All mutable state is guarded by
// mu; every exported method acquires it, every *Locked helper assumes it is
// already held. Rooms are fully independent: no lock ordering across rooms.
type Room struct {
	ID   string
	Mode Mode

	mu      sync.Mutex
	state   State
	players []*Player // join order, never reordered on disconnect
	hostID  string

	round *RoundContext   // draw mode, nil outside a round
	ball  *PhysicsContext // golf mode, nil outside a round

	scores   map[string]int // player id -> cumulative score, additive only
	roundNum int
	queue    []string // pending actor ids, may contain stale entries

	// Single cancellable handle for the active timer / simulation task.
	// Starting a new one always cancels the previous handle first.
	timerGen  uint64
	timerStop chan struct{}

	emitter    Emitter
	rng        *rand.Rand
	onGameOver func(roomID string, mode Mode, scoresByUser map[string]int)
}

func newRoom(id string, mode Mode, emitter Emitter) *Room {
	return &Room{
		ID:      id,
		Mode:    mode,
		state:   StateLobby,
		scores:  make(map[string]int),
		emitter: emitter,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ---------------------------------------------------------------
// Roster management
// ---------------------------------------------------------------

// Join appends a new player to the roster and assigns the host if the room
// has none. Returns the created player.
func (r *Room) Join(username, name string, icon int) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &Player{
		ID:        uuid.NewString(),
		Username:  username,
		Name:      sanitizeName(name, r.rng),
		Icon:      icon,
		Connected: true,
	}
	r.players = append(r.players, p)

	if r.hostID == "" {
		r.hostID = p.ID
		log.Printf("[ROSTER] Player %s (%s) is now host of room %s", p.Name, p.ID, r.ID)
	}

	log.Printf("[ROSTER] Player %s joined room %s (%d players)", p.Name, r.ID, len(r.players))
	r.broadcastStateLocked()
	return p
}

// SetProfile updates display name and icon with bounds checking. Empty or
// oversized values are clamped, never rejected.
func (r *Room) SetProfile(playerID, name string, icon int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(playerID)
	if p == nil {
		return
	}
	if name = strings.TrimSpace(name); name != "" {
		if len(name) > game_constants.MaxNameLength {
			name = name[:game_constants.MaxNameLength]
		}
		p.Name = name
	}
	if icon >= 0 {
		p.Icon = icon
	}
	r.broadcastStateLocked()
}

func (r *Room) SetReady(playerID string, ready bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(playerID)
	if p == nil {
		return
	}
	p.Ready = ready
	r.broadcastStateLocked()
}

// Disconnect flips the connectivity flag and handles host failover. If the
// disconnecting player is the current actor mid-round, the round is
// force-resolved immediately with whatever guesses are already recorded.
func (r *Room) Disconnect(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(playerID)
	if p == nil || !p.Connected {
		return
	}
	p.Connected = false
	log.Printf("[ROSTER] Player %s disconnected from room %s", p.Name, r.ID)

	if r.hostID == playerID {
		r.hostID = ""
		for _, cand := range r.players {
			if cand.Connected {
				r.hostID = cand.ID
				log.Printf("[ROSTER] Host failover in room %s: new host %s", r.ID, cand.Name)
				break
			}
		}
	}

	// Keep the turn queue in sync with the active roster
	r.pruneQueueLocked()

	// Actor disconnect is an early-termination trigger for the round
	if r.actorIDLocked() == playerID && (r.state == StateRoundStart || r.state == StateTurnActive) {
		log.Printf("[ROSTER] Actor left mid-round in room %s, force-resolving", r.ID)
		r.resolveRoundLocked()
	} else if r.state == StateTurnActive && r.Mode == ModeDraw && r.round != nil && r.allGuessedLocked() {
		// The disconnect may have satisfied the "everyone got it" early exit
		r.resolveRoundLocked()
	}

	r.broadcastStateLocked()
}

// ActiveRoster returns the connected players in join order.
func (r *Room) ActiveRoster() []*Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeRosterLocked()
}

func (r *Room) activeRosterLocked() []*Player {
	active := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		if p.Connected {
			active = append(active, p)
		}
	}
	return active
}

func (r *Room) playerLocked(id string) *Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// actorIDLocked returns the current actor's id, or "" outside a round.
func (r *Room) actorIDLocked() string {
	if r.round != nil {
		return r.round.ActorID
	}
	if r.ball != nil {
		return r.ball.ActorID
	}
	return ""
}

// HostID returns the current host's player id, or "" for an empty room.
func (r *Room) HostID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hostID
}

// CurrentState returns the current lifecycle state.
func (r *Room) CurrentState() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Empty reports whether no connected player remains.
func (r *Room) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.activeRosterLocked()) == 0
}

// ---------------------------------------------------------------
// Timer ownership
// ---------------------------------------------------------------

// cancelTimerLocked tears down the active timer/simulation handle. Bumping
// the generation makes any in-flight callback abort on its liveness check.
func (r *Room) cancelTimerLocked() {
	r.timerGen++
	if r.timerStop != nil {
		close(r.timerStop)
		r.timerStop = nil
	}
}

// startTickerLocked replaces the active handle with a repeating task. The
// callback runs with the room lock held and must return true to stop the
// loop. Ticks fire strictly in increasing time order; a tick whose
// generation no longer matches is a stale callback and is dropped.
func (r *Room) startTickerLocked(interval time.Duration, fn func() bool) {
	r.cancelTimerLocked()
	gen := r.timerGen
	stop := make(chan struct{})
	r.timerStop = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				r.mu.Lock()
				if r.timerGen != gen {
					r.mu.Unlock()
					return
				}
				done := fn()
				r.mu.Unlock()
				if done {
					return
				}
			}
		}
	}()
}

func sanitizeName(name string, rng *rand.Rand) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fmt.Sprintf("player%02d", rng.Intn(100))
	}
	if len(name) > game_constants.MaxNameLength {
		name = name[:game_constants.MaxNameLength]
	}
	return name
}
