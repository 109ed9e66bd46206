package game

import (
	"log"
	"math/rand"
	"sync"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const idLength = 4

// Registry holds every live room, keyed by identifier. Process-wide, lazily
// populated, never persisted. Rooms are fully independent so the registry
// lock is only held for map operations, never while touching a room.
type Registry struct {
	mu      sync.Mutex
	rooms   map[string]*Room
	emitter Emitter

	// OnGameOver, if set, is invoked (on its own goroutine) with the final
	// username-keyed leaderboard whenever a room's game finishes. Used to
	// persist match results without the engine knowing about storage.
	OnGameOver func(roomID string, mode Mode, scoresByUser map[string]int)
}

func NewRegistry(emitter Emitter) *Registry {
	return &Registry{
		rooms:   make(map[string]*Room),
		emitter: emitter,
	}
}

// Create registers a new room. An empty id gets a generated one, unique
// within the registry. Creating over an existing id returns the existing
// room: exactly one room per identifier.
func (reg *Registry) Create(id string, mode Mode) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	if id == "" {
		for {
			id = randomRoomID()
			if _, taken := reg.rooms[id]; !taken {
				break
			}
		}
	} else if existing, ok := reg.rooms[id]; ok {
		return existing
	}

	room := newRoom(id, mode, reg.emitter)
	room.onGameOver = reg.OnGameOver
	reg.rooms[id] = room
	log.Printf("[REGISTRY] Created room %s (mode: %s)", id, mode)
	return room
}

// Get looks up a room by identifier.
func (reg *Registry) Get(id string) (*Room, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	room, ok := reg.rooms[id]
	return room, ok
}

// GetOrCreate returns the room for id, creating it in the given mode if it
// does not exist yet.
func (reg *Registry) GetOrCreate(id string, mode Mode) *Room {
	if room, ok := reg.Get(id); ok {
		return room
	}
	return reg.Create(id, mode)
}

// Evict removes a room from the registry so it is no longer retrievable.
// Any outstanding timer is cancelled first.
func (reg *Registry) Evict(id string) {
	reg.mu.Lock()
	room, ok := reg.rooms[id]
	delete(reg.rooms, id)
	reg.mu.Unlock()

	if ok {
		room.mu.Lock()
		room.cancelTimerLocked()
		room.mu.Unlock()
		log.Printf("[REGISTRY] Evicted room %s", id)
	}
}

// Count returns the number of live rooms.
func (reg *Registry) Count() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.rooms)
}

func randomRoomID() string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idCharset[rand.Intn(len(idCharset))]
	}
	return string(b)
}
