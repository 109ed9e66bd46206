package game

import (
	game_constants "Drawr/constants/game"
	"log"
)

// buildQueueLocked constructs the turn queue for a new game: TURNS_PER_PLAYER
// copies of the active roster, then a uniform Fisher-Yates shuffle over the
// concatenated sequence. Every active player ends up as the actor exactly
// TURNS_PER_PLAYER times; the order is randomized rather than a fixed
// rotation so it stays unpredictable.
func (r *Room) buildQueueLocked() {
	active := r.activeRosterLocked()
	queue := make([]string, 0, len(active)*game_constants.TURNS_PER_PLAYER)
	for i := 0; i < game_constants.TURNS_PER_PLAYER; i++ {
		for _, p := range active {
			queue = append(queue, p.ID)
		}
	}
	for i := len(queue) - 1; i > 0; i-- {
		j := r.rng.Intn(i + 1)
		queue[i], queue[j] = queue[j], queue[i]
	}
	r.queue = queue
	log.Printf("[QUEUE] Built turn queue for room %s: %d entries over %d players",
		r.ID, len(queue), len(active))
}

// nextActorLocked pops the next actor id from the front of the queue.
// Entries naming players that are no longer connected are discarded (lazy
// pruning). Returns false when the queue is exhausted, which is the terminal
// trigger for ending the game.
func (r *Room) nextActorLocked() (string, bool) {
	for len(r.queue) > 0 {
		id := r.queue[0]
		r.queue = r.queue[1:]
		if p := r.playerLocked(id); p != nil && p.Connected {
			return id, true
		}
	}
	return "", false
}

// pruneQueueLocked proactively removes queue entries that no longer name a
// connected player, preserving the order of the rest. Called on every roster
// change so a disconnected player cannot linger in the queue.
func (r *Room) pruneQueueLocked() {
	if len(r.queue) == 0 {
		return
	}
	kept := r.queue[:0]
	for _, id := range r.queue {
		if p := r.playerLocked(id); p != nil && p.Connected {
			kept = append(kept, id)
		}
	}
	r.queue = kept
}
