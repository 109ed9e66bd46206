package game

import (
	game_constants "Drawr/constants/game"
	"log"
	"strings"
	"unicode"
)

// GuessRecord captures a guesser's result for the round. Once Correct is
// set it is never cleared or overwritten within the round.
type GuessRecord struct {
	Correct   bool `json:"correct"`
	TimeLeft  int  `json:"time_left"`  // remaining seconds at success
	HintsUsed int  `json:"hints_used"` // hints already revealed at success
}

// RoundContext is the round-scoped state for draw mode, discarded at round
// end. The secret word is set once per round and never mutated afterwards.
type RoundContext struct {
	ActorID   string
	Choices   []string // the 3 candidates offered to the actor
	Word      string   // lowercase, immutable once chosen
	Revealed  map[int]bool
	Remaining int
	HintsUsed int
	Guesses   map[string]*GuessRecord // guesser id -> record
	resolved  bool
}

func newRoundContext(actorID string, choices []string) *RoundContext {
	return &RoundContext{
		ActorID:   actorID,
		Choices:   choices,
		Revealed:  make(map[int]bool),
		Remaining: game_constants.ROUND_SECONDS,
		Guesses:   make(map[string]*GuessRecord),
	}
}

// MaskWord renders the word for guessers: revealed positions uppercase,
// spaces always spaces, everything else a filler underscore.
func MaskWord(word string, revealed map[int]bool) string {
	var b strings.Builder
	for i, c := range word {
		switch {
		case c == ' ':
			b.WriteRune(' ')
		case revealed[i]:
			b.WriteRune(unicode.ToUpper(c))
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// revealHintLocked discloses one previously-unrevealed non-space character
// at a uniformly random position and bumps the hint counter. No-op when
// nothing is left to reveal.
func (r *Room) revealHintLocked() {
	ctx := r.round
	candidates := make([]int, 0, len(ctx.Word))
	for i, c := range ctx.Word {
		if c != ' ' && !ctx.Revealed[i] {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return
	}
	pos := candidates[r.rng.Intn(len(candidates))]
	ctx.Revealed[pos] = true
	ctx.HintsUsed++
	log.Printf("[REVEAL] Room %s: hint %d revealed position %d", r.ID, ctx.HintsUsed, pos)
}

// startCountdownLocked runs the 1-second tick loop for the active round.
// Each tick decrements remaining seconds (floor 0), reveals a hint at the
// fixed checkpoints, broadcasts the masked state, and resolves the round at
// zero or when every connected non-actor player has guessed. The generation
// check in startTickerLocked guarantees a tick never fires against a torn
// down context.
func (r *Room) startCountdownLocked() {
	ctx := r.round
	r.startTickerLocked(game_constants.TICK_INTERVAL, func() bool {
		// Liveness: the referenced context must still be the live one
		if r.round != ctx || ctx.resolved {
			return true
		}
		if ctx.Remaining > 0 {
			ctx.Remaining--
		}
		for _, checkpoint := range game_constants.HintCheckpoints {
			if ctx.Remaining == checkpoint {
				r.revealHintLocked()
			}
		}
		r.emitter.ToRoom(r.ID, "countdown_tick", TickPayload{
			Remaining:  ctx.Remaining,
			MaskedWord: MaskWord(ctx.Word, ctx.Revealed),
			HintsUsed:  ctx.HintsUsed,
		})
		if ctx.Remaining <= 0 || r.allGuessedLocked() {
			r.resolveRoundLocked()
			return true
		}
		return false
	})
}

// allGuessedLocked reports the "everyone got it" early exit: every connected
// non-actor player has a correct guess recorded.
func (r *Room) allGuessedLocked() bool {
	if r.round == nil {
		return false
	}
	eligible := 0
	for _, p := range r.activeRosterLocked() {
		if p.ID == r.round.ActorID {
			continue
		}
		eligible++
		rec := r.round.Guesses[p.ID]
		if rec == nil || !rec.Correct {
			return false
		}
	}
	return eligible > 0
}

// Guess evaluates a chat line as a guess. Returns true when it matched the
// secret word, in which case the caller must suppress relaying the text.
// Out-of-turn or repeated guesses are silent no-ops. A correct guess at a
// hint-reveal tick boundary uses the hints-used count after that tick's
// increment (ticks run under the room lock before any later guess).
func (r *Room) Guess(playerID, text string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Mode != ModeDraw || r.state != StateTurnActive || r.round == nil || r.round.resolved {
		return false
	}
	ctx := r.round
	if playerID == ctx.ActorID {
		return false
	}
	p := r.playerLocked(playerID)
	if p == nil || !p.Connected {
		return false
	}
	if rec := ctx.Guesses[playerID]; rec != nil && rec.Correct {
		// Correctness, once set, is immutable for the round
		return false
	}
	if strings.ToLower(strings.TrimSpace(text)) != ctx.Word {
		return false
	}

	ctx.Guesses[playerID] = &GuessRecord{
		Correct:   true,
		TimeLeft:  ctx.Remaining,
		HintsUsed: ctx.HintsUsed,
	}
	log.Printf("[GUESS] Room %s: %s guessed the word with %ds left (%d hints)",
		r.ID, p.Name, ctx.Remaining, ctx.HintsUsed)
	r.emitter.ToRoom(r.ID, "player_guessed", PlayerGuessedPayload{
		PlayerID: playerID,
		Name:     p.Name,
		TimeLeft: ctx.Remaining,
	})

	if r.allGuessedLocked() {
		r.resolveRoundLocked()
	}
	return true
}
