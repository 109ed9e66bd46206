package game

import (
	game_constants "Drawr/constants/game"
	"log"
	"time"
)

// ---------------------------------------------------------------
// Round state machine
//
// lobby -> roundStart -> turnActive -> roundEnd -> (loop | gameOver)
//
// All transitions run under the room lock. Delayed transitions are
// goroutines that re-validate the round number and state before acting,
// so a stale timer can never advance a newer round.
// ---------------------------------------------------------------

// StartGame begins a game. Accepted only from the host while in lobby, with
// enough players for the mode and at most MaxPlayersPerRoom connected.
// Capacity failures are surfaced to the requester only; everything else is
// a silent no-op.
func (r *Room) StartGame(requesterID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateLobby || requesterID != r.hostID {
		return
	}

	active := r.activeRosterLocked()
	min := game_constants.MinPlayersDraw
	if r.Mode == ModeGolf {
		min = game_constants.MinPlayersGolf
	}
	if len(active) < min {
		r.emitter.ToPlayer(r.ID, requesterID, "notice", NoticePayload{
			Message: "Not enough players to start.",
		})
		return
	}
	if len(active) > game_constants.MaxPlayersPerRoom {
		r.emitter.ToPlayer(r.ID, requesterID, "notice", NoticePayload{
			Message: "Too many players in the room.",
		})
		return
	}

	log.Printf("[GAME-START] Room %s starting with %d players (mode: %s)", r.ID, len(active), r.Mode)

	// Fresh leaderboard with an entry for every then-active player
	r.scores = make(map[string]int)
	for _, p := range active {
		r.scores[p.ID] = 0
	}
	r.roundNum = 0
	r.buildQueueLocked()
	r.beginRoundLocked()
}

// beginRoundLocked pops the next actor and enters roundStart, or ends the
// game when the queue is exhausted.
func (r *Room) beginRoundLocked() {
	r.cancelTimerLocked()
	r.round = nil
	r.ball = nil

	actorID, ok := r.nextActorLocked()
	if !ok {
		r.gameOverLocked()
		return
	}

	r.roundNum++
	r.state = StateRoundStart
	log.Printf("[ROUND-START] Room %s round %d: actor %s", r.ID, r.roundNum, actorID)

	switch r.Mode {
	case ModeDraw:
		choices := pickWordChoices(r.rng)
		r.round = newRoundContext(actorID, choices)
		// Private prompt: only the actor sees the candidates
		r.emitter.ToPlayer(r.ID, actorID, "your_word_choices", WordChoicesPayload{
			Choices: choices,
			Timeout: int(game_constants.CHOOSE_TIMEOUT.Seconds()),
		})
		r.broadcastStateLocked()
		r.startChooseTimeoutLocked()
	case ModeGolf:
		course := courseForRound(r.roundNum)
		r.ball = newPhysicsContext(actorID, course)
		r.state = StateTurnActive
		r.emitter.ToPlayer(r.ID, actorID, "notice", NoticePayload{
			Message: "Your turn! Take your shot.",
		})
		r.broadcastStateLocked()
	}
}

// startChooseTimeoutLocked auto-commits the first candidate if the actor
// has not chosen in time. The round context pointer is captured so a stale
// timeout cannot touch a newer round, even one that reuses the same round
// number after a reset.
func (r *Room) startChooseTimeoutLocked() {
	ctx := r.round
	go func() {
		time.Sleep(game_constants.CHOOSE_TIMEOUT)

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.round != ctx || r.state != StateRoundStart {
			log.Printf("[CHOOSE-TIMEOUT] Room %s: stale timeout ignored", r.ID)
			return
		}
		log.Printf("[CHOOSE-TIMEOUT] Room %s: auto-selecting word for round %d", r.ID, r.roundNum)
		r.commitWordLocked(ctx.Choices[0])
	}()
}

// ChooseWord commits the actor's word choice. Accepted only from the actor,
// only in roundStart, and only for one of the offered candidates; any
// mismatch is a silent no-op to tolerate stale or duplicate client messages.
func (r *Room) ChooseWord(playerID, word string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateRoundStart || r.round == nil || playerID != r.round.ActorID {
		return
	}
	offered := false
	for _, c := range r.round.Choices {
		if c == word {
			offered = true
			break
		}
	}
	if !offered {
		return
	}
	r.commitWordLocked(word)
}

// commitWordLocked sets the secret word (immutable for the round from here
// on) and enters turnActive with the countdown running.
func (r *Room) commitWordLocked(word string) {
	ctx := r.round
	ctx.Word = word
	r.state = StateTurnActive
	log.Printf("[ROUND] Room %s round %d: word chosen (%d chars)", r.ID, r.roundNum, len(word))

	r.emitter.ToRoom(r.ID, "round_start", RoundStartPayload{
		Round:      r.roundNum,
		ActorID:    ctx.ActorID,
		MaskedWord: MaskWord(ctx.Word, ctx.Revealed),
		Seconds:    ctx.Remaining,
	})
	r.startCountdownLocked()
	r.broadcastStateLocked()
}

// scheduleResolveLocked resolves the current golf turn after a delay. The
// ball context pointer is captured so a delayed resolve from a torn-down
// turn can never touch a newer one.
func (r *Room) scheduleResolveLocked(delay time.Duration) {
	ball := r.ball
	go func() {
		time.Sleep(delay)

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.ball != ball || r.state != StateTurnActive {
			return
		}
		r.resolveRoundLocked()
	}()
}

// resolveRoundLocked ends the current round exactly once: cancels the
// timer, applies scoring, broadcasts the resolution and schedules the next
// round after a short grace delay. Safe to reach from the countdown, the
// early exit, the simulation and the actor-disconnect path; double
// invocation on an already-resolved context is a no-op.
func (r *Room) resolveRoundLocked() {
	if r.state != StateRoundStart && r.state != StateTurnActive {
		return
	}
	if r.round != nil && r.round.resolved {
		return
	}

	r.cancelTimerLocked()
	r.state = StateRoundEnd

	var awards map[string]int
	payload := RoundEndPayload{Round: r.roundNum}
	switch {
	case r.round != nil:
		r.round.resolved = true
		awards = r.applyDrawScoresLocked()
		payload.ActorID = r.round.ActorID
		payload.Word = r.round.Word
	case r.ball != nil:
		r.ball.Running = false
		awards = r.applyGolfScoresLocked()
		payload.ActorID = r.ball.ActorID
		payload.Strokes = r.ball.Strokes
		payload.Sunk = r.ball.Sunk
	default:
		return
	}
	payload.Awards = awards
	payload.Scores = r.scoresSnapshotLocked()

	log.Printf("[ROUND-END] Room %s round %d resolved", r.ID, r.roundNum)
	r.emitter.ToRoom(r.ID, "round_end", payload)
	r.broadcastStateLocked()

	// Next round after a short grace delay, guarded against staleness
	expectedRound := r.roundNum
	go func() {
		time.Sleep(game_constants.ROUND_END_GRACE)

		r.mu.Lock()
		defer r.mu.Unlock()
		if r.roundNum != expectedRound || r.state != StateRoundEnd {
			log.Printf("[ROUND-ADVANCE] Room %s: stale grace timer ignored (round %d)", r.ID, expectedRound)
			return
		}
		r.beginRoundLocked()
	}()
}

// gameOverLocked publishes the final leaderboard and waits for play_again.
func (r *Room) gameOverLocked() {
	r.cancelTimerLocked()
	r.state = StateGameOver
	r.round = nil
	r.ball = nil

	log.Printf("[GAME-OVER] Room %s after %d rounds", r.ID, r.roundNum)
	r.emitter.ToRoom(r.ID, "game_over", GameOverPayload{
		Rounds: r.roundNum,
		Scores: r.scoresSnapshotLocked(),
	})
	r.broadcastStateLocked()

	if r.onGameOver != nil {
		byUser := make(map[string]int, len(r.scores))
		for id, pts := range r.scores {
			if p := r.playerLocked(id); p != nil {
				byUser[p.Username] = pts
			}
		}
		go r.onGameOver(r.ID, r.Mode, byUser)
	}
}

// PlayAgain resets the room back to lobby. Accepted from any player, but
// only while in gameOver: leaderboard, queue, round counter and readiness
// flags are all cleared.
func (r *Room) PlayAgain(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != StateGameOver {
		return
	}
	if p := r.playerLocked(playerID); p == nil || !p.Connected {
		return
	}

	log.Printf("[PLAY-AGAIN] Room %s reset by %s", r.ID, playerID)
	r.scores = make(map[string]int)
	r.queue = nil
	r.roundNum = 0
	r.round = nil
	r.ball = nil
	for _, p := range r.players {
		p.Ready = false
	}
	r.state = StateLobby
	r.broadcastStateLocked()
}

// FinalScores returns a username-keyed copy of the leaderboard, for the
// stats sync at game over.
func (r *Room) FinalScores() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()

	byUser := make(map[string]int, len(r.scores))
	for id, pts := range r.scores {
		if p := r.playerLocked(id); p != nil {
			byUser[p.Username] = pts
		}
	}
	return byUser
}
