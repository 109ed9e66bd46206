package game

import (
	game_constants "Drawr/constants/game"
	"log"
	"math"
)

// GuesserScore converts a correct guess into points: speed is worth up to
// 200 and each unused hint 30, clamped to [0, GuesserMaxScore].
func GuesserScore(timeLeft, hintsUsed int) int {
	score := math.Round(200*float64(timeLeft)/float64(game_constants.ROUND_SECONDS) +
		30*float64(game_constants.MaxHints-hintsUsed))
	return clampScore(int(score), game_constants.GuesserMaxScore)
}

// ActorScore rewards the actor for producing a signal the audience decoded
// quickly: up to 250 for the fraction of eligible guessers that got it plus
// up to 250 for their average remaining time. With no correct guessers the
// ratio term is 0 and avgTimeLeft is 0 by definition, so the score is 0.
func ActorScore(correct, eligible int, avgTimeLeft float64) int {
	if eligible < 1 {
		eligible = 1
	}
	score := math.Round(250*float64(correct)/float64(eligible) +
		250*avgTimeLeft/float64(game_constants.ROUND_SECONDS))
	return clampScore(int(score), game_constants.ActorMaxScore)
}

// GolfScore awards a sunk hole by stroke count, fewer strokes paying more.
// An unfinished hole (stroke cap reached without sinking) pays nothing.
func GolfScore(strokes int, sunk bool) int {
	if !sunk || strokes < 1 {
		return 0
	}
	score := math.Round(250 * float64(game_constants.MaxStrokes-strokes+1) /
		float64(game_constants.MaxStrokes))
	return clampScore(int(score), game_constants.GuesserMaxScore)
}

func clampScore(score, max int) int {
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}

// applyDrawScoresLocked converts the resolved round context into point
// awards and adds them into the leaderboard. Scores are additive only.
// Returns the per-player awards of this round.
func (r *Room) applyDrawScoresLocked() map[string]int {
	ctx := r.round
	awards := make(map[string]int)

	correct := 0
	eligible := 0
	totalTime := 0
	for _, p := range r.activeRosterLocked() {
		if p.ID == ctx.ActorID {
			continue
		}
		eligible++
		rec := ctx.Guesses[p.ID]
		if rec == nil || !rec.Correct {
			continue
		}
		correct++
		totalTime += rec.TimeLeft
		pts := GuesserScore(rec.TimeLeft, rec.HintsUsed)
		awards[p.ID] = pts
		r.scores[p.ID] += pts
	}

	// Explicit branch: with no correct guessers the average term is 0
	avgTime := 0.0
	if correct > 0 {
		avgTime = float64(totalTime) / float64(correct)
	}
	actorPts := ActorScore(correct, eligible, avgTime)
	awards[ctx.ActorID] = actorPts
	r.scores[ctx.ActorID] += actorPts

	log.Printf("[SCORE] Room %s round %d: actor earned %d, %d/%d guessers correct",
		r.ID, r.roundNum, actorPts, correct, eligible)
	return awards
}

// applyGolfScoresLocked scores the actor's finished hole attempt.
func (r *Room) applyGolfScoresLocked() map[string]int {
	ball := r.ball
	pts := GolfScore(ball.Strokes, ball.Sunk)
	r.scores[ball.ActorID] += pts
	log.Printf("[SCORE] Room %s round %d: golf actor earned %d (strokes=%d sunk=%v)",
		r.ID, r.roundNum, pts, ball.Strokes, ball.Sunk)
	return map[string]int{ball.ActorID: pts}
}
