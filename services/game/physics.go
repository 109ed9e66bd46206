package game

import (
	game_constants "Drawr/constants/game"
	"log"
	"math"
	"time"
)

// PhysicsContext is the round-scoped state for golf mode: the single shared
// dynamic object plus the active player's attempt. Position and velocity
// mutate only inside stepLocked while Running is true.
type PhysicsContext struct {
	ActorID string
	Course  *Course
	Pos     Vec2
	Vel     Vec2
	Running bool
	Strokes int
	Sunk    bool
}

func newPhysicsContext(actorID string, course *Course) *PhysicsContext {
	return &PhysicsContext{
		ActorID: actorID,
		Course:  course,
		Pos:     course.Tee,
	}
}

// Shot applies a player's impulse to the ball and starts the fixed-timestep
// simulation. Only the current actor may shoot, only while the turn is
// active and the ball is at rest; anything else is a silent no-op. The
// impulse magnitude is clamped to MaxShotSpeed. The stroke counter
// increments exactly once per accepted shot.
func (r *Room) Shot(playerID string, vx, vy float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Mode != ModeGolf || r.state != StateTurnActive || r.ball == nil {
		return
	}
	ball := r.ball
	if playerID != ball.ActorID || ball.Running || ball.Sunk {
		return
	}
	if ball.Strokes >= game_constants.MaxStrokes {
		return
	}

	vx, vy, ok := clampedImpulse(vx, vy)
	if !ok {
		return
	}

	ball.Strokes++
	ball.Vel = Vec2{X: vx, Y: vy}
	ball.Running = true
	log.Printf("[GOLF] Room %s: %s stroke %d/%d", r.ID, playerID, ball.Strokes, game_constants.MaxStrokes)

	r.startSimulationLocked()
}

// clampedImpulse caps the shot power at MaxShotSpeed and rejects non-finite
// components.
func clampedImpulse(vx, vy float64) (float64, float64, bool) {
	if math.IsNaN(vx) || math.IsInf(vx, 0) || math.IsNaN(vy) || math.IsInf(vy, 0) {
		return 0, 0, false
	}
	speed := math.Hypot(vx, vy)
	if speed > game_constants.MaxShotSpeed {
		scale := game_constants.MaxShotSpeed / speed
		vx *= scale
		vy *= scale
	}
	return vx, vy, true
}

// startSimulationLocked runs the 60 Hz step loop until a terminal condition.
func (r *Room) startSimulationLocked() {
	ball := r.ball
	interval := time.Second / game_constants.PHYSICS_TICK_RATE
	r.startTickerLocked(interval, func() bool {
		// Liveness: the referenced context must still be the live one
		if r.ball != ball || !ball.Running {
			return true
		}
		if done := r.stepLocked(); done {
			r.finishSimulationLocked()
			return true
		}
		return false
	})
}

// stepLocked advances the ball by one fixed timestep and reports whether a
// terminal condition (sunk or stopped) was reached.
func (r *Room) stepLocked() bool {
	ball := r.ball
	dt := 1.0 / float64(game_constants.PHYSICS_TICK_RATE)

	ball.Pos.X += ball.Vel.X * dt
	ball.Pos.Y += ball.Vel.Y * dt

	for i := range ball.Course.Walls {
		collideCircleRect(ball, &ball.Course.Walls[i])
	}

	ball.Vel.X *= game_constants.FRICTION
	ball.Vel.Y *= game_constants.FRICTION

	// Sunk: squared distance to the hole below its radius
	dx := ball.Pos.X - ball.Course.Hole.X
	dy := ball.Pos.Y - ball.Course.Hole.Y
	hr := ball.Course.HoleRadius
	if dx*dx+dy*dy < hr*hr {
		ball.Sunk = true
		ball.Running = false
		ball.Vel = Vec2{}
		ball.Pos = ball.Course.Hole
		log.Printf("[GOLF] Room %s: ball sunk after %d strokes", r.ID, ball.Strokes)
		return true
	}

	// Stopped: speed below the fixed threshold
	if math.Hypot(ball.Vel.X, ball.Vel.Y) < game_constants.StopSpeed {
		ball.Running = false
		ball.Vel = Vec2{}
		return true
	}
	return false
}

// collideCircleRect resolves the ball against one axis-aligned rectangle:
// clamp the center into the rectangle, compare squared distance to the ball
// radius, then reflect the velocity component perpendicular to the crossed
// edge with restitution and nudge the ball just outside the obstacle so it
// cannot tunnel or stick.
func collideCircleRect(ball *PhysicsContext, rect *Rect) {
	radius := game_constants.BallRadius

	cx := clamp(ball.Pos.X, rect.X, rect.X+rect.W)
	cy := clamp(ball.Pos.Y, rect.Y, rect.Y+rect.H)
	dx := ball.Pos.X - cx
	dy := ball.Pos.Y - cy
	distSq := dx*dx + dy*dy
	if distSq >= radius*radius {
		return
	}

	if dx == 0 && dy == 0 {
		// Center inside the rectangle: push out along the axis of least
		// penetration
		left := ball.Pos.X - rect.X
		right := rect.X + rect.W - ball.Pos.X
		top := ball.Pos.Y - rect.Y
		bottom := rect.Y + rect.H - ball.Pos.Y
		min := math.Min(math.Min(left, right), math.Min(top, bottom))
		switch min {
		case left:
			ball.Pos.X = rect.X - radius
			ball.Vel.X = -math.Abs(ball.Vel.X) * game_constants.RESTITUTION
		case right:
			ball.Pos.X = rect.X + rect.W + radius
			ball.Vel.X = math.Abs(ball.Vel.X) * game_constants.RESTITUTION
		case top:
			ball.Pos.Y = rect.Y - radius
			ball.Vel.Y = -math.Abs(ball.Vel.Y) * game_constants.RESTITUTION
		default:
			ball.Pos.Y = rect.Y + rect.H + radius
			ball.Vel.Y = math.Abs(ball.Vel.Y) * game_constants.RESTITUTION
		}
		return
	}

	// Reflect on the axis the ball crossed to reach the closest point
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			ball.Pos.X = cx + radius
			ball.Vel.X = math.Abs(ball.Vel.X) * game_constants.RESTITUTION
		} else {
			ball.Pos.X = cx - radius
			ball.Vel.X = -math.Abs(ball.Vel.X) * game_constants.RESTITUTION
		}
	} else {
		if dy > 0 {
			ball.Pos.Y = cy + radius
			ball.Vel.Y = math.Abs(ball.Vel.Y) * game_constants.RESTITUTION
		} else {
			ball.Pos.Y = cy - radius
			ball.Vel.Y = -math.Abs(ball.Vel.Y) * game_constants.RESTITUTION
		}
	}
}

// finishSimulationLocked broadcasts the final ball state and either resolves
// the turn (sunk or stroke cap reached) or waits for the next shot.
func (r *Room) finishSimulationLocked() {
	ball := r.ball
	r.emitter.ToRoom(r.ID, "ball_sync", BallPayload{
		Pos:     ball.Pos,
		Strokes: ball.Strokes,
		Sunk:    ball.Sunk,
	})

	if ball.Sunk {
		r.scheduleResolveLocked(game_constants.SETTLE_DELAY)
		return
	}
	if ball.Strokes >= game_constants.MaxStrokes {
		// Distinct notification: the attempt still counts as hole completion
		r.emitter.ToPlayer(r.ID, ball.ActorID, "notice", NoticePayload{
			Message: "Out of strokes! Moving on.",
		})
		r.scheduleResolveLocked(game_constants.SETTLE_DELAY)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
