package game_constants

import "time"

// Roster limits
const MaxPlayersPerRoom = 12
const MinPlayersDraw = 2
const MinPlayersGolf = 1
const MaxNameLength = 24

// Every active player gets this many turns as the actor before the game ends
const TURNS_PER_PLAYER = 3

// Draw mode round timing
const (
	ROUND_SECONDS   = 60
	CHOOSE_TIMEOUT  = 15 * time.Second
	TICK_INTERVAL   = 1 * time.Second
	ROUND_END_GRACE = 5 * time.Second
	MaxHints        = 3
)

// Remaining-seconds values at which one hint character is revealed
var HintCheckpoints = []int{30, 20, 10}

// Scoring
const (
	GuesserMaxScore = 250
	ActorMaxScore   = 500
)

// Golf mode physics
const (
	PHYSICS_TICK_RATE = 60 // simulation steps per second
	SETTLE_DELAY      = 2 * time.Second
	RESTITUTION       = 0.85
	FRICTION          = 0.985
	BallRadius        = 8.0
	StopSpeed         = 2.0 // units/s below which the ball counts as stopped
	MaxShotSpeed      = 900.0
	MaxStrokes        = 6
)
