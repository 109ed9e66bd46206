package game

// Vec2 is a 2-D vector in course units.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangular obstacle.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Course is a static golf hole layout: boundary walls plus obstacles, a tee
// position and a hole. Courses are immutable; rounds share them read-only.
type Course struct {
	Name       string  `json:"name"`
	Walls      []Rect  `json:"walls"`
	Tee        Vec2    `json:"tee"`
	Hole       Vec2    `json:"hole"`
	HoleRadius float64 `json:"hole_radius"`
}

// borderWalls builds the four boundary walls of a w x h playfield with the
// given thickness.
func borderWalls(w, h, t float64) []Rect {
	return []Rect{
		{X: 0, Y: 0, W: w, H: t},         // top
		{X: 0, Y: h - t, W: w, H: t},     // bottom
		{X: 0, Y: 0, W: t, H: h},         // left
		{X: w - t, Y: 0, W: t, H: h},     // right
	}
}

// Built-in hole layouts, cycled per round. The playfield is 800x500.
var builtinCourses = []Course{
	{
		Name:       "open green",
		Walls:      borderWalls(800, 500, 20),
		Tee:        Vec2{X: 100, Y: 250},
		Hole:       Vec2{X: 700, Y: 250},
		HoleRadius: 14,
	},
	{
		Name: "the wall",
		Walls: append(borderWalls(800, 500, 20),
			Rect{X: 380, Y: 120, W: 40, H: 380}),
		Tee:        Vec2{X: 100, Y: 400},
		Hole:       Vec2{X: 700, Y: 400},
		HoleRadius: 14,
	},
	{
		Name: "corridor",
		Walls: append(borderWalls(800, 500, 20),
			Rect{X: 200, Y: 0, W: 40, H: 350},
			Rect{X: 480, Y: 150, W: 40, H: 350}),
		Tee:        Vec2{X: 100, Y: 100},
		Hole:       Vec2{X: 700, Y: 100},
		HoleRadius: 14,
	},
	{
		Name: "pinball",
		Walls: append(borderWalls(800, 500, 20),
			Rect{X: 250, Y: 100, W: 60, H: 60},
			Rect{X: 450, Y: 300, W: 60, H: 60},
			Rect{X: 350, Y: 200, W: 60, H: 60}),
		Tee:        Vec2{X: 80, Y: 250},
		Hole:       Vec2{X: 720, Y: 250},
		HoleRadius: 14,
	},
}

// courseForRound deterministically cycles the built-in layouts.
func courseForRound(roundNum int) *Course {
	if roundNum < 1 {
		roundNum = 1
	}
	return &builtinCourses[(roundNum-1)%len(builtinCourses)]
}
