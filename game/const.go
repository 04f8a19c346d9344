package game

// Gameplay tuning constants
const (
	// ArenaScale is the fraction of the shorter viewport side used for the arena.
	ArenaScale = 0.85

	PlayerSize = 30.0
	EnemySize  = 24.0

	// InitialSpeed is the velocity magnitude enemies spawn with, in px per frame.
	InitialSpeed = 2.5

	// SpeedUpEvery is the wall-clock interval (ms) between enemy speed escalations.
	SpeedUpEvery = 2000.0
	// SpeedMultiplier is applied to every enemy velocity at each escalation.
	SpeedMultiplier = 1.08

	// WinThresholdMS is the in-round survival time that clears a level.
	WinThresholdMS = 19000.0
	// WinDisplayMS is how long the level-cleared banner stays up before the
	// next level starts.
	WinDisplayMS = 1500.0

	// WarnMargin is the distance from an arena edge at which the border turns
	// into a warning color. Cosmetic only.
	WarnMargin = 24.0

	FrameDuration = 16.66 // ~60 FPS
)

// Status is the round state machine.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusWin
	StatusCrashed // reserved, never entered
)

// StatusNames maps Status to display names for the stats overlay.
var StatusNames = map[Status]string{
	StatusIdle:    "Idle",
	StatusPlaying: "Playing",
	StatusWin:     "Win",
	StatusCrashed: "Crashed",
}

// Vec2 is a point in arena-local coordinates (origin at the arena's top-left).
type Vec2 struct {
	X, Y float64
}

// Box is an axis-aligned rectangle in arena-local coordinates.
type Box struct {
	X, Y float64
	W, H float64
}

// Intersects reports whether two boxes overlap. All four comparisons are
// strict, so boxes that merely share an edge do not intersect.
func (b Box) Intersects(o Box) bool {
	return b.X < o.X+o.W && o.X < b.X+b.W &&
		b.Y < o.Y+o.H && o.Y < b.Y+b.H
}

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
