package game

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// HighScoreKey is the localStorage key holding the best survival time as a
// decimal integer string.
const HighScoreKey = "boxdodge.highscore"

// Session tracks scores across rounds. It observes the engine and never
// drives transitions.
type Session struct {
	// CurrentSeconds is the displayed survival time of the live round,
	// floored to whole seconds.
	CurrentSeconds int

	// HighScore is the all-time best. Monotonically non-decreasing,
	// persisted whenever it increases.
	HighScore int

	// Last completed run, for the post-loss summary.
	LastRunSeconds int
	LastRunEnemies int
	HasLastRun     bool
}

// NewSession creates a session with the persisted high score, if any.
func NewSession() *Session {
	return &Session{HighScore: loadHighScore()}
}

// Observe updates the live counter and pushes the high score when exceeded.
func (s *Session) Observe(seconds int) {
	s.CurrentSeconds = seconds
	if seconds > s.HighScore {
		s.HighScore = seconds
		saveHighScore(seconds)
	}
}

// EndRun commits the live round as the last completed run and zeroes the
// counter.
func (s *Session) EndRun(enemyCount int) {
	s.LastRunSeconds = s.CurrentSeconds
	s.LastRunEnemies = enemyCount
	s.HasLastRun = true
	s.CurrentSeconds = 0
}

// ParseHighScore parses a persisted value defensively: anything other than a
// non-negative decimal integer counts as no score.
func ParseHighScore(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func loadHighScore() int {
	storage := localStorage()
	if storage == nil {
		return 0
	}
	raw := storage.Call("getItem", HighScoreKey)
	if raw == nil || raw == js.Undefined {
		return 0
	}
	return ParseHighScore(raw.String())
}

func saveHighScore(score int) {
	storage := localStorage()
	if storage == nil {
		return
	}
	storage.Call("setItem", HighScoreKey, strconv.Itoa(score))
}

func localStorage() *js.Object {
	if js.Global == nil {
		return nil
	}
	storage := js.Global.Get("localStorage")
	if storage == nil || storage == js.Undefined {
		return nil
	}
	return storage
}
