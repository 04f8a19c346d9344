package game

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/hvirtanen/boxdodge/common"
)

// Game holds the complete game state. It is the single owned state record:
// the input handlers, the tick, and the renderer all receive it explicitly,
// and all mutation happens on the browser's event loop.
type Game struct {
	// Core state
	Status  Status
	Arena   Arena
	Player  *Player
	Enemies []*Enemy
	Session *Session
	RNG     *common.SeededRNG

	// Timing, in ms on the animation-frame clock
	Now           float64
	RoundStart    float64
	AccumulatedMS float64
	LastSpeedUp   float64
	LastFrameTime float64

	// Input
	PointerActive bool
	PointerPos    Vec2

	// Generation guards the deferred level-up continuation: any reset bumps
	// it, voiding continuations scheduled before the reset.
	Generation int
	pendingWin *winContinuation
	winTimerID int

	// Viewport, injectable under test
	ViewportW float64
	ViewportH float64

	// Rendering
	Canvas *js.Object
	Ctx    *js.Object

	AnimationFrameID int

	Stats *StatsOverlay
	Audio *CuePlayer
	Icon  *IconLoader

	listeners []domListener
}

// winContinuation is the deferred transition out of the level-cleared pause.
type winContinuation struct {
	EnemyCount int
	Generation int
}

// NewGame creates a game instance sized to the current viewport. Canvas and
// context may be nil outside the browser; rendering is skipped then.
func NewGame(canvas, ctx *js.Object, rng *common.SeededRNG) *Game {
	g := &Game{
		Enemies:   make([]*Enemy, 0, 8),
		Session:   NewSession(),
		RNG:       rng,
		Canvas:    canvas,
		Ctx:       ctx,
		Stats:     NewStatsOverlay(),
		Audio:     NewCuePlayer(),
		Icon:      &IconLoader{},
		ViewportW: 800,
		ViewportH: 800,
	}
	if js.Global != nil {
		g.ViewportW = js.Global.Get("innerWidth").Float()
		g.ViewportH = js.Global.Get("innerHeight").Float()
	}
	g.resizeCanvas()
	g.Reset(1, false)
	return g
}

// SetViewport updates the viewport dimensions and performs a full
// non-level-up reset, as a window resize does.
func (g *Game) SetViewport(w, h float64) {
	g.ViewportW = w
	g.ViewportH = h
	g.resizeCanvas()
	g.Reset(maxInt(1, len(g.Enemies)), false)
}

func (g *Game) resizeCanvas() {
	if g.Canvas == nil {
		return
	}
	g.Canvas.Set("width", int(g.ViewportW))
	g.Canvas.Set("height", int(g.ViewportH))
}

// Reset rebuilds the round: recomputes arena geometry, re-seeds the player
// position, respawns enemyCount enemies on the arena edges, and commits the
// finished run's stats unless this is a level-up continuation. Continuations
// resume Playing immediately; everything else returns to Idle.
func (g *Game) Reset(enemyCount int, continuation bool) {
	g.Generation++
	g.cancelWinTimer()

	g.Arena = LayoutArena(g.ViewportW, g.ViewportH)

	if !continuation {
		if g.Status == StatusPlaying || g.Status == StatusWin {
			g.Session.EndRun(len(g.Enemies))
		}
		g.AccumulatedMS = 0
	}

	g.Player = NewPlayer(g.Arena)
	if g.PointerActive {
		g.Player.MoveTo(g.Arena, g.PointerPos)
	}

	g.Enemies = g.Enemies[:0]
	for i := 0; i < enemyCount; i++ {
		g.Enemies = append(g.Enemies, SpawnEnemy(g.Arena, g.RNG))
	}

	g.LastSpeedUp = g.Now
	if continuation {
		g.Status = StatusPlaying
		g.RoundStart = g.Now
	} else {
		g.Status = StatusIdle
	}
}

// Level is the current difficulty: always the enemy count in play.
func (g *Game) Level() int {
	return len(g.Enemies)
}

// win pauses the simulation for the level-cleared banner and schedules the
// continuation into the next level. The pointer flag is forced on so
// movement resumes the instant the next level starts.
func (g *Game) win() {
	g.AccumulatedMS += WinThresholdMS
	g.Status = StatusWin
	g.PointerActive = true
	g.pendingWin = &winContinuation{
		EnemyCount: len(g.Enemies) + 1,
		Generation: g.Generation,
	}
	g.Audio.PlayWin()

	if js.Global != nil {
		g.winTimerID = js.Global.Call("setTimeout", func() {
			g.winTimerID = 0
			g.ResumeFromWin()
		}, int(WinDisplayMS)).Int()
	}
}

// ResumeFromWin fires the pending level-up continuation. It is a no-op if a
// reset intervened since the win was scheduled.
func (g *Game) ResumeFromWin() {
	p := g.pendingWin
	if p == nil || p.Generation != g.Generation {
		return
	}
	g.pendingWin = nil
	g.Reset(p.EnemyCount, true)
}

// lose ends the round: last-run stats are committed and the game returns to
// Idle at the base difficulty.
func (g *Game) lose() {
	g.Audio.PlayLoss()
	g.Reset(1, false)
}

func (g *Game) cancelWinTimer() {
	g.pendingWin = nil
	if g.winTimerID != 0 && js.Global != nil {
		js.Global.Call("clearTimeout", g.winTimerID)
		g.winTimerID = 0
	}
}
