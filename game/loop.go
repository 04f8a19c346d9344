package game

import (
	"github.com/gopherjs/gopherjs/js"
)

// GameLoopRAF is the per-frame driver using requestAnimationFrame.
func (g *Game) GameLoopRAF(currentTime float64) {
	// Schedule next frame
	g.AnimationFrameID = js.Global.Call("requestAnimationFrame", g.GameLoopRAF).Int()

	g.Stats.UpdateFPS(currentTime)

	// Fixed timestep
	if currentTime-g.LastFrameTime < FrameDuration {
		return
	}
	g.LastFrameTime = currentTime

	g.Advance(currentTime)
	g.Render()
}

// Advance runs one simulation tick at the given timestamp (ms). It touches
// no browser APIs, so the whole state machine is testable natively. Outside
// Playing it only tracks the clock; Idle and Win freeze the simulation.
func (g *Game) Advance(now float64) {
	g.Now = now
	if g.Status != StatusPlaying {
		return
	}

	liveMS := now - g.RoundStart
	g.Session.Observe(int((g.AccumulatedMS + liveMS) / 1000))

	// Escalation is wall-clock based and permanent
	if now-g.LastSpeedUp >= SpeedUpEvery {
		for _, e := range g.Enemies {
			e.SpeedUp(SpeedMultiplier)
		}
		g.LastSpeedUp = now
	}

	// Win check uses the in-round time only; accumulated time from earlier
	// levels never shortens a round.
	if liveMS >= WinThresholdMS {
		g.win()
		return
	}

	if g.Player.OnBoundary(g.Arena) {
		g.lose()
		return
	}

	for _, e := range g.Enemies {
		e.Step(g.Arena)
		if e.Hits(g.Player) {
			g.lose()
			return
		}
	}
}

// Start kicks off the animation-frame loop.
func (g *Game) Start() {
	Debug("Start!")

	if g.AnimationFrameID > 0 {
		js.Global.Call("cancelAnimationFrame", g.AnimationFrameID)
	}
	g.AnimationFrameID = js.Global.Call("requestAnimationFrame", g.GameLoopRAF).Int()
}

// Teardown stops the loop, clears the pending level-up timer, and removes
// all DOM listeners.
func (g *Game) Teardown() {
	g.cancelWinTimer()

	if g.AnimationFrameID > 0 && js.Global != nil {
		js.Global.Call("cancelAnimationFrame", g.AnimationFrameID)
		g.AnimationFrameID = 0
	}

	for _, l := range g.listeners {
		l.target.Call("removeEventListener", l.event, l.fn)
	}
	g.listeners = nil
}
