package game

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

var EnableDebug = false

// Debug logs a message to the browser console if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug && js.Global != nil {
		js.Global.Get("console").Call("log", args...)
	}
}

// DebugWarn logs a warning to the browser console if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug && js.Global != nil {
		js.Global.Get("console").Call("warn", args...)
	}
}

// StatsOverlay displays real-time game statistics, toggled with F10.
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	// Position and styling
	PanelX      float64
	PanelY      float64
	LineHeight  int
	PanelWidth  float64
	PanelHeight float64
}

// NewStatsOverlay creates a new stats overlay instance.
func NewStatsOverlay() *StatsOverlay {
	return &StatsOverlay{
		Visible:     false,
		PanelX:      16,
		PanelY:      16,
		LineHeight:  18,
		PanelWidth:  220,
		PanelHeight: 170,
	}
}

// Toggle toggles the stats overlay visibility.
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS updates the FPS counter over one-second windows.
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++

	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

// Render draws the stats overlay.
func (s *StatsOverlay) Render(ctx *js.Object, g *Game) {
	if !s.Visible || ctx == nil {
		return
	}

	ctx.Set("fillStyle", "rgba(0, 0, 0, 0.75)")
	ctx.Call("fillRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	ctx.Set("strokeStyle", "#00aaff")
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight)

	ctx.Set("fillStyle", "#00aaff")
	ctx.Set("font", "bold 14px monospace")
	ctx.Set("textAlign", "left")
	ctx.Call("fillText", "GAME STATS [F10]", s.PanelX+10, s.PanelY+20)

	ctx.Set("font", "12px monospace")
	y := s.PanelY + 44

	s.drawStatLine(ctx, "FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64), "#00ff00", y)
	y += float64(s.LineHeight)
	s.drawStatLine(ctx, "Status", StatusNames[g.Status], "#ffffff", y)
	y += float64(s.LineHeight)
	s.drawStatLine(ctx, "Level", strconv.Itoa(g.Level()), "#ffffff", y)
	y += float64(s.LineHeight)
	s.drawStatLine(ctx, "Time", strconv.Itoa(g.Session.CurrentSeconds)+"s", "#ffff00", y)
	y += float64(s.LineHeight)
	s.drawStatLine(ctx, "Best", strconv.Itoa(g.Session.HighScore)+"s", "#ffff00", y)
	y += float64(s.LineHeight)
	s.drawStatLine(ctx, "Enemies", strconv.Itoa(len(g.Enemies)), "#ff0066", y)
	y += float64(s.LineHeight)
	pos := strconv.FormatFloat(g.Player.X, 'f', 0, 64) + ", " + strconv.FormatFloat(g.Player.Y, 'f', 0, 64)
	s.drawStatLine(ctx, "Player", pos, "#aaaaaa", y)
}

// drawStatLine draws a single stat line with label and value.
func (s *StatsOverlay) drawStatLine(ctx *js.Object, label, value, valueColor string, y float64) {
	ctx.Set("fillStyle", "#cccccc")
	ctx.Call("fillText", label+":", s.PanelX+10, y)

	ctx.Set("fillStyle", valueColor)
	ctx.Set("textAlign", "right")
	ctx.Call("fillText", value, s.PanelX+s.PanelWidth-10, y)
	ctx.Set("textAlign", "left")
}
