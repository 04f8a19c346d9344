package game

import "testing"

func TestPointerStart_InsideArenaStartsRound(t *testing.T) {
	g := newTestGame()
	g.Advance(1000)

	startRound(g, 100, 100)

	if g.Status != StatusPlaying {
		t.Fatalf("Expected Playing, got %s", StatusNames[g.Status])
	}
	if !g.PointerActive {
		t.Error("Expected the pointer flag set on start")
	}
	if g.RoundStart != 1000 {
		t.Errorf("Expected round start at the current clock 1000, got %f", g.RoundStart)
	}
}

func TestPointerStart_OutsideArenaIgnored(t *testing.T) {
	g := newTestGame()

	tests := []struct {
		name   string
		lx, ly float64
	}{
		{"left of arena", -5, 100},
		{"above arena", 100, -5},
		{"past right edge", g.Arena.Size + 1, 100},
		{"past bottom edge", 100, g.Arena.Size + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			startRound(g, tt.lx, tt.ly)
			if g.Status != StatusIdle {
				t.Errorf("Expected press at (%f,%f) ignored, got %s", tt.lx, tt.ly, StatusNames[g.Status])
			}
		})
	}
}

func TestPointerStart_IgnoredWhilePlaying(t *testing.T) {
	g := newTestGame()
	startRound(g, 340, 340)
	x := g.Player.X

	startRound(g, 100, 100)

	if g.Status != StatusPlaying {
		t.Errorf("Expected still Playing, got %s", StatusNames[g.Status])
	}
	if g.Player.X != x {
		t.Errorf("Expected a second press not to move the player, got %f from %f", g.Player.X, x)
	}
}

func TestPointerMove_IgnoredWhileIdle(t *testing.T) {
	g := newTestGame()
	x := g.Player.X

	g.PointerMove(g.Arena.OffsetX+100, g.Arena.OffsetY+100)

	if g.Player.X != x {
		t.Errorf("Expected the player frozen while idle, got %f from %f", g.Player.X, x)
	}
}

func TestPointerMove_FollowsAndClamps(t *testing.T) {
	g := newTestGame()
	startRound(g, 340, 340)

	g.PointerMove(g.Arena.OffsetX+200, g.Arena.OffsetY+120)
	if g.Player.X != 200-PlayerSize/2 || g.Player.Y != 120-PlayerSize/2 {
		t.Errorf("Expected player centered on the pointer, got (%f,%f)", g.Player.X, g.Player.Y)
	}

	g.PointerMove(g.Arena.OffsetX+g.Arena.Size+500, g.Arena.OffsetY-500)
	if g.Player.X != g.Arena.Size-PlayerSize || g.Player.Y != 0 {
		t.Errorf("Expected clamp to the corner, got (%f,%f)", g.Player.X, g.Player.Y)
	}
}

func TestPointerEnd_KeepsRoundRunning(t *testing.T) {
	g := newTestGame()
	startRound(g, 340, 340)

	g.PointerEnd()

	if g.PointerActive {
		t.Error("Expected the pointer flag cleared")
	}
	if g.Status != StatusPlaying {
		t.Errorf("Expected the round to keep running, got %s", StatusNames[g.Status])
	}

	// With the pointer released, moves no longer drive the player
	x := g.Player.X
	g.PointerMove(g.Arena.OffsetX+100, g.Arena.OffsetY+100)
	if g.Player.X != x {
		t.Errorf("Expected the player frozen after release, got %f from %f", g.Player.X, x)
	}
}
