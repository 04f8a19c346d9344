package game

import (
	"math"
	"testing"

	"github.com/hvirtanen/boxdodge/common"
)

func onEdge(e *Enemy, a Arena) bool {
	span := a.Size - EnemySize
	return e.X == 0 || e.Y == 0 || e.X == span || e.Y == span
}

func TestSpawnEnemy_OnArenaEdge(t *testing.T) {
	a := Arena{Size: 850}
	rng := common.NewSeededRNG(42)

	for i := 0; i < 200; i++ {
		e := SpawnEnemy(a, rng)
		if !onEdge(e, a) {
			t.Errorf("Expected spawn %d on an arena edge, got (%f,%f)", i, e.X, e.Y)
		}
		if e.X < 0 || e.X > a.Size-EnemySize || e.Y < 0 || e.Y > a.Size-EnemySize {
			t.Errorf("Expected spawn %d fully inside the arena, got (%f,%f)", i, e.X, e.Y)
		}
	}
}

func TestSpawnEnemy_InitialSpeed(t *testing.T) {
	a := Arena{Size: 850}
	rng := common.NewSeededRNG(42)

	for i := 0; i < 50; i++ {
		e := SpawnEnemy(a, rng)
		if math.Abs(e.Speed()-InitialSpeed) > 1e-9 {
			t.Errorf("Expected spawn speed %f, got %f", InitialSpeed, e.Speed())
		}
	}
}

func TestSpawnEnemy_Deterministic(t *testing.T) {
	a := Arena{Size: 850}
	e1 := SpawnEnemy(a, common.NewSeededRNG(7))
	e2 := SpawnEnemy(a, common.NewSeededRNG(7))

	if e1.X != e2.X || e1.Y != e2.Y || e1.VX != e2.VX || e1.VY != e2.VY {
		t.Errorf("Expected identical spawns for identical seeds, got %+v and %+v", e1, e2)
	}
}

func TestSpawnEnemy_AllEdgesUsed(t *testing.T) {
	a := Arena{Size: 850}
	rng := common.NewSeededRNG(1)
	span := a.Size - EnemySize

	edges := make(map[string]int)
	for i := 0; i < 400; i++ {
		e := SpawnEnemy(a, rng)
		switch {
		case e.Y == 0:
			edges["top"]++
		case e.X == span:
			edges["right"]++
		case e.Y == span:
			edges["bottom"]++
		case e.X == 0:
			edges["left"]++
		}
	}

	for _, edge := range []string{"top", "right", "bottom", "left"} {
		if edges[edge] == 0 {
			t.Errorf("Expected %s edge to be used over 400 spawns", edge)
		}
	}
}

func TestEnemyStep_StaysInsideArena(t *testing.T) {
	a := Arena{Size: 500}
	e := &Enemy{
		Box: Box{X: 240, Y: 240, W: EnemySize, H: EnemySize},
		VX:  3.7,
		VY:  -2.3,
	}

	for i := 0; i < 10000; i++ {
		e.Step(a)
		if e.X < 0 || e.X > a.Size-EnemySize {
			t.Fatalf("Expected X in [0,%f] after step %d, got %f", a.Size-EnemySize, i, e.X)
		}
		if e.Y < 0 || e.Y > a.Size-EnemySize {
			t.Fatalf("Expected Y in [0,%f] after step %d, got %f", a.Size-EnemySize, i, e.Y)
		}
	}
}

func TestEnemyStep_ReflectsOffRightEdge(t *testing.T) {
	a := Arena{Size: 500}
	e := &Enemy{
		Box: Box{X: a.Size - EnemySize - 1, Y: 200, W: EnemySize, H: EnemySize},
		VX:  5,
		VY:  0,
	}

	e.Step(a)

	if e.X != a.Size-EnemySize {
		t.Errorf("Expected clamp to the right edge %f, got %f", a.Size-EnemySize, e.X)
	}
	if e.VX != -5 {
		t.Errorf("Expected VX negated to -5, got %f", e.VX)
	}
}

func TestEnemyStep_ReflectsOffTopEdge(t *testing.T) {
	a := Arena{Size: 500}
	e := &Enemy{
		Box: Box{X: 200, Y: 2, W: EnemySize, H: EnemySize},
		VX:  0,
		VY:  -4,
	}

	e.Step(a)

	if e.Y != 0 {
		t.Errorf("Expected clamp to the top edge, got %f", e.Y)
	}
	if e.VY != 4 {
		t.Errorf("Expected VY negated to 4, got %f", e.VY)
	}
}

func TestEnemyStep_BouncePreservesSpeed(t *testing.T) {
	a := Arena{Size: 500}
	e := &Enemy{
		Box: Box{X: 1, Y: 1, W: EnemySize, H: EnemySize},
		VX:  -3,
		VY:  -4,
	}
	before := e.Speed()

	for i := 0; i < 100; i++ {
		e.Step(a)
	}

	if math.Abs(e.Speed()-before) > 1e-9 {
		t.Errorf("Expected speed preserved across bounces, got %f want %f", e.Speed(), before)
	}
}

func TestEnemySpeedUp_Compounds(t *testing.T) {
	e := &Enemy{VX: InitialSpeed, VY: 0}

	for k := 1; k <= 8; k++ {
		e.SpeedUp(SpeedMultiplier)
		expected := InitialSpeed * math.Pow(SpeedMultiplier, float64(k))
		if math.Abs(e.Speed()-expected) > 1e-9 {
			t.Errorf("Expected speed %f after %d escalations, got %f", expected, k, e.Speed())
		}
	}
}

func TestEnemyHits_UsesStrictOverlap(t *testing.T) {
	p := &Player{Box: Box{X: 10, Y: 10, W: PlayerSize, H: PlayerSize}}

	adjacent := &Enemy{Box: Box{X: 10 + PlayerSize, Y: 10, W: EnemySize, H: EnemySize}}
	if adjacent.Hits(p) {
		t.Error("Expected edge-adjacent enemy not to register a hit")
	}

	overlapping := &Enemy{Box: Box{X: 10 + PlayerSize - 1, Y: 10, W: EnemySize, H: EnemySize}}
	if !overlapping.Hits(p) {
		t.Error("Expected overlapping enemy to register a hit")
	}
}
