package game

import (
	"math"

	"github.com/hvirtanen/boxdodge/common"
)

// Enemy is a bouncing square with a constant-velocity heading. It has no AI;
// it reflects off arena edges and kills the player on contact.
type Enemy struct {
	Box
	VX, VY float64
}

// SpawnEnemy places a new enemy at a uniformly random point along a
// uniformly chosen arena edge, heading in a uniformly random direction with
// magnitude InitialSpeed.
func SpawnEnemy(a Arena, rng *common.SeededRNG) *Enemy {
	e := &Enemy{Box: Box{W: EnemySize, H: EnemySize}}

	span := a.Size - EnemySize
	along := rng.RandomFloat(0, span)
	switch rng.RandomIndex(4) {
	case 0: // top
		e.X, e.Y = along, 0
	case 1: // right
		e.X, e.Y = span, along
	case 2: // bottom
		e.X, e.Y = along, span
	default: // left
		e.X, e.Y = 0, along
	}

	angle := rng.RandomAngle()
	e.VX = math.Cos(angle) * InitialSpeed
	e.VY = math.Sin(angle) * InitialSpeed
	return e
}

// Step advances the enemy one frame: explicit Euler integration followed by
// edge reflection. The velocity component is negated and the position
// clamped to the edge on contact, so the box never leaves the arena.
func (e *Enemy) Step(a Arena) {
	e.X += e.VX
	e.Y += e.VY

	if e.X <= 0 {
		e.X = 0
		e.VX = -e.VX
	} else if e.X >= a.Size-EnemySize {
		e.X = a.Size - EnemySize
		e.VX = -e.VX
	}

	if e.Y <= 0 {
		e.Y = 0
		e.VY = -e.VY
	} else if e.Y >= a.Size-EnemySize {
		e.Y = a.Size - EnemySize
		e.VY = -e.VY
	}
}

// SpeedUp scales the enemy's velocity. Escalations are cumulative and
// permanent; bounces never reset them.
func (e *Enemy) SpeedUp(factor float64) {
	e.VX *= factor
	e.VY *= factor
}

// Speed returns the current velocity magnitude.
func (e *Enemy) Speed() float64 {
	return math.Hypot(e.VX, e.VY)
}

// Hits reports a strict-overlap collision with the player.
func (e *Enemy) Hits(p *Player) bool {
	return e.Box.Intersects(p.Box)
}
