// Package game implements the invaders simulation: a fixed 400x400 playfield
// where a player square dodges and shoots patrolling invader squares. The
// simulation is a pure tick pipeline over an immutable World value; all
// terminal concerns live in the platform layer.
package game

// Playfield and entity dimensions, in world units. These are part of the
// game's identity, not tunables.
const (
	Width  = 400.0
	Height = 400.0

	PlayerSize  = 15.0
	InvaderSize = 15.0
	BulletSize  = 3.0

	playerSpeed  = 2.0
	invaderSpeed = 0.3
	patrolRange  = 29.0

	invaderBulletSpeedY = 2.0
	playerBulletSpeedY  = -7.0

	invaderCount = 24

	// Bullets survive 40 units past every playfield edge, so shots fired at
	// an edge still render briefly before removal.
	screenMargin = 40.0
)

// fireThreshold gates invader fire: an invader shoots on a tick when its
// uniform [0,1) draw exceeds this, i.e. with probability 0.5% per tick.
const fireThreshold = 0.995

// Body is the geometry shared by every entity: an axis-aligned square with
// its upper-left corner at (X, Y).
type Body struct {
	X, Y float64
	Size float64
}

// Intersects reports whether two squares overlap, bounds inclusive.
// A body never intersects itself; identity, not geometry, excludes it, so
// two distinct bodies with touching edges still collide.
func Intersects(a, b *Body) bool {
	if a == b {
		return false
	}
	return !(a.X+a.Size < b.X || a.X > b.X+b.Size ||
		a.Y+a.Size < b.Y || a.Y > b.Y+b.Size)
}

// OnScreen reports whether the body is inside the playfield plus the
// off-screen slack margin.
func (b *Body) OnScreen() bool {
	return b.X > -screenMargin && b.X < Width+screenMargin &&
		b.Y > -screenMargin && b.Y < Height+screenMargin
}

// Player is the controllable ship. It is never removed from the world; a hit
// only flips Dead, and only a world restart clears it.
type Player struct {
	Body
	Dead bool
}

// Invader patrols horizontally, sweeping patrolRange units from its spawn
// column before reversing.
type Invader struct {
	Body
	PatrolOffset float64 // signed distance from spawn since the last flip
	SpeedX       float64 // current signed horizontal velocity
}

// Bullet flies with a constant velocity fixed at spawn. VY > 0 is an invader
// bullet moving down, VY < 0 the player's moving up.
type Bullet struct {
	Body
	VX, VY float64
}
