package game

import (
	"github.com/vovakirdan/square-invaders/internal/core"
)

// RandomSource supplies the uniform [0,1) draws the invader fire step needs.
// *math/rand.Rand satisfies it; tests substitute scripted sequences.
type RandomSource interface {
	Float64() float64
}

// Tick advances the world by one simulation step. The sub-steps run in a
// fixed order, each consuming the world the previous one produced. The input
// frame and random source are read during the tick and never retained; there
// are no error paths, every tick is total.
func Tick(w World, in core.InputFrame, rng RandomSource) World {
	w = updateBullets(w)
	w = updateInvaders(w)
	w = updatePlayer(w, in)
	w = spawnInvaderBullets(w, rng)
	w = spawnPlayerBullet(w, in)
	w = removeCollidingBodies(w)
	w = restartOnCommand(w, in)
	return w
}

// updateBullets moves every bullet by its fixed velocity. Off-screen bullets
// are left alone here; removal happens in removeCollidingBodies.
func updateBullets(w World) World {
	bullets := make([]Bullet, len(w.Bullets))
	for i, b := range w.Bullets {
		b.X += b.VX
		b.Y += b.VY
		bullets[i] = b
	}
	w.Bullets = bullets
	return w
}

// updateInvaders advances the patrol sweep. The speed keeps its sign while
// the accumulated offset stays inside [0, patrolRange] and flips once the
// offset leaves it, giving a back-and-forth sweep bounded by one overshoot
// step on either side.
func updateInvaders(w World) World {
	invaders := make([]Invader, len(w.Invaders))
	for i, inv := range w.Invaders {
		speed := inv.SpeedX
		if inv.PatrolOffset < 0 || inv.PatrolOffset > patrolRange {
			speed = -speed
		}
		inv.SpeedX = speed
		inv.X += speed
		inv.PatrolOffset += speed
		invaders[i] = inv
	}
	w.Invaders = invaders
	return w
}

// updatePlayer checks death first: the player dies on first contact with any
// bullet of this tick's pre-removal set, and stays dead until a restart.
// A dead ship is frozen; an alive one shifts 2 units per held direction.
func updatePlayer(w World, in core.InputFrame) World {
	p := w.Player
	for i := range w.Bullets {
		if Intersects(&p.Body, &w.Bullets[i].Body) {
			p.Dead = true
			break
		}
	}
	if !p.Dead {
		switch {
		case in.Has(core.ActionLeft):
			p.X -= playerSpeed
		case in.Has(core.ActionRight):
			p.X += playerSpeed
		}
	}
	w.Player = p
	return w
}

// spawnInvaderBullets lets each invader fire independently with 0.5%
// probability per tick, but only when no other invader patrols directly
// below it. The chance is drawn before the column check, so RNG consumption
// per tick depends only on the invader count.
func spawnInvaderBullets(w World, rng RandomSource) World {
	bullets := w.Bullets
	for i := range w.Invaders {
		if rng.Float64() <= fireThreshold {
			continue
		}
		if invaderBelow(w.Invaders, i) {
			continue
		}
		inv := &w.Invaders[i]
		bullets = append(bullets, Bullet{
			Body: Body{X: inv.X, Y: inv.Y + inv.Size + 1, Size: BulletSize},
			VX:   rng.Float64() - 0.5,
			VY:   invaderBulletSpeedY,
		})
	}
	w.Bullets = bullets
	return w
}

// invaderBelow reports whether any other invader's x-range contains invader
// i's x while sitting strictly lower on screen.
func invaderBelow(invaders []Invader, i int) bool {
	x := invaders[i].X
	for j := range invaders {
		if j == i {
			continue
		}
		o := &invaders[j]
		if o.X <= x && x <= o.X+o.Size && o.Y > invaders[i].Y {
			return true
		}
	}
	return false
}

// spawnPlayerBullet fires straight up from the middle of an alive ship while
// the fire command is held. There is no cooldown: one bullet per held tick.
func spawnPlayerBullet(w World, in core.InputFrame) World {
	if w.Player.Dead || !in.Has(core.ActionFire) {
		return w
	}
	w.Bullets = append(w.Bullets, Bullet{
		Body: Body{
			X:    w.Player.X + w.Player.Size/2,
			Y:    w.Player.Y,
			Size: BulletSize,
		},
		VY: playerBulletSpeedY,
	})
	return w
}

// removeCollidingBodies drops every invader that touches a bullet, and every
// bullet that touches an invader or left the screen region. Both sides are
// judged against this tick's pre-removal sets. The player is never removed;
// death is a flag. Bullet-bullet collisions are never checked.
func removeCollidingBodies(w World) World {
	invaders := make([]Invader, 0, len(w.Invaders))
	for i := range w.Invaders {
		hit := false
		for j := range w.Bullets {
			if Intersects(&w.Invaders[i].Body, &w.Bullets[j].Body) {
				hit = true
				break
			}
		}
		if !hit {
			invaders = append(invaders, w.Invaders[i])
		}
	}

	bullets := make([]Bullet, 0, len(w.Bullets))
	for j := range w.Bullets {
		b := w.Bullets[j]
		if !b.OnScreen() {
			continue
		}
		hit := false
		for i := range w.Invaders {
			if Intersects(&w.Invaders[i].Body, &w.Bullets[j].Body) {
				hit = true
				break
			}
		}
		if !hit {
			bullets = append(bullets, b)
		}
	}

	w.Invaders = invaders
	w.Bullets = bullets
	return w
}

// restartOnCommand swaps in a freshly created world while the restart
// command is held; recovery is full-state replacement, never repair.
func restartOnCommand(w World, in core.InputFrame) World {
	if in.Has(core.ActionRestart) {
		return NewWorld()
	}
	return w
}
