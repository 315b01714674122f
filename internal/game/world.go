package game

// World is the complete simulation state at one tick: exactly one player,
// plus the surviving invaders and in-flight bullets. The world owns every
// entity; a tick produces a fresh World rather than mutating the old one,
// so the platform can swap the current state atomically.
type World struct {
	Player   Player
	Invaders []Invader
	Bullets  []Bullet
}

// NewWorld builds the starting state: the player centered near the bottom
// edge and 24 invaders placed by column i%8 and row i%3 over the same
// linear index. The mod-3 row cycle interleaves with the mod-8 columns
// instead of forming a clean 8x3 grid; the formation is intentional.
func NewWorld() World {
	w := World{
		Player: Player{
			Body: Body{X: Width / 2, Y: Height - 2*PlayerSize, Size: PlayerSize},
		},
		Invaders: make([]Invader, 0, invaderCount),
	}
	for i := 0; i < invaderCount; i++ {
		w.Invaders = append(w.Invaders, Invader{
			Body: Body{
				X:    30 + 30*float64(i%8),
				Y:    30 + 30*float64(i%3),
				Size: InvaderSize,
			},
			SpeedX: invaderSpeed,
		})
	}
	return w
}
