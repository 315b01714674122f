package game

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
)

// Snapshot captures the game state for determinism testing and debugging.
// Hash folds every entity's position and velocity, so two snapshots with
// equal hashes describe the same world.
type Snapshot struct {
	Tick     uint64
	PlayerX  float64
	PlayerY  float64
	Dead     bool
	Invaders int
	Bullets  int
	WorldSum uint64
}

// Snapshot returns the current snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		PlayerX:  g.world.Player.X,
		PlayerY:  g.world.Player.Y,
		Dead:     g.world.Player.Dead,
		Invaders: len(g.world.Invaders),
		Bullets:  len(g.world.Bullets),
		WorldSum: hashWorld(g.world),
	}
}

// Hash returns a single value summarizing the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	writeU64(h, s.Tick)
	writeF64(h, s.PlayerX)
	writeF64(h, s.PlayerY)
	if s.Dead {
		writeU64(h, 1)
	} else {
		writeU64(h, 0)
	}
	writeU64(h, uint64(s.Invaders))
	writeU64(h, uint64(s.Bullets))
	writeU64(h, s.WorldSum)
	return h.Sum64()
}

func hashWorld(w World) uint64 {
	h := fnv.New64a()
	writeF64(h, w.Player.X)
	writeF64(h, w.Player.Y)
	for i := range w.Invaders {
		inv := &w.Invaders[i]
		writeF64(h, inv.X)
		writeF64(h, inv.Y)
		writeF64(h, inv.PatrolOffset)
		writeF64(h, inv.SpeedX)
	}
	for i := range w.Bullets {
		b := &w.Bullets[i]
		writeF64(h, b.X)
		writeF64(h, b.Y)
		writeF64(h, b.VX)
		writeF64(h, b.VY)
	}
	return h.Sum64()
}

func writeU64(h hash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:]) //nolint:errcheck // hash writes never fail
}

func writeF64(h hash.Hash, v float64) {
	writeU64(h, math.Float64bits(v))
}
