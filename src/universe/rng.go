package universe

import (
	"hash/fnv"
	"math/rand/v2"

	"cubelife/src/topology"
)

//RNG is a thin wrapper around math/rand/v2 for deterministic seeding
type RNG struct {
	r *rand.Rand
}

//NewRNG creates a deterministic RNG using the provided seed
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

//tileRNG derives an independent stream for the tile, so tiles can advance in parallel
func tileRNG(seed int64, id topology.TileID) *RNG {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), h.Sum64()))}
}

//IntN returns a random int in [0, n)
func (r *RNG) IntN(n int) int {
	return r.r.IntN(n)
}

//Between returns a random int in [lo, hi)
func (r *RNG) Between(lo, hi int) int {
	return lo + r.r.IntN(hi-lo)
}

//Intensity returns a random live intensity
func (r *RNG) Intensity() Cell {
	return Cell(r.r.IntN(int(Dead)))
}
