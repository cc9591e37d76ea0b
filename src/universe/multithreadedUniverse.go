package universe

import (
	"golang.org/x/sync/errgroup"

	"cubelife/src/topology"
)

/*
	Universe implementation with multithreaded computation algorithm
	each phase of the tick is fanned out over the tiles, one goroutine per tile bounded by Workers
	the phases are separated by a barrier: no tile synchronises before every tile advanced
*/

type MultithreadedUniverse struct {
	*BaseUniverse
}

//tileResult collects the counters of one tile
type tileResult struct {
	changed int
	live    int
}

func NewMultithreadedUniverse(o *Options, a *topology.Arrangement, stateCh chan Status) Universe {
	mu := MultithreadedUniverse{BaseUniverse: NewBaseUniverse(o, a, stateCh)}
	//redefine the nextIteration
	mu.BaseUniverse.nextIteration = mu.nextIteration

	mu.options.Advanced["engine"] = "multithreaded"
	mu.options.Advanced["Workers"] = mu.options.Workers
	return &mu
}

//workers bounds the goroutines of a phase by the tile count, tiles can be added at any time
func (mu *MultithreadedUniverse) workers() int {
	w := mu.options.Workers
	if n := len(mu.world.order); w > n {
		w = n
	}
	if w < 1 {
		w = 1
	}
	return w
}

//nextIteration calculates the next state for the universe
//starts goroutines for each phase, waits for them and sums the metrics
func (mu *MultithreadedUniverse) nextIteration() (liveCells int, changedCells int) {
	tiles := mu.world.order
	workers := mu.workers()
	results := make([]tileResult, len(tiles))

	var advance errgroup.Group
	advance.SetLimit(workers)
	for i, t := range tiles {
		advance.Go(func() error {
			results[i].changed, results[i].live = Advance(t)
			return nil
		})
	}
	_ = advance.Wait()

	r := mu.resolver()
	var border errgroup.Group
	border.SetLimit(workers)
	for _, t := range tiles {
		border.Go(func() error {
			Sync(t, r, mu.Tile)
			return nil
		})
	}
	_ = border.Wait()

	for _, res := range results {
		liveCells += res.live
		changedCells += res.changed
	}
	return
}
