package universe

import (
	"fmt"

	"cubelife/src/topology"
)

//corners lists the ghost corners as the pair of sides meeting there
var corners = [4][2]topology.Side{
	{topology.Left, topology.Top},
	{topology.Right, topology.Top},
	{topology.Right, topology.Bottom},
	{topology.Left, topology.Bottom},
}

//Sync prepares the tile for its next Advance:
//previous takes over the interior of current and the ghost border is read
//from the current generation of the tiles the resolver names for each edge and corner
//Sync writes only to t, it can run for every tile in parallel once all of them advanced
func Sync(t *Tile, r *topology.Resolver, lookup func(topology.TileID) (*Tile, bool)) {
	t.previous.CopyInterior(t.current)

	for _, s := range topology.Sides {
		nid, ns := r.ResolveEdge(t.id, s)
		src := mustLookup(t, nid, lookup)
		aligned := topology.Aligned(s, ns)
		for i := 1; i <= t.n; i++ {
			j := i
			if !aligned {
				j = t.n + 1 - i
			}
			sx, sy := edgeCell(t.n, ns, j, 1)
			gx, gy := edgeCell(t.n, s, i, 0)
			t.previous.Set(gx, gy, src.current.At(sx, sy))
		}
	}

	for _, c := range corners {
		nid, na, nb := r.ResolveCorner(t.id, c[0], c[1])
		src := mustLookup(t, nid, lookup)
		sx, sy := cornerCell(t.n, na, nb, 1)
		gx, gy := cornerCell(t.n, c[0], c[1], 0)
		t.previous.Set(gx, gy, src.current.At(sx, sy))
	}
}

func mustLookup(t *Tile, id topology.TileID, lookup func(topology.TileID) (*Tile, bool)) *Tile {
	if id == t.id {
		return t
	}
	src, ok := lookup(id)
	if !ok {
		panic(fmt.Sprintf("universe: topology names unknown tile %s", id))
	}
	if src.n != t.n {
		panic(fmt.Sprintf("universe: tile %s has %d cells per edge, %s has %d", src.id, src.n, t.id, t.n))
	}
	return src
}
