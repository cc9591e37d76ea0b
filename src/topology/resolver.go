package topology

import (
	"fmt"
	"io"
	"log"
)

//TileID is the stable unique identifier of a physical tile
type TileID string

//Link describes a direct physical neighbour
//Rotation re-expresses a side of the querying tile in the neighbour's frame:
//side s of the querying tile is s.Rotate(Rotation) for the neighbour
type Link struct {
	Tile     TileID
	Rotation Rotation
}

//Adjacency is the physical topology query
//Len is the number of tiles in the arrangement, it bounds every wraparound walk
type Adjacency interface {
	Neighbor(id TileID, s Side) (Link, bool)
	Len() int
}

//Resolver maps logical directions of a tile to the tile (and its sides) that feeds them
//a missing neighbour is not an error: the resolver wraps to the farthest tile in the opposite direction
type Resolver struct {
	adj    Adjacency
	logger *log.Logger
}

//NewResolver creates a resolver over the adjacency snapshot
//logger receives debug lines about diagonal resolutions, may be nil
func NewResolver(adj Adjacency, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Resolver{adj: adj, logger: logger}
}

//ResolveEdge returns the tile feeding the side of id and the side of that tile touching it
func (r *Resolver) ResolveEdge(id TileID, side Side) (TileID, Side) {
	mustValid(side)
	if l, ok := r.adj.Neighbor(id, side); ok {
		return l.Tile, side.Rotate(l.Rotation).Invert()
	}

	//no immediate neighbour, walk to the far end of the chain on the opposite side
	cur, s := id, side.Invert()
	for steps := 0; ; steps++ {
		l, ok := r.adj.Neighbor(cur, s)
		if !ok {
			break
		}
		r.checkWalk(id, steps)
		s = s.Rotate(l.Rotation)
		cur = l.Tile
	}
	return cur, s
}

//ResolveCorner returns the tile feeding the corner of id between sides a and b,
//together with the sides of that tile naming the corner which touches id
func (r *Resolver) ResolveCorner(id TileID, a, b Side) (TileID, Side, Side) {
	mustValid(a)
	mustValid(b)
	if a == b || a == b.Invert() {
		panic(fmt.Sprintf("topology: %v and %v do not form a corner", a, b))
	}

	if n, rot, ok := r.diagonal(id, a, b); ok {
		na, nb := a.Rotate(rot).Invert(), b.Rotate(rot).Invert()
		if n != id {
			r.logger.Printf("corner %v/%v of %s resolved to %s %v/%v", a, b, id, n, na, nb)
		}
		return n, na, nb
	}

	cur, sa, sb := id, a.Invert(), b.Invert()
	for steps := 0; ; steps++ {
		n, rot, ok := r.diagonal(cur, sa, sb)
		if !ok {
			break
		}
		r.checkWalk(id, steps)
		sa, sb = sa.Rotate(rot), sb.Rotate(rot)
		cur = n
	}
	if cur != id {
		r.logger.Printf("corner %v/%v of %s wrapped to %s %v/%v", a, b, id, cur, sa, sb)
	}
	return cur, sa, sb
}

//diagonal finds the tile two hops away, first through a then b, otherwise through b then a
//the second hop is queried in the intermediate tile's frame, rot is the composed rotation
func (r *Resolver) diagonal(id TileID, a, b Side) (TileID, Rotation, bool) {
	if n, rot, ok := r.twoHops(id, a, b); ok {
		return n, rot, true
	}
	return r.twoHops(id, b, a)
}

func (r *Resolver) twoHops(id TileID, first, second Side) (TileID, Rotation, bool) {
	l1, ok := r.adj.Neighbor(id, first)
	if !ok {
		return "", None, false
	}
	l2, ok := r.adj.Neighbor(l1.Tile, second.Rotate(l1.Rotation))
	if !ok {
		return "", None, false
	}
	return l2.Tile, l1.Rotation.Add(l2.Rotation), true
}

//checkWalk stops a walk that visited more tiles than the arrangement holds
func (r *Resolver) checkWalk(origin TileID, steps int) {
	if steps >= r.adj.Len() {
		panic(fmt.Sprintf("topology: wraparound walk from %s does not terminate, adjacency is cyclic", origin))
	}
}

func mustValid(s Side) {
	if !s.Valid() {
		panic(fmt.Sprintf("topology: invalid side %d", int(s)))
	}
}
