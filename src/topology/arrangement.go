package topology

import (
	"fmt"
	"sort"
	"sync"
)

//Point is a lattice position, y grows downwards
type Point struct {
	X int
	Y int
}

//Placement is the physical pose of a tile on the lattice
//Orientation is how far the tile is turned clockwise from the lattice frame
type Placement struct {
	Pos         Point
	Orientation Rotation
}

//Arrangement is the physical topology: tiles placed on a 2D orthogonal lattice
//tiles can be moved and turned at any time, queries should go through a Snapshot
//so that one synchronisation phase sees a quiescent topology
type Arrangement struct {
	mu      sync.RWMutex
	tiles   map[TileID]Placement
	lattice map[Point]TileID
}

//NewArrangement creates an empty arrangement
func NewArrangement() *Arrangement {
	return &Arrangement{
		tiles:   map[TileID]Placement{},
		lattice: map[Point]TileID{},
	}
}

//Place puts the tile on the lattice, replacing its previous placement
func (a *Arrangement) Place(id TileID, p Placement) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if other, ok := a.lattice[p.Pos]; ok && other != id {
		return fmt.Errorf("position %d,%d is occupied by %s", p.Pos.X, p.Pos.Y, other)
	}
	if old, ok := a.tiles[id]; ok {
		delete(a.lattice, old.Pos)
	}
	p.Orientation = p.Orientation.normalize()
	a.tiles[id] = p
	a.lattice[p.Pos] = id
	return nil
}

//Move shifts the tile by dx, dy lattice steps
func (a *Arrangement) Move(id TileID, dx, dy int) error {
	p, ok := a.Placement(id)
	if !ok {
		return fmt.Errorf("unknown tile %s", id)
	}
	p.Pos.X += dx
	p.Pos.Y += dy
	return a.Place(id, p)
}

//Turn rotates the tile in place by r clockwise quarter turns
func (a *Arrangement) Turn(id TileID, r Rotation) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.tiles[id]
	if !ok {
		return fmt.Errorf("unknown tile %s", id)
	}
	p.Orientation = p.Orientation.Add(r)
	a.tiles[id] = p
	return nil
}

//Remove takes the tile off the lattice
func (a *Arrangement) Remove(id TileID) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if p, ok := a.tiles[id]; ok {
		delete(a.lattice, p.Pos)
		delete(a.tiles, id)
	}
}

//Placement returns the current pose of the tile
func (a *Arrangement) Placement(id TileID) (Placement, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	p, ok := a.tiles[id]
	return p, ok
}

//At returns the tile at the lattice position
func (a *Arrangement) At(pos Point) (TileID, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	id, ok := a.lattice[pos]
	return id, ok
}

//IDs returns all placed tiles sorted by id
func (a *Arrangement) IDs() []TileID {
	a.mu.RLock()
	defer a.mu.RUnlock()
	ids := make([]TileID, 0, len(a.tiles))
	for id := range a.tiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

//Bounds returns the smallest and the largest occupied lattice positions
func (a *Arrangement) Bounds() (lo Point, hi Point) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	first := true
	for pos := range a.lattice {
		if first {
			lo, hi = pos, pos
			first = false
			continue
		}
		if pos.X < lo.X {
			lo.X = pos.X
		}
		if pos.Y < lo.Y {
			lo.Y = pos.Y
		}
		if pos.X > hi.X {
			hi.X = pos.X
		}
		if pos.Y > hi.Y {
			hi.Y = pos.Y
		}
	}
	return
}

//Len returns the number of placed tiles
func (a *Arrangement) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.tiles)
}

//Neighbor returns the tile touching the side of id
//the side is turned into a lattice direction through the tile's orientation,
//and back into the neighbour's frame through the neighbour's orientation
func (a *Arrangement) Neighbor(id TileID, s Side) (Link, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	p, ok := a.tiles[id]
	if !ok {
		return Link{}, false
	}
	dx, dy := s.Rotate(p.Orientation).Delta()
	nid, ok := a.lattice[Point{p.Pos.X + dx, p.Pos.Y + dy}]
	if !ok {
		return Link{}, false
	}
	np := a.tiles[nid]
	return Link{Tile: nid, Rotation: p.Orientation.Add(np.Orientation.Neg())}, true
}

//Snapshot returns an independent copy, later changes of a are not visible in it
func (a *Arrangement) Snapshot() *Arrangement {
	a.mu.RLock()
	defer a.mu.RUnlock()
	s := NewArrangement()
	for id, p := range a.tiles {
		s.tiles[id] = p
		s.lattice[p.Pos] = id
	}
	return s
}
