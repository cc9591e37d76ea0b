package universe

import (
	"fmt"

	"cubelife/src/topology"
)

//Cell is the state of one cell: Dead or a live intensity 0..254
type Cell uint8

//Dead is the only value reserved for a dead cell
const Dead Cell = 255

//Alive reports whether the cell holds a live intensity
func (c Cell) Alive() bool { return c != Dead }

//Grid stores the cells of one tile with a one-cell ghost border, row-major
//indices 1..N are the visible interior, 0 and N+1 the ghost border
type Grid struct {
	n     int
	size  int
	cells []Cell
}

//NewGrid allocates an all-dead grid with n interior cells per edge
func NewGrid(n int) *Grid {
	if n <= 0 {
		panic(fmt.Sprintf("universe: grid needs a positive size, got %d", n))
	}
	g := &Grid{n: n, size: n + 2, cells: make([]Cell, (n+2)*(n+2))}
	g.Fill(Dead)
	return g
}

//N returns the number of interior cells per edge
func (g *Grid) N() int { return g.n }

//At returns the cell at x, y, panics outside the bordered grid
func (g *Grid) At(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

//Set stores the cell at x, y, panics outside the bordered grid
func (g *Grid) Set(x, y int, c Cell) {
	g.cells[g.index(x, y)] = c
}

//Fill sets every cell, ghost border included
func (g *Grid) Fill(c Cell) {
	for i := range g.cells {
		g.cells[i] = c
	}
}

//CopyInterior copies the interior of src, the ghost border is left untouched
func (g *Grid) CopyInterior(src *Grid) {
	if src.n != g.n {
		panic(fmt.Sprintf("universe: grid size mismatch %d != %d", src.n, g.n))
	}
	for y := 1; y <= g.n; y++ {
		row := y * g.size
		copy(g.cells[row+1:row+1+g.n], src.cells[row+1:row+1+g.n])
	}
}

//LiveCells counts the live interior cells
func (g *Grid) LiveCells() int {
	live := 0
	g.walkInterior(func(x, y int, c Cell) {
		if c.Alive() {
			live++
		}
	})
	return live
}

//walkInterior calls cb for each interior cell
func (g *Grid) walkInterior(cb func(x, y int, c Cell)) {
	for y := 1; y <= g.n; y++ {
		for x := 1; x <= g.n; x++ {
			cb(x, y, g.cells[y*g.size+x])
		}
	}
}

func (g *Grid) index(x, y int) int {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		panic(fmt.Sprintf("universe: cell %d,%d outside %dx%d grid", x, y, g.size, g.size))
	}
	return y*g.size + x
}

//edgeCell returns the coordinates of cell i (1..N) along side s
//inset 0 addresses the ghost border, inset 1 the outermost interior row or column
func edgeCell(n int, s topology.Side, i int, inset int) (x, y int) {
	switch s {
	case topology.Top:
		return i, inset
	case topology.Bottom:
		return i, n + 1 - inset
	case topology.Left:
		return inset, i
	case topology.Right:
		return n + 1 - inset, i
	}
	panic(fmt.Sprintf("universe: invalid side %d", int(s)))
}

//cornerCell returns the coordinates of the corner between sides a and b
func cornerCell(n int, a, b topology.Side, inset int) (x, y int) {
	x, y = -1, -1
	for _, s := range [2]topology.Side{a, b} {
		switch s {
		case topology.Top:
			y = inset
		case topology.Bottom:
			y = n + 1 - inset
		case topology.Left:
			x = inset
		case topology.Right:
			x = n + 1 - inset
		}
	}
	if x < 0 || y < 0 {
		panic(fmt.Sprintf("universe: %v and %v do not name a corner", a, b))
	}
	return x, y
}
