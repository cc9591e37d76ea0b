package universe

import (
	"cubelife/src/topology"
)

//glider cells relative to the anchor, as x,y offsets
var glider = [5][2]int{{0, 2}, {1, 2}, {2, 2}, {2, 1}, {1, 0}}

//Tile is one physical display running its own automaton
//current holds the generation computed by Advance, previous the generation it was computed from
//together with the ghost border filled by Sync
type Tile struct {
	id        topology.TileID
	n         int
	current   *Grid
	previous  *Grid
	perturbed bool
	tiltX     int
	tiltY     int
	rng       *RNG
	screen    Screen
}

//NewTile allocates the grids of the tile and resets it
func NewTile(id topology.TileID, cells int, rng *RNG, screen Screen) *Tile {
	if screen == nil {
		screen = nullScreen{}
	}
	if rng == nil {
		rng = tileRNG(0, id)
	}
	t := &Tile{
		id:       id,
		n:        cells,
		current:  NewGrid(cells),
		previous: NewGrid(cells),
		rng:      rng,
		screen:   screen,
	}
	t.Reset()
	return t
}

//ID returns the tile identifier
func (t *Tile) ID() topology.TileID { return t.id }

//Cells returns the number of interior cells per edge
func (t *Tile) Cells() int { return t.n }

//Current returns the generation computed by the last Advance
func (t *Tile) Current() *Grid { return t.current }

//Previous returns the generation the next Advance will read, ghost border included
func (t *Tile) Previous() *Grid { return t.previous }

//Perturbed reports whether the tile spawns random cells (the cube is being shaken)
func (t *Tile) Perturbed() bool { return t.perturbed }

//SetPerturbation switches random spawning on or off
func (t *Tile) SetPerturbation(on bool) { t.perturbed = on }

//Tilt returns the cached tilt offsets
func (t *Tile) Tilt() (x, y int) { return t.tiltX, t.tiltY }

//SetTilt caches the accelerometer reading, the automaton does not use it
func (t *Tile) SetTilt(x, y, z int) {
	t.tiltX = y - 1
	t.tiltY = x - 1
}

//Reset kills every cell of both generations, ghost border included, and clears the screen
func (t *Tile) Reset() {
	t.current.Fill(Dead)
	t.previous.Fill(Dead)
	t.screen.FillScreen(Background)
}

//Reseed scatters random live cells over roughly a fifth of the tile
//coordinates are drawn independently, a cell drawn twice keeps the last value
func (t *Tile) Reseed() {
	attempts := (t.n + 2) * (t.n + 2) / 5
	for i := 0; i < attempts; i++ {
		x := t.rng.Between(1, t.n+1)
		y := t.rng.Between(1, t.n+1)
		t.previous.Set(x, y, t.rng.Intensity())
		t.paintCell(x, y, t.previous.At(x, y))
	}
}

//InjectGlider places a glider at a random anchor far enough from the lower and right edges
func (t *Tile) InjectGlider() {
	hi := t.n - 3
	if hi <= 1 {
		hi = 2
	}
	t.InjectGliderAt(t.rng.Between(1, hi), t.rng.Between(1, hi))
}

//InjectGliderAt places a glider with its bounding box starting at x, y
func (t *Tile) InjectGliderAt(x, y int) {
	for _, o := range glider {
		cx, cy := x+o[0], y+o[1]
		if cx < 1 || cy < 1 || cx > t.n || cy > t.n {
			panic("universe: glider does not fit the tile interior")
		}
		t.previous.Set(cx, cy, 0)
		t.paintCell(cx, cy, 0)
	}
}

//Set writes a live or dead cell into the generation the next Advance reads
func (t *Tile) Set(x, y int, c Cell) {
	if x < 1 || y < 1 || x > t.n || y > t.n {
		panic("universe: only interior cells can be set")
	}
	t.previous.Set(x, y, c)
	t.paintCell(x, y, c)
}

//paintCell fills the block of the cell at interior coordinates x, y
func (t *Tile) paintCell(x, y int, c Cell) {
	t.screen.FillRect(CellColor(c), (x-1)*PixelWidth, (y-1)*PixelWidth, PixelWidth, PixelWidth)
}
