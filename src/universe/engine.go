package universe

//Advance computes the next generation of the tile's interior
//it reads previous (the ghost border must already hold the neighbours' cells),
//writes current and paints only the cells that changed
func Advance(t *Tile) (changed int, live int) {
	for y := 1; y <= t.n; y++ {
		for x := 1; x <= t.n; x++ {
			next := t.cellNextState(x, y)
			t.current.Set(x, y, next)
			if next != t.previous.At(x, y) {
				t.paintCell(x, y, next)
				changed++
			}
			if next.Alive() {
				live++
			}
		}
	}
	return
}

//cellNextState calculates the next state for the cell
//live cells survive with 2 or 3 live neighbours and keep their intensity,
//dead cells are born with exactly 3 and take the mean of their intensities
func (t *Tile) cellNextState(x int, y int) Cell {
	liveNeighbours := 0
	sum := 0
	for j := -1; j < 2; j++ {
		for i := -1; i < 2; i++ {
			//skip my position
			if i == 0 && j == 0 {
				continue
			}
			if c := t.previous.At(x+i, y+j); c.Alive() {
				liveNeighbours++
				sum += int(c)
			}
		}
	}

	c := t.previous.At(x, y)
	if c.Alive() {
		if liveNeighbours < 2 || liveNeighbours > 3 {
			return Dead
		}
		return c
	}
	if liveNeighbours == 3 {
		return Cell(sum / liveNeighbours)
	}
	if t.perturbed && t.rng.IntN(10) == 0 {
		return t.rng.Intensity()
	}
	return Dead
}
