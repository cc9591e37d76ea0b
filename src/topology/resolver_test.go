package topology

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func arrange(t *testing.T, places map[TileID]Placement) *Arrangement {
	t.Helper()
	a := NewArrangement()
	for id, p := range places {
		if err := a.Place(id, p); err != nil {
			t.Fatalf("place %s: %v", id, err)
		}
	}
	return a
}

func TestLoneTileResolvesToItself(t *testing.T) {
	a := arrange(t, map[TileID]Placement{"solo": {}})
	r := NewResolver(a, nil)
	for _, s := range Sides {
		id, ns := r.ResolveEdge("solo", s)
		if id != "solo" || ns != s.Invert() {
			t.Fatalf("edge %v resolved to %s %v, expected solo %v", s, id, ns, s.Invert())
		}
	}
	corners := [][2]Side{{Top, Left}, {Left, Top}, {Top, Right}, {Bottom, Left}, {Right, Bottom}}
	for _, c := range corners {
		id, na, nb := r.ResolveCorner("solo", c[0], c[1])
		if id != "solo" || na != c[0].Invert() || nb != c[1].Invert() {
			t.Fatalf("corner %v/%v resolved to %s %v/%v", c[0], c[1], id, na, nb)
		}
	}
}

func TestDirectNeighbourRotations(t *testing.T) {
	//b sits to the right of a, turned k quarter turns
	want := map[Rotation]Side{None: Left, Quarter: Bottom, Half: Right, Three: Top}
	for k, side := range want {
		a := arrange(t, map[TileID]Placement{
			"a": {Pos: Point{0, 0}},
			"b": {Pos: Point{1, 0}, Orientation: k},
		})
		r := NewResolver(a, nil)
		id, ns := r.ResolveEdge("a", Right)
		if id != "b" || ns != side {
			t.Fatalf("rotation %v: right of a resolved to %s %v, expected b %v", k, id, ns, side)
		}
		//and back: the side of b touching a resolves to the right side of a
		id, ns = r.ResolveEdge("b", side)
		if id != "a" || ns != Right {
			t.Fatalf("rotation %v: %v of b resolved to %s %v, expected a RIGHT", k, side, id, ns)
		}
	}
}

func TestSquareTopWrapsToBottomRow(t *testing.T) {
	//top row tiles have nothing above, so TOP wraps to the bottom row tile below them
	want := map[Rotation]Side{None: Bottom, Quarter: Right, Half: Top, Three: Left}
	for k, side := range want {
		a := arrange(t, map[TileID]Placement{
			"tl": {Pos: Point{0, 0}},
			"tr": {Pos: Point{1, 0}},
			"bl": {Pos: Point{0, 1}, Orientation: k},
			"br": {Pos: Point{1, 1}, Orientation: k},
		})
		r := NewResolver(a, nil)
		for top, bottom := range map[TileID]TileID{"tl": "bl", "tr": "br"} {
			id, ns := r.ResolveEdge(top, Top)
			if id != bottom || ns != side {
				t.Fatalf("rotation %v: top of %s resolved to %s %v, expected %s %v", k, top, id, ns, bottom, side)
			}
		}
	}
}

func TestChainWrapsToFarEnd(t *testing.T) {
	a := arrange(t, map[TileID]Placement{
		"a": {Pos: Point{0, 0}},
		"b": {Pos: Point{1, 0}, Orientation: Half},
		"c": {Pos: Point{2, 0}, Orientation: Quarter},
	})
	r := NewResolver(a, nil)

	id, ns := r.ResolveEdge("a", Left)
	//c is turned a quarter, its local TOP faces the lattice right
	if id != "c" || ns != Top {
		t.Fatalf("left of a resolved to %s %v, expected c TOP", id, ns)
	}
	//c's local BOTTOM faces the lattice left, towards b
	id, ns = r.ResolveEdge("c", Bottom)
	if id != "b" || ns != Left {
		t.Fatalf("bottom of c resolved to %s %v, expected b LEFT", id, ns)
	}
	//c's local TOP faces the open lattice right, wrap to a's left edge
	id, ns = r.ResolveEdge("c", Top)
	if id != "a" || ns != Left {
		t.Fatalf("top of c resolved to %s %v, expected a LEFT", id, ns)
	}
}

func TestCornerDiagonalNeighbour(t *testing.T) {
	cases := []struct {
		brOrientation Rotation
		wantA, wantB  Side
	}{
		{None, Top, Left},
		{Half, Bottom, Right},
		{Quarter, Left, Bottom},
	}
	for _, c := range cases {
		a := arrange(t, map[TileID]Placement{
			"tl": {Pos: Point{0, 0}},
			"tr": {Pos: Point{1, 0}},
			"bl": {Pos: Point{0, 1}},
			"br": {Pos: Point{1, 1}, Orientation: c.brOrientation},
		})
		r := NewResolver(a, nil)
		id, na, nb := r.ResolveCorner("tl", Bottom, Right)
		if id != "br" || na != c.wantA || nb != c.wantB {
			t.Fatalf("br turned %v: corner resolved to %s %v/%v, expected br %v/%v",
				c.brOrientation, id, na, nb, c.wantA, c.wantB)
		}
	}
}

func TestCornerUsesEitherPath(t *testing.T) {
	//L shape: the only path from tl to br goes right then down
	a := arrange(t, map[TileID]Placement{
		"tl": {Pos: Point{0, 0}},
		"tr": {Pos: Point{1, 0}},
		"br": {Pos: Point{1, 1}},
	})
	r := NewResolver(a, nil)
	id, na, nb := r.ResolveCorner("tl", Bottom, Right)
	if id != "br" || na != Top || nb != Left {
		t.Fatalf("corner resolved to %s %v/%v, expected br TOP/LEFT", id, na, nb)
	}
}

func TestCornerWrapsAcrossSquare(t *testing.T) {
	a := arrange(t, map[TileID]Placement{
		"tl": {Pos: Point{0, 0}},
		"tr": {Pos: Point{1, 0}},
		"bl": {Pos: Point{0, 1}},
		"br": {Pos: Point{1, 1}},
	})
	var buf bytes.Buffer
	r := NewResolver(a, log.New(&buf, "", 0))
	id, na, nb := r.ResolveCorner("tl", Top, Left)
	if id != "br" || na != Bottom || nb != Right {
		t.Fatalf("top-left of tl resolved to %s %v/%v, expected br BOTTOM/RIGHT", id, na, nb)
	}
	if !strings.Contains(buf.String(), "wrapped to br") {
		t.Fatalf("expected a debug line for the wrapped corner, got %q", buf.String())
	}
}

func TestInvalidCornerPanics(t *testing.T) {
	r := NewResolver(arrange(t, map[TileID]Placement{"solo": {}}), nil)
	defer func() {
		if recover() == nil {
			t.Fatal("opposite sides do not form a corner and must panic")
		}
	}()
	r.ResolveCorner("solo", Top, Bottom)
}

//loopAdjacency reports every tile as its own neighbour below, which no lattice can produce
type loopAdjacency struct{}

func (loopAdjacency) Neighbor(id TileID, s Side) (Link, bool) {
	if s == Bottom {
		return Link{Tile: id}, true
	}
	return Link{}, false
}

func (loopAdjacency) Len() int { return 1 }

func TestCyclicAdjacencyPanics(t *testing.T) {
	r := NewResolver(loopAdjacency{}, nil)
	defer func() {
		if recover() == nil {
			t.Fatal("a wraparound walk over a cyclic adjacency must panic")
		}
	}()
	r.ResolveEdge("x", Top)
}
