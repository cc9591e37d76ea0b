package view

import (
	"image/color"
	"testing"

	"cubelife/src/topology"
	"cubelife/src/universe"
)

func TestFrameBufferStartsBlank(t *testing.T) {
	fb := NewFrameBuffer(16, 8)
	if w, h := fb.Size(); w != 16 || h != 8 {
		t.Fatalf("size = %d x %d", w, h)
	}
	if c := fb.At(15, 7); c != white {
		t.Fatalf("pixel = %v, expected the background", c)
	}
}

func TestFillRectIsClipped(t *testing.T) {
	fb := NewFrameBuffer(8, 8)
	black := color.RGBA{A: 0xff}
	fb.FillRect(color.Black, 6, -2, 5, 4)
	for _, tc := range []struct {
		x, y int
		want color.RGBA
	}{
		{6, 0, black},
		{7, 1, black},
		{5, 0, white},
		{6, 2, white},
	} {
		if got := fb.At(tc.x, tc.y); got != tc.want {
			t.Fatalf("pixel %d,%d = %v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestTilePaintsItsScreen(t *testing.T) {
	set := NewScreenSet(4)
	tile := universe.NewTile("a", 4, universe.NewRNG(1), set.Screen("a"))
	tile.Set(2, 3, 100)
	fb := set.Get("a")
	if set.Get("a") != fb {
		t.Fatal("the screen set must hand out one buffer per tile")
	}
	if c := fb.CellColor(1, 2); c.R != 100 || c.G != 100 || c.B != 100 {
		t.Fatalf("cell colour = %v", c)
	}
	if c := fb.CellColor(2, 2); c != white {
		t.Fatalf("untouched cell colour = %v", c)
	}
	buf := make([]byte, 4*32*32)
	fb.Pixels(buf)
	off := 4 * ((2*universe.PixelWidth)*32 + universe.PixelWidth)
	if buf[off] != 100 || buf[off+3] != 0xff {
		t.Fatalf("pixel bytes = %v", buf[off:off+4])
	}
}

func TestToLocal(t *testing.T) {
	const n = 4
	for _, tc := range []struct {
		r      topology.Rotation
		sx, sy int
		lx, ly int
	}{
		{topology.None, 1, 2, 1, 2},
		//the local top left corner is drawn at the top right
		{topology.Quarter, n - 1, 0, 0, 0},
		{topology.Half, n - 1, n - 1, 0, 0},
		{topology.Three, 0, n - 1, 0, 0},
		{topology.Quarter, 0, 0, 0, n - 1},
	} {
		if x, y := toLocal(n, tc.r, tc.sx, tc.sy); x != tc.lx || y != tc.ly {
			t.Fatalf("%v: %d,%d -> %d,%d, expected %d,%d", tc.r, tc.sx, tc.sy, x, y, tc.lx, tc.ly)
		}
	}
}
