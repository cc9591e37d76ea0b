package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cubelife/src/universe"
)

func newTestOptions() *universe.Options {
	o := universe.DefaultUniverseOptions
	o.Interval = 0
	o.MaxSteps = 3
	return &o
}

func TestNewUniverseEngines(t *testing.T) {
	for _, e := range engineNames() {
		stateCh := make(chan universe.Status, 10)
		u, screens, err := newUniverse(&EnvOptions{engine: e, tps: 20}, newTestOptions(), stateCh)
		if err != nil {
			t.Fatalf("%s: %v", e, err)
		}
		if got := u.Options().Advanced["engine"]; got != e {
			t.Fatalf("engine detail = %v, expected %s", got, e)
		}
		if u.Options().Interval != 50*time.Millisecond {
			t.Fatalf("%s: interval = %v", e, u.Options().Interval)
		}
		u.Post(universe.Event{Kind: universe.EventButton, Tile: "cube-1", Pressed: true})
		u.Run()
		for st := range stateCh {
			if st.RunningMode == universe.RunningStateFinished {
				break
			}
		}
		//the glider is drawn on the cube's own screen
		fb := screens.Get("cube-1")
		live := 0
		for y := 0; y < screens.Cells(); y++ {
			for x := 0; x < screens.Cells(); x++ {
				if c := fb.CellColor(x, y); c.R != 0xff {
					live++
				}
			}
		}
		if live != 5 {
			t.Fatalf("%s: %d cells drawn, expected a glider", e, live)
		}
		u.Close()
	}
}

func TestNewUniverseLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	layout := "tiles:\n  - {id: left, x: 0, y: 0}\n  - {id: right, x: 1, y: 0, orientation: 270}\n"
	if err := os.WriteFile(path, []byte(layout), 0o644); err != nil {
		t.Fatal(err)
	}
	u, _, err := newUniverse(&EnvOptions{engine: "base", layout: path}, newTestOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer u.Close()
	if n := len(u.Tiles()); n != 2 {
		t.Fatalf("%d tiles", n)
	}
	p, _ := u.Arrangement().Placement("right")
	if p.Orientation.Degrees() != 270 {
		t.Fatalf("orientation = %v", p.Orientation)
	}
}

func TestNewUniverseErrors(t *testing.T) {
	if _, _, err := newUniverse(&EnvOptions{engine: "quantum"}, newTestOptions(), nil); err == nil {
		t.Fatal("an unknown engine must fail")
	}
	if _, _, err := newUniverse(&EnvOptions{engine: "base", layout: "/nonexistent/layout.yaml"}, newTestOptions(), nil); err == nil {
		t.Fatal("a missing layout must fail")
	}
}
