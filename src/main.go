package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"

	"cubelife/src/topology"
	"cubelife/src/universe"
	"cubelife/src/view"
)

var (
	engines = map[string]func(o *universe.Options, a *topology.Arrangement, stateCh chan universe.Status) universe.Universe{
		"base": func(o *universe.Options, a *topology.Arrangement, stateCh chan universe.Status) universe.Universe {
			return universe.NewBaseUniverse(o, a, stateCh)
		},
		"multithreaded": universe.NewMultithreadedUniverse,
	}
)

type EnvOptions struct {
	interactive bool
	gui         bool
	scale       int
	randomData  bool
	engine      string
	layout      string
	tps         int
	debug       bool
}

func main() {
	eo, uo := initOptions()

	var stateCh chan universe.Status

	if !eo.interactive && !eo.gui {
		stateCh = make(chan universe.Status, 10) //the buffered channel to getting the universe status
	}

	u, screens, err := newUniverse(eo, uo, stateCh)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var v universe.Viewer
	switch {
	case eo.gui:
		if v, err = view.NewWindow(screens, eo.scale); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	case eo.interactive:
		v = view.NewViewTerminal(screens)
	default:
		v = view.NewConsoleOut()
	}
	u.RegisterViewer(v)

	if eo.randomData {
		u.Reseed()
	} else {
		//a glider on every cube
		for _, t := range u.Tiles() {
			u.Post(universe.Event{Kind: universe.EventButton, Tile: t.ID(), Pressed: true})
		}
	}

	v.Start()
	if stateCh != nil {
		u.Run()
		for {
			st := <-stateCh
			if st.RunningMode == universe.RunningStateFinished {
				break
			}
		}
	}
	u.Close()
}

//newUniverse loads the layout and creates the engine with one screen per cube
func newUniverse(eo *EnvOptions, uo *universe.Options, stateCh chan universe.Status) (universe.Universe, *view.ScreenSet, error) {
	factory, ok := engines[eo.engine]
	if !ok {
		return nil, nil, fmt.Errorf("unknown engine %q", eo.engine)
	}
	l, err := topology.LoadLayout(eo.layout)
	if err != nil {
		return nil, nil, err
	}
	a, err := l.Arrange()
	if err != nil {
		return nil, nil, err
	}

	o := *uo
	if eo.tps > 0 {
		o.Interval = time.Second / time.Duration(eo.tps)
	}
	if eo.debug {
		o.Logger = log.New(os.Stderr, "cubelife ", log.Lmicroseconds)
	}
	screens := view.NewScreenSet(o.Cells)
	o.Screens = screens.Screen
	return factory(&o, a, stateCh), screens, nil
}

func engineNames() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	return names
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {

	o := universe.DefaultUniverseOptions
	uo = &o
	eo = &EnvOptions{engine: "multithreaded", scale: 2}
	flaggy.SetName("cubelife")
	flaggy.SetDescription("\"The Life\" on a table of tiny screens")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Cells, "n", "cells", "Cells along one edge of a cube")
	flaggy.Duration(&uo.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&eo.tps, "t", "tps", "Simulation speed in ticks per second, overrides the interval")
	flaggy.Int(&uo.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Bool(&uo.StopWhenStable, "", "stopWhenStable", "Finish when nothing changes any more")
	flaggy.Int64(&uo.Seed, "", "seed", "Seed of the random generators")
	flaggy.Int(&uo.Workers, "w", "workers", "Goroutines per phase of the multithreaded engine")
	flaggy.String(&eo.layout, "l", "layout", "YAML file with the cube layout, the default is a 2x2 square")
	flaggy.Bool(&eo.interactive, "d", "interactive", "Start interactive mode")
	flaggy.Bool(&eo.gui, "g", "gui", "Open a window (ebiten build only)")
	flaggy.Int(&eo.scale, "", "scale", "Window pixels per screen pixel")
	flaggy.Bool(&eo.randomData, "r", "random", "Settle with random data")
	flaggy.Bool(&eo.debug, "", "debug", "Log the topology resolution to stderr")
	flaggy.String(&eo.engine, "e", "engine", "Engine to use ["+strings.Join(engineNames(), "|")+"]")

	flaggy.Parse()

	if _, ok := engines[eo.engine]; !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	if uo.Cells < 3 {
		flaggy.ShowHelpAndExit("a cube needs at least 3 cells per edge")
	}

	return
}
