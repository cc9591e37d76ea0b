package universe

import (
	"log"
	"time"

	"cubelife/src/topology"
)

type Universe interface {
	Status() Status
	Options() Options
	Tiles() []*Tile
	Tile(id topology.TileID) (*Tile, bool)
	Arrangement() *topology.Arrangement
	AddTile(id topology.TileID, p topology.Placement) error
	StateCh() chan Status
	Post(ev Event)
	Reseed()
	RegisterViewer(v Viewer)
	Run()
	Stop()
	Step()
	Clear()
	Close()
}

//Options represents the Universe's configurable options
type Options struct {
	Cells           int //interior cells along one edge of a tile
	Interval        time.Duration
	MaxSteps        int
	MaxSkippedTicks int
	StopWhenStable  bool //finish when a step changes nothing or every tile is dead
	Seed            int64
	Workers         int //goroutines per phase (multithreaded engine)
	//Screens returns the paint target of a tile, nil paints nowhere
	Screens func(topology.TileID) Screen
	//Logger receives debug output, nil discards it
	Logger   *log.Logger
	Advanced map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	Tiles         int
	LiveCells     int
	ChangedCells  int
	IterationTime time.Duration
	Details       map[string]interface{} //advanced details (engine specific)
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(u Universe)
	Start()
}

//The universe running status at the concrete moment
type RunningState int

//default options
const (
	DefCells              = 16 //128px screen, 8px per cell
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 0
	DefMaxSkippedTicks    = 5
	DefWorkers            = 4
)

const (
	RunningStateManual   = 0x0
	RunningStateStep     = 0x1
	RunningStateRun      = 0x2
	RunningStateFinished = 0x3
)

var DefaultUniverseOptions = Options{
	Cells:           DefCells,
	Interval:        DefSimulationInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
	Workers:         DefWorkers,
}
