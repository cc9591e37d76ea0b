package universe

import (
	"fmt"
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"cubelife/src/topology"
)

//BaseUniverse is the base universe's engine
//implements Universe interface
//can be used to create different implementations by redefining nextIteration func
type BaseUniverse struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	world struct {
		tiles map[topology.TileID]*Tile
		order []*Tile
		sync.RWMutex
	}
	events struct {
		queue []Event
		sync.Mutex
	}
	arrangement   *topology.Arrangement
	logger        *log.Logger
	stateCh       chan Status
	views         []Viewer
	controlCh     chan func()
	closeCh       chan bool
	nextIteration func() (liveCells int, changedCells int)
}

//NewBaseUniverse creates the BaseUniverse instance with one tile per placed id of the arrangement
//a nil arrangement is the default 2x2 square
func NewBaseUniverse(o *Options, a *topology.Arrangement, stateCh chan Status) *BaseUniverse {
	opts := DefaultUniverseOptions
	if o != nil {
		opts = *o
	}
	if opts.Cells <= 0 {
		opts.Cells = DefCells
	}
	if opts.Workers <= 0 {
		opts.Workers = DefWorkers
	}
	opts.Advanced = make(map[string]interface{})
	opts.Advanced["engine"] = "base"

	if a == nil {
		var err error
		if a, err = topology.DefaultLayout().Arrange(); err != nil {
			log.Panicln(err)
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	u := BaseUniverse{
		options:     opts,
		arrangement: a,
		logger:      logger,
		controlCh:   make(chan func(), 1),
		closeCh:     make(chan bool, 1),
		stateCh:     stateCh,
	}
	//nextIteration can be implemented by successor
	u.nextIteration = u._nextIteration
	u.state.Details = make(map[string]interface{})

	u.world.tiles = map[topology.TileID]*Tile{}
	for _, id := range a.IDs() {
		u.addTile(id)
	}
	u.refreshView()
	go u.mainLoop()
	return &u
}

//addTile creates the tile and keeps the registry ordered by id
func (u *BaseUniverse) addTile(id topology.TileID) {
	var screen Screen
	if u.options.Screens != nil {
		screen = u.options.Screens(id)
	}
	t := NewTile(id, u.options.Cells, tileRNG(u.options.Seed, id), screen)

	u.world.Lock()
	u.world.tiles[id] = t
	u.world.order = append(u.world.order, t)
	sort.Slice(u.world.order, func(i, j int) bool { return u.world.order[i].ID() < u.world.order[j].ID() })
	n := len(u.world.order)
	u.world.Unlock()

	u.state.Lock()
	u.state.Tiles = n
	u.state.Unlock()
}

//AddTile places a new tile and registers it, the tile joins the simulation on the next step
//blocks until the main loop accepted the tile
func (u *BaseUniverse) AddTile(id topology.TileID, p topology.Placement) error {
	errCh := make(chan error, 1)
	u.controlCh <- func() {
		if _, ok := u.Tile(id); ok {
			errCh <- fmt.Errorf("tile %s already exists", id)
			return
		}
		if err := u.arrangement.Place(id, p); err != nil {
			errCh <- err
			return
		}
		u.addTile(id)
		errCh <- nil
		u.refreshView()
	}
	return <-errCh
}

//Post queues the event, it is applied at the beginning of the next step
func (u *BaseUniverse) Post(ev Event) {
	u.events.Lock()
	u.events.queue = append(u.events.queue, ev)
	u.events.Unlock()
}

//Reseed populates every tile with random data, returns immediately
func (u *BaseUniverse) Reseed() {
	u.controlCh <- func() {
		for _, t := range u.world.order {
			t.Reseed()
		}
		u.state.Lock()
		u.state.LiveCells = u.liveCells()
		u.state.Unlock()
		u.refreshView()
	}
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
func (u *BaseUniverse) RegisterViewer(v Viewer) {
	u.views = append(u.views, v)
	v.Register(u)
}

//StateCh returns the channel with the universe's status updates
func (u *BaseUniverse) StateCh() chan Status {
	return u.stateCh
}

//Status returns current universe status represented by Status struct
func (u *BaseUniverse) Status() Status {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.Status
}

//Options returns current universe configuration represented by Options struct
func (u *BaseUniverse) Options() Options {
	return u.options
}

//Tiles returns all tiles ordered by id
func (u *BaseUniverse) Tiles() []*Tile {
	u.world.RLock()
	defer u.world.RUnlock()
	return append([]*Tile(nil), u.world.order...)
}

//Tile returns the tile with the id
func (u *BaseUniverse) Tile(id topology.TileID) (*Tile, bool) {
	u.world.RLock()
	defer u.world.RUnlock()
	t, ok := u.world.tiles[id]
	return t, ok
}

//Arrangement returns the physical topology, tiles can be moved and turned through it at any time
func (u *BaseUniverse) Arrangement() *topology.Arrangement {
	return u.arrangement
}

//Run starts the universe simulation, returns immediately
func (u *BaseUniverse) Run() {
	u.controlCh <- u.run
}

//Stop stops the universe simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (u *BaseUniverse) Stop() {
	u.controlCh <- u.stop
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (u *BaseUniverse) Step() {
	u.controlCh <- u.step
}

//Clear clears the universe (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (u *BaseUniverse) Clear() {
	u.controlCh <- u.clear
}

//Close stops the main loop, close the channels, returns immediately
func (u *BaseUniverse) Close() {
	u.closeCh <- true
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (u *BaseUniverse) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-u.controlCh:
			cmd()
		case c = <-u.closeCh:

		}
	}
}

//liveCells calculates the count of live cells in the generation the next step reads
func (u *BaseUniverse) liveCells() int {
	liveCells := 0
	for _, t := range u.world.order {
		liveCells += t.previous.LiveCells()
	}
	return liveCells
}

func (u *BaseUniverse) runningMode() RunningState {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.RunningMode
}

//switchRunningState switch the state of the universe to RunningState
//also writes the new state to the stateCh to signal upper control software
func (u *BaseUniverse) switchRunningState(to RunningState) {
	u.state.Lock()
	u.state.RunningMode = to
	st := u.state.Status
	u.state.Unlock()
	if u.stateCh != nil {
		u.stateCh <- st
	}
}

//run starts the universe simulation
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (u *BaseUniverse) run() {
	if mode := u.runningMode(); mode == RunningStateRun {
		return
	}
	u.switchRunningState(RunningStateRun)
	go func() {
		skipped := 0
		done := make(chan bool)
		defer close(done)
		for {
			mode := u.runningMode()
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > u.options.MaxSkippedTicks {
				u.logger.Printf("simulation is too slow for the %v interval, %d ticks skipped", u.options.Interval, skipped)
				u.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the universe is still in the calculation mode
			if mode != RunningStateStep {
				skipped = 0
				u.controlCh <- func() {
					u.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if u.options.Interval > 0 {
				time.Sleep(u.options.Interval)
			}
		}
	}()
}

//stop stops the universe running cycle
func (u *BaseUniverse) stop() {
	if u.runningMode() == RunningStateRun {
		u.switchRunningState(RunningStateManual)
	}
}

//step does one tick for every tile
//queued events are applied first, then the tiles advance and synchronise their borders
func (u *BaseUniverse) step() {
	finished := false
	rm := u.runningMode()
	maxIter := u.options.MaxSteps
	defer func() {
		if finished {
			u.switchRunningState(RunningStateFinished)
		} else {
			u.switchRunningState(rm)
		}
		u.refreshView()
	}()

	if rm == RunningStateFinished || (maxIter != 0 && u.Status().IterationNum >= maxIter) {
		finished = true
		return
	}
	u.switchRunningState(RunningStateStep)

	start := time.Now()
	u.dispatchEvents()
	liveCells, changedCells := u.nextIteration()

	u.state.Lock()
	u.state.IterationNum++
	u.state.LiveCells = liveCells
	u.state.ChangedCells = changedCells
	u.state.IterationTime = time.Since(start)
	iter := u.state.IterationNum
	u.state.Unlock()

	if maxIter != 0 && iter >= maxIter {
		finished = true
	}
	if u.options.StopWhenStable && (liveCells == 0 || changedCells == 0) {
		finished = true
	}
}

//dispatchEvents applies the queued events to their tiles
func (u *BaseUniverse) dispatchEvents() {
	u.events.Lock()
	queue := u.events.queue
	u.events.queue = nil
	u.events.Unlock()

	for _, ev := range queue {
		t, ok := u.world.tiles[ev.Tile]
		if !ok {
			u.logger.Printf("dropping %v event for unknown tile %s", ev.Kind, ev.Tile)
			continue
		}
		if !t.Apply(ev) {
			u.logger.Printf("dropping unknown event %v for tile %s", ev.Kind, ev.Tile)
		}
	}
}

//clear clears the universe data, reset all counters
func (u *BaseUniverse) clear() {
	u.events.Lock()
	u.events.queue = nil
	u.events.Unlock()

	u.state.Lock()
	u.state.IterationNum = 0
	u.state.LiveCells = 0
	u.state.ChangedCells = 0
	for _, t := range u.world.order {
		t.Reset()
	}
	u.state.Unlock()
	u.switchRunningState(RunningStateManual)
	u.refreshView()
}

//_nextIteration does one simulation cycle tile by tile
//every tile advances before any tile synchronises, so Sync only sees complete generations
func (u *BaseUniverse) _nextIteration() (liveCells int, changedCells int) {
	for _, t := range u.world.order {
		changed, live := Advance(t)
		changedCells += changed
		liveCells += live
	}
	r := u.resolver()
	for _, t := range u.world.order {
		Sync(t, r, u.Tile)
	}
	return
}

//resolver resolves against a snapshot, so the tiles can be moved while a phase is running
func (u *BaseUniverse) resolver() *topology.Resolver {
	return topology.NewResolver(u.arrangement.Snapshot(), u.logger)
}

//refreshView calls Refresh event for all registered views
func (u *BaseUniverse) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
