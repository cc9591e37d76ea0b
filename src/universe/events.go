package universe

import (
	"fmt"

	"cubelife/src/topology"
)

//EventKind enumerates the inputs a cube can raise
type EventKind int

const (
	EventButton EventKind = iota
	EventFlip
	EventTilt
	EventShakeStarted
	EventShakeStopped
)

var eventNames = map[EventKind]string{
	EventButton:       "button",
	EventFlip:         "flip",
	EventTilt:         "tilt",
	EventShakeStarted: "shake started",
	EventShakeStopped: "shake stopped",
}

func (k EventKind) String() string {
	if n, ok := eventNames[k]; ok {
		return n
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

//Event is an input raised by one tile, only the fields of its kind are meaningful
type Event struct {
	Kind    EventKind
	Tile    topology.TileID
	Pressed bool //button
	FaceUp  bool //flip
	TiltX   int
	TiltY   int
	TiltZ   int
}

//eventHandlers is the dispatch table applied by the universe once per tick
var eventHandlers = map[EventKind]func(t *Tile, ev Event){
	EventButton: func(t *Tile, ev Event) {
		if ev.Pressed {
			t.InjectGlider()
		}
	},
	EventFlip: func(t *Tile, ev Event) {
		if !ev.FaceUp {
			t.Reset()
		}
	},
	EventTilt: func(t *Tile, ev Event) {
		t.SetTilt(ev.TiltX, ev.TiltY, ev.TiltZ)
	},
	EventShakeStarted: func(t *Tile, _ Event) {
		t.SetPerturbation(true)
	},
	EventShakeStopped: func(t *Tile, _ Event) {
		t.SetPerturbation(false)
	},
}

//Apply handles the event on the tile, it reports false for an unknown kind
func (t *Tile) Apply(ev Event) bool {
	h, ok := eventHandlers[ev.Kind]
	if !ok {
		return false
	}
	h(t, ev)
	return true
}
