package universe

import (
	"sort"
	"testing"

	"cubelife/src/topology"
)

var (
	engines = map[string]func(o *Options, a *topology.Arrangement, stateCh chan Status) Universe{
		"base": func(o *Options, a *topology.Arrangement, stateCh chan Status) Universe {
			return NewBaseUniverse(o, a, stateCh)
		},
		"multithreaded": NewMultithreadedUniverse,
	}
)

const (
	benchWidth  = 4
	benchHeight = 4
)

func universeStep(u Universe, b *testing.B) {
	stateCh := u.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Clear()
		<-stateCh //wait for finish
		u.Reseed()
		b.StartTimer()
		u.Step()
		waitFor(stateCh, RunningStateManual)
	}
	u.Close()
}

func universeRun(u Universe, b *testing.B) {
	stateCh := u.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Clear()
		<-stateCh //wait for finish
		u.Reseed()
		b.StartTimer()
		u.Run()
		waitFor(stateCh, RunningStateFinished)
	}
	u.Close()
}

//waitFor reads statuses until the universe reports the mode
func waitFor(stateCh chan Status, mode RunningState) Status {
	for {
		st := <-stateCh
		if st.RunningMode == mode {
			return st
		}
	}
}

func newStateCh() chan Status {
	return make(chan Status, 10)
}

func newUniverseOptions() *Options {
	o := DefaultUniverseOptions
	o.Interval = 0
	o.MaxSteps = 100
	o.Seed = 7
	return &o
}

func newBenchArrangement(b *testing.B) *topology.Arrangement {
	a, err := topology.GridLayout(benchWidth, benchHeight).Arrange()
	if err != nil {
		b.Fatal(err)
	}
	return a
}

func engineNames() (engineNames []string) {
	engineNames = make([]string, 0, len(engines))
	for k := range engines {
		engineNames = append(engineNames, k)
	}
	sort.Strings(engineNames)
	return
}

func Benchmark_Step(b *testing.B) {
	for _, e := range engineNames() {
		b.Run(e, func(b *testing.B) {
			u := engines[e](newUniverseOptions(), newBenchArrangement(b), newStateCh())
			universeStep(u, b)
		})
	}
}

func Benchmark_Universe(b *testing.B) {
	for _, e := range engineNames() {
		b.Run(e, func(b *testing.B) {
			u := engines[e](newUniverseOptions(), newBenchArrangement(b), newStateCh())
			universeRun(u, b)
		})
	}
}
