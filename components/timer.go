package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TimerKind identifies what a repeating timer drives
type TimerKind int

const (
	TimerSpawn TimerKind = iota
	TimerScore
)

func (k TimerKind) String() string {
	switch k {
	case TimerSpawn:
		return "spawn"
	case TimerScore:
		return "score"
	default:
		return "unknown"
	}
}

// TimerData is a frame-driven timer. It fires every Period of simulated time;
// one-shot timers stop after the first firing.
type TimerData struct {
	Kind    TimerKind
	Period  time.Duration
	Elapsed time.Duration
	Repeat  bool
	Fired   int
	Done    bool
}

var Timer = donburi.NewComponentType[TimerData]()
