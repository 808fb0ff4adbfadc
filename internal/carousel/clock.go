package carousel

import (
	"math/rand"
	"time"
)

// Rand is the random source for tile delays and rotations.
type Rand interface {
	Float64() float64
}

// Timer is the handle returned by Clock.AfterFunc.
type Timer interface {
	Stop() bool
}

// Clock schedules the transition lock release.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
