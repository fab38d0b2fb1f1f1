package components

import (
	"github.com/hollowmoor/echoes/loop"
	"github.com/yohamta/donburi"
)

// RecorderData holds the single recorder bound to the live player, plus the
// accumulator that aligns 50 Hz sampling with the 60 Hz fixed timestep.
type RecorderData struct {
	Recorder *loop.Recorder

	// SampleAccumulator carries fractional time toward the next sample.
	SampleAccumulator float64
}

var Recorder = donburi.NewComponentType[RecorderData]()
