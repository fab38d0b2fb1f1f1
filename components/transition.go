package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type TransitionPhase int

const (
	TransitionNone TransitionPhase = iota
	TransitionOut
	TransitionIn
)

// TransitionData drives the fade overlay played on loop restarts and
// level changes.
type TransitionData struct {
	Phase TransitionPhase
	Fade  *gween.Tween
	Alpha float32
}

var Transition = donburi.NewComponentType[TransitionData]()
