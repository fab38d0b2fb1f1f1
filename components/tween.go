package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives floating platforms along a back-and-forth sequence.
var Tween = donburi.NewComponentType[gween.Sequence]()
