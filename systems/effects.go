package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
)

// StartTransition kicks off the loop-boundary fade: out to MaxAlpha, then
// back in. Restarting an in-flight transition just begins a fresh fade-out.
func StartTransition(ecs *ecs.ECS) {
	entry, ok := components.Transition.First(ecs.World)
	if !ok {
		return
	}
	tr := components.Transition.Get(entry)
	tr.Phase = components.TransitionOut
	tr.Fade = gween.New(tr.Alpha, cfg.Transition.MaxAlpha, cfg.Transition.FadeOutSeconds, ease.OutQuad)
}

// UpdateTransition advances the fade tween each tick.
func UpdateTransition(ecs *ecs.ECS) {
	entry, ok := components.Transition.First(ecs.World)
	if !ok {
		return
	}
	tr := components.Transition.Get(entry)
	if tr.Phase == components.TransitionNone || tr.Fade == nil {
		return
	}

	alpha, done := tr.Fade.Update(float32(tickSeconds))
	tr.Alpha = alpha
	if !done {
		return
	}

	switch tr.Phase {
	case components.TransitionOut:
		tr.Phase = components.TransitionIn
		tr.Fade = gween.New(tr.Alpha, 0, cfg.Transition.FadeInSeconds, ease.InQuad)
	case components.TransitionIn:
		tr.Phase = components.TransitionNone
		tr.Fade = nil
		tr.Alpha = 0
	}
}

// DrawTransition renders the fade overlay above the world.
func DrawTransition(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Transition.First(ecs.World)
	if !ok {
		return
	}
	tr := components.Transition.Get(entry)
	if tr.Alpha <= 0 {
		return
	}

	a := uint8(tr.Alpha * 255)
	vector.DrawFilledRect(screen, 0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		color.RGBA{0, 0, 0, a}, false)
}
