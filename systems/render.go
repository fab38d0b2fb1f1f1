package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/loop"
	"github.com/hollowmoor/echoes/tags"
)

var (
	wallColor     = color.RGBA{70, 70, 85, 255}
	platformColor = color.RGBA{90, 110, 140, 255}
	doorColor     = color.RGBA{150, 90, 40, 255}
	doorOpenColor = color.RGBA{150, 90, 40, 60}
	switchColor   = color.RGBA{60, 120, 60, 255}
	switchOnColor = color.RGBA{70, 220, 70, 255}
	crateColor    = color.RGBA{170, 130, 70, 255}
	playerColor   = color.RGBA{235, 235, 235, 255}
	deadZoneColor = color.RGBA{160, 40, 40, 90}
)

// cameraOffset converts world coordinates to screen coordinates.
func cameraOffset(ecs *ecs.ECS) (float64, float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return camera.Position.X - float64(cfg.C.Width)/2, camera.Position.Y - float64(cfg.C.Height)/2
}

// DrawWorld renders the level and every actor as flat rectangles, in
// back-to-front order.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY := cameraOffset(ecs)

	drawRect := func(e *donburi.Entry, c color.Color) {
		o := components.Object.Get(e)
		vector.DrawFilledRect(screen,
			float32(o.X-camX), float32(o.Y-camY),
			float32(o.W), float32(o.H), c, false)
	}

	tags.DeadZone.Each(ecs.World, func(e *donburi.Entry) {
		drawRect(e, deadZoneColor)
	})
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		drawRect(e, wallColor)
	})
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		drawRect(e, platformColor)
	})
	tags.FloatingPlatform.Each(ecs.World, func(e *donburi.Entry) {
		drawRect(e, platformColor)
	})

	tags.Goal.Each(ecs.World, func(e *donburi.Entry) {
		goal := components.Goal.Get(e)
		c := cfg.GoalGold
		if goal.Claimed {
			c.A = 80
		}
		drawRect(e, c)
	})

	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		if components.Door.Get(e).Open {
			drawRect(e, doorOpenColor)
		} else {
			drawRect(e, doorColor)
		}
	})

	tags.Switch.Each(ecs.World, func(e *donburi.Entry) {
		if components.Switch.Get(e).On {
			drawRect(e, switchOnColor)
		} else {
			drawRect(e, switchColor)
		}
	})

	tags.Carryable.Each(ecs.World, func(e *donburi.Entry) {
		drawRect(e, crateColor)
	})

	tags.Clone.Each(ecs.World, func(e *donburi.Entry) {
		if components.Clone.Get(e).Replayer.State() == loop.StateStuck {
			drawRect(e, cfg.CloneGray)
		} else {
			drawRect(e, cfg.CloneBlue)
		}
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawRect(e, playerColor)
	})
}

// DrawHitboxes outlines every collision object. Debug only.
func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}
	camX, camY := cameraOffset(ecs)

	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.StrokeRect(screen,
			float32(o.X-camX), float32(o.Y-camY),
			float32(o.W), float32(o.H), 1, cfg.Red, false)
	})
}
