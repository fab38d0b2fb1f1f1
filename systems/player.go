package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/gamemath"
	"github.com/hollowmoor/echoes/loop"
	"github.com/hollowmoor/echoes/tags"
)

// UpdatePlayer runs the live player's controller: movement, jumping, dash,
// pickup and throw. Every action performed is latched into the player's
// recorder at the same moment, so a captured sequence is exactly what the
// player did.
func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updateSinglePlayer(ecs, e, input)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, input *components.InputData) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	rec := components.Recorder.Get(playerEntry).Recorder
	obj := components.Object.Get(playerEntry).Object

	if physics.Frozen {
		return
	}

	axis := MovementAxis(input)
	jump := GetAction(input, cfg.ActionJump)
	dash := GetAction(input, cfg.ActionDash)
	interact := GetAction(input, cfg.ActionInteract)
	throw := GetAction(input, cfg.ActionThrow)

	// Horizontal drive. Suppressed mid-dash; the dash overrides speed in
	// the physics step.
	if physics.DashFrames == 0 && physics.WallSliding == nil {
		applyMovement(physics, axis)
	}
	if axis > 0 {
		player.Direction.X = cfg.DirectionRight
	} else if axis < 0 {
		player.Direction.X = cfg.DirectionLeft
	}

	handleJump(ecs, jump, physics, obj, rec)

	if dash.JustPressed && physics.DashCooldown == 0 {
		dir := aimDirection(input, player)
		startDash(physics, dir)
		rec.MarkDash(dir)
		PlaySFX(ecs, cfg.SoundDash)
	}

	if interact.JustPressed {
		if tryPickup(ecs, playerEntry) {
			rec.MarkInteract()
			PlaySFX(ecs, cfg.SoundPickup)
		}
	}

	if throw.JustPressed && player.Carrying != nil {
		throwCarried(playerEntry)
		rec.MarkAttack()
		PlaySFX(ecs, cfg.SoundThrow)
	}

	// Latch the continuous channels every tick.
	rec.SetMovement(axis)
	rec.SetJumpHeld(jump.Pressed)
	player.JumpHeld = jump.Pressed
}

func handleJump(e *ecs.ECS, jump components.ActionState, physics *components.PhysicsData, obj *resolv.Object, rec *loop.Recorder) {
	if jump.JustPressed {
		switch {
		case physics.OnGround != nil:
			jumpBody(physics)
			rec.MarkJump()
			PlaySFX(e, cfg.SoundJump)
		case physics.WallSliding != nil:
			// Wall jump: launch up and away from the wall.
			wall := physics.WallSliding
			jumpBody(physics)
			if wall.X > obj.X {
				physics.SpeedX = -physics.MaxSpeed
			} else {
				physics.SpeedX = physics.MaxSpeed
			}
			rec.MarkJump()
			PlaySFX(e, cfg.SoundJump)
		}
	}

	// Early release cuts the jump short.
	if jump.JustReleased {
		cutJump(physics)
	}
}

// aimDirection builds a dash direction from the held directional input,
// falling back to the facing direction when no direction is held.
func aimDirection(input *components.InputData, player *components.PlayerData) gamemath.Vec2 {
	dir := gamemath.Vec2{X: MovementAxis(input)}
	if input.Current[cfg.ActionMoveUp] {
		dir.Y -= 1
	}
	if input.Current[cfg.ActionMoveDown] {
		dir.Y += 1
	}
	if dir.IsZero() {
		dir.X = player.Direction.X
	}
	return dir.Normalized()
}
