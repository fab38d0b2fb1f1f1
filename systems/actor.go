package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/gamemath"
	"github.com/hollowmoor/echoes/tags"
)

// Shared character actions. The player controller and the clone replay
// driver both go through these so a replayed command lands on exactly the
// mechanics the live player had.

func applyMovement(physics *components.PhysicsData, axis float64) {
	physics.SpeedX += axis * cfg.Player.Acceleration
}

// jumpBody launches the body. Replay calls this unconditionally: the
// recorded jump already happened under recorded conditions and every
// sample hard-corrects position afterwards.
func jumpBody(physics *components.PhysicsData) {
	physics.SpeedY = -cfg.Player.JumpSpeed
	physics.OnGround = nil
	physics.WallSliding = nil
}

// cutJump caps upward speed when the jump button is released early,
// giving variable jump height.
func cutJump(physics *components.PhysicsData) {
	if physics.SpeedY < -cfg.Player.JumpCutSpeed {
		physics.SpeedY = -cfg.Player.JumpCutSpeed
	}
}

func startDash(physics *components.PhysicsData, dir gamemath.Vec2) {
	if physics.DashCooldown > 0 {
		return
	}
	if dir.IsZero() {
		return
	}
	d := dir.Normalized()
	physics.DashFrames = cfg.Player.DashFrames
	physics.DashCooldown = cfg.Player.DashCooldownFrames
	physics.DashDirX = d.X
	physics.DashDirY = d.Y
}

// tryPickup grabs the nearest free carryable within interact range.
// Returns true when something was picked up.
func tryPickup(ecs *ecs.ECS, carrier *donburi.Entry) bool {
	obj := components.Object.Get(carrier).Object

	var nearest *donburi.Entry
	nearestDist := cfg.Player.InteractRange
	tags.Carryable.Each(ecs.World, func(e *donburi.Entry) {
		carry := components.Carryable.Get(e)
		if carry.CarriedBy != nil {
			return
		}
		cObj := components.Object.Get(e).Object
		dx := (cObj.X + cObj.W/2) - (obj.X + obj.W/2)
		dy := (cObj.Y + cObj.H/2) - (obj.Y + obj.H/2)
		dist := gamemath.Vec2{X: dx, Y: dy}.Length()
		if dist <= nearestDist {
			nearest = e
			nearestDist = dist
		}
	})
	if nearest == nil {
		return false
	}

	components.Carryable.Get(nearest).CarriedBy = carrier
	setCarried(carrier, nearest)
	return true
}

// throwCarried releases the held carryable with a throw impulse in the
// carrier's facing direction.
func throwCarried(carrier *donburi.Entry) {
	held := carriedEntry(carrier)
	if held == nil {
		return
	}

	facing := facingX(carrier)
	physics := components.Physics.Get(held)
	physics.SpeedX = facing * cfg.Player.ThrowSpeedX
	physics.SpeedY = cfg.Player.ThrowSpeedY

	components.Carryable.Get(held).CarriedBy = nil
	setCarried(carrier, nil)
}

// setCarried and carriedEntry paper over the player/clone split: the player
// tracks its held object on PlayerData, clones on their physics-side state.
func setCarried(carrier *donburi.Entry, held *donburi.Entry) {
	if carrier.HasComponent(components.Player) {
		components.Player.Get(carrier).Carrying = held
		return
	}
	if carrier.HasComponent(components.Clone) {
		components.Clone.Get(carrier).Carrying = held
	}
}

func carriedEntry(carrier *donburi.Entry) *donburi.Entry {
	if carrier.HasComponent(components.Player) {
		return components.Player.Get(carrier).Carrying
	}
	if carrier.HasComponent(components.Clone) {
		return components.Clone.Get(carrier).Carrying
	}
	return nil
}

func facingX(carrier *donburi.Entry) float64 {
	if carrier.HasComponent(components.Player) {
		return components.Player.Get(carrier).Direction.X
	}
	if carrier.HasComponent(components.Clone) {
		if components.Clone.Get(carrier).FacingRight {
			return cfg.DirectionRight
		}
		return cfg.DirectionLeft
	}
	return cfg.DirectionRight
}

// entryDriver adapts a clone entity to the replay driver interface.
type entryDriver struct {
	ecs   *ecs.ECS
	entry *donburi.Entry
}

func (d *entryDriver) ApplyMovement(axis float64) {
	physics := components.Physics.Get(d.entry)
	applyMovement(physics, axis)
	if axis > 0 {
		components.Clone.Get(d.entry).FacingRight = true
	} else if axis < 0 {
		components.Clone.Get(d.entry).FacingRight = false
	}
}

func (d *entryDriver) Jump() {
	jumpBody(components.Physics.Get(d.entry))
}

func (d *entryDriver) EndJump() {
	cutJump(components.Physics.Get(d.entry))
}

func (d *entryDriver) Dash(direction gamemath.Vec2) {
	startDash(components.Physics.Get(d.entry), direction)
}

func (d *entryDriver) Interact() {
	tryPickup(d.ecs, d.entry)
}

func (d *entryDriver) Throw() {
	throwCarried(d.entry)
}

func (d *entryDriver) Carrying() bool {
	return carriedEntry(d.entry) != nil
}

func (d *entryDriver) SetPosition(pos gamemath.Vec2) {
	obj := components.Object.Get(d.entry).Object
	obj.X = pos.X
	obj.Y = pos.Y
	obj.Update()
}

func (d *entryDriver) SetKinematics(velocity, externalForce gamemath.Vec2) {
	physics := components.Physics.Get(d.entry)
	physics.SpeedX = velocity.X
	physics.SpeedY = velocity.Y
	physics.ExternalForceX = externalForce.X
	physics.ExternalForceY = externalForce.Y
}
