package systems

import (
	"log"
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	"github.com/hollowmoor/echoes/events"
	"github.com/hollowmoor/echoes/loop"
	"github.com/hollowmoor/echoes/tags"
)

// UpdateCollisions moves every non-frozen character and loose carryable by
// its speed plus external force, resolving against solids and platforms.
// Dead-zone contact sends the player back to the anchor and sticks clones.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		if physics.Frozen {
			return
		}

		resolveHorizontal(physics, obj.Object, true)
		resolveVertical(physics, obj.Object)
		updateWallSliding(player.Direction.X, physics, obj.Object)

		if hitDeadZone(obj.Object) {
			respawnPlayerAtAnchor(ecs, e)
		}
	})

	tags.Clone.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)
		if physics.Frozen {
			return
		}

		facing := facingX(e)
		resolveHorizontal(physics, obj.Object, true)
		resolveVertical(physics, obj.Object)
		updateWallSliding(facing, physics, obj.Object)

		if hitDeadZone(obj.Object) {
			StickClone(ecs, e)
		}
	})

	tags.Carryable.Each(ecs.World, func(e *donburi.Entry) {
		if components.Carryable.Get(e).CarriedBy != nil {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontal(physics, obj.Object, false)
		resolveVertical(physics, obj.Object)
	})
}

// resolveHorizontal handles horizontal movement and wall collision.
func resolveHorizontal(physics *components.PhysicsData, object *resolv.Object, allowWallSlide bool) {
	dx := physics.SpeedX + physics.ExternalForceX
	if dx == 0 {
		return
	}

	check := object.Check(dx, 0, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		return
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		physics.SpeedX = 0
		// Dash ends on wall contact.
		physics.DashFrames = 0
		if allowWallSlide && physics.OnGround == nil {
			physics.WallSliding = solids[0]
		}
		dx = check.ContactWithObject(solids[0]).X()
	}

	object.X += dx
}

// resolveVertical handles vertical movement and ground/platform collision.
func resolveVertical(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = nil
	dy := clampVerticalSpeed(physics.SpeedY + physics.ExternalForceY)

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	check := object.Check(0, checkDistance, tags.ResolvSolid, tags.ResolvPlatform)
	if check == nil {
		object.Y += dy
		return
	}

	if dy < 0 {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			physics.SpeedY = 0
			dy = check.ContactWithObject(solids[0]).Y()
		}
		object.Y += dy
		return
	}

	// Falling: platforms only catch from above.
	if platforms := check.ObjectsByTags(tags.ResolvPlatform); len(platforms) > 0 {
		platform := platforms[0]
		if object.Y+object.H <= platform.Y+1 {
			physics.OnGround = platform
			physics.SpeedY = 0
			physics.WallSliding = nil
			object.Y += check.ContactWithObject(platform).Y()
			return
		}
	}

	if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
		physics.OnGround = solids[0]
		physics.SpeedY = 0
		physics.WallSliding = nil
		dy = check.ContactWithObject(solids[0]).Y()
	}

	object.Y += dy
}

// updateWallSliding disengages wall sliding once the wall is gone.
func updateWallSliding(facing float64, physics *components.PhysicsData, object *resolv.Object) {
	if physics.WallSliding == nil {
		return
	}
	if physics.OnGround != nil {
		physics.WallSliding = nil
		return
	}
	if check := object.Check(facing, 0, tags.ResolvSolid); check == nil {
		physics.WallSliding = nil
	}
}

func clampVerticalSpeed(speedY float64) float64 {
	return math.Max(math.Min(speedY, 16), -16)
}

func hitDeadZone(object *resolv.Object) bool {
	return object.Check(0, 0, tags.ResolvDeadZone) != nil
}

// respawnPlayerAtAnchor drops anything carried and returns the player to
// the spawn anchor with zeroed kinematics. An active recording keeps
// running; the fall and respawn become part of the sequence.
func respawnPlayerAtAnchor(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	if held := carriedEntry(playerEntry); held != nil {
		components.Carryable.Get(held).CarriedBy = nil
		setCarried(playerEntry, nil)
	}

	loopEntry, ok := components.Loop.First(ecs.World)
	if !ok {
		return
	}
	loopData := components.Loop.Get(loopEntry)

	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry).Object
	obj.X = loopData.AnchorX
	obj.Y = loopData.AnchorY
	obj.Update()
	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.ExternalForceX = 0
	physics.ExternalForceY = 0
	physics.DashFrames = 0
	physics.WallSliding = nil
}

// StickClone puts a clone into its terminal stuck state: the replayer stops
// accepting samples and the body freezes in place.
func StickClone(ecs *ecs.ECS, cloneEntry *donburi.Entry) {
	clone := components.Clone.Get(cloneEntry)
	if clone.Replayer.State() == loop.StateStuck {
		return
	}
	if !trackedClone(ecs, cloneEntry) {
		log.Printf("Warning: stuck requested for untracked clone %d; ignored", clone.Identity)
		return
	}
	clone.Replayer.SetStuck()
	components.Physics.Get(cloneEntry).Frozen = true

	if held := clone.Carrying; held != nil {
		components.Carryable.Get(held).CarriedBy = nil
		clone.Carrying = nil
	}

	events.CloneStuck.Publish(ecs.World, events.CloneStuckData{
		Clone:    cloneEntry,
		Identity: clone.Identity,
	})
}

// trackedClone reports whether the entry is a live member of the
// coordinator's population. Stuck transitions are only honored for members.
func trackedClone(ecs *ecs.ECS, cloneEntry *donburi.Entry) bool {
	loopEntry, ok := components.Loop.First(ecs.World)
	if !ok {
		return false
	}
	for _, e := range components.Loop.Get(loopEntry).Clones {
		if e.Valid() && e.Entity() == cloneEntry.Entity() {
			return true
		}
	}
	return false
}
