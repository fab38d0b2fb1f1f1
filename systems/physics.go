package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
)

// UpdatePhysics applies friction, gravity, dash drive and external-force
// decay to every body. Frozen bodies (stuck clones) are skipped entirely.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if physics.Frozen {
			return
		}

		// Carried objects ride their carrier; no independent physics.
		if e.HasComponent(components.Carryable) {
			if components.Carryable.Get(e).CarriedBy != nil {
				return
			}
		}

		if physics.DashCooldown > 0 {
			physics.DashCooldown--
		}

		// Dash overrides normal drive while active.
		if physics.DashFrames > 0 {
			physics.DashFrames--
			physics.SpeedX = physics.DashDirX * cfg.Player.DashSpeed
			physics.SpeedY = physics.DashDirY * cfg.Player.DashSpeed
			return
		}

		friction := physics.Friction
		if physics.SpeedX > friction {
			physics.SpeedX -= friction
		} else if physics.SpeedX < -friction {
			physics.SpeedX += friction
		} else {
			physics.SpeedX = 0
		}

		if physics.SpeedX > physics.MaxSpeed {
			physics.SpeedX = physics.MaxSpeed
		} else if physics.SpeedX < -physics.MaxSpeed {
			physics.SpeedX = -physics.MaxSpeed
		}

		// Apply gravity
		physics.SpeedY += physics.Gravity
		if physics.SpeedY > cfg.Physics.MaxFallSpeed {
			physics.SpeedY = cfg.Physics.MaxFallSpeed
		}
		if physics.WallSliding != nil && physics.SpeedY > cfg.Physics.WallSlideSpeed {
			physics.SpeedY = cfg.Physics.WallSlideSpeed
		}

		// External influence decays toward zero and contributes to motion
		// through the collision step.
		physics.ExternalForceX *= cfg.Physics.ExternalForceDecay
		physics.ExternalForceY *= cfg.Physics.ExternalForceDecay
		if physics.ExternalForceX > -0.01 && physics.ExternalForceX < 0.01 {
			physics.ExternalForceX = 0
		}
		if physics.ExternalForceY > -0.01 && physics.ExternalForceY < 0.01 {
			physics.ExternalForceY = 0
		}
	})
}
