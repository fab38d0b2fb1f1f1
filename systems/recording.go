package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/gamemath"
	"github.com/hollowmoor/echoes/loop"
	"github.com/hollowmoor/echoes/tags"
)

// UpdateRecording samples the player's settled state for this tick. Runs
// after collision so recorded positions are post-resolution. The
// accumulator bridges the 50 Hz sampling interval and the 60 Hz timestep:
// most ticks produce one sample, some produce none.
func UpdateRecording(ecs *ecs.ECS) {
	loopEntry, ok := components.Loop.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Loop.Get(loopEntry).Clock

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		recData := components.Recorder.Get(e)
		if !recData.Recorder.Recording() {
			recData.SampleAccumulator = 0
			return
		}

		recData.SampleAccumulator += tickSeconds
		if recData.SampleAccumulator < recData.Recorder.Interval() {
			return
		}
		recData.SampleAccumulator -= recData.Recorder.Interval()

		recData.Recorder.RecordSample(clock, captureState(e))
	})
}

func captureState(e *donburi.Entry) loop.CharacterState {
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e).Object

	return loop.CharacterState{
		Position:      gamemath.Vec2{X: obj.X, Y: obj.Y},
		Velocity:      gamemath.Vec2{X: physics.SpeedX, Y: physics.SpeedY},
		ExternalForce: gamemath.Vec2{X: physics.ExternalForceX, Y: physics.ExternalForceY},
		Grounded:      physics.OnGround != nil,
		OnWall:        physics.WallSliding != nil,
		FacingRight:   player.Direction.X == cfg.DirectionRight,
	}
}
