package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/events"
	"github.com/hollowmoor/echoes/gamemath"
	"github.com/hollowmoor/echoes/loop"
	"github.com/hollowmoor/echoes/systems/factory"
)

// tickSeconds is the fixed timestep at 60 TPS.
const tickSeconds = 1.0 / 60.0

// UpdateLoop is the loop coordinator. It advances the shared game clock,
// runs the automatic loop cadence, and services the manual snapshot and
// retract actions. Runs early in the tick so everything downstream sees a
// settled clock.
func UpdateLoop(ecs *ecs.ECS) {
	loopEntry, ok := components.Loop.First(ecs.World)
	if !ok {
		return
	}
	loopData := components.Loop.Get(loopEntry)
	loopData.Clock += tickSeconds

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	rec := components.Recorder.Get(playerEntry).Recorder

	// First tick of a level: open the initial recording session.
	if !loopData.LoopActive {
		startLoop(ecs, loopData, rec, false)
		return
	}

	input := getOrCreateInput(ecs)

	// Manual snapshot cuts the session short. Unlike the automatic
	// cadence it refuses at the population cap instead of evicting.
	if cfg.Loop.ManualTriggerEnabled && GetAction(input, cfg.ActionLoopSnapshot).JustPressed {
		if cfg.Loop.MaxClones > 0 && CloneCount(ecs) >= cfg.Loop.MaxClones {
			log.Printf("Warning: manual snapshot refused; clone population at cap %d", cfg.Loop.MaxClones)
		} else {
			CaptureLoop(ecs, loopEntry, playerEntry, true)
		}
		return
	}

	if GetAction(input, cfg.ActionRetract).JustPressed {
		RetractToLast(ecs, loopEntry, playerEntry)
	}

	// Automatic cadence.
	if loopData.Clock-loopData.LoopStart >= cfg.Loop.LoopDuration {
		CaptureLoop(ecs, loopEntry, playerEntry, false)
	}
}

func startLoop(ecs *ecs.ECS, loopData *components.LoopData, rec *loop.Recorder, manual bool) {
	loopData.LoopStart = loopData.Clock
	loopData.LoopActive = true
	rec.StartRecording(loopData.Clock)

	events.LoopStarted.Publish(ecs.World, events.LoopStartedData{
		StartedAt: loopData.Clock,
		Manual:    manual,
	})
}

// CaptureLoop closes the current recording session and hands the sequence
// to a new clone. An empty recording is discarded, but the loop timer
// still restarts. The live player returns to the anchor when configured.
func CaptureLoop(ecs *ecs.ECS, loopEntry, playerEntry *donburi.Entry, manual bool) {
	loopData := components.Loop.Get(loopEntry)
	rec := components.Recorder.Get(playerEntry).Recorder

	rec.StopRecording()
	duration := rec.Duration()
	captured := rec.Len() > 0

	events.LoopEnded.Publish(ecs.World, events.LoopEndedData{
		EndedAt:  loopData.Clock,
		Duration: duration,
		Captured: captured,
	})

	if captured {
		// Uniform loop length across the cohort, regardless of when the
		// session was cut.
		rec.PadToDuration(cfg.Loop.LoopDuration)
		CreateCloneFromSequence(ecs, loopEntry, rec.Sequence())

		if cfg.Loop.ResetPlayerOnSnapshot {
			respawnPlayerAtAnchor(ecs, playerEntry)
		}
		StartTransition(ecs)
		PlaySFX(ecs, cfg.SoundCloneSpawn)
	} else {
		log.Printf("Warning: loop captured with empty recording; no clone created")
	}

	// Next session opens immediately.
	startLoop(ecs, loopData, rec, manual)
}

// CreateCloneFromSequence spawns a clone for the sequence, enforcing the
// population cap by evicting the oldest clone first, and starts its
// replayer on the shared clock.
func CreateCloneFromSequence(ecs *ecs.ECS, loopEntry *donburi.Entry, seq loop.Sequence) *donburi.Entry {
	loopData := components.Loop.Get(loopEntry)
	purgeInvalid(loopData)

	var evicted *donburi.Entry
	if cfg.Loop.MaxClones > 0 && len(loopData.Clones) >= cfg.Loop.MaxClones {
		evicted = loopData.Clones[0]
		loopData.Clones = loopData.Clones[1:]
		removeClone(ecs, evicted)
	}

	identity := loopData.NextIdentity
	loopData.NextIdentity++

	cloneEntry := factory.CreateClone(ecs, seq, identity)
	clone := components.Clone.Get(cloneEntry)

	policy := loop.RestartAtFirstSample
	if cfg.Loop.RestartAtAnchor {
		policy = loop.RestartAtAnchor
	}
	clone.Replayer.SetRestartPolicy(policy, gamemath.Vec2{X: loopData.AnchorX, Y: loopData.AnchorY})

	drv := &entryDriver{ecs: ecs, entry: cloneEntry}
	clone.Replayer.Start(loopData.Clock, drv)

	loopData.Clones = append(loopData.Clones, cloneEntry)

	events.CloneCreated.Publish(ecs.World, events.CloneCreatedData{
		Clone:    cloneEntry,
		Identity: identity,
		Evicted:  evicted,
	})

	return cloneEntry
}

// RetractToLast rewinds the population to the newest non-stuck clone:
// every clone created after it is destroyed, and the player is moved onto
// the target's current in-loop position and velocity. Reports false when
// there is no eligible target (population empty, or every clone is stuck).
func RetractToLast(ecs *ecs.ECS, loopEntry, playerEntry *donburi.Entry) bool {
	loopData := components.Loop.Get(loopEntry)
	purgeInvalid(loopData)

	target := -1
	for i := len(loopData.Clones) - 1; i >= 0; i-- {
		if components.Clone.Get(loopData.Clones[i]).Replayer.State() != loop.StateStuck {
			target = i
			break
		}
	}
	if target == -1 {
		log.Printf("Warning: retract with no non-stuck clone; ignored")
		return false
	}

	for _, e := range loopData.Clones[target+1:] {
		removeClone(ecs, e)
	}
	loopData.Clones = loopData.Clones[:target+1]

	targetEntry := loopData.Clones[target]
	targetObj := components.Object.Get(targetEntry).Object
	targetPhysics := components.Physics.Get(targetEntry)

	obj := components.Object.Get(playerEntry).Object
	physics := components.Physics.Get(playerEntry)
	obj.X = targetObj.X
	obj.Y = targetObj.Y
	obj.Update()
	physics.SpeedX = targetPhysics.SpeedX
	physics.SpeedY = targetPhysics.SpeedY
	physics.ExternalForceX = targetPhysics.ExternalForceX
	physics.ExternalForceY = targetPhysics.ExternalForceY

	// The interrupted session restarts clean.
	rec := components.Recorder.Get(playerEntry).Recorder
	loopData.LoopStart = loopData.Clock
	rec.StartRecording(loopData.Clock)

	PlaySFX(ecs, cfg.SoundRetract)
	return true
}

// removeClone releases a clone's held object and collision body before
// destroying the entity.
func removeClone(ecs *ecs.ECS, cloneEntry *donburi.Entry) {
	if !cloneEntry.Valid() {
		return
	}
	clone := components.Clone.Get(cloneEntry)
	if clone.Carrying != nil {
		components.Carryable.Get(clone.Carrying).CarriedBy = nil
		clone.Carrying = nil
	}
	obj := components.Object.Get(cloneEntry).Object
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Remove(obj)
	}
	ecs.World.Remove(cloneEntry.Entity())
}

// purgeInvalid drops entries for clones destroyed outside the coordinator.
func purgeInvalid(loopData *components.LoopData) {
	valid := loopData.Clones[:0]
	for _, e := range loopData.Clones {
		if e.Valid() {
			valid = append(valid, e)
		}
	}
	loopData.Clones = valid
}

// CloneCount returns the live clone population.
func CloneCount(ecs *ecs.ECS) int {
	loopEntry, ok := components.Loop.First(ecs.World)
	if !ok {
		return 0
	}
	loopData := components.Loop.Get(loopEntry)
	purgeInvalid(loopData)
	return len(loopData.Clones)
}

// StuckCount returns how many clones are in their terminal stuck state.
func StuckCount(ecs *ecs.ECS) int {
	loopEntry, ok := components.Loop.First(ecs.World)
	if !ok {
		return 0
	}
	loopData := components.Loop.Get(loopEntry)
	purgeInvalid(loopData)

	n := 0
	for _, e := range loopData.Clones {
		if components.Clone.Get(e).Replayer.State() == loop.StateStuck {
			n++
		}
	}
	return n
}

// NewestClone returns the most recently created clone, or nil.
func NewestClone(ecs *ecs.ECS) *donburi.Entry {
	loopEntry, ok := components.Loop.First(ecs.World)
	if !ok {
		return nil
	}
	loopData := components.Loop.Get(loopEntry)
	purgeInvalid(loopData)
	if len(loopData.Clones) == 0 {
		return nil
	}
	return loopData.Clones[len(loopData.Clones)-1]
}
