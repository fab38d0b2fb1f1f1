package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/events"
	"github.com/hollowmoor/echoes/loop"
	"github.com/hollowmoor/echoes/tags"
)

// UpdateGoals checks every unclaimed goal against the actors allowed to
// satisfy it. A clone that claims a goal is anchored there: its replay goes
// stuck and its body freezes, holding the goal for the rest of the attempt.
// Claimed goals never fire again. Once every goal is claimed the level
// completes.
func UpdateGoals(ecs *ecs.ECS) {
	levelEntry, hasLevel := components.Level.First(ecs.World)
	if hasLevel && components.Level.Get(levelEntry).Complete {
		return
	}

	allClaimed := true
	anyGoal := false

	tags.Goal.Each(ecs.World, func(e *donburi.Entry) {
		anyGoal = true
		goal := components.Goal.Get(e)
		if goal.Claimed {
			return
		}

		claimant, ok := goalSatisfied(ecs, e, goal)
		if !ok {
			allClaimed = false
			return
		}

		identity := -1
		if claimant.HasComponent(components.Clone) {
			identity = components.Clone.Get(claimant).Identity
		}

		goal.Claimed = true
		goal.ClaimedBy = identity
		events.GoalClaimed.Publish(ecs.World, events.GoalClaimedData{
			Goal:     e,
			Identity: identity,
		})
		PlaySFX(ecs, cfg.SoundGoal)

		if identity >= 0 {
			StickClone(ecs, claimant)
		}
	})

	if anyGoal && allClaimed && hasLevel {
		completeLevel(ecs, levelEntry)
	}
}

// goalSatisfied returns the actor currently overlapping the goal that is
// eligible to claim it. Clones must still be replaying; a clone already
// stuck elsewhere cannot hold a second goal.
func goalSatisfied(ecs *ecs.ECS, goalEntry *donburi.Entry, goal *components.GoalData) (*donburi.Entry, bool) {
	obj := components.Object.Get(goalEntry).Object
	check := obj.Check(0, 0, "character")
	if check == nil {
		return nil, false
	}

	for _, other := range check.ObjectsByTags("character") {
		entry, ok := other.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}

		switch goal.Mode {
		case components.GoalPlayerOnly:
			if entry.HasComponent(components.Player) {
				return entry, true
			}
		case components.GoalSpecificClone:
			if entry.HasComponent(components.Clone) {
				clone := components.Clone.Get(entry)
				if clone.Identity == goal.RequiredIdentity && clone.Replayer.State() == loop.StateReplaying {
					return entry, true
				}
			}
		default: // GoalAnyClone
			if entry.HasComponent(components.Clone) {
				clone := components.Clone.Get(entry)
				if clone.Replayer.State() == loop.StateReplaying {
					return entry, true
				}
			}
		}
	}

	return nil, false
}

func completeLevel(ecs *ecs.ECS, levelEntry *donburi.Entry) {
	levelData := components.Level.Get(levelEntry)
	levelData.Complete = true

	loopEntry, ok := components.Loop.First(ecs.World)
	if ok {
		levelData.CompletedAt = components.Loop.Get(loopEntry).Clock
	}

	name := ""
	if levelData.Current != nil {
		name = levelData.Current.Name
	}
	events.LevelComplete.Publish(ecs.World, events.LevelCompleteData{
		Name: name,
		Time: levelData.CompletedAt,
	})
}
