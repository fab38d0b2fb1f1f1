package systems

import (
	"testing"

	"github.com/hollowmoor/echoes/components"
	"github.com/hollowmoor/echoes/loop"
	"github.com/hollowmoor/echoes/systems/factory"
	"github.com/hollowmoor/echoes/tags"
)

func TestAnyCloneGoalClaimedByReplayingClone(t *testing.T) {
	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)

	goalEntry := factory.CreateGoal(e, 100, 100, 32, 32, components.GoalAnyClone, 0)
	cloneEntry := CreateCloneFromSequence(e, loopEntry, walkSequence(104, 100))

	UpdateGoals(e)

	goal := components.Goal.Get(goalEntry)
	if !goal.Claimed {
		t.Fatal("goal should be claimed by overlapping replaying clone")
	}
	if goal.ClaimedBy != 1 {
		t.Errorf("ClaimedBy = %d, want 1", goal.ClaimedBy)
	}

	// Claiming anchors the clone at the goal.
	if got := components.Clone.Get(cloneEntry).Replayer.State(); got != loop.StateStuck {
		t.Errorf("claiming clone state = %v, want stuck", got)
	}
	if !components.Physics.Get(cloneEntry).Frozen {
		t.Error("claiming clone body should freeze at the goal")
	}
}

func TestStuckCloneCannotClaimGoal(t *testing.T) {
	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)

	goalEntry := factory.CreateGoal(e, 100, 100, 32, 32, components.GoalAnyClone, 0)
	cloneEntry := CreateCloneFromSequence(e, loopEntry, walkSequence(104, 100))
	StickClone(e, cloneEntry)

	UpdateGoals(e)

	if components.Goal.Get(goalEntry).Claimed {
		t.Error("stuck clone must not claim a goal")
	}
}

func TestSpecificCloneGoalChecksIdentity(t *testing.T) {
	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)

	goalEntry := factory.CreateGoal(e, 100, 100, 32, 32, components.GoalSpecificClone, 2)

	// Identity 1 overlaps but the goal wants identity 2.
	CreateCloneFromSequence(e, loopEntry, walkSequence(104, 100))
	UpdateGoals(e)
	if components.Goal.Get(goalEntry).Claimed {
		t.Fatal("wrong identity must not claim goal")
	}

	CreateCloneFromSequence(e, loopEntry, walkSequence(104, 100))
	UpdateGoals(e)
	goal := components.Goal.Get(goalEntry)
	if !goal.Claimed || goal.ClaimedBy != 2 {
		t.Errorf("claimed=%v by %d, want claimed by 2", goal.Claimed, goal.ClaimedBy)
	}
}

func TestPlayerOnlyGoalRejectsClones(t *testing.T) {
	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)

	goalEntry := factory.CreateGoal(e, 100, 100, 32, 32, components.GoalPlayerOnly, 0)
	CreateCloneFromSequence(e, loopEntry, walkSequence(104, 100))

	UpdateGoals(e)
	if components.Goal.Get(goalEntry).Claimed {
		t.Fatal("clone must not claim a player-only goal")
	}

	factory.CreatePlayer(e, 104, 96)
	UpdateGoals(e)
	goal := components.Goal.Get(goalEntry)
	if !goal.Claimed {
		t.Fatal("player should claim a player-only goal")
	}
	if goal.ClaimedBy != -1 {
		t.Errorf("ClaimedBy = %d, want -1 for the live player", goal.ClaimedBy)
	}
}

func TestClaimedGoalStaysClaimedAfterClaimantDestroyed(t *testing.T) {
	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)

	goalEntry := factory.CreateGoal(e, 100, 100, 32, 32, components.GoalAnyClone, 0)
	cloneEntry := CreateCloneFromSequence(e, loopEntry, walkSequence(104, 100))

	UpdateGoals(e)
	if !components.Goal.Get(goalEntry).Claimed {
		t.Fatal("goal should be claimed")
	}

	// Evicting the anchored clone does not release its goal.
	e.World.Remove(cloneEntry.Entity())

	UpdateGoals(e)
	if !components.Goal.Get(goalEntry).Claimed {
		t.Error("claim must persist after the claiming clone is destroyed")
	}
}

func TestAllGoalsClaimedCompletesLevel(t *testing.T) {
	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)
	levelEntry := e.World.Entry(e.World.Create(components.Level))
	components.Level.SetValue(levelEntry, components.LevelData{})

	factory.CreateGoal(e, 100, 100, 32, 32, components.GoalAnyClone, 0)
	factory.CreateGoal(e, 200, 100, 32, 32, components.GoalAnyClone, 0)
	CreateCloneFromSequence(e, loopEntry, walkSequence(104, 100))

	UpdateGoals(e)
	if components.Level.Get(levelEntry).Complete {
		t.Fatal("level must not complete with an unclaimed goal")
	}

	CreateCloneFromSequence(e, loopEntry, walkSequence(204, 100))
	UpdateGoals(e)
	if !components.Level.Get(levelEntry).Complete {
		t.Error("level should complete once every goal is claimed")
	}
}

func TestPressureSwitchOpensAndClosesLinkedDoor(t *testing.T) {
	e := newTestECS(t)

	factory.CreateSwitch(e, 100, 200, 1)
	doorEntry := factory.CreateDoor(e, 300, 160, 16, 48, 1)
	crateEntry := factory.CreateCarryable(e, 101, 198)

	doorObj := components.Object.Get(doorEntry).Object
	if !doorObj.HasTags(tags.ResolvSolid) {
		t.Fatal("closed door should be solid")
	}

	UpdateSwitches(e)
	if !components.Door.Get(doorEntry).Open {
		t.Fatal("crate on switch should open the linked door")
	}
	if doorObj.HasTags(tags.ResolvSolid) {
		t.Error("open door must not be solid")
	}

	crateObj := components.Object.Get(crateEntry).Object
	crateObj.X = 500
	crateObj.Update()

	UpdateSwitches(e)
	if components.Door.Get(doorEntry).Open {
		t.Error("door should close when the switch is released")
	}
	if !doorObj.HasTags(tags.ResolvSolid) {
		t.Error("closed door should be solid again")
	}
}

func TestSwitchIgnoresUnlinkedDoor(t *testing.T) {
	e := newTestECS(t)

	factory.CreateSwitch(e, 100, 200, 1)
	otherDoor := factory.CreateDoor(e, 300, 160, 16, 48, 2)
	factory.CreateCarryable(e, 101, 198)

	UpdateSwitches(e)
	if components.Door.Get(otherDoor).Open {
		t.Error("switch must only open doors sharing its link")
	}
}
