package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/gamemath"
	"github.com/hollowmoor/echoes/loop"
	"github.com/hollowmoor/echoes/systems/factory"
)

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 640, 360, 16, 16)
	factory.CreateLoopState(e, 48, 300)
	return e
}

func loopEntryOf(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := components.Loop.First(e.World)
	if !ok {
		t.Fatal("loop state missing")
	}
	return entry
}

func walkSequence(startX, y float64) loop.Sequence {
	seq := make(loop.Sequence, 0, 3)
	for i := 0; i < 3; i++ {
		seq = append(seq, loop.PlayerAction{
			Timestamp: float64(i) * 0.02,
			Movement:  1,
			Position:  gamemath.Vec2{X: startX + float64(i)*2, Y: y},
			Speed:     gamemath.Vec2{X: 2, Y: 0},
		})
	}
	return seq
}

func TestPopulationCapEvictsOldestFirst(t *testing.T) {
	prev := cfg.Loop.MaxClones
	cfg.Loop.MaxClones = 2
	defer func() { cfg.Loop.MaxClones = prev }()

	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)

	a := CreateCloneFromSequence(e, loopEntry, walkSequence(10, 50))
	b := CreateCloneFromSequence(e, loopEntry, walkSequence(20, 50))
	c := CreateCloneFromSequence(e, loopEntry, walkSequence(30, 50))

	if got := CloneCount(e); got != 2 {
		t.Fatalf("CloneCount = %d, want 2", got)
	}
	if a.Valid() {
		t.Error("oldest clone should have been destroyed")
	}
	if !b.Valid() || !c.Valid() {
		t.Error("newer clones should survive eviction")
	}

	loopData := components.Loop.Get(loopEntry)
	wantIdentities := []int{2, 3}
	for i, entry := range loopData.Clones {
		if got := components.Clone.Get(entry).Identity; got != wantIdentities[i] {
			t.Errorf("clone[%d] identity = %d, want %d", i, got, wantIdentities[i])
		}
	}
	if loopData.NextIdentity != 4 {
		t.Errorf("NextIdentity = %d, want 4", loopData.NextIdentity)
	}
}

func TestEvictionKeepsArrivalOrder(t *testing.T) {
	prev := cfg.Loop.MaxClones
	cfg.Loop.MaxClones = 2
	defer func() { cfg.Loop.MaxClones = prev }()

	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)

	for i := 0; i < 5; i++ {
		CreateCloneFromSequence(e, loopEntry, walkSequence(float64(10+i*10), 50))
	}

	loopData := components.Loop.Get(loopEntry)
	if len(loopData.Clones) != 2 {
		t.Fatalf("population = %d, want 2", len(loopData.Clones))
	}
	first := components.Clone.Get(loopData.Clones[0]).Identity
	second := components.Clone.Get(loopData.Clones[1]).Identity
	if first != 4 || second != 5 {
		t.Errorf("surviving identities = %d,%d, want 4,5", first, second)
	}
}

func TestRetractMovesPlayerOntoTargetClone(t *testing.T) {
	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)
	playerEntry := factory.CreatePlayer(e, 48, 300)

	cloneEntry := CreateCloneFromSequence(e, loopEntry, walkSequence(100, 80))
	cloneObj := components.Object.Get(cloneEntry).Object
	cloneObj.X, cloneObj.Y = 140, 72
	cloneObj.Update()
	clonePhysics := components.Physics.Get(cloneEntry)
	clonePhysics.SpeedX, clonePhysics.SpeedY = 3.5, -1.25

	// Player has wandered off since the snapshot.
	obj := components.Object.Get(playerEntry).Object
	obj.X, obj.Y = 400, 200
	physics := components.Physics.Get(playerEntry)
	physics.SpeedX, physics.SpeedY = -5, 9

	if !RetractToLast(e, loopEntry, playerEntry) {
		t.Fatal("retract should succeed with a non-stuck clone present")
	}

	// The target itself survives; only newer clones would be destroyed.
	if got := CloneCount(e); got != 1 {
		t.Fatalf("CloneCount = %d, want 1 after retract", got)
	}
	if obj.X != 140 || obj.Y != 72 {
		t.Errorf("player position = (%v,%v), want (140,72)", obj.X, obj.Y)
	}
	if physics.SpeedX != 3.5 || physics.SpeedY != -1.25 {
		t.Errorf("player velocity = (%v,%v), want (3.5,-1.25)", physics.SpeedX, physics.SpeedY)
	}
	if !components.Recorder.Get(playerEntry).Recorder.Recording() {
		t.Error("recorder should restart after retract")
	}
}

func TestRetractDestroysStuckClonesNewerThanTarget(t *testing.T) {
	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)
	playerEntry := factory.CreatePlayer(e, 48, 300)

	first := CreateCloneFromSequence(e, loopEntry, walkSequence(10, 50))
	second := CreateCloneFromSequence(e, loopEntry, walkSequence(20, 50))
	third := CreateCloneFromSequence(e, loopEntry, walkSequence(30, 50))
	StickClone(e, third)

	if !RetractToLast(e, loopEntry, playerEntry) {
		t.Fatal("retract should succeed when a non-stuck clone exists")
	}

	if third.Valid() {
		t.Error("stuck clone newer than the target should be destroyed")
	}
	if !first.Valid() || !second.Valid() {
		t.Error("target and older clones must survive")
	}
	obj := components.Object.Get(playerEntry).Object
	targetObj := components.Object.Get(second).Object
	if obj.X != targetObj.X || obj.Y != targetObj.Y {
		t.Errorf("player should land on the target clone's position")
	}
}

func TestRetractWithStuckBetweenNewerClonesIsNoOp(t *testing.T) {
	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)
	playerEntry := factory.CreatePlayer(e, 48, 300)

	first := CreateCloneFromSequence(e, loopEntry, walkSequence(10, 50))
	second := CreateCloneFromSequence(e, loopEntry, walkSequence(20, 50))
	third := CreateCloneFromSequence(e, loopEntry, walkSequence(30, 50))
	StickClone(e, first)

	if !RetractToLast(e, loopEntry, playerEntry) {
		t.Fatal("retract should succeed")
	}
	if !first.Valid() || !second.Valid() || !third.Valid() {
		t.Error("no clone is newer than the target; none should be destroyed")
	}
	if got := CloneCount(e); got != 3 {
		t.Errorf("CloneCount = %d, want 3", got)
	}
}

func TestRetractRejectedWhenAllStuckOrEmpty(t *testing.T) {
	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)
	playerEntry := factory.CreatePlayer(e, 48, 300)

	if RetractToLast(e, loopEntry, playerEntry) {
		t.Fatal("retract must fail with an empty population")
	}

	cloneEntry := CreateCloneFromSequence(e, loopEntry, walkSequence(10, 50))
	StickClone(e, cloneEntry)

	obj := components.Object.Get(playerEntry).Object
	wantX, wantY := obj.X, obj.Y

	if RetractToLast(e, loopEntry, playerEntry) {
		t.Fatal("retract must fail when every clone is stuck")
	}
	if !cloneEntry.Valid() {
		t.Error("failed retract must not destroy clones")
	}
	if obj.X != wantX || obj.Y != wantY {
		t.Error("failed retract must not move the player")
	}
}

func TestStuckIsTerminalAndFreezesBody(t *testing.T) {
	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)

	cloneEntry := CreateCloneFromSequence(e, loopEntry, walkSequence(10, 50))
	clone := components.Clone.Get(cloneEntry)

	StickClone(e, cloneEntry)
	if got := clone.Replayer.State(); got != loop.StateStuck {
		t.Fatalf("state = %v, want stuck", got)
	}
	if !components.Physics.Get(cloneEntry).Frozen {
		t.Error("stuck clone body should be frozen")
	}

	// Sticking twice must not panic or publish again; state stays stuck.
	StickClone(e, cloneEntry)
	drv := &entryDriver{ecs: e, entry: cloneEntry}
	clone.Replayer.Start(1.0, drv)
	if got := clone.Replayer.State(); got != loop.StateStuck {
		t.Errorf("state after restart attempt = %v, want stuck", got)
	}
}

func TestNewestCloneTracksCreationOrder(t *testing.T) {
	e := newTestECS(t)
	loopEntry := loopEntryOf(t, e)

	if NewestClone(e) != nil {
		t.Fatal("NewestClone should be nil with empty population")
	}

	CreateCloneFromSequence(e, loopEntry, walkSequence(10, 50))
	latest := CreateCloneFromSequence(e, loopEntry, walkSequence(20, 50))

	if got := NewestClone(e); got != latest {
		t.Errorf("NewestClone = %v, want latest created", got)
	}
}
