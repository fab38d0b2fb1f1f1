package loop

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/hollowmoor/echoes/gamemath"
)

// scriptDriver records every command it receives, in order.
type scriptDriver struct {
	commands []string
	carrying bool
	pos      gamemath.Vec2
	vel      gamemath.Vec2
	force    gamemath.Vec2
}

func (d *scriptDriver) log(format string, args ...any) {
	d.commands = append(d.commands, fmt.Sprintf(format, args...))
}

func (d *scriptDriver) ApplyMovement(axis float64) { d.log("move %.2f", axis) }
func (d *scriptDriver) Jump()                      { d.log("jump") }
func (d *scriptDriver) EndJump()                   { d.log("endjump") }
func (d *scriptDriver) Dash(dir gamemath.Vec2)     { d.log("dash %.0f,%.0f", dir.X, dir.Y) }
func (d *scriptDriver) Interact()                  { d.log("interact") }
func (d *scriptDriver) Throw()                     { d.log("throw") }
func (d *scriptDriver) Carrying() bool             { return d.carrying }

func (d *scriptDriver) SetPosition(pos gamemath.Vec2) {
	d.pos = pos
	d.log("pos %.1f,%.1f", pos.X, pos.Y)
}

func (d *scriptDriver) SetKinematics(vel, force gamemath.Vec2) {
	d.vel, d.force = vel, force
	d.log("kin %.1f,%.1f %.1f,%.1f", vel.X, vel.Y, force.X, force.Y)
}

func (d *scriptDriver) count(cmd string) int {
	n := 0
	for _, c := range d.commands {
		if c == cmd {
			n++
		}
	}
	return n
}

func threeSampleSequence() Sequence {
	return Sequence{
		{Timestamp: 0, Movement: 1.0, Position: gamemath.Vec2{X: 10, Y: 20}},
		{Timestamp: 0.02, Movement: 1.0, IsJumping: true, Position: gamemath.Vec2{X: 12, Y: 20}},
		{Timestamp: 0.04, Movement: 1.0, Position: gamemath.Vec2{X: 14, Y: 19}},
	}
}

func TestBasicRoundTrip(t *testing.T) {
	rp := NewReplayer(threeSampleSequence(), 0)
	drv := &scriptDriver{}

	rp.Start(0, drv)
	if rp.State() != StateReplaying {
		t.Fatalf("state after start: %v", rp.State())
	}
	// Start anchors to the first sample before any action executes.
	if drv.pos != (gamemath.Vec2{X: 10, Y: 20}) {
		t.Errorf("start did not snap to first sample position: %+v", drv.pos)
	}

	rp.Step(0.03, drv)
	if rp.Cursor() != 2 {
		t.Errorf("cursor after stepping to t=0.03: got %d, want 2", rp.Cursor())
	}
	if n := drv.count("jump"); n != 1 {
		t.Errorf("jump commands: got %d, want 1", n)
	}
}

func TestReplayDeterminism(t *testing.T) {
	seq := threeSampleSequence()
	times := []float64{0, 0.01, 0.02, 0.03, 0.04, 0.05}

	run := func() []string {
		rp := NewReplayer(seq, 0)
		rp.SetRestartPolicy(RestartAtAnchor, gamemath.Vec2{X: 5, Y: 5})
		drv := &scriptDriver{}
		rp.Start(times[0], drv)
		for _, now := range times[1:] {
			rp.Step(now, drv)
		}
		return drv.commands
	}

	first := run()
	second := run()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("replay runs diverged:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestLoopRestartAtAnchor(t *testing.T) {
	anchor := gamemath.Vec2{X: 100, Y: 200}
	rp := NewReplayer(threeSampleSequence(), 0)
	rp.SetRestartPolicy(RestartAtAnchor, anchor)
	drv := &scriptDriver{}

	rp.Start(0, drv)
	rp.Step(0.05, drv) // past the 0.04 end: every action executed, then restart
	if rp.Cursor() != 0 {
		t.Errorf("cursor after wrap: got %d, want 0", rp.Cursor())
	}
	if drv.pos != anchor {
		t.Errorf("restart position: got %+v, want anchor %+v", drv.pos, anchor)
	}

	// Second pass re-executes from the first action without intervention.
	drv.commands = nil
	rp.Step(0.05, drv) // elapsed 0 relative to the new loop start
	if rp.Cursor() != 1 {
		t.Errorf("cursor on second pass: got %d, want 1", rp.Cursor())
	}
}

func TestLoopRestartAtFirstSample(t *testing.T) {
	rp := NewReplayer(threeSampleSequence(), 0)
	rp.SetRestartPolicy(RestartAtFirstSample, gamemath.Vec2{X: 100, Y: 200})
	drv := &scriptDriver{}

	rp.Start(0, drv)
	rp.Step(0.05, drv)
	if want := (gamemath.Vec2{X: 10, Y: 20}); drv.pos != want {
		t.Errorf("restart position: got %+v, want first sample %+v", drv.pos, want)
	}
}

func TestEndJumpFiresOnceOnReleaseEdge(t *testing.T) {
	seq := Sequence{
		{Timestamp: 0, JumpHeld: true, IsJumping: true},
		{Timestamp: 0.02, JumpHeld: true},
		{Timestamp: 0.04, JumpHeld: false},
		{Timestamp: 0.06, JumpHeld: false},
		{Timestamp: 0.08, JumpHeld: false},
	}
	rp := NewReplayer(seq, 0)
	drv := &scriptDriver{}

	rp.Start(0, drv)
	rp.Step(0.09, drv)
	if n := drv.count("endjump"); n != 1 {
		t.Errorf("endjump commands: got %d, want 1 (on the release edge only)", n)
	}
}

func TestContinuousMovementBetweenSamples(t *testing.T) {
	rp := NewReplayer(threeSampleSequence(), 0)
	drv := &scriptDriver{}

	rp.Start(0, drv)
	rp.Step(0.005, drv) // executes sample 0
	drv.commands = nil
	rp.Step(0.01, drv) // between samples: no action executes
	if rp.Cursor() != 1 {
		t.Fatalf("cursor: got %d, want 1", rp.Cursor())
	}
	if n := drv.count("move 1.00"); n != 1 {
		t.Errorf("expected last sample's movement re-applied between samples, commands: %v", drv.commands)
	}
}

func TestThrowOnlyWhileCarrying(t *testing.T) {
	seq := Sequence{
		{Timestamp: 0, IsAttacking: true},
		{Timestamp: 0.02, IsAttacking: true},
	}

	drv := &scriptDriver{carrying: false}
	rp := NewReplayer(seq, 0)
	rp.Start(0, drv)
	rp.Step(0.001, drv)
	if n := drv.count("throw"); n != 0 {
		t.Errorf("throw issued while not carrying: %d", n)
	}

	drv.carrying = true
	rp.Step(0.02, drv)
	if n := drv.count("throw"); n != 1 {
		t.Errorf("throw commands while carrying: got %d, want 1", n)
	}
}

func TestStuckIsTerminal(t *testing.T) {
	rp := NewReplayer(threeSampleSequence(), 0)
	drv := &scriptDriver{}

	rp.Start(0, drv)
	rp.SetStuck()
	if rp.State() != StateStuck {
		t.Fatalf("state after SetStuck: %v", rp.State())
	}

	rp.Start(1.0, drv)
	if rp.State() != StateStuck {
		t.Errorf("start revived a stuck clone: %v", rp.State())
	}

	n := len(drv.commands)
	rp.Step(2.0, drv)
	if len(drv.commands) != n {
		t.Errorf("stuck clone issued commands: %v", drv.commands[n:])
	}
}

func TestStopPausesAndStartResumes(t *testing.T) {
	rp := NewReplayer(threeSampleSequence(), 0)
	drv := &scriptDriver{}

	rp.Start(0, drv)
	rp.Stop()
	if rp.State() != StateIdle {
		t.Fatalf("state after stop: %v", rp.State())
	}

	n := len(drv.commands)
	rp.Step(0.05, drv)
	if len(drv.commands) != n {
		t.Error("stopped replayer issued commands")
	}

	rp.Start(1.0, drv)
	if rp.State() != StateReplaying {
		t.Errorf("stop was not resumable: %v", rp.State())
	}
}

func TestEmptySequenceDoesNothing(t *testing.T) {
	rp := NewReplayer(nil, 3)
	drv := &scriptDriver{}

	rp.Start(0, drv)
	if rp.State() != StateIdle {
		t.Errorf("empty replayer started: %v", rp.State())
	}
	rp.Step(1.0, drv)
	if len(drv.commands) != 0 {
		t.Errorf("empty replayer issued commands: %v", drv.commands)
	}
}

func TestStartWithoutDriverAborts(t *testing.T) {
	rp := NewReplayer(threeSampleSequence(), 0)
	rp.Start(0, nil)
	if rp.State() != StateIdle {
		t.Errorf("replay started without a driver: %v", rp.State())
	}
}

func TestHardCorrectionOnEverySample(t *testing.T) {
	rp := NewReplayer(threeSampleSequence(), 0)
	drv := &scriptDriver{}

	rp.Start(0, drv)
	rp.Step(0.05, drv)

	// Drift the body, then let the next pass correct it.
	drv.pos = gamemath.Vec2{X: -50, Y: -50}
	rp.Step(0.05, drv) // wraps to the new pass; executes sample 0
	if drv.pos != (gamemath.Vec2{X: 10, Y: 20}) {
		t.Errorf("sample execution did not hard-correct position: %+v", drv.pos)
	}
}
