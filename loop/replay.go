package loop

import (
	"log"

	"github.com/hollowmoor/echoes/gamemath"
)

// ReplayState is a replayer's lifecycle state.
type ReplayState int

const (
	// StateIdle: has data but is not advancing. Both the initial state and
	// the paused state entered by Stop.
	StateIdle ReplayState = iota
	// StateReplaying: actively re-executing the sequence.
	StateReplaying
	// StateStuck: terminal. A goal claimed this clone; it never moves again.
	StateStuck
)

func (s ReplayState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateReplaying:
		return "replaying"
	case StateStuck:
		return "stuck"
	}
	return "unknown"
}

// RestartPolicy selects where a clone is placed when its sequence wraps
// around for another pass. The baseline snaps back to the loop anchor; the
// alternative snaps to the sequence's own first recorded position.
type RestartPolicy int

const (
	RestartAtAnchor RestartPolicy = iota
	RestartAtFirstSample
)

// CharacterDriver is the write side of the character collaborator: the
// commands a replayer issues to drive a clone's body. The live player's
// controller and the clone both sit behind this same surface.
type CharacterDriver interface {
	ApplyMovement(axis float64)
	Jump()
	EndJump()
	Dash(direction gamemath.Vec2)
	Interact()
	Throw()
	Carrying() bool
	SetPosition(pos gamemath.Vec2)
	SetKinematics(velocity, externalForce gamemath.Vec2)
}

// Replayer re-executes a recorded sequence against a live level. It owns its
// copy of the sequence and is polled every frame with the current time; no
// part of replay is asynchronous.
//
// Every executed sample hard-corrects the character's position and velocity
// to the recorded values. Without that, small divergence against the live
// environment (a door that is open now but wasn't, a clone standing in the
// way) accumulates into visible desync.
type Replayer struct {
	sequence Sequence
	identity int

	cursor       int
	loopStart    float64
	state        ReplayState
	lastExecuted int
	prevJumpHeld bool

	policy RestartPolicy
	anchor gamemath.Vec2
}

// NewReplayer creates a replayer with its own deep copy of seq. An empty
// sequence is tolerated: the replayer warns and becomes a zero-duration
// no-op so a degenerate recording can't crash the loop.
func NewReplayer(seq Sequence, identity int) *Replayer {
	if len(seq) == 0 {
		log.Printf("Warning: clone %d initialized with empty sequence; replay will do nothing", identity)
	}
	return &Replayer{
		sequence:     seq.Clone(),
		identity:     identity,
		lastExecuted: -1,
	}
}

// SetRestartPolicy configures what happens when the sequence wraps around.
// anchor is the loop coordinator's spawn point, used by RestartAtAnchor.
func (rp *Replayer) SetRestartPolicy(policy RestartPolicy, anchor gamemath.Vec2) {
	rp.policy = policy
	rp.anchor = anchor
}

// Identity returns the creation-order index assigned by the coordinator.
func (rp *Replayer) Identity() int {
	return rp.identity
}

// State returns the current lifecycle state.
func (rp *Replayer) State() ReplayState {
	return rp.state
}

// Cursor returns the index of the next action to execute.
func (rp *Replayer) Cursor() int {
	return rp.cursor
}

// Duration returns the sequence's total replay duration in seconds.
func (rp *Replayer) Duration() float64 {
	return rp.sequence.Duration()
}

// Sequence returns a deep copy of the replayer's sequence.
func (rp *Replayer) Sequence() Sequence {
	return rp.sequence.Clone()
}

// Start begins (or resumes from Idle) a replay pass at time now. The first
// sample's position and kinematics are applied immediately so the replay is
// anchored to the recorded start point regardless of where the clone entity
// was instantiated.
func (rp *Replayer) Start(now float64, drv CharacterDriver) {
	if rp.state == StateStuck {
		log.Printf("Warning: clone %d is stuck; ignoring replay start", rp.identity)
		return
	}
	if rp.state == StateReplaying {
		log.Printf("Warning: clone %d replay already running; ignoring start", rp.identity)
		return
	}
	if drv == nil {
		log.Printf("Error: clone %d has no character driver; replay aborted", rp.identity)
		return
	}
	if len(rp.sequence) == 0 {
		return
	}

	rp.cursor = 0
	rp.loopStart = now
	rp.lastExecuted = -1
	rp.prevJumpHeld = false
	rp.state = StateReplaying

	first := rp.sequence[0]
	drv.SetPosition(first.Position)
	drv.SetKinematics(first.Speed, first.ExternalForce)
}

// Stop pauses the replay. Unlike SetStuck this is resumable: a later Start
// begins a fresh pass.
func (rp *Replayer) Stop() {
	if rp.state == StateReplaying {
		rp.state = StateIdle
	}
}

// SetStuck permanently halts the replay. Terminal for this clone's life;
// the caller is responsible for freezing the body at the physics level.
func (rp *Replayer) SetStuck() {
	rp.state = StateStuck
}

// Step advances the replay to time now, executing every action whose
// timestamp has been reached and issuing its commands to drv. Between
// samples the last executed sample's movement keeps being applied, because
// samples are sparser than frames and the character must keep moving at the
// last commanded rate rather than freeze. When the sequence is exhausted the
// pass restarts per the configured policy.
func (rp *Replayer) Step(now float64, drv CharacterDriver) {
	if rp.state != StateReplaying {
		return
	}
	if drv == nil {
		log.Printf("Error: clone %d stepped without a character driver", rp.identity)
		return
	}

	elapsed := now - rp.loopStart
	for rp.cursor < len(rp.sequence) && rp.sequence[rp.cursor].Timestamp <= elapsed {
		rp.execute(rp.sequence[rp.cursor], drv)
		rp.lastExecuted = rp.cursor
		rp.cursor++
	}

	if rp.lastExecuted >= 0 {
		drv.ApplyMovement(rp.sequence[rp.lastExecuted].Movement)
	}

	if rp.cursor >= len(rp.sequence) {
		rp.restart(now, drv)
	}
}

func (rp *Replayer) execute(a PlayerAction, drv CharacterDriver) {
	// Hard correction: re-assert recorded physics state on every sample,
	// not just at replay start.
	drv.SetPosition(a.Position)
	drv.SetKinematics(a.Speed, a.ExternalForce)

	if a.IsJumping {
		drv.Jump()
	}
	// Variable jump height: end-jump fires exactly on the held->released
	// transition between executed samples, reproducing an early release on
	// the frame it happened rather than on every JumpHeld=false sample.
	if rp.prevJumpHeld && !a.JumpHeld {
		drv.EndJump()
	}
	rp.prevJumpHeld = a.JumpHeld

	if a.IsDashing {
		drv.Dash(a.DashDirection)
	}
	if a.IsInteracting {
		drv.Interact()
	}
	if a.IsAttacking && drv.Carrying() {
		drv.Throw()
	}
}

func (rp *Replayer) restart(now float64, drv CharacterDriver) {
	rp.cursor = 0
	rp.loopStart = now
	rp.lastExecuted = -1
	rp.prevJumpHeld = false

	switch rp.policy {
	case RestartAtFirstSample:
		drv.SetPosition(rp.sequence[0].Position)
	default:
		drv.SetPosition(rp.anchor)
	}
}
