package loop

import (
	"log"

	"github.com/hollowmoor/echoes/gamemath"
)

// Defaults used when NewRecorder is given non-positive values.
const (
	DefaultSampleInterval = 0.02 // 50 Hz, aligned to the fixed timestep
	DefaultMaxDuration    = 30.0
)

// Recorder samples the live player's input and physics state at a fixed
// interval. It is driven with explicit timestamps (seconds, supplied by the
// fixed-timestep update) rather than wall-clock reads, which keeps it
// deterministic under test.
//
// Flag ownership: the input layer writes the continuous values (SetMovement,
// SetJumpHeld) and marks the one-shot events (MarkJump etc.) as they happen.
// The recorder consumes and clears the one-shot flags after every sample, so
// a discrete event is captured exactly once.
type Recorder struct {
	interval    float64
	maxDuration float64

	recording bool
	startTime float64
	buffer    Sequence

	// Buffered continuous input state.
	movement float64
	jumpHeld bool

	// Buffered one-shot flags, cleared after each sample.
	jump          bool
	dash          bool
	interact      bool
	attack        bool
	dashDirection gamemath.Vec2
}

// NewRecorder creates a recorder with the given sampling interval and max
// recording duration in seconds. Non-positive values fall back to defaults.
func NewRecorder(interval, maxDuration float64) *Recorder {
	if interval <= 0 {
		interval = DefaultSampleInterval
	}
	if maxDuration <= 0 {
		maxDuration = DefaultMaxDuration
	}
	return &Recorder{
		interval:    interval,
		maxDuration: maxDuration,
	}
}

// StartRecording clears any prior buffer and begins a new session with its
// clock epoch at now. Starting while already recording is tolerated: the
// previous session is stopped first so overlapping sessions can't interleave
// samples.
func (r *Recorder) StartRecording(now float64) {
	if r.recording {
		log.Printf("Warning: recorder restarted while recording; stopping previous session")
		r.StopRecording()
	}
	r.buffer = nil
	r.startTime = now
	r.recording = true
	r.clearOneShots()
}

// StopRecording ends the session. Calling it while not recording is a no-op.
func (r *Recorder) StopRecording() {
	r.recording = false
}

// Recording reports whether a session is active.
func (r *Recorder) Recording() bool {
	return r.recording
}

// SetMovement buffers the horizontal input axis, clamped to [-1, 1].
func (r *Recorder) SetMovement(axis float64) {
	r.movement = gamemath.ClampAxis(axis)
}

// SetJumpHeld buffers the continuous jump-held state.
func (r *Recorder) SetJumpHeld(held bool) {
	r.jumpHeld = held
}

// MarkJump flags a jump event for the next sample.
func (r *Recorder) MarkJump() {
	r.jump = true
}

// MarkDash flags a dash event with its direction for the next sample.
func (r *Recorder) MarkDash(direction gamemath.Vec2) {
	r.dash = true
	r.dashDirection = direction
}

// MarkInteract flags an interact event for the next sample.
func (r *Recorder) MarkInteract() {
	r.interact = true
}

// MarkAttack flags an attack/throw event for the next sample.
func (r *Recorder) MarkAttack() {
	r.attack = true
}

// RecordSample appends one sample built from the buffered input flags and
// the provided character state, then clears the one-shot flags. It must be
// called once per fixed-timestep tick, after the character's movement for
// that tick has been applied. No-ops when not recording, and auto-stops once
// the session exceeds the max duration ceiling.
func (r *Recorder) RecordSample(now float64, state CharacterState) {
	if !r.recording {
		return
	}

	elapsed := now - r.startTime
	if elapsed > r.maxDuration {
		log.Printf("Warning: recording exceeded max duration %.1fs; auto-stopping", r.maxDuration)
		r.recording = false
		return
	}

	r.buffer = append(r.buffer, PlayerAction{
		Timestamp:     elapsed,
		Movement:      r.movement,
		IsJumping:     r.jump,
		IsDashing:     r.dash,
		IsInteracting: r.interact,
		IsAttacking:   r.attack,
		JumpHeld:      r.jumpHeld,
		DashDirection: r.dashDirection,
		Position:      state.Position,
		Speed:         state.Velocity,
		ExternalForce: state.ExternalForce,
		Grounded:      state.Grounded,
		OnWall:        state.OnWall,
		FacingRight:   state.FacingRight,
	})

	r.clearOneShots()
}

func (r *Recorder) clearOneShots() {
	r.jump = false
	r.dash = false
	r.interact = false
	r.attack = false
	r.dashDirection = gamemath.Vec2{}
}

// PadToDuration extends the buffer with copies of the last sample, one
// sampling interval apart, until the final timestamp reaches target. Used so
// every clone in a cohort shares a uniform loop length no matter how early
// the player stopped acting. No-op when the buffer is empty or already long
// enough.
func (r *Recorder) PadToDuration(target float64) {
	if len(r.buffer) == 0 {
		return
	}
	last := r.buffer[len(r.buffer)-1]
	for r.buffer.Duration() < target {
		pad := last
		pad.Timestamp = r.buffer.Duration() + r.interval
		// Padded samples are "keep doing what you were doing": no
		// one-shot events repeat.
		pad.IsJumping = false
		pad.IsDashing = false
		pad.IsInteracting = false
		pad.IsAttacking = false
		pad.DashDirection = gamemath.Vec2{}
		r.buffer = append(r.buffer, pad)
	}
}

// Sequence returns a deep copy of everything recorded so far. Callers can
// never mutate the recorder's internal buffer through the result.
func (r *Recorder) Sequence() Sequence {
	return r.buffer.Clone()
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int {
	return len(r.buffer)
}

// Duration returns the recorded sequence's current duration in seconds.
func (r *Recorder) Duration() float64 {
	return r.buffer.Duration()
}

// Interval returns the configured sampling interval in seconds.
func (r *Recorder) Interval() float64 {
	return r.interval
}
