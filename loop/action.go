package loop

import "github.com/hollowmoor/echoes/gamemath"

// PlayerAction is one recorded sample of input and physics state, taken at
// a fixed interval while the live player acts. A sequence of these is enough
// to reproduce the player's behavior frame by frame.
type PlayerAction struct {
	// Timestamp is seconds since recording start. Monotonically increasing
	// across a sequence; the final entry defines the replay duration.
	Timestamp float64

	// Movement is the horizontal input axis in [-1, 1].
	Movement float64

	// One-shot flags: true only on the sample where the action began.
	IsJumping     bool
	IsDashing     bool
	IsInteracting bool
	IsAttacking   bool

	// JumpHeld is continuous state, independent of IsJumping. The replay
	// side detects the held->released edge to reproduce short hops.
	JumpHeld bool

	// DashDirection is only meaningful when IsDashing is set.
	DashDirection gamemath.Vec2

	// Physics state at sample time. Speed is self-propelled velocity;
	// ExternalForce is wind/pusher influence recorded separately.
	Position      gamemath.Vec2
	Speed         gamemath.Vec2
	ExternalForce gamemath.Vec2

	// Contact and facing state from the character at sample time.
	Grounded    bool
	OnWall      bool
	FacingRight bool
}

// Sequence is an ordered list of samples. Once handed to a replayer it is
// never shared: every hand-off copies, so a clone's in-progress replay can't
// be corrupted by the still-recording player or vice versa.
type Sequence []PlayerAction

// Clone returns a deep copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}

// Duration returns the final sample's timestamp, or 0 for an empty sequence.
func (s Sequence) Duration() float64 {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].Timestamp
}

// CharacterState is the read side of the character collaborator: everything
// the recorder snapshots per sample.
type CharacterState struct {
	Position      gamemath.Vec2
	Velocity      gamemath.Vec2
	ExternalForce gamemath.Vec2
	Grounded      bool
	OnWall        bool
	FacingRight   bool
}
