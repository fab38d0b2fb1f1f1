package config

// StateID identifies a character animation/behavior state.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
	WallSlide
	Dash
	Throw
)

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jump:
		return "jump"
	case WallSlide:
		return "wallslide"
	case Dash:
		return "dash"
	case Throw:
		return "throw"
	}
	return "none"
}
