package components

import "github.com/yohamta/donburi"

// SwitchData is a pressure switch held down by any character or carryable
// resting on it. Puzzle logic beyond the boolean trigger lives in whatever
// consumes LinkID.
type SwitchData struct {
	LinkID int // Tiled property linking switches to doors
	On     bool
}

var Switch = donburi.NewComponentType[SwitchData]()

// DoorData is a solid obstacle opened while any switch with a matching
// LinkID is on.
type DoorData struct {
	LinkID int
	Open   bool
}

var Door = donburi.NewComponentType[DoorData]()

// CarryableData marks an object that can be picked up with interact and
// thrown with the attack command.
type CarryableData struct {
	CarriedBy *donburi.Entry // nil when on the ground
}

var Carryable = donburi.NewComponentType[CarryableData]()
