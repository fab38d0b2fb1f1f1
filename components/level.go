package components

import (
	"github.com/yohamta/donburi"

	"github.com/hollowmoor/echoes/leveldata"
)

type LevelData struct {
	Current *leveldata.Level
	// Complete is set when the level's goal condition is satisfied.
	Complete bool
	// CompletedAt is the game clock at completion, used for run times.
	CompletedAt float64
}

var Level = donburi.NewComponentType[LevelData]()
