package components

import (
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects requested during the tick; the audio
// system drains the queue once per frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
