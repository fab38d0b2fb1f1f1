package components

import "github.com/yohamta/donburi"

// PauseMenuOption identifies entries in the pause menu.
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuRetry
	MenuExit
)

type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
}

var Pause = donburi.NewComponentType[PauseData]()
