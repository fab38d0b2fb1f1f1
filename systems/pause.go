package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/fonts"
)

var pauseMenuOptions = []string{"resume", "retry level", "exit to menu"}

// PauseActions is set by the scene so menu selections can retry the level
// or leave the game without the systems package importing scenes.
type PauseActions struct {
	Retry func()
	Exit  func()
}

var pauseActions PauseActions

// SetPauseActions installs the scene callbacks for the pause menu.
func SetPauseActions(a PauseActions) {
	pauseActions = a
}

// UpdatePause handles pause toggle and menu navigation.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
		if pause.IsPaused {
			pause.SelectedOption = components.MenuResume
		}
	}

	if !pause.IsPaused {
		return
	}

	// Navigate menu with wrap-around
	numOptions := len(pauseMenuOptions)
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		PlaySFX(ecs, cfg.SoundMenuSelect)
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.IsPaused = false
		case components.MenuRetry:
			if pauseActions.Retry != nil {
				pauseActions.Retry()
			}
		case components.MenuExit:
			if pauseActions.Exit != nil {
				pauseActions.Exit()
			}
		}
	}
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)
	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	fontFace := fonts.HUD.Get()
	itemHeight := 22.0
	startY := (height - float64(len(pauseMenuOptions))*itemHeight) / 2

	for i, option := range pauseMenuOptions {
		y := startY + float64(i)*itemHeight
		textColor := cfg.White
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.GoalGold
		}
		textWidth := len(option) * 7
		x := int((width - float64(textWidth)) / 2)
		text.Draw(screen, option, fontFace, x, int(y), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Resume"
	hintWidth := len(hint) * 5
	text.Draw(screen, hint, fonts.Small.Get(), int((width-float64(hintWidth))/2), int(height)-12, cfg.White)
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{})
	}
	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused or when
// the level is already complete.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		if levelEntry, ok := components.Level.First(e.World); ok {
			if components.Level.Get(levelEntry).Complete {
				return
			}
		}
		system(e)
	}
}
