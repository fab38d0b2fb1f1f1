package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/hollowmoor/echoes/components"
	cfg "github.com/hollowmoor/echoes/config"
	"github.com/hollowmoor/echoes/fonts"
)

// DrawHUD renders the loop timer bar, the clone population counter and the
// level-complete banner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	loopEntry, ok := components.Loop.First(ecs.World)
	if !ok {
		return
	}
	loopData := components.Loop.Get(loopEntry)

	margin := float32(cfg.UI.Margin)
	barW := float32(cfg.UI.LoopBarWidth)
	barH := float32(cfg.UI.LoopBarHeight)

	// Loop progress toward the next automatic snapshot.
	progress := (loopData.Clock - loopData.LoopStart) / cfg.Loop.LoopDuration
	if progress > 1 {
		progress = 1
	}

	vector.DrawFilledRect(screen, margin, margin, barW, barH, cfg.UI.LoopBarBgColor, false)
	vector.DrawFilledRect(screen, margin, margin, barW*float32(progress), barH, cfg.UI.LoopBarFgColor, false)

	face := fonts.HUD.Get()
	counter := fmt.Sprintf("echoes %d/%d", CloneCount(ecs), cfg.Loop.MaxClones)
	if stuck := StuckCount(ecs); stuck > 0 {
		counter += fmt.Sprintf("  (%d stuck)", stuck)
	}
	text.Draw(screen, counter, face, int(margin), int(margin+barH)+14, cfg.UI.TextColor)

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		levelData := components.Level.Get(levelEntry)
		if levelData.Complete {
			banner := fmt.Sprintf("level complete - %.1fs", levelData.CompletedAt)
			text.Draw(screen, banner, fonts.Title.Get(), cfg.C.Width/2-100, cfg.C.Height/2, cfg.GoalGold)
		}
	}
}
