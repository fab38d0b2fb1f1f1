// Package ui builds the ebitenui widget trees for the menu screens.
package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/hollowmoor/echoes/config"
)

// MenuUI is the main menu: level select, loop length, volume and quit.
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnPlay func(level string)
	OnQuit func()

	loopButton   *widget.Button
	volumeButton *widget.Button

	loopIndex   int
	volumeIndex int

	// Applied on change
	OnLoopDuration func(seconds float64)
	OnVolume       func(v float64)

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewMenuUI(levels []string, bestTimes map[string]float64) *MenuUI {
	mui := &MenuUI{
		loopIndex:   defaultLoopIndex(),
		volumeIndex: len(cfg.SettingsMenu.VolumeSteps) - 1,
	}
	mui.loadFonts()
	mui.buildUI(levels, bestTimes)
	return mui
}

func defaultLoopIndex() int {
	for i, s := range cfg.SettingsMenu.LoopDurationSteps {
		if s == cfg.Loop.LoopDuration {
			return i
		}
	}
	return 0
}

func (mui *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{Source: fontSource, Size: 28}
	mui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	mui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (mui *MenuUI) buildUI(levels []string, bestTimes map[string]float64) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(color.RGBA{18, 18, 28, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("ECHOES", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{235, 235, 235, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, level := range levels {
		name := level
		label := name
		if best, ok := bestTimes[name]; ok {
			label = fmt.Sprintf("%s  (best %.1fs)", name, best)
		}
		playButton := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 24)),
			widget.ButtonOpts.Image(mui.buttonImage()),
			widget.ButtonOpts.Text(label, &mui.normalFace, mui.buttonText()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if mui.OnPlay != nil {
					mui.OnPlay(name)
				}
			}),
		)
		contentContainer.AddChild(playButton)
	}

	mui.loopButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 22)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(mui.loopLabel(), &mui.smallFace, mui.buttonText()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			mui.loopIndex = (mui.loopIndex + 1) % len(cfg.SettingsMenu.LoopDurationSteps)
			seconds := cfg.SettingsMenu.LoopDurationSteps[mui.loopIndex]
			if mui.OnLoopDuration != nil {
				mui.OnLoopDuration(seconds)
			}
			mui.loopButton.Text().Label = mui.loopLabel()
		}),
	)
	contentContainer.AddChild(mui.loopButton)

	mui.volumeButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 22)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(mui.volumeLabel(), &mui.smallFace, mui.buttonText()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			mui.volumeIndex = (mui.volumeIndex + 1) % len(cfg.SettingsMenu.VolumeSteps)
			if mui.OnVolume != nil {
				mui.OnVolume(cfg.SettingsMenu.VolumeSteps[mui.volumeIndex])
			}
			mui.volumeButton.Text().Label = mui.volumeLabel()
		}),
	)
	contentContainer.AddChild(mui.volumeButton)

	quitButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 22)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text("quit", &mui.smallFace, mui.buttonText()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnQuit != nil {
				mui.OnQuit()
			}
		}),
	)
	contentContainer.AddChild(quitButton)

	rootContainer.AddChild(contentContainer)
	mui.UI = &ebitenui.UI{Container: rootContainer}
}

func (mui *MenuUI) loopLabel() string {
	return fmt.Sprintf("loop length: %.0fs", cfg.SettingsMenu.LoopDurationSteps[mui.loopIndex])
}

func (mui *MenuUI) volumeLabel() string {
	return fmt.Sprintf("volume: %.0f%%", cfg.SettingsMenu.VolumeSteps[mui.volumeIndex]*100)
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := eimage.NewNineSliceColor(color.RGBA{45, 45, 60, 255})
	hover := eimage.NewNineSliceColor(color.RGBA{60, 60, 85, 255})
	pressed := eimage.NewNineSliceColor(color.RGBA{35, 35, 45, 255})
	return &widget.ButtonImage{Idle: idle, Hover: hover, Pressed: pressed}
}

func (mui *MenuUI) buttonText() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}
}
