package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/boink/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// RoundOverUI is the overlay shown once a round has a winner.
type RoundOverUI struct {
	UI *ebitenui.UI

	OnFightAgain func()

	winnerLabel *widget.Label
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewRoundOverUI(onFightAgain func()) *RoundOverUI {
	ui := &RoundOverUI{
		OnFightAgain: onFightAgain,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *RoundOverUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 48}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 22}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 14}
}

func (ui *RoundOverUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.HUD.OverlayColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	ui.winnerLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.titleFace, &widget.LabelColor{
			Idle: cfg.HUD.WinnerColor,
		}),
	)
	contentContainer.AddChild(ui.winnerLabel)

	fightAgainBtn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 44)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Fight Again", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnFightAgain != nil {
				ui.OnFightAgain()
			}
		}),
	)
	contentContainer.AddChild(fightAgainBtn)

	hintLabel := widget.NewLabel(
		widget.LabelOpts.Text("Enter or Space to fight again", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{230, 230, 230, 255},
		}),
	)
	contentContainer.AddChild(hintLabel)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// SetWinner shows the round result.
func (ui *RoundOverUI) SetWinner(name string) {
	ui.winnerLabel.Label = name + " won!!"
}

// SetStatus shows a diagnostic under the button, e.g. a failed restart.
func (ui *RoundOverUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *RoundOverUI) Update() {
	ui.UI.Update()
}

func (ui *RoundOverUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
