package ui

import (
	"bytes"

	cfg "github.com/automoto/dragonfire/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// StartUI is the Play button shown over the arena before the session starts
type StartUI struct {
	UI *ebitenui.UI

	// OnStart is called when the button is clicked
	OnStart func()

	button *widget.Button
	face   text.Face
	hidden bool
}

// NewStartUI creates the start overlay. onStart runs on click.
func NewStartUI(onStart func()) *StartUI {
	sui := &StartUI{OnStart: onStart}
	sui.loadFonts()
	sui.buildUI()
	return sui
}

func (sui *StartUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	sui.face = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.StartButton.FontSize,
	}
}

func (sui *StartUI) buildUI() {
	// Transparent root so the arena stays visible behind the button
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	sui.button = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.StartButton.Width, cfg.StartButton.Height),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(cfg.StartButton.IdleColor),
			Hover:    image.NewNineSliceColor(cfg.StartButton.HoverColor),
			Pressed:  image.NewNineSliceColor(cfg.StartButton.PressedColor),
			Disabled: image.NewNineSliceColor(cfg.StartButton.PressedColor),
		}),
		widget.ButtonOpts.Text(cfg.StartButton.Label, &sui.face, &widget.ButtonTextColor{
			Idle:    cfg.StartButton.TextColor,
			Hover:   cfg.StartButton.TextColor,
			Pressed: cfg.StartButton.TextColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.hidden {
				return
			}
			if sui.OnStart != nil {
				sui.OnStart()
			}
		}),
	)
	rootContainer.AddChild(sui.button)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Hide removes the button once the session has started.
func (sui *StartUI) Hide() {
	sui.hidden = true
}

// Visible reports whether the button is still shown.
func (sui *StartUI) Visible() bool {
	return !sui.hidden
}

// Update processes UI input
func (sui *StartUI) Update() {
	if sui.hidden {
		return
	}
	sui.UI.Update()
}

// Draw renders the UI
func (sui *StartUI) Draw(screen *ebiten.Image) {
	if sui.hidden {
		return
	}
	sui.UI.Draw(screen)
}
