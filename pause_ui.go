package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

// menuButton is a labelled action shown in a menu panel.
type menuButton struct {
	label   string
	onClick func()
}

// menuUI is a centered panel with a title line and a column of buttons.
type menuUI struct {
	ui    *ebitenui.UI
	title *widget.Text
}

// SetTitle replaces the panel heading.
func (m *menuUI) SetTitle(s string) {
	m.title.Label = s
}

func (m *menuUI) Update() {
	m.ui.Update()
}

func (m *menuUI) Draw(screen *ebiten.Image) {
	m.ui.Draw(screen)
}

// newMenuUI builds the panel using colored nine-slices and the built-in
// basic font, so no theme assets have to be loaded. The panel is sized to
// half the screen.
func newMenuUI(screenW, screenH int, title string, buttons ...menuButton) *menuUI {
	// semi-transparent panel background
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnPressedImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	titleText := widget.NewText(
		widget.TextOpts.Text(title, &face, white),
		widget.TextOpts.WidgetOpts(centered),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(screenW/2, screenH/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(titleText)

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnPressedImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(centered),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &menuUI{ui: &ebitenui.UI{Container: root}, title: titleText}
}

// NewPauseUI builds the pause menu with Resume, New maze and Quit buttons.
func NewPauseUI(g *Game) *menuUI {
	w, h := g.cfg.ScreenSize()
	return newMenuUI(w, h, "Paused",
		menuButton{"Resume", func() { g.paused = false }},
		menuButton{"New maze", func() {
			g.paused = false
			g.restart = true
		}},
		menuButton{"Quit", func() { g.quit = true }},
	)
}

// NewResultUI builds the panel shown once the player reaches the end.
func NewResultUI(g *Game) *menuUI {
	w, h := g.cfg.ScreenSize()
	return newMenuUI(w, h, "",
		menuButton{"Play again", func() { g.restart = true }},
		menuButton{"Quit", func() { g.quit = true }},
	)
}
