package main

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

type menuButton struct {
	label   string
	onClick func()
}

// Menu is a centered panel with a title, a line of text refreshed on every
// update and a column of buttons.
type Menu struct {
	ui       *ebitenui.UI
	bodyText *widget.Text
	body     func() string
}

func (m *Menu) Update() {
	if m.bodyText != nil {
		m.bodyText.Label = m.body()
	}
	m.ui.Update()
}

func (m *Menu) Draw(screen *ebiten.Image) {
	m.ui.Draw(screen)
}

func newMenu(title string, body func() string, buttons ...menuButton) *Menu {
	m := &Menu{body: body}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x4b, G: 0x55, B: 0x63, A: 255})

	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(baseWidth/3, baseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(title, &face, white),
		widget.TextOpts.WidgetOpts(center),
	))

	if body != nil {
		m.bodyText = widget.NewText(
			widget.TextOpts.Text(body(), &face, white),
			widget.TextOpts.WidgetOpts(center),
		)
		panel.AddChild(m.bodyText)
	}

	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnImg}),
			widget.ButtonOpts.Text(b.label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(center, widget.WidgetOpts.MinSize(180, 32)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	m.ui = &ebitenui.UI{Container: root}
	return m
}

// NewStartUI is shown before a round: start it or quit.
func NewStartUI(g *Game) *Menu {
	return newMenu("Colour Maze",
		func() string {
			return fmt.Sprintf("Find every ball of one colour. %d balls in this maze.", g.level.TotalPickups())
		},
		menuButton{label: "Start (Enter)", onClick: g.startRound},
		menuButton{label: "Quit", onClick: func() { g.quit = true }},
	)
}

// NewSuccessUI is shown once every pickup of the target colour is collected.
func NewSuccessUI(g *Game) *Menu {
	return newMenu("Maze complete",
		func() string {
			snap := g.sim.Snapshot()
			return fmt.Sprintf("You collected all %d %s balls.", snap.Total, snap.Target)
		},
		menuButton{label: "Play again (Enter)", onClick: g.startRound},
		menuButton{label: "Back to start", onClick: g.backToStart},
	)
}
