package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ToolBar is a row of toggle buttons of which exactly one is active.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
}

func (tb *ToolBar) SetActive(idx int) {
	if tb == nil || tb.group == nil || idx < 0 || idx >= len(tb.buttons) {
		return
	}
	tb.group.SetActive(tb.buttons[idx])
}

var buttonTextColor = &widget.ButtonTextColor{
	Idle:     color.Black,
	Hover:    color.Black,
	Pressed:  color.RGBA{0, 0, 200, 255},
	Disabled: color.Gray{Y: 128},
}

// buildToolBar lays out one toggle button per name and calls onSelected with
// the index of the button that becomes active.
func buildToolBar(theme *widget.Theme, fontFace *text.Face, names []string, images []*widget.ButtonImage, onSelected func(idx int), initial int) (*widget.Container, *ToolBar) {
	toolbar := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	var buttons []*widget.Button
	for i, name := range names {
		img := theme.ButtonTheme.Image
		if i < len(images) && images[i] != nil {
			img = images[i]
		}
		btn := widget.NewButton(
			widget.ButtonOpts.Image(img),
			widget.ButtonOpts.Text(name, fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(64, 32),
			),
		)
		buttons = append(buttons, btn)
		toolbar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(buttons))
	for _, b := range buttons {
		elements = append(elements, b)
	}

	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onSelected == nil {
				return
			}
			for idx, b := range buttons {
				if args.Active == b {
					onSelected(idx)
					return
				}
			}
		}),
	)

	tb := &ToolBar{group: group, buttons: buttons}
	tb.SetActive(initial)
	return toolbar, tb
}

// buildActionBar lays out plain push buttons.
func buildActionBar(theme *widget.Theme, fontFace *text.Face, actions []editorAction) *widget.Container {
	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 8, Right: 8}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)
	for _, a := range actions {
		run := a.run
		bar.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(a.label, fontFace, buttonTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(64, 32),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				run()
			}),
		))
	}
	return bar
}
