package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/colormaze/editor"
	"github.com/milk9111/colormaze/levels"
	"golang.org/x/image/font/gofont/goregular"
)

type editorAction struct {
	label string
	run   func()
}

// EditorUI is the widget tree around the canvas.
type EditorUI struct {
	UI       *ebitenui.UI
	Face     text.Face
	ToolBar  *ToolBar
	ColorBar *ToolBar
}

func BuildEditorUI(
	onToolSelected func(tool editor.Tool),
	onColorSelected func(c levels.Color),
	actions []editorAction,
	initialTool editor.Tool,
	initialColor levels.Color,
) (*EditorUI, error) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	toolNames := make([]string, 0, len(editor.Tools))
	for _, t := range editor.Tools {
		toolNames = append(toolNames, t.String())
	}
	toolbarContainer, toolBar := buildToolBar(ui.PrimaryTheme, &fontFace, toolNames, nil, func(idx int) {
		onToolSelected(editor.Tools[idx])
	}, int(initialTool))

	colorNames := make([]string, 0, len(levels.Colors))
	colorImages := make([]*widget.ButtonImage, 0, len(levels.Colors))
	for _, c := range levels.Colors {
		colorNames = append(colorNames, c.String())
		colorImages = append(colorImages, colorButtonImage(c.RGBA()))
	}
	colorContainer, colorBar := buildToolBar(ui.PrimaryTheme, &fontFace, colorNames, colorImages, func(idx int) {
		onColorSelected(levels.Colors[idx])
	}, int(initialColor))

	actionBar := buildActionBar(ui.PrimaryTheme, &fontFace, actions)

	top := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	top.AddChild(toolbarContainer)
	top.AddChild(colorContainer)
	top.AddChild(actionBar)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(top)
	ui.Container = root

	return &EditorUI{UI: ui, Face: fontFace, ToolBar: toolBar, ColorBar: colorBar}, nil
}

func colorButtonImage(c color.RGBA) *widget.ButtonImage {
	light := func(v uint8) uint8 { return v + (255-v)/3 }
	dark := func(v uint8) uint8 { return v - v/4 }
	return &widget.ButtonImage{
		Idle:    solidNineSlice(c),
		Hover:   solidNineSlice(color.RGBA{light(c.R), light(c.G), light(c.B), 255}),
		Pressed: solidNineSlice(color.RGBA{dark(c.R), dark(c.G), dark(c.B), 255}),
	}
}
