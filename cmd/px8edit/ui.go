package main

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const panelWidth = 140

// panelAction is one button of the side panel.
type panelAction struct {
	Label   string
	OnClick func()
}

// PanelUI is the side panel: one button per action and a status line.
type PanelUI struct {
	UI     *ebitenui.UI
	status *widget.Text
}

func (p *PanelUI) SetStatus(msg string) {
	if p == nil || p.status == nil {
		return
	}
	p.status.Label = msg
}

func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func newPanelTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(color.RGBA{40, 40, 40, 255}),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:    solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:   solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed: solidNineSlice(color.RGBA{160, 160, 160, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     color.Black,
				Hover:    color.Black,
				Pressed:  color.RGBA{0, 0, 200, 255},
				Disabled: color.Gray{Y: 128},
			},
		},
	}
}

func buildPanelUI(actions []panelAction) (*PanelUI, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 13}

	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newPanelTheme(&fontFace)
	theme := ui.PrimaryTheme

	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
				StretchVertical:    true,
			}),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
		widget.ContainerOpts.BackgroundImage(theme.PanelTheme.BackgroundImage),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Cartridge", &fontFace, &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}),
	))

	for _, a := range actions {
		onClick := a.OnClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(a.Label, &fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(panelWidth-16, 24),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		))
	}

	status := widget.NewText(
		widget.TextOpts.Text("", &fontFace, color.White),
	)
	panel.AddChild(status)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	ui.Container = root

	return &PanelUI{UI: ui, status: status}, nil
}
