package main

import (
	"fmt"
	"image/color"

	"github.com/milk9111/platformer3d/common"
	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var textColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// gameUI is the start menu overlay plus the always-visible score HUD.
type gameUI struct {
	menu     *ebitenui.UI
	hud      *ebitenui.UI
	score    *widget.Text
	showMenu bool
}

func newGameUI(onStart func()) *gameUI {
	goFace := ebtext.NewGoXFace(basicfont.Face7x13)
	var face ebtext.Face = goFace

	hud, score := newHUD(&face)
	return &gameUI{
		menu:     newMenuUI(&face, onStart),
		hud:      hud,
		score:    score,
		showMenu: true,
	}
}

func (u *gameUI) Update() {
	u.hud.Update()
	if u.showMenu {
		u.menu.Update()
	}
}

func (u *gameUI) Draw(screen *ebiten.Image) {
	u.hud.Draw(screen)
	if u.showMenu {
		u.menu.Draw(screen)
	}
}

func (u *gameUI) HideMenu() {
	u.showMenu = false
}

func (u *gameUI) SetScore(score int) {
	u.score.Label = fmt.Sprintf("Score: %d", score)
}

// newMenuUI builds a centered panel with a title, a controls hint and a Start
// button. Buttons are plain colored nine-slices so no theme is needed.
func newMenuUI(face *ebtext.Face, onStart func()) *ebitenui.UI {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200})
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHoverImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255})

	btnTextColor := &widget.ButtonTextColor{Idle: textColor}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	title := widget.NewText(
		widget.TextOpts.Text("3D Platformer", face, textColor),
		widget.TextOpts.WidgetOpts(centered),
	)
	hint := widget.NewText(
		widget.TextOpts.Text("Arrow keys move, Space jumps. Collect the coins.", face, textColor),
		widget.TextOpts.WidgetOpts(centered),
	)

	startBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHoverImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Start", face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onStart()
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(14),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 24, Bottom: 24, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)
	panel.AddChild(title)
	panel.AddChild(hint)
	panel.AddChild(startBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &ebitenui.UI{Container: root}
}

func newHUD(face *ebtext.Face) (*ebitenui.UI, *widget.Text) {
	score := widget.NewText(
		widget.TextOpts.Text("Score: 0", face, textColor),
	)

	box := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 120})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	box.AddChild(score)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(box)

	return &ebitenui.UI{Container: root}, score
}
