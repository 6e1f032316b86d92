package ui

import (
	"bytes"
	"image/color"

	cfg "github.com/automoto/pigking/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuItem is one selectable entry. Disabled items are shown but skipped by
// keyboard navigation.
type MenuItem struct {
	Label    string
	Disabled bool
	OnSelect func()
}

// MenuUI is a vertical list of buttons under a title, driven by mouse or
// keyboard.
type MenuUI struct {
	UI *ebitenui.UI

	items    []MenuItem
	buttons  []*widget.Button
	selected int

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewMenuUI builds a menu. footer is an optional hint line under the items.
func NewMenuUI(title, footer string, items []MenuItem) *MenuUI {
	m := &MenuUI{items: items}
	m.loadFonts()
	m.buildUI(title, footer)
	m.selected = m.next(-1, 1)
	m.refresh()
	return m
}

func (m *MenuUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	m.titleFace = &text.GoTextFace{Source: fontSource, Size: cfg.Menu.FontSize * 2}
	m.normalFace = &text.GoTextFace{Source: fontSource, Size: cfg.Menu.FontSize}
	m.smallFace = &text.GoTextFace{Source: fontSource, Size: cfg.Menu.FontSize * 0.8}
}

func (m *MenuUI) buildUI(title, footer string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(cfg.Menu.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &m.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	for i, item := range m.items {
		idx := i
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(cfg.Menu.ButtonWidth, cfg.Menu.ButtonHeight),
			),
			widget.ButtonOpts.Image(buttonImage()),
			widget.ButtonOpts.Text(item.Label, &m.normalFace, &widget.ButtonTextColor{
				Idle:     cfg.Menu.ButtonText,
				Hover:    color.RGBA{255, 255, 200, 255},
				Pressed:  color.RGBA{200, 200, 200, 255},
				Disabled: color.RGBA{130, 130, 130, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				m.activate(idx)
			}),
		)
		button.GetWidget().Disabled = item.Disabled
		m.buttons = append(m.buttons, button)
		contentContainer.AddChild(button)
	}

	if footer != "" {
		contentContainer.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(footer, &m.smallFace, &widget.LabelColor{
				Idle: cfg.Menu.TitleColor,
			}),
		))
	}

	rootContainer.AddChild(contentContainer)
	m.UI = &ebitenui.UI{Container: rootContainer}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Menu.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Menu.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Menu.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.Menu.ButtonDisabled),
	}
}

// Update handles keyboard navigation, then lets ebitenui process the mouse.
func (m *MenuUI) Update() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyW):
		m.selected = m.next(m.selected, -1)
		m.refresh()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyS):
		m.selected = m.next(m.selected, 1)
		m.refresh()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		m.activate(m.selected)
		return
	}
	m.UI.Update()
}

func (m *MenuUI) Draw(screen *ebiten.Image) {
	m.UI.Draw(screen)
}

// Selected returns the index of the highlighted item, or -1 when every item
// is disabled.
func (m *MenuUI) Selected() int {
	return m.selected
}

func (m *MenuUI) activate(i int) {
	if i < 0 || i >= len(m.items) || m.items[i].Disabled || m.items[i].OnSelect == nil {
		return
	}
	m.items[i].OnSelect()
}

// next returns the next enabled item from i in direction dir, wrapping.
func (m *MenuUI) next(i, dir int) int {
	n := len(m.items)
	for step := 1; step <= n; step++ {
		j := ((i+dir*step)%n + n) % n
		if !m.items[j].Disabled {
			return j
		}
	}
	return -1
}

func (m *MenuUI) refresh() {
	for i, button := range m.buttons {
		label := m.items[i].Label
		if i == m.selected {
			label = "> " + label + " <"
		}
		button.Text().Label = label
	}
}
