package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/camflash/config"
	"github.com/automoto/camflash/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

// FlashPanel holds the ebitenui control panel for the flash overlay
type FlashPanel struct {
	UI  *ebitenui.UI
	ecs *ecs.ECS

	// Widget references for updates
	warmthLabel    *widget.Label
	intensityLabel *widget.Label
	stateLabel     *widget.Label
	flashButton    *widget.Button
	presetButtons  []*widget.Button
	saveButton     *widget.Button

	normalFace text.Face
	smallFace  text.Face
}

// NewFlashPanel creates the control panel. Every button goes through the
// same systems functions as the keyboard bindings.
func NewFlashPanel(e *ecs.ECS) *FlashPanel {
	fp := &FlashPanel{ecs: e}
	fp.loadFonts()
	fp.buildUI()
	return fp
}

func (fp *FlashPanel) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	fp.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	fp.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (fp *FlashPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Panel.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.Panel.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.Panel.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	e := fp.ecs
	fp.flashButton = fp.button("Flash", func() { systems.TriggerFlash(e) })
	contentContainer.AddChild(fp.row(
		fp.flashButton,
		fp.holdButton("Preview", func() { systems.StartPreview(e) }, func() { systems.EndPreview(e) }),
	))
	contentContainer.AddChild(fp.row(
		fp.button("Flash In", func() { systems.FlashIn(e) }),
		fp.button("Flash Out", func() { systems.FlashOut(e) }),
	))
	contentContainer.AddChild(fp.row(
		fp.button("Cooler", func() { systems.AdjustWarmth(e, -cfg.Panel.WarmthStep) }),
		fp.button("Warmer", func() { systems.AdjustWarmth(e, cfg.Panel.WarmthStep) }),
	))
	contentContainer.AddChild(fp.row(
		fp.button("Dimmer", func() { systems.AdjustIntensity(e, -cfg.Panel.IntensityStep) }),
		fp.button("Brighter", func() { systems.AdjustIntensity(e, cfg.Panel.IntensityStep) }),
	))

	presets := make([]widget.PreferredSizeLocateableWidget, 0, len(cfg.Flash.Presets))
	for i, p := range cfg.Flash.Presets {
		idx := i // Capture for closure
		b := fp.button(p.Name, func() { systems.SelectPreset(e, idx) })
		fp.presetButtons = append(fp.presetButtons, b)
		presets = append(presets, b)
	}
	contentContainer.AddChild(fp.row(presets...))

	fp.saveButton = fp.button("Save", func() { systems.SaveCurrentFlash(e) })
	contentContainer.AddChild(fp.saveButton)

	fp.warmthLabel = fp.label()
	fp.intensityLabel = fp.label()
	fp.stateLabel = fp.label()
	contentContainer.AddChild(fp.warmthLabel)
	contentContainer.AddChild(fp.intensityLabel)
	contentContainer.AddChild(fp.stateLabel)

	rootContainer.AddChild(contentContainer)

	fp.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (fp *FlashPanel) row(children ...widget.PreferredSizeLocateableWidget) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(cfg.Panel.Spacing),
		)),
	)
	for _, c := range children {
		row.AddChild(c)
	}
	return row
}

func (fp *FlashPanel) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Panel.ButtonWidth, cfg.Panel.ButtonHeight),
		),
		widget.ButtonOpts.Image(fp.buttonImage()),
		widget.ButtonOpts.Text(label, &fp.normalFace, fp.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// holdButton runs onPress when the button goes down and onRelease when it
// comes back up.
func (fp *FlashPanel) holdButton(label string, onPress, onRelease func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Panel.ButtonWidth, cfg.Panel.ButtonHeight),
		),
		widget.ButtonOpts.Image(fp.buttonImage()),
		widget.ButtonOpts.Text(label, &fp.normalFace, fp.buttonTextColor()),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
			onPress()
		}),
		widget.ButtonOpts.ReleasedHandler(func(args *widget.ButtonReleasedEventArgs) {
			onRelease()
		}),
	)
}

func (fp *FlashPanel) label() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &fp.smallFace, &widget.LabelColor{
			Idle: cfg.Panel.TextColor,
		}),
	)
}

func (fp *FlashPanel) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Panel.ButtonIdle),
		Hover:    image.NewNineSliceColor(cfg.Panel.ButtonHover),
		Pressed:  image.NewNineSliceColor(cfg.Panel.ButtonPressed),
		Disabled: image.NewNineSliceColor(cfg.Panel.ButtonPressed),
	}
}

func (fp *FlashPanel) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    cfg.Panel.TextColor,
		Hover:   cfg.Panel.TextColor,
		Pressed: cfg.Panel.TextColor,
	}
}

// UpdateUI syncs the labels and button states with the overlay
func (fp *FlashPanel) UpdateUI() {
	saved := systems.CurrentFlash(fp.ecs)
	if saved == nil {
		return
	}

	fp.warmthLabel.Label = fmt.Sprintf("Warmth %.2f", saved.Warmth)
	fp.intensityLabel.Label = fmt.Sprintf("Intensity %.2f", saved.Intensity)
	fp.stateLabel.Label = systems.FlashStateName(fp.ecs)

	for i, b := range fp.presetButtons {
		if textWidget := b.Text(); textWidget != nil {
			name := cfg.Flash.Presets[i].Name
			if i == saved.ColorIndex {
				name = "[" + name + "]"
			}
			textWidget.Label = name
		}
	}
	fp.flashButton.GetWidget().Disabled = systems.FlashBusy(fp.ecs)
	fp.saveButton.GetWidget().Disabled = !systems.HasUnsavedFlash(fp.ecs)
}
