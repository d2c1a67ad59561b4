package board

import (
	"image/color"
	"log"
	"strconv"
	"time"

	"iqvision/internal/core/drill"
	"iqvision/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Controller is the drill surface the board renders and drives.
type Controller interface {
	ToggleNumberDrill()
	ToggleColorDrill()
	SetInterval(time.Duration) error
	State() drill.State
	Observe(func(drill.Event)) func()
}

const (
	startNumberLabel = "Start Number Drill"
	stopNumberLabel  = "Stop Number Drill"
	startColorLabel  = "Start Color Drill"
	stopColorLabel   = "Stop Color Drill"
)

var (
	backgroundColor = color.NRGBA{A: 255}
	textColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// View is the main drill screen.
type View struct {
	controller   Controller
	root         *fyne.Container
	background   *canvas.Rectangle
	numberText   *canvas.Text
	colorText    *canvas.Text
	numberButton *widget.Button
	colorButton  *widget.Button
	slider       *widget.Slider
	state        drill.State
	rendering    bool
	unobserve    func()
}

// New builds the board for the controller and renders its current state.
func New(controller Controller) *View {
	background := canvas.NewRectangle(backgroundColor)

	numberText := canvas.NewText("", textColor)
	numberText.Alignment = fyne.TextAlignCenter
	numberText.TextStyle = fyne.TextStyle{Bold: true}

	colorText := canvas.NewText("", textColor)
	colorText.Alignment = fyne.TextAlignCenter

	numberButton := widget.NewButton(startNumberLabel, nil)
	numberButton.Importance = widget.SuccessImportance
	colorButton := widget.NewButton(startColorLabel, nil)
	colorButton.Importance = widget.SuccessImportance

	slider := widget.NewSlider(model.IntervalFast.Seconds(), model.IntervalSlow.Seconds())
	slider.Step = 0.5

	intervalTitle := canvas.NewText("Time Interval", textColor)
	intervalTitle.Alignment = fyne.TextAlignCenter
	intervalTitle.TextSize = 20
	minLabel := canvas.NewText("1s", textColor)
	maxLabel := canvas.NewText("2s", textColor)
	intervalBox := container.NewVBox(
		intervalTitle,
		container.NewBorder(nil, nil, minLabel, maxLabel, slider),
	)

	controls := container.NewPadded(container.NewGridWithColumns(3,
		container.NewCenter(numberButton),
		intervalBox,
		container.NewCenter(colorButton),
	))
	display := container.New(&displayLayout{}, numberText, colorText)
	content := container.NewBorder(nil, controls, nil, nil, display)

	view := &View{
		controller:   controller,
		root:         container.NewStack(background, content),
		background:   background,
		numberText:   numberText,
		colorText:    colorText,
		numberButton: numberButton,
		colorButton:  colorButton,
		slider:       slider,
	}

	numberButton.OnTapped = controller.ToggleNumberDrill
	colorButton.OnTapped = controller.ToggleColorDrill
	slider.OnChanged = view.handleSlider

	view.Render(controller.State())
	return view
}

// Content returns the root canvas object.
func (view *View) Content() fyne.CanvasObject {
	return view.root
}

// Bind subscribes the view to controller events.
func (view *View) Bind() {
	view.Unbind()
	view.unobserve = view.controller.Observe(func(event drill.Event) {
		state := event.State
		fyne.Do(func() {
			view.Render(state)
		})
	})
}

// Unbind stops following controller events.
func (view *View) Unbind() {
	if view.unobserve != nil {
		view.unobserve()
		view.unobserve = nil
	}
}

// Render updates the widgets. It must run on the fyne goroutine.
func (view *View) Render(state drill.State) {
	view.rendering = true
	defer func() { view.rendering = false }()
	view.state = state

	view.numberText.Text = strconv.Itoa(state.Number)
	if state.NumberActive() {
		view.numberText.Show()
	} else {
		view.numberText.Hide()
	}
	view.numberText.Refresh()

	view.colorText.Text = state.ColorName
	if state.ColorActive() {
		view.colorText.Color = state.Color
	} else {
		view.colorText.Color = textColor
	}
	view.colorText.Refresh()

	view.setButton(view.numberButton, state.NumberActive(), state.ColorActive(), startNumberLabel, stopNumberLabel)
	view.setButton(view.colorButton, state.ColorActive(), state.NumberActive(), startColorLabel, stopColorLabel)

	if seconds := state.Interval.Seconds(); view.slider.Value != seconds {
		view.slider.SetValue(seconds)
	}
}

func (view *View) setButton(button *widget.Button, active, blocked bool, startLabel, stopLabel string) {
	if active {
		button.SetText(stopLabel)
	} else {
		button.SetText(startLabel)
	}
	if blocked {
		button.Disable()
	} else {
		button.Enable()
	}
}

func (view *View) handleSlider(value float64) {
	if view.rendering {
		return
	}
	interval := model.SnapInterval(value)
	if interval == view.state.Interval {
		return
	}
	if err := view.controller.SetInterval(interval); err != nil {
		log.Printf("set interval: %v", err)
	}
}
