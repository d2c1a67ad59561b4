package board

import (
	"image/color"
	"testing"
	"time"

	"iqvision/internal/core/drill"
	"iqvision/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	state         drill.State
	numberToggles int
	colorToggles  int
	intervals     []time.Duration
	observers     int
}

func (fake *fakeController) ToggleNumberDrill() { fake.numberToggles++ }
func (fake *fakeController) ToggleColorDrill()  { fake.colorToggles++ }

func (fake *fakeController) SetInterval(interval time.Duration) error {
	fake.intervals = append(fake.intervals, interval)
	return nil
}

func (fake *fakeController) State() drill.State { return fake.state }

func (fake *fakeController) Observe(func(drill.Event)) func() {
	fake.observers++
	return func() { fake.observers-- }
}

func newBoard(t *testing.T) (*View, *fakeController) {
	t.Helper()
	test.NewTempApp(t)
	fake := &fakeController{state: drill.State{Mode: drill.ModeIdle, Interval: time.Second}}
	return New(fake), fake
}

func TestIdleBoard(t *testing.T) {
	view, _ := newBoard(t)

	assert.False(t, view.numberText.Visible())
	assert.Empty(t, view.colorText.Text)
	assert.Equal(t, startNumberLabel, view.numberButton.Text)
	assert.Equal(t, startColorLabel, view.colorButton.Text)
	assert.False(t, view.numberButton.Disabled())
	assert.False(t, view.colorButton.Disabled())
	assert.Equal(t, 1.0, view.slider.Value)
}

func TestButtonsForwardIntents(t *testing.T) {
	view, fake := newBoard(t)

	test.Tap(view.numberButton)
	test.Tap(view.colorButton)

	assert.Equal(t, 1, fake.numberToggles)
	assert.Equal(t, 1, fake.colorToggles)
}

func TestRenderNumberDrill(t *testing.T) {
	view, fake := newBoard(t)

	view.Render(drill.State{Mode: drill.ModeNumber, Number: 42, Interval: time.Second})

	assert.True(t, view.numberText.Visible())
	assert.Equal(t, "42", view.numberText.Text)
	assert.Equal(t, stopNumberLabel, view.numberButton.Text)
	assert.True(t, view.colorButton.Disabled(), "color drill is blocked while numbers run")

	test.Tap(view.colorButton)
	assert.Zero(t, fake.colorToggles)
}

func TestRenderColorDrill(t *testing.T) {
	view, _ := newBoard(t)
	ink := color.NRGBA{R: 255, G: 59, B: 48, A: 255}

	view.Render(drill.State{Mode: drill.ModeColor, Color: ink, ColorName: "Blue", Interval: time.Second})

	assert.False(t, view.numberText.Visible())
	assert.Equal(t, "Blue", view.colorText.Text)
	assert.Equal(t, ink, view.colorText.Color)
	assert.Equal(t, stopColorLabel, view.colorButton.Text)
	assert.True(t, view.numberButton.Disabled())

	view.Render(drill.State{Mode: drill.ModeIdle, Color: ink, Interval: time.Second})
	assert.Empty(t, view.colorText.Text)
	assert.Equal(t, textColor, view.colorText.Color)
	assert.False(t, view.numberButton.Disabled())
}

func TestSliderSetsSnappedInterval(t *testing.T) {
	view, fake := newBoard(t)

	view.handleSlider(1.5)
	view.handleSlider(1.9)
	view.handleSlider(1.0)

	require.Len(t, fake.intervals, 2, "the current interval is not re-sent")
	assert.Equal(t, []time.Duration{model.IntervalMedium, model.IntervalSlow}, fake.intervals)
}

func TestRenderDoesNotEchoSlider(t *testing.T) {
	view, fake := newBoard(t)

	view.Render(drill.State{Mode: drill.ModeIdle, Interval: 2 * time.Second})

	assert.Equal(t, 2.0, view.slider.Value)
	assert.Empty(t, fake.intervals)
}

func TestBindAndUnbind(t *testing.T) {
	view, fake := newBoard(t)

	view.Bind()
	view.Bind()
	assert.Equal(t, 1, fake.observers)

	view.Unbind()
	assert.Zero(t, fake.observers)
}

func TestDisplayLayoutCentersVisibleText(t *testing.T) {
	test.NewTempApp(t)
	number := canvas.NewText("42", textColor)
	name := canvas.NewText("Blue", textColor)
	name.Hide()

	display := &displayLayout{}
	display.Layout([]fyne.CanvasObject{number, name}, fyne.NewSize(800, 600))

	assert.Equal(t, float32(600)*numberHeightFraction, number.TextSize)
	assert.Equal(t, float32(800), number.Size().Width)
	top := number.Position().Y
	bottom := float32(600) - (top + number.Size().Height)
	assert.InDelta(t, top, bottom, 1)
}
