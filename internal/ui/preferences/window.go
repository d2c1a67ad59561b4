package preferences

import (
	"time"

	"iqvision/internal/core/model"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var intervalLabels = map[time.Duration]string{
	model.IntervalFast:   "1 second",
	model.IntervalMedium: "1.5 seconds",
	model.IntervalSlow:   "2 seconds",
}

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	interval   *widget.RadioGroup
	fullscreen *widget.Check
	splash     *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("IQVision Settings")

	options := make([]string, 0, len(model.Intervals))
	for _, interval := range model.Intervals {
		options = append(options, intervalLabels[interval])
	}
	interval := widget.NewRadioGroup(options, nil)
	interval.Required = true

	fullscreen := widget.NewCheck("Fullscreen", nil)
	splash := widget.NewCheck("Show splash screen at launch", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Drill", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Default interval"),
		interval,
		widget.NewLabelWithStyle("Display", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		fullscreen,
		splash,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		interval:   interval,
		fullscreen: fullscreen,
		splash:     splash,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.interval.SetSelected(intervalLabels[model.SnapInterval(settings.Interval.Seconds())])
	prefs.fullscreen.SetChecked(settings.Fullscreen)
	prefs.splash.SetChecked(settings.SplashEnabled)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	for interval, label := range intervalLabels {
		if label == prefs.interval.Selected {
			settings.Interval = interval
		}
	}
	settings.Fullscreen = prefs.fullscreen.Checked
	settings.SplashEnabled = prefs.splash.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
