package main

import (
	"errors"
	"log"
	"time"

	"iqvision/internal/core/drill"
	"iqvision/internal/platform"
	"iqvision/internal/storage"
	"iqvision/internal/ui/board"
	"iqvision/internal/ui/preferences"
	"iqvision/internal/ui/splash"
	"iqvision/internal/ui/tray"
	"iqvision/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "IQVision"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return
		}
		log.Fatalf("single instance: %v", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	fyneApp := app.NewWithID("com.iqvision.app")
	fyneApp.SetIcon(resources.MustLogo())

	controller := drill.New(settings.DrillConfig(), drill.Config{})

	window := fyneApp.NewWindow(appName)
	window.SetMaster()
	window.SetPadded(false)
	window.Resize(fyne.NewSize(1280, 800))
	window.SetFullScreen(settings.Fullscreen)

	drillBoard := board.New(controller)
	drillBoard.Bind()

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		setInterval(controller, settings.Interval)
		window.SetFullScreen(settings.Fullscreen)
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save settings: %v", err)
		}
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnToggleNumber: controller.ToggleNumberDrill,
			OnToggleColor:  controller.ToggleColorDrill,
			OnInterval: func(interval time.Duration) {
				setInterval(controller, interval)
			},
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		trayManager.SetState(controller.State())
		desktopApp.SetSystemTrayIcon(resources.MustLogo())

		events := controller.Subscribe(8)
		go func() {
			for event := range events {
				if !tray.ShowsEvent(event) {
					continue
				}
				state := event.State
				fyne.Do(func() {
					trayManager.SetState(state)
				})
			}
		}()
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	window.Canvas().SetOnTypedKey(func(event *fyne.KeyEvent) {
		switch event.Name {
		case fyne.KeyN:
			controller.ToggleNumberDrill()
		case fyne.KeyC:
			controller.ToggleColorDrill()
		case fyne.KeyF:
			window.SetFullScreen(!window.FullScreen())
		case fyne.KeyComma:
			prefsWindow.Show()
		}
	})

	gate := splash.NewGate(drill.SystemClock, settings.EffectiveSplashDelay())
	window.SetOnClosed(func() {
		gate.Cancel()
		drillBoard.Unbind()
		controller.Stop()
	})
	splash.Present(window, gate, resources.MustSplash(), drillBoard.Content())

	window.ShowAndRun()
}

func setInterval(controller *drill.Controller, interval time.Duration) {
	if err := controller.SetInterval(interval); err != nil {
		log.Printf("set interval: %v", err)
	}
}
