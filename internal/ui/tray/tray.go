package tray

import (
	"fmt"
	"time"

	"iqvision/internal/core/drill"
	"iqvision/internal/core/model"

	"fyne.io/fyne/v2"
)

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnToggleNumber func()
	OnToggleColor  func()
	OnInterval     func(time.Duration)
	OnPreferences  func()
	OnQuit         func()
}

// Manager handles system tray state.
type Manager struct {
	host          MenuHost
	callbacks     Callbacks
	statusItem    *fyne.MenuItem
	numberItem    *fyne.MenuItem
	colorItem     *fyne.MenuItem
	intervalItem  *fyne.MenuItem
	intervalItems map[time.Duration]*fyne.MenuItem
	menu          *fyne.Menu
}

// New creates a tray manager with the provided callbacks.
func New(host MenuHost, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:          host,
		callbacks:     callbacks,
		intervalItems: make(map[time.Duration]*fyne.MenuItem, len(model.Intervals)),
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	manager.numberItem = fyne.NewMenuItem("Start Number Drill", func() {
		if manager.callbacks.OnToggleNumber != nil {
			manager.callbacks.OnToggleNumber()
		}
	})
	manager.colorItem = fyne.NewMenuItem("Start Color Drill", func() {
		if manager.callbacks.OnToggleColor != nil {
			manager.callbacks.OnToggleColor()
		}
	})

	children := make([]*fyne.MenuItem, 0, len(model.Intervals))
	for _, interval := range model.Intervals {
		interval := interval
		item := fyne.NewMenuItem(formatInterval(interval), func() {
			if manager.callbacks.OnInterval != nil {
				manager.callbacks.OnInterval(interval)
			}
		})
		manager.intervalItems[interval] = item
		children = append(children, item)
	}
	manager.intervalItem = fyne.NewMenuItem("Interval", nil)
	manager.intervalItem.ChildMenu = fyne.NewMenu("", children...)

	preferences := fyne.NewMenuItem("Preferences", func() {
		if manager.callbacks.OnPreferences != nil {
			manager.callbacks.OnPreferences()
		}
	})
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	manager.menu = fyne.NewMenu("IQVision",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		manager.numberItem,
		manager.colorItem,
		manager.intervalItem,
		fyne.NewMenuItemSeparator(),
		preferences,
		quit,
	)
	manager.SetState(drill.State{Mode: drill.ModeIdle, Interval: model.IntervalFast})

	return manager
}

// SetState mirrors the drill state in the menu.
func (manager *Manager) SetState(state drill.State) {
	manager.numberItem.Label = "Start Number Drill"
	if state.NumberActive() {
		manager.numberItem.Label = "Stop Number Drill"
	}
	manager.numberItem.Disabled = state.ColorActive()

	manager.colorItem.Label = "Start Color Drill"
	if state.ColorActive() {
		manager.colorItem.Label = "Stop Color Drill"
	}
	manager.colorItem.Disabled = state.NumberActive()

	for interval, item := range manager.intervalItems {
		item.Checked = interval == state.Interval
	}

	manager.statusItem.Label = fmt.Sprintf("Status: %s every %s", statusText(state.Mode), formatInterval(state.Interval))
	manager.refreshMenu()
}

// ShowsEvent reports whether event changes anything the tray displays. Ticks
// only redraw the number or color name, which the menu does not show.
func ShowsEvent(event drill.Event) bool {
	return event.Type != drill.EventTick
}

// Menu returns the current tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func (manager *Manager) refreshMenu() {
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}

func statusText(mode drill.Mode) string {
	switch mode {
	case drill.ModeNumber:
		return "number drill"
	case drill.ModeColor:
		return "color drill"
	default:
		return "idle"
	}
}

func formatInterval(interval time.Duration) string {
	return fmt.Sprintf("%gs", interval.Seconds())
}
