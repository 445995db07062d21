// Package menu builds the application menu from a declarative model.
package menu

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Actions are the operations menu items trigger.
type Actions interface {
	OpenAdd()
	OpenSettings()
	Quit()
	ReloadFocused()
	ToggleDevToolsFocused()
}

// Config is evaluated once when the menu is built.
type Config struct {
	Platform string // runtime.GOOS
	DevMode  bool
}

// Accelerator is a key combined with the platform's primary modifier.
type Accelerator struct {
	Key      fyne.KeyName
	Modifier fyne.KeyModifier
}

func (a Accelerator) String() string {
	prefix := "Ctrl+"
	if a.Modifier == fyne.KeyModifierSuper {
		prefix = "Command+"
	}
	return prefix + string(a.Key)
}

func (a Accelerator) Shortcut() *desktop.CustomShortcut {
	return &desktop.CustomShortcut{KeyName: a.Key, Modifier: a.Modifier}
}

type Item struct {
	Label       string
	Accelerator *Accelerator
	Quit        bool
	Action      func()
}

type Section struct {
	Label string
	Items []Item
}

type Model struct {
	Sections []Section
}

// Build returns the menu model. The developer section is present only in
// dev mode.
func Build(cfg Config, a Actions) Model {
	accel := func(key fyne.KeyName) *Accelerator {
		mod := fyne.KeyModifierControl
		if cfg.Platform == "darwin" {
			mod = fyne.KeyModifierSuper
		}
		return &Accelerator{Key: key, Modifier: mod}
	}

	sections := []Section{
		{
			Label: "File",
			Items: []Item{
				{Label: "Add text", Accelerator: accel(fyne.KeyN), Action: a.OpenAdd},
				{Label: "Quit", Accelerator: accel(fyne.KeyQ), Quit: true, Action: a.Quit},
			},
		},
		{
			Label: "Settings",
			Items: []Item{
				{Label: "Settings…", Action: a.OpenSettings},
			},
		},
	}

	if cfg.DevMode {
		sections = append(sections, Section{
			Label: "Developer Tools",
			Items: []Item{
				{Label: "Reload", Accelerator: accel(fyne.KeyR), Action: a.ReloadFocused},
				{Label: "Toggle DevTools", Accelerator: accel(fyne.KeyI), Action: a.ToggleDevToolsFocused},
			},
		})
	}

	return Model{Sections: sections}
}

func (m Model) Section(label string) (Section, bool) {
	for _, s := range m.Sections {
		if s.Label == label {
			return s, true
		}
	}
	return Section{}, false
}

// MainMenu converts the model to a Fyne main menu.
func (m Model) MainMenu() *fyne.MainMenu {
	menus := make([]*fyne.Menu, 0, len(m.Sections))
	for _, s := range m.Sections {
		items := make([]*fyne.MenuItem, 0, len(s.Items))
		for _, it := range s.Items {
			mi := fyne.NewMenuItem(it.Label, it.Action)
			mi.IsQuit = it.Quit
			if it.Accelerator != nil {
				mi.Shortcut = it.Accelerator.Shortcut()
			}
			items = append(items, mi)
		}
		menus = append(menus, fyne.NewMenu(s.Label, items...))
	}

	return fyne.NewMainMenu(menus...)
}

// ShortcutTarget is satisfied by fyne.Canvas.
type ShortcutTarget interface {
	AddShortcut(shortcut fyne.Shortcut, handler func(shortcut fyne.Shortcut))
}

// Bind registers the accelerators on a window without a main menu. The
// main window gets them from its menu items.
func (m Model) Bind(c ShortcutTarget) {
	for _, s := range m.Sections {
		for _, it := range s.Items {
			if it.Accelerator == nil {
				continue
			}
			action := it.Action
			c.AddShortcut(it.Accelerator.Shortcut(), func(fyne.Shortcut) {
				action()
			})
		}
	}
}
