// Package gui creates the Fyne windows behind the window registry and hosts
// one view in each.
package gui

import (
	"errors"

	"loc-editor/internal/ipc"
	"loc-editor/internal/logger"
	"loc-editor/internal/menu"
	"loc-editor/internal/views"
	"loc-editor/internal/windows"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const component = "GUIHost"

// Host implements windows.Factory on top of a Fyne application.
type Host struct {
	app     fyne.App
	bus     ipc.Publisher
	journal *ipc.Journal
	logger  logger.Logger
	menu    *menu.Model
	main    fyne.Window
	root    func() string
}

func NewHost(app fyne.App, bus ipc.Publisher, journal *ipc.Journal, log logger.Logger) *Host {
	return &Host{
		app:     app,
		bus:     bus,
		journal: journal,
		logger:  log,
	}
}

// SetMenu installs the menu on the main window created after this call.
func (h *Host) SetMenu(model menu.Model) {
	h.menu = &model
}

// SetRootSource makes main views read the current root directory from fn
// instead of the creation data, so a reload picks up settings changes.
func (h *Host) SetRootSource(fn func() string) {
	h.root = fn
}

func (h *Host) Create(spec windows.Spec) windows.Window {
	native := h.app.NewWindow(spec.Title)
	native.Resize(fyne.NewSize(spec.Width, spec.Height))
	native.SetFixedSize(spec.FixedSize)
	native.CenterOnScreen()

	w := &window{host: h, spec: spec, native: native}
	w.load()

	switch {
	case spec.Kind == windows.Main:
		if h.menu != nil {
			native.SetMainMenu(h.menu.MainMenu())
		}
		h.main = native
	case h.menu != nil:
		h.menu.Bind(native.Canvas())
	}

	h.logger.Debug(component, "window created", map[string]interface{}{
		"window": spec.Kind.String(),
		"hidden": spec.Hidden,
	})
	return w
}

func (h *Host) newView(spec windows.Spec, native fyne.Window) views.View {
	switch spec.Kind {
	case windows.Main:
		data, _ := spec.Data.(windows.MainData)
		root := data.Root
		if h.root != nil {
			root = h.root()
		}
		return views.NewMainView(native, h.bus, root)
	case windows.Add:
		return views.NewAddView(native, h.bus)
	case windows.Settings:
		return views.NewSettingsView(native, h.bus)
	default:
		return views.NewNotepadView(h.bus)
	}
}

// ShowError shows a modal error on the main window.
func (h *Host) ShowError(title, message string) {
	if h.main == nil {
		h.logger.Warning(component, "error dialog without main window", map[string]interface{}{
			"title":   title,
			"message": message,
		})
		return
	}

	if title == "" {
		dialog.ShowError(errors.New(message), h.main)
		return
	}
	dialog.NewCustom(title, "OK", widget.NewLabel(message), h.main).Show()
}
