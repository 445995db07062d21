package gui

import (
	"loc-editor/internal/views"
	"loc-editor/internal/windows"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

type window struct {
	host     *Host
	spec     windows.Spec
	native   fyne.Window
	view     views.View
	devtools fyne.Window
}

func (w *window) load() {
	w.view = w.host.newView(w.spec, w.native)
	w.native.SetContent(w.view.Content())
}

func (w *window) Show()                 { w.native.Show() }
func (w *window) Close()                { w.native.Close() }
func (w *window) RequestFocus()         { w.native.RequestFocus() }
func (w *window) SetTitle(title string) { w.native.SetTitle(title) }

func (w *window) Send(channel string, payload interface{}) {
	w.view.Receive(channel, payload)
}

// Reload discards the view and builds it again. Main views read the
// current root.
func (w *window) Reload() {
	w.host.logger.Debug(component, "reloading view", map[string]interface{}{
		"window": w.spec.Kind.String(),
	})
	w.load()
}

// ToggleDevTools opens or closes the message journal of the application.
func (w *window) ToggleDevTools() {
	if w.devtools != nil {
		w.devtools.Close()
		w.devtools = nil
		return
	}

	dt := w.host.app.NewWindow("DevTools - " + w.native.Title())
	dt.Resize(fyne.NewSize(640, 360))
	dt.SetContent(newJournalView(w.host))
	dt.SetOnClosed(func() {
		if w.devtools == dt {
			w.devtools = nil
		}
	})
	w.devtools = dt
	dt.Show()
}

func (w *window) SetOnClosed(fn func()) {
	w.native.SetOnClosed(func() {
		if w.host.main == w.native {
			w.host.main = nil
		}
		if w.devtools != nil {
			w.devtools.Close()
			w.devtools = nil
		}
		fn()
	})
}

func newJournalView(h *Host) fyne.CanvasObject {
	var lines []string
	load := func() {
		lines = lines[:0]
		if h.journal == nil {
			return
		}
		for _, e := range h.journal.Entries() {
			lines = append(lines, e.String())
		}
	}
	load()

	list := widget.NewList(
		func() int { return len(lines) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(lines[id])
		},
	)
	refresh := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), func() {
		load()
		list.Refresh()
		list.ScrollToBottom()
	})

	return container.NewBorder(refresh, nil, nil, nil, list)
}
