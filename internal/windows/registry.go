// Package windows owns the application's windows: at most one live window
// per kind, released when closed, with the notepad recreated (hidden) every
// time it closes.
package windows

import (
	"runtime"

	"loc-editor/internal/ipc"
	"loc-editor/internal/logger"
)

const component = "WindowManager"

type Options struct {
	// QuitOnMainClose quits the application when the main window closes.
	QuitOnMainClose bool
	// Journal, when set, records outbound notifications.
	Journal *ipc.Journal
}

// DefaultOptions quits on main window close everywhere except darwin.
func DefaultOptions() Options {
	return Options{QuitOnMainClose: runtime.GOOS != "darwin"}
}

// Registry must only be used from the UI goroutine.
type Registry struct {
	factory Factory
	quit    func()
	opts    Options
	logger  logger.Logger

	windows  map[Kind]Window
	focused  Kind
	quitting bool
}

func NewRegistry(factory Factory, quit func(), opts Options, log logger.Logger) *Registry {
	return &Registry{
		factory: factory,
		quit:    quit,
		opts:    opts,
		logger:  log,
		windows: make(map[Kind]Window),
		focused: Main,
	}
}

// OpenMain creates and shows the main window with root as its view data.
func (r *Registry) OpenMain(root string) {
	if w, ok := r.windows[Main]; ok {
		w.RequestFocus()
		return
	}

	w := r.factory.Create(mainSpec(root))
	r.track(Main, w, func() {
		r.release(Main, w)
		if r.opts.QuitOnMainClose {
			r.Quit()
		}
	})
	r.show(Main, w)
}

// OpenAdd shows the add window, focusing the existing one if it is open.
func (r *Registry) OpenAdd() {
	if w, ok := r.windows[Add]; ok {
		r.focused = Add
		w.RequestFocus()
		return
	}

	w := r.factory.Create(addSpec())
	r.track(Add, w, func() { r.release(Add, w) })
	r.show(Add, w)
}

// OpenSettings shows the settings window unless it is already open.
func (r *Registry) OpenSettings() {
	if _, ok := r.windows[Settings]; ok {
		r.logger.Debug(component, "settings window already open", nil)
		return
	}

	w := r.factory.Create(settingsSpec())
	r.track(Settings, w, func() { r.release(Settings, w) })
	r.show(Settings, w)
}

// OpenNotepad creates the hidden notepad window if none exists.
func (r *Registry) OpenNotepad() {
	if r.quitting {
		return
	}
	if _, ok := r.windows[Notepad]; ok {
		return
	}

	w := r.factory.Create(notepadSpec())
	r.track(Notepad, w, func() {
		if r.release(Notepad, w) {
			r.OpenNotepad()
		}
	})
	r.logger.Debug(component, "notepad window ready", nil)
}

// Close closes the window of the given kind if it is open. Closing the
// notepad replaces it with a fresh hidden one.
func (r *Registry) Close(kind Kind) {
	w, ok := r.windows[kind]
	if !ok {
		r.logger.Warning(component, "window not open", map[string]interface{}{
			"window": kind.String(),
		})
		return
	}

	delete(r.windows, kind)
	w.Close()
	r.logger.Debug(component, "window closed", map[string]interface{}{
		"window": kind.String(),
	})

	if kind == Notepad {
		r.OpenNotepad()
	}
}

// CloseNamed is Close for a window name coming from a view.
func (r *Registry) CloseNamed(name string) {
	kind, err := ParseKind(name)
	if err != nil {
		r.logger.Warning(component, "no window set", map[string]interface{}{
			"window": name,
		})
		return
	}

	r.Close(kind)
}

// Send delivers a notification to the window of the given kind. It is
// dropped when that window is not open.
func (r *Registry) Send(kind Kind, channel string, payload interface{}) {
	w, ok := r.windows[kind]
	if !ok {
		r.logger.Warning(component, "notification dropped, window not open", map[string]interface{}{
			"window":  kind.String(),
			"channel": channel,
		})
		return
	}

	if r.opts.Journal != nil {
		r.opts.Journal.Record(ipc.Outbound, channel, kind.String(), payload)
	}
	w.Send(channel, payload)
}

func (r *Registry) Show(kind Kind) {
	if w, ok := r.windows[kind]; ok {
		r.show(kind, w)
	}
}

func (r *Registry) SetTitle(kind Kind, title string) {
	if w, ok := r.windows[kind]; ok {
		w.SetTitle(title)
	}
}

func (r *Registry) Get(kind Kind) (Window, bool) {
	w, ok := r.windows[kind]
	return w, ok
}

func (r *Registry) IsOpen(kind Kind) bool {
	_, ok := r.windows[kind]
	return ok
}

// Focused returns the most recently shown window that is still open,
// falling back to the main window.
func (r *Registry) Focused() Kind {
	if _, ok := r.windows[r.focused]; ok {
		return r.focused
	}
	return Main
}

func (r *Registry) ReloadFocused() {
	if w, ok := r.windows[r.Focused()]; ok {
		w.Reload()
	}
}

func (r *Registry) ToggleDevToolsFocused() {
	if w, ok := r.windows[r.Focused()]; ok {
		w.ToggleDevTools()
	}
}

// Quit stops window recreation and asks the host to quit. Safe to call
// more than once.
func (r *Registry) Quit() {
	if r.quitting {
		return
	}

	r.quitting = true
	r.logger.Info(component, "quitting", map[string]interface{}{
		"open_windows": len(r.windows),
	})
	r.quit()
}

func (r *Registry) track(kind Kind, w Window, onClosed func()) {
	r.windows[kind] = w
	w.SetOnClosed(onClosed)
}

func (r *Registry) show(kind Kind, w Window) {
	r.focused = kind
	w.Show()
}

// release forgets w if it is still the live window of kind. It reports
// whether anything was released.
func (r *Registry) release(kind Kind, w Window) bool {
	if cur, ok := r.windows[kind]; !ok || cur != w {
		return false
	}

	delete(r.windows, kind)
	r.logger.Debug(component, "window released", map[string]interface{}{
		"window": kind.String(),
	})
	return true
}
