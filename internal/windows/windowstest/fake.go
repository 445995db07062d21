// Package windowstest provides an in-memory window factory for tests.
package windowstest

import "loc-editor/internal/windows"

// Sent is one notification delivered to a fake window.
type Sent struct {
	Channel string
	Payload interface{}
}

type Window struct {
	Spec     windows.Spec
	Title    string
	Visible  bool
	Closed   bool
	Focuses  int
	Reloads  int
	DevTools bool
	Sent     []Sent

	onClosed func()
}

func (w *Window) Show()                 { w.Visible = true }
func (w *Window) RequestFocus()         { w.Focuses++ }
func (w *Window) SetTitle(title string) { w.Title = title }
func (w *Window) Reload()               { w.Reloads++ }
func (w *Window) ToggleDevTools()       { w.DevTools = !w.DevTools }
func (w *Window) SetOnClosed(fn func()) { w.onClosed = fn }

func (w *Window) Send(channel string, payload interface{}) {
	w.Sent = append(w.Sent, Sent{Channel: channel, Payload: payload})
}

// Close closes the window and runs the closed callback synchronously.
func (w *Window) Close() {
	if w.Closed {
		return
	}
	w.Closed = true
	w.Visible = false
	if w.onClosed != nil {
		w.onClosed()
	}
}

// Last returns the most recent notification on channel.
func (w *Window) Last(channel string) (interface{}, bool) {
	for i := len(w.Sent) - 1; i >= 0; i-- {
		if w.Sent[i].Channel == channel {
			return w.Sent[i].Payload, true
		}
	}
	return nil, false
}

type Factory struct {
	Created []*Window
}

func (f *Factory) Create(spec windows.Spec) windows.Window {
	w := &Window{Spec: spec, Title: spec.Title}
	f.Created = append(f.Created, w)
	return w
}

// Live returns the windows of kind that have not been closed.
func (f *Factory) Live(kind windows.Kind) []*Window {
	var out []*Window
	for _, w := range f.Created {
		if w.Spec.Kind == kind && !w.Closed {
			out = append(out, w)
		}
	}
	return out
}

// Count returns how many windows of kind were ever created.
func (f *Factory) Count(kind windows.Kind) int {
	n := 0
	for _, w := range f.Created {
		if w.Spec.Kind == kind {
			n++
		}
	}
	return n
}
