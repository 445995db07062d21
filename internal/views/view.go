// Package views builds the content of each application window.
package views

import (
	"fyne.io/fyne/v2"
)

// View is the content of one window.
type View interface {
	Content() fyne.CanvasObject
	// Receive handles an outbound notification addressed to the window.
	// It is always called on the UI goroutine.
	Receive(channel string, payload interface{})
}
