package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the root directory, the last status message and the
// number of files found.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	rootLabel   *widget.Label
	filesLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.rootLabel = widget.NewLabel("Root: not configured")
	sb.filesLabel = widget.NewLabel("Files: --")
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.statusLabel,
		widget.NewSeparator(),
		sb.rootLabel,
		widget.NewSeparator(),
		sb.filesLabel,
	)
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetRoot(root string) {
	if root == "" {
		sb.rootLabel.SetText("Root: not configured")
		return
	}
	sb.rootLabel.SetText("Root: " + root)
}

func (sb *StatusBar) GetRoot() string {
	return sb.rootLabel.Text
}

// SetFileCount shows shown out of total files.
func (sb *StatusBar) SetFileCount(shown, total int) {
	if shown == total {
		sb.filesLabel.SetText(fmt.Sprintf("Files: %d", total))
		return
	}
	sb.filesLabel.SetText(fmt.Sprintf("Files: %d of %d", shown, total))
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
