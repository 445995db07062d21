package views

import (
	"strings"

	"loc-editor/internal/ipc"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// SettingsView edits the root directory.
type SettingsView struct {
	window fyne.Window
	pub    ipc.Publisher

	content     *fyne.Container
	folderEntry *widget.Entry
	browseBtn   *widget.Button
	saveBtn     *widget.Button
	cancelBtn   *widget.Button
}

func NewSettingsView(window fyne.Window, pub ipc.Publisher) *SettingsView {
	sv := &SettingsView{window: window, pub: pub}

	sv.folderEntry = widget.NewEntry()
	sv.folderEntry.SetPlaceHolder("Client folder")

	sv.browseBtn = widget.NewButtonWithIcon("", theme.FolderOpenIcon(), sv.browse)
	sv.saveBtn = widget.NewButton("Save", sv.save)
	sv.saveBtn.Importance = widget.HighImportance
	sv.cancelBtn = widget.NewButton("Cancel", func() {
		sv.pub.Publish(ipc.ActionCloseWindow, ipc.CloseWindow{Window: "settings"})
	})

	sv.content = container.NewVBox(
		widget.NewLabel("Client folder"),
		container.NewBorder(nil, nil, nil, sv.browseBtn, sv.folderEntry),
		container.NewHBox(sv.cancelBtn, sv.saveBtn),
	)

	return sv
}

func (sv *SettingsView) browse() {
	if sv.window == nil {
		return
	}

	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			sv.pub.Publish(ipc.SettingsErrorMessage, ipc.ErrorMessage{Title: "Settings", Message: err.Error()})
			return
		}
		if uri != nil {
			sv.folderEntry.SetText(uri.Path())
		}
	}, sv.window)
}

func (sv *SettingsView) save() {
	folder := strings.TrimSpace(sv.folderEntry.Text)
	if folder == "" {
		sv.pub.Publish(ipc.SettingsErrorMessage, ipc.ErrorMessage{
			Title:   "Settings",
			Message: "Choose the client folder first",
		})
		return
	}

	sv.pub.Publish(ipc.SettingsEdit, folder)
}

func (sv *SettingsView) Content() fyne.CanvasObject {
	return sv.content
}

func (sv *SettingsView) Receive(string, interface{}) {}
