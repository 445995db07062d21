package views

import (
	"errors"
	"strings"

	"loc-editor/internal/files"
	"loc-editor/internal/ipc"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// AddView collects a directory, a file name and the initial text of a new
// file.
type AddView struct {
	window fyne.Window
	pub    ipc.Publisher

	content   *fyne.Container
	pathEntry *widget.Entry
	nameEntry *widget.Entry
	textEntry *widget.Entry
	submitBtn *widget.Button
}

func NewAddView(window fyne.Window, pub ipc.Publisher) *AddView {
	av := &AddView{window: window, pub: pub}

	av.pathEntry = widget.NewEntry()
	av.pathEntry.SetPlaceHolder("Interface/Wrap")
	av.nameEntry = widget.NewEntry()
	av.nameEntry.SetPlaceHolder("without .txt")
	av.textEntry = widget.NewMultiLineEntry()
	av.textEntry.SetMinRowsVisible(10)

	av.submitBtn = widget.NewButton("Add", av.submit)
	av.submitBtn.Importance = widget.HighImportance

	form := widget.NewForm(
		widget.NewFormItem("Folder", av.pathEntry),
		widget.NewFormItem("File name", av.nameEntry),
	)
	av.content = container.NewBorder(form, av.submitBtn, nil, nil, av.textEntry)

	return av
}

func (av *AddView) submit() {
	name := strings.TrimSpace(av.nameEntry.Text)
	if name == "" {
		if av.window != nil {
			dialog.ShowError(errors.New("file name is required"), av.window)
		}
		return
	}

	av.pub.Publish(ipc.AddFile, files.NewFile{
		Path:     strings.Trim(strings.TrimSpace(av.pathEntry.Text), "/"),
		FileName: name,
		Text:     av.textEntry.Text,
	})
}

func (av *AddView) Content() fyne.CanvasObject {
	return av.content
}

func (av *AddView) Receive(string, interface{}) {}
