package views

import (
	"loc-editor/internal/files"
	"loc-editor/internal/ipc"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// NotepadView edits one document. It is created empty and filled by a
// notepad:data notification.
type NotepadView struct {
	pub ipc.Publisher

	path     string
	content  *fyne.Container
	editor   *widget.Entry
	saveBtn  *widget.Button
	closeBtn *widget.Button
}

func NewNotepadView(pub ipc.Publisher) *NotepadView {
	nv := &NotepadView{pub: pub}

	nv.editor = widget.NewMultiLineEntry()
	nv.editor.Wrapping = fyne.TextWrapWord

	nv.saveBtn = widget.NewButton("Save", func() {
		if nv.path == "" {
			return
		}
		nv.pub.Publish(ipc.NotepadSave, files.Document{Path: nv.path, Data: nv.editor.Text})
	})
	nv.saveBtn.Importance = widget.HighImportance
	nv.saveBtn.Disable()

	nv.closeBtn = widget.NewButton("Close", func() {
		nv.pub.Publish(ipc.ActionCloseWindow, ipc.CloseWindow{Window: "notepad"})
	})

	nv.content = container.NewBorder(nil, container.NewHBox(nv.closeBtn, nv.saveBtn), nil, nil, nv.editor)
	return nv
}

func (nv *NotepadView) Content() fyne.CanvasObject {
	return nv.content
}

func (nv *NotepadView) Receive(channel string, payload interface{}) {
	if channel != ipc.NotepadData {
		return
	}

	doc, ok := payload.(files.Document)
	if !ok {
		return
	}

	nv.path = doc.Path
	nv.editor.SetText(doc.Data)
	nv.saveBtn.Enable()
}
