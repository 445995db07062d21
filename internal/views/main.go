package views

import (
	"errors"
	"fmt"
	"time"

	"loc-editor/internal/build"
	"loc-editor/internal/ipc"
	"loc-editor/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// MainView lists the text files under the root directory and offers the
// fixed edit actions and the rebuild button.
type MainView struct {
	window fyne.Window
	pub    ipc.Publisher

	root  string
	all   []string
	shown []string

	content       *fyne.Container
	statusBar     *components.StatusBar
	filterEntry   *widget.Entry
	fileList      *widget.List
	versionBtn    *widget.Button
	windowNameBtn *widget.Button
	addBtn        *widget.Button
	rebuildBtn    *widget.Button
	refreshBtn    *widget.Button
}

func NewMainView(window fyne.Window, pub ipc.Publisher, root string) *MainView {
	mv := &MainView{
		window: window,
		pub:    pub,
		root:   root,
	}

	mv.initializeComponents()
	mv.buildLayout()
	mv.statusBar.SetRoot(root)

	if root != "" {
		mv.pub.Publish(ipc.FilesList, nil)
	}

	return mv
}

func (mv *MainView) initializeComponents() {
	mv.statusBar = components.NewStatusBar()

	mv.versionBtn = widget.NewButtonWithIcon("Edit version", theme.DocumentCreateIcon(), func() {
		mv.pub.Publish(ipc.EditVersion, nil)
	})
	mv.windowNameBtn = widget.NewButtonWithIcon("Edit window title", theme.DocumentCreateIcon(), func() {
		mv.pub.Publish(ipc.EditWindowTitle, nil)
	})
	mv.addBtn = widget.NewButtonWithIcon("Add text", theme.ContentAddIcon(), func() {
		mv.pub.Publish(ipc.CreateWindowAddFile, nil)
	})
	mv.rebuildBtn = widget.NewButtonWithIcon("Rebuild", theme.MediaReplayIcon(), func() {
		mv.statusBar.SetStatus("Rebuilding…")
		mv.pub.Publish(ipc.Rebuild, nil)
	})
	mv.rebuildBtn.Importance = widget.HighImportance
	mv.refreshBtn = widget.NewButtonWithIcon("", theme.ViewRefreshIcon(), func() {
		mv.pub.Publish(ipc.FilesList, nil)
	})

	mv.filterEntry = widget.NewEntry()
	mv.filterEntry.SetPlaceHolder("Filter files")
	mv.filterEntry.OnChanged = func(string) {
		mv.applyFilter()
	}

	mv.fileList = widget.NewList(
		func() int { return len(mv.shown) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(mv.shown[id])
		},
	)
	mv.fileList.OnSelected = func(id widget.ListItemID) {
		if id >= 0 && id < len(mv.shown) {
			mv.pub.Publish(ipc.EditFile, mv.shown[id])
		}
		mv.fileList.UnselectAll()
	}
}

func (mv *MainView) buildLayout() {
	actions := container.NewHBox(
		mv.versionBtn,
		mv.windowNameBtn,
		mv.addBtn,
		widget.NewSeparator(),
		mv.rebuildBtn,
	)

	top := container.NewVBox(
		actions,
		container.NewBorder(nil, nil, nil, mv.refreshBtn, mv.filterEntry),
	)

	mv.content = container.NewBorder(
		top,
		mv.statusBar.GetContainer(),
		nil,
		nil,
		mv.fileList,
	)
}

func (mv *MainView) Content() fyne.CanvasObject {
	return mv.content
}

func (mv *MainView) Receive(channel string, payload interface{}) {
	switch channel {
	case ipc.Error:
		em, _ := payload.(ipc.ErrorMessage)
		mv.statusBar.SetStatus(em.Title)
		mv.showError(em)
	case ipc.SettingsSet:
		mv.root, _ = payload.(string)
		mv.statusBar.SetRoot(mv.root)
		mv.statusBar.SetStatus("Root directory updated")
		mv.pub.Publish(ipc.FilesList, nil)
	case ipc.NotepadSaved:
		path, _ := payload.(string)
		mv.statusBar.SetStatus("Saved " + path)
		mv.pub.Publish(ipc.FilesList, nil)
	case ipc.FilesListed:
		mv.all, _ = payload.([]string)
		mv.applyFilter()
	case ipc.RebuildDone:
		res, _ := payload.(build.Result)
		mv.statusBar.SetStatus(fmt.Sprintf("Rebuild finished: exit %d in %s", res.ExitCode, res.Duration.Round(time.Millisecond)))
	}
}

func (mv *MainView) applyFilter() {
	mv.shown = FilterFiles(mv.all, mv.filterEntry.Text)
	mv.statusBar.SetFileCount(len(mv.shown), len(mv.all))
	mv.fileList.Refresh()
}

func (mv *MainView) showError(em ipc.ErrorMessage) {
	if mv.window == nil {
		return
	}

	d := dialog.NewError(errors.New(em.Message), mv.window)
	if em.Title != "" {
		d = dialog.NewCustom(em.Title, "OK", widget.NewLabel(em.Message), mv.window)
	}
	d.Show()
}
