package app

import (
	"context"

	"loc-editor/internal/build"
	"loc-editor/internal/config"
	"loc-editor/internal/files"
	"loc-editor/internal/ipc"
	"loc-editor/internal/logger"
	"loc-editor/internal/settings"
	"loc-editor/internal/task"
	"loc-editor/internal/windows"
)

const handlersComponent = "Handlers"

// Builder runs the external compiler.
type Builder interface {
	Rebuild(ctx context.Context, root string) (build.Result, error)
}

// Dialogs shows blocking dialogs on behalf of views.
type Dialogs interface {
	ShowError(title, message string)
}

// Handlers reacts to inbound messages. Every handler and continuation runs
// on the UI goroutine; blocking work goes through task.Run.
//
// All failures follow one policy: they are logged and sent to the main
// window as an ipc.Error notification.
type Handlers struct {
	ctx      context.Context
	registry *windows.Registry
	bridge   *files.Bridge
	store    *settings.Store
	builder  Builder
	dialogs  Dialogs
	exec     task.Executor
	paths    config.PathsConfig
	logger   logger.Logger
}

type HandlersDeps struct {
	Registry *windows.Registry
	Bridge   *files.Bridge
	Store    *settings.Store
	Builder  Builder
	Dialogs  Dialogs
	Executor task.Executor
	Paths    config.PathsConfig
	Logger   logger.Logger
}

func NewHandlers(ctx context.Context, deps HandlersDeps) *Handlers {
	return &Handlers{
		ctx:      ctx,
		registry: deps.Registry,
		bridge:   deps.Bridge,
		store:    deps.Store,
		builder:  deps.Builder,
		dialogs:  deps.Dialogs,
		exec:     deps.Executor,
		paths:    deps.Paths,
		logger:   deps.Logger,
	}
}

// Register subscribes every handler to its channel.
func (h *Handlers) Register(bus *ipc.Bus) {
	routes := map[string]ipc.Handler{
		ipc.EditVersion:          h.HandleEditVersion,
		ipc.EditWindowTitle:      h.HandleEditWindowTitle,
		ipc.EditFile:             h.HandleEditFile,
		ipc.SettingsEdit:         h.HandleSettingsEdit,
		ipc.SettingsErrorMessage: h.HandleSettingsErrorMessage,
		ipc.NotepadSave:          h.HandleNotepadSave,
		ipc.AddFile:              h.HandleAddFile,
		ipc.CreateWindowAddFile:  h.HandleCreateWindowAddFile,
		ipc.ActionCloseWindow:    h.HandleCloseWindow,
		ipc.Rebuild:              h.HandleRebuild,
		ipc.FilesList:            h.HandleFilesList,
	}

	for channel, handler := range routes {
		bus.Subscribe(channel, handler)
	}
}

func (h *Handlers) HandleEditVersion(ipc.Message) {
	h.loadTextFile(h.paths.Version)
}

func (h *Handlers) HandleEditWindowTitle(ipc.Message) {
	h.loadTextFile(h.paths.ApplicationName)
}

func (h *Handlers) HandleEditFile(msg ipc.Message) {
	rel, err := ipc.Decode[string](msg)
	if err != nil {
		h.report("Invalid message", err)
		return
	}
	h.loadTextFile(rel)
}

func (h *Handlers) HandleSettingsEdit(msg ipc.Message) {
	root, err := ipc.Decode[string](msg)
	if err != nil {
		h.report("Invalid message", err)
		return
	}

	task.Run(h.exec, func() (struct{}, error) {
		return struct{}{}, h.store.Set(root)
	}, func(res task.Result[struct{}]) {
		if !res.OK() {
			h.report("Unable to save settings", res.Err)
			return
		}

		h.registry.Send(windows.Main, ipc.SettingsSet, root)
		h.registry.Close(windows.Settings)
	})
}

func (h *Handlers) HandleSettingsErrorMessage(msg ipc.Message) {
	em, err := ipc.Decode[ipc.ErrorMessage](msg)
	if err != nil {
		h.report("Invalid message", err)
		return
	}

	h.dialogs.ShowError(em.Title, em.Message)
}

func (h *Handlers) HandleNotepadSave(msg ipc.Message) {
	doc, err := ipc.Decode[files.Document](msg)
	if err != nil {
		h.report("Invalid message", err)
		return
	}

	task.Run(h.exec, func() (struct{}, error) {
		return struct{}{}, h.bridge.Save(doc)
	}, func(res task.Result[struct{}]) {
		if res.OK() {
			h.registry.Send(windows.Main, ipc.NotepadSaved, doc.Path)
		} else {
			h.report("Unable to save file", res.Err)
		}

		h.registry.Close(windows.Notepad)
	})
}

func (h *Handlers) HandleAddFile(msg ipc.Message) {
	nf, err := ipc.Decode[files.NewFile](msg)
	if err != nil {
		h.report("Invalid message", err)
		return
	}

	root := h.store.Root()
	task.Run(h.exec, func() (string, error) {
		return h.bridge.Create(root, nf)
	}, func(res task.Result[string]) {
		if !res.OK() {
			h.report("Unable to create file", res.Err)
			return
		}

		h.registry.Send(windows.Main, ipc.NotepadSaved, res.Value)
		h.registry.Close(windows.Add)
	})
}

func (h *Handlers) HandleCreateWindowAddFile(ipc.Message) {
	h.registry.OpenAdd()
}

func (h *Handlers) HandleCloseWindow(msg ipc.Message) {
	cw, err := ipc.Decode[ipc.CloseWindow](msg)
	if err != nil {
		h.report("Invalid message", err)
		return
	}

	h.registry.CloseNamed(cw.Window)
}

func (h *Handlers) HandleRebuild(ipc.Message) {
	root := h.store.Root()
	task.Run(h.exec, func() (build.Result, error) {
		return h.builder.Rebuild(h.ctx, root)
	}, func(res task.Result[build.Result]) {
		h.registry.Send(windows.Main, ipc.RebuildDone, res.Value)
		if !res.OK() {
			h.report("Rebuild failed", res.Err)
		}
	})
}

func (h *Handlers) HandleFilesList(ipc.Message) {
	root := h.store.Root()
	if root == "" {
		h.registry.Send(windows.Main, ipc.FilesListed, []string{})
		return
	}

	task.Run(h.exec, func() ([]string, error) {
		return h.bridge.List(root)
	}, func(res task.Result[[]string]) {
		if !res.OK() {
			h.report("Unable to list files", res.Err)
			return
		}

		h.registry.Send(windows.Main, ipc.FilesListed, res.Value)
	})
}

// loadTextFile opens rel in the notepad window. On failure the notepad
// stays hidden.
func (h *Handlers) loadTextFile(rel string) {
	root := h.store.Root()
	task.Run(h.exec, func() (files.Document, error) {
		return h.bridge.Load(root, rel)
	}, func(res task.Result[files.Document]) {
		if !res.OK() {
			h.report("Unable to open file", res.Err)
			return
		}

		h.registry.Send(windows.Notepad, ipc.NotepadData, res.Value)
		h.registry.SetTitle(windows.Notepad, files.Title(root, res.Value.Path))
		h.registry.Show(windows.Notepad)
	})
}

func (h *Handlers) report(title string, err error) {
	h.logger.Error(handlersComponent, err, map[string]interface{}{
		"title": title,
	})
	h.registry.Send(windows.Main, ipc.Error, ipc.ErrorMessage{Title: title, Message: err.Error()})
}
