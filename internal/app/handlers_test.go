package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loc-editor/internal/build"
	"loc-editor/internal/config"
	"loc-editor/internal/files"
	"loc-editor/internal/ipc"
	"loc-editor/internal/logger"
	"loc-editor/internal/settings"
	"loc-editor/internal/task"
	"loc-editor/internal/windows"
	"loc-editor/internal/windows/windowstest"
)

type fakeBuilder struct {
	result build.Result
	err    error
	roots  []string
}

func (b *fakeBuilder) Rebuild(_ context.Context, root string) (build.Result, error) {
	b.roots = append(b.roots, root)
	return b.result, b.err
}

type fakeDialogs struct {
	shown []ipc.ErrorMessage
}

func (d *fakeDialogs) ShowError(title, message string) {
	d.shown = append(d.shown, ipc.ErrorMessage{Title: title, Message: message})
}

type harness struct {
	root      string
	factory   *windowstest.Factory
	registry  *windows.Registry
	store     *settings.Store
	bus       *ipc.Bus
	builder   *fakeBuilder
	dialogs   *fakeDialogs
	lifecycle *Lifecycle
	cancelled bool
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		root:    t.TempDir(),
		factory: &windowstest.Factory{},
		builder: &fakeBuilder{},
		dialogs: &fakeDialogs{},
	}

	log := logger.NoOp{}
	h.registry = windows.NewRegistry(h.factory, func() {}, windows.Options{}, log)
	h.store = settings.NewStore(filepath.Join(t.TempDir(), "loc-editor", ".path"), log)
	h.bus = ipc.NewBus(task.Inline{}, nil, log)

	handlers := NewHandlers(context.Background(), HandlersDeps{
		Registry: h.registry,
		Bridge:   files.NewBridge(log),
		Store:    h.store,
		Builder:  h.builder,
		Dialogs:  h.dialogs,
		Executor: task.Inline{},
		Paths: config.PathsConfig{
			Version:         "Interface/Wrap/MainMenu/Main2/Version.txt",
			ApplicationName: "Client/ApplicationName.txt",
		},
		Logger: log,
	})
	handlers.Register(h.bus)

	h.lifecycle = NewLifecycle(h.store, h.registry, func() { h.cancelled = true }, log)
	return h
}

// start persists the root, then opens the windows the way the application
// does at launch.
func (h *harness) start(t *testing.T) {
	t.Helper()
	require.NoError(t, h.store.Set(h.root))
	h.lifecycle.Start()
}

func (h *harness) window(t *testing.T, kind windows.Kind) *windowstest.Window {
	t.Helper()
	live := h.factory.Live(kind)
	require.Len(t, live, 1, "live %s windows", kind)
	return live[0]
}

func (h *harness) writeText(t *testing.T, rel, text string) string {
	t.Helper()
	p := filepath.Join(h.root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, files.WriteText(p, text))
	return p
}

func TestLifecycleStartWithoutRoot(t *testing.T) {
	h := newHarness(t)

	h.lifecycle.Start()

	main := h.window(t, windows.Main)
	assert.True(t, main.Visible)
	assert.Equal(t, windows.MainData{Root: ""}, main.Spec.Data)
	assert.True(t, h.window(t, windows.Settings).Visible)
	assert.False(t, h.window(t, windows.Notepad).Visible)
}

func TestLifecycleStartWithBlankStateFile(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(h.store.File()), 0o755))
	require.NoError(t, os.WriteFile(h.store.File(), []byte(" \n"), 0o644))

	h.lifecycle.Start()

	assert.Equal(t, windows.MainData{Root: ""}, h.window(t, windows.Main).Spec.Data)
	assert.True(t, h.window(t, windows.Settings).Visible)
	_, failed := h.window(t, windows.Main).Last(ipc.Error)
	assert.False(t, failed)
}

func TestLifecycleStartWithRoot(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	assert.Equal(t, windows.MainData{Root: h.root}, h.window(t, windows.Main).Spec.Data)
	assert.Empty(t, h.factory.Live(windows.Settings))
	assert.Len(t, h.factory.Live(windows.Notepad), 1)
}

func TestLifecycleShutdownOnce(t *testing.T) {
	h := newHarness(t)

	h.lifecycle.Shutdown()
	h.lifecycle.Shutdown()

	assert.True(t, h.cancelled)
}

func TestSettingsEditPersistsRoot(t *testing.T) {
	h := newHarness(t)
	h.lifecycle.Start()

	h.bus.Publish(ipc.SettingsEdit, "/games/client")

	raw, err := os.ReadFile(h.store.File())
	require.NoError(t, err)
	assert.Equal(t, "/games/client", string(raw))
	assert.Equal(t, "/games/client", h.store.Root())

	got, ok := h.window(t, windows.Main).Last(ipc.SettingsSet)
	require.True(t, ok)
	assert.Equal(t, "/games/client", got)
	assert.Empty(t, h.factory.Live(windows.Settings))
}

func TestSettingsEditAcceptsEmptyRoot(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.bus.Publish(ipc.SettingsEdit, "")

	raw, err := os.ReadFile(h.store.File())
	require.NoError(t, err)
	assert.Empty(t, raw)
	assert.Empty(t, h.store.Root())
}

func TestSettingsErrorMessageShowsDialog(t *testing.T) {
	h := newHarness(t)
	h.lifecycle.Start()

	h.bus.Publish(ipc.SettingsErrorMessage, ipc.ErrorMessage{Title: "Settings", Message: "Choose the client folder first"})

	require.Len(t, h.dialogs.shown, 1)
	assert.Equal(t, "Settings", h.dialogs.shown[0].Title)
	assert.True(t, h.window(t, windows.Settings).Visible)
}

func TestEditFileShowsNotepad(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	full := h.writeText(t, "Client/ApplicationName.txt", "Loc Client")

	h.bus.Publish(ipc.EditWindowTitle, nil)

	notepad := h.window(t, windows.Notepad)
	assert.True(t, notepad.Visible)
	assert.Equal(t, files.Title(h.root, full), notepad.Title)

	got, ok := notepad.Last(ipc.NotepadData)
	require.True(t, ok)
	assert.Equal(t, files.Document{Path: full, Data: "Loc Client"}, got)
}

func TestEditVersionMissingFileKeepsNotepadHidden(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.bus.Publish(ipc.EditVersion, nil)

	assert.False(t, h.window(t, windows.Notepad).Visible)
	got, ok := h.window(t, windows.Main).Last(ipc.Error)
	require.True(t, ok)
	assert.Equal(t, "Unable to open file", got.(ipc.ErrorMessage).Title)
}

func TestEditFileRejectsTraversal(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.bus.Publish(ipc.EditFile, "../outside.txt")

	_, ok := h.window(t, windows.Main).Last(ipc.Error)
	assert.True(t, ok)
	assert.False(t, h.window(t, windows.Notepad).Visible)
}

func TestNotepadSaveRecyclesWindow(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	full := h.writeText(t, "a.txt", "before")
	h.bus.Publish(ipc.EditFile, "a.txt")
	first := h.window(t, windows.Notepad)

	h.bus.Publish(ipc.NotepadSave, files.Document{Path: full, Data: "after"})

	text, err := files.ReadText(full)
	require.NoError(t, err)
	assert.Equal(t, "after", text)

	got, ok := h.window(t, windows.Main).Last(ipc.NotepadSaved)
	require.True(t, ok)
	assert.Equal(t, full, got)

	assert.True(t, first.Closed)
	fresh := h.window(t, windows.Notepad)
	assert.NotSame(t, first, fresh)
	assert.False(t, fresh.Visible)
	assert.Equal(t, 2, h.factory.Count(windows.Notepad))
}

func TestNotepadSaveFailureStillRecycles(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	first := h.window(t, windows.Notepad)

	missingDir := filepath.Join(h.root, "missing", "a.txt")
	h.bus.Publish(ipc.NotepadSave, files.Document{Path: missingDir, Data: "x"})

	_, ok := h.window(t, windows.Main).Last(ipc.Error)
	assert.True(t, ok)
	assert.True(t, first.Closed)
	assert.Len(t, h.factory.Live(windows.Notepad), 1)
}

func TestAddFileCreatesUTF16File(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.bus.Publish(ipc.CreateWindowAddFile, nil)
	add := h.window(t, windows.Add)

	h.bus.Publish(ipc.AddFile, files.NewFile{Path: "notes", FileName: "todo", Text: "hello"})

	raw, err := os.ReadFile(filepath.Join(h.root, "notes", "todo.txt"))
	require.NoError(t, err)
	assert.Equal(t, []byte{'h', 0, 'e', 0, 'l', 0, 'l', 0, 'o', 0}, raw)

	got, ok := h.window(t, windows.Main).Last(ipc.NotepadSaved)
	require.True(t, ok)
	assert.Equal(t, "notes/todo.txt", got)
	assert.True(t, add.Closed)
}

func TestAddFileFailureKeepsWindowOpen(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.bus.Publish(ipc.CreateWindowAddFile, nil)

	h.bus.Publish(ipc.AddFile, files.NewFile{Path: "notes", FileName: "a/b"})

	assert.True(t, h.window(t, windows.Add).Visible)
	got, ok := h.window(t, windows.Main).Last(ipc.Error)
	require.True(t, ok)
	assert.Equal(t, "Unable to create file", got.(ipc.ErrorMessage).Title)
}

func TestCreateWindowAddFileFocusesExisting(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.bus.Publish(ipc.CreateWindowAddFile, nil)
	h.bus.Publish(ipc.CreateWindowAddFile, nil)

	assert.Equal(t, 1, h.factory.Count(windows.Add))
	assert.Equal(t, 1, h.window(t, windows.Add).Focuses)
}

func TestCloseWindowByName(t *testing.T) {
	h := newHarness(t)
	h.lifecycle.Start()
	settingsWin := h.window(t, windows.Settings)

	h.bus.Publish(ipc.ActionCloseWindow, ipc.CloseWindow{Window: "settings"})

	assert.True(t, settingsWin.Closed)
	assert.False(t, h.registry.IsOpen(windows.Settings))
}

func TestRebuildReportsResult(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.builder.result = build.Result{ID: "run-1", ExitCode: 0}

	h.bus.Publish(ipc.Rebuild, nil)

	require.Equal(t, []string{h.root}, h.builder.roots)
	got, ok := h.window(t, windows.Main).Last(ipc.RebuildDone)
	require.True(t, ok)
	assert.Equal(t, "run-1", got.(build.Result).ID)
	_, failed := h.window(t, windows.Main).Last(ipc.Error)
	assert.False(t, failed)
}

func TestRebuildFailureReportsError(t *testing.T) {
	h := newHarness(t)
	h.start(t)
	h.builder.result = build.Result{ExitCode: 3}
	h.builder.err = &build.ExitError{Code: 3, Output: "boom"}

	h.bus.Publish(ipc.Rebuild, nil)

	_, ok := h.window(t, windows.Main).Last(ipc.RebuildDone)
	assert.True(t, ok)
	got, ok := h.window(t, windows.Main).Last(ipc.Error)
	require.True(t, ok)
	assert.Equal(t, "Rebuild failed", got.(ipc.ErrorMessage).Title)
}

func TestFilesList(t *testing.T) {
	h := newHarness(t)
	h.lifecycle.Start()

	h.bus.Publish(ipc.FilesList, nil)
	got, ok := h.window(t, windows.Main).Last(ipc.FilesListed)
	require.True(t, ok)
	assert.Empty(t, got)

	require.NoError(t, h.store.Set(h.root))
	h.writeText(t, "b/two.txt", "2")
	h.writeText(t, "a/one.txt", "1")
	require.NoError(t, os.WriteFile(filepath.Join(h.root, "skip.bin"), []byte{1}, 0o644))

	h.bus.Publish(ipc.FilesList, nil)
	got, ok = h.window(t, windows.Main).Last(ipc.FilesListed)
	require.True(t, ok)
	assert.Equal(t, []string{"a/one.txt", "b/two.txt"}, got)
}

func TestInvalidPayloadIsReported(t *testing.T) {
	h := newHarness(t)
	h.start(t)

	h.bus.Publish(ipc.EditFile, 42)

	got, ok := h.window(t, windows.Main).Last(ipc.Error)
	require.True(t, ok)
	assert.Equal(t, "Invalid message", got.(ipc.ErrorMessage).Title)
}
