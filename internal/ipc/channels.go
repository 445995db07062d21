// Package ipc carries named messages between the windows and the controller.
package ipc

// Inbound channels are published by views and handled by the controller.
const (
	EditVersion          = "edit:version"
	EditWindowTitle      = "edit:windowTitle"
	EditFile             = "edit:file"
	SettingsEdit         = "settings:edit"
	SettingsErrorMessage = "settings:errorMessage"
	NotepadSave          = "notepad:save"
	AddFile              = "add:file"
	CreateWindowAddFile  = "create:windowAddFile"
	ActionCloseWindow    = "action:closeWindow"
	Rebuild              = "rebuild"
	FilesList            = "files:list"
)

// Outbound channels are sent to a specific window.
const (
	Error        = "error"
	SettingsSet  = "settings:set"
	NotepadData  = "notepad:data"
	NotepadSaved = "notepad:saved"
	RebuildDone  = "rebuild:done"
	FilesListed  = "files:listed"
)

// ErrorMessage asks for a blocking error dialog.
type ErrorMessage struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// CloseWindow names the window a view wants closed.
type CloseWindow struct {
	Window string `json:"window"`
}
