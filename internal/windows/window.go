package windows

// Window is a native window with its view loaded.
type Window interface {
	Show()
	Close()
	RequestFocus()
	SetTitle(title string)
	// Send delivers an outbound notification to the window's view.
	Send(channel string, payload interface{})
	// Reload rebuilds the view from its initial data.
	Reload()
	ToggleDevTools()
	// SetOnClosed registers fn to run after the window closed, whether the
	// user or the program closed it.
	SetOnClosed(fn func())
}

// Spec describes a window to create.
type Spec struct {
	Kind      Kind
	Title     string
	Width     float32
	Height    float32
	Hidden    bool
	FixedSize bool
	Data      interface{}
}

// MainData is the initial data of the main window's view.
type MainData struct {
	Root string
}

// Factory creates native windows. Create must not show the window.
type Factory interface {
	Create(spec Spec) Window
}

const AppTitle = "Loc Editor"

func mainSpec(root string) Spec {
	return Spec{Kind: Main, Title: AppTitle, Width: 1024, Height: 768, Data: MainData{Root: root}}
}

func addSpec() Spec {
	return Spec{Kind: Add, Title: "Add new text in client", Width: 350, Height: 500, FixedSize: true}
}

func settingsSpec() Spec {
	return Spec{Kind: Settings, Title: "Settings", Width: 350, Height: 200, FixedSize: true}
}

func notepadSpec() Spec {
	return Spec{Kind: Notepad, Title: "Notepad", Width: 500, Height: 400, Hidden: true}
}
