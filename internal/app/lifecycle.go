package app

import (
	"context"
	"fmt"

	"loc-editor/internal/ipc"
	"loc-editor/internal/logger"
	"loc-editor/internal/settings"
	"loc-editor/internal/windows"
)

const lifecycleComponent = "Lifecycle"

// Lifecycle opens the initial windows and cancels in-flight work on
// shutdown.
type Lifecycle struct {
	store      *settings.Store
	registry   *windows.Registry
	logger     logger.Logger
	cancel     context.CancelFunc
	isShutdown bool
}

func NewLifecycle(store *settings.Store, registry *windows.Registry, cancel context.CancelFunc, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		store:    store,
		registry: registry,
		logger:   log,
		cancel:   cancel,
	}
}

// Start loads the persisted root path and opens the main window, the
// settings window when no root is configured, and the hidden notepad.
func (l *Lifecycle) Start() {
	root, err := l.store.Load()
	if err != nil {
		l.logger.Error(lifecycleComponent, err, nil)
	}

	l.registry.OpenMain(root)
	if err != nil {
		l.registry.Send(windows.Main, ipc.Error, ipc.ErrorMessage{
			Title:   "Unable to load settings",
			Message: fmt.Sprintf("%v", err),
		})
	}

	if root == "" {
		l.registry.OpenSettings()
	}
	l.registry.OpenNotepad()

	l.logger.Info(lifecycleComponent, "windows opened", map[string]interface{}{
		"root":          root,
		"settings_open": root == "",
	})
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.cancel()
	l.logger.Info(lifecycleComponent, "shutdown sequence completed", nil)
}
