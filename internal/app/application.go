package app

import (
	"context"
	"runtime"

	"loc-editor/internal/build"
	"loc-editor/internal/config"
	"loc-editor/internal/files"
	"loc-editor/internal/gui"
	"loc-editor/internal/ipc"
	"loc-editor/internal/logger"
	"loc-editor/internal/menu"
	"loc-editor/internal/settings"
	"loc-editor/internal/shutdown"
	"loc-editor/internal/task"
	"loc-editor/internal/windows"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppID        = "com.loceditor.app"
	AppVersion   = "1.0.0"
	journalSize  = 200
	appComponent = "Application"
)

type Application struct {
	fyneApp   fyne.App
	bus       *ipc.Bus
	registry  *windows.Registry
	lifecycle *Lifecycle
	shutdown  *shutdown.Manager
	logger    logger.Logger
}

func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)

	log.Info(appComponent, "starting application", map[string]interface{}{
		"version":  AppVersion,
		"env":      cfg.Env,
		"compiler": cfg.Compiler.Path,
	})

	journal := ipc.NewJournal(journalSize)
	executor := task.Fyne{}
	bus := ipc.NewBus(executor, journal, log)

	host := gui.NewHost(fyneApp, bus, journal, log)
	opts := windows.DefaultOptions()
	opts.Journal = journal
	registry := windows.NewRegistry(host, fyneApp.Quit, opts, log)
	host.SetMenu(menu.Build(menu.Config{Platform: runtime.GOOS, DevMode: cfg.DevMode()}, registry))

	ctx, cancel := context.WithCancel(context.Background())
	store := settings.NewStore(cfg.StateFile, log)
	host.SetRootSource(store.Root)

	handlers := NewHandlers(ctx, HandlersDeps{
		Registry: registry,
		Bridge:   files.NewBridge(log),
		Store:    store,
		Builder:  build.NewRunner(cfg.Compiler.Path, cfg.Compiler.Output, log),
		Dialogs:  host,
		Executor: executor,
		Paths:    cfg.Paths,
		Logger:   log,
	})
	handlers.Register(bus)

	application := &Application{
		fyneApp:   fyneApp,
		bus:       bus,
		registry:  registry,
		lifecycle: NewLifecycle(store, registry, cancel, log),
		shutdown:  shutdown.NewManager(log),
		logger:    log,
	}

	log.Info(appComponent, "initialization complete", nil)
	return application, nil
}

// Run blocks until the application quits.
func (a *Application) Run() error {
	a.shutdown.Register(a.bus)
	a.shutdown.Register(a.lifecycle)
	a.shutdown.Listen(func() {
		fyne.Do(a.registry.Quit)
	})

	a.lifecycle.Start()
	a.fyneApp.Run()

	a.logger.Info(appComponent, "event loop stopped", nil)
	a.shutdown.Shutdown()
	return nil
}
