package app

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/dshills/bindkit/internal/assets"
	"github.com/dshills/bindkit/internal/config"
	"github.com/dshills/bindkit/internal/control"
	"github.com/dshills/bindkit/internal/device"
	"github.com/dshills/bindkit/internal/logging"
	"github.com/dshills/bindkit/internal/prompt"
	"github.com/dshills/bindkit/internal/virtual"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the controls file. Empty selects config.ConfigPath("").
	ConfigPath string

	// AssetsDir is the directory holding one sub-directory of icons per
	// prompt family. Empty selects config.AssetsDir("").
	AssetsDir string

	// LogLevel sets the logging level (debug, info, warn, error).
	// Empty selects config.LogLevel("", "info").
	LogLevel string

	// Watch enables live reload of the controls file. BINDKIT_WATCH can
	// also enable it.
	Watch bool

	// Logger overrides the logger built from LogLevel.
	Logger *logging.Logger
}

// Application is the input subsystem context. It owns the virtual controls
// and everything that feeds them. Frame, EndFrame and the accessors must be
// called from the frame thread.
type Application struct {
	opts       Options
	configPath string
	logger     *logging.Logger

	devices  device.Provider
	poller   virtual.Poller
	controls *virtual.Set
	coord    *control.Coordinator
	catalog  *assets.Catalog[string]
	resolver *prompt.Resolver[string]

	watcher  *config.Watcher
	reloader *config.Reloader

	shutdown atomic.Bool
}

// New creates the application and loads the controls file. A missing file
// means the default bindings. devices may be nil (no gamepad ever connects).
func New(opts Options, devices device.Provider, poller virtual.Poller) (*Application, error) {
	if poller == nil {
		return nil, &InitError{Component: "input", Err: errors.New("no poller")}
	}

	opts.AssetsDir = config.AssetsDir(opts.AssetsDir)
	opts.Watch = config.Watch(opts.Watch)

	app := &Application{
		opts:       opts,
		configPath: config.ConfigPath(opts.ConfigPath),
		devices:    devices,
		poller:     poller,
	}

	if err := app.bootstrap(); err != nil {
		app.closeWatcher()
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Logging
	logger, err := app.buildLogger()
	if err != nil {
		return &InitError{Component: "logging", Err: err}
	}
	app.logger = logger

	// 2. Virtual controls and the coordinator that binds them
	app.controls = virtual.NewSet()
	buttons, sticks := app.controls.Controls()
	app.coord, err = control.NewCoordinator(buttons, sticks, control.WithLogger(app.logger))
	if err != nil {
		return &InitError{Component: "controls", Err: err}
	}

	// 3. Prompt icons
	app.catalog = assets.NewCatalog("")
	if app.opts.AssetsDir != "" {
		app.catalog, err = assets.IndexDir(os.DirFS(app.opts.AssetsDir), ".")
		if err != nil {
			return &InitError{Component: "assets", Err: err}
		}
		app.logger.Debug("indexed %d prompt icons in %s", app.catalog.Len(), app.opts.AssetsDir)
	}
	app.resolver = prompt.NewResolver[string](app.coord, app.devices, app.catalog, prompt.WithLogger(app.logger))

	// 4. Bindings
	cfg, err := config.Load(app.configPath)
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	if cfg == nil {
		app.logger.Info("no controls file at %s, using defaults", app.configPath)
	}
	if err := app.coord.Load(cfg); err != nil {
		return &InitError{Component: "controls", Err: err}
	}

	// 5. Live reload. Watch errors are non-fatal.
	if app.opts.Watch {
		w, err := config.NewWatcher(app.configPath, app.logger)
		if err != nil {
			app.logger.Warn("not watching %s: %v", app.configPath, err)
		} else {
			app.watcher = w
			app.reloader = config.NewReloader(w, app.logger)
		}
	}

	return nil
}

func (app *Application) buildLogger() (*logging.Logger, error) {
	if app.opts.Logger != nil {
		return app.opts.Logger, nil
	}
	level := config.LogLevel(app.opts.LogLevel, "info")
	if !logging.ValidLevel(level) {
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(level)
	logger := logging.New(cfg)
	logging.SetLogger(logger)
	return logger, nil
}

// Frame starts a frame: a pending controls file change is applied, then every
// virtual control samples the poller. A failed reload keeps the previous
// bindings and its error is returned after the controls are updated.
func (app *Application) Frame(now time.Time) error {
	if app.shutdown.Load() {
		return ErrShutdown
	}

	var reloadErr error
	if app.reloader != nil {
		_, reloadErr = app.reloader.ApplyPending(app.coord)
	}

	app.controls.Update(app.poller, now)
	return reloadErr
}

// EndFrame consumes the frame's pressed and released edges.
func (app *Application) EndFrame() {
	if app.shutdown.Load() {
		return
	}
	app.coord.Consume()
}

// Shutdown stops the watcher and releases cached prompts. It is safe to call
// more than once.
func (app *Application) Shutdown() error {
	if !app.shutdown.CompareAndSwap(false, true) {
		return nil
	}
	err := app.closeWatcher()
	app.resolver.Reset()
	app.coord.Clear()
	app.logger.Debug("shut down")
	return err
}

func (app *Application) closeWatcher() error {
	if app.watcher == nil {
		return nil
	}
	return app.watcher.Close()
}

// IsShutdown reports whether Shutdown has been called.
func (app *Application) IsShutdown() bool {
	return app.shutdown.Load()
}

// ConfigPath returns the controls file in use.
func (app *Application) ConfigPath() string {
	return app.configPath
}

// Watching reports whether the controls file is live reloaded.
func (app *Application) Watching() bool {
	return app.watcher != nil
}

// Logger returns the application logger.
func (app *Application) Logger() *logging.Logger {
	return app.logger
}

// Controls returns the virtual controls.
func (app *Application) Controls() *virtual.Set {
	return app.controls
}

// Coordinator returns the binding coordinator.
func (app *Application) Coordinator() *control.Coordinator {
	return app.coord
}

// Resolver returns the prompt resolver.
func (app *Application) Resolver() *prompt.Resolver[string] {
	return app.resolver
}

// Catalog returns the indexed prompt icons.
func (app *Application) Catalog() *assets.Catalog[string] {
	return app.catalog
}
