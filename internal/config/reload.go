package config

import (
	"github.com/dshills/bindkit/internal/binding"
	"github.com/dshills/bindkit/internal/logging"
)

// Target is what a Reloader loads bindings into. *control.Coordinator
// implements it.
type Target interface {
	Load(cfg *binding.Config) error
	Config() *binding.Config
}

// Reloader applies controls file changes between frames.
type Reloader struct {
	path    string
	watcher *Watcher
	load    func(path string) (*binding.Config, error)
	logger  *logging.Logger
}

// NewReloader creates a reloader for the file watched by w.
func NewReloader(w *Watcher, logger *logging.Logger) *Reloader {
	return &Reloader{
		path:    w.Path(),
		watcher: w,
		load:    Load,
		logger:  logging.OrNull(logger).WithComponent("config-reload"),
	}
}

// ApplyPending reloads the controls file into t if it changed. It reports
// whether new bindings were applied.
//
// A file that fails to parse or leaves a control unbound is rejected: t is
// reloaded with its previous config and the error is returned.
func (r *Reloader) ApplyPending(t Target) (bool, error) {
	if !r.watcher.Take() {
		return false, nil
	}

	cfg, err := r.load(r.path)
	if err != nil {
		r.logger.Error("reload %s: %v", r.path, err)
		return false, err
	}

	prev := t.Config()
	if err := t.Load(cfg); err != nil {
		r.logger.Error("reload %s: %v", r.path, err)
		if rerr := t.Load(prev); rerr != nil {
			r.logger.Error("restoring previous bindings: %v", rerr)
		}
		return false, err
	}

	r.logger.Info("reloaded %s", r.path)
	return true, nil
}
