package tui

import (
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/opsline/switchboard/internal/config"
	"github.com/opsline/switchboard/internal/logging"
	"github.com/opsline/switchboard/internal/pipeline"
	"github.com/opsline/switchboard/internal/tui/msg"
)

// App wraps the bubbletea program and the snapshot watcher.
type App struct {
	program *tea.Program
	model   Model
	cfg     *config.Config
	logger  *logging.Logger
	watcher *pipeline.Watcher
}

// New creates the dashboard application.
func New(cfg *config.Config, logger *logging.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{
		model:  NewModel(cfg, logger),
		cfg:    cfg,
		logger: logger,
	}
}

// Run starts the dashboard and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Forward termination signals as a quit message so the alt screen is
	// restored before the process exits.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	if err := a.startWatcher(); err != nil {
		a.logger.Warn("snapshot watch disabled", "error", err)
	}

	_, err := a.program.Run()

	signal.Stop(sigChan)
	if a.watcher != nil {
		a.watcher.Stop()
	}

	return err
}

// startWatcher begins watching the configured snapshot file. Reloads are
// bridged into the update loop as messages; the watcher goroutine never
// touches model state.
func (a *App) startWatcher() error {
	if !a.cfg.Snapshot.Watch {
		return nil
	}
	path := a.cfg.Snapshot.ResolvePath()
	if path == "" {
		return nil
	}

	watcher, err := pipeline.NewWatcher(path, func(state *pipeline.State, err error) {
		a.program.Send(msg.SnapshotChangedMsg{State: state, Err: err})
	})
	if err != nil {
		return err
	}

	a.watcher = watcher
	watcher.Start()
	a.logger.Info("watching snapshot", "path", path)
	return nil
}
