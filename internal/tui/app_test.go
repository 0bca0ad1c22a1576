package tui

import (
	"path/filepath"
	"testing"

	"github.com/opsline/switchboard/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	a := New(nil, nil)

	if a.cfg == nil {
		t.Fatal("New(nil, nil) should fall back to the default config")
	}
	if a.logger == nil {
		t.Fatal("New(nil, nil) should fall back to a no-op logger")
	}
	if a.model.sequencer == nil {
		t.Error("expected the model to be wired with a sequencer")
	}
	if a.program != nil {
		t.Error("program should not exist before Run()")
	}
	if a.watcher != nil {
		t.Error("watcher should not exist before Run()")
	}
}

func TestNew_CarriesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Snapshot.Path = "demo/snapshot.yaml"
	cfg.Snapshot.Watch = false

	a := New(cfg, nil)

	if a.cfg != cfg {
		t.Error("App should keep the provided config")
	}
	if a.model.snapshotPath != "" {
		t.Errorf("model snapshotPath = %q, want empty when watch is disabled", a.model.snapshotPath)
	}
}

func TestStartWatcher_DisabledByConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Snapshot.Path = "demo/snapshot.yaml"
	cfg.Snapshot.Watch = false

	a := New(cfg, nil)
	if err := a.startWatcher(); err != nil {
		t.Fatalf("startWatcher() error = %v", err)
	}
	if a.watcher != nil {
		t.Error("no watcher should start when watching is disabled")
	}
}

func TestStartWatcher_NoPathConfigured(t *testing.T) {
	cfg := config.Default()
	cfg.Snapshot.Path = ""
	cfg.Snapshot.Watch = true

	a := New(cfg, nil)
	if err := a.startWatcher(); err != nil {
		t.Fatalf("startWatcher() error = %v", err)
	}
	if a.watcher != nil {
		t.Error("no watcher should start without a snapshot path")
	}
}

func TestStartWatcher_MissingDirectory(t *testing.T) {
	cfg := config.Default()
	cfg.Snapshot.Path = filepath.Join(t.TempDir(), "missing", "snapshot.yaml")
	cfg.Snapshot.Watch = true

	a := New(cfg, nil)
	if err := a.startWatcher(); err == nil {
		t.Error("expected an error for a nonexistent snapshot directory")
	}
	if a.watcher != nil {
		t.Error("watcher should stay nil when the watch cannot be established")
	}
}
