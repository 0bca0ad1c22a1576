package msg

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/opsline/switchboard/internal/errors"
)

func TestTick(t *testing.T) {
	cmd := Tick(60 * time.Millisecond)
	if cmd == nil {
		t.Fatal("Tick() returned nil command")
	}

	// Executing the command blocks for approximately the interval.
	start := time.Now()
	result := cmd()
	elapsed := time.Since(start)

	if elapsed < 30*time.Millisecond {
		t.Errorf("Tick() returned too quickly: %v", elapsed)
	}
	if elapsed > 300*time.Millisecond {
		t.Errorf("Tick() took too long: %v", elapsed)
	}

	tick, ok := result.(TickMsg)
	if !ok {
		t.Fatalf("Tick() returned %T, want TickMsg", result)
	}
	if age := time.Since(time.Time(tick)); age > 200*time.Millisecond {
		t.Errorf("TickMsg time is too old: %v ago", age)
	}
}

func TestLoadSnapshotAsync(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.yaml")
	data := []byte("scenario: Billing dispute\nphase: primary\nrecords:\n  - role: primary\n    status: processing\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	result := LoadSnapshotAsync(path)()

	loaded, ok := result.(SnapshotLoadedMsg)
	if !ok {
		t.Fatalf("LoadSnapshotAsync() returned %T, want SnapshotLoadedMsg", result)
	}
	if loaded.Err != nil {
		t.Fatalf("SnapshotLoadedMsg.Err = %v, want nil", loaded.Err)
	}
	if loaded.Path != path {
		t.Errorf("SnapshotLoadedMsg.Path = %q, want %q", loaded.Path, path)
	}
	if loaded.State == nil {
		t.Fatal("SnapshotLoadedMsg.State is nil")
	}
	if loaded.State.Scenario != "Billing dispute" {
		t.Errorf("State.Scenario = %q, want %q", loaded.State.Scenario, "Billing dispute")
	}
}

func TestLoadSnapshotAsyncMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	result := LoadSnapshotAsync(path)()

	loaded, ok := result.(SnapshotLoadedMsg)
	if !ok {
		t.Fatalf("LoadSnapshotAsync() returned %T, want SnapshotLoadedMsg", result)
	}
	if loaded.Err == nil {
		t.Fatal("SnapshotLoadedMsg.Err = nil, want error")
	}
	if !errors.Is(loaded.Err, errors.ErrSnapshotNotFound) {
		t.Errorf("SnapshotLoadedMsg.Err = %v, want ErrSnapshotNotFound", loaded.Err)
	}
}

func TestClearStatusAfter(t *testing.T) {
	result := ClearStatusAfter(10 * time.Millisecond)()

	if _, ok := result.(StatusExpiredMsg); !ok {
		t.Errorf("ClearStatusAfter() returned %T, want StatusExpiredMsg", result)
	}
}
