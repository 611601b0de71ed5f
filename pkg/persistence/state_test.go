package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vacsync/vacsync-go/pkg/status"
)

func TestStateStore(t *testing.T) {
	t.Run("NewStateStore", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "state.json"))
		if store == nil {
			t.Fatal("NewStateStore() returned nil")
		}
	})

	t.Run("SaveAndLoadEmpty", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "state.json"))

		state := &DeviceState{
			Version: 1,
			SavedAt: time.Now(),
		}

		if err := store.Save(state); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if got.Version != 1 {
			t.Errorf("Version = %d, want 1", got.Version)
		}
	})

	t.Run("LoadNonExistent", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "nonexistent.json"))

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		// Should return nil (empty state) for non-existent file
		if got != nil {
			t.Errorf("Load() = %v, want nil for non-existent file", got)
		}
	})

	t.Run("SessionRoundTrip", func(t *testing.T) {
		dir := t.TempDir()
		store := NewStateStore(filepath.Join(dir, "nested", "state.json"))

		state := &DeviceState{
			DeviceID: "123456789",
			Model:    "dreame.vacuum.r2228o",
			Firmware: "4.3.9_1172",
			Session: status.SessionSnapshot{
				CleanupStarted:          true,
				PreviousSelfCleanArea:   20,
				PreviousSelfCleanTime:   25,
				PreviousCleanGeniusMode: status.CleanGeniusModeDeep,
			},
		}

		if err := store.Save(state); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := store.Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if got.DeviceID != "123456789" {
			t.Errorf("DeviceID = %q, want 123456789", got.DeviceID)
		}
		if got.Model != "dreame.vacuum.r2228o" {
			t.Errorf("Model = %q", got.Model)
		}
		if got.Session != state.Session {
			t.Errorf("Session = %+v, want %+v", got.Session, state.Session)
		}
		if got.SavedAt.IsZero() {
			t.Error("SavedAt not set")
		}
	})

	t.Run("RejectsNewerVersion", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")
		if err := os.WriteFile(path, []byte(`{"version": 99, "device_id": "1"}`), 0644); err != nil {
			t.Fatal(err)
		}

		_, err := NewStateStore(path).Load()
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("Load() error = %v, want ErrUnsupportedVersion", err)
		}
	})

	t.Run("CorruptFile", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")
		if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := NewStateStore(path).Load(); err == nil {
			t.Error("Load() expected error for corrupt file")
		}
	})

	t.Run("Clear", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "state.json")
		store := NewStateStore(path)

		if err := store.Save(&DeviceState{DeviceID: "1"}); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		if err := store.Clear(); err != nil {
			t.Fatalf("Clear() error = %v", err)
		}

		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("state file still exists after Clear()")
		}

		// Clearing twice is fine.
		if err := store.Clear(); err != nil {
			t.Fatalf("second Clear() error = %v", err)
		}
	})
}
