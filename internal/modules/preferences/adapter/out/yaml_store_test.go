package out_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	preferencesout "countdown/internal/modules/preferences/adapter/out"
	"countdown/internal/modules/preferences/domain"
)

func TestFileStoreDefaultsWhenMissing(t *testing.T) {
	t.Parallel()
	store := preferencesout.NewFileStore(filepath.Join(t.TempDir(), "preferences.yaml"))
	prefs, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if prefs != domain.Default() {
		t.Fatalf("expected defaults, got %+v", prefs)
	}
}

func TestFileStoreRoundTripKeepsSoundOff(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")
	store := preferencesout.NewFileStore(path)
	if err := store.Save(context.Background(), domain.Preferences{Theme: "ocean", SoundEnabled: false}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.Contains(string(raw), "sound_enabled: false") || !strings.Contains(string(raw), "theme: ocean") {
		t.Fatalf("unexpected yaml: %s", raw)
	}
	prefs, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if prefs.Theme != "ocean" || prefs.SoundEnabled {
		t.Fatalf("expected ocean with sound off, got %+v", prefs)
	}
}

func TestFileStoreRejectsMalformedYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	if err := os.WriteFile(path, []byte("theme: [\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := preferencesout.NewFileStore(path).Load(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}
