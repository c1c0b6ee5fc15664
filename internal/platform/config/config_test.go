package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"countdown/internal/platform/config"
)

func TestNewRequiresDataDir(t *testing.T) {
	t.Parallel()
	if _, err := config.New(""); err == nil {
		t.Fatalf("expected error for empty data dir")
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DialogDismiss != 5*time.Second || cfg.NotificationTTL != 3*time.Second {
		t.Fatalf("unexpected default delays: %+v", cfg)
	}
	if len(cfg.Presets) != len(config.DefaultPresets) {
		t.Fatalf("expected default presets, got %v", cfg.Presets)
	}
	if cfg.DBPath != filepath.Join(dir, "history.db") {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
}

func TestLoadOverlaysConfigFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	body := "presets: [1, 2]\ndialog_dismiss: 2s\nnotification_ttl: 500ms\nlog_level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Presets) != 2 || cfg.Presets[0] != 1 || cfg.Presets[1] != 2 {
		t.Fatalf("expected presets [1 2], got %v", cfg.Presets)
	}
	if cfg.DialogDismiss != 2*time.Second || cfg.NotificationTTL != 500*time.Millisecond {
		t.Fatalf("unexpected delays: %v %v", cfg.DialogDismiss, cfg.NotificationTTL)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug level, got %s", cfg.LogLevel)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Parallel()
	for name, body := range map[string]string{
		"negative preset": "presets: [5, -1]\n",
		"bad duration":    "dialog_dismiss: soon\n",
		"bad yaml":        "presets: [\n",
	} {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644); err != nil {
			t.Fatalf("%s: write config: %v", name, err)
		}
		if _, err := config.Load(dir); err == nil {
			t.Fatalf("%s: expected load error", name)
		}
	}
}
