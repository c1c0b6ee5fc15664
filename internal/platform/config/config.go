package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDialogDismiss   = 5 * time.Second
	DefaultNotificationTTL = 3 * time.Second
)

var DefaultPresets = []int{5, 10, 15, 30, 60}

type Config struct {
	DataDir         string
	DBPath          string
	PrefsPath       string
	LogPath         string
	FilePath        string
	Presets         []int
	DialogDismiss   time.Duration
	NotificationTTL time.Duration
	LogLevel        string
}

// fileConfig mirrors the optional config.yaml overlay.
type fileConfig struct {
	Presets         []int  `yaml:"presets"`
	DialogDismiss   string `yaml:"dialog_dismiss"`
	NotificationTTL string `yaml:"notification_ttl"`
	LogLevel        string `yaml:"log_level"`
}

func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:         dataDir,
		DBPath:          filepath.Join(dataDir, "history.db"),
		PrefsPath:       filepath.Join(dataDir, "preferences.yaml"),
		LogPath:         filepath.Join(dataDir, "countdown.log"),
		FilePath:        filepath.Join(dataDir, "config.yaml"),
		Presets:         append([]int(nil), DefaultPresets...),
		DialogDismiss:   DefaultDialogDismiss,
		NotificationTTL: DefaultNotificationTTL,
		LogLevel:        "info",
	}, nil
}

// Load builds the default config for dataDir and overlays config.yaml when present.
func Load(dataDir string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	raw, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	file := fileConfig{}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if len(file.Presets) > 0 {
		for _, p := range file.Presets {
			if p <= 0 {
				return Config{}, fmt.Errorf("preset minutes must be positive, got %d", p)
			}
		}
		cfg.Presets = file.Presets
	}
	if file.DialogDismiss != "" {
		d, err := time.ParseDuration(file.DialogDismiss)
		if err != nil {
			return Config{}, fmt.Errorf("parse dialog_dismiss: %w", err)
		}
		cfg.DialogDismiss = d
	}
	if file.NotificationTTL != "" {
		d, err := time.ParseDuration(file.NotificationTTL)
		if err != nil {
			return Config{}, fmt.Errorf("parse notification_ttl: %w", err)
		}
		cfg.NotificationTTL = d
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	return cfg, nil
}

// DefaultDataDir resolves the per-user data directory.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".countdown"
	}
	return filepath.Join(dir, "countdown")
}
