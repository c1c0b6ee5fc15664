package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"countdown/internal/modules/preferences/domain"
	preferencesout "countdown/internal/modules/preferences/port/out"
)

type FileStore struct {
	path string
}

func NewFileStore(path string) preferencesout.Store {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) (domain.Preferences, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Default(), nil
		}
		return domain.Preferences{}, fmt.Errorf("read preferences: %w", err)
	}
	prefs := domain.Default()
	if err := yaml.Unmarshal(payload, &prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("decode preferences: %w", err)
	}
	if prefs.Theme == "" {
		prefs.Theme = domain.DefaultTheme
	}
	return prefs, nil
}

func (s *FileStore) Save(_ context.Context, prefs domain.Preferences) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create preferences dir: %w", err)
	}
	prefs.SchemaVersion = domain.SchemaVersion
	payload, err := yaml.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
