package usecase

import (
	"context"
	"strings"

	"countdown/internal/modules/preferences/domain"
	preferencesdto "countdown/internal/modules/preferences/dto"
	preferencesin "countdown/internal/modules/preferences/port/in"
	preferencesout "countdown/internal/modules/preferences/port/out"
	apperrors "countdown/internal/platform/errors"
)

type Interactor struct {
	store  preferencesout.Store
	themes map[string]bool
}

// NewInteractor accepts the names of the themes the UI can render; an empty
// list accepts any non-empty name.
func NewInteractor(store preferencesout.Store, themes []string) preferencesin.Usecase {
	known := map[string]bool{}
	for _, name := range themes {
		known[name] = true
	}
	return &Interactor{store: store, themes: known}
}

func (i *Interactor) Get(ctx context.Context) (preferencesdto.PreferencesOutput, error) {
	prefs, err := i.store.Load(ctx)
	if err != nil {
		return preferencesdto.PreferencesOutput{}, err
	}
	return toOutput(prefs), nil
}

func (i *Interactor) SetTheme(ctx context.Context, input preferencesdto.SetThemeInput) (preferencesdto.PreferencesOutput, error) {
	name := strings.ToLower(strings.TrimSpace(input.Theme))
	if name == "" {
		return preferencesdto.PreferencesOutput{}, apperrors.NewValidationError("theme", "theme name is required")
	}
	if len(i.themes) > 0 && !i.themes[name] {
		return preferencesdto.PreferencesOutput{}, apperrors.NewValidationError("theme", "unknown theme "+name)
	}
	return i.update(ctx, func(p *domain.Preferences) { p.Theme = name })
}

func (i *Interactor) SetSoundEnabled(ctx context.Context, enabled bool) (preferencesdto.PreferencesOutput, error) {
	return i.update(ctx, func(p *domain.Preferences) { p.SoundEnabled = enabled })
}

func (i *Interactor) update(ctx context.Context, mutate func(*domain.Preferences)) (preferencesdto.PreferencesOutput, error) {
	prefs, err := i.store.Load(ctx)
	if err != nil {
		return preferencesdto.PreferencesOutput{}, err
	}
	mutate(&prefs)
	if err := i.store.Save(ctx, prefs); err != nil {
		return preferencesdto.PreferencesOutput{}, err
	}
	return toOutput(prefs), nil
}

func toOutput(p domain.Preferences) preferencesdto.PreferencesOutput {
	return preferencesdto.PreferencesOutput{Theme: p.Theme, SoundEnabled: p.SoundEnabled}
}
