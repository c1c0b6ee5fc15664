package in

import (
	"context"

	"countdown/internal/modules/preferences/dto"
)

type Usecase interface {
	Get(ctx context.Context) (dto.PreferencesOutput, error)
	SetTheme(ctx context.Context, input dto.SetThemeInput) (dto.PreferencesOutput, error)
	SetSoundEnabled(ctx context.Context, enabled bool) (dto.PreferencesOutput, error)
}
