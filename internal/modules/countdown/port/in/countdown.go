package in

import (
	"context"

	"countdown/internal/modules/countdown/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.TimerOutput, error)
	Add(ctx context.Context, input dto.StartInput) (dto.TimerOutput, error)
	Pause(ctx context.Context) (dto.PauseOutput, error)
	Reset(ctx context.Context) error
	Remove(ctx context.Context, timerID string) error
	List(ctx context.Context) ([]dto.TimerOutput, error)
	Presets(ctx context.Context) []dto.PresetOutput
	History(ctx context.Context, limit int) ([]dto.HistoryOutput, error)
	ToggleSound(ctx context.Context) (bool, error)
	SetSound(ctx context.Context, enabled bool) error
	SoundEnabled(ctx context.Context) bool
}
