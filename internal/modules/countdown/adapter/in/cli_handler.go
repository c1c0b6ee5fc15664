package in

import (
	"context"

	countdowndto "countdown/internal/modules/countdown/dto"
	countdownin "countdown/internal/modules/countdown/port/in"
)

type CLIHandler struct {
	usecase countdownin.Usecase
}

func NewCLIHandler(usecase countdownin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, target string, presetMinutes int, name string) (countdowndto.TimerOutput, error) {
	return h.usecase.Start(ctx, countdowndto.StartInput{Target: target, PresetMinutes: presetMinutes, Name: name})
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) Presets(ctx context.Context) []countdowndto.PresetOutput {
	return h.usecase.Presets(ctx)
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]countdowndto.HistoryOutput, error) {
	return h.usecase.History(ctx, limit)
}

func (h CLIHandler) SetSound(ctx context.Context, enabled bool) error {
	return h.usecase.SetSound(ctx, enabled)
}

func (h CLIHandler) ToggleSound(ctx context.Context) (bool, error) {
	return h.usecase.ToggleSound(ctx)
}

func (h CLIHandler) SoundEnabled(ctx context.Context) bool {
	return h.usecase.SoundEnabled(ctx)
}
