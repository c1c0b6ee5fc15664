package in

import (
	"context"

	countdowndto "countdown/internal/modules/countdown/dto"
	countdownin "countdown/internal/modules/countdown/port/in"
)

// TUIHandler is the surface the interactive widget drives.
type TUIHandler struct {
	usecase countdownin.Usecase
}

func NewTUIHandler(usecase countdownin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) Start(ctx context.Context, target, name string) (countdowndto.TimerOutput, error) {
	return h.usecase.Start(ctx, countdowndto.StartInput{Target: target, Name: name})
}

func (h TUIHandler) StartPreset(ctx context.Context, minutes int) (countdowndto.TimerOutput, error) {
	return h.usecase.Start(ctx, countdowndto.StartInput{PresetMinutes: minutes})
}

func (h TUIHandler) Add(ctx context.Context, target, name string) (countdowndto.TimerOutput, error) {
	return h.usecase.Add(ctx, countdowndto.StartInput{Target: target, Name: name})
}

func (h TUIHandler) Pause(ctx context.Context) (countdowndto.PauseOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h TUIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}

func (h TUIHandler) Remove(ctx context.Context, timerID string) error {
	return h.usecase.Remove(ctx, timerID)
}

func (h TUIHandler) Presets(ctx context.Context) []countdowndto.PresetOutput {
	return h.usecase.Presets(ctx)
}

func (h TUIHandler) ToggleSound(ctx context.Context) (bool, error) {
	return h.usecase.ToggleSound(ctx)
}

func (h TUIHandler) SoundEnabled(ctx context.Context) bool {
	return h.usecase.SoundEnabled(ctx)
}
