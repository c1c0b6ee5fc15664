package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"countdown/internal/modules/countdown/domain"
	countdowndto "countdown/internal/modules/countdown/dto"
	countdownin "countdown/internal/modules/countdown/port/in"
	countdownout "countdown/internal/modules/countdown/port/out"
	"countdown/internal/modules/countdown/service"
	preferencesin "countdown/internal/modules/preferences/port/in"
	"countdown/internal/platform/clock"
	apperrors "countdown/internal/platform/errors"
)

type Interactor struct {
	registry *service.Registry
	clock    clock.Clock
	effects  countdownout.EffectsSink
	journal  countdownout.Journal
	prefs    preferencesin.Usecase
	presets  []int
	location *time.Location
}

func NewInteractor(
	registry *service.Registry,
	clk clock.Clock,
	effects countdownout.EffectsSink,
	journal countdownout.Journal,
	prefs preferencesin.Usecase,
	presets []int,
) countdownin.Usecase {
	return &Interactor{
		registry: registry,
		clock:    clk,
		effects:  effects,
		journal:  journal,
		prefs:    prefs,
		presets:  presets,
		location: time.Local,
	}
}

func (i *Interactor) Start(_ context.Context, input countdowndto.StartInput) (countdowndto.TimerOutput, error) {
	timer, err := i.create(input, true)
	if err != nil {
		return countdowndto.TimerOutput{}, err
	}
	i.effects.Notify(fmt.Sprintf("Timer %q started!", timer.Name), countdownout.SeveritySuccess)
	return i.toOutput(timer), nil
}

func (i *Interactor) Add(_ context.Context, input countdowndto.StartInput) (countdowndto.TimerOutput, error) {
	timer, err := i.create(input, false)
	if err != nil {
		return countdowndto.TimerOutput{}, err
	}
	i.effects.Notify(fmt.Sprintf("Timer %q added!", timer.Name), countdownout.SeveritySuccess)
	return i.toOutput(timer), nil
}

func (i *Interactor) create(input countdowndto.StartInput, asPrimary bool) (domain.Timer, error) {
	target, name, err := i.resolve(input)
	if err == nil {
		var timer domain.Timer
		timer, err = i.registry.Create(target, name, asPrimary)
		if err == nil {
			return timer, nil
		}
	}
	if v, ok := apperrors.AsValidation(err); ok {
		i.effects.Notify(v.Reason, countdownout.SeverityError)
	}
	return domain.Timer{}, err
}

func (i *Interactor) resolve(input countdowndto.StartInput) (time.Time, string, error) {
	now := i.clock.Now()
	name := strings.TrimSpace(input.Name)
	if input.PresetMinutes != 0 {
		target, err := domain.PresetTarget(input.PresetMinutes, now)
		if err != nil {
			return time.Time{}, "", err
		}
		if name == "" {
			name = domain.PresetName(input.PresetMinutes)
		}
		return target, name, nil
	}
	target, err := domain.ResolveTarget(input.Target, now, i.location)
	if err != nil {
		return time.Time{}, "", err
	}
	return target, name, nil
}

func (i *Interactor) Pause(_ context.Context) (countdowndto.PauseOutput, error) {
	timer, ok := i.registry.PausePrimary()
	if !ok {
		return countdowndto.PauseOutput{}, nil
	}
	if timer.IsPaused {
		i.effects.Notify("Timer paused", countdownout.SeverityInfo)
	} else {
		i.effects.Notify("Timer resumed", countdownout.SeverityInfo)
	}
	return countdowndto.PauseOutput{Found: true, TimerID: timer.ID, IsPaused: timer.IsPaused}, nil
}

func (i *Interactor) Reset(_ context.Context) error {
	if _, ok := i.registry.Reset(); ok {
		i.effects.Notify("Timer reset", countdownout.SeverityInfo)
	}
	return nil
}

func (i *Interactor) Remove(_ context.Context, timerID string) error {
	if i.registry.Remove(strings.TrimSpace(timerID)) {
		i.effects.Notify("Timer removed", countdownout.SeverityInfo)
	}
	return nil
}

func (i *Interactor) List(_ context.Context) ([]countdowndto.TimerOutput, error) {
	timers := i.registry.List()
	out := make([]countdowndto.TimerOutput, 0, len(timers))
	for _, t := range timers {
		out = append(out, i.toOutput(t))
	}
	return out, nil
}

func (i *Interactor) Presets(_ context.Context) []countdowndto.PresetOutput {
	out := make([]countdowndto.PresetOutput, 0, len(i.presets))
	for _, m := range i.presets {
		out = append(out, countdowndto.PresetOutput{Minutes: m, Name: domain.PresetName(m)})
	}
	return out
}

func (i *Interactor) History(ctx context.Context, limit int) ([]countdowndto.HistoryOutput, error) {
	if i.journal == nil {
		return []countdowndto.HistoryOutput{}, nil
	}
	if limit <= 0 {
		limit = 20
	}
	records, err := i.journal.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]countdowndto.HistoryOutput, 0, len(records))
	for _, r := range records {
		out = append(out, countdowndto.HistoryOutput{
			TimerID:    r.TimerID,
			Name:       r.Name,
			Primary:    r.Primary,
			StartTime:  r.StartTime,
			TargetTime: r.TargetTime,
			EndedAt:    r.EndedAt,
			Outcome:    string(r.Outcome),
		})
	}
	return out, nil
}

func (i *Interactor) ToggleSound(ctx context.Context) (bool, error) {
	enabled := !i.registry.SoundEnabled()
	return enabled, i.SetSound(ctx, enabled)
}

func (i *Interactor) SetSound(ctx context.Context, enabled bool) error {
	i.registry.SetSoundEnabled(enabled)
	if i.prefs != nil {
		if _, err := i.prefs.SetSoundEnabled(ctx, enabled); err != nil {
			return err
		}
	}
	if enabled {
		i.effects.Notify("Sound enabled", countdownout.SeverityInfo)
	} else {
		i.effects.Notify("Sound disabled", countdownout.SeverityInfo)
	}
	return nil
}

func (i *Interactor) SoundEnabled(_ context.Context) bool {
	return i.registry.SoundEnabled()
}

func (i *Interactor) toOutput(t domain.Timer) countdowndto.TimerOutput {
	remaining := t.Remaining(i.clock.Now())
	if remaining < 0 {
		remaining = 0
	}
	return countdowndto.TimerOutput{
		ID:         t.ID,
		Name:       t.Name,
		TargetTime: t.TargetTime,
		StartTime:  t.StartTime,
		Remaining:  remaining,
		IsPaused:   t.IsPaused,
		Primary:    t.Primary,
	}
}
