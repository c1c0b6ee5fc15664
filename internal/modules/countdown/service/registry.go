package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"countdown/internal/modules/countdown/domain"
	countdownout "countdown/internal/modules/countdown/port/out"
	"countdown/internal/platform/clock"
	"countdown/internal/platform/id"
	"countdown/internal/platform/logging"
	"countdown/internal/platform/schedule"
)

type entry struct {
	timer  domain.Timer
	cancel schedule.Cancel
}

// Registry owns every running countdown. All state changes and collaborator
// calls happen under mu, so once a timer is gone from the map no tick can
// touch it again. Journal writes run after mu is released; Close waits for
// them.
type Registry struct {
	clock     clock.Clock
	ids       id.Generator
	scheduler schedule.Scheduler
	renderer  countdownout.Renderer
	effects   countdownout.EffectsSink
	journal   countdownout.Journal
	logger    *logrus.Logger

	mu           sync.Mutex
	timers       map[string]*entry
	order        []string
	primaryID    string
	soundEnabled bool

	writes sync.WaitGroup
}

func NewRegistry(
	clk clock.Clock,
	ids id.Generator,
	scheduler schedule.Scheduler,
	renderer countdownout.Renderer,
	effects countdownout.EffectsSink,
	journal countdownout.Journal,
	logger *logrus.Logger,
	soundEnabled bool,
) *Registry {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Registry{
		clock:        clk,
		ids:          ids,
		scheduler:    scheduler,
		renderer:     renderer,
		effects:      effects,
		journal:      journal,
		logger:       logger,
		timers:       map[string]*entry{},
		soundEnabled: soundEnabled,
	}
}

// Create registers a new countdown and starts its one-second tick. A new
// primary replaces the current one without firing its completion.
func (r *Registry) Create(target time.Time, name string, asPrimary bool) (domain.Timer, error) {
	timer, finished, err := r.create(target, name, asPrimary)
	r.record(finished)
	return timer, err
}

func (r *Registry) create(target time.Time, name string, asPrimary bool) (domain.Timer, []domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if err := domain.ValidateTarget(target, now); err != nil {
		return domain.Timer{}, nil, err
	}

	var finished []domain.Record
	if asPrimary && r.primaryID != "" {
		if old, ok := r.detach(r.primaryID); ok {
			finished = append(finished, domain.NewRecord(old, now, domain.OutcomeReplaced))
		}
		r.primaryID = ""
	}

	if name == "" {
		if asPrimary {
			name = domain.DefaultPrimaryName
		} else {
			name = domain.SecondaryName(r.secondaryCount() + 1)
		}
	}

	timer := domain.Timer{
		ID:         r.ids.New(),
		Name:       name,
		TargetTime: target,
		StartTime:  now,
		Primary:    asPrimary,
	}
	e := &entry{timer: timer}
	r.timers[timer.ID] = e
	r.order = append(r.order, timer.ID)
	if asPrimary {
		r.primaryID = timer.ID
	} else {
		r.renderer.AttachSecondary(timer.ID, timer.Name)
	}
	r.render(e, now)

	timerID := timer.ID
	e.cancel = r.scheduler.Every(domain.TickPeriod, func() { r.Tick(timerID) })

	r.logger.WithFields(logrus.Fields{
		"timer":   timer.ID,
		"name":    timer.Name,
		"primary": asPrimary,
		"target":  target.Format(time.RFC3339),
	}).Info("timer created")
	return timer, r.handOff(finished), nil
}

// Tick re-evaluates one timer against the clock. Ticks for timers no longer
// registered are ignored.
func (r *Registry) Tick(timerID string) {
	r.record(r.tick(timerID))
}

func (r *Registry) tick(timerID string) []domain.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.timers[timerID]
	if !ok {
		r.logger.WithField("timer", timerID).Debug("tick for unregistered timer ignored")
		return nil
	}
	now := r.clock.Now()
	if e.timer.Remaining(now) <= 0 {
		return r.handOff([]domain.Record{r.complete(e, now)})
	}
	if !e.timer.IsPaused {
		r.render(e, now)
	}
	return nil
}

// complete must be called with mu held on a registered timer.
func (r *Registry) complete(e *entry, now time.Time) domain.Record {
	timer := e.timer
	r.detach(timer.ID)
	if r.soundEnabled {
		r.effects.PlayCompletionSound()
	}
	r.effects.ShowCompletionDialog(timer.Name)
	if r.primaryID == timer.ID {
		r.primaryID = ""
		r.renderer.ResetPrimaryDisplay()
	} else {
		r.renderer.DetachSecondary(timer.ID)
	}
	r.logger.WithFields(logrus.Fields{"timer": timer.ID, "name": timer.Name}).Info("timer completed")
	return domain.NewRecord(timer, now, domain.OutcomeCompleted)
}

// Pause toggles the display freeze of a timer. The target is left untouched,
// so the wall clock keeps running underneath.
func (r *Registry) Pause(timerID string) (domain.Timer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.togglePause(timerID)
}

func (r *Registry) PausePrimary() (domain.Timer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.primaryID == "" {
		return domain.Timer{}, false
	}
	return r.togglePause(r.primaryID)
}

func (r *Registry) togglePause(timerID string) (domain.Timer, bool) {
	e, ok := r.timers[timerID]
	if !ok {
		return domain.Timer{}, false
	}
	e.timer.IsPaused = !e.timer.IsPaused
	if timerID == r.primaryID {
		if marker, ok := r.renderer.(countdownout.PauseMarker); ok {
			marker.MarkPrimaryPaused(e.timer.IsPaused)
		}
	}
	r.logger.WithFields(logrus.Fields{"timer": timerID, "paused": e.timer.IsPaused}).Debug("pause toggled")
	return e.timer, true
}

// Remove drops a timer early. Unknown ids are a no-op.
func (r *Registry) Remove(timerID string) bool {
	_, rec, ok := r.remove(timerID, domain.OutcomeRemoved)
	if ok {
		r.record([]domain.Record{rec})
	}
	return ok
}

// Reset removes the primary timer, whether or not it already finished.
func (r *Registry) Reset() (domain.Timer, bool) {
	r.mu.Lock()
	primaryID := r.primaryID
	r.mu.Unlock()
	if primaryID == "" {
		return domain.Timer{}, false
	}
	timer, rec, ok := r.remove(primaryID, domain.OutcomeReset)
	if !ok {
		return domain.Timer{}, false
	}
	r.record([]domain.Record{rec})
	return timer, true
}

func (r *Registry) remove(timerID string, outcome domain.Outcome) (domain.Timer, domain.Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timer, ok := r.detach(timerID)
	if !ok {
		return domain.Timer{}, domain.Record{}, false
	}
	r.renderer.DetachSecondary(timerID)
	if r.primaryID == timerID {
		r.primaryID = ""
		r.renderer.ResetPrimaryDisplay()
	}
	r.logger.WithFields(logrus.Fields{"timer": timerID, "outcome": outcome}).Info("timer removed")
	rec := domain.NewRecord(timer, r.clock.Now(), outcome)
	r.handOff([]domain.Record{rec})
	return timer, rec, true
}

// detach cancels the tick and forgets the timer. The primary slot is left to
// the caller.
func (r *Registry) detach(timerID string) (domain.Timer, bool) {
	e, ok := r.timers[timerID]
	if !ok {
		return domain.Timer{}, false
	}
	if e.cancel != nil {
		e.cancel()
	}
	delete(r.timers, timerID)
	for i, v := range r.order {
		if v == timerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return e.timer, true
}

func (r *Registry) render(e *entry, now time.Time) {
	b := e.timer.BreakdownAt(now)
	if r.primaryID == e.timer.ID {
		r.renderer.RenderPrimary(b, e.timer.ElapsedFraction(now), e.timer.Name)
		return
	}
	r.renderer.RenderSecondary(e.timer.ID, b)
}

func (r *Registry) secondaryCount() int {
	n := len(r.timers)
	if r.primaryID != "" {
		n--
	}
	return n
}

// handOff must be called with mu held. Each non-empty hand-off is matched by
// one record call.
func (r *Registry) handOff(records []domain.Record) []domain.Record {
	if len(records) > 0 && r.journal != nil {
		r.writes.Add(1)
	}
	return records
}

func (r *Registry) record(records []domain.Record) {
	if len(records) == 0 || r.journal == nil {
		return
	}
	defer r.writes.Done()
	for _, rec := range records {
		if err := r.journal.Append(context.Background(), rec); err != nil {
			r.logger.WithError(err).WithField("timer", rec.TimerID).Warn("journal append failed")
		}
	}
}

func (r *Registry) Get(timerID string) (domain.Timer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.timers[timerID]
	if !ok {
		return domain.Timer{}, false
	}
	return e.timer, true
}

func (r *Registry) Primary() (domain.Timer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.primaryID == "" {
		return domain.Timer{}, false
	}
	return r.timers[r.primaryID].timer, true
}

// List returns registered timers in creation order.
func (r *Registry) List() []domain.Timer {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Timer, 0, len(r.order))
	for _, timerID := range r.order {
		out = append(out, r.timers[timerID].timer)
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

func (r *Registry) SetSoundEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.soundEnabled = enabled
}

func (r *Registry) SoundEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.soundEnabled
}

// Close cancels every tick without firing completion or journaling, then
// waits for journal writes already handed off.
func (r *Registry) Close() {
	r.mu.Lock()
	for _, e := range r.timers {
		if e.cancel != nil {
			e.cancel()
		}
	}
	r.timers = map[string]*entry{}
	r.order = nil
	r.primaryID = ""
	r.mu.Unlock()
	r.writes.Wait()
}
