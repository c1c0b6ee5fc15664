package out

import (
	"github.com/sirupsen/logrus"

	countdownout "countdown/internal/modules/countdown/port/out"
)

type SoundPlayer interface {
	PlayCompletionSound()
}

type Display interface {
	ShowCompletionDialog(name string)
	Notify(message string, severity countdownout.Severity)
}

// Effects fans completion effects out to the speaker and the active display.
type Effects struct {
	sound   SoundPlayer
	display Display
	logger  *logrus.Logger
}

func NewEffects(sound SoundPlayer, display Display, logger *logrus.Logger) countdownout.EffectsSink {
	return &Effects{sound: sound, display: display, logger: logger}
}

func (e *Effects) PlayCompletionSound() {
	if e.sound != nil {
		e.sound.PlayCompletionSound()
	}
}

func (e *Effects) ShowCompletionDialog(name string) {
	e.display.ShowCompletionDialog(name)
}

func (e *Effects) Notify(message string, severity countdownout.Severity) {
	e.logger.WithField("severity", severity).Debug(message)
	e.display.Notify(message, severity)
}
