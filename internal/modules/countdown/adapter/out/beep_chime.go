package out

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"
)

const (
	sampleRate     = beep.SampleRate(48000)
	chimeDuration  = 500 * time.Millisecond
	chimeStartGain = 0.3
	chimeEndGain   = 0.01
)

// Chime plays the completion chirp through the system speaker. When no audio
// device is available it logs once and stays silent.
type Chime struct {
	logger *logrus.Logger

	mu          sync.Mutex
	initialized bool
	failed      bool
}

func NewChime(logger *logrus.Logger) *Chime {
	return &Chime{logger: logger}
}

func (c *Chime) PlayCompletionSound() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ensureSpeaker() {
		return
	}
	speaker.Play(NewChirp(sampleRate))
}

func (c *Chime) ensureSpeaker() bool {
	if c.initialized {
		return true
	}
	if c.failed {
		return false
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		c.failed = true
		c.logger.WithError(err).Warn("audio unavailable, completion chime disabled")
		return false
	}
	c.initialized = true
	return true
}

// chirp steps 800 -> 1000 -> 1200 Hz every 100ms under an exponential fade.
type chirp struct {
	rate     beep.SampleRate
	position int
	total    int
	phase    float64
}

func NewChirp(rate beep.SampleRate) beep.Streamer {
	return &chirp{rate: rate, total: rate.N(chimeDuration)}
}

func (c *chirp) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.total {
			return i, i > 0
		}
		t := float64(c.position) / float64(c.rate)
		val := math.Sin(2*math.Pi*c.phase) * ChirpGain(t)
		samples[i][0] = val
		samples[i][1] = val
		c.phase += ChirpFrequency(t) / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *chirp) Err() error { return nil }

func ChirpFrequency(t float64) float64 {
	switch {
	case t < 0.1:
		return 800
	case t < 0.2:
		return 1000
	}
	return 1200
}

// ChirpGain ramps exponentially from 0.3 at t=0 to 0.01 at the end of the chime.
func ChirpGain(t float64) float64 {
	span := chimeDuration.Seconds()
	if t >= span {
		return chimeEndGain
	}
	if t <= 0 {
		return chimeStartGain
	}
	return chimeStartGain * math.Pow(chimeEndGain/chimeStartGain, t/span)
}
