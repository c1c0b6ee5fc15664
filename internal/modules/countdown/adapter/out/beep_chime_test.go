package out_test

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	countdownout "countdown/internal/modules/countdown/adapter/out"
)

func TestChirpFrequencySteps(t *testing.T) {
	t.Parallel()
	cases := map[float64]float64{0: 800, 0.099: 800, 0.1: 1000, 0.15: 1000, 0.2: 1200, 0.45: 1200}
	for at, want := range cases {
		if got := countdownout.ChirpFrequency(at); got != want {
			t.Fatalf("frequency at %.3fs: expected %.0f, got %.0f", at, want, got)
		}
	}
}

func TestChirpGainRampsExponentially(t *testing.T) {
	t.Parallel()
	if g := countdownout.ChirpGain(0); g != 0.3 {
		t.Fatalf("expected start gain 0.3, got %v", g)
	}
	if g := countdownout.ChirpGain(0.5); g != 0.01 {
		t.Fatalf("expected end gain 0.01, got %v", g)
	}
	mid := countdownout.ChirpGain(0.25)
	if math.Abs(mid-math.Sqrt(0.3*0.01)) > 1e-9 {
		t.Fatalf("midpoint gain should be the geometric mean, got %v", mid)
	}
}

func TestChirpStreamsHalfASecond(t *testing.T) {
	t.Parallel()
	rate := beep.SampleRate(1000)
	s := countdownout.NewChirp(rate)
	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		for i := 0; i < n; i++ {
			if math.Abs(buf[i][0]) > 0.3 || buf[i][0] != buf[i][1] {
				t.Fatalf("sample %d out of range or not mono: %v", total-n+i, buf[i])
			}
		}
		if !ok {
			break
		}
	}
	if total != 500 {
		t.Fatalf("expected 500 samples at 1kHz, got %d", total)
	}
	if s.Err() != nil {
		t.Fatalf("unexpected stream error %v", s.Err())
	}
}
