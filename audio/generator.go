package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/vi-snake/vmath"
)

// SweepGenerator glides linearly between two frequencies with a fade out
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep lasting d
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	total := sr.N(d)
	if total < 1 {
		total = 1
	}
	return &SweepGenerator{sr: sr, from: from, to: to, total: total}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Integrate phase so the glide has no clicks
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		if g.phase > 2*math.Pi {
			g.phase -= 2 * math.Pi
		}

		// 5ms attack, linear release
		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
		envelope := attack * (1.0 - progress)

		sample := 0.25 * envelope * math.Sin(g.phase)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// CrashGenerator generates a breaking/crackling sound
type CrashGenerator struct {
	sr  beep.SampleRate
	pos int
	rng *vmath.FastRand
}

// NewCrashGenerator creates a crash generator with reproducible noise
func NewCrashGenerator(sr beep.SampleRate, seed uint64) *CrashGenerator {
	return &CrashGenerator{
		sr:  sr,
		rng: vmath.NewFastRand(seed),
	}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Envelope - quick attack, slower decay
		envelope := math.Exp(-t * 6)

		noise := float64(g.rng.Next()>>11)/float64(1<<53)*2 - 1

		// Falling rumble under the noise
		rumble := 0.3 * math.Sin(2*math.Pi*(90-40*math.Min(t, 1))*t)

		sample := envelope * (0.25*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
