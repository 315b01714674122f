// Package audio plays sound effects for the game through the system speaker.
// Everything is synthesized at runtime; no sample files are loaded.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	fireDuration = 180 * time.Millisecond
)

// Player manages the speaker and plays game sound effects.
// The zero value is not usable; call NewPlayer and Init first.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a sound player. Call Init before playing anything.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer. Safe to call more than once.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer. The speaker itself stays open; beep does not
// provide a way to close it.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// PlayFire plays the laser "pew" shot sound. No-op before Init.
func (p *Player) PlayFire() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(fireDuration), NewFireGenerator(sampleRate))
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// FireGenerator synthesizes a descending laser sound: a sine sweep from
// 880Hz down to 220Hz with an exponential decay envelope.
type FireGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
	phase   float64
}

// NewFireGenerator creates a fire sound generator.
func NewFireGenerator(sr beep.SampleRate) *FireGenerator {
	return &FireGenerator{
		sr:      sr,
		samples: sr.N(fireDuration),
	}
}

func (g *FireGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.samples)
		if progress > 1 {
			progress = 1
		}

		// Sweep down and fade out over the shot
		freq := 880 - 660*progress
		envelope := 0.3 * math.Exp(-progress*4)

		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FireGenerator) Err() error {
	return nil
}
