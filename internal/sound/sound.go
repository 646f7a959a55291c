// Package sound plays short feedback tones for hits and misses.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone pitches and lengths.
const (
	hitFreq      = 880.0
	hitDuration  = 60 * time.Millisecond
	missFreq     = 110.0
	missDuration = 180 * time.Millisecond
)

// Player mixes feedback tones into the system speaker. A Player that was never
// initialized (or failed to) silently drops every sound.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an idle player.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all pending tones.
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

// Hit plays a short high blip.
func (p *Player) Hit() {
	p.play(NewTone(sampleRate, hitFreq, hitDuration, WaveSine))
}

// Miss plays a low buzz.
func (p *Player) Miss() {
	p.play(NewTone(sampleRate, missFreq, missDuration, WaveSquare))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Waveform selects the oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
)

// Tone is a finite oscillator with a linear fade-out envelope.
type Tone struct {
	sr    beep.SampleRate
	freq  float64
	wave  Waveform
	pos   int
	total int
}

// NewTone creates a tone of the given frequency and length.
func NewTone(sr beep.SampleRate, freq float64, d time.Duration, wave Waveform) *Tone {
	return &Tone{
		sr:    sr,
		freq:  freq,
		wave:  wave,
		total: sr.N(d),
	}
}

// Stream fills samples and reports false once the tone has finished.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		phase := 2 * math.Pi * t.freq * float64(t.pos) / float64(t.sr)
		v := math.Sin(phase)
		if t.wave == WaveSquare {
			v = math.Copysign(1, v)
		}
		envelope := 0.3 * (1 - float64(t.pos)/float64(t.total))
		samples[i][0] = v * envelope
		samples[i][1] = v * envelope
		t.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (t *Tone) Err() error {
	return nil
}
