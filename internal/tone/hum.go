// Package tone produces the PCM hum that follows the wave front.
package tone

import (
	"math"
	"sync"
)

const (
	SampleRate = 48000

	baseFrequency = 220.0 // Hz at rest
	pitchOctaves  = 1.0   // pitch swing at full displacement
	gain          = 0.2
	frameBytes    = 4 // 16-bit stereo
	pcm16MaxValue = 32767
)

// Hum is a stereo 16-bit little-endian sine stream whose pitch tracks a
// level in [-1, 1]. It implements io.Reader for an audio player.
type Hum struct {
	mu    sync.Mutex
	level float64
	muted bool
	phase float64
}

func NewHum() *Hum {
	return &Hum{}
}

// SetLevel sets the displacement driving the pitch, clamped to [-1, 1].
func (h *Hum) SetLevel(v float64) {
	v = math.Max(-1, math.Min(1, v))
	h.mu.Lock()
	h.level = v
	h.mu.Unlock()
}

// SetMuted silences the stream without stopping the player.
func (h *Hum) SetMuted(muted bool) {
	h.mu.Lock()
	h.muted = muted
	h.mu.Unlock()
}

// Frequency reports the current tone frequency in Hz.
func (h *Hum) Frequency() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return frequencyFor(h.level)
}

func frequencyFor(level float64) float64 {
	return baseFrequency * math.Pow(2, level*pitchOctaves)
}

func (h *Hum) Read(p []byte) (int, error) {
	n := len(p) - len(p)%frameBytes
	if n == 0 {
		return 0, nil
	}
	h.mu.Lock()
	step := 2 * math.Pi * frequencyFor(h.level) / SampleRate
	amp := gain
	if h.muted {
		amp = 0
	}
	phase := h.phase
	for i := 0; i < n; i += frameBytes {
		v := int16(math.Sin(phase) * amp * pcm16MaxValue)
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
		phase += step
		if phase >= 2*math.Pi {
			phase -= 2 * math.Pi
		}
	}
	h.phase = phase
	h.mu.Unlock()
	return n, nil
}

func (h *Hum) Close() error {
	return nil
}
