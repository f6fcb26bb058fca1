// Package audio plays the CHIP-8 buzzer tone through the system speaker.
package audio

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	DefaultSampleRate = beep.SampleRate(44100)
	DefaultFrequency  = 440.0

	volume = 0.2
)

// Beeper plays a square wave while it is active. It starts paused.
type Beeper struct {
	sampleRate beep.SampleRate
	ctrl       *beep.Ctrl
	active     bool
}

// NewBeeper returns a beeper producing a tone of the given frequency.
func NewBeeper(sampleRate beep.SampleRate, frequency float64) *Beeper {
	return &Beeper{
		sampleRate: sampleRate,
		ctrl: &beep.Ctrl{
			Streamer: newSquareWave(sampleRate, frequency),
			Paused:   true,
		},
	}
}

// Start opens the speaker and attaches the tone to it.
func (b *Beeper) Start() error {
	if err := speaker.Init(b.sampleRate, b.sampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("initializing speaker: %w", err)
	}
	speaker.Play(b.ctrl)
	return nil
}

// SetActive starts or stops the tone.
func (b *Beeper) SetActive(active bool) {
	if active == b.active {
		return
	}
	b.active = active

	speaker.Lock()
	b.ctrl.Paused = !active
	speaker.Unlock()
}

// Active reports whether the tone is playing.
func (b *Beeper) Active() bool {
	return b.active
}

// squareWave is an endless beep.Streamer.
type squareWave struct {
	step  float64 // phase advance per sample
	phase float64
}

func newSquareWave(sampleRate beep.SampleRate, frequency float64) *squareWave {
	return &squareWave{
		step: frequency / float64(sampleRate),
	}
}

func (s *squareWave) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		value := volume
		if s.phase >= 0.5 {
			value = -volume
		}
		samples[i][0] = value
		samples[i][1] = value

		s.phase += s.step
		if s.phase >= 1 {
			s.phase--
		}
	}
	return len(samples), true
}

func (s *squareWave) Err() error {
	return nil
}
