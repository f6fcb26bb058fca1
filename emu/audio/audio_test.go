package audio

import (
	"testing"

	"github.com/faiface/beep"
	"github.com/retroenv/retrogolib/assert"
)

func TestSquareWave(t *testing.T) {
	// 4 samples per period: two high, two low
	wave := newSquareWave(beep.SampleRate(400), 100)

	samples := make([][2]float64, 8)
	n, ok := wave.Stream(samples)
	assert.True(t, ok)
	assert.Equal(t, 8, n)
	assert.NoError(t, wave.Err())

	expected := []float64{volume, volume, -volume, -volume, volume, volume, -volume, -volume}
	for i, sample := range samples {
		assert.Equal(t, expected[i], sample[0])
		assert.Equal(t, sample[0], sample[1])
	}
}

func TestBeeper_SetActive(t *testing.T) {
	b := NewBeeper(DefaultSampleRate, DefaultFrequency)
	assert.False(t, b.Active())
	assert.True(t, b.ctrl.Paused)

	b.SetActive(true)
	assert.True(t, b.Active())
	assert.False(t, b.ctrl.Paused)

	b.SetActive(false)
	assert.True(t, b.ctrl.Paused)
}
