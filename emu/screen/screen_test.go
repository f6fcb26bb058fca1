package screen

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisplay_PlotCollision(t *testing.T) {
	var d Display

	assert.False(t, d.Plot(3, 4))
	assert.True(t, d.Pixel(3, 4))
	assert.True(t, d.Dirty())

	assert.True(t, d.Plot(3, 4))
	assert.False(t, d.Pixel(3, 4))
}

func TestDisplay_PlotWraps(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		wantX int
		wantY int
	}{
		{"x past right edge", 64, 0, 0, 0},
		{"y past bottom edge", 0, 32, 0, 0},
		{"both axes", 70, 40, 6, 8},
		{"negative", -1, -1, 63, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Display
			d.Plot(tt.x, tt.y)
			assert.True(t, d.Pixel(tt.wantX, tt.wantY))
		})
	}
}

func TestDisplay_ClearAndSnapshot(t *testing.T) {
	var d Display
	d.Plot(0, 0)
	d.Plot(63, 31)

	frame := d.Snapshot()
	assert.True(t, frame.Pixel(0, 0))
	assert.True(t, frame.Pixel(63, 31))

	d.MarkClean()
	d.Clear()
	assert.True(t, d.Dirty())
	assert.False(t, d.Pixel(0, 0))
	assert.Equal(t, Frame{}, d.Snapshot())

	// the snapshot taken before Clear is a copy
	assert.True(t, frame.Pixel(63, 31))
}

func TestGlyphOffset(t *testing.T) {
	assert.Equal(t, uint16(0), GlyphOffset(0x0))
	assert.Equal(t, uint16(50), GlyphOffset(0xA))
	assert.Equal(t, uint16(75), GlyphOffset(0xF))
	assert.Equal(t, uint16(5), GlyphOffset(0x31))
	assert.Equal(t, 80, len(FontSet))
}
