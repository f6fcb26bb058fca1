// Package screen contains the monochrome display buffer and the built-in
// hexadecimal font.
package screen

const (
	Width  = 64
	Height = 32
)

// Frame is a read-only copy of the display, indexed y*Width+x.
// Every cell is 0 or 1.
type Frame [Width * Height]uint8

// Pixel reports whether the pixel at x, y is set.
func (f *Frame) Pixel(x, y int) bool {
	return f[index(x, y)] == 1
}

// Display is the 64x32 pixel grid. Pixels are only toggled by Plot and
// reset by Clear.
type Display struct {
	pixels Frame
	dirty  bool
}

// Clear turns every pixel off.
func (d *Display) Clear() {
	d.pixels = Frame{}
	d.dirty = true
}

// Plot XORs a set pixel onto x, y. Coordinates wrap on each axis
// independently. It returns true if the pixel went from set to unset.
func (d *Display) Plot(x, y int) bool {
	i := index(x, y)
	d.pixels[i] ^= 1
	d.dirty = true
	return d.pixels[i] == 0
}

// Pixel reports whether the pixel at x, y is set.
func (d *Display) Pixel(x, y int) bool {
	return d.pixels.Pixel(x, y)
}

// Snapshot returns a copy of the current pixels.
func (d *Display) Snapshot() Frame {
	return d.pixels
}

// Dirty reports whether the display changed since the last MarkClean.
func (d *Display) Dirty() bool {
	return d.dirty
}

// MarkClean resets the dirty flag after a presenter drew the frame.
func (d *Display) MarkClean() {
	d.dirty = false
}

func index(x, y int) int {
	x %= Width
	if x < 0 {
		x += Width
	}
	y %= Height
	if y < 0 {
		y += Height
	}
	return y*Width + x
}
