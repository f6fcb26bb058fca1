// Package window presents a CHIP-8 machine in a pixelgl window and feeds
// the keyboard into its keypad.
package window

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu/driver"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// DefaultKeyMap maps the left hand block of a QWERTY keyboard onto the
// hexadecimal keypad:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var DefaultKeyMap = map[pixelgl.Button]uint8{
	pixelgl.Key1: 0x1, pixelgl.Key2: 0x2, pixelgl.Key3: 0x3, pixelgl.Key4: 0xC,
	pixelgl.KeyQ: 0x4, pixelgl.KeyW: 0x5, pixelgl.KeyE: 0x6, pixelgl.KeyR: 0xD,
	pixelgl.KeyA: 0x7, pixelgl.KeyS: 0x8, pixelgl.KeyD: 0x9, pixelgl.KeyF: 0xE,
	pixelgl.KeyZ: 0xA, pixelgl.KeyX: 0x0, pixelgl.KeyC: 0xB, pixelgl.KeyV: 0xF,
}

const (
	quitKey  = pixelgl.KeyEscape
	resetKey = pixelgl.KeyBackspace
)

// Window is a driver.Host backed by pixelgl. It must be created and used
// from the function passed to pixelgl.Run.
type Window struct {
	*pixelgl.Window
	KeyMap map[pixelgl.Button]uint8

	scale float64
	imd   *imdraw.IMDraw
}

var _ driver.Host = (*Window)(nil)

// New opens a window showing the display at scale window pixels per
// machine pixel.
func New(title string, scale int) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, float64(screen.Width*scale), float64(screen.Height*scale)),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}
	win.Clear(colornames.Black)
	win.Update()

	return &Window{
		Window: win,
		KeyMap: DefaultKeyMap,
		scale:  float64(scale),
		imd:    imdraw.New(nil),
	}, nil
}

// Poll reads the keyboard into keys. Escape asks to quit and Backspace to
// reset the machine.
func (w *Window) Poll(keys *keypad.Keypad) driver.Action {
	w.UpdateInput()

	if w.JustPressed(quitKey) {
		return driver.ActionQuit
	}
	for button, key := range w.KeyMap {
		keys.Set(key, w.Pressed(button))
	}
	if w.JustPressed(resetKey) {
		return driver.ActionReset
	}
	return driver.ActionNone
}

// Render draws frame with row 0 at the top of the window.
func (w *Window) Render(frame screen.Frame) {
	w.imd.Clear()
	w.imd.Color = colornames.White

	for y := 0; y < screen.Height; y++ {
		for x := 0; x < screen.Width; x++ {
			if !frame.Pixel(x, y) {
				continue
			}
			top := float64(screen.Height - y)
			w.imd.Push(
				pixel.V(float64(x)*w.scale, (top-1)*w.scale),
				pixel.V(float64(x+1)*w.scale, top*w.scale),
			)
			w.imd.Rectangle(0)
		}
	}

	w.Clear(colornames.Black)
	w.imd.Draw(w.Window)
	// input is only polled in Poll, so key edges survive until it runs
	w.SwapBuffers()
}
