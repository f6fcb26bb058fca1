// Package driver paces a CHIP-8 machine: it runs instructions at the
// configured clock rate, ticks the timers at 60 Hz and moves frames and
// key states between the machine and its host at the refresh rate.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/retroenv/retrogolib/log"
)

// maxFrameTime caps the time credited per frame, so a stalled host does
// not cause a burst of catch-up instructions.
const maxFrameTime = 250 * time.Millisecond

// TimerPeriod is the time between two timer ticks, fixed at 60 Hz.
const TimerPeriod = time.Second / 60

// ErrInvalidPeriod is returned by New for a clock or refresh period that
// is not positive.
var ErrInvalidPeriod = errors.New("invalid period")

// Machine is the emulator core driven by the Driver.
type Machine interface {
	Step() (cpu.Status, error)
	TickTimers()
	ToneActive() bool
	Reset()
	Display() *screen.Display
	Keypad() *keypad.Keypad
}

// Action is a host request returned from Poll.
type Action uint8

const (
	ActionNone Action = iota
	ActionReset
	ActionQuit
)

// Host is the presentation and input side, for example a window.
type Host interface {
	// Closed reports whether the host went away.
	Closed() bool
	// Poll updates the key latch from the host input devices.
	Poll(keys *keypad.Keypad) Action
	// Render presents a frame.
	Render(frame screen.Frame)
}

// Tone is an audio output that plays while the sound timer runs.
type Tone interface {
	SetActive(active bool)
}

// Driver runs a Machine against a Host.
type Driver struct {
	machine Machine
	host    Host
	tone    Tone
	logger  *log.Logger

	clock   time.Duration // time per instruction
	refresh time.Duration // time per host frame

	stepDebt time.Duration
	tickDebt time.Duration

	steps uint64
	ticks uint64
}

// Option configures a Driver.
type Option func(*Driver)

// WithTone sets the audio output.
func WithTone(tone Tone) Option {
	return func(d *Driver) {
		d.tone = tone
	}
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(d *Driver) {
		d.logger = logger
	}
}

// New returns a driver executing one instruction per clock period and
// polling and rendering the host once per refresh period.
func New(machine Machine, host Host, clock, refresh time.Duration, options ...Option) (*Driver, error) {
	if clock <= 0 {
		return nil, fmt.Errorf("%w: clock period %s", ErrInvalidPeriod, clock)
	}
	if refresh <= 0 {
		return nil, fmt.Errorf("%w: refresh period %s", ErrInvalidPeriod, refresh)
	}

	d := &Driver{
		machine: machine,
		host:    host,
		clock:   clock,
		refresh: refresh,
	}
	for _, option := range options {
		option(d)
	}
	return d, nil
}

// Advance credits elapsed machine time. It executes the instructions and
// timer ticks that fell due, on their own schedules. While the machine
// waits for a key the rest of the instruction time is dropped; the next
// Advance retries after the host had a chance to update the keypad.
func (d *Driver) Advance(elapsed time.Duration) error {
	d.stepDebt += elapsed
	for d.stepDebt >= d.clock {
		d.stepDebt -= d.clock

		status, err := d.machine.Step()
		if err != nil {
			return err
		}
		d.steps++
		if status == cpu.AwaitingKey {
			d.stepDebt = 0
			break
		}
	}

	d.tickDebt += elapsed
	for d.tickDebt >= TimerPeriod {
		d.tickDebt -= TimerPeriod
		d.machine.TickTimers()
		d.ticks++
	}

	if d.tone != nil {
		d.tone.SetActive(d.machine.ToneActive())
	}
	return nil
}

// Run executes frames at the refresh rate until the context is cancelled,
// the host closes or asks to quit, or the machine faults. It must run on
// the goroutine that owns the host.
func (d *Driver) Run(ctx context.Context) error {
	ticker := time.NewTicker(d.refresh)
	defer ticker.Stop()
	defer d.silence()

	last := time.Now()
	for !d.host.Closed() {
		var now time.Time
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now = <-ticker.C:
		}

		switch d.host.Poll(d.machine.Keypad()) {
		case ActionQuit:
			return nil
		case ActionReset:
			d.debug("Machine reset")
			d.machine.Reset()
		}

		elapsed := now.Sub(last)
		last = now
		if elapsed > maxFrameTime {
			elapsed = maxFrameTime
		}
		if err := d.Advance(elapsed); err != nil {
			return err
		}

		display := d.machine.Display()
		if display.Dirty() {
			d.host.Render(display.Snapshot())
			display.MarkClean()
		}
	}
	return nil
}

// Steps returns the number of instructions executed.
func (d *Driver) Steps() uint64 {
	return d.steps
}

// Ticks returns the number of timer ticks delivered.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

func (d *Driver) silence() {
	if d.tone != nil {
		d.tone.SetActive(false)
	}
}

func (d *Driver) debug(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, args...)
	}
}
