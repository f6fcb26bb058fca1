// Package cpu implements the CHIP-8 fetch-decode-execute engine.
//
// An EMU owns its memory, registers, display and keypad. It has no
// internal concurrency: a driver calls Step at the instruction rate and
// TickTimers at 60 Hz, on independent schedules.
package cpu

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/beanboi7/chyp8/emu/keypad"
	"github.com/beanboi7/chyp8/emu/memory"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/retroenv/retrogolib/log"
)

const (
	// FlagRegister is the index of VF, which doubles as the carry, borrow
	// and collision flag.
	FlagRegister = 0xF

	// StackSize is the maximum depth of nested subroutine calls.
	StackSize = 16

	addressMask = memory.Size - 1
)

// Rand is the random source used by RND. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Status describes the machine after a Step.
type Status uint8

const (
	// Running means the instruction completed and the next one can run.
	Running Status = iota
	// AwaitingKey means a key-wait instruction found no pressed key. The
	// PC still points at it; the next Step retries it.
	AwaitingKey
	// Halted means the machine faulted and will not execute until Reset.
	Halted
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case AwaitingKey:
		return "awaiting key"
	case Halted:
		return "halted"
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// EMU is a CHIP-8 machine instance.
type EMU struct {
	memory   memory.Memory
	V        [16]uint8
	I        uint16 // address register
	pc       uint16
	stack    [StackSize]uint16
	sp       uint8 // number of entries on the stack
	display  screen.Display
	keyState keypad.Keypad

	delayTimer uint8 // counts down at 60Hz
	soundTimer uint8 // same as above

	rom    []byte
	status Status
	fault  error

	rng    Rand
	logger *log.Logger
	trace  bool
}

// Option configures an EMU.
type Option func(*EMU)

// WithLogger sets the logger used for fault, unknown opcode and trace output.
func WithLogger(logger *log.Logger) Option {
	return func(emu *EMU) {
		emu.logger = logger
	}
}

// WithRand sets the random source of the RND instruction.
func WithRand(rng Rand) Option {
	return func(emu *EMU) {
		emu.rng = rng
	}
}

// WithSeed seeds the default random source. A zero seed keeps the time
// based default.
func WithSeed(seed int64) Option {
	return func(emu *EMU) {
		if seed != 0 {
			emu.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithTrace enables logging of every executed instruction at debug level.
func WithTrace(enabled bool) Option {
	return func(emu *EMU) {
		emu.trace = enabled
	}
}

// NewEMU returns a machine in power-on state with the font installed and
// no program loaded.
func NewEMU(options ...Option) *EMU {
	emu := &EMU{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, option := range options {
		option(emu)
	}
	emu.Reset()
	return emu
}

// Reset restores the power-on state: memory is cleared, the font is
// reinstalled and the last loaded program, if any, is copied back to
// the program space.
func (emu *EMU) Reset() {
	emu.memory.Clear()
	emu.loadFont()
	if emu.rom != nil {
		// the size was checked when the program was first loaded
		_ = emu.memory.Load(memory.ProgramStart, emu.rom)
	}

	emu.V = [16]uint8{}
	emu.I = 0
	emu.pc = memory.ProgramStart
	emu.stack = [StackSize]uint16{}
	emu.sp = 0
	emu.delayTimer = 0
	emu.soundTimer = 0
	emu.display.Clear()
	emu.keyState.Reset()
	emu.status = Running
	emu.fault = nil
}

func (emu *EMU) loadFont() {
	for i, b := range screen.FontSet {
		emu.memory.Write(memory.FontAddress+uint16(i), b)
	}
}

// LoadROM copies a program image to 0x200 and resets the machine. An image
// larger than the program space is rejected before memory is touched.
func (emu *EMU) LoadROM(program []byte) error {
	if len(program) > memory.MaxProgramSize {
		return fmt.Errorf("%w: %d bytes, maximum is %d",
			ErrProgramTooLarge, len(program), memory.MaxProgramSize)
	}

	emu.rom = append([]byte(nil), program...)
	emu.Reset()
	return nil
}

// Step executes at most one instruction. It never blocks: a key-wait with
// no key down returns AwaitingKey, and a stack fault returns Halted along
// with a *Fault error. Once halted, Step keeps returning the same fault.
func (emu *EMU) Step() (Status, error) {
	if emu.fault != nil {
		return Halted, emu.fault
	}

	ins := Decode(emu.memory.ReadWord(emu.pc))
	if emu.trace {
		emu.debug("exec",
			log.String("pc", fmt.Sprintf("0x%03X", emu.pc)),
			log.String("opcode", fmt.Sprintf("0x%04X", ins.Word)),
			log.String("instr", ins.String()))
	}

	status, err := emu.execute(ins)
	if err != nil {
		emu.fault = err
		if emu.logger != nil {
			emu.logger.Error("Machine halted", err)
		}
	}
	emu.status = status
	return status, err
}

// TickTimers decrements the delay and sound timers toward zero. It is
// called by the driver at 60 Hz, independent of the instruction rate.
func (emu *EMU) TickTimers() {
	if emu.delayTimer > 0 {
		emu.delayTimer--
	}
	if emu.soundTimer > 0 {
		emu.soundTimer--
	}
}

// ToneActive reports whether the sound timer is running.
func (emu *EMU) ToneActive() bool {
	return emu.soundTimer > 0
}

// Status returns the result of the last Step.
func (emu *EMU) Status() Status {
	return emu.status
}

// Fault returns the error that halted the machine, or nil.
func (emu *EMU) Fault() error {
	return emu.fault
}

// PC returns the program counter.
func (emu *EMU) PC() uint16 {
	return emu.pc
}

// DelayTimer returns the delay timer value.
func (emu *EMU) DelayTimer() uint8 {
	return emu.delayTimer
}

// SoundTimer returns the sound timer value.
func (emu *EMU) SoundTimer() uint8 {
	return emu.soundTimer
}

// Display returns the display buffer for presenters.
func (emu *EMU) Display() *screen.Display {
	return &emu.display
}

// Keypad returns the input latch for the host input poller.
func (emu *EMU) Keypad() *keypad.Keypad {
	return &emu.keyState
}

// Memory returns the machine memory.
func (emu *EMU) Memory() *memory.Memory {
	return &emu.memory
}

func (emu *EMU) debug(msg string, args ...any) {
	if emu.logger != nil {
		emu.logger.Debug(msg, args...)
	}
}
