package cpu

import (
	"errors"
	"fmt"
)

var (
	// ErrStackOverflow is returned when CALL runs with a full stack.
	ErrStackOverflow = errors.New("call stack overflow")
	// ErrStackUnderflow is returned when RET runs with an empty stack.
	ErrStackUnderflow = errors.New("call stack underflow")
	// ErrProgramTooLarge is returned when a ROM does not fit the program space.
	ErrProgramTooLarge = errors.New("program too large")
)

// Fault describes a fatal error raised while executing an instruction.
type Fault struct {
	PC          uint16
	Instruction Instruction
	Err         error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at 0x%03X (%s): %v", f.PC, f.Instruction, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
