package cpu

import (
	"fmt"

	"github.com/beanboi7/chyp8/emu/memory"
	"github.com/beanboi7/chyp8/emu/screen"
	"github.com/retroenv/retrogolib/log"
)

// execute applies one decoded instruction and sets the next PC.
// On a fault the machine state, including the PC, is left unchanged.
func (emu *EMU) execute(ins Instruction) (Status, error) {
	x, y := ins.X, ins.Y
	next := emu.pc + 2

	switch ins.Op {
	case OpCls:
		emu.display.Clear()

	case OpRet:
		if emu.sp == 0 {
			return Halted, emu.newFault(ins, ErrStackUnderflow)
		}
		emu.sp--
		next = emu.stack[emu.sp]

	case OpJp:
		next = ins.Addr

	case OpJpV0:
		next = ins.Addr + uint16(emu.V[0])

	case OpCall:
		if emu.sp == StackSize {
			return Halted, emu.newFault(ins, ErrStackOverflow)
		}
		emu.stack[emu.sp] = next & addressMask
		emu.sp++
		next = ins.Addr

	case OpSeByte:
		next = skipIf(next, emu.V[x] == ins.KK)
	case OpSneByte:
		next = skipIf(next, emu.V[x] != ins.KK)
	case OpSeReg:
		next = skipIf(next, emu.V[x] == emu.V[y])
	case OpSneReg:
		next = skipIf(next, emu.V[x] != emu.V[y])
	case OpSkp:
		next = skipIf(next, emu.keyState.IsPressed(emu.V[x]))
	case OpSknp:
		next = skipIf(next, !emu.keyState.IsPressed(emu.V[x]))

	case OpLdByte:
		emu.V[x] = ins.KK
	case OpAddByte:
		emu.V[x] += ins.KK

	case OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpShr, OpSubn, OpShl:
		emu.executeALU(ins)

	case OpLdI:
		emu.I = ins.Addr

	case OpRnd:
		emu.V[x] = uint8(emu.rng.Intn(256)) & ins.KK

	case OpDrw:
		emu.draw(ins)

	case OpLdVxDT:
		emu.V[x] = emu.delayTimer
	case OpLdDTVx:
		emu.delayTimer = emu.V[x]
	case OpLdSTVx:
		emu.soundTimer = emu.V[x]

	case OpLdVxK:
		key, ok := emu.keyState.FirstPressed()
		if !ok {
			return AwaitingKey, nil
		}
		emu.V[x] = key

	case OpAddI:
		emu.I += uint16(emu.V[x])

	case OpLdF:
		emu.I = memory.FontAddress + screen.GlyphOffset(emu.V[x])

	case OpLdB:
		value := emu.V[x]
		emu.memory.Write(emu.I, value/100)
		emu.memory.Write(emu.I+1, value/10%10)
		emu.memory.Write(emu.I+2, value%10)

	case OpStore:
		for i := uint16(0); i <= uint16(x); i++ {
			emu.memory.Write(emu.I+i, emu.V[i])
		}

	case OpLoad:
		for i := uint16(0); i <= uint16(x); i++ {
			emu.V[i] = emu.memory.Read(emu.I + i)
		}

	case OpSys:
		// machine code routines of the original interpreters are ignored

	default:
		emu.debug("Unknown opcode",
			log.String("pc", fmt.Sprintf("0x%03X", emu.pc)),
			log.String("opcode", fmt.Sprintf("0x%04X", ins.Word)))
	}

	emu.pc = next & addressMask
	return Running, nil
}

// executeALU handles the 8xyN register operations. Operands are read
// before VF is written, so the flag wins when x is VF.
func (emu *EMU) executeALU(ins Instruction) {
	vx, vy := emu.V[ins.X], emu.V[ins.Y]

	switch ins.Op {
	case OpLdReg:
		emu.V[ins.X] = vy
	case OpOr:
		emu.V[ins.X] = vx | vy
	case OpAnd:
		emu.V[ins.X] = vx & vy
	case OpXor:
		emu.V[ins.X] = vx ^ vy
	case OpAddReg:
		sum := uint16(vx) + uint16(vy)
		emu.V[ins.X] = uint8(sum)
		emu.V[FlagRegister] = boolToFlag(sum > 0xFF)
	case OpSub:
		emu.V[ins.X] = vx - vy
		emu.V[FlagRegister] = boolToFlag(vx >= vy)
	case OpSubn:
		emu.V[ins.X] = vy - vx
		emu.V[FlagRegister] = boolToFlag(vy >= vx)
	case OpShr:
		emu.V[ins.X] = vx >> 1
		emu.V[FlagRegister] = vx & 0x01
	case OpShl:
		emu.V[ins.X] = vx << 1
		emu.V[FlagRegister] = vx >> 7
	}
}

// draw XORs an n-row sprite read from I onto the display at (Vx, Vy).
// The start position and every plotted pixel wrap per axis. VF is set
// if any pixel was turned off.
func (emu *EMU) draw(ins Instruction) {
	originX := int(emu.V[ins.X]) % screen.Width
	originY := int(emu.V[ins.Y]) % screen.Height

	collision := false
	for row := 0; row < int(ins.N); row++ {
		bits := emu.memory.Read(emu.I + uint16(row))
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			if emu.display.Plot(originX+col, originY+row) {
				collision = true
			}
		}
	}
	emu.V[FlagRegister] = boolToFlag(collision)
}

func (emu *EMU) newFault(ins Instruction, err error) error {
	return &Fault{PC: emu.pc, Instruction: ins, Err: err}
}

func skipIf(next uint16, condition bool) uint16 {
	if condition {
		return next + 2
	}
	return next
}

func boolToFlag(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
