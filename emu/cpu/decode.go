package cpu

import "fmt"

// Op identifies the operation form of a decoded instruction.
type Op uint8

const (
	OpUnknown Op = iota
	OpSys        // 0nnn
	OpCls        // 00E0
	OpRet        // 00EE
	OpJp         // 1nnn
	OpCall       // 2nnn
	OpSeByte     // 3xkk
	OpSneByte    // 4xkk
	OpSeReg      // 5xy0
	OpLdByte     // 6xkk
	OpAddByte    // 7xkk
	OpLdReg      // 8xy0
	OpOr         // 8xy1
	OpAnd        // 8xy2
	OpXor        // 8xy3
	OpAddReg     // 8xy4
	OpSub        // 8xy5
	OpShr        // 8xy6
	OpSubn       // 8xy7
	OpShl        // 8xyE
	OpSneReg     // 9xy0
	OpLdI        // Annn
	OpJpV0       // Bnnn
	OpRnd        // Cxkk
	OpDrw        // Dxyn
	OpSkp        // Ex9E
	OpSknp       // ExA1
	OpLdVxDT     // Fx07
	OpLdVxK      // Fx0A
	OpLdDTVx     // Fx15
	OpLdSTVx     // Fx18
	OpAddI       // Fx1E
	OpLdF        // Fx29
	OpLdB        // Fx33
	OpStore      // Fx55
	OpLoad       // Fx65
)

var opNames = [...]string{
	OpUnknown: "unknown",
	OpSys:     "sys",
	OpCls:     "cls",
	OpRet:     "ret",
	OpJp:      "jp",
	OpCall:    "call",
	OpSeByte:  "se",
	OpSneByte: "sne",
	OpSeReg:   "se",
	OpLdByte:  "ld",
	OpAddByte: "add",
	OpLdReg:   "ld",
	OpOr:      "or",
	OpAnd:     "and",
	OpXor:     "xor",
	OpAddReg:  "add",
	OpSub:     "sub",
	OpShr:     "shr",
	OpSubn:    "subn",
	OpShl:     "shl",
	OpSneReg:  "sne",
	OpLdI:     "ld",
	OpJpV0:    "jp",
	OpRnd:     "rnd",
	OpDrw:     "drw",
	OpSkp:     "skp",
	OpSknp:    "sknp",
	OpLdVxDT:  "ld",
	OpLdVxK:   "ld",
	OpLdDTVx:  "ld",
	OpLdSTVx:  "ld",
	OpAddI:    "add",
	OpLdF:     "ld",
	OpLdB:     "ld",
	OpStore:   "ld",
	OpLoad:    "ld",
}

// Name returns the assembler mnemonic of the operation.
func (o Op) Name() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return opNames[OpUnknown]
}

// Instruction is a decoded instruction word. All operand fields are
// extracted regardless of the operation; Op tells which of them matter.
type Instruction struct {
	Word uint16
	Op   Op
	X    uint8  // bits 8-11
	Y    uint8  // bits 4-7
	N    uint8  // bits 0-3
	KK   uint8  // bits 0-7
	Addr uint16 // bits 0-11
}

// Decode splits a big-endian instruction word into its fields and
// classifies it. Words that match no operation decode to OpUnknown.
func Decode(word uint16) Instruction {
	ins := Instruction{
		Word: word,
		X:    uint8(word>>8) & 0x0F,
		Y:    uint8(word>>4) & 0x0F,
		N:    uint8(word) & 0x0F,
		KK:   uint8(word),
		Addr: word & 0x0FFF,
	}
	ins.Op = classify(ins)
	return ins
}

func classify(ins Instruction) Op {
	switch ins.Word >> 12 {
	case 0x0:
		switch ins.Word {
		case 0x00E0:
			return OpCls
		case 0x00EE:
			return OpRet
		}
		return OpSys
	case 0x1:
		return OpJp
	case 0x2:
		return OpCall
	case 0x3:
		return OpSeByte
	case 0x4:
		return OpSneByte
	case 0x5:
		if ins.N == 0 {
			return OpSeReg
		}
	case 0x6:
		return OpLdByte
	case 0x7:
		return OpAddByte
	case 0x8:
		return classifyALU(ins.N)
	case 0x9:
		if ins.N == 0 {
			return OpSneReg
		}
	case 0xA:
		return OpLdI
	case 0xB:
		return OpJpV0
	case 0xC:
		return OpRnd
	case 0xD:
		return OpDrw
	case 0xE:
		switch ins.KK {
		case 0x9E:
			return OpSkp
		case 0xA1:
			return OpSknp
		}
	case 0xF:
		return classifyMisc(ins.KK)
	}
	return OpUnknown
}

func classifyALU(n uint8) Op {
	switch n {
	case 0x0:
		return OpLdReg
	case 0x1:
		return OpOr
	case 0x2:
		return OpAnd
	case 0x3:
		return OpXor
	case 0x4:
		return OpAddReg
	case 0x5:
		return OpSub
	case 0x6:
		return OpShr
	case 0x7:
		return OpSubn
	case 0xE:
		return OpShl
	}
	return OpUnknown
}

func classifyMisc(kk uint8) Op {
	switch kk {
	case 0x07:
		return OpLdVxDT
	case 0x0A:
		return OpLdVxK
	case 0x15:
		return OpLdDTVx
	case 0x18:
		return OpLdSTVx
	case 0x1E:
		return OpAddI
	case 0x29:
		return OpLdF
	case 0x33:
		return OpLdB
	case 0x55:
		return OpStore
	case 0x65:
		return OpLoad
	}
	return OpUnknown
}

// SkipsNext reports whether the instruction conditionally skips the
// following instruction.
func (ins Instruction) SkipsNext() bool {
	switch ins.Op {
	case OpSeByte, OpSneByte, OpSeReg, OpSneReg, OpSkp, OpSknp:
		return true
	}
	return false
}

// String returns the instruction in assembler syntax, for example
// "ld V2, $34" or "drw V0, V1, $5". Unknown words render as a data word.
func (ins Instruction) String() string {
	name := ins.Op.Name()
	if params := ins.params(); params != "" {
		return name + " " + params
	}
	if ins.Op == OpUnknown {
		return fmt.Sprintf(".word $%04X", ins.Word)
	}
	return name
}

func (ins Instruction) params() string {
	switch ins.Op {
	case OpSys, OpJp, OpCall:
		return fmt.Sprintf("$%03X", ins.Addr)
	case OpJpV0:
		return fmt.Sprintf("V0, $%03X", ins.Addr)
	case OpLdI:
		return fmt.Sprintf("I, $%03X", ins.Addr)
	case OpSeByte, OpSneByte, OpLdByte, OpAddByte, OpRnd:
		return fmt.Sprintf("V%X, $%02X", ins.X, ins.KK)
	case OpSeReg, OpSneReg, OpLdReg, OpOr, OpAnd, OpXor, OpAddReg, OpSub, OpSubn:
		return fmt.Sprintf("V%X, V%X", ins.X, ins.Y)
	case OpShr, OpShl, OpSkp, OpSknp:
		return fmt.Sprintf("V%X", ins.X)
	case OpDrw:
		return fmt.Sprintf("V%X, V%X, $%X", ins.X, ins.Y, ins.N)
	case OpLdVxDT:
		return fmt.Sprintf("V%X, DT", ins.X)
	case OpLdVxK:
		return fmt.Sprintf("V%X, K", ins.X)
	case OpLdDTVx:
		return fmt.Sprintf("DT, V%X", ins.X)
	case OpLdSTVx:
		return fmt.Sprintf("ST, V%X", ins.X)
	case OpAddI:
		return fmt.Sprintf("I, V%X", ins.X)
	case OpLdF:
		return fmt.Sprintf("F, V%X", ins.X)
	case OpLdB:
		return fmt.Sprintf("B, V%X", ins.X)
	case OpStore:
		return fmt.Sprintf("[I], V%X", ins.X)
	case OpLoad:
		return fmt.Sprintf("V%X, [I]", ins.X)
	}
	return ""
}
