// Package disasm renders CHIP-8 program images as assembler listings.
package disasm

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/beanboi7/chyp8/emu/memory"
)

// Options controls the listing output.
type Options struct {
	HexComments    bool // opcode bytes as hex values in comments
	OffsetComments bool // addresses in comments
}

// DefaultOptions returns options with all comments enabled.
func DefaultOptions() Options {
	return Options{
		HexComments:    true,
		OffsetComments: true,
	}
}

// Line is one decoded word of a program image.
type Line struct {
	Address     uint16
	Data        []byte
	Instruction cpu.Instruction
}

// IsData reports whether the line holds bytes that do not decode to an
// instruction.
func (l Line) IsData() bool {
	return len(l.Data) < 2 || l.Instruction.Op == cpu.OpUnknown
}

// Code returns the assembler text of the line. Data lines are emitted
// as .byte directives.
func (l Line) Code() string {
	if !l.IsData() {
		return l.Instruction.String()
	}
	values := make([]string, len(l.Data))
	for i, b := range l.Data {
		values[i] = fmt.Sprintf("$%02X", b)
	}
	return ".byte " + strings.Join(values, ", ")
}

// Decode splits program into words as they are laid out in memory from
// the program start address. A trailing odd byte becomes a data line.
func Decode(program []byte) []Line {
	lines := make([]Line, 0, (len(program)+1)/2)
	for offset := 0; offset < len(program); offset += 2 {
		address := uint16(memory.ProgramStart + offset)
		if offset+1 == len(program) {
			lines = append(lines, Line{Address: address, Data: program[offset:]})
			break
		}

		data := program[offset : offset+2]
		word := uint16(data[0])<<8 | uint16(data[1])
		lines = append(lines, Line{
			Address:     address,
			Data:        data,
			Instruction: cpu.Decode(word),
		})
	}
	return lines
}

// labels returns names for the jump, call and data targets inside the
// program.
func labels(lines []Line) map[uint16]string {
	names := map[uint16]string{
		memory.ProgramStart: "Start",
	}
	if len(lines) == 0 {
		return names
	}
	final := lines[len(lines)-1]
	last := final.Address + uint16(len(final.Data)) - 1

	for _, line := range lines {
		if line.IsData() {
			continue
		}
		ins := line.Instruction

		var prefix string
		switch ins.Op {
		case cpu.OpJp:
			prefix = "_label_"
		case cpu.OpCall:
			prefix = "_sub_"
		case cpu.OpLdI:
			prefix = "_data_"
		default:
			continue
		}

		if ins.Addr < memory.ProgramStart || ins.Addr > last {
			continue
		}
		if _, ok := names[ins.Addr]; !ok {
			names[ins.Addr] = fmt.Sprintf("%s%04x", prefix, ins.Addr)
		}
	}
	return names
}

// Write disassembles program and writes the listing to w.
func Write(w io.Writer, program []byte, options Options) error {
	lines := Decode(program)
	names := labels(lines)

	// targets that fall between two words cannot get a label line
	var unaligned []uint16
	for address := range names {
		if (address-memory.ProgramStart)%2 != 0 {
			unaligned = append(unaligned, address)
		}
	}
	sort.Slice(unaligned, func(i, j int) bool { return unaligned[i] < unaligned[j] })

	buf := bufio.NewWriter(w)
	for i, line := range lines {
		if name, ok := names[line.Address]; ok {
			if i > 0 {
				if _, err := buf.WriteString("\n"); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(buf, "%s:\n", name); err != nil {
				return err
			}
		}

		if _, err := buf.WriteString(formatLine(line, options)); err != nil {
			return err
		}
	}

	for _, address := range unaligned {
		if _, err := fmt.Fprintf(buf, "; %s = $%03X (unaligned)\n", names[address], address); err != nil {
			return err
		}
	}
	return buf.Flush()
}

func formatLine(line Line, options Options) string {
	code := line.Code()
	if !line.IsData() {
		code = "  " + code
	}

	var comment []string
	if options.OffsetComments {
		comment = append(comment, fmt.Sprintf("$%04X", line.Address))
	}
	if options.HexComments {
		for _, b := range line.Data {
			comment = append(comment, fmt.Sprintf("%02X", b))
		}
	}

	if len(comment) == 0 {
		return code + "\n"
	}
	return fmt.Sprintf("%-32s ; %s\n", code, strings.Join(comment, " "))
}
