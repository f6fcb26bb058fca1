package disasm

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beanboi7/chyp8/emu/cpu"
	"github.com/retroenv/retrogolib/assert"
)

var testProgram = []byte{
	0x00, 0xE0, // cls
	0x22, 0x06, // call $206
	0x12, 0x02, // jp $202
	0x00, 0xEE, // ret
	0xFF, 0xFF, // no instruction
	0x12, // trailing byte
}

var expectedNoComments = `Start:
  cls

_label_0202:
  call $206
  jp $202

_sub_0206:
  ret
.byte $FF, $FF
.byte $12
`

func TestDecode(t *testing.T) {
	lines := Decode(testProgram)

	assert.Equal(t, 6, len(lines))
	assert.Equal(t, uint16(0x200), lines[0].Address)
	assert.Equal(t, cpu.OpCls, lines[0].Instruction.Op)
	assert.Equal(t, uint16(0x202), lines[1].Address)
	assert.Equal(t, cpu.OpCall, lines[1].Instruction.Op)
	assert.True(t, lines[4].IsData())
	assert.True(t, lines[5].IsData())
	assert.Equal(t, []byte{0x12}, lines[5].Data)
}

func TestWrite_NoComments(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testProgram, Options{})
	assert.NoError(t, err)
	assert.Equal(t, expectedNoComments, buf.String())
}

func TestWrite_Comments(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testProgram[:2], DefaultOptions())
	assert.NoError(t, err)

	expected := "Start:\n" + "  cls" + strings.Repeat(" ", 27) + " ; $0200 00 E0\n"
	assert.Equal(t, expected, buf.String())
}

func TestWrite_DataLabel(t *testing.T) {
	program := []byte{
		0xA2, 0x04, // ld I, $204
		0x12, 0x00, // jp $200
		0xF0, 0x90, // sprite data
		0xA2, 0x07, // ld I, $207
	}

	var buf bytes.Buffer
	err := Write(&buf, program, Options{})
	assert.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, "_data_0204:\n"))
	assert.True(t, strings.Contains(out, "; _data_0207 = $207 (unaligned)\n"))
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, Write(&buf, nil, DefaultOptions()))
	assert.Equal(t, "", buf.String())
}
