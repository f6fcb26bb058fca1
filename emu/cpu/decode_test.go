package cpu

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode_Fields(t *testing.T) {
	ins := Decode(0xD1A5)

	assert.Equal(t, OpDrw, ins.Op)
	assert.Equal(t, uint8(0x1), ins.X)
	assert.Equal(t, uint8(0xA), ins.Y)
	assert.Equal(t, uint8(0x5), ins.N)
	assert.Equal(t, uint8(0xA5), ins.KK)
	assert.Equal(t, uint16(0x1A5), ins.Addr)
	assert.Equal(t, uint16(0xD1A5), ins.Word)
}

func TestDecode_OpcodeTable(t *testing.T) {
	tests := []struct {
		word     uint16
		op       Op
		mnemonic string
	}{
		{0x00E0, OpCls, "cls"},
		{0x00EE, OpRet, "ret"},
		{0x0123, OpSys, "sys $123"},
		{0x1234, OpJp, "jp $234"},
		{0x2345, OpCall, "call $345"},
		{0x3234, OpSeByte, "se V2, $34"},
		{0x4234, OpSneByte, "sne V2, $34"},
		{0x5230, OpSeReg, "se V2, V3"},
		{0x6234, OpLdByte, "ld V2, $34"},
		{0x7234, OpAddByte, "add V2, $34"},
		{0x8230, OpLdReg, "ld V2, V3"},
		{0x8231, OpOr, "or V2, V3"},
		{0x8232, OpAnd, "and V2, V3"},
		{0x8233, OpXor, "xor V2, V3"},
		{0x8234, OpAddReg, "add V2, V3"},
		{0x8235, OpSub, "sub V2, V3"},
		{0x8236, OpShr, "shr V2"},
		{0x8237, OpSubn, "subn V2, V3"},
		{0x823E, OpShl, "shl V2"},
		{0x9230, OpSneReg, "sne V2, V3"},
		{0xA234, OpLdI, "ld I, $234"},
		{0xB234, OpJpV0, "jp V0, $234"},
		{0xC234, OpRnd, "rnd V2, $34"},
		{0xD235, OpDrw, "drw V2, V3, $5"},
		{0xE29E, OpSkp, "skp V2"},
		{0xE2A1, OpSknp, "sknp V2"},
		{0xF207, OpLdVxDT, "ld V2, DT"},
		{0xF20A, OpLdVxK, "ld V2, K"},
		{0xF215, OpLdDTVx, "ld DT, V2"},
		{0xF218, OpLdSTVx, "ld ST, V2"},
		{0xF21E, OpAddI, "add I, V2"},
		{0xF229, OpLdF, "ld F, V2"},
		{0xF233, OpLdB, "ld B, V2"},
		{0xF255, OpStore, "ld [I], V2"},
		{0xF265, OpLoad, "ld V2, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			ins := Decode(tt.word)
			assert.Equal(t, tt.op, ins.Op)
			assert.Equal(t, tt.mnemonic, ins.String())
		})
	}
}

func TestDecode_Unknown(t *testing.T) {
	words := []uint16{
		0x5231, // 5xy0 with non-zero low nibble
		0x923F,
		0x8238,
		0x823F,
		0xE200,
		0xE29F,
		0xF200,
		0xF2FF,
	}

	for _, word := range words {
		ins := Decode(word)
		assert.Equal(t, OpUnknown, ins.Op)
	}

	assert.Equal(t, ".word $F2FF", Decode(0xF2FF).String())
}

func TestInstruction_SkipsNext(t *testing.T) {
	assert.True(t, Decode(0x3000).SkipsNext())
	assert.True(t, Decode(0x9010).SkipsNext())
	assert.True(t, Decode(0xE0A1).SkipsNext())
	assert.False(t, Decode(0x1200).SkipsNext())
	assert.False(t, Decode(0xF00A).SkipsNext())
}
