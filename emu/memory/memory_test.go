package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemory_Wraparound(t *testing.T) {
	var m Memory

	m.Write(0x1005, 0xAB)
	assert.Equal(t, byte(0xAB), m.Read(0x005))
	assert.Equal(t, byte(0xAB), m.Read(0xF005))

	m.Write(0xFFF, 0x12)
	m.Write(0x000, 0x34)
	assert.Equal(t, uint16(0x1234), m.ReadWord(0xFFF))
}

func TestMemory_Load(t *testing.T) {
	tests := []struct {
		name    string
		addr    uint16
		size    int
		wantErr bool
	}{
		{"empty", ProgramStart, 0, false},
		{"full program space", ProgramStart, MaxProgramSize, false},
		{"one byte too large", ProgramStart, MaxProgramSize + 1, true},
		{"last cell", 0xFFF, 1, false},
		{"past last cell", 0xFFF, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Memory
			data := make([]byte, tt.size)
			for i := range data {
				data[i] = 0xEE
			}

			err := m.Load(tt.addr, data)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrOutOfRange))
				assert.Equal(t, byte(0), m.Read(tt.addr))
				return
			}
			assert.NoError(t, err)
			if tt.size > 0 {
				assert.Equal(t, byte(0xEE), m.Read(tt.addr))
				assert.Equal(t, byte(0xEE), m.Read(tt.addr+uint16(tt.size-1)))
			}
		})
	}
}

func TestMemory_SliceAndClear(t *testing.T) {
	var m Memory
	assert.NoError(t, m.Load(0xFFE, []byte{1, 2}))
	m.Write(0, 3)

	assert.Equal(t, []byte{1, 2, 3}, m.Slice(0xFFE, 3))

	m.Clear()
	assert.Equal(t, []byte{0, 0, 0}, m.Slice(0xFFE, 3))
}
