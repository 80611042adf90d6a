package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlice(t *testing.T) {
	var testTable = []struct {
		desc     string
		insn     uint32
		max, min uint
		want     uint32
	}{
		{desc: "full opcode byte", insn: 0xAABBCCDD, max: 31, min: 24, want: 0xAA},
		{desc: "low nibble", insn: 0x0000000F, max: 3, min: 0, want: 0xF},
		{desc: "single bit set", insn: 1 << 17, max: 17, min: 17, want: 1},
		{desc: "single bit clear", insn: 1 << 16, max: 17, min: 17, want: 0},
		{desc: "mid-field rd slot", insn: 0b11111_00000, max: 9, min: 5, want: 0b11111},
	}

	for _, tt := range testTable {
		got := Slice(tt.insn, tt.max, tt.min)
		assert.Equal(t, tt.want, got, tt.desc)
	}
}

func TestSignExtend32(t *testing.T) {
	var testTable = []struct {
		desc string
		imm  uint32
		size uint
		want int32
	}{
		{desc: "positive 12-bit", imm: 0x0FF, size: 12, want: 0xFF},
		{desc: "negative 12-bit", imm: 0xFFF, size: 12, want: -1},
		{desc: "negative 16-bit offset", imm: 0x8000, size: 16, want: -32768},
		{desc: "full width no-op", imm: 0xFFFFFFFF, size: 32, want: -1},
	}

	for _, tt := range testTable {
		got := SignExtend32(tt.imm, tt.size)
		assert.Equal(t, tt.want, got, tt.desc)
	}
}

func TestSignExtend64(t *testing.T) {
	var testTable = []struct {
		desc string
		imm  uint64
		size uint
		want int64
	}{
		{desc: "positive 21-bit branch offset", imm: 0x0FFFFF, size: 21, want: 0x0FFFFF},
		{desc: "negative 21-bit branch offset", imm: 0x1FFFFF, size: 21, want: -1},
		{desc: "negative 26-bit jump offset", imm: 0x2000000, size: 26, want: -(1 << 25)},
	}

	for _, tt := range testTable {
		got := SignExtend64(tt.imm, tt.size)
		assert.Equal(t, tt.want, got, tt.desc)
	}
}
