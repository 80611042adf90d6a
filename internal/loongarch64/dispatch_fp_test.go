package loongarch64

import (
	"testing"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFPContext() *Context {
	return &Context{SB: ir.NewIRSB(), Arch: ArchInfo{HWCaps: HWCapFP}, dres: &DisResult{WhatNext: Continue}}
}

func TestDispatchFPUnaryRoutesEverySelector(t *testing.T) {
	for _, sel := range []uint32{
		0b00001, 0b00010, 0b00101, 0b00110, 0b01001, 0b01010,
		0b01101, 0b01110, 0b10001, 0b10010, 0b10101, 0b11001, 0b11010,
	} {
		c := newFPContext()
		insn := sel << 10
		ok := c.dispatchFPUnary(insn)
		assert.Truef(t, ok, "selector 0b%05b should be recognized", sel)
		assert.NotEmptyf(t, c.SB.Stmts, "selector 0b%05b should emit IR", sel)
	}
}

func TestDispatchFPUnaryRejectsUnknownSelector(t *testing.T) {
	c := newFPContext()
	assert.False(t, c.dispatchFPUnary(0b11111<<10))
}

// dispatchFtintRoundGroup's bit4/bit3/bit1 selector decomposition is the
// trickiest piece of the FP dispatch tree: verify all eight valid shapes for
// each of the two sibling groups route somewhere and reject everything else.
func TestDispatchFtintRoundGroupValidSelectors(t *testing.T) {
	valid := []uint32{0b00001, 0b00010, 0b01001, 0b01010, 0b10001, 0b10010, 0b11001, 0b11010}
	for _, group := range []ftintRoundGroup{ftintGroupMinusPlus, ftintGroupZeroNearest} {
		for _, sel := range valid {
			c := newFPContext()
			insn := sel << 10
			ok := c.dispatchFtintRoundGroup(insn, group)
			require.Truef(t, ok, "group %v selector 0b%05b", group, sel)
			assert.NotEmpty(t, c.SB.Stmts)
		}
	}
}

func TestDispatchFtintRoundGroupRejectsInvalidSelectors(t *testing.T) {
	for _, sel := range []uint32{0b00000, 0b00011, 0b01100, 0b11111} {
		c := newFPContext()
		assert.False(t, c.dispatchFtintRoundGroup(sel<<10, ftintGroupMinusPlus))
	}
}

func TestDispatchFtintBareAndFfintAndFrint(t *testing.T) {
	for _, sel := range []uint32{0b00001, 0b00010, 0b01001, 0b01010} {
		c := newFPContext()
		assert.True(t, c.dispatchFtintBare(sel<<10))
	}
	assert.False(t, newFPContext().dispatchFtintBare(0b11111<<10))

	for _, sel := range []uint32{0b00100, 0b00110, 0b01000, 0b01010} {
		c := newFPContext()
		assert.True(t, c.dispatchFfint(sel<<10))
	}
	assert.False(t, newFPContext().dispatchFfint(0b11111<<10))

	for _, sel := range []uint32{0b10001, 0b10010} {
		c := newFPContext()
		assert.True(t, c.dispatchFrint(sel<<10))
	}
	assert.False(t, newFPContext().dispatchFrint(0b00000<<10))
}

func TestDispatchFcvt(t *testing.T) {
	assert.True(t, newFPContext().dispatchFcvt(0b00110<<10))
	assert.True(t, newFPContext().dispatchFcvt(0b01001<<10))
	assert.False(t, newFPContext().dispatchFcvt(0b11111<<10))
}

func TestDispatchFPMoveRoutesEveryValidSelector(t *testing.T) {
	for _, sel := range []uint32{
		0b00101, 0b00110, 0b01001, 0b01010, 0b01011, 0b01101, 0b01110, 0b01111,
		0b10000, 0b10010, 0b10100, 0b10101, 0b10110, 0b10111,
	} {
		c := newFPContext()
		insn := sel << 10
		assert.Truef(t, c.dispatchFPMove(insn), "selector 0b%05b", sel)
	}
}

func TestDispatchFPMoveGuardsReservedBitsOnCfMoves(t *testing.T) {
	c := newFPContext()
	// selector 0b10100 (movfr2cf) requires bits[4:3] == 0.
	insn := (uint32(0b10100) << 10) | (uint32(0b01) << 3)
	assert.False(t, c.dispatchFPMove(insn))
}

func TestDispatchFPMoveRejectsUnknownSelector(t *testing.T) {
	assert.False(t, newFPContext().dispatchFPMove(0b11111<<10))
}
