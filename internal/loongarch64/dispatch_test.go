package loongarch64

import (
	"testing"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/stretchr/testify/assert"
)

func newDispatchContext() *Context {
	return &Context{SB: ir.NewIRSB(), Arch: ArchInfo{HWCaps: HWCapFP | HWCapLAM | HWCapUAL}, dres: &DisResult{}}
}

func TestDispatchTopLevelSplitsOn00Vs01(t *testing.T) {
	c := newDispatchContext()
	// ld.b $r2, $r1, 0 -> dispatch00 -> dispatch00_1010, case 0b0000
	insn := (uint32(0b00) << 30) | (uint32(0b1010) << 26) | (1 << 5) | 2
	assert.True(t, c.dispatch(insn))
	assert.NotEmpty(t, c.SB.Stmts)
}

func TestDispatchRejectsReservedTopBits(t *testing.T) {
	c := newDispatchContext()
	insn := uint32(0b10) << 30 // neither 00 nor 01
	assert.False(t, c.dispatch(insn))
}

func TestDispatch01RoutesUnconditionalAndConditionalBranches(t *testing.T) {
	for _, sel := range []uint32{
		0b0000, 0b0001, 0b0011, 0b0100, 0b0101, 0b0110, 0b0111, 0b1000, 0b1001, 0b1010, 0b1011,
	} {
		c := newDispatchContext()
		insn := (uint32(0b01) << 30) | (sel << 26)
		assert.Truef(t, c.dispatch01(insn), "branch selector 0b%04b", sel)
	}
}

func TestDispatch01RejectsReservedSelector(t *testing.T) {
	c := newDispatchContext()
	insn := (uint32(0b01) << 30) | (uint32(0b1111) << 26)
	assert.False(t, c.dispatch01(insn))
}

func TestDispatch00_1010CoversEveryMemoryOp(t *testing.T) {
	for sel := uint32(0); sel <= 0b1111; sel++ {
		c := newDispatchContext()
		insn := (sel << 22) | (1 << 5) | 2
		assert.Truef(t, c.dispatch00_1010(insn), "mem selector 0b%04b", sel)
	}
}

func TestBcondSubSelectorGuardsReservedCodes(t *testing.T) {
	c := newDispatchContext()
	// bceqz/bcnez share case 0b0010 of dispatch01, keyed on bits[9:8];
	// values 0b10/0b11 are reserved.
	insn := (uint32(0b01) << 30) | (uint32(0b0010) << 26) | (uint32(0b10) << 8)
	assert.False(t, c.dispatch01(insn))
}
