package loongarch64

import (
	"testing"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArithContext() *Context {
	return &Context{SB: ir.NewIRSB(), GuestPCCurr: 0x1000}
}

// spec.md §8: addi.d with imm = -1, 0, +2047, -2048 must each embed the
// correctly sign-extended 12-bit immediate as the add's right operand.
func TestEmitAddiDSignExtendsBoundaryImmediates(t *testing.T) {
	cases := []struct {
		name string
		si12 uint32
		want int64
	}{
		{"minus one", 0xfff, -1},
		{"zero", 0x000, 0},
		{"plus max", 0x7ff, 2047},
		{"minus min", 0x800, -2048},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newArithContext()
			c.emitAddiD(4, 5, tc.si12)

			require.Len(t, c.SB.Stmts, 1)
			s := c.SB.Stmts[0]
			require.Equal(t, ir.StmtPut, s.Kind)
			assert.Equal(t, state.GPROffset(4), s.Offset)
			imm := s.Value.Args()[1]
			v, ok := imm.ConstValue()
			require.True(t, ok)
			assert.Equal(t, uint64(tc.want), v)
		})
	}
}

// spec.md §8: lu12i.w rd, -1 writes 0xFFFF_FFFF_FFFF_F000.
func TestEmitLu12iWMinusOneWritesSignExtendedPattern(t *testing.T) {
	c := newArithContext()
	c.emitLu12iW(4, 0xfffff)

	require.Len(t, c.SB.Stmts, 1)
	s := c.SB.Stmts[0]
	require.Equal(t, ir.StmtPut, s.Kind)
	assert.Equal(t, state.GPROffset(4), s.Offset)
	v, ok := s.Value.ConstValue()
	require.True(t, ok)
	assert.Equal(t, uint64(0xFFFFFFFFFFFFF000), v)
}

// spec.md §8: pcaddu18i rd, -1 writes PC - 0x00040000.
func TestEmitPcaddu18iMinusOneSubtractsFromPC(t *testing.T) {
	c := newArithContext()
	c.emitPcadduXXi(4, 0xfffff, 18)

	require.Len(t, c.SB.Stmts, 1)
	s := c.SB.Stmts[0]
	require.Equal(t, ir.StmtPut, s.Kind)
	assert.Equal(t, state.GPROffset(4), s.Offset)

	pc, ok := s.Value.Args()[0].ConstValue()
	require.True(t, ok)
	assert.Equal(t, c.GuestPCCurr, pc)

	delta, ok := s.Value.Args()[1].ConstValue()
	require.True(t, ok)
	assert.Equal(t, uint64(0xFFFFFFFFFFFC0000), delta, "delta must equal -0x40000 as a 64-bit two's complement value")
}

// Regression for the bytepick degenerate case (sa == 0 selects rk, not rj):
// at shift == width the funnel-shift formula zeroes the rj-derived term and
// the rk<<0 term reduces to plain rk.
func TestEmitBytepickWDegenerateCaseSelectsRkNotRj(t *testing.T) {
	c := newArithContext()
	c.emitBytepickW(4, 5, 6, 0)

	require.Len(t, c.SB.Stmts, 1)
	s := c.SB.Stmts[0]
	require.Equal(t, ir.StmtPut, s.Kind)
	inner := s.Value.Args()[0].Args()[0]
	assert.Equal(t, state.GPROffset(6), inner.StateOffset(), "sa2==0 must read rk, not rj")
}

func TestEmitBytepickDDegenerateCaseSelectsRkNotRj(t *testing.T) {
	c := newArithContext()
	c.emitBytepickD(4, 5, 6, 0)

	require.Len(t, c.SB.Stmts, 1)
	s := c.SB.Stmts[0]
	require.Equal(t, ir.StmtPut, s.Kind)
	assert.Equal(t, state.GPROffset(6), s.Value.StateOffset(), "sa3==0 must read rk, not rj")
}

func TestEmitBytepickWNonzeroShiftBuildsShiftOrShift(t *testing.T) {
	c := newArithContext()
	c.emitBytepickW(4, 5, 6, 2)

	require.Len(t, c.SB.Stmts, 1)
	s := c.SB.Stmts[0]
	or := s.Value.Args()[0]
	assert.Equal(t, ir.OpOr, or.Op())
	assert.Equal(t, ir.OpShl, or.Args()[0].Op())
	assert.Equal(t, ir.OpShrU, or.Args()[1].Op())
}

func TestEmitAdd32SignExtendsTheResult(t *testing.T) {
	c := newArithContext()
	c.emitAdd32(4, 5, 6)

	require.Len(t, c.SB.Stmts, 1)
	s := c.SB.Stmts[0]
	assert.Equal(t, ir.StmtPut, s.Kind)
	assert.Equal(t, state.GPROffset(4), s.Offset)
	assert.Equal(t, ir.OpSignExtend, s.Value.Op())
}

func TestEmitMulwDZeroVsSignExtendsSources(t *testing.T) {
	c := newArithContext()
	c.emitMulwD(true, 4, 5, 6)

	require.Len(t, c.SB.Stmts, 1)
	s := c.SB.Stmts[0]
	a := s.Value.Args()[0]
	b := s.Value.Args()[1]
	assert.Equal(t, ir.OpSignExtend, a.Op())
	assert.Equal(t, ir.OpSignExtend, b.Op())
}
