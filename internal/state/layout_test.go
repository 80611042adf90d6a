package state

import (
	"testing"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterOffsetsAreDistinctAndWordAligned(t *testing.T) {
	seen := map[int]string{}
	for n := uint32(0); n < GPRCount; n++ {
		off := GPROffset(n)
		assert.Zero(t, off%8, "GPR offset must be word-aligned")
		assert.NotContainsf(t, seen, off, "GPR %d collides with %s", n, seen[off])
		seen[off] = "gpr"
	}
	for n := uint32(0); n < FPRCount; n++ {
		off := FPROffset(n)
		assert.Zero(t, off%8)
		assert.NotContains(t, seen, off)
		seen[off] = "fpr"
	}
	assert.Equal(t, GPRSize, FPRBase-GPRBase)
}

func TestReadGPRZeroIsConstantNotGet(t *testing.T) {
	zero := ReadGPR(0)
	v, ok := zero.ConstValue()
	require.True(t, ok)
	assert.Equal(t, uint64(0), v)
}

func TestPutGPRZeroIsNoOp(t *testing.T) {
	sb := ir.NewIRSB()
	PutGPR(sb, 0, ir.ConstU64(ir.TypeI64, 42))
	assert.Empty(t, sb.Stmts, "writes to r0 must not emit any statement")
}

func TestPutGPRRejectsNarrowValue(t *testing.T) {
	sb := ir.NewIRSB()
	assert.Panics(t, func() {
		PutGPR(sb, 4, ir.ConstU64(ir.TypeI32, 1))
	})
}

func TestPutGPRNonZeroEmitsPut(t *testing.T) {
	sb := ir.NewIRSB()
	PutGPR(sb, 4, ir.ConstU64(ir.TypeI64, 7))
	require.Len(t, sb.Stmts, 1)
	assert.Equal(t, GPROffset(4), sb.Stmts[0].Offset)
}

func TestFPR32RoundTripsThroughReinterpret(t *testing.T) {
	// ReadFPR32 must not emit a narrow load: it reads the full 64-bit
	// register and truncates in IR, so memory-checkers see one full-width
	// Get rather than a partial one.
	e := ReadFPR32(3)
	assert.Equal(t, ir.TypeF32, e.Type())
	assert.Equal(t, ir.OpReinterpret, e.Op())
}

func TestPutFPR32RejectsWrongType(t *testing.T) {
	sb := ir.NewIRSB()
	assert.Panics(t, func() {
		PutFPR32(sb, 1, ir.ConstU64(ir.TypeI64, 0))
	})
}
