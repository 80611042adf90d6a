package loongarch64

import (
	"testing"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBitfieldContext() *Context {
	return &Context{SB: ir.NewIRSB()}
}

func TestEmitExtWSignExtends(t *testing.T) {
	c := newBitfieldContext()
	c.emitExtW(ir.TypeI8, 4, 5)

	require.Len(t, c.SB.Stmts, 1)
	assert.Equal(t, ir.OpSignExtend, c.SB.Stmts[0].Value.Op())
}

func TestEmitClz32SchedulesHelperThenWritesGPR(t *testing.T) {
	c := newBitfieldContext()
	c.emitClz32(4, 5)

	require.Len(t, c.SB.Stmts, 2)
	assert.Equal(t, ir.StmtWrTmp, c.SB.Stmts[0].Kind)
	assert.Equal(t, ir.StmtPut, c.SB.Stmts[1].Kind)
	assert.Equal(t, state.GPROffset(4), c.SB.Stmts[1].Offset)
}

func TestEmitClo32AssignsTheTruncatedHelperCall(t *testing.T) {
	c := newBitfieldContext()
	c.emitClo32(4, 5)

	require.Len(t, c.SB.Stmts, 2)
	wrTmp := c.SB.Stmts[0]
	require.Equal(t, ir.StmtWrTmp, wrTmp.Kind)
	call := wrTmp.Expr.Args()[0] // truncate(call)
	require.NotNil(t, call)
}

func TestEmitRevbDSchedulesAHelperCall(t *testing.T) {
	c := newBitfieldContext()
	c.emitRevbD(4, 5)

	require.Len(t, c.SB.Stmts, 2)
	assert.Equal(t, ir.StmtWrTmp, c.SB.Stmts[0].Kind)
	assert.Equal(t, ir.StmtPut, c.SB.Stmts[1].Kind)
}

func TestEmitBstrinsDPreservesOutsideBitsViaMaskedOr(t *testing.T) {
	c := newBitfieldContext()
	c.emitBstrinsD(4, 5, 7, 2)

	require.Len(t, c.SB.Stmts, 1)
	s := c.SB.Stmts[0]
	assert.Equal(t, ir.StmtPut, s.Kind)
	assert.Equal(t, ir.OpOr, s.Value.Op())
	assert.Equal(t, state.GPROffset(4), s.Offset)
}

func TestEmitBstrinsWSignExtendsResult(t *testing.T) {
	c := newBitfieldContext()
	c.emitBstrinsW(4, 5, 7, 2)

	require.Len(t, c.SB.Stmts, 1)
	assert.Equal(t, ir.OpSignExtend, c.SB.Stmts[0].Value.Op())
}

func TestEmitBstrpickDShiftsLeftThenRight(t *testing.T) {
	c := newBitfieldContext()
	c.emitBstrpickD(4, 5, 15, 4)

	require.Len(t, c.SB.Stmts, 1)
	s := c.SB.Stmts[0]
	assert.Equal(t, ir.StmtPut, s.Kind)
	assert.Equal(t, ir.OpShrU, s.Value.Op())
	shl := s.Value.Args()[0]
	assert.Equal(t, ir.OpShl, shl.Op())
}

func TestEmitBstrpickWZeroExtendsResult(t *testing.T) {
	c := newBitfieldContext()
	c.emitBstrpickW(4, 5, 15, 4)

	require.Len(t, c.SB.Stmts, 1)
	assert.Equal(t, ir.OpZeroExtend, c.SB.Stmts[0].Value.Op())
}
