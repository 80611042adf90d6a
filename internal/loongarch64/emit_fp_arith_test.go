package loongarch64

import (
	"testing"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitFaddSchedulesFCSRUpdateThenRoundedResult(t *testing.T) {
	c := newFPContext()
	c.emitFadd(true, 1, 2, 3)

	require.Len(t, c.SB.Stmts, 3, "calculate_FCSR (WrTmp+Put) then the rounded fadd")
	assert.Equal(t, ir.StmtWrTmp, c.SB.Stmts[0].Kind)
	assert.Equal(t, ir.StmtPut, c.SB.Stmts[1].Kind)
	assert.Equal(t, ir.StmtPut, c.SB.Stmts[2].Kind)
	assert.Equal(t, ir.OpFAdd, c.SB.Stmts[2].Value.Op())
}

func TestEmitFmaxIsUnroundedButStillUpdatesFCSR(t *testing.T) {
	c := newFPContext()
	c.emitFmax(false, 1, 2, 3)

	require.Len(t, c.SB.Stmts, 3)
	// PutFPR32 stores Reinterpret(ZeroExtend(Reinterpret(v))); unwrap to v.
	assert.Equal(t, ir.OpFMax, c.SB.Stmts[2].Value.Args()[0].Args()[0].Args()[0].Op())
}

func TestEmitFabsIsExactAndNeverTouchesFCSR(t *testing.T) {
	c := newFPContext()
	c.emitFabs(true, 1, 2)

	require.Len(t, c.SB.Stmts, 1)
	assert.Equal(t, ir.StmtPut, c.SB.Stmts[0].Kind)
	assert.Equal(t, ir.OpFAbs, c.SB.Stmts[0].Value.Op())
}

func TestEmitFsqrtUpdatesFCSRBeforeComputing(t *testing.T) {
	c := newFPContext()
	c.emitFsqrt(true, 1, 2)

	require.Len(t, c.SB.Stmts, 3)
	assert.Equal(t, ir.OpFSqrt, c.SB.Stmts[2].Value.Op())
}

func TestEmitFrecipBuildsOneOverOperand(t *testing.T) {
	c := newFPContext()
	c.emitFrecip(false, 1, 2)

	require.Len(t, c.SB.Stmts, 3)
	last := c.SB.Stmts[2]
	assert.Equal(t, ir.StmtPut, last.Kind)
	// PutFPR32 stores Reinterpret(ZeroExtend(Reinterpret(v))); unwrap to v.
	assert.Equal(t, ir.OpFDiv, last.Value.Args()[0].Args()[0].Args()[0].Op())
}

func TestEmitFclassUpdatesFCSRThenSchedulesHelper(t *testing.T) {
	c := newFPContext()
	c.emitFclass(true, 1, 2)

	require.Len(t, c.SB.Stmts, 4, "calculate_FCSR (WrTmp+Put), then helper call assign and fold into the dest register")
	assert.Equal(t, ir.StmtWrTmp, c.SB.Stmts[0].Kind)
	assert.Equal(t, ir.StmtPut, c.SB.Stmts[1].Kind)
	assert.Equal(t, ir.StmtWrTmp, c.SB.Stmts[2].Kind)
	assert.Equal(t, ir.StmtPut, c.SB.Stmts[3].Kind)
}

func TestEmitFmaddAndFnmaddNegateTheResultOnly(t *testing.T) {
	plain := newFPContext()
	plain.emitFmadd(true, 1, 2, 3, 4)
	require.Len(t, plain.SB.Stmts, 3)
	plainResult := plain.SB.Stmts[2].Value
	assert.Equal(t, ir.OpFMAdd, plainResult.Op())

	negated := newFPContext()
	negated.emitFnmadd(true, 1, 2, 3, 4)
	require.Len(t, negated.SB.Stmts, 3)
	negResult := negated.SB.Stmts[2].Value
	assert.Equal(t, ir.OpFNeg, negResult.Op())
	assert.Equal(t, ir.OpFMAdd, negResult.Args()[0].Op())
}

func TestEmitFmovIsAPlainCopyWithNoFCSRTouch(t *testing.T) {
	c := newFPContext()
	c.emitFmov(true, 1, 2)

	require.Len(t, c.SB.Stmts, 1)
	assert.Equal(t, ir.StmtPut, c.SB.Stmts[0].Kind)
}

func TestEmitFselBuildsITEOnFCCEquality(t *testing.T) {
	c := newFPContext()
	c.emitFsel(1, 2, 3, 0)

	require.Len(t, c.SB.Stmts, 1)
	assert.Equal(t, ir.OpITE, c.SB.Stmts[0].Value.Op())
}

func TestEmitFPBinopWithoutFPCapabilityStopsWithSigILL(t *testing.T) {
	c := &Context{SB: ir.NewIRSB(), dres: &DisResult{WhatNext: Continue}}
	c.emitFadd(true, 1, 2, 3)

	assert.Empty(t, c.SB.Stmts)
	assert.Equal(t, StopHere, c.dres.WhatNext)
	assert.Equal(t, ir.JumpSigILL, c.dres.JumpKind)
}
