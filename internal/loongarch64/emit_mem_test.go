package loongarch64

import (
	"testing"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemContext() *Context {
	return &Context{SB: ir.NewIRSB(), Arch: ArchInfo{HWCaps: HWCapFP}, dres: &DisResult{WhatNext: Continue}}
}

func TestEmitLdBSignExtendsThroughGPRWrite(t *testing.T) {
	c := newMemContext()
	c.emitLdB(4, 5, 0)

	require.Len(t, c.SB.Stmts, 1)
	s := c.SB.Stmts[0]
	assert.Equal(t, ir.StmtPut, s.Kind)
	assert.Equal(t, state.GPROffset(4), s.Offset)
	assert.Equal(t, ir.OpSignExtend, s.Value.Op())
}

func TestEmitLdBUZeroExtendsThroughGPRWrite(t *testing.T) {
	c := newMemContext()
	c.emitLdBU(4, 5, 0)

	require.Len(t, c.SB.Stmts, 1)
	s := c.SB.Stmts[0]
	assert.Equal(t, ir.StmtPut, s.Kind)
	assert.Equal(t, ir.OpZeroExtend, s.Value.Op())
}

func TestEmitStWTruncatesBeforeStore(t *testing.T) {
	c := newMemContext()
	c.emitStW(4, 5, 0)

	require.Len(t, c.SB.Stmts, 1)
	s := c.SB.Stmts[0]
	assert.Equal(t, ir.StmtStore, s.Kind)
	assert.Equal(t, ir.OpTruncate, s.Value.Op())
}

func TestEmitLdptrScalesSi14ByFour(t *testing.T) {
	c := newMemContext()
	c.emitLdptr(4, 5, 3, ir.TypeI64)

	require.Len(t, c.SB.Stmts, 1)
	assert.Equal(t, ir.StmtPut, c.SB.Stmts[0].Kind)
	assert.Equal(t, state.GPROffset(4), c.SB.Stmts[0].Offset)
}

func TestEmitPreldContributesNoStatements(t *testing.T) {
	c := newMemContext()
	c.emitPreld()
	c.emitPreldx()
	assert.Empty(t, c.SB.Stmts)
}

func TestEmitDbarAndIbarEmitDistinctFences(t *testing.T) {
	c := newMemContext()
	c.emitDbar()
	c.emitIbar()

	require.Len(t, c.SB.Stmts, 2)
	assert.Equal(t, ir.StmtFence, c.SB.Stmts[0].Kind)
	assert.Equal(t, ir.FenceMemory, c.SB.Stmts[0].Fence)
	assert.Equal(t, ir.StmtFence, c.SB.Stmts[1].Kind)
	assert.Equal(t, ir.FenceInstruction, c.SB.Stmts[1].Fence)
}

func TestEmitLdgtGuardsWithSigSYSBeforeTheLoad(t *testing.T) {
	c := newMemContext()
	c.emitLdgt(4, 5, 6, ir.TypeI64)

	require.Len(t, c.SB.Stmts, 2)
	assert.Equal(t, ir.StmtExit, c.SB.Stmts[0].Kind)
	assert.Equal(t, ir.JumpSigSYS, c.SB.Stmts[0].ExitJumpKnd)
	assert.Equal(t, ir.StmtPut, c.SB.Stmts[1].Kind)
}

func TestEmitAsrtleDAndAsrtgtDEmitOnlyAFault(t *testing.T) {
	c := newMemContext()
	c.emitAsrtleD(4, 5)
	c.emitAsrtgtD(4, 5)

	require.Len(t, c.SB.Stmts, 2)
	for _, s := range c.SB.Stmts {
		assert.Equal(t, ir.StmtExit, s.Kind)
		assert.Equal(t, ir.JumpSigSYS, s.ExitJumpKnd)
	}
}

func TestEmitFldSAndFstSRoundTripFPR32(t *testing.T) {
	c := newMemContext()
	c.emitFldS(1, 5, 0)
	c.emitFstS(1, 5, 0)

	require.Len(t, c.SB.Stmts, 2)
	assert.Equal(t, ir.StmtPut, c.SB.Stmts[0].Kind)
	assert.Equal(t, ir.StmtStore, c.SB.Stmts[1].Kind)
}
