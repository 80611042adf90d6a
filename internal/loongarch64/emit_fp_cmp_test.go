package loongarch64

import (
	"testing"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFcmpPredicateTableHas22Entries(t *testing.T) {
	assert.Len(t, fcmpPredicates, 22)
}

func TestEmitFcmpByCondRejectsUnassignedCode(t *testing.T) {
	c := newFPContext()
	ok := c.emitFcmpByCond(0x9, false, 0, 1, 2)
	assert.False(t, ok)
	assert.Empty(t, c.SB.Stmts)
}

func TestEmitFcmpByCondWritesFCC(t *testing.T) {
	c := newFPContext()
	ok := c.emitFcmpByCond(0x2, true, 3, 1, 2) // ceq.d
	require.True(t, ok)
	require.NotEmpty(t, c.SB.Stmts)
	last := c.SB.Stmts[len(c.SB.Stmts)-1]
	assert.Equal(t, ir.StmtPut, last.Kind)
}

func TestEmitFcmpWithoutFPCapabilityStops(t *testing.T) {
	c := &Context{SB: ir.NewIRSB(), dres: &DisResult{WhatNext: Continue}}
	ok := c.emitFcmpByCond(0x2, true, 3, 1, 2)
	require.True(t, ok, "the condition code itself is still recognized")
	assert.Empty(t, c.SB.Stmts)
	assert.Equal(t, StopHere, c.dres.WhatNext)
	assert.Equal(t, ir.JumpSigILL, c.dres.JumpKind)
}
