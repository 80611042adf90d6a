package loongarch64

import (
	"testing"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Conditional branches must compute their delta from the raw encoding at
// decode time, never by constructing then trying to fold an IR expression
// (Binop never produces a foldable constant) -- see common.go's branchDelta.
func TestConditionalBranchesEmitGuardedExitWithPlainDelta(t *testing.T) {
	sb := ir.NewIRSB()
	c := &Context{SB: sb, GuestPCCurr: 0x1000}

	assert.NotPanics(t, func() {
		c.emitBeqz(5, 4) // offs21=4 -> delta = 4<<2 = 16
	})

	require.NotEmpty(t, sb.Stmts)
	last := sb.Stmts[len(sb.Stmts)-1]
	require.Equal(t, ir.StmtExit, last.Kind)
	assert.Equal(t, int64(16), last.ExitDelta)
	assert.Equal(t, ir.JumpBoring, last.ExitJumpKnd)
}

func TestConditionalBranchDeltaSignExtends(t *testing.T) {
	sb := ir.NewIRSB()
	c := &Context{SB: sb, GuestPCCurr: 0x1000}

	// offs16 all-ones is -1 scaled by 4 = -4.
	c.emitBEq(1, 2, 0x1FFFF&0xFFFF)
	last := sb.Stmts[len(sb.Stmts)-1]
	assert.Equal(t, int64(-4), last.ExitDelta)
}

func TestUnconditionalBranchBuildsAddressExpression(t *testing.T) {
	sb := ir.NewIRSB()
	c := &Context{SB: sb, GuestPCCurr: 0x2000, dres: &DisResult{WhatNext: Continue}}
	c.emitB(8) // offs26=8 -> target = PC_curr + 32

	require.NotEmpty(t, sb.Stmts)
	last := sb.Stmts[len(sb.Stmts)-1]
	require.Equal(t, ir.StmtPut, last.Kind)
	assert.Equal(t, ir.OpAdd, last.Value.Op())
}

// spec.md §8 scenario 6: jirl r4, r4, 4 must read the pre-write value of r4
// into a temp before the link address overwrites r4, so the rd==rj alias
// still sees rj's original value when computing the jump target.
func TestEmitJirlSnapshotsSourceRegisterBeforeOverwritingItsAlias(t *testing.T) {
	sb := ir.NewIRSB()
	c := &Context{SB: sb, GuestPCCurr: 0x400, dres: &DisResult{WhatNext: Continue}}
	c.emitJirl(4, 4, 4)

	require.Len(t, sb.Stmts, 3)

	assign := sb.Stmts[0]
	require.Equal(t, ir.StmtWrTmp, assign.Kind)
	assert.Equal(t, state.GPROffset(4), assign.Expr.StateOffset(), "rj is read into a temp before rd is written")
	assert.Equal(t, ir.TypeI64, assign.Tmp.Type())

	link := sb.Stmts[1]
	require.Equal(t, ir.StmtPut, link.Kind)
	assert.Equal(t, state.GPROffset(4), link.Offset, "rd receives PC_curr+4")
	pcArg, ok := link.Value.Args()[0].ConstValue()
	require.True(t, ok)
	assert.Equal(t, c.GuestPCCurr, pcArg)
	deltaArg, ok := link.Value.Args()[1].ConstValue()
	require.True(t, ok)
	assert.Equal(t, uint64(4), deltaArg)

	pcWrite := sb.Stmts[2]
	require.Equal(t, ir.StmtPut, pcWrite.Kind)
	assert.Equal(t, state.PCOffset, pcWrite.Offset)
	target := pcWrite.Value
	require.Equal(t, ir.OpAdd, target.Op())
	// The jump target's base must come from the snapshot temp, not a fresh
	// Get(rj) -- a raw register read would carry rj's GPR state offset here,
	// which the snapshot temp (an exprRdTmp node) never does.
	assert.NotEqual(t, state.GPROffset(4), target.Args()[0].StateOffset(),
		"the jump target must read the snapshotted temp, not re-read rj (now overwritten)")

	assert.Equal(t, StopHere, c.dres.WhatNext)
	assert.Equal(t, ir.JumpBoring, c.dres.JumpKind)
}

func TestEmitBlWritesLinkRegisterBeforeJumping(t *testing.T) {
	sb := ir.NewIRSB()
	c := &Context{SB: sb, GuestPCCurr: 0x2000, dres: &DisResult{WhatNext: Continue}}
	c.emitBl(0)

	require.Len(t, sb.Stmts, 2)
	link := sb.Stmts[0]
	assert.Equal(t, ir.StmtPut, link.Kind)
	assert.Equal(t, state.GPROffset(1), link.Offset, "bl writes the return address into r1")
	pcWrite := sb.Stmts[1]
	assert.Equal(t, state.PCOffset, pcWrite.Offset)
}
