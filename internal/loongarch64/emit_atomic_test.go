package loongarch64

import (
	"testing"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicMemopWithoutLAMCapabilityStopsWithSigILL(t *testing.T) {
	sb := ir.NewIRSB()
	dres := &DisResult{WhatNext: Continue}
	c := &Context{SB: sb, Arch: ArchInfo{HWCaps: 0}, dres: dres}

	c.emitAtomicMemop(amAdd, true, false, 4, 5, 6)

	assert.Empty(t, sb.Stmts, "no IR should be emitted when the feature is absent")
	assert.Equal(t, StopHere, dres.WhatNext)
	assert.Equal(t, ir.JumpSigILL, dres.JumpKind)
}

func TestAtomicMemopBuildsRetryLoopShape(t *testing.T) {
	sb := ir.NewIRSB()
	dres := &DisResult{WhatNext: Continue}
	c := &Context{SB: sb, Arch: ArchInfo{HWCaps: HWCapLAM}, dres: dres}

	c.emitAtomicMemop(amAdd, true, true, 4, 5, 6)

	require.Len(t, sb.Stmts, 6)
	assert.Equal(t, ir.StmtFence, sb.Stmts[0].Kind, "_db variant fences first")
	assert.Equal(t, ir.StmtExit, sb.Stmts[1].Kind, "misaligned address guard precedes the load")
	assert.Equal(t, int64(0), sb.Stmts[1].ExitDelta)
	assert.Equal(t, ir.JumpSigBUS, sb.Stmts[1].ExitJumpKnd)
	assert.Equal(t, ir.StmtWrTmp, sb.Stmts[2].Kind, "load-old")
	assert.Equal(t, ir.StmtCAS, sb.Stmts[3].Kind)
	assert.Equal(t, ir.StmtExit, sb.Stmts[4].Kind)
	assert.Equal(t, int64(0), sb.Stmts[4].ExitDelta, "CAS failure restarts this same instruction")
	assert.Equal(t, ir.JumpBoring, sb.Stmts[4].ExitJumpKnd)
	assert.Equal(t, ir.StmtPut, sb.Stmts[5].Kind, "result register receives the pre-CAS old value")
}

func TestAtomicMemopSkipsAlignmentGuardWithUnalignedAccessCapability(t *testing.T) {
	sb := ir.NewIRSB()
	dres := &DisResult{WhatNext: Continue}
	c := &Context{SB: sb, Arch: ArchInfo{HWCaps: HWCapLAM | HWCapUAL}, dres: dres}

	c.emitAtomicMemop(amAdd, true, false, 4, 5, 6)

	for _, s := range sb.Stmts {
		if s.Kind == ir.StmtExit {
			assert.NotEqual(t, ir.JumpSigBUS, s.ExitJumpKnd, "HWCapUAL means no alignment fault is emitted")
		}
	}
}

func TestAmComputeRejectsUnknownKind(t *testing.T) {
	assert.Panics(t, func() {
		amCompute(amKind(99), ir.TypeI64, ir.ConstU64(ir.TypeI64, 1), ir.ConstU64(ir.TypeI64, 2))
	})
}
