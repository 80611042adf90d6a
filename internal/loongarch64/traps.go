package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
)

// checkAlign builds the "address has any of the low bits of mask set"
// condition used by both the unaligned-access fault and the LL/SC alignment
// requirement (spec.md §4.2, §4.6): check_align(addr, mask) in the original.
func checkAlign(addr *ir.Expr, mask uint64) *ir.Expr {
	masked := ir.Binop(ir.OpAnd, ir.TypeI64, addr, ir.ConstU64(ir.TypeI64, mask))
	return ir.Binop(ir.OpCmpNE, ir.TypeI1, masked, ir.ConstU64(ir.TypeI64, 0))
}

// genSigBUS emits a guarded exit to SigBUS if cond holds, for misaligned
// memory access when the unaligned-access HW cap is absent (spec.md §4,
// "Fault/trap emitters").
func (c *Context) genSigBUS(cond *ir.Expr) {
	c.SB.Exit(cond, 0, ir.JumpSigBUS)
}

// genSigSYS emits a guarded exit to SigSYS if cond holds: used by the
// bounded ldgt/ldle/stgt/stle family and by asrtle.d/asrtgt.d.
func (c *Context) genSigSYS(cond *ir.Expr) {
	c.SB.Exit(cond, 0, ir.JumpSigSYS)
}

// checkAlignedOrSigBUS emits the alignment fault for a load/store at addr
// with the given natural alignment (3 for word, 7 for doubleword, etc.),
// unless the unaligned-access capability is present, in which case no IR
// is emitted at all (spec.md §4.2).
func (c *Context) checkAlignedOrSigBUS(addr *ir.Expr, mask uint64) {
	if c.Arch.HWCaps.Has(HWCapUAL) {
		return
	}
	c.genSigBUS(checkAlign(addr, mask))
}

// stopSigILL sets the result to "stop here with SigILL" without emitting
// any semantics, used when a feature-gated instruction's HW cap bit is
// absent (spec.md §4.2 step 3, §7 category 2 "Feature-absent").
func (c *Context) stopSigILL() {
	c.dres.WhatNext = StopHere
	c.dres.JumpKind = ir.JumpSigILL
}
