package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/fields"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
)

// extendS sign-extends a value of type from to TypeI64; a wider v is
// truncated to from first.
func extendS(from ir.Type, v *ir.Expr) *ir.Expr {
	if v.Type() != from {
		v = ir.Unop(ir.OpTruncate, from, v)
	}
	return ir.Unop(ir.OpSignExtend, ir.TypeI64, v)
}

// signExtImm64 builds a 64-bit sign-extended immediate constant from a raw
// bit-pattern of the given width, the IR-construction analog of the
// original's extend64(imm, size).
func signExtImm64(imm uint32, size uint) *ir.Expr {
	return ir.ConstU64(ir.TypeI64, uint64(fields.SignExtend64(uint64(imm), size)))
}

// branchDelta computes sign_extend(offs << shift, rawBits+shift) as a plain
// Go int64: every conditional branch's displacement is known at decode
// time, so this is arithmetic on the raw encoding rather than an IR
// expression -- IRSB.Exit takes its target as a delta, not an address
// expression, per spec.md §4.6's IRSB.Exit contract.
func branchDelta(offs uint32, rawBits, shift uint) int64 {
	scaled := offs << shift
	return fields.SignExtend64(uint64(scaled), rawBits+shift)
}

// branchTarget builds guest_PC_curr + sign_extend(offs << shift, size+shift)
// as an IR expression, for the unconditional transfers (b/bl/jirl) whose
// destination state.PutPC needs as a value, not a delta.
func (c *Context) branchTarget(offs uint32, rawBits, shift uint) *ir.Expr {
	delta := signExtImm64(offs<<shift, rawBits+shift)
	return ir.Binop(ir.OpAdd, ir.TypeI64, c.pcCurrConst(), delta)
}

// genCondExit appends a guarded exit: cond true restarts decoding at
// PC_curr+delta, cond false falls through to the next instruction. Every
// beq/bne/blt/.../beqz/bnez/bceqz/bcnez encoding supplies a delta computed
// directly from its own offset field via branchDelta, since the offset is
// always known at decode time.
func (c *Context) genCondExit(cond *ir.Expr, delta int64) {
	c.SB.Exit(cond, delta, ir.JumpBoring)
}

// jump performs the unconditional control-flow transfers (b, bl, jirl):
// writes PC and marks the block as ending here.
func (c *Context) jump(target *ir.Expr) {
	state.PutPC(c.SB, target)
	c.dres.WhatNext = StopHere
	c.dres.JumpKind = ir.JumpBoring
}

// checkFeature stops decoding with SigILL if cap is absent from Arch.HWCaps,
// and reports whether the caller should continue (spec.md §4.2 step 3).
func (c *Context) checkFeature(cap HWCaps) bool {
	if c.Arch.HWCaps.Has(cap) {
		return true
	}
	c.stopSigILL()
	return false
}
