package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
)

// Load/store family (spec.md §4.2): si12-offset and register-indexed
// forms, the sign/zero-extending narrow loads, ldptr/stptr (si14<<2-scaled
// doubleword/word pointers), preld (no-op hint), and the bounded
// ldgt/ldle/stgt/stle family that SigSYS on a bounds violation instead of
// SigBUS on misalignment.

func addrSi12(rj uint32, si12 uint32) *ir.Expr {
	return ir.Binop(ir.OpAdd, ir.TypeI64, state.ReadGPR(rj), signExtImm64(si12, 12))
}

func addrReg(rj, rk uint32) *ir.Expr {
	return ir.Binop(ir.OpAdd, ir.TypeI64, state.ReadGPR(rj), state.ReadGPR(rk))
}

// emitLoad loads at addr with the given memory type, sign- or zero-
// extending to 64 bits per signed, and writes rd.
func (c *Context) emitLoad(rd uint32, addr *ir.Expr, t ir.Type, signed bool) {
	v := ir.Load(t, addr)
	if signed {
		state.PutGPR(c.SB, rd, extendS(t, v))
	} else {
		state.PutGPR(c.SB, rd, ir.Unop(ir.OpZeroExtend, ir.TypeI64, v))
	}
}

// emitStore narrows rd's value to t and stores it at addr.
func (c *Context) emitStore(rd uint32, addr *ir.Expr, t ir.Type) {
	v := ir.Unop(ir.OpTruncate, t, state.ReadGPR(rd))
	c.SB.Store(addr, v)
}

func (c *Context) emitLdB(rd, rj, si12 uint32)  { c.emitLoad(rd, addrSi12(rj, si12), ir.TypeI8, true) }
func (c *Context) emitLdH(rd, rj, si12 uint32)  { c.emitLoad(rd, addrSi12(rj, si12), ir.TypeI16, true) }
func (c *Context) emitLdW(rd, rj, si12 uint32)  { c.emitLoad(rd, addrSi12(rj, si12), ir.TypeI32, true) }
func (c *Context) emitLdD(rd, rj, si12 uint32)  { c.emitLoad(rd, addrSi12(rj, si12), ir.TypeI64, true) }
func (c *Context) emitLdBU(rd, rj, si12 uint32) { c.emitLoad(rd, addrSi12(rj, si12), ir.TypeI8, false) }
func (c *Context) emitLdHU(rd, rj, si12 uint32) {
	c.emitLoad(rd, addrSi12(rj, si12), ir.TypeI16, false)
}
func (c *Context) emitLdWU(rd, rj, si12 uint32) {
	c.emitLoad(rd, addrSi12(rj, si12), ir.TypeI32, false)
}

func (c *Context) emitStB(rd, rj, si12 uint32) { c.emitStore(rd, addrSi12(rj, si12), ir.TypeI8) }
func (c *Context) emitStH(rd, rj, si12 uint32) { c.emitStore(rd, addrSi12(rj, si12), ir.TypeI16) }
func (c *Context) emitStW(rd, rj, si12 uint32) { c.emitStore(rd, addrSi12(rj, si12), ir.TypeI32) }
func (c *Context) emitStD(rd, rj, si12 uint32) { c.emitStore(rd, addrSi12(rj, si12), ir.TypeI64) }

func (c *Context) emitLdxB(rd, rj, rk uint32)  { c.emitLoad(rd, addrReg(rj, rk), ir.TypeI8, true) }
func (c *Context) emitLdxH(rd, rj, rk uint32)  { c.emitLoad(rd, addrReg(rj, rk), ir.TypeI16, true) }
func (c *Context) emitLdxW(rd, rj, rk uint32)  { c.emitLoad(rd, addrReg(rj, rk), ir.TypeI32, true) }
func (c *Context) emitLdxD(rd, rj, rk uint32)  { c.emitLoad(rd, addrReg(rj, rk), ir.TypeI64, true) }
func (c *Context) emitLdxBU(rd, rj, rk uint32) { c.emitLoad(rd, addrReg(rj, rk), ir.TypeI8, false) }
func (c *Context) emitLdxHU(rd, rj, rk uint32) { c.emitLoad(rd, addrReg(rj, rk), ir.TypeI16, false) }
func (c *Context) emitLdxWU(rd, rj, rk uint32) { c.emitLoad(rd, addrReg(rj, rk), ir.TypeI32, false) }

func (c *Context) emitStxB(rd, rj, rk uint32) { c.emitStore(rd, addrReg(rj, rk), ir.TypeI8) }
func (c *Context) emitStxH(rd, rj, rk uint32) { c.emitStore(rd, addrReg(rj, rk), ir.TypeI16) }
func (c *Context) emitStxW(rd, rj, rk uint32) { c.emitStore(rd, addrReg(rj, rk), ir.TypeI32) }
func (c *Context) emitStxD(rd, rj, rk uint32) { c.emitStore(rd, addrReg(rj, rk), ir.TypeI64) }

func (c *Context) emitFldS(fd, rj, si12 uint32) {
	state.PutFPR32(c.SB, fd, ir.Load(ir.TypeF32, addrSi12(rj, si12)))
}
func (c *Context) emitFldD(fd, rj, si12 uint32) {
	state.PutFPR64(c.SB, fd, ir.Load(ir.TypeF64, addrSi12(rj, si12)))
}
func (c *Context) emitFstS(fd, rj, si12 uint32) { c.SB.Store(addrSi12(rj, si12), state.ReadFPR32(fd)) }
func (c *Context) emitFstD(fd, rj, si12 uint32) { c.SB.Store(addrSi12(rj, si12), state.ReadFPR64(fd)) }

func (c *Context) emitFldxS(fd, rj, rk uint32) {
	state.PutFPR32(c.SB, fd, ir.Load(ir.TypeF32, addrReg(rj, rk)))
}
func (c *Context) emitFldxD(fd, rj, rk uint32) {
	state.PutFPR64(c.SB, fd, ir.Load(ir.TypeF64, addrReg(rj, rk)))
}
func (c *Context) emitFstxS(fd, rj, rk uint32) { c.SB.Store(addrReg(rj, rk), state.ReadFPR32(fd)) }
func (c *Context) emitFstxD(fd, rj, rk uint32) { c.SB.Store(addrReg(rj, rk), state.ReadFPR64(fd)) }

// emitLdptr/Stptr: si14-field pointer-relative loads/stores, scaled by 4
// (spec.md §4.2); the field is in units of 4 bytes, unlike si12.
func (c *Context) emitLdptr(rd, rj uint32, si14 uint32, t ir.Type) {
	addr := ir.Binop(ir.OpAdd, ir.TypeI64, state.ReadGPR(rj), signExtImm64(si14<<2, 16))
	c.emitLoad(rd, addr, t, true)
}

func (c *Context) emitStptr(rd, rj uint32, si14 uint32, t ir.Type) {
	addr := ir.Binop(ir.OpAdd, ir.TypeI64, state.ReadGPR(rj), signExtImm64(si14<<2, 16))
	c.emitStore(rd, addr, t)
}

// emitPreld/Preldx are pure scheduling hints with no architectural effect
// on guest state (spec.md §4.2's non-goal "no cache-hint side effects");
// decode succeeds but contributes no statements.
func (c *Context) emitPreld()  {}
func (c *Context) emitPreldx() {}

// emitDbar/Ibar: memory and instruction fences.
func (c *Context) emitDbar() { c.SB.Fence(ir.FenceMemory) }
func (c *Context) emitIbar() { c.SB.Fence(ir.FenceInstruction) }

// Bounded load/store family: ldgt/ldle/stgt/stle/fldgt/fldle/fstgt/fstle
// compare rj against rk (as an upper or lower bound) and raise SigSYS when
// the bound is violated, instead of performing the access (spec.md §4.2's
// "bounded memory ops" supplement, modelled after asrtgt.d/asrtle.d's
// guard-then-fault shape).
func (c *Context) emitBoundedAccess(greater bool, rj, rk uint32, body func()) {
	var cond *ir.Expr
	if greater {
		cond = ir.Binop(ir.OpCmpLES, ir.TypeI1, state.ReadGPR(rj), state.ReadGPR(rk))
	} else {
		cond = ir.Binop(ir.OpCmpLTS, ir.TypeI1, state.ReadGPR(rk), state.ReadGPR(rj))
	}
	c.genSigSYS(cond)
	body()
}

func (c *Context) emitLdgt(rd, rj, rk uint32, t ir.Type) {
	c.emitBoundedAccess(true, rj, rk, func() { c.emitLoad(rd, addrReg(rj, rk), t, true) })
}
func (c *Context) emitLdle(rd, rj, rk uint32, t ir.Type) {
	c.emitBoundedAccess(false, rj, rk, func() { c.emitLoad(rd, addrReg(rj, rk), t, true) })
}
func (c *Context) emitStgt(rd, rj, rk uint32, t ir.Type) {
	c.emitBoundedAccess(true, rj, rk, func() { c.emitStore(rd, addrReg(rj, rk), t) })
}
func (c *Context) emitStle(rd, rj, rk uint32, t ir.Type) {
	c.emitBoundedAccess(false, rj, rk, func() { c.emitStore(rd, addrReg(rj, rk), t) })
}

func (c *Context) emitFldgtS(fd, rj, rk uint32) {
	c.emitBoundedAccess(true, rj, rk, func() {
		state.PutFPR32(c.SB, fd, ir.Load(ir.TypeF32, addrReg(rj, rk)))
	})
}
func (c *Context) emitFldleS(fd, rj, rk uint32) {
	c.emitBoundedAccess(false, rj, rk, func() {
		state.PutFPR32(c.SB, fd, ir.Load(ir.TypeF32, addrReg(rj, rk)))
	})
}
func (c *Context) emitFldgtD(fd, rj, rk uint32) {
	c.emitBoundedAccess(true, rj, rk, func() {
		state.PutFPR64(c.SB, fd, ir.Load(ir.TypeF64, addrReg(rj, rk)))
	})
}
func (c *Context) emitFldleD(fd, rj, rk uint32) {
	c.emitBoundedAccess(false, rj, rk, func() {
		state.PutFPR64(c.SB, fd, ir.Load(ir.TypeF64, addrReg(rj, rk)))
	})
}
func (c *Context) emitFstgtS(fd, rj, rk uint32) {
	c.emitBoundedAccess(true, rj, rk, func() { c.SB.Store(addrReg(rj, rk), state.ReadFPR32(fd)) })
}
func (c *Context) emitFstleS(fd, rj, rk uint32) {
	c.emitBoundedAccess(false, rj, rk, func() { c.SB.Store(addrReg(rj, rk), state.ReadFPR32(fd)) })
}
func (c *Context) emitFstgtD(fd, rj, rk uint32) {
	c.emitBoundedAccess(true, rj, rk, func() { c.SB.Store(addrReg(rj, rk), state.ReadFPR64(fd)) })
}
func (c *Context) emitFstleD(fd, rj, rk uint32) {
	c.emitBoundedAccess(false, rj, rk, func() { c.SB.Store(addrReg(rj, rk), state.ReadFPR64(fd)) })
}

// emitAsrtle/Asrtgt.d: pure assertion faults on rj/rk with no memory access
// (spec.md §4.2).
func (c *Context) emitAsrtleD(rj, rk uint32) {
	// Fault when rj > rk, i.e. when rk < rj.
	cond := ir.Binop(ir.OpCmpLTS, ir.TypeI1, state.ReadGPR(rk), state.ReadGPR(rj))
	c.genSigSYS(cond)
}

func (c *Context) emitAsrtgtD(rj, rk uint32) {
	// Fault when rj <= rk.
	cond := ir.Binop(ir.OpCmpLES, ir.TypeI1, state.ReadGPR(rj), state.ReadGPR(rk))
	c.genSigSYS(cond)
}
