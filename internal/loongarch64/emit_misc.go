package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/fcsr"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
)

// Miscellaneous system/control instructions (spec.md §4.8): break,
// syscall, rdtime*, cpucfg, and the GPR<->FCSR/FCC/FPR move family.

func (c *Context) emitBreak() {
	c.dres.WhatNext = StopHere
	c.dres.JumpKind = ir.JumpSigTRAP
}

func (c *Context) emitSyscall() {
	c.dres.WhatNext = StopHere
	c.dres.JumpKind = ir.JumpSysSyscall
}

// rdtimel.w/rdtimeh.w/rdtime.d: read a monotonic counter via an external
// helper, since no guest-state field backs it directly (spec.md §4.8).
func (c *Context) emitRdtimelW(rd, rj uint32) {
	c.rdtimeHelper(rd, rj, false, false)
}
func (c *Context) emitRdtimehW(rd, rj uint32) {
	c.rdtimeHelper(rd, rj, false, true)
}
func (c *Context) emitRdtimeD(rd, rj uint32) {
	c.rdtimeHelper(rd, rj, true, false)
}

func (c *Context) rdtimeHelper(rd, rj uint32, wide, high bool) {
	call := ir.CCall("rdtime", ir.TypeI64, nil, nil, nil, nil)
	tmp := c.SB.NewTemp(ir.TypeI64)
	c.SB.Assign(tmp, call)
	v := ir.RdTmp(tmp)
	if !wide {
		if high {
			v = ir.Unop(ir.OpTruncate, ir.TypeI32, ir.Binop(ir.OpShrU, ir.TypeI64, v, ir.ConstU64(ir.TypeI64, 32)))
		} else {
			v = ir.Unop(ir.OpTruncate, ir.TypeI32, v)
		}
		state.PutGPR(c.SB, rd, extendS(ir.TypeI32, v))
	} else {
		state.PutGPR(c.SB, rd, v)
	}
	// rj receives the same counter-ID tick value the original's
	// rdtime family writes alongside rd (spec.md §4.8).
	idCall := ir.CCall("rdtime_id", ir.TypeI64, nil, nil, nil, nil)
	idTmp := c.SB.NewTemp(ir.TypeI64)
	c.SB.Assign(idTmp, idCall)
	state.PutGPR(c.SB, rj, ir.RdTmp(idTmp))
}

// cpucfg: reads a feature-descriptor word selected by rj, via a helper
// since CPU configuration data lives outside the guest register file
// (spec.md §4.8).
func (c *Context) emitCpucfg(rd, rj uint32) {
	call := ir.CCall("cpucfg", ir.TypeI64, state.ReadGPR32(rj), nil, nil, nil)
	tmp := c.SB.NewTemp(ir.TypeI32)
	c.SB.Assign(tmp, ir.Unop(ir.OpTruncate, ir.TypeI32, call))
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, ir.RdTmp(tmp)))
}

// movgr2fr.{w,d}/movgr2frh.w/movfr2gr.{s,d}/movfrh2gr.s: GPR<->FPR moves.
func (c *Context) emitMovgr2frW(fd, rj uint32) {
	v := ir.Unop(ir.OpReinterpret, ir.TypeF32, state.ReadGPR32(rj))
	state.PutFPR32(c.SB, fd, v)
}
func (c *Context) emitMovgr2frD(fd, rj uint32) {
	v := ir.Unop(ir.OpReinterpret, ir.TypeF64, state.ReadGPR(rj))
	state.PutFPR64(c.SB, fd, v)
}
func (c *Context) emitMovgr2frhW(fd, rj uint32) {
	lo := ir.Unop(ir.OpReinterpret, ir.TypeI32, state.ReadFPR32(fd))
	loAsI64 := ir.Unop(ir.OpZeroExtend, ir.TypeI64, lo)
	hi := ir.Binop(ir.OpShl, ir.TypeI64, ir.Unop(ir.OpZeroExtend, ir.TypeI64, state.ReadGPR32(rj)), ir.ConstU64(ir.TypeI64, 32))
	whole := ir.Binop(ir.OpOr, ir.TypeI64, loAsI64, hi)
	state.PutFPR64(c.SB, fd, ir.Unop(ir.OpReinterpret, ir.TypeF64, whole))
}
func (c *Context) emitMovfr2grS(rd, fj uint32) {
	v := ir.Unop(ir.OpReinterpret, ir.TypeI32, state.ReadFPR32(fj))
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, v))
}
func (c *Context) emitMovfr2grD(rd, fj uint32) {
	v := ir.Unop(ir.OpReinterpret, ir.TypeI64, state.ReadFPR64(fj))
	state.PutGPR(c.SB, rd, v)
}
func (c *Context) emitMovfrh2grS(rd, fj uint32) {
	whole := ir.Unop(ir.OpReinterpret, ir.TypeI64, state.ReadFPR64(fj))
	hi := ir.Binop(ir.OpShrU, ir.TypeI64, whole, ir.ConstU64(ir.TypeI64, 32))
	v := ir.Unop(ir.OpTruncate, ir.TypeI32, hi)
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, v))
}

// movgr2fcsr/movfcsr2gr: GPR<->FCSR sub-register moves (spec.md §4.3).
func (c *Context) emitMovgr2fcsr(fcsrID, rj uint32) {
	v := ir.Unop(ir.OpTruncate, ir.TypeI32, state.ReadGPR(rj))
	fcsr.Put(c.SB, fcsrID, v)
}

func (c *Context) emitMovfcsr2gr(rd, fcsrID uint32) {
	v := fcsr.Get(fcsrID)
	state.PutGPR(c.SB, rd, ir.Unop(ir.OpZeroExtend, ir.TypeI64, v))
}

// movfr2cf/movcf2fr/movgr2cf/movcf2gr: FPR/GPR <-> floating condition-code
// register moves (spec.md §4.4).
func (c *Context) emitMovfr2cf(cd, fj uint32) {
	bit := ir.Binop(ir.OpAnd, ir.TypeI64, ir.Unop(ir.OpReinterpret, ir.TypeI64, state.ReadFPR64(fj)), ir.ConstU64(ir.TypeI64, 1))
	state.PutFCC(c.SB, cd, ir.Unop(ir.OpTruncate, ir.TypeI8, bit))
}

func (c *Context) emitMovcf2fr(fd, cj uint32) {
	v := ir.Unop(ir.OpZeroExtend, ir.TypeI64, state.ReadFCC(cj))
	state.PutFPR64(c.SB, fd, ir.Unop(ir.OpReinterpret, ir.TypeF64, v))
}

func (c *Context) emitMovgr2cf(cd, rj uint32) {
	bit := ir.Binop(ir.OpAnd, ir.TypeI64, state.ReadGPR(rj), ir.ConstU64(ir.TypeI64, 1))
	state.PutFCC(c.SB, cd, ir.Unop(ir.OpTruncate, ir.TypeI8, bit))
}

func (c *Context) emitMovcf2gr(rd, cj uint32) {
	v := ir.Unop(ir.OpZeroExtend, ir.TypeI64, state.ReadFCC(cj))
	state.PutGPR(c.SB, rd, v)
}

// crc.w.{b,h,w,d}.w / crcc.w.{b,h,w,d}.w: CRC checksum update, delegated to
// a named external helper per input width since the polynomial arithmetic
// has no natural IR-op expression (spec.md §4.8's non-goal "no bit-level
// CRC modelling in the IR layer itself").
func (c *Context) emitCrc(name string, rd, rj, rk uint32) {
	call := ir.CCall(name, ir.TypeI64, state.ReadGPR(rj), state.ReadGPR32(rk), nil, nil)
	tmp := c.SB.NewTemp(ir.TypeI32)
	c.SB.Assign(tmp, ir.Unop(ir.OpTruncate, ir.TypeI32, call))
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, ir.RdTmp(tmp)))
}
