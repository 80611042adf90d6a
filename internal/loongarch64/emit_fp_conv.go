package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/fcsr"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
)

// Conversion family (spec.md §4.5): fcvt.{s.d,d.s} (float widening/
// narrowing), ftint*/ffint* (float<->integer with saturation), and frint
// (round-to-integer-valued-float). Every conversion computes its rounded
// result, calls calculate_FCSR to latch Invalid/Overflow, and -- for the
// integer-producing ftint* family only -- selects a saturation constant
// over the computed result when the helper flagged a fault, per the
// ITE(isInvalidOrOverflow, saturate, computed) shape spec.md §4.5 mandates.

func (c *Context) emitFcvtSD(fd, fj uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	a := state.ReadFPR64(fj)
	fcsr.CalculateAndUpdate(c.SB, fcsr.FCVT_D_S, a)
	state.PutFPR32(c.SB, fd, ir.Binop(ir.OpF64toF32, ir.TypeF32, fcsr.RoundingMode(), a))
}

func (c *Context) emitFcvtDS(fd, fj uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	a := state.ReadFPR32(fj)
	fcsr.CalculateAndUpdate(c.SB, fcsr.FCVT_S_D, a)
	state.PutFPR64(c.SB, fd, ir.Unop(ir.OpF32toF64, ir.TypeF64, a))
}

// ftintConv describes one ftint*.{w,l}.{s,d} variant: the conversion op,
// its FCSR tag, the explicit rounding mode to use (nil selects the current
// architectural mode via fcsr.RoundingMode for the bare "ftint" forms),
// and the saturation constant for the destination integer width.
type ftintConv struct {
	op   ir.Op
	tag  fcsr.FPOpKind
	rm   func() *ir.Expr
	satW uint64 // used when destination is 32-bit
	wide bool   // destination is 64-bit (the ".l" forms)
	satL uint64
}

func (c *Context) emitFtint(conv ftintConv, srcDouble bool, fd, fj uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	var a *ir.Expr
	if srcDouble {
		a = state.ReadFPR64(fj)
	} else {
		a = state.ReadFPR32(fj)
	}
	fcsr.CalculateAndUpdate(c.SB, conv.tag, a)
	rm := conv.rm
	if rm == nil {
		rm = fcsr.RoundingMode
	}
	var computed *ir.Expr
	var sat uint64
	var destT ir.Type
	if conv.wide {
		computed = ir.Binop(conv.op, ir.TypeI64, rm(), a)
		sat = conv.satL
		destT = ir.TypeI64
	} else {
		computed = ir.Binop(conv.op, ir.TypeI32, rm(), a)
		sat = conv.satW
		destT = ir.TypeI32
	}
	result := ir.ITE(fcsr.IsInvalidOrOverflow(), ir.ConstU64(destT, sat), computed)
	// Result lands back in an FP register reinterpreted as an integer
	// bit-pattern, per spec.md §4.5 ("the destination is still an FPR").
	if conv.wide {
		state.PutFPR64(c.SB, fd, ir.Unop(ir.OpReinterpret, ir.TypeF64, result))
	} else {
		asWide := ir.Unop(ir.OpZeroExtend, ir.TypeI64, result)
		state.PutFPR32(c.SB, fd, ir.Unop(ir.OpReinterpret, ir.TypeF32, ir.Unop(ir.OpTruncate, ir.TypeI32, asWide)))
	}
}

const (
	satI32Max = 0x7fffffff
	satI64Max = 0x7fffffffffffffff
)

func (c *Context) emitFtintrmWS(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF32toI32S, tag: fcsr.FTINTRM_W_S, rm: fcsr.RoundDown, satW: satI32Max}, false, fd, fj)
}
func (c *Context) emitFtintrmWD(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF64toI32S, tag: fcsr.FTINTRM_W_D, rm: fcsr.RoundDown, satW: satI32Max}, true, fd, fj)
}
func (c *Context) emitFtintrmLS(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF32toI64S, tag: fcsr.FTINTRM_L_S, rm: fcsr.RoundDown, satL: satI64Max, wide: true}, false, fd, fj)
}
func (c *Context) emitFtintrmLD(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF64toI64S, tag: fcsr.FTINTRM_L_D, rm: fcsr.RoundDown, satL: satI64Max, wide: true}, true, fd, fj)
}

func (c *Context) emitFtintrpWS(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF32toI32S, tag: fcsr.FTINTRP_W_S, rm: fcsr.RoundUp, satW: satI32Max}, false, fd, fj)
}
func (c *Context) emitFtintrpWD(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF64toI32S, tag: fcsr.FTINTRP_W_D, rm: fcsr.RoundUp, satW: satI32Max}, true, fd, fj)
}
func (c *Context) emitFtintrpLS(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF32toI64S, tag: fcsr.FTINTRP_L_S, rm: fcsr.RoundUp, satL: satI64Max, wide: true}, false, fd, fj)
}
func (c *Context) emitFtintrpLD(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF64toI64S, tag: fcsr.FTINTRP_L_D, rm: fcsr.RoundUp, satL: satI64Max, wide: true}, true, fd, fj)
}

func (c *Context) emitFtintrzWS(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF32toI32S, tag: fcsr.FTINTRZ_W_S, rm: fcsr.RoundToZero, satW: satI32Max}, false, fd, fj)
}
func (c *Context) emitFtintrzWD(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF64toI32S, tag: fcsr.FTINTRZ_W_D, rm: fcsr.RoundToZero, satW: satI32Max}, true, fd, fj)
}
func (c *Context) emitFtintrzLS(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF32toI64S, tag: fcsr.FTINTRZ_L_S, rm: fcsr.RoundToZero, satL: satI64Max, wide: true}, false, fd, fj)
}
func (c *Context) emitFtintrzLD(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF64toI64S, tag: fcsr.FTINTRZ_L_D, rm: fcsr.RoundToZero, satL: satI64Max, wide: true}, true, fd, fj)
}

func (c *Context) emitFtintrneWS(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF32toI32S, tag: fcsr.FTINTRNE_W_S, rm: fcsr.RoundNearest, satW: satI32Max}, false, fd, fj)
}
func (c *Context) emitFtintrneWD(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF64toI32S, tag: fcsr.FTINTRNE_W_D, rm: fcsr.RoundNearest, satW: satI32Max}, true, fd, fj)
}
func (c *Context) emitFtintrneLS(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF32toI64S, tag: fcsr.FTINTRNE_L_S, rm: fcsr.RoundNearest, satL: satI64Max, wide: true}, false, fd, fj)
}
func (c *Context) emitFtintrneLD(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF64toI64S, tag: fcsr.FTINTRNE_L_D, rm: fcsr.RoundNearest, satL: satI64Max, wide: true}, true, fd, fj)
}

// Bare ftint.{w,l}.{s,d}: uses the architectural rounding mode, not a fixed
// one (rm left nil, resolved via fcsr.RoundingMode in emitFtint).
func (c *Context) emitFtintWS(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF32toI32S, tag: fcsr.FTINT_W_S, satW: satI32Max}, false, fd, fj)
}
func (c *Context) emitFtintWD(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF64toI32S, tag: fcsr.FTINT_W_D, satW: satI32Max}, true, fd, fj)
}
func (c *Context) emitFtintLS(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF32toI64S, tag: fcsr.FTINT_L_S, satL: satI64Max, wide: true}, false, fd, fj)
}
func (c *Context) emitFtintLD(fd, fj uint32) {
	c.emitFtint(ftintConv{op: ir.OpF64toI64S, tag: fcsr.FTINT_L_D, satL: satI64Max, wide: true}, true, fd, fj)
}

// ffint.{s,d}.{w,l}: integer -> float, no saturation needed (spec.md §4.5).
func (c *Context) emitFfint(op ir.Op, tag fcsr.FPOpKind, resultDouble bool, fd, fj uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	srcAsI64 := ir.Unop(ir.OpReinterpret, ir.TypeI64, state.ReadFPR64(fj))
	fcsr.CalculateAndUpdate(c.SB, tag, state.ReadFPR64(fj))
	rm := fcsr.RoundingMode()
	if resultDouble {
		state.PutFPR64(c.SB, fd, ir.Binop(op, ir.TypeF64, rm, srcAsI64))
	} else {
		state.PutFPR32(c.SB, fd, ir.Binop(op, ir.TypeF32, rm, srcAsI64))
	}
}

func (c *Context) emitFfintSW(fd, fj uint32) { c.emitFfint(ir.OpI32toF32S, fcsr.FFINT_S_W, false, fd, fj) }
func (c *Context) emitFfintSL(fd, fj uint32) { c.emitFfint(ir.OpI64toF32S, fcsr.FFINT_S_L, false, fd, fj) }
func (c *Context) emitFfintDW(fd, fj uint32) { c.emitFfint(ir.OpI32toF64S, fcsr.FFINT_D_W, true, fd, fj) }
func (c *Context) emitFfintDL(fd, fj uint32) { c.emitFfint(ir.OpI64toF64S, fcsr.FFINT_D_L, true, fd, fj) }

// frint.{s,d}: round to an integer-valued float, keeping the result's
// width -- the one conversion in this family whose destination is still
// the source's own float type.
func (c *Context) emitFrint(isDouble bool, fd, fj uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	if isDouble {
		a := state.ReadFPR64(fj)
		fcsr.CalculateAndUpdate(c.SB, fcsr.FRINT_D, a)
		asI64 := ir.Binop(ir.OpF64toI64S, ir.TypeI64, fcsr.RoundingMode(), a)
		state.PutFPR64(c.SB, fd, ir.Binop(ir.OpI64toF64S, ir.TypeF64, fcsr.RoundingMode(), asI64))
		return
	}
	a := state.ReadFPR32(fj)
	fcsr.CalculateAndUpdate(c.SB, fcsr.FRINT_S, a)
	asI32 := ir.Binop(ir.OpF32toI32S, ir.TypeI32, fcsr.RoundingMode(), a)
	state.PutFPR32(c.SB, fd, ir.Binop(ir.OpI32toF32S, ir.TypeF32, fcsr.RoundingMode(), asI32))
}
