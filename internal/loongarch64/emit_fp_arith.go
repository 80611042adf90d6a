package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/fcsr"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
)

// Scalar floating-point arithmetic (spec.md §4.4): every rounded op first
// schedules a calculate_FCSR helper call with the operation's tag and
// source operands, then emits the rounded result expression using the
// architectural rounding mode read back from FCSR3 -- the two-step
// "update flags, then compute" order the original's gen_fadd_s etc.
// follow verbatim.

type fpBinop struct {
	op      ir.Op
	tagS    fcsr.FPOpKind
	tagD    fcsr.FPOpKind
	rounded bool
}

func (c *Context) emitFPBinop(b fpBinop, isDouble bool, fd, fj, fk uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	t := ir.TypeF32
	read, put := state.ReadFPR32, state.PutFPR32
	tag := b.tagS
	if isDouble {
		t = ir.TypeF64
		read, put = state.ReadFPR64, state.PutFPR64
		tag = b.tagD
	}
	a, k := read(fj), read(fk)
	fcsr.CalculateAndUpdate(c.SB, tag, a, k)
	if b.rounded {
		rm := fcsr.RoundingMode()
		put(c.SB, fd, ir.Triop(b.op, t, rm, a, k))
	} else {
		put(c.SB, fd, ir.Binop(b.op, t, a, k))
	}
}

func (c *Context) emitFadd(isDouble bool, fd, fj, fk uint32) {
	c.emitFPBinop(fpBinop{ir.OpFAdd, fcsr.FADD_S, fcsr.FADD_D, true}, isDouble, fd, fj, fk)
}
func (c *Context) emitFsub(isDouble bool, fd, fj, fk uint32) {
	c.emitFPBinop(fpBinop{ir.OpFSub, fcsr.FSUB_S, fcsr.FSUB_D, true}, isDouble, fd, fj, fk)
}
func (c *Context) emitFmul(isDouble bool, fd, fj, fk uint32) {
	c.emitFPBinop(fpBinop{ir.OpFMul, fcsr.FMUL_S, fcsr.FMUL_D, true}, isDouble, fd, fj, fk)
}
func (c *Context) emitFdiv(isDouble bool, fd, fj, fk uint32) {
	c.emitFPBinop(fpBinop{ir.OpFDiv, fcsr.FDIV_S, fcsr.FDIV_D, true}, isDouble, fd, fj, fk)
}
func (c *Context) emitFmax(isDouble bool, fd, fj, fk uint32) {
	c.emitFPBinop(fpBinop{ir.OpFMax, fcsr.FMAX_S, fcsr.FMAX_D, false}, isDouble, fd, fj, fk)
}
func (c *Context) emitFmin(isDouble bool, fd, fj, fk uint32) {
	c.emitFPBinop(fpBinop{ir.OpFMin, fcsr.FMIN_S, fcsr.FMIN_D, false}, isDouble, fd, fj, fk)
}
func (c *Context) emitFmaxa(isDouble bool, fd, fj, fk uint32) {
	c.emitFPBinop(fpBinop{ir.OpFMaxA, fcsr.FMAXA_S, fcsr.FMAXA_D, false}, isDouble, fd, fj, fk)
}
func (c *Context) emitFmina(isDouble bool, fd, fj, fk uint32) {
	c.emitFPBinop(fpBinop{ir.OpFMinA, fcsr.FMINA_S, fcsr.FMINA_D, false}, isDouble, fd, fj, fk)
}
func (c *Context) emitFscaleb(isDouble bool, fd, fj, fk uint32) {
	c.emitFPBinop(fpBinop{ir.OpFScaleB, fcsr.FSCALEB_S, fcsr.FSCALEB_D, false}, isDouble, fd, fj, fk)
}
func (c *Context) emitFcopysign(isDouble bool, fd, fj, fk uint32) {
	c.emitFPBinop(fpBinop{ir.OpFCopySign, fcsr.FCOPYSIGN_S, fcsr.FCOPYSIGN_D, false}, isDouble, fd, fj, fk)
}

// Unary FP ops: fabs/fneg are exact (no FCSR update, per spec.md §4.4's
// "sign and magnitude manipulation never signal" note); flogb/fsqrt/
// frecip/frsqrt/fclass all route through calculate_FCSR first.

func (c *Context) emitFabs(isDouble bool, fd, fj uint32) {
	c.emitFPUnopExact(ir.OpFAbs, isDouble, fd, fj)
}
func (c *Context) emitFneg(isDouble bool, fd, fj uint32) {
	c.emitFPUnopExact(ir.OpFNeg, isDouble, fd, fj)
}

func (c *Context) emitFPUnopExact(op ir.Op, isDouble bool, fd, fj uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	if isDouble {
		state.PutFPR64(c.SB, fd, ir.Unop(op, ir.TypeF64, state.ReadFPR64(fj)))
	} else {
		state.PutFPR32(c.SB, fd, ir.Unop(op, ir.TypeF32, state.ReadFPR32(fj)))
	}
}

type fpUnop struct {
	op      ir.Op
	tagS    fcsr.FPOpKind
	tagD    fcsr.FPOpKind
	rounded bool
}

func (c *Context) emitFPUnopFCSR(u fpUnop, isDouble bool, fd, fj uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	t := ir.TypeF32
	read, put := state.ReadFPR32, state.PutFPR32
	tag := u.tagS
	if isDouble {
		t = ir.TypeF64
		read, put = state.ReadFPR64, state.PutFPR64
		tag = u.tagD
	}
	a := read(fj)
	fcsr.CalculateAndUpdate(c.SB, tag, a)
	if u.rounded {
		put(c.SB, fd, ir.Binop(u.op, t, fcsr.RoundingMode(), a))
		return
	}
	put(c.SB, fd, ir.Unop(u.op, t, a))
}

func (c *Context) emitFsqrt(isDouble bool, fd, fj uint32) {
	c.emitFPUnopFCSR(fpUnop{ir.OpFSqrt, fcsr.FSQRT_S, fcsr.FSQRT_D, false}, isDouble, fd, fj)
}
func (c *Context) emitFrecip(isDouble bool, fd, fj uint32) {
	c.emitFPDivOne(fcsr.FRECIP_S, fcsr.FRECIP_D, isDouble, fd, fj)
}
func (c *Context) emitFrsqrt(isDouble bool, fd, fj uint32) {
	c.emitFPRsqrt(isDouble, fd, fj)
}
func (c *Context) emitFlogb(isDouble bool, fd, fj uint32) {
	c.emitFPUnopFCSR(fpUnop{ir.OpFLogB, fcsr.FLOGB_S, fcsr.FLOGB_D, false}, isDouble, fd, fj)
}

// frecip.{s,d}: 1 / fj, computed via the helper-tagged FDiv IR shape since
// there is no dedicated reciprocal IR op (spec.md §9).
func (c *Context) emitFPDivOne(tagS, tagD fcsr.FPOpKind, isDouble bool, fd, fj uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	if isDouble {
		one := ir.ConstF64Bits(0x3ff0000000000000)
		a := state.ReadFPR64(fj)
		fcsr.CalculateAndUpdate(c.SB, tagD, one, a)
		state.PutFPR64(c.SB, fd, ir.Triop(ir.OpFDiv, ir.TypeF64, fcsr.RoundingMode(), one, a))
		return
	}
	one := ir.ConstF32Bits(0x3f800000)
	a := state.ReadFPR32(fj)
	fcsr.CalculateAndUpdate(c.SB, tagS, one, a)
	state.PutFPR32(c.SB, fd, ir.Triop(ir.OpFDiv, ir.TypeF32, fcsr.RoundingMode(), one, a))
}

// frsqrt.{s,d}: 1 / sqrt(fj), composed from the sqrt and reciprocal shapes.
func (c *Context) emitFPRsqrt(isDouble bool, fd, fj uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	if isDouble {
		a := state.ReadFPR64(fj)
		fcsr.CalculateAndUpdate(c.SB, fcsr.FRSQRT_D, a)
		sq := ir.Binop(ir.OpFSqrt, ir.TypeF64, fcsr.RoundingMode(), a)
		one := ir.ConstF64Bits(0x3ff0000000000000)
		state.PutFPR64(c.SB, fd, ir.Triop(ir.OpFDiv, ir.TypeF64, fcsr.RoundingMode(), one, sq))
		return
	}
	a := state.ReadFPR32(fj)
	fcsr.CalculateAndUpdate(c.SB, fcsr.FRSQRT_S, a)
	sq := ir.Binop(ir.OpFSqrt, ir.TypeF32, fcsr.RoundingMode(), a)
	one := ir.ConstF32Bits(0x3f800000)
	state.PutFPR32(c.SB, fd, ir.Triop(ir.OpFDiv, ir.TypeF32, fcsr.RoundingMode(), one, sq))
}

// fclass.{s,d}: category classification, delegated to a pure helper call
// since there is no IR-level "classify" operator (spec.md §4.4).
func (c *Context) emitFclass(isDouble bool, fd, fj uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	if isDouble {
		fcsr.CalculateAndUpdate(c.SB, fcsr.FCLASS_D, state.ReadFPR64(fj))
		a := ir.Unop(ir.OpReinterpret, ir.TypeI64, state.ReadFPR64(fj))
		call := ir.CCall("fclass_d", ir.TypeI64, a, nil, nil, nil)
		tmp := c.SB.NewTemp(ir.TypeI64)
		c.SB.Assign(tmp, call)
		state.PutFPR64(c.SB, fd, ir.Unop(ir.OpReinterpret, ir.TypeF64, ir.RdTmp(tmp)))
		return
	}
	fcsr.CalculateAndUpdate(c.SB, fcsr.FCLASS_S, state.ReadFPR32(fj))
	a := ir.Unop(ir.OpZeroExtend, ir.TypeI64, ir.Unop(ir.OpReinterpret, ir.TypeI32, state.ReadFPR32(fj)))
	call := ir.CCall("fclass_s", ir.TypeI64, a, nil, nil, nil)
	tmp := c.SB.NewTemp(ir.TypeI32)
	c.SB.Assign(tmp, ir.Unop(ir.OpTruncate, ir.TypeI32, call))
	state.PutFPR32(c.SB, fd, ir.Unop(ir.OpReinterpret, ir.TypeF32, ir.RdTmp(tmp)))
}

// Fused multiply-add family: fmadd/fmsub/fnmadd/fnmsub, each a single
// OpFMAdd/OpFMSub quaternary op (rm, a, b, c), with the negated variants
// wrapping the whole fused result in OpFNeg, the same way the original
// recombines fnmadd/fnmsub from fmadd/fmsub and a subsequent fneg, rather
// than a dedicated negated-fma IR op.
func (c *Context) emitFmadd(isDouble bool, fd, fj, fk, fa uint32) {
	c.emitFMA(ir.OpFMAdd, false, isDouble, fd, fj, fk, fa)
}
func (c *Context) emitFmsub(isDouble bool, fd, fj, fk, fa uint32) {
	c.emitFMA(ir.OpFMSub, false, isDouble, fd, fj, fk, fa)
}
func (c *Context) emitFnmadd(isDouble bool, fd, fj, fk, fa uint32) {
	c.emitFMA(ir.OpFMAdd, true, isDouble, fd, fj, fk, fa)
}
func (c *Context) emitFnmsub(isDouble bool, fd, fj, fk, fa uint32) {
	c.emitFMA(ir.OpFMSub, true, isDouble, fd, fj, fk, fa)
}

func (c *Context) emitFMA(op ir.Op, negate, isDouble bool, fd, fj, fk, fa uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	t := ir.TypeF32
	read, put := state.ReadFPR32, state.PutFPR32
	tag := fcsr.FMADD_S
	if op == ir.OpFMSub {
		tag = fcsr.FMSUB_S
	}
	if negate {
		if op == ir.OpFMSub {
			tag = fcsr.FNMSUB_S
		} else {
			tag = fcsr.FNMADD_S
		}
	}
	if isDouble {
		t = ir.TypeF64
		read, put = state.ReadFPR64, state.PutFPR64
		switch {
		case negate && op == ir.OpFMAdd:
			tag = fcsr.FNMADD_D
		case negate && op == ir.OpFMSub:
			tag = fcsr.FNMSUB_D
		case op == ir.OpFMAdd:
			tag = fcsr.FMADD_D
		default:
			tag = fcsr.FMSUB_D
		}
	}
	a, k, acc := read(fj), read(fk), read(fa)
	fcsr.CalculateAndUpdate(c.SB, tag, a, k, acc)
	rm := fcsr.RoundingMode()
	result := ir.Qop(op, t, rm, a, k, acc)
	if negate {
		result = ir.Unop(ir.OpFNeg, t, result)
	}
	put(c.SB, fd, result)
}

// fmov.{s,d}: pure register copy, no FCSR interaction.
func (c *Context) emitFmov(isDouble bool, fd, fj uint32) {
	if isDouble {
		state.PutFPR64(c.SB, fd, state.ReadFPR64(fj))
	} else {
		state.PutFPR32(c.SB, fd, state.ReadFPR32(fj))
	}
}

// fsel: fd = (cc == 0) ? fj : fk, selecting on a condition-flag register.
func (c *Context) emitFsel(fd, fj, fk, ca uint32) {
	cond := ir.Binop(ir.OpCmpEQ, ir.TypeI1, state.ReadFCC(ca), ir.ConstU64(ir.TypeI8, 0))
	v := ir.ITE(cond, state.ReadFPR64(fj), state.ReadFPR64(fk))
	state.PutFPR64(c.SB, fd, v)
}
