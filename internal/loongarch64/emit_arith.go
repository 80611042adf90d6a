package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/fields"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
)

// Three-register word/doubleword arithmetic and logic (spec.md §4.1):
// add/sub/slt/sltu/nor/and/or/xor/orn/andn/maskeqz/masknez and the
// mul/mulh/div/mod families.

func (c *Context) emitAdd32(rd, rj, rk uint32) {
	v := ir.Binop(ir.OpAdd, ir.TypeI32, state.ReadGPR32(rj), state.ReadGPR32(rk))
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, v))
}

func (c *Context) emitAdd64(rd, rj, rk uint32) {
	v := ir.Binop(ir.OpAdd, ir.TypeI64, state.ReadGPR(rj), state.ReadGPR(rk))
	state.PutGPR(c.SB, rd, v)
}

func (c *Context) emitSub32(rd, rj, rk uint32) {
	v := ir.Binop(ir.OpSub, ir.TypeI32, state.ReadGPR32(rj), state.ReadGPR32(rk))
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, v))
}

func (c *Context) emitSub64(rd, rj, rk uint32) {
	v := ir.Binop(ir.OpSub, ir.TypeI64, state.ReadGPR(rj), state.ReadGPR(rk))
	state.PutGPR(c.SB, rd, v)
}

func (c *Context) emitSlt(rd, rj, rk uint32) {
	cond := ir.Binop(ir.OpCmpLTS, ir.TypeI1, state.ReadGPR(rj), state.ReadGPR(rk))
	v := ir.ITE(cond, ir.ConstU64(ir.TypeI64, 1), ir.ConstU64(ir.TypeI64, 0))
	state.PutGPR(c.SB, rd, v)
}

func (c *Context) emitSltu(rd, rj, rk uint32) {
	cond := ir.Binop(ir.OpCmpLTU, ir.TypeI1, state.ReadGPR(rj), state.ReadGPR(rk))
	v := ir.ITE(cond, ir.ConstU64(ir.TypeI64, 1), ir.ConstU64(ir.TypeI64, 0))
	state.PutGPR(c.SB, rd, v)
}

// emitMaskeqz: rd = (rk == 0) ? rj : 0.
func (c *Context) emitMaskeqz(rd, rj, rk uint32) {
	cond := ir.Binop(ir.OpCmpEQ, ir.TypeI1, state.ReadGPR(rk), ir.ConstU64(ir.TypeI64, 0))
	v := ir.ITE(cond, state.ReadGPR(rj), ir.ConstU64(ir.TypeI64, 0))
	state.PutGPR(c.SB, rd, v)
}

// emitMasknez: rd = (rk != 0) ? rj : 0.
func (c *Context) emitMasknez(rd, rj, rk uint32) {
	cond := ir.Binop(ir.OpCmpNE, ir.TypeI1, state.ReadGPR(rk), ir.ConstU64(ir.TypeI64, 0))
	v := ir.ITE(cond, state.ReadGPR(rj), ir.ConstU64(ir.TypeI64, 0))
	state.PutGPR(c.SB, rd, v)
}

func (c *Context) emitBitBinop64(op ir.Op, rd, rj, rk uint32) {
	state.PutGPR(c.SB, rd, ir.Binop(op, ir.TypeI64, state.ReadGPR(rj), state.ReadGPR(rk)))
}

// emitNor/Andn/Orn compose from OpAnd/OpOr/OpNot since the IR op set has no
// dedicated nor/andn/orn operator (spec.md §9's "flatten rarely used
// combinators" design note).
func (c *Context) emitNor(rd, rj, rk uint32) {
	or := ir.Binop(ir.OpOr, ir.TypeI64, state.ReadGPR(rj), state.ReadGPR(rk))
	state.PutGPR(c.SB, rd, ir.Unop(ir.OpNot, ir.TypeI64, or))
}

func (c *Context) emitAndn(rd, rj, rk uint32) {
	notK := ir.Unop(ir.OpNot, ir.TypeI64, state.ReadGPR(rk))
	state.PutGPR(c.SB, rd, ir.Binop(ir.OpAnd, ir.TypeI64, state.ReadGPR(rj), notK))
}

func (c *Context) emitOrn(rd, rj, rk uint32) {
	notK := ir.Unop(ir.OpNot, ir.TypeI64, state.ReadGPR(rk))
	state.PutGPR(c.SB, rd, ir.Binop(ir.OpOr, ir.TypeI64, state.ReadGPR(rj), notK))
}

func (c *Context) emitMul32(rd, rj, rk uint32) {
	v := ir.Binop(ir.OpMul, ir.TypeI32, state.ReadGPR32(rj), state.ReadGPR32(rk))
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, v))
}

func (c *Context) emitMulh32(signed bool, rd, rj, rk uint32) {
	op := ir.OpMulHU
	if signed {
		op = ir.OpMulHS
	}
	v := ir.Binop(op, ir.TypeI32, state.ReadGPR32(rj), state.ReadGPR32(rk))
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, v))
}

func (c *Context) emitMul64(rd, rj, rk uint32) {
	state.PutGPR(c.SB, rd, ir.Binop(ir.OpMul, ir.TypeI64, state.ReadGPR(rj), state.ReadGPR(rk)))
}

func (c *Context) emitMulh64(signed bool, rd, rj, rk uint32) {
	op := ir.OpMulHU
	if signed {
		op = ir.OpMulHS
	}
	state.PutGPR(c.SB, rd, ir.Binop(op, ir.TypeI64, state.ReadGPR(rj), state.ReadGPR(rk)))
}

// emitMulwD: 32x32 -> 64 widening multiply (mulw.d.w[u]).
func (c *Context) emitMulwD(signed bool, rd, rj, rk uint32) {
	extOp := ir.OpZeroExtend
	if signed {
		extOp = ir.OpSignExtend
	}
	a := ir.Unop(extOp, ir.TypeI64, state.ReadGPR32(rj))
	b := ir.Unop(extOp, ir.TypeI64, state.ReadGPR32(rk))
	state.PutGPR(c.SB, rd, ir.Binop(ir.OpMul, ir.TypeI64, a, b))
}

func (c *Context) emitDivMod32(op ir.Op, rd, rj, rk uint32) {
	v := ir.Binop(op, ir.TypeI32, state.ReadGPR32(rj), state.ReadGPR32(rk))
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, v))
}

func (c *Context) emitDivMod64(op ir.Op, rd, rj, rk uint32) {
	state.PutGPR(c.SB, rd, ir.Binop(op, ir.TypeI64, state.ReadGPR(rj), state.ReadGPR(rk)))
}

// Immediate-form arithmetic: addi.w/d, slti, sltui, andi, ori, xori,
// lu12i.w, lu32i.d, lu52i.d, pcaddi, pcalau12i, pcaddu12i, pcaddu18i.

func (c *Context) emitAddiW(rd, rj uint32, si12 uint32) {
	imm := ir.Unop(ir.OpTruncate, ir.TypeI32, signExtImm64(si12, 12))
	v := ir.Binop(ir.OpAdd, ir.TypeI32, state.ReadGPR32(rj), imm)
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, v))
}

func (c *Context) emitAddiD(rd, rj uint32, si12 uint32) {
	v := ir.Binop(ir.OpAdd, ir.TypeI64, state.ReadGPR(rj), signExtImm64(si12, 12))
	state.PutGPR(c.SB, rd, v)
}

func (c *Context) emitSlti(rd, rj uint32, si12 uint32) {
	cond := ir.Binop(ir.OpCmpLTS, ir.TypeI1, state.ReadGPR(rj), signExtImm64(si12, 12))
	state.PutGPR(c.SB, rd, ir.ITE(cond, ir.ConstU64(ir.TypeI64, 1), ir.ConstU64(ir.TypeI64, 0)))
}

func (c *Context) emitSltui(rd, rj uint32, si12 uint32) {
	cond := ir.Binop(ir.OpCmpLTU, ir.TypeI1, state.ReadGPR(rj), signExtImm64(si12, 12))
	state.PutGPR(c.SB, rd, ir.ITE(cond, ir.ConstU64(ir.TypeI64, 1), ir.ConstU64(ir.TypeI64, 0)))
}

func (c *Context) emitLogicImm(op ir.Op, rd, rj uint32, ui12 uint32) {
	imm := ir.ConstU64(ir.TypeI64, uint64(ui12))
	state.PutGPR(c.SB, rd, ir.Binop(op, ir.TypeI64, state.ReadGPR(rj), imm))
}

func (c *Context) emitLu12iW(rd uint32, si20 uint32) {
	v := signExtImm64(si20<<12, 32)
	state.PutGPR(c.SB, rd, v)
}

func (c *Context) emitLu32iD(rd uint32, si20 uint32) {
	lo := ir.Binop(ir.OpAnd, ir.TypeI64, state.ReadGPR(rd), ir.ConstU64(ir.TypeI64, 0xffffffff))
	hi := ir.Binop(ir.OpShl, ir.TypeI64, signExtImm64(si20, 20), ir.ConstU64(ir.TypeI64, 32))
	state.PutGPR(c.SB, rd, ir.Binop(ir.OpOr, ir.TypeI64, lo, hi))
}

func (c *Context) emitLu52iD(rd, rj uint32, si12 uint32) {
	lo := ir.Binop(ir.OpAnd, ir.TypeI64, state.ReadGPR(rj), ir.ConstU64(ir.TypeI64, 0xfffffffffffff))
	hi := ir.Binop(ir.OpShl, ir.TypeI64, signExtImm64(si12, 12), ir.ConstU64(ir.TypeI64, 52))
	state.PutGPR(c.SB, rd, ir.Binop(ir.OpOr, ir.TypeI64, lo, hi))
}

func (c *Context) emitPcaddi(rd uint32, si20 uint32) {
	v := ir.Binop(ir.OpAdd, ir.TypeI64, c.pcCurrConst(), signExtImm64(si20<<2, 22))
	state.PutGPR(c.SB, rd, v)
}

func (c *Context) emitPcalau12i(rd uint32, si20 uint32) {
	base := ir.Binop(ir.OpAnd, ir.TypeI64, c.pcCurrConst(), ir.ConstU64(ir.TypeI64, ^uint64(0xfff)))
	v := ir.Binop(ir.OpAdd, ir.TypeI64, base, signExtImm64(si20<<12, 32))
	state.PutGPR(c.SB, rd, v)
}

func (c *Context) emitPcadduXXi(rd uint32, si20 uint32, shift uint) {
	// Shift in 64 bits: si20<<18 does not fit in a uint32.
	delta := ir.ConstU64(ir.TypeI64, uint64(fields.SignExtend64(uint64(si20)<<shift, 20+shift)))
	v := ir.Binop(ir.OpAdd, ir.TypeI64, c.pcCurrConst(), delta)
	state.PutGPR(c.SB, rd, v)
}

// alsl.w[u]/alsl.d: rd = (rj << sa) + rk, at word or doubleword width.
func (c *Context) emitAlslW(unsignedResult bool, rd, rj, rk, sa2 uint32) {
	shifted := ir.Binop(ir.OpShl, ir.TypeI32, state.ReadGPR32(rj), ir.ConstU64(ir.TypeI32, uint64(sa2+1)))
	sum := ir.Binop(ir.OpAdd, ir.TypeI32, shifted, state.ReadGPR32(rk))
	if unsignedResult {
		state.PutGPR(c.SB, rd, ir.Unop(ir.OpZeroExtend, ir.TypeI64, sum))
		return
	}
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, sum))
}

func (c *Context) emitAlslD(rd, rj, rk, sa2 uint32) {
	shifted := ir.Binop(ir.OpShl, ir.TypeI64, state.ReadGPR(rj), ir.ConstU64(ir.TypeI64, uint64(sa2+1)))
	state.PutGPR(c.SB, rd, ir.Binop(ir.OpAdd, ir.TypeI64, shifted, state.ReadGPR(rk)))
}

// bytepick.w/d: rd = ((rk:rj) >> (width - sa*8))[width-1:0], i.e.
// (rk << sa*8) | (rj >> (width - sa*8)), built from two shifts and an or
// since the IR has no dedicated funnel-shift op; sa == 0 yields plain rk.
func (c *Context) emitBytepickW(rd, rj, rk, sa2 uint32) {
	shamt := (4 - sa2) * 8
	if sa2 == 0 {
		state.PutGPR(c.SB, rd, extendS(ir.TypeI32, state.ReadGPR32(rk)))
		return
	}
	hi := ir.Binop(ir.OpShl, ir.TypeI32, state.ReadGPR32(rk), ir.ConstU64(ir.TypeI32, uint64(32-shamt)))
	lo := ir.Binop(ir.OpShrU, ir.TypeI32, state.ReadGPR32(rj), ir.ConstU64(ir.TypeI32, uint64(shamt)))
	v := ir.Binop(ir.OpOr, ir.TypeI32, hi, lo)
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, v))
}

func (c *Context) emitBytepickD(rd, rj, rk, sa3 uint32) {
	if sa3 == 0 {
		state.PutGPR(c.SB, rd, state.ReadGPR(rk))
		return
	}
	shamt := uint64((8 - sa3) * 8)
	hi := ir.Binop(ir.OpShl, ir.TypeI64, state.ReadGPR(rk), ir.ConstU64(ir.TypeI64, 64-shamt))
	lo := ir.Binop(ir.OpShrU, ir.TypeI64, state.ReadGPR(rj), ir.ConstU64(ir.TypeI64, shamt))
	state.PutGPR(c.SB, rd, ir.Binop(ir.OpOr, ir.TypeI64, hi, lo))
}

func (c *Context) emitAddu16iD(rd, rj uint32, si16 uint32) {
	v := ir.Binop(ir.OpAdd, ir.TypeI64, state.ReadGPR(rj), signExtImm64(si16<<16, 32))
	state.PutGPR(c.SB, rd, v)
}
