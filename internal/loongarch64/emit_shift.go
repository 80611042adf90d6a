package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
)

// Register and immediate shift/rotate families (spec.md §4.1): sll/srl/sra
// at word and doubleword width, the immediate forms slli/srli/srai, and
// rotr/rotri. Word-width shift amounts are masked to 5 bits and doubleword
// to 6 bits by the architecture; the register-form emitters truncate the
// shift-count register accordingly rather than relying on the IR's own
// shift-op semantics to do it (spec.md §9's "do not assume modular shift
// counts in the IR layer" decision).

func (c *Context) shiftAmountReg(width uint32, rk uint32) *ir.Expr {
	mask := uint64(0x1f)
	if width == 64 {
		mask = 0x3f
	}
	full := state.ReadGPR32(rk)
	masked := ir.Binop(ir.OpAnd, ir.TypeI32, full, ir.ConstU64(ir.TypeI32, mask))
	return ir.Unop(ir.OpTruncate, ir.TypeI8, masked)
}

func (c *Context) emitShift32(op ir.Op, rd, rj, rk uint32) {
	amt := c.shiftAmountReg(32, rk)
	v := ir.Binop(op, ir.TypeI32, state.ReadGPR32(rj), amt)
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, v))
}

func (c *Context) emitShift64(op ir.Op, rd, rj, rk uint32) {
	amt := c.shiftAmountReg(64, rk)
	v := ir.Binop(op, ir.TypeI64, state.ReadGPR(rj), amt)
	state.PutGPR(c.SB, rd, v)
}

func (c *Context) emitShiftImm32(op ir.Op, rd, rj, ui5 uint32) {
	amt := ir.ConstU64(ir.TypeI8, uint64(ui5))
	v := ir.Binop(op, ir.TypeI32, state.ReadGPR32(rj), amt)
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, v))
}

func (c *Context) emitShiftImm64(op ir.Op, rd, rj, ui6 uint32) {
	amt := ir.ConstU64(ir.TypeI8, uint64(ui6))
	v := ir.Binop(op, ir.TypeI64, state.ReadGPR(rj), amt)
	state.PutGPR(c.SB, rd, v)
}

// Rotate has no dedicated IR op; it is expressed as (x >> n) | (x << (w-n))
// the way the original's gen_rotr_w/d build it from two shifts and an or,
// degenerating to a plain copy when n == 0 (shift-by-width is undefined in
// the IR, spec.md §9).
func (c *Context) emitRotr32(rd, rj, rk uint32) {
	amt := ir.Unop(ir.OpTruncate, ir.TypeI8,
		ir.Binop(ir.OpAnd, ir.TypeI32, state.ReadGPR32(rk), ir.ConstU64(ir.TypeI32, 31)))
	c.rotr32(rd, rj, amt)
}

func (c *Context) emitRotriW(rd, rj, ui5 uint32) {
	c.rotr32(rd, rj, ir.ConstU64(ir.TypeI8, uint64(ui5)))
}

func (c *Context) rotr32(rd, rj uint32, amt *ir.Expr) {
	v, ok := amt.ConstValue()
	x := state.ReadGPR32(rj)
	if ok && v == 0 {
		state.PutGPR(c.SB, rd, extendS(ir.TypeI32, x))
		return
	}
	inv := ir.Binop(ir.OpSub, ir.TypeI8, ir.ConstU64(ir.TypeI8, 32), amt)
	lo := ir.Binop(ir.OpShrU, ir.TypeI32, x, amt)
	hi := ir.Binop(ir.OpShl, ir.TypeI32, x, inv)
	r := ir.Binop(ir.OpOr, ir.TypeI32, lo, hi)
	state.PutGPR(c.SB, rd, extendS(ir.TypeI32, r))
}

func (c *Context) emitRotr64(rd, rj, rk uint32) {
	amt := ir.Unop(ir.OpTruncate, ir.TypeI8,
		ir.Binop(ir.OpAnd, ir.TypeI32, state.ReadGPR32(rk), ir.ConstU64(ir.TypeI32, 63)))
	c.rotr64(rd, rj, amt)
}

func (c *Context) emitRotriD(rd, rj, ui6 uint32) {
	c.rotr64(rd, rj, ir.ConstU64(ir.TypeI8, uint64(ui6)))
}

func (c *Context) rotr64(rd, rj uint32, amt *ir.Expr) {
	v, ok := amt.ConstValue()
	x := state.ReadGPR(rj)
	if ok && v == 0 {
		state.PutGPR(c.SB, rd, x)
		return
	}
	inv := ir.Binop(ir.OpSub, ir.TypeI8, ir.ConstU64(ir.TypeI8, 64), amt)
	lo := ir.Binop(ir.OpShrU, ir.TypeI64, x, amt)
	hi := ir.Binop(ir.OpShl, ir.TypeI64, x, inv)
	state.PutGPR(c.SB, rd, ir.Binop(ir.OpOr, ir.TypeI64, lo, hi))
}
