package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
)

// Atomic memory-operation family (spec.md §4.6): am{swap,add,and,or,xor,
// max,min,max.wu,min.wu}[.db].{w,d}. Each is expressed as a load-old /
// compute-new / CAS / guarded-self-exit-on-failure retry loop: on CAS
// failure the block re-enters at delta 0, restarting this same
// instruction, exactly as the original's gen_am_w_helper/gen_am_d_helper
// construct it. The "_db" suffix additionally issues a full memory fence
// before the operation (spec.md §4.6's "db" = "data barrier" note).

type amKind int

const (
	amSwap amKind = iota
	amAdd
	amAnd
	amOr
	amXor
	amMax
	amMin
	amMaxU
	amMinU
)

func amCompute(kind amKind, t ir.Type, old, src *ir.Expr) *ir.Expr {
	switch kind {
	case amSwap:
		return src
	case amAdd:
		return ir.Binop(ir.OpAdd, t, old, src)
	case amAnd:
		return ir.Binop(ir.OpAnd, t, old, src)
	case amOr:
		return ir.Binop(ir.OpOr, t, old, src)
	case amXor:
		return ir.Binop(ir.OpXor, t, old, src)
	case amMax:
		cond := ir.Binop(ir.OpCmpLTS, ir.TypeI1, old, src)
		return ir.ITE(cond, src, old)
	case amMin:
		cond := ir.Binop(ir.OpCmpLTS, ir.TypeI1, src, old)
		return ir.ITE(cond, src, old)
	case amMaxU:
		cond := ir.Binop(ir.OpCmpLTU, ir.TypeI1, old, src)
		return ir.ITE(cond, src, old)
	case amMinU:
		cond := ir.Binop(ir.OpCmpLTU, ir.TypeI1, src, old)
		return ir.ITE(cond, src, old)
	default:
		panic("loongarch64: bad amKind")
	}
}

// emitAtomicMemop schedules one am* instruction at word or doubleword
// width, with an optional leading data fence for the "_db" variants.
func (c *Context) emitAtomicMemop(kind amKind, wide, fenced bool, rd, rk, rj uint32) {
	if !c.checkFeature(HWCapLAM) {
		return
	}
	if fenced {
		c.SB.Fence(ir.FenceMemory)
	}
	t := ir.TypeI32
	if wide {
		t = ir.TypeI64
	}
	addr := state.ReadGPR(rj)
	mask := uint64(0x3)
	if wide {
		mask = 0x7
	}
	c.checkAlignedOrSigBUS(addr, mask)

	var src *ir.Expr
	if wide {
		src = state.ReadGPR(rk)
	} else {
		src = state.ReadGPR32(rk)
	}

	old := c.SB.NewTemp(t)
	c.SB.Assign(old, ir.Load(t, addr))
	newVal := amCompute(kind, t, ir.RdTmp(old), src)

	observed := c.SB.NewTemp(t)
	c.SB.CAS(observed, addr, ir.RdTmp(old), newVal)
	failed := ir.Binop(ir.OpCmpNE, ir.TypeI1, ir.RdTmp(observed), ir.RdTmp(old))
	c.SB.Exit(failed, 0, ir.JumpBoring)

	if wide {
		state.PutGPR(c.SB, rd, ir.RdTmp(old))
	} else {
		state.PutGPR(c.SB, rd, extendS(ir.TypeI32, ir.RdTmp(old)))
	}
}
