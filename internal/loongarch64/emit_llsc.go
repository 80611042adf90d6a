package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
)

// Load-linked/store-conditional family (spec.md §4.6): ll.{w,d}/sc.{w,d}.
// The ABI selects between the native IRStmt_LLSC primitive and a software
// fallback built from the three LLSC scratch fields; sc failures under the
// fallback path exit at delta 4 (resume at the next instruction, leaving
// the destination register preset to 0 and memory untouched), so these
// exits do NOT restart the current instruction -- unlike the am* retry
// loop's delta-0 exits.

func (c *Context) emitLL(wide bool, rd, rj uint32, si14 uint32) {
	addr := ir.Binop(ir.OpAdd, ir.TypeI64, state.ReadGPR(rj), signExtImm64(si14<<2, 16))
	mask := uint64(0x3)
	if wide {
		mask = 0x7
	}
	c.checkAlignedOrSigBUS(addr, mask)

	if c.ABI.UseFallbackLLSC {
		c.emitLLFallback(wide, rd, addr)
		return
	}
	t := ir.TypeI32
	if wide {
		t = ir.TypeI64
	}
	res := c.SB.NewTemp(t)
	c.SB.LLSC(res, addr, nil)
	if wide {
		state.PutGPR(c.SB, rd, ir.RdTmp(res))
	} else {
		state.PutGPR(c.SB, rd, extendS(ir.TypeI32, ir.RdTmp(res)))
	}
}

func (c *Context) emitSC(wide bool, rd, rj uint32, si14 uint32) {
	addr := ir.Binop(ir.OpAdd, ir.TypeI64, state.ReadGPR(rj), signExtImm64(si14<<2, 16))
	mask := uint64(0x3)
	if wide {
		mask = 0x7
	}
	c.checkAlignedOrSigBUS(addr, mask)

	if c.ABI.UseFallbackLLSC {
		c.emitSCFallback(wide, rd, addr)
		return
	}
	t := ir.TypeI32
	if wide {
		t = ir.TypeI64
	}
	storeVal := ir.Unop(ir.OpTruncate, t, state.ReadGPR(rd))
	res := c.SB.NewTemp(ir.TypeI1)
	c.SB.LLSC(res, addr, storeVal)
	state.PutGPR(c.SB, rd, ir.ITE(ir.RdTmp(res), ir.ConstU64(ir.TypeI64, 1), ir.ConstU64(ir.TypeI64, 0)))
}

// emitLLFallback records the load's size, address and observed value into
// the three guest-state scratch cells the paired sc consults, then
// performs the load itself exactly as a normal ld would (spec.md §4.6).
func (c *Context) emitLLFallback(wide bool, rd uint32, addr *ir.Expr) {
	t := ir.TypeI32
	size := uint64(4)
	if wide {
		t = ir.TypeI64
		size = 8
	}
	val := ir.Load(t, addr)
	tmp := c.SB.NewTemp(t)
	c.SB.Assign(tmp, val)

	state.PutLLSCSize(c.SB, ir.ConstU64(ir.TypeI64, size))
	state.PutLLSCAddr(c.SB, addr)
	asI64 := tmp
	var widened *ir.Expr
	if wide {
		widened = ir.RdTmp(asI64)
	} else {
		widened = ir.Unop(ir.OpZeroExtend, ir.TypeI64, ir.RdTmp(asI64))
	}
	state.PutLLSCData(c.SB, widened)

	if wide {
		state.PutGPR(c.SB, rd, ir.RdTmp(tmp))
	} else {
		state.PutGPR(c.SB, rd, extendS(ir.TypeI32, ir.RdTmp(tmp)))
	}
}

// emitSCFallback presets rd to 0 (spec.md §4.6: "the destination register
// is preset to 0 before any failure check"), then fails (falls through,
// leaving rd at 0 and memory untouched) unless all of: a prior ll recorded
// this exact size and address, the memory still holds the value ll
// observed, and CASing in rd's value against that observed value succeeds
// -- each unmet condition exits at delta 4 rather than retrying, since a
// failed sc is architecturally visible to the guest program, not silently
// retried by the decoder (spec.md §4.6, REDESIGN FLAGS).
func (c *Context) emitSCFallback(wide bool, rd uint32, addr *ir.Expr) {
	t := ir.TypeI32
	size := uint64(4)
	if wide {
		t = ir.TypeI64
		size = 8
	}

	var storeVal *ir.Expr
	if wide {
		storeVal = state.ReadGPR(rd)
	} else {
		storeVal = state.ReadGPR32(rd)
	}
	srcTmp := c.SB.NewTemp(t)
	c.SB.Assign(srcTmp, storeVal)
	storeVal = ir.RdTmp(srcTmp)

	state.PutGPR(c.SB, rd, ir.ConstU64(ir.TypeI64, 0))

	wrongSize := ir.Binop(ir.OpCmpNE, ir.TypeI1, state.ReadLLSCSize(), ir.ConstU64(ir.TypeI64, size))
	state.PutLLSCSize(c.SB, ir.ConstU64(ir.TypeI64, 0))
	c.SB.Exit(wrongSize, 4, ir.JumpBoring)

	wrongAddr := ir.Binop(ir.OpCmpNE, ir.TypeI1, state.ReadLLSCAddr(), addr)
	c.SB.Exit(wrongAddr, 4, ir.JumpBoring)

	expected := ir.Unop(ir.OpTruncate, t, state.ReadLLSCData())

	old := c.SB.NewTemp(t)
	c.SB.Assign(old, ir.Load(t, addr))
	mismatch := ir.Binop(ir.OpCmpNE, ir.TypeI1, ir.RdTmp(old), expected)
	c.SB.Exit(mismatch, 4, ir.JumpBoring)

	observed := c.SB.NewTemp(t)
	c.SB.CAS(observed, addr, expected, storeVal)
	casFailed := ir.Binop(ir.OpCmpNE, ir.TypeI1, ir.RdTmp(observed), expected)
	c.SB.Exit(casFailed, 4, ir.JumpBoring)

	state.PutGPR(c.SB, rd, ir.ConstU64(ir.TypeI64, 1))
}
