package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
)

// Control-flow family (spec.md §4.7): conditional branches (beqz/bnez/
// bceqz/bcnez/beq/bne/blt/bge/bltu/bgeu), and the unconditional transfers
// b/bl/jirl.

func (c *Context) emitBeqz(rj uint32, offs21 uint32) {
	cond := ir.Binop(ir.OpCmpEQ, ir.TypeI1, state.ReadGPR(rj), ir.ConstU64(ir.TypeI64, 0))
	c.genCondExit(cond, branchDelta(offs21, 21, 2))
}

func (c *Context) emitBnez(rj uint32, offs21 uint32) {
	cond := ir.Binop(ir.OpCmpNE, ir.TypeI1, state.ReadGPR(rj), ir.ConstU64(ir.TypeI64, 0))
	c.genCondExit(cond, branchDelta(offs21, 21, 2))
}

func (c *Context) emitBceqz(cj uint32, offs21 uint32) {
	cond := ir.Binop(ir.OpCmpEQ, ir.TypeI1, state.ReadFCC(cj), ir.ConstU64(ir.TypeI8, 0))
	c.genCondExit(cond, branchDelta(offs21, 21, 2))
}

func (c *Context) emitBcnez(cj uint32, offs21 uint32) {
	cond := ir.Binop(ir.OpCmpNE, ir.TypeI1, state.ReadFCC(cj), ir.ConstU64(ir.TypeI8, 0))
	c.genCondExit(cond, branchDelta(offs21, 21, 2))
}

func (c *Context) emitBEq(rj, rd uint32, offs16 uint32) {
	cond := ir.Binop(ir.OpCmpEQ, ir.TypeI1, state.ReadGPR(rj), state.ReadGPR(rd))
	c.genCondExit(cond, branchDelta(offs16, 16, 2))
}

func (c *Context) emitBNe(rj, rd uint32, offs16 uint32) {
	cond := ir.Binop(ir.OpCmpNE, ir.TypeI1, state.ReadGPR(rj), state.ReadGPR(rd))
	c.genCondExit(cond, branchDelta(offs16, 16, 2))
}

func (c *Context) emitBlt(signed bool, rj, rd uint32, offs16 uint32) {
	op := ir.OpCmpLTU
	if signed {
		op = ir.OpCmpLTS
	}
	cond := ir.Binop(op, ir.TypeI1, state.ReadGPR(rj), state.ReadGPR(rd))
	c.genCondExit(cond, branchDelta(offs16, 16, 2))
}

func (c *Context) emitBge(signed bool, rj, rd uint32, offs16 uint32) {
	op := ir.OpCmpLTU
	if signed {
		op = ir.OpCmpLTS
	}
	lt := ir.Binop(op, ir.TypeI1, state.ReadGPR(rj), state.ReadGPR(rd))
	cond := ir.Unop(ir.OpNot, ir.TypeI1, lt)
	c.genCondExit(cond, branchDelta(offs16, 16, 2))
}

func (c *Context) emitB(offs26 uint32) {
	c.jump(c.branchTarget(offs26, 26, 2))
}

func (c *Context) emitBl(offs26 uint32) {
	state.PutGPR(c.SB, 1, ir.Binop(ir.OpAdd, ir.TypeI64, c.pcCurrConst(), ir.ConstU64(ir.TypeI64, 4)))
	c.jump(c.branchTarget(offs26, 26, 2))
}

// emitJirl: rd = PC_curr+4; PC = rj + sign_extend(offs16<<2). The source
// register is snapshotted into a temp first, exactly as the original does,
// so that rd == rj still reads the pre-write value of rj (spec.md §4.7's
// "rd==rj alias" edge case).
func (c *Context) emitJirl(rd, rj uint32, offs16 uint32) {
	tmp := c.SB.NewTemp(ir.TypeI64)
	c.SB.Assign(tmp, state.ReadGPR(rj))
	state.PutGPR(c.SB, rd, ir.Binop(ir.OpAdd, ir.TypeI64, c.pcCurrConst(), ir.ConstU64(ir.TypeI64, 4)))
	target := ir.Binop(ir.OpAdd, ir.TypeI64, ir.RdTmp(tmp), signExtImm64(offs16<<2, 18))
	c.jump(target)
}
