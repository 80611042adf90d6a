package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/fcsr"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
)

// fcmp.cond.{s,d} family (spec.md §4.4): 22 base predicates times two
// widths, all built from one shared generator over the IRCmpFResult
// category OpCmpF32/OpCmpF64 produce (UN/LT/GT/EQ, spec.md's constants).
// The "s" (signaling) prefix additionally raises Invalid on an unordered
// operand; this decoder signals it through the same calculate_FCSR call
// every other tag uses, tagged distinctly from its "c" (quiet) counterpart,
// matching the original's one-call-per-predicate shape even though the
// predicate logic itself lives entirely in the IR's comparison result.

// fcmpPredicate names the 22 LoongArch fcmp.cond mnemonics this decoder
// recognizes (caf/saf/clt/slt/ceq/seq/cle/sle/cun/sun/cult/sult/cueq/sueq/
// cule/sule/cne/sne/cor/sor/cune/sune), expressed as which CmpFResult
// categories the condition is true for.
type fcmpPredicate struct {
	un, lt, gt, eq bool
	tagS, tagD     fcsr.FPOpKind
}

func (c *Context) emitFcmp(p fcmpPredicate, isDouble bool, cd, fj, fk uint32) {
	if !c.checkFeature(HWCapFP) {
		return
	}
	var result *ir.Expr
	var tag fcsr.FPOpKind
	if isDouble {
		result = ir.Binop(ir.OpCmpF64, ir.TypeI32, state.ReadFPR64(fj), state.ReadFPR64(fk))
		tag = p.tagD
		fcsr.CalculateAndUpdate(c.SB, tag, state.ReadFPR64(fj), state.ReadFPR64(fk))
	} else {
		result = ir.Binop(ir.OpCmpF32, ir.TypeI32, state.ReadFPR32(fj), state.ReadFPR32(fk))
		tag = p.tagS
		fcsr.CalculateAndUpdate(c.SB, tag, state.ReadFPR32(fj), state.ReadFPR32(fk))
	}
	tmp := c.SB.NewTemp(ir.TypeI32)
	c.SB.Assign(tmp, result)
	cat := ir.RdTmp(tmp)

	var cond *ir.Expr
	match := func(v uint64, want bool) *ir.Expr {
		eq := ir.Binop(ir.OpCmpEQ, ir.TypeI1, cat, ir.ConstU64(ir.TypeI32, v))
		if !want {
			return nil
		}
		return eq
	}
	terms := []*ir.Expr{
		match(ir.CmpFResultUN, p.un),
		match(ir.CmpFResultLT, p.lt),
		match(ir.CmpFResultGT, p.gt),
		match(ir.CmpFResultEQ, p.eq),
	}
	for _, t := range terms {
		if t == nil {
			continue
		}
		if cond == nil {
			cond = t
		} else {
			cond = ir.Binop(ir.OpOr, ir.TypeI1, cond, t)
		}
	}
	if cond == nil {
		cond = ir.ConstU64(ir.TypeI1, 0)
	}
	state.PutFCC(c.SB, cd, ir.Unop(ir.OpZeroExtend, ir.TypeI8, cond))
}

// fcmpPredicates maps the SLICE(insn,19,15) 5-bit fcmp condition code to
// its predicate shape, per the LoongArch fcmp.cond encoding (bit 4 selects
// signaling, bits 3..0 select the CAF/CUN/CEQ/CLT/CLE/CNE/COR/CUNE base).
var fcmpPredicates = map[uint32]fcmpPredicate{
	0x0: {tagS: fcsr.FCMP_CAF_S, tagD: fcsr.FCMP_CAF_D},
	0x1: {lt: true, tagS: fcsr.FCMP_CLT_S, tagD: fcsr.FCMP_CLT_D},
	0x2: {eq: true, tagS: fcsr.FCMP_CEQ_S, tagD: fcsr.FCMP_CEQ_D},
	0x3: {lt: true, eq: true, tagS: fcsr.FCMP_CLE_S, tagD: fcsr.FCMP_CLE_D},
	0x4: {un: true, tagS: fcsr.FCMP_CUN_S, tagD: fcsr.FCMP_CUN_D},
	0x5: {un: true, lt: true, tagS: fcsr.FCMP_CULT_S, tagD: fcsr.FCMP_CULT_D},
	0x6: {un: true, eq: true, tagS: fcsr.FCMP_CUEQ_S, tagD: fcsr.FCMP_CUEQ_D},
	0x7: {un: true, lt: true, eq: true, tagS: fcsr.FCMP_CULE_S, tagD: fcsr.FCMP_CULE_D},
	0x8: {gt: true, lt: true, tagS: fcsr.FCMP_CNE_S, tagD: fcsr.FCMP_CNE_D},
	0xa: {gt: true, lt: true, eq: true, tagS: fcsr.FCMP_COR_S, tagD: fcsr.FCMP_COR_D},
	0xc: {un: true, gt: true, lt: true, tagS: fcsr.FCMP_CUNE_S, tagD: fcsr.FCMP_CUNE_D},

	0x10: {tagS: fcsr.FCMP_SAF_S, tagD: fcsr.FCMP_SAF_D},
	0x11: {lt: true, tagS: fcsr.FCMP_SLT_S, tagD: fcsr.FCMP_SLT_D},
	0x12: {eq: true, tagS: fcsr.FCMP_SEQ_S, tagD: fcsr.FCMP_SEQ_D},
	0x13: {lt: true, eq: true, tagS: fcsr.FCMP_SLE_S, tagD: fcsr.FCMP_SLE_D},
	0x14: {un: true, tagS: fcsr.FCMP_SUN_S, tagD: fcsr.FCMP_SUN_D},
	0x15: {un: true, lt: true, tagS: fcsr.FCMP_SULT_S, tagD: fcsr.FCMP_SULT_D},
	0x16: {un: true, eq: true, tagS: fcsr.FCMP_SUEQ_S, tagD: fcsr.FCMP_SUEQ_D},
	0x17: {un: true, lt: true, eq: true, tagS: fcsr.FCMP_SULE_S, tagD: fcsr.FCMP_SULE_D},
	0x18: {gt: true, lt: true, tagS: fcsr.FCMP_SNE_S, tagD: fcsr.FCMP_SNE_D},
	0x1a: {gt: true, lt: true, eq: true, tagS: fcsr.FCMP_SOR_S, tagD: fcsr.FCMP_SOR_D},
	0x1c: {un: true, gt: true, lt: true, tagS: fcsr.FCMP_SUNE_S, tagD: fcsr.FCMP_SUNE_D},
}

// emitFcmpByCond dispatches on the raw 5-bit condition code, falling back
// to NoDecode for codes the ISA leaves unassigned.
func (c *Context) emitFcmpByCond(cond uint32, isDouble bool, cd, fj, fk uint32) bool {
	p, ok := fcmpPredicates[cond]
	if !ok {
		return false
	}
	c.emitFcmp(p, isDouble, cd, fj, fk)
	return true
}
