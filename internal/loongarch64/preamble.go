package loongarch64

import (
	"encoding/binary"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
)

// The magic 16-byte preamble (spec.md §4.9): four fixed srli.d-on-$zero
// encodings that are otherwise architecturally inert, followed by one of
// four selector words that each designate a distinct host-level request.
// This check runs before the main opcode dispatch on every decode call,
// exactly as the original's disInstr_LOONGARCH64_WRK_special does.
const (
	preamble0 = 0x00450c00
	preamble1 = 0x00453400
	preamble2 = 0x00457400
	preamble3 = 0x00454c00

	selectorClientReq = 0x001535ad // or $t1, $t1, $t1
	selectorNRAddr    = 0x001539ce // or $t2, $t2, $t2
	selectorNoRedir   = 0x00153def // or $t3, $t3, $t3
	selectorIRInject  = 0x00154210 // or $t4, $t4, $t4

	preambleTotalLen = 20
)

// regA7 and regT8 are the fixed GPR indices the preamble protocol reads
// or writes, per spec.md §4.9's naming of the ABI registers involved.
const (
	regA7 = 11
	regT8 = 20
)

// checkPreamble inspects up to 20 bytes (code[off:off+20]) for the magic
// preamble and, if present, emits the corresponding host-request IR and
// reports the byte length consumed. ok is false if no preamble is present,
// in which case the caller falls through to the ordinary opcode dispatch.
func (c *Context) checkPreamble(code []byte) (consumed int, ok bool) {
	if len(code) < preambleTotalLen {
		return 0, false
	}
	get := func(off int) uint32 { return binary.LittleEndian.Uint32(code[off:]) }
	if get(0) != preamble0 || get(4) != preamble1 || get(8) != preamble2 || get(12) != preamble3 {
		return 0, false
	}

	switch get(16) {
	case selectorClientReq:
		state.PutPC(c.SB, ir.ConstU64(ir.TypeI64, c.GuestPCCurr+preambleTotalLen))
		c.dres.WhatNext = StopHere
		c.dres.JumpKind = ir.JumpClientReq
		return preambleTotalLen, true

	case selectorNRAddr:
		state.PutGPR(c.SB, regA7, state.ReadNRAddr())
		return preambleTotalLen, true

	case selectorNoRedir:
		state.PutGPR(c.SB, 1, ir.ConstU64(ir.TypeI64, c.GuestPCCurr+preambleTotalLen))
		state.PutPC(c.SB, state.ReadGPR(regT8))
		c.dres.WhatNext = StopHere
		c.dres.JumpKind = ir.JumpNoRedir
		return preambleTotalLen, true

	case selectorIRInject:
		state.PutCMStart(c.SB, ir.ConstU64(ir.TypeI64, c.GuestPCCurr))
		state.PutCMLen(c.SB, ir.ConstU64(ir.TypeI64, preambleTotalLen))
		state.PutPC(c.SB, ir.ConstU64(ir.TypeI64, c.GuestPCCurr+preambleTotalLen))
		c.dres.WhatNext = StopHere
		c.dres.JumpKind = ir.JumpInvalICache
		return preambleTotalLen, true

	default:
		// A 16-byte match with an unrecognized selector cannot occur in
		// well-formed guest code; treat it as a decode failure rather
		// than panicking, so malformed input degrades to NoDecode
		// (spec.md §7's "never panic on attacker-controlled bytes").
		return 0, false
	}
}
