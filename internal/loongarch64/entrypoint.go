package loongarch64

import (
	"encoding/binary"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/state"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/trace"
)

// Decode decodes exactly one instruction from code into sb, mirroring the
// original's disInstr_LOONGARCH64 top-level entry point (spec.md §6): zero
// the result record, try the magic preamble first, then the ordinary
// opcode dispatcher; on total failure, restore PC to the unchanged current
// instruction, report zero bytes consumed under NoDecode, and -- if tr is
// enabled -- print the binary diagnostic (spec.md §7's "never panic on
// attacker-controlled bytes").
func Decode(sb *ir.IRSB, code []byte, guestPCCurr uint64, arch ArchInfo, abi ABIInfo, tr *trace.Logger) DisResult {
	dres := zeroed()

	if len(code) < 4 {
		dres.Len = 0
		dres.WhatNext = StopHere
		dres.JumpKind = ir.JumpNoDecode
		return dres
	}

	insn := binary.LittleEndian.Uint32(code)
	tr.DIP("disInstr(loongarch64): 0x%016x: 0x%08x", guestPCCurr, insn)

	c := &Context{
		SB:          sb,
		GuestPCCurr: guestPCCurr,
		Arch:        arch,
		ABI:         abi,
		Trace:       tr,
		dres:        &dres,
	}

	if consumed, ok := c.checkPreamble(code); ok {
		dres.Len = consumed
		return dres
	}

	if c.dispatch(insn) {
		if dres.WhatNext == Continue {
			state.PutPC(sb, ir.ConstU64(ir.TypeI64, guestPCCurr+4))
		}
		return dres
	}

	state.PutPC(sb, ir.ConstU64(ir.TypeI64, guestPCCurr))
	dres.Len = 0
	dres.WhatNext = StopHere
	dres.JumpKind = ir.JumpNoDecode
	tr.Diagnostic(guestPCCurr, insn)
	return dres
}
