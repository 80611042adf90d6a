package loongarch64

import "github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"

// WhatNext tells the caller what to do once Decode returns, mirroring
// VEX's Dis_Continue/Dis_StopHere (spec.md §6).
type WhatNext byte

const (
	Continue WhatNext = iota
	StopHere
)

// Hint is always None in this core (spec.md §6); kept as a field so the
// DisResult shape matches the host contract exactly.
type Hint byte

const (
	HintNone Hint = iota
)

// DisResult describes what the caller should do after one Decode call:
// how many bytes were consumed, whether to keep decoding straight-line or
// stop, and if stopping, under which jump kind (spec.md §6).
type DisResult struct {
	Len      int
	WhatNext WhatNext
	JumpKind ir.JumpKind
	Hint     Hint
}

// zeroed returns the "freshly reset" DisResult the entry point starts each
// call from (spec.md §2's top-level entry point: "Zeros the result
// record"), matching the original's defaults of len=4, Dis_Continue,
// Ijk_INVALID.
func zeroed() DisResult {
	return DisResult{
		Len:      4,
		WhatNext: Continue,
		JumpKind: ir.JumpInvalid,
		Hint:     HintNone,
	}
}
