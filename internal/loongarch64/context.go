// Package loongarch64 implements the LoongArch64 guest-to-IR front end of
// spec.md: the hierarchical opcode dispatcher, the magic-preamble
// recognizer, and the per-instruction semantics emitters. internal/ir,
// internal/state and internal/fcsr supply the typed building blocks this
// package assembles into one instruction's worth of IR per call.
package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/trace"
)

// HWCaps is the bitset of optional feature flags gating instruction families
// per spec.md §6 ("arch_info.hwcaps: a bitset {FP, LAM, UAL, CPUCFG, ...}").
type HWCaps uint32

const (
	HWCapFP HWCaps = 1 << iota
	HWCapLAM
	HWCapUAL
	HWCapCPUCFG
)

func (h HWCaps) Has(c HWCaps) bool { return h&c != 0 }

// ArchInfo carries the architecture-capability record spec.md §6 passes in.
type ArchInfo struct {
	HWCaps HWCaps
}

// ABIInfo carries the ABI record spec.md §6 passes in.
type ABIInfo struct {
	// UseFallbackLLSC selects the software LL/SC protocol of spec.md §4.6
	// over a single native ll/sc IR statement pair.
	UseFallbackLLSC bool
}

// Context bundles the per-decode-call state spec.md §5 calls out as
// "decoder-scoped values ... kept as process-wide mutable cells for
// convenience" in the original, and instructs a reimplementation to carry
// explicitly instead (spec.md §9's "Global decoder state" design note).
// Nothing here outlives one call to Decode.
type Context struct {
	SB               *ir.IRSB
	GuestPCCurr      uint64
	HostLittleEndian bool
	Arch             ArchInfo
	ABI              ABIInfo
	Trace            *trace.Logger

	dres *DisResult
}

// pcCurr returns the guest PC of the instruction currently being decoded,
// as a constant IR expression, for use in PC-relative emitters.
func (c *Context) pcCurrConst() *ir.Expr {
	return ir.ConstU64(ir.TypeI64, c.GuestPCCurr)
}
