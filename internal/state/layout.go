// Package state describes the LoongArch64 guest register file (spec.md §3)
// as byte offsets into the caller's state struct, and provides the
// read/write accessors every emitter uses to reach it. The layout mirrors
// the offset-table idiom of wazevoapi.ExecutionContextOffsetData: a single
// source of truth for "where is field X", consulted by every lowering path
// instead of each emitter hand-rolling its own arithmetic.
package state

import "github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"

const wordSize = 8

// Offsets of the fields the decoder reads or writes, in bytes. Integer and
// FP register files are 32 entries of 8 bytes each; everything after them
// is a scalar or small array, laid out in declaration order.
const (
	GPRBase  = 0
	GPRCount = 32
	GPRSize  = GPRCount * wordSize // 256

	FPRBase  = GPRBase + GPRSize
	FPRCount = 32
	FPRSize  = FPRCount * wordSize // 256

	FCCBase  = FPRBase + FPRSize
	FCCCount = 8
	FCCSize  = FCCCount * 1 // one byte each, padded to 8

	FCSRBase = FCCBase + 8 // 4-byte FCSR word, offset kept 8-aligned

	PCOffset = FCSRBase + 8

	LLSCSizeOffset = PCOffset + wordSize
	LLSCAddrOffset = LLSCSizeOffset + wordSize
	LLSCDataOffset = LLSCAddrOffset + wordSize

	CMStartOffset = LLSCDataOffset + wordSize
	CMLenOffset   = CMStartOffset + wordSize

	NRAddrOffset = CMLenOffset + wordSize
)

// GPROffset returns the byte offset of integer register n (0..31).
func GPROffset(n uint32) int { return GPRBase + int(n)*wordSize }

// FPROffset returns the byte offset of FP register n (0..31).
func FPROffset(n uint32) int { return FPRBase + int(n)*wordSize }

// FCCOffset returns the byte offset of floating condition-code register n (0..7).
func FCCOffset(n uint32) int { return FCCBase + int(n) }

// ReadGPR reads integer register n at 64-bit width. Register 0 reads as the
// constant zero per spec.md §3, without emitting a Get.
func ReadGPR(n uint32) *ir.Expr {
	if n == 0 {
		return ir.ConstU64(ir.TypeI64, 0)
	}
	return ir.Get(GPROffset(n), ir.TypeI64)
}

// ReadGPR32 reads the low 32 bits of integer register n.
func ReadGPR32(n uint32) *ir.Expr {
	if n == 0 {
		return ir.ConstU64(ir.TypeI32, 0)
	}
	return ir.Unop(ir.OpTruncate, ir.TypeI32, ir.Get(GPROffset(n), ir.TypeI64))
}

// PutGPR appends a write to integer register n. Writes to register 0 are
// architectural no-ops: per spec.md §3's invariants, the IR must contain no
// Put statement for them at all, so PutGPR emits nothing when n is 0 and
// enforces the rule centrally for every emitter.
func PutGPR(sb *ir.IRSB, n uint32, value64 *ir.Expr) {
	if n == 0 {
		return
	}
	if value64.Type() != ir.TypeI64 {
		panic("state.PutGPR: integer register writes must be 64-bit")
	}
	sb.Put(GPROffset(n), value64)
}

// ReadFPR64/ReadFPR32 read FP register n at the given width. The 32-bit
// view is the low half per spec.md §3; to avoid spurious "undefined upper
// bits" reports from memory-checking tooling, the upper half is retrieved
// through a reinterpret round-trip rather than a narrow load (spec.md §3's
// FP sub-register invariant).
func ReadFPR64(n uint32) *ir.Expr {
	return ir.Get(FPROffset(n), ir.TypeF64)
}

func ReadFPR32(n uint32) *ir.Expr {
	whole := ir.Get(FPROffset(n), ir.TypeF64)
	asI64 := ir.Unop(ir.OpReinterpret, ir.TypeI64, whole)
	asI32 := ir.Unop(ir.OpTruncate, ir.TypeI32, asI64)
	return ir.Unop(ir.OpReinterpret, ir.TypeF32, asI32)
}

// PutFPR64 writes the full 64-bit FP register.
func PutFPR64(sb *ir.IRSB, n uint32, value *ir.Expr) {
	if value.Type() != ir.TypeF64 {
		panic("state.PutFPR64: expected F64")
	}
	sb.Put(FPROffset(n), value)
}

// PutFPR32 writes the low 32 bits of an FP register. Per spec.md §3 this
// goes through a reinterpret path (rather than a narrow Put) so that
// memory-checking tools see a single full-width write instead of a
// partial one that would make the untouched upper half look undefined.
func PutFPR32(sb *ir.IRSB, n uint32, value *ir.Expr) {
	if value.Type() != ir.TypeF32 {
		panic("state.PutFPR32: expected F32")
	}
	asI32 := ir.Unop(ir.OpReinterpret, ir.TypeI32, value)
	asI64 := ir.Unop(ir.OpZeroExtend, ir.TypeI64, asI32)
	sb.Put(FPROffset(n), ir.Unop(ir.OpReinterpret, ir.TypeF64, asI64))
}

// ReadFCC reads floating condition-code register n, widened to 8 bits.
func ReadFCC(n uint32) *ir.Expr {
	return ir.Get(FCCOffset(n), ir.TypeI8)
}

// PutFCC writes an 8-bit boolean (widened from I1 by the caller) to fcc[n].
func PutFCC(sb *ir.IRSB, n uint32, value *ir.Expr) {
	if value.Type() != ir.TypeI8 {
		panic("state.PutFCC: expected I8")
	}
	sb.Put(FCCOffset(n), value)
}

// ReadPC / PutPC access the architectural program counter. Writing PC is the
// sole mechanism for altering control flow (spec.md §3).
func ReadPC() *ir.Expr { return ir.Get(PCOffset, ir.TypeI64) }

func PutPC(sb *ir.IRSB, value *ir.Expr) {
	sb.Put(PCOffset, value)
}

// ReadNRAddr exposes the guest_NRADDR field the client-request preamble
// variant copies into register 11 (spec.md §4.9).
func ReadNRAddr() *ir.Expr { return ir.Get(NRAddrOffset, ir.TypeI64) }

// PutCMStart/PutCMLen record the self-modifying-code invalidation hint the
// IR-injection preamble variant emits (spec.md §4.9).
func PutCMStart(sb *ir.IRSB, value *ir.Expr) { sb.Put(CMStartOffset, value) }
func PutCMLen(sb *ir.IRSB, value *ir.Expr)   { sb.Put(CMLenOffset, value) }
