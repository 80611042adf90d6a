// Package fields implements the pure bit-field extractors of spec.md §3:
// slicing fixed ranges out of a 32-bit LoongArch64 instruction encoding.
// None of these functions have side effects or consult any state; each
// input encoding maps to exactly one output value.
package fields

// Slice returns bits [min, max] (inclusive, 0-indexed from the LSB) of insn.
func Slice(insn uint32, max, min uint) uint32 {
	width := max - min + 1
	mask := uint32((uint64(1) << width) - 1)
	return (insn >> min) & mask
}

// SignExtend32 sign-extends the low `size` bits of imm to a full 32-bit value.
func SignExtend32(imm uint32, size uint) int32 {
	shift := 32 - size
	return int32(imm<<shift) >> shift
}

// SignExtend64 sign-extends the low `size` bits of imm to a full 64-bit value.
func SignExtend64(imm uint64, size uint) int64 {
	shift := 64 - size
	return int64(imm<<shift) >> shift
}

// Register index fields (5 bits, 0..31).
func Rd(insn uint32) uint32 { return Slice(insn, 4, 0) }
func Rj(insn uint32) uint32 { return Slice(insn, 9, 5) }
func Rk(insn uint32) uint32 { return Slice(insn, 14, 10) }
func Rfa(insn uint32) uint32 { return Slice(insn, 19, 15) }

// FP register index fields.
func Fd(insn uint32) uint32 { return Slice(insn, 4, 0) }
func Fj(insn uint32) uint32 { return Slice(insn, 9, 5) }
func Fk(insn uint32) uint32 { return Slice(insn, 14, 10) }
func Fa(insn uint32) uint32 { return Slice(insn, 19, 15) }

// Condition-code index fields (3 bits, 0..7).
func Cd(insn uint32) uint32 { return Slice(insn, 2, 0) }
func Cj(insn uint32) uint32 { return Slice(insn, 7, 5) }
func Ca(insn uint32) uint32 { return Slice(insn, 17, 15) }

// Unsigned bit-pattern immediates. Sign-extension, where architecturally
// required, is the emitter's responsibility (spec.md §3).
func Si12(insn uint32) uint32 { return Slice(insn, 21, 10) }
func Ui12(insn uint32) uint32 { return Slice(insn, 21, 10) }
func Si14(insn uint32) uint32 { return Slice(insn, 23, 10) }
func Si16(insn uint32) uint32 { return Slice(insn, 25, 10) }
func Si20(insn uint32) uint32 { return Slice(insn, 24, 5) }
func Ui5(insn uint32) uint32  { return Slice(insn, 14, 10) }
func Ui6(insn uint32) uint32  { return Slice(insn, 15, 10) }
func Sa2(insn uint32) uint32  { return Slice(insn, 16, 15) }
func Sa3(insn uint32) uint32  { return Slice(insn, 17, 15) }

// Bit-field insert/extract bound fields.
func LsbW(insn uint32) uint32 { return Slice(insn, 14, 10) }
func MsbW(insn uint32) uint32 { return Slice(insn, 20, 16) }
func LsbD(insn uint32) uint32 { return Slice(insn, 15, 10) }
func MsbD(insn uint32) uint32 { return Slice(insn, 21, 16) }

// Hints.
func Hint5(insn uint32) uint32  { return Slice(insn, 4, 0) }
func Hint15(insn uint32) uint32 { return Slice(insn, 14, 0) }

// Code field used by break/syscall.
func Code(insn uint32) uint32 { return Slice(insn, 14, 0) }

// Branch offsets, as raw (unscaled, unsigned) bit patterns; the emitter
// multiplies by 4 and sign-extends per spec.md §3.
func Offs16(insn uint32) uint32 { return Slice(insn, 25, 10) }
func Offs21(insn uint32) uint32 {
	return (Slice(insn, 4, 0) << 16) | Slice(insn, 25, 10)
}
func Offs26(insn uint32) uint32 {
	return (Slice(insn, 9, 0) << 16) | Slice(insn, 25, 10)
}

// FCSR sub-register id fields used by movgr2fcsr/movfcsr2gr.
func FcsrL(insn uint32) uint32 { return Slice(insn, 4, 0) }
func FcsrH(insn uint32) uint32 { return Slice(insn, 9, 5) }
