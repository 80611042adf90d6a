// Package ir implements the host IR algebra that spec.md §6 treats as an
// opaque API supplied by the surrounding instrumentation framework: typed
// constants, unary/binary/ternary/quaternary expressions, loads, stores,
// temporaries, guest-state reads and writes, guarded exits, compare-and-swap,
// load-linked/store-conditional, memory fences and helper-function calls.
//
// This package exists so the module is self-contained; a real embedding
// would replace it with bindings to the host's actual IR library and the
// decoder package would not need to change its call sites.
package ir

// Type is the width/kind of an IR value, mirroring VEX's IRType enum as far
// as this decoder needs it.
type Type byte

const (
	TypeInvalid Type = iota
	TypeI1           // booleans produced by comparisons
	TypeI8
	TypeI16
	TypeI32
	TypeI64
	TypeF32
	TypeF64
)

// Bits returns the bit width of the type.
func (t Type) Bits() int {
	switch t {
	case TypeI1:
		return 1
	case TypeI8:
		return 8
	case TypeI16:
		return 16
	case TypeI32, TypeF32:
		return 32
	case TypeI64, TypeF64:
		return 64
	default:
		panic("ir: invalid type")
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TypeI1:
		return "I1"
	case TypeI8:
		return "I8"
	case TypeI16:
		return "I16"
	case TypeI32:
		return "I32"
	case TypeI64:
		return "I64"
	case TypeF32:
		return "F32"
	case TypeF64:
		return "F64"
	default:
		return "INVALID"
	}
}
