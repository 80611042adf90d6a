package ir

// Op enumerates the unary/binary/ternary/quaternary operators this decoder
// schedules. The set is closed and mirrors the slice of VEX's Iop_* space
// that the LoongArch64 front end actually emits; unused Iop_* variants from
// the real IR are not modeled.
type Op int

const (
	OpInvalid Op = iota

	// Integer arithmetic (widths carried by the expression's Type, not the op).
	OpAdd
	OpSub
	OpMul
	OpMulHS // high half of signed multiply
	OpMulHU // high half of unsigned multiply
	OpDivS
	OpDivU
	OpModS
	OpModU
	OpAnd
	OpOr
	OpXor
	OpNot
	OpNeg
	OpShl
	OpShrS
	OpShrU

	// Comparisons, all yielding TypeI1.
	OpCmpEQ
	OpCmpNE
	OpCmpLTS
	OpCmpLTU
	OpCmpLES
	OpCmpLEU

	// Extension / truncation.
	OpSignExtend
	OpZeroExtend
	OpTruncate

	// Conditional select: ITE(cond, thenV, elseV).
	OpITE

	// Reinterpret bits across an integer/float type without conversion.
	OpReinterpret

	// Floating point arithmetic. Width comes from the expression Type
	// (TypeF32/TypeF64); all take an explicit leading IR rounding-mode operand
	// except Neg/Abs/Copysign which are exact.
	OpFAdd
	OpFSub
	OpFMul
	OpFDiv
	OpFMAdd // fused multiply-add: rm, a, b, c -> a*b+c
	OpFMSub
	OpFSqrt
	OpFAbs
	OpFNeg
	OpFMax
	OpFMin
	OpFMaxA // magnitude-based max
	OpFMinA
	OpFScaleB
	OpFLogB
	OpFCopySign

	// Float <-> float conversion with explicit rounding mode.
	OpF32toF64
	OpF64toF32

	// Float -> signed integer with explicit rounding mode, and back.
	OpF32toI32S
	OpF64toI32S
	OpF32toI64S
	OpF64toI64S
	OpI32toF32S
	OpI64toF32S
	OpI32toF64S
	OpI64toF64S

	// Float comparison, yielding a 2-bit IRCmpFResult-style category.
	OpCmpF32
	OpCmpF64
)

// CmpFResult values are what OpCmpF32/OpCmpF64 produce, matching VEX's
// IRCmpF32Result/IRCmpF64Result encoding (spec.md §4.4).
const (
	CmpFResultUN uint64 = 0x45
	CmpFResultLT uint64 = 0x01
	CmpFResultGT uint64 = 0x00
	CmpFResultEQ uint64 = 0x40
)

// Expr is a node in the typed expression tree. Expressions are immutable
// once built and may be shared by multiple statements within one IRSB.
type Expr struct {
	kind exprKind
	typ  Type

	// const
	constVal uint64

	// unop/binop/triop/qop
	op   Op
	args [4]*Expr

	// temp read
	tmp Temp

	// guest-state read
	stateOffset int

	// load
	loadAddr *Expr

	// helper call
	helperName string
	helperArgs []*Expr
}

type exprKind byte

const (
	exprConst exprKind = iota
	exprRdTmp
	exprOp
	exprGet
	exprLoad
	exprCCall
)

// Type returns the type of the value this expression produces.
func (e *Expr) Type() Type { return e.typ }

// ConstU64 builds an unsigned integer constant at the given width.
func ConstU64(t Type, v uint64) *Expr {
	switch t {
	case TypeI1:
		v &= 0x1
	case TypeI8:
		v &= 0xff
	case TypeI16:
		v &= 0xffff
	case TypeI32:
		v &= 0xffffffff
	case TypeI64:
	default:
		panic("ir.ConstU64: not an integer type")
	}
	return &Expr{kind: exprConst, typ: t, constVal: v}
}

// ConstF32/ConstF64 build floating point constants from their bit patterns.
func ConstF32Bits(bits uint32) *Expr {
	return &Expr{kind: exprConst, typ: TypeF32, constVal: uint64(bits)}
}

func ConstF64Bits(bits uint64) *Expr {
	return &Expr{kind: exprConst, typ: TypeF64, constVal: bits}
}

// ConstValue returns the raw bit pattern backing a constant expression.
// Reports false if e is not a constant; used by constant-folding helpers in the
// decoder (e.g. the shift-by-width degeneracy check of spec.md §9).
func (e *Expr) ConstValue() (uint64, bool) {
	if e.kind != exprConst {
		return 0, false
	}
	return e.constVal, true
}

// RdTmp reads back a previously assigned temporary.
func RdTmp(t Temp) *Expr {
	return &Expr{kind: exprRdTmp, typ: t.typ, tmp: t}
}

// Unop builds a single-argument typed expression.
func Unop(op Op, resultType Type, a *Expr) *Expr {
	return &Expr{kind: exprOp, typ: resultType, op: op, args: [4]*Expr{a}}
}

// Binop builds a two-argument typed expression.
func Binop(op Op, resultType Type, a, b *Expr) *Expr {
	return &Expr{kind: exprOp, typ: resultType, op: op, args: [4]*Expr{a, b}}
}

// Triop builds a three-argument typed expression (e.g. rounded FP ops).
func Triop(op Op, resultType Type, a, b, c *Expr) *Expr {
	return &Expr{kind: exprOp, typ: resultType, op: op, args: [4]*Expr{a, b, c}}
}

// Qop builds a four-argument typed expression (fused multiply-add family).
func Qop(op Op, resultType Type, a, b, c, d *Expr) *Expr {
	return &Expr{kind: exprOp, typ: resultType, op: op, args: [4]*Expr{a, b, c, d}}
}

// ITE builds a ternary if-then-else expression: cond must be TypeI1.
func ITE(cond, thenExpr, elseExpr *Expr) *Expr {
	if thenExpr.typ != elseExpr.typ {
		panic("ir.ITE: branch type mismatch")
	}
	return &Expr{kind: exprOp, typ: thenExpr.typ, op: OpITE, args: [4]*Expr{cond, thenExpr, elseExpr}}
}

// Get reads a guest-state field at the given byte offset and width.
func Get(offset int, t Type) *Expr {
	return &Expr{kind: exprGet, typ: t, stateOffset: offset}
}

// Load reads guest memory at addr (a 64-bit expression), little-endian,
// per spec.md §3 ("All use little-endian memory order").
func Load(t Type, addr *Expr) *Expr {
	return &Expr{kind: exprLoad, typ: t, loadAddr: addr}
}

// CCall schedules a pure helper-function call per spec.md §6's helper ABI:
// zero register parameters, 64-bit integer return, unused args left nil.
func CCall(name string, resultType Type, args ...*Expr) *Expr {
	return &Expr{kind: exprCCall, typ: resultType, helperName: name, helperArgs: args}
}

// Args returns the operand slots of an op-kind expression (unused slots nil).
func (e *Expr) Args() [4]*Expr { return e.args }

// Op returns the operator of an op-kind expression.
func (e *Expr) Op() Op { return e.op }

// StateOffset returns the guest-state offset of a Get expression.
func (e *Expr) StateOffset() int { return e.stateOffset }

// IsConst reports whether e is a constant expression.
func (e *Expr) IsConst() bool { return e.kind == exprConst }
