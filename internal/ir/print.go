package ir

import "fmt"

// String renders an expression tree in a flat prefix notation, useful only
// for the manual-inspection CLI and test failure messages -- never parsed
// back in.
func (e *Expr) String() string {
	if e == nil {
		return "<nil>"
	}
	switch e.kind {
	case exprConst:
		return fmt.Sprintf("0x%x:%s", e.constVal, e.typ)
	case exprRdTmp:
		return fmt.Sprintf("t%d", e.tmp.id)
	case exprGet:
		return fmt.Sprintf("GET:%s(%d)", e.typ, e.stateOffset)
	case exprLoad:
		return fmt.Sprintf("LD%s(%s)", e.typ, e.loadAddr)
	case exprCCall:
		s := fmt.Sprintf("%s(", e.helperName)
		for i, a := range e.helperArgs {
			if i > 0 {
				s += ","
			}
			s += a.String()
		}
		return s + ")"
	case exprOp:
		s := e.op.String() + "("
		for i, a := range e.args {
			if a == nil {
				continue
			}
			if i > 0 {
				s += ","
			}
			s += a.String()
		}
		return s + ")"
	default:
		return "<?expr>"
	}
}

// String implements fmt.Stringer for diagnostic output only.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSub:
		return "Sub"
	case OpMul:
		return "Mul"
	case OpMulHS:
		return "MulHS"
	case OpMulHU:
		return "MulHU"
	case OpDivS:
		return "DivS"
	case OpDivU:
		return "DivU"
	case OpModS:
		return "ModS"
	case OpModU:
		return "ModU"
	case OpAnd:
		return "And"
	case OpOr:
		return "Or"
	case OpXor:
		return "Xor"
	case OpNot:
		return "Not"
	case OpNeg:
		return "Neg"
	case OpShl:
		return "Shl"
	case OpShrS:
		return "ShrS"
	case OpShrU:
		return "ShrU"
	case OpCmpEQ:
		return "CmpEQ"
	case OpCmpNE:
		return "CmpNE"
	case OpCmpLTS:
		return "CmpLTS"
	case OpCmpLTU:
		return "CmpLTU"
	case OpCmpLES:
		return "CmpLES"
	case OpCmpLEU:
		return "CmpLEU"
	case OpSignExtend:
		return "SignExtend"
	case OpZeroExtend:
		return "ZeroExtend"
	case OpTruncate:
		return "Truncate"
	case OpITE:
		return "ITE"
	case OpReinterpret:
		return "Reinterpret"
	case OpFAdd:
		return "FAdd"
	case OpFSub:
		return "FSub"
	case OpFMul:
		return "FMul"
	case OpFDiv:
		return "FDiv"
	case OpFMAdd:
		return "FMAdd"
	case OpFMSub:
		return "FMSub"
	case OpFSqrt:
		return "FSqrt"
	case OpFAbs:
		return "FAbs"
	case OpFNeg:
		return "FNeg"
	case OpFMax:
		return "FMax"
	case OpFMin:
		return "FMin"
	case OpFMaxA:
		return "FMaxA"
	case OpFMinA:
		return "FMinA"
	case OpFScaleB:
		return "FScaleB"
	case OpFLogB:
		return "FLogB"
	case OpFCopySign:
		return "FCopySign"
	case OpF32toF64:
		return "F32toF64"
	case OpF64toF32:
		return "F64toF32"
	case OpF32toI32S:
		return "F32toI32S"
	case OpF64toI32S:
		return "F64toI32S"
	case OpF32toI64S:
		return "F32toI64S"
	case OpF64toI64S:
		return "F64toI64S"
	case OpI32toF32S:
		return "I32toF32S"
	case OpI64toF32S:
		return "I64toF32S"
	case OpI32toF64S:
		return "I32toF64S"
	case OpI64toF64S:
		return "I64toF64S"
	case OpCmpF32:
		return "CmpF32"
	case OpCmpF64:
		return "CmpF64"
	default:
		return "INVALID"
	}
}

// String renders one statement for the manual-inspection CLI.
func (s Stmt) String() string {
	switch s.Kind {
	case StmtWrTmp:
		return fmt.Sprintf("t%d = %s", s.Tmp.id, s.Expr)
	case StmtPut:
		return fmt.Sprintf("PUT(%d) = %s", s.Offset, s.Value)
	case StmtStore:
		return fmt.Sprintf("ST(%s) = %s", s.Addr, s.Value)
	case StmtExit:
		return fmt.Sprintf("if (%s) exit-%s(delta=%d)", s.Cond, s.ExitJumpKnd, s.ExitDelta)
	case StmtCAS:
		return fmt.Sprintf("t%d = CAS(%s, expd=%s, new=%s)", s.CASOld.id, s.CASAddr, s.CASExpected, s.CASNew)
	case StmtLLSC:
		if s.LLSCStoreVal == nil {
			return fmt.Sprintf("t%d = LL(%s)", s.LLSCResult.id, s.LLSCAddr)
		}
		return fmt.Sprintf("t%d = SC(%s, %s)", s.LLSCResult.id, s.LLSCAddr, s.LLSCStoreVal)
	case StmtFence:
		if s.Fence == FenceInstruction {
			return "IBAR"
		}
		return "DBAR"
	case StmtCall:
		return fmt.Sprintf("CALL %s", s.Expr)
	default:
		return "<?stmt>"
	}
}
