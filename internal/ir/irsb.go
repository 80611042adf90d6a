package ir

// IRSB is the super-block the decoder appends statements into. One call to
// the decoder's entry point appends the statements for exactly one guest
// instruction (spec.md §1); the caller owns the IRSB across many such calls.
type IRSB struct {
	Stmts []Stmt
	temps []Type
}

// NewIRSB returns an empty super-block, as the host framework would hand the
// decoder a fresh (or in-progress) one per spec.md §6.
func NewIRSB() *IRSB {
	return &IRSB{}
}

// NewTemp allocates a fresh typed temporary.
func (s *IRSB) NewTemp(t Type) Temp {
	id := len(s.temps)
	s.temps = append(s.temps, t)
	return Temp{id: id, typ: t}
}

// Assign appends "temp := expr".
func (s *IRSB) Assign(t Temp, e *Expr) {
	if t.typ != e.typ {
		panic("ir.Assign: type mismatch")
	}
	s.Stmts = append(s.Stmts, Stmt{Kind: StmtWrTmp, Tmp: t, Expr: e})
}

// Put appends a guest-state write at a byte offset.
func (s *IRSB) Put(offset int, value *Expr) {
	s.Stmts = append(s.Stmts, Stmt{Kind: StmtPut, Offset: offset, Value: value})
}

// Store appends a little-endian guest-memory write.
func (s *IRSB) Store(addr, value *Expr) {
	s.Stmts = append(s.Stmts, Stmt{Kind: StmtStore, Addr: addr, Value: value})
}

// Exit appends a guarded exit: if cond evaluates true, control leaves the
// block for PC_curr+delta under the given jump kind. delta of 0 restarts
// the current instruction (used by the atomic-memop retry loop of
// spec.md §4.6); other deltas resume later in the stream.
func (s *IRSB) Exit(cond *Expr, delta int64, jk JumpKind) {
	if cond.typ != TypeI1 {
		panic("ir.Exit: condition must be I1")
	}
	s.Stmts = append(s.Stmts, Stmt{Kind: StmtExit, Cond: cond, ExitDelta: delta, ExitJumpKnd: jk})
}

// CAS appends "old := CAS(addr, expected -> new)"; old holds the value
// observed at addr before the attempt, regardless of success.
func (s *IRSB) CAS(old Temp, addr, expected, newVal *Expr) {
	s.Stmts = append(s.Stmts, Stmt{Kind: StmtCAS, CASOld: old, CASAddr: addr, CASExpected: expected, CASNew: newVal})
}

// LLSC appends a load-linked (storeVal == nil) or store-conditional
// (storeVal != nil) statement for the native LL/SC path of spec.md §4.6.
// result holds the loaded value for LL, or 1/0 success for SC.
func (s *IRSB) LLSC(result Temp, addr, storeVal *Expr) {
	s.Stmts = append(s.Stmts, Stmt{Kind: StmtLLSC, LLSCResult: result, LLSCAddr: addr, LLSCStoreVal: storeVal})
}

// Fence appends a memory or instruction barrier.
func (s *IRSB) Fence(kind FenceKind) {
	s.Stmts = append(s.Stmts, Stmt{Kind: StmtFence, Fence: kind})
}

// Call appends a statement-position helper call whose result is discarded
// (for a helper run only for its side effects).
func (s *IRSB) Call(e *Expr) {
	if e.kind != exprCCall {
		panic("ir.Call: expected a CCall expression")
	}
	s.Stmts = append(s.Stmts, Stmt{Kind: StmtCall, Expr: e})
}
