package state

import "github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"

// LLSC scratch fields back the software-fallback load-linked/
// store-conditional protocol of spec.md §4.6: the width, address and value
// of the most recent "ll" on this guest thread.

func ReadLLSCSize() *ir.Expr { return ir.Get(LLSCSizeOffset, ir.TypeI64) }
func ReadLLSCAddr() *ir.Expr { return ir.Get(LLSCAddrOffset, ir.TypeI64) }
func ReadLLSCData() *ir.Expr { return ir.Get(LLSCDataOffset, ir.TypeI64) }

func PutLLSCSize(sb *ir.IRSB, v *ir.Expr) { sb.Put(LLSCSizeOffset, v) }
func PutLLSCAddr(sb *ir.IRSB, v *ir.Expr) { sb.Put(LLSCAddrOffset, v) }
func PutLLSCData(sb *ir.IRSB, v *ir.Expr) { sb.Put(LLSCDataOffset, v) }
