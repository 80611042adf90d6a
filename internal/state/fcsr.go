package state

import "github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"

// Get0/Put0 read and write the raw 32-bit FCSR word. Callers needing a
// sub-register projection use package fcsr, which is built on these.
func Get0() *ir.Expr { return ir.Get(FCSRBase, ir.TypeI32) }

func Put0(sb *ir.IRSB, value *ir.Expr) { sb.Put(FCSRBase, value) }
