// Package trace prints the per-instruction disassembly line every emitter
// contributes when tracing is enabled (spec.md §4.2 step 1). It wraps
// log/slog the way rcornwell/S370's util/logger package wraps it: a thin
// handler around the standard library logger, not a bespoke formatter.
package trace

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger prints one disassembly line per decoded instruction when enabled.
// It is not part of the core contract (spec.md §4.2: "the content is not
// part of the core contract") -- it exists purely for human inspection, the
// same role DIP() plays in the original C source.
type Logger struct {
	enabled bool
	slog    *slog.Logger
}

// New returns a Logger writing to w when enabled is true. When enabled is
// false, DIP is a no-op and never touches w, matching the caller-supplied
// sigill_diag / trace flag of spec.md §6.
func New(w io.Writer, enabled bool) *Logger {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &Logger{enabled: enabled, slog: slog.New(h)}
}

// DIP formats and emits one disassembly line, mirroring the original
// source's DIP(...) macro name.
func (l *Logger) DIP(format string, args ...any) {
	if l == nil || !l.enabled {
		return
	}
	l.slog.Log(context.Background(), slog.LevelDebug, fmt.Sprintf(format, args...))
}

// Enabled reports whether tracing is on.
func (l *Logger) Enabled() bool { return l != nil && l.enabled }

// Diagnostic prints the binary bit-pattern diagnostic the top-level entry
// point emits on total decode failure when sigill_diag is set (spec.md §7).
func (l *Logger) Diagnostic(pc uint64, insn uint32) {
	if l == nil || !l.enabled {
		return
	}
	var buf [39]byte
	j := 0
	for i := 0; i < 32; i++ {
		if i > 0 && i&3 == 0 {
			buf[j] = ' '
			j++
		}
		bit := (insn >> (31 - i)) & 1
		if bit == 1 {
			buf[j] = '1'
		} else {
			buf[j] = '0'
		}
		j++
	}
	l.slog.Log(context.Background(), slog.LevelWarn,
		fmt.Sprintf("disInstr(loongarch64): unhandled instruction 0x%08x", insn))
	l.slog.Log(context.Background(), slog.LevelWarn,
		fmt.Sprintf("disInstr(loongarch64): %s", string(buf[:j])))
	_ = pc
}
