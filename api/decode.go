// Package api is the public entry point of spec.md §6: given a guest
// instruction stream, architecture/ABI info, and an IRSB to append to, it
// decodes exactly one LoongArch64 instruction into that IRSB and reports
// how many bytes were consumed and what the caller should do next.
package api

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/loongarch64"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/trace"
)

// Re-exported so callers need import only this package for the core types
// spec.md §6 names.
type (
	ArchInfo  = loongarch64.ArchInfo
	ABIInfo   = loongarch64.ABIInfo
	HWCaps    = loongarch64.HWCaps
	DisResult = loongarch64.DisResult
	WhatNext  = loongarch64.WhatNext
	IRSB      = ir.IRSB
)

const (
	HWCapFP     = loongarch64.HWCapFP
	HWCapLAM    = loongarch64.HWCapLAM
	HWCapUAL    = loongarch64.HWCapUAL
	HWCapCPUCFG = loongarch64.HWCapCPUCFG

	Continue = loongarch64.Continue
	StopHere = loongarch64.StopHere
)

// NewIRSB returns an empty super-block for a caller to decode one or more
// instructions into.
func NewIRSB() *IRSB { return ir.NewIRSB() }

// NewTraceLogger returns a trace.Logger writing to os.Stderr (nil writer)
// when enabled, or a permanently silent one otherwise.
func NewTraceLogger(enabled bool) *trace.Logger { return trace.New(nil, enabled) }

// Options bundles everything Decode needs beyond the raw bytes (spec.md
// §6): the guest PC of the instruction at code[0], the running super-block
// to append to, the architecture/ABI capability records, and an optional
// trace logger for the human-readable disassembly/diagnostic output.
type Options struct {
	SB          *IRSB
	GuestPCCurr uint64
	Arch        ArchInfo
	ABI         ABIInfo
	Trace       *trace.Logger
}

// Decode decodes exactly one instruction from code (which must have at
// least 4 bytes, or 20 for a preamble match) into opts.SB.
func Decode(code []byte, opts Options) DisResult {
	return loongarch64.Decode(opts.SB, code, opts.GuestPCCurr, opts.Arch, opts.ABI, opts.Trace)
}
