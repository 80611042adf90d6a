// Command la64dis is a small manual-inspection tool (spec.md §6's ambient
// CLI): it reads a hex-encoded LoongArch64 instruction stream from a file
// or stdin, decodes it one instruction at a time, and prints the resulting
// IR statements and DisResult for each.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	getopt "github.com/pborman/getopt/v2"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/api"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
)

func main() {
	optInput := getopt.StringLong("input", 'i', "", "Path to a hex-encoded instruction stream (default: stdin)")
	optPCStr := getopt.StringLong("pc", 'p', "0x400000", "Guest PC of the first instruction")
	optUAL := getopt.BoolLong("ual", 0, "Set the unaligned-access HW capability")
	optLAM := getopt.BoolLong("lam", 0, "Set the atomic-memop HW capability")
	optTrace := getopt.BoolLong("trace", 't', "Print DIP-style trace lines")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var r io.Reader = os.Stdin
	if *optInput != "" {
		f, err := os.Open(*optInput)
		if err != nil {
			logger.Error("opening input", "err", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	code, err := readHexStream(r)
	if err != nil {
		logger.Error("reading instruction stream", "err", err)
		os.Exit(1)
	}

	arch := api.ArchInfo{HWCaps: api.HWCapFP | api.HWCapCPUCFG}
	if *optUAL {
		arch.HWCaps |= api.HWCapUAL
	}
	if *optLAM {
		arch.HWCaps |= api.HWCapLAM
	}

	pc, err := strconv.ParseUint(strings.TrimPrefix(*optPCStr, "0x"), 16, 64)
	if err != nil {
		logger.Error("parsing --pc", "err", err)
		os.Exit(1)
	}

	trace := api.NewTraceLogger(*optTrace)

	for len(code) > 0 {
		sb := api.NewIRSB()
		dres := api.Decode(code, api.Options{
			SB:          sb,
			GuestPCCurr: pc,
			Arch:        arch,
			Trace:       trace,
		})

		fmt.Printf("0x%016x: len=%d whatnext=%d jumpkind=%s\n", pc, dres.Len, dres.WhatNext, dres.JumpKind)
		printStmts(sb)

		if dres.Len <= 0 {
			break
		}
		code = code[dres.Len:]
		pc += uint64(dres.Len)
	}
}

func printStmts(sb *ir.IRSB) {
	for _, s := range sb.Stmts {
		fmt.Printf("  %s\n", s.String())
	}
}

// readHexStream accepts whitespace- and newline-separated hex bytes,
// tolerating a "0x" prefix per line, the loose format a human typing a
// scratch test case would produce.
func readHexStream(r io.Reader) ([]byte, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		line = strings.TrimPrefix(line, "0x")
		line = strings.ReplaceAll(line, " ", "")
		sb.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return hex.DecodeString(sb.String())
}
