package api

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDelegatesToTheInternalDecoder(t *testing.T) {
	// add.w $r4, $r5, $r6
	insn := (uint32(0b0100000) << 15) | (6 << 10) | (5 << 5) | 4
	code := make([]byte, 4)
	binary.LittleEndian.PutUint32(code, insn)

	sb := NewIRSB()
	dres := Decode(code, Options{
		SB:          sb,
		GuestPCCurr: 0x400000,
		Arch:        ArchInfo{HWCaps: HWCapFP | HWCapCPUCFG},
	})

	require.Equal(t, 4, dres.Len)
	assert.Equal(t, Continue, dres.WhatNext)
	assert.NotEmpty(t, sb.Stmts)
}

func TestDecodeRejectsTruncatedInput(t *testing.T) {
	sb := NewIRSB()
	dres := Decode([]byte{0x01, 0x02}, Options{SB: sb, GuestPCCurr: 0x400000})
	assert.Equal(t, 0, dres.Len)
	assert.Equal(t, StopHere, dres.WhatNext)
}

func TestNewTraceLoggerDisabledReturnsALogger(t *testing.T) {
	tr := NewTraceLogger(false)
	require.NotNil(t, tr)
}
