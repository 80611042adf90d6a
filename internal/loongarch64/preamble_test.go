package loongarch64

import (
	"testing"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preambleBytes(selector uint32) []byte {
	out := make([]byte, 0, preambleTotalLen)
	for _, w := range []uint32{preamble0, preamble1, preamble2, preamble3, selector} {
		out = append(out, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return out
}

func TestCheckPreambleRequiresAllFourFixedWords(t *testing.T) {
	sb := ir.NewIRSB()
	c := &Context{SB: sb, dres: &DisResult{}}
	code := preambleBytes(selectorClientReq)
	code[4] ^= 0xFF // corrupt the second fixed word

	_, ok := c.checkPreamble(code)
	assert.False(t, ok)
}

func TestCheckPreambleRejectsUnknownSelector(t *testing.T) {
	sb := ir.NewIRSB()
	c := &Context{SB: sb, dres: &DisResult{}}
	_, ok := c.checkPreamble(preambleBytes(0xDEADBEEF))
	assert.False(t, ok)
}

func TestCheckPreambleNRAddrVariant(t *testing.T) {
	sb := ir.NewIRSB()
	dres := &DisResult{WhatNext: Continue}
	c := &Context{SB: sb, GuestPCCurr: 0x4000, dres: dres}

	consumed, ok := c.checkPreamble(preambleBytes(selectorNRAddr))
	require.True(t, ok)
	assert.Equal(t, preambleTotalLen, consumed)
	require.Len(t, sb.Stmts, 1)
	assert.Equal(t, ir.StmtPut, sb.Stmts[0].Kind)
	// NRAddr does not itself stop the block.
	assert.Equal(t, Continue, dres.WhatNext)
}

func TestCheckPreambleNoRedirVariant(t *testing.T) {
	sb := ir.NewIRSB()
	dres := &DisResult{}
	c := &Context{SB: sb, GuestPCCurr: 0x4000, dres: dres}

	consumed, ok := c.checkPreamble(preambleBytes(selectorNoRedir))
	require.True(t, ok)
	assert.Equal(t, preambleTotalLen, consumed)
	assert.Equal(t, StopHere, dres.WhatNext)
	assert.Equal(t, ir.JumpNoRedir, dres.JumpKind)
}

func TestCheckPreambleTooShortIsNoMatch(t *testing.T) {
	sb := ir.NewIRSB()
	c := &Context{SB: sb, dres: &DisResult{}}
	_, ok := c.checkPreamble(preambleBytes(selectorClientReq)[:preambleTotalLen-1])
	assert.False(t, ok)
}
