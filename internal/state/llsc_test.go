package state

import (
	"testing"

	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLSCScratchRoundTrips(t *testing.T) {
	sb := ir.NewIRSB()
	PutLLSCSize(sb, ir.ConstU64(ir.TypeI64, 8))
	PutLLSCAddr(sb, ir.ConstU64(ir.TypeI64, 0x1000))
	PutLLSCData(sb, ir.ConstU64(ir.TypeI64, 0xdead))

	require.Len(t, sb.Stmts, 3)
	assert.Equal(t, LLSCSizeOffset, sb.Stmts[0].Offset)
	assert.Equal(t, LLSCAddrOffset, sb.Stmts[1].Offset)
	assert.Equal(t, LLSCDataOffset, sb.Stmts[2].Offset)

	assert.Equal(t, ir.TypeI64, ReadLLSCSize().Type())
	assert.Equal(t, ir.TypeI64, ReadLLSCAddr().Type())
	assert.Equal(t, ir.TypeI64, ReadLLSCData().Type())
}
