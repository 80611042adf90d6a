package loongarch64

import (
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/fields"
	"github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/ir"
)

// dispatch is the hierarchical opcode decoder of spec.md §4: a tree of
// switches over successively narrower bit-slices, mirroring the original's
// disInstr_LOONGARCH64_WRK/_00/_01/... family one level at a time instead
// of flattening into a single table, since the real encoding genuinely
// nests this way (each level peels off the bits the level above has
// already consumed). Returns false, emitting nothing, for any encoding not
// assigned a case -- callers turn that into NoDecode.
func (c *Context) dispatch(insn uint32) bool {
	switch fields.Slice(insn, 31, 30) {
	case 0b00:
		return c.dispatch00(insn)
	case 0b01:
		return c.dispatch01(insn)
	default:
		return false
	}
}

func (c *Context) dispatch00(insn uint32) bool {
	rd, rj := fields.Rd(insn), fields.Rj(insn)
	fd, fj, fk, fa := fields.Fd(insn), fields.Fj(insn), fields.Fk(insn), fields.Fa(insn)

	switch fields.Slice(insn, 29, 26) {
	case 0b0000:
		return c.dispatch00_0000(insn)

	case 0b0010:
		switch fields.Slice(insn, 25, 20) {
		case 0b000001:
			c.emitFmadd(false, fd, fj, fk, fa)
		case 0b000010:
			c.emitFmadd(true, fd, fj, fk, fa)
		case 0b000101:
			c.emitFmsub(false, fd, fj, fk, fa)
		case 0b000110:
			c.emitFmsub(true, fd, fj, fk, fa)
		case 0b001001:
			c.emitFnmadd(false, fd, fj, fk, fa)
		case 0b001010:
			c.emitFnmadd(true, fd, fj, fk, fa)
		case 0b001101:
			c.emitFnmsub(false, fd, fj, fk, fa)
		case 0b001110:
			c.emitFnmsub(true, fd, fj, fk, fa)
		default:
			return false
		}
		return true

	case 0b0011:
		switch fields.Slice(insn, 25, 20) {
		case 0b000001:
			if fields.Slice(insn, 4, 3) != 0 {
				return false
			}
			return c.emitFcmpByCond(fields.Slice(insn, 19, 15), false, fields.Cd(insn), fj, fk)
		case 0b000010:
			if fields.Slice(insn, 4, 3) != 0 {
				return false
			}
			return c.emitFcmpByCond(fields.Slice(insn, 19, 15), true, fields.Cd(insn), fj, fk)
		case 0b010000:
			if fields.Slice(insn, 19, 18) != 0 {
				return false
			}
			c.emitFsel(fd, fj, fk, fields.Ca(insn))
			return true
		default:
			return false
		}

	case 0b0100:
		c.emitAddu16iD(rd, rj, fields.Si16(insn))
		return true

	case 0b0101:
		si20 := fields.Si20(insn)
		if fields.Slice(insn, 25, 25) == 0 {
			c.emitLu12iW(rd, si20)
		} else {
			c.emitLu32iD(rd, si20)
		}
		return true

	case 0b0110:
		si20 := fields.Si20(insn)
		if fields.Slice(insn, 25, 25) == 0 {
			c.emitPcaddi(rd, si20)
		} else {
			c.emitPcalau12i(rd, si20)
		}
		return true

	case 0b0111:
		si20 := fields.Si20(insn)
		if fields.Slice(insn, 25, 25) == 0 {
			c.emitPcadduXXi(rd, si20, 12)
		} else {
			c.emitPcadduXXi(rd, si20, 18)
		}
		return true

	case 0b1000:
		si14 := fields.Si14(insn)
		switch fields.Slice(insn, 25, 24) {
		case 0b00:
			c.emitLL(false, rd, rj, si14)
		case 0b01:
			c.emitSC(false, rd, rj, si14)
		case 0b10:
			c.emitLL(true, rd, rj, si14)
		case 0b11:
			c.emitSC(true, rd, rj, si14)
		}
		return true

	case 0b1001:
		si14 := fields.Si14(insn)
		switch fields.Slice(insn, 25, 24) {
		case 0b00:
			c.emitLdptr(rd, rj, si14, ir.TypeI32)
		case 0b01:
			c.emitStptr(rd, rj, si14, ir.TypeI32)
		case 0b10:
			c.emitLdptr(rd, rj, si14, ir.TypeI64)
		case 0b11:
			c.emitStptr(rd, rj, si14, ir.TypeI64)
		}
		return true

	case 0b1010:
		return c.dispatch00_1010(insn)

	case 0b1110:
		switch fields.Slice(insn, 25, 22) {
		case 0b0000:
			return c.dispatch00_1110_0000(insn)
		case 0b0001:
			return c.dispatch00_1110_0001(insn)
		default:
			return false
		}

	default:
		return false
	}
}

func (c *Context) dispatch00_0000(insn uint32) bool {
	rd, rj := fields.Rd(insn), fields.Rj(insn)
	si12 := fields.Si12(insn)

	switch fields.Slice(insn, 25, 22) {
	case 0b0000:
		return c.dispatch00_0000_0000(insn)
	case 0b0001:
		return c.dispatch00_0000_0001(insn)
	case 0b0010:
		c.emitBstrinsD(rd, rj, fields.MsbD(insn), fields.LsbD(insn))
		return true
	case 0b0011:
		c.emitBstrpickD(rd, rj, fields.MsbD(insn), fields.LsbD(insn))
		return true
	case 0b0100:
		return c.dispatch00_0000_0100(insn)
	case 0b1000:
		c.emitSlti(rd, rj, si12)
		return true
	case 0b1001:
		c.emitSltui(rd, rj, si12)
		return true
	case 0b1010:
		c.emitAddiW(rd, rj, si12)
		return true
	case 0b1011:
		c.emitAddiD(rd, rj, si12)
		return true
	case 0b1100:
		c.emitLu52iD(rd, rj, si12)
		return true
	case 0b1101:
		c.emitLogicImm(ir.OpAnd, rd, rj, fields.Ui12(insn))
		return true
	case 0b1110:
		c.emitLogicImm(ir.OpOr, rd, rj, fields.Ui12(insn))
		return true
	case 0b1111:
		c.emitLogicImm(ir.OpXor, rd, rj, fields.Ui12(insn))
		return true
	default:
		return false
	}
}

func (c *Context) dispatch00_0000_0000(insn uint32) bool {
	rd, rj, rk := fields.Rd(insn), fields.Rj(insn), fields.Rk(insn)

	switch fields.Slice(insn, 21, 15) {
	case 0b0000000:
		switch fields.Slice(insn, 14, 10) {
		case 0b00100:
			c.emitClo32(rd, rj)
		case 0b00101:
			c.emitClz32(rd, rj)
		case 0b00110:
			c.emitCto32(rd, rj)
		case 0b00111:
			c.emitCtz32(rd, rj)
		case 0b01000:
			c.emitClo64(rd, rj)
		case 0b01001:
			c.emitClz64(rd, rj)
		case 0b01010:
			c.emitCto64(rd, rj)
		case 0b01011:
			c.emitCtz64(rd, rj)
		case 0b01100:
			c.emitRevb2h(rd, rj)
		case 0b01101:
			c.emitRevb4h(rd, rj)
		case 0b01110:
			c.emitRevb2w(rd, rj)
		case 0b01111:
			c.emitRevbD(rd, rj)
		case 0b10000:
			c.emitRevh2w(rd, rj)
		case 0b10001:
			c.emitRevhD(rd, rj)
		case 0b10010:
			c.emitBitrev4b(rd, rj)
		case 0b10011:
			c.emitBitrev8b(rd, rj)
		case 0b10100:
			c.emitBitrevW(rd, rj)
		case 0b10101:
			c.emitBitrevD(rd, rj)
		case 0b10110:
			c.emitExtW(ir.TypeI16, rd, rj)
		case 0b10111:
			c.emitExtW(ir.TypeI8, rd, rj)
		case 0b11000:
			c.emitRdtimelW(rd, rj)
		case 0b11001:
			c.emitRdtimehW(rd, rj)
		case 0b11010:
			c.emitRdtimeD(rd, rj)
		case 0b11011:
			c.emitCpucfg(rd, rj)
		default:
			return false
		}
		return true

	case 0b0000010:
		c.emitAsrtleD(rj, rk)
		return true
	case 0b0000011:
		c.emitAsrtgtD(rj, rk)
		return true
	case 0b0100000:
		c.emitAdd32(rd, rj, rk)
		return true
	case 0b0100001:
		c.emitAdd64(rd, rj, rk)
		return true
	case 0b0100010:
		c.emitSub32(rd, rj, rk)
		return true
	case 0b0100011:
		c.emitSub64(rd, rj, rk)
		return true
	case 0b0100100:
		c.emitSlt(rd, rj, rk)
		return true
	case 0b0100101:
		c.emitSltu(rd, rj, rk)
		return true
	case 0b0100110:
		c.emitMaskeqz(rd, rj, rk)
		return true
	case 0b0100111:
		c.emitMasknez(rd, rj, rk)
		return true
	case 0b0101000:
		c.emitNor(rd, rj, rk)
		return true
	case 0b0101001:
		c.emitBitBinop64(ir.OpAnd, rd, rj, rk)
		return true
	case 0b0101010:
		c.emitBitBinop64(ir.OpOr, rd, rj, rk)
		return true
	case 0b0101011:
		c.emitBitBinop64(ir.OpXor, rd, rj, rk)
		return true
	case 0b0101100:
		c.emitOrn(rd, rj, rk)
		return true
	case 0b0101101:
		c.emitAndn(rd, rj, rk)
		return true
	case 0b0101110:
		c.emitShift32(ir.OpShl, rd, rj, rk)
		return true
	case 0b0101111:
		c.emitShift32(ir.OpShrU, rd, rj, rk)
		return true
	case 0b0110000:
		c.emitShift32(ir.OpShrS, rd, rj, rk)
		return true
	case 0b0110001:
		c.emitShift64(ir.OpShl, rd, rj, rk)
		return true
	case 0b0110010:
		c.emitShift64(ir.OpShrU, rd, rj, rk)
		return true
	case 0b0110011:
		c.emitShift64(ir.OpShrS, rd, rj, rk)
		return true
	case 0b0110110:
		c.emitRotr32(rd, rj, rk)
		return true
	case 0b0110111:
		c.emitRotr64(rd, rj, rk)
		return true
	case 0b0111000:
		c.emitMul32(rd, rj, rk)
		return true
	case 0b0111001:
		c.emitMulh32(true, rd, rj, rk)
		return true
	case 0b0111010:
		c.emitMulh32(false, rd, rj, rk)
		return true
	case 0b0111011:
		c.emitMul64(rd, rj, rk)
		return true
	case 0b0111100:
		c.emitMulh64(true, rd, rj, rk)
		return true
	case 0b0111101:
		c.emitMulh64(false, rd, rj, rk)
		return true
	case 0b0111110:
		c.emitMulwD(true, rd, rj, rk)
		return true
	case 0b0111111:
		c.emitMulwD(false, rd, rj, rk)
		return true
	case 0b1000000:
		c.emitDivMod32(ir.OpDivS, rd, rj, rk)
		return true
	case 0b1000001:
		c.emitDivMod32(ir.OpModS, rd, rj, rk)
		return true
	case 0b1000010:
		c.emitDivMod32(ir.OpDivU, rd, rj, rk)
		return true
	case 0b1000011:
		c.emitDivMod32(ir.OpModU, rd, rj, rk)
		return true
	case 0b1000100:
		c.emitDivMod64(ir.OpDivS, rd, rj, rk)
		return true
	case 0b1000101:
		c.emitDivMod64(ir.OpModS, rd, rj, rk)
		return true
	case 0b1000110:
		c.emitDivMod64(ir.OpDivU, rd, rj, rk)
		return true
	case 0b1000111:
		c.emitDivMod64(ir.OpModU, rd, rj, rk)
		return true
	case 0b1001000:
		c.emitCrc("crc_w_b_w", rd, rj, rk)
		return true
	case 0b1001001:
		c.emitCrc("crc_w_h_w", rd, rj, rk)
		return true
	case 0b1001010:
		c.emitCrc("crc_w_w_w", rd, rj, rk)
		return true
	case 0b1001011:
		c.emitCrc("crc_w_d_w", rd, rj, rk)
		return true
	case 0b1001100:
		c.emitCrc("crcc_w_b_w", rd, rj, rk)
		return true
	case 0b1001101:
		c.emitCrc("crcc_w_h_w", rd, rj, rk)
		return true
	case 0b1001110:
		c.emitCrc("crcc_w_w_w", rd, rj, rk)
		return true
	case 0b1001111:
		c.emitCrc("crcc_w_d_w", rd, rj, rk)
		return true
	case 0b1010100:
		c.emitBreak()
		return true
	case 0b1010110:
		c.emitSyscall()
		return true
	}

	// Second switch, narrower than the original's single level, over the
	// alsl/bytepick group keyed on bits[21:18] (spec.md §4.1).
	switch fields.Slice(insn, 21, 18) {
	case 0b0001:
		if fields.Slice(insn, 17, 17) == 0 {
			c.emitAlslW(false, rd, rj, rk, fields.Sa2(insn))
		} else {
			c.emitAlslW(true, rd, rj, rk, fields.Sa2(insn))
		}
		return true
	case 0b0010:
		if fields.Slice(insn, 17, 17) == 0 {
			c.emitBytepickW(rd, rj, rk, fields.Sa2(insn))
			return true
		}
		return false
	case 0b0011:
		c.emitBytepickD(rd, rj, rk, fields.Sa3(insn))
		return true
	case 0b1011:
		if fields.Slice(insn, 17, 17) == 0 {
			c.emitAlslD(rd, rj, rk, fields.Sa2(insn))
			return true
		}
		return false
	default:
		return false
	}
}

func (c *Context) dispatch00_0000_0001(insn uint32) bool {
	rd, rj := fields.Rd(insn), fields.Rj(insn)

	if fields.Slice(insn, 21, 21) == 0 {
		switch fields.Slice(insn, 20, 16) {
		case 0b00000:
			if fields.Slice(insn, 15, 15) != 1 {
				return false
			}
			c.emitShiftImm32(ir.OpShl, rd, rj, fields.Ui5(insn))
		case 0b00001:
			c.emitShiftImm64(ir.OpShl, rd, rj, fields.Ui6(insn))
		case 0b00100:
			if fields.Slice(insn, 15, 15) != 1 {
				return false
			}
			c.emitShiftImm32(ir.OpShrU, rd, rj, fields.Ui5(insn))
		case 0b00101:
			c.emitShiftImm64(ir.OpShrU, rd, rj, fields.Ui6(insn))
		case 0b01000:
			if fields.Slice(insn, 15, 15) != 1 {
				return false
			}
			c.emitShiftImm32(ir.OpShrS, rd, rj, fields.Ui5(insn))
		case 0b01001:
			c.emitShiftImm64(ir.OpShrS, rd, rj, fields.Ui6(insn))
		case 0b01100:
			if fields.Slice(insn, 15, 15) != 1 {
				return false
			}
			c.emitRotriW(rd, rj, fields.Ui5(insn))
		case 0b01101:
			c.emitRotriD(rd, rj, fields.Ui6(insn))
		default:
			return false
		}
		return true
	}

	if fields.Slice(insn, 15, 15) == 0 {
		c.emitBstrinsW(rd, rj, fields.MsbW(insn), fields.LsbW(insn))
	} else {
		c.emitBstrpickW(rd, rj, fields.MsbW(insn), fields.LsbW(insn))
	}
	return true
}

func (c *Context) dispatch00_0000_0100(insn uint32) bool {
	fd, fj, fk := fields.Fd(insn), fields.Fj(insn), fields.Fk(insn)

	switch fields.Slice(insn, 21, 15) {
	case 0b0000001:
		c.emitFadd(false, fd, fj, fk)
	case 0b0000010:
		c.emitFadd(true, fd, fj, fk)
	case 0b0000101:
		c.emitFsub(false, fd, fj, fk)
	case 0b0000110:
		c.emitFsub(true, fd, fj, fk)
	case 0b0001001:
		c.emitFmul(false, fd, fj, fk)
	case 0b0001010:
		c.emitFmul(true, fd, fj, fk)
	case 0b0001101:
		c.emitFdiv(false, fd, fj, fk)
	case 0b0001110:
		c.emitFdiv(true, fd, fj, fk)
	case 0b0010001:
		c.emitFmax(false, fd, fj, fk)
	case 0b0010010:
		c.emitFmax(true, fd, fj, fk)
	case 0b0010101:
		c.emitFmin(false, fd, fj, fk)
	case 0b0010110:
		c.emitFmin(true, fd, fj, fk)
	case 0b0011001:
		c.emitFmaxa(false, fd, fj, fk)
	case 0b0011010:
		c.emitFmaxa(true, fd, fj, fk)
	case 0b0011101:
		c.emitFmina(false, fd, fj, fk)
	case 0b0011110:
		c.emitFmina(true, fd, fj, fk)
	case 0b0100001:
		c.emitFscaleb(false, fd, fj, fk)
	case 0b0100010:
		c.emitFscaleb(true, fd, fj, fk)
	case 0b0100101:
		c.emitFcopysign(false, fd, fj, fk)
	case 0b0100110:
		c.emitFcopysign(true, fd, fj, fk)

	case 0b0101000:
		return c.dispatchFPUnary(insn)
	case 0b0101001:
		return c.dispatchFPMove(insn)
	case 0b0110010:
		return c.dispatchFcvt(insn)
	case 0b0110100:
		return c.dispatchFtintRoundGroup(insn, ftintGroupMinusPlus)
	case 0b0110101:
		return c.dispatchFtintRoundGroup(insn, ftintGroupZeroNearest)
	case 0b0110110:
		return c.dispatchFtintBare(insn)
	case 0b0111010:
		return c.dispatchFfint(insn)
	case 0b0111100:
		return c.dispatchFrint(insn)

	default:
		return false
	}
	return true
}

func (c *Context) dispatch00_1010(insn uint32) bool {
	rd, rj, fd := fields.Rd(insn), fields.Rj(insn), fields.Fd(insn)
	si12 := fields.Si12(insn)

	switch fields.Slice(insn, 25, 22) {
	case 0b0000:
		c.emitLdB(rd, rj, si12)
	case 0b0001:
		c.emitLdH(rd, rj, si12)
	case 0b0010:
		c.emitLdW(rd, rj, si12)
	case 0b0011:
		c.emitLdD(rd, rj, si12)
	case 0b0100:
		c.emitStB(rd, rj, si12)
	case 0b0101:
		c.emitStH(rd, rj, si12)
	case 0b0110:
		c.emitStW(rd, rj, si12)
	case 0b0111:
		c.emitStD(rd, rj, si12)
	case 0b1000:
		c.emitLdBU(rd, rj, si12)
	case 0b1001:
		c.emitLdHU(rd, rj, si12)
	case 0b1010:
		c.emitLdWU(rd, rj, si12)
	case 0b1011:
		c.emitPreld()
	case 0b1100:
		c.emitFldS(fd, rj, si12)
	case 0b1101:
		c.emitFstS(fd, rj, si12)
	case 0b1110:
		c.emitFldD(fd, rj, si12)
	case 0b1111:
		c.emitFstD(fd, rj, si12)
	default:
		return false
	}
	return true
}

func (c *Context) dispatch00_1110_0000(insn uint32) bool {
	rd, rj, rk, fd := fields.Rd(insn), fields.Rj(insn), fields.Rk(insn), fields.Fd(insn)

	switch fields.Slice(insn, 21, 15) {
	case 0b0000000:
		c.emitLdxB(rd, rj, rk)
	case 0b0001000:
		c.emitLdxH(rd, rj, rk)
	case 0b0010000:
		c.emitLdxW(rd, rj, rk)
	case 0b0011000:
		c.emitLdxD(rd, rj, rk)
	case 0b0100000:
		c.emitStxB(rd, rj, rk)
	case 0b0101000:
		c.emitStxH(rd, rj, rk)
	case 0b0110000:
		c.emitStxW(rd, rj, rk)
	case 0b0111000:
		c.emitStxD(rd, rj, rk)
	case 0b1000000:
		c.emitLdxBU(rd, rj, rk)
	case 0b1001000:
		c.emitLdxHU(rd, rj, rk)
	case 0b1010000:
		c.emitLdxWU(rd, rj, rk)
	case 0b1011000:
		c.emitPreldx()
	case 0b1100000:
		c.emitFldxS(fd, rj, rk)
	case 0b1101000:
		c.emitFldxD(fd, rj, rk)
	case 0b1110000:
		c.emitFstxS(fd, rj, rk)
	case 0b1111000:
		c.emitFstxD(fd, rj, rk)
	default:
		return false
	}
	return true
}

func (c *Context) dispatch00_1110_0001(insn uint32) bool {
	rd, rj, rk, fd := fields.Rd(insn), fields.Rj(insn), fields.Rk(insn), fields.Fd(insn)

	switch fields.Slice(insn, 21, 15) {
	case 0b1000000:
		c.emitAtomicMemop(amSwap, false, false, rd, rk, rj)
	case 0b1000001:
		c.emitAtomicMemop(amSwap, true, false, rd, rk, rj)
	case 0b1000010:
		c.emitAtomicMemop(amAdd, false, false, rd, rk, rj)
	case 0b1000011:
		c.emitAtomicMemop(amAdd, true, false, rd, rk, rj)
	case 0b1000100:
		c.emitAtomicMemop(amAnd, false, false, rd, rk, rj)
	case 0b1000101:
		c.emitAtomicMemop(amAnd, true, false, rd, rk, rj)
	case 0b1000110:
		c.emitAtomicMemop(amOr, false, false, rd, rk, rj)
	case 0b1000111:
		c.emitAtomicMemop(amOr, true, false, rd, rk, rj)
	case 0b1001000:
		c.emitAtomicMemop(amXor, false, false, rd, rk, rj)
	case 0b1001001:
		c.emitAtomicMemop(amXor, true, false, rd, rk, rj)
	case 0b1001010:
		c.emitAtomicMemop(amMax, false, false, rd, rk, rj)
	case 0b1001011:
		c.emitAtomicMemop(amMax, true, false, rd, rk, rj)
	case 0b1001100:
		c.emitAtomicMemop(amMin, false, false, rd, rk, rj)
	case 0b1001101:
		c.emitAtomicMemop(amMin, true, false, rd, rk, rj)
	case 0b1001110:
		c.emitAtomicMemop(amMaxU, false, false, rd, rk, rj)
	case 0b1001111:
		c.emitAtomicMemop(amMaxU, true, false, rd, rk, rj)
	case 0b1010000:
		c.emitAtomicMemop(amMinU, false, false, rd, rk, rj)
	case 0b1010001:
		c.emitAtomicMemop(amMinU, true, false, rd, rk, rj)
	case 0b1010010:
		c.emitAtomicMemop(amSwap, false, true, rd, rk, rj)
	case 0b1010011:
		c.emitAtomicMemop(amSwap, true, true, rd, rk, rj)
	case 0b1010100:
		c.emitAtomicMemop(amAdd, false, true, rd, rk, rj)
	case 0b1010101:
		c.emitAtomicMemop(amAdd, true, true, rd, rk, rj)
	case 0b1010110:
		c.emitAtomicMemop(amAnd, false, true, rd, rk, rj)
	case 0b1010111:
		c.emitAtomicMemop(amAnd, true, true, rd, rk, rj)
	case 0b1011000:
		c.emitAtomicMemop(amOr, false, true, rd, rk, rj)
	case 0b1011001:
		c.emitAtomicMemop(amOr, true, true, rd, rk, rj)
	case 0b1011010:
		c.emitAtomicMemop(amXor, false, true, rd, rk, rj)
	case 0b1011011:
		c.emitAtomicMemop(amXor, true, true, rd, rk, rj)
	case 0b1011100:
		c.emitAtomicMemop(amMax, false, true, rd, rk, rj)
	case 0b1011101:
		c.emitAtomicMemop(amMax, true, true, rd, rk, rj)
	case 0b1011110:
		c.emitAtomicMemop(amMin, false, true, rd, rk, rj)
	case 0b1011111:
		c.emitAtomicMemop(amMin, true, true, rd, rk, rj)
	case 0b1100000:
		c.emitAtomicMemop(amMaxU, false, true, rd, rk, rj)
	case 0b1100001:
		c.emitAtomicMemop(amMaxU, true, true, rd, rk, rj)
	case 0b1100010:
		c.emitAtomicMemop(amMinU, false, true, rd, rk, rj)
	case 0b1100011:
		c.emitAtomicMemop(amMinU, true, true, rd, rk, rj)
	case 0b1100100:
		c.emitDbar()
	case 0b1100101:
		c.emitIbar()
	case 0b1101000:
		c.emitFldgtS(fd, rj, rk)
	case 0b1101001:
		c.emitFldgtD(fd, rj, rk)
	case 0b1101010:
		c.emitFldleS(fd, rj, rk)
	case 0b1101011:
		c.emitFldleD(fd, rj, rk)
	case 0b1101100:
		c.emitFstgtS(fd, rj, rk)
	case 0b1101101:
		c.emitFstgtD(fd, rj, rk)
	case 0b1101110:
		c.emitFstleS(fd, rj, rk)
	case 0b1101111:
		c.emitFstleD(fd, rj, rk)
	case 0b1110000:
		c.emitLdgt(rd, rj, rk, ir.TypeI8)
	case 0b1110001:
		c.emitLdgt(rd, rj, rk, ir.TypeI16)
	case 0b1110010:
		c.emitLdgt(rd, rj, rk, ir.TypeI32)
	case 0b1110011:
		c.emitLdgt(rd, rj, rk, ir.TypeI64)
	case 0b1110100:
		c.emitLdle(rd, rj, rk, ir.TypeI8)
	case 0b1110101:
		c.emitLdle(rd, rj, rk, ir.TypeI16)
	case 0b1110110:
		c.emitLdle(rd, rj, rk, ir.TypeI32)
	case 0b1110111:
		c.emitLdle(rd, rj, rk, ir.TypeI64)
	case 0b1111000:
		c.emitStgt(rd, rj, rk, ir.TypeI8)
	case 0b1111001:
		c.emitStgt(rd, rj, rk, ir.TypeI16)
	case 0b1111010:
		c.emitStgt(rd, rj, rk, ir.TypeI32)
	case 0b1111011:
		c.emitStgt(rd, rj, rk, ir.TypeI64)
	case 0b1111100:
		c.emitStle(rd, rj, rk, ir.TypeI8)
	case 0b1111101:
		c.emitStle(rd, rj, rk, ir.TypeI16)
	case 0b1111110:
		c.emitStle(rd, rj, rk, ir.TypeI32)
	case 0b1111111:
		c.emitStle(rd, rj, rk, ir.TypeI64)
	default:
		return false
	}
	return true
}

func (c *Context) dispatch01(insn uint32) bool {
	rd, rj := fields.Rd(insn), fields.Rj(insn)

	switch fields.Slice(insn, 29, 26) {
	case 0b0000:
		c.emitBeqz(rj, fields.Offs21(insn))
	case 0b0001:
		c.emitBnez(rj, fields.Offs21(insn))
	case 0b0010:
		switch fields.Slice(insn, 9, 8) {
		case 0b00:
			c.emitBceqz(fields.Cj(insn), fields.Offs21(insn))
		case 0b01:
			c.emitBcnez(fields.Cj(insn), fields.Offs21(insn))
		default:
			return false
		}
	case 0b0011:
		c.emitJirl(rd, rj, fields.Offs16(insn))
	case 0b0100:
		c.emitB(fields.Offs26(insn))
	case 0b0101:
		c.emitBl(fields.Offs26(insn))
	case 0b0110:
		c.emitBEq(rj, rd, fields.Offs16(insn))
	case 0b0111:
		c.emitBNe(rj, rd, fields.Offs16(insn))
	case 0b1000:
		c.emitBlt(true, rj, rd, fields.Offs16(insn))
	case 0b1001:
		c.emitBge(true, rj, rd, fields.Offs16(insn))
	case 0b1010:
		c.emitBlt(false, rj, rd, fields.Offs16(insn))
	case 0b1011:
		c.emitBge(false, rj, rd, fields.Offs16(insn))
	default:
		return false
	}
	return true
}
