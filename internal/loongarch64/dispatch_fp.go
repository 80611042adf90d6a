package loongarch64

import "github.com/Loongson-Cloud-Community/valgrind-loongarch64/internal/fields"

// Second-level FP dispatch: the sub-switches hanging off
// dispatch00_0000_0100's 0b0101000/0b0101001/0b0110010/0b0110100..0b0111100
// cases, each keyed on SLICE(insn,14,10) (spec.md §4.4-§4.5).

func (c *Context) dispatchFPUnary(insn uint32) bool {
	fd, fj := fields.Fd(insn), fields.Fj(insn)
	switch fields.Slice(insn, 14, 10) {
	case 0b00001:
		c.emitFabs(false, fd, fj)
	case 0b00010:
		c.emitFabs(true, fd, fj)
	case 0b00101:
		c.emitFneg(false, fd, fj)
	case 0b00110:
		c.emitFneg(true, fd, fj)
	case 0b01001:
		c.emitFlogb(false, fd, fj)
	case 0b01010:
		c.emitFlogb(true, fd, fj)
	case 0b01101:
		c.emitFclass(false, fd, fj)
	case 0b01110:
		c.emitFclass(true, fd, fj)
	case 0b10001:
		c.emitFsqrt(false, fd, fj)
	case 0b10010:
		c.emitFsqrt(true, fd, fj)
	case 0b10101:
		c.emitFrecip(false, fd, fj)
	case 0b10110:
		c.emitFrecip(true, fd, fj)
	case 0b11001:
		c.emitFrsqrt(false, fd, fj)
	case 0b11010:
		c.emitFrsqrt(true, fd, fj)
	default:
		return false
	}
	return true
}

func (c *Context) dispatchFPMove(insn uint32) bool {
	fd, fj, rd, rj := fields.Fd(insn), fields.Fj(insn), fields.Rd(insn), fields.Rj(insn)
	switch fields.Slice(insn, 14, 10) {
	case 0b00101:
		c.emitFmov(false, fd, fj)
	case 0b00110:
		c.emitFmov(true, fd, fj)
	case 0b01001:
		c.emitMovgr2frW(fd, rj)
	case 0b01010:
		c.emitMovgr2frD(fd, rj)
	case 0b01011:
		c.emitMovgr2frhW(fd, rj)
	case 0b01101:
		c.emitMovfr2grS(rd, fj)
	case 0b01110:
		c.emitMovfr2grD(rd, fj)
	case 0b01111:
		c.emitMovfrh2grS(rd, fj)
	case 0b10000:
		c.emitMovgr2fcsr(fields.FcsrL(insn), rj)
	case 0b10010:
		c.emitMovfcsr2gr(rd, fields.FcsrH(insn))
	case 0b10100:
		if fields.Slice(insn, 4, 3) != 0 {
			return false
		}
		c.emitMovfr2cf(fields.Cd(insn), fj)
	case 0b10101:
		if fields.Slice(insn, 9, 8) != 0 {
			return false
		}
		c.emitMovcf2fr(fd, fields.Cj(insn))
	case 0b10110:
		if fields.Slice(insn, 4, 3) != 0 {
			return false
		}
		c.emitMovgr2cf(fields.Cd(insn), rj)
	case 0b10111:
		if fields.Slice(insn, 9, 8) != 0 {
			return false
		}
		c.emitMovcf2gr(rd, fields.Cj(insn))
	default:
		return false
	}
	return true
}

func (c *Context) dispatchFcvt(insn uint32) bool {
	fd, fj := fields.Fd(insn), fields.Fj(insn)
	switch fields.Slice(insn, 14, 10) {
	case 0b00110:
		c.emitFcvtSD(fd, fj)
	case 0b01001:
		c.emitFcvtDS(fd, fj)
	default:
		return false
	}
	return true
}

type ftintRoundGroup int

const (
	ftintGroupMinusPlus ftintRoundGroup = iota
	ftintGroupZeroNearest
)

// dispatchFtintRoundGroup covers the two sibling 7-bit cases that each pack
// two rounding modes together, selected by bit 4 of the 5-bit sub-selector
// (0 picks the group's first mode, 1 its second), with bit 3 choosing the
// w/l destination width and bit 1 the s/d source width -- exactly the
// layout the original's case lists for 0b0110100/0b0110101 lay out
// (spec.md §4.5).
func (c *Context) dispatchFtintRoundGroup(insn uint32, group ftintRoundGroup) bool {
	fd, fj := fields.Fd(insn), fields.Fj(insn)
	sel := fields.Slice(insn, 14, 10)
	wide := sel&0b01000 != 0
	double := sel&0b00010 != 0
	firstMode := sel&0b10000 == 0

	switch {
	case sel == 0b00001 || sel == 0b00010 || sel == 0b01001 || sel == 0b01010 ||
		sel == 0b10001 || sel == 0b10010 || sel == 0b11001 || sel == 0b11010:
		// valid selector shape, fall through to dispatch below
	default:
		return false
	}

	switch group {
	case ftintGroupMinusPlus:
		if firstMode {
			dispatchFtintVariant(c, wide, double, fd, fj, c.emitFtintrmWS, c.emitFtintrmWD, c.emitFtintrmLS, c.emitFtintrmLD)
		} else {
			dispatchFtintVariant(c, wide, double, fd, fj, c.emitFtintrpWS, c.emitFtintrpWD, c.emitFtintrpLS, c.emitFtintrpLD)
		}
	case ftintGroupZeroNearest:
		if firstMode {
			dispatchFtintVariant(c, wide, double, fd, fj, c.emitFtintrzWS, c.emitFtintrzWD, c.emitFtintrzLS, c.emitFtintrzLD)
		} else {
			dispatchFtintVariant(c, wide, double, fd, fj, c.emitFtintrneWS, c.emitFtintrneWD, c.emitFtintrneLS, c.emitFtintrneLD)
		}
	}
	return true
}

func dispatchFtintVariant(c *Context, wide, double bool, fd, fj uint32, ws, wd, ls, ld func(fd, fj uint32)) {
	switch {
	case !wide && !double:
		ws(fd, fj)
	case !wide && double:
		wd(fd, fj)
	case wide && !double:
		ls(fd, fj)
	default:
		ld(fd, fj)
	}
}

func (c *Context) dispatchFtintBare(insn uint32) bool {
	fd, fj := fields.Fd(insn), fields.Fj(insn)
	switch fields.Slice(insn, 14, 10) {
	case 0b00001:
		c.emitFtintWS(fd, fj)
	case 0b00010:
		c.emitFtintWD(fd, fj)
	case 0b01001:
		c.emitFtintLS(fd, fj)
	case 0b01010:
		c.emitFtintLD(fd, fj)
	default:
		return false
	}
	return true
}

func (c *Context) dispatchFfint(insn uint32) bool {
	fd, fj := fields.Fd(insn), fields.Fj(insn)
	switch fields.Slice(insn, 14, 10) {
	case 0b00100:
		c.emitFfintSW(fd, fj)
	case 0b00110:
		c.emitFfintSL(fd, fj)
	case 0b01000:
		c.emitFfintDW(fd, fj)
	case 0b01010:
		c.emitFfintDL(fd, fj)
	default:
		return false
	}
	return true
}

func (c *Context) dispatchFrint(insn uint32) bool {
	fd, fj := fields.Fd(insn), fields.Fj(insn)
	switch fields.Slice(insn, 14, 10) {
	case 0b10001:
		c.emitFrint(false, fd, fj)
	case 0b10010:
		c.emitFrint(true, fd, fj)
	default:
		return false
	}
	return true
}
