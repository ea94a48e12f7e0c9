package cpu

// This file implements the semantics of every documented NMOS-6502
// operation. Each exec* function is handed its resolved addressing
// mode and is responsible for consuming any operand bytes itself
// (mirroring the split the teacher's cpu.go draws between address
// computation and operation, just collapsed to run in one call
// instead of spread across per-cycle ticks).

// execADC implements ADC in both binary and BCD mode. BCD correction
// follows http://6502.org/tutorials/decimal_mode.html: fix up the low
// nibble first, use its carry into the high-nibble sum, then fix up
// the high nibble. Z comes from the plain binary sum and N/V come from
// the sum with only the low-nibble fixup applied (not the high-nibble
// +0x60 one) -- that's the actual NMOS quirk, reproduced here rather
// than smoothed over.
func execADC(p *Processor, mode AddrMode) {
	val := p.FetchOperand(mode)
	carry := p.Flag(PCarry)

	if p.P&PDecimal != 0 {
		lo := (p.A & 0x0F) + (val & 0x0F) + carry
		if lo >= 0x0A {
			lo = ((lo + 0x06) & 0x0F) + 0x10
		}
		seq := (p.A & 0xF0) + (val & 0xF0) + lo
		sum := uint16(p.A&0xF0) + uint16(val&0xF0) + uint16(lo)
		if sum >= 0xA0 {
			sum += 0x60
		}
		bin := p.A + val + carry
		p.setV(((p.A ^ seq) & (val ^ seq) & 0x80) != 0)
		p.setC(sum > 0xFF)
		p.setN(seq)
		p.setZ(bin)
		p.A = uint8(sum & 0xFF)
		return
	}

	sum := uint16(p.A) + uint16(val) + uint16(carry)
	res := uint8(sum & 0xFF)
	p.setV(((p.A ^ res) & (val ^ res) & 0x80) != 0)
	p.setC(sum > 0xFF)
	p.setNZ(res)
	p.A = res
}

// execSBC implements SBC as ADC of the one's complement of the
// operand, which is bit-identical to subtraction in binary mode and
// carries the same V computation through decimal mode's correction.
func execSBC(p *Processor, mode AddrMode) {
	val := p.FetchOperand(mode)
	carry := p.Flag(PCarry)
	comp := ^val

	// Flags always come from the binary view: SBC(A, val, C) is
	// ADC(A, ~val, C), and that identity holds for C/V/N/Z even in
	// decimal mode (only the digits written back to A differ).
	binSum := uint16(p.A) + uint16(comp) + uint16(carry)
	binRes := uint8(binSum & 0xFF)
	p.setV(((p.A ^ binRes) & (comp ^ binRes) & 0x80) != 0)
	p.setC(binSum > 0xFF)
	p.setNZ(binRes)

	if p.P&PDecimal != 0 {
		al := int16(p.A&0x0F) - int16(val&0x0F) + int16(carry) - 1
		if al < 0 {
			al = ((al - 0x06) & 0x0F) - 0x10
		}
		res := int16(p.A&0xF0) - int16(val&0xF0) + al
		if res < 0 {
			res -= 0x60
		}
		p.A = uint8(res & 0xFF)
		return
	}

	p.A = binRes
}

func execAND(p *Processor, mode AddrMode) {
	p.A &= p.FetchOperand(mode)
	p.setNZ(p.A)
}

func execORA(p *Processor, mode AddrMode) {
	p.A |= p.FetchOperand(mode)
	p.setNZ(p.A)
}

func execEOR(p *Processor, mode AddrMode) {
	p.A ^= p.FetchOperand(mode)
	p.setNZ(p.A)
}

func execASL(p *Processor, mode AddrMode) {
	if mode == ModeACC {
		p.setC(p.A&0x80 != 0)
		p.A <<= 1
		p.setNZ(p.A)
		return
	}
	addr := p.ResolveAddress(mode)
	v := p.ReadByte(addr)
	p.setC(v&0x80 != 0)
	v <<= 1
	p.WriteByte(addr, v)
	p.setNZ(v)
}

func execLSR(p *Processor, mode AddrMode) {
	if mode == ModeACC {
		p.setC(p.A&0x01 != 0)
		p.A >>= 1
		p.setNZ(p.A)
		return
	}
	addr := p.ResolveAddress(mode)
	v := p.ReadByte(addr)
	p.setC(v&0x01 != 0)
	v >>= 1
	p.WriteByte(addr, v)
	p.setNZ(v)
}

func execROL(p *Processor, mode AddrMode) {
	oldCarry := p.Flag(PCarry)
	if mode == ModeACC {
		p.setC(p.A&0x80 != 0)
		p.A = (p.A << 1) | oldCarry
		p.setNZ(p.A)
		return
	}
	addr := p.ResolveAddress(mode)
	v := p.ReadByte(addr)
	p.setC(v&0x80 != 0)
	v = (v << 1) | oldCarry
	p.WriteByte(addr, v)
	p.setNZ(v)
}

func execROR(p *Processor, mode AddrMode) {
	oldCarry := p.Flag(PCarry)
	if mode == ModeACC {
		p.setC(p.A&0x01 != 0)
		p.A = (p.A >> 1) | (oldCarry << 7)
		p.setNZ(p.A)
		return
	}
	addr := p.ResolveAddress(mode)
	v := p.ReadByte(addr)
	p.setC(v&0x01 != 0)
	v = (v >> 1) | (oldCarry << 7)
	p.WriteByte(addr, v)
	p.setNZ(v)
}

func execLDA(p *Processor, mode AddrMode) {
	p.A = p.FetchOperand(mode)
	p.setNZ(p.A)
}

func execLDX(p *Processor, mode AddrMode) {
	p.X = p.FetchOperand(mode)
	p.setNZ(p.X)
}

func execLDY(p *Processor, mode AddrMode) {
	p.Y = p.FetchOperand(mode)
	p.setNZ(p.Y)
}

func execSTA(p *Processor, mode AddrMode) {
	p.WriteByte(p.ResolveAddress(mode), p.A)
}

func execSTX(p *Processor, mode AddrMode) {
	p.WriteByte(p.ResolveAddress(mode), p.X)
}

func execSTY(p *Processor, mode AddrMode) {
	p.WriteByte(p.ResolveAddress(mode), p.Y)
}

func execTAX(p *Processor, _ AddrMode) {
	p.X = p.A
	p.setNZ(p.X)
}

func execTAY(p *Processor, _ AddrMode) {
	p.Y = p.A
	p.setNZ(p.Y)
}

func execTXA(p *Processor, _ AddrMode) {
	p.A = p.X
	p.setNZ(p.A)
}

func execTYA(p *Processor, _ AddrMode) {
	p.A = p.Y
	p.setNZ(p.A)
}

func execTSX(p *Processor, _ AddrMode) {
	p.X = p.SP
	p.setNZ(p.X)
}

// execTXS does not update any flags, unlike every other transfer.
func execTXS(p *Processor, _ AddrMode) {
	p.SP = p.X
}

func execPHA(p *Processor, _ AddrMode) {
	p.PushByte(p.A)
}

// execPHP always pushes P with bits 4 and 5 set, regardless of the
// live B flag (which doesn't exist outside of pushed copies).
func execPHP(p *Processor, _ AddrMode) {
	p.PushByte(p.P | PBreak | PAlways1)
}

func execPLA(p *Processor, _ AddrMode) {
	p.A = p.PopByte()
	p.setNZ(p.A)
}

// execPLP loads P from the stack but forces the live B flag to 0;
// bit 5 reads back as 1 regardless of what was pushed, since it is
// physically always 1.
func execPLP(p *Processor, _ AddrMode) {
	p.P = (p.PopByte() &^ PBreak) | PAlways1
}

func execINC(p *Processor, mode AddrMode) {
	addr := p.ResolveAddress(mode)
	v := p.ReadByte(addr) + 1
	p.WriteByte(addr, v)
	p.setNZ(v)
}

func execDEC(p *Processor, mode AddrMode) {
	addr := p.ResolveAddress(mode)
	v := p.ReadByte(addr) - 1
	p.WriteByte(addr, v)
	p.setNZ(v)
}

func execINX(p *Processor, _ AddrMode) {
	p.X++
	p.setNZ(p.X)
}

func execDEX(p *Processor, _ AddrMode) {
	p.X--
	p.setNZ(p.X)
}

func execINY(p *Processor, _ AddrMode) {
	p.Y++
	p.setNZ(p.Y)
}

func execDEY(p *Processor, _ AddrMode) {
	p.Y--
	p.setNZ(p.Y)
}

func execCMP(p *Processor, mode AddrMode) {
	p.compare(p.A, p.FetchOperand(mode))
}

func execCPX(p *Processor, mode AddrMode) {
	p.compare(p.X, p.FetchOperand(mode))
}

func execCPY(p *Processor, mode AddrMode) {
	p.compare(p.Y, p.FetchOperand(mode))
}

// compare implements the shared CMP/CPX/CPY contract: reg is left
// unchanged, C is set iff reg >= val, N/Z come from reg-val mod 256.
func (p *Processor) compare(reg, val uint8) {
	res := reg - val
	p.setC(reg >= val)
	p.setNZ(res)
}

// execBIT tests A against a memory operand without altering A: Z comes
// from A&m, but N and V are copied directly from bits 7 and 6 of m.
func execBIT(p *Processor, mode AddrMode) {
	m := p.FetchOperand(mode)
	p.setZ(p.A & m)
	p.setFlag(PNegative, m&0x80 != 0)
	p.setFlag(POverflow, m&0x40 != 0)
}

func execBPL(p *Processor, mode AddrMode) { p.branchIf(mode, p.P&PNegative == 0) }
func execBMI(p *Processor, mode AddrMode) { p.branchIf(mode, p.P&PNegative != 0) }
func execBVC(p *Processor, mode AddrMode) { p.branchIf(mode, p.P&POverflow == 0) }
func execBVS(p *Processor, mode AddrMode) { p.branchIf(mode, p.P&POverflow != 0) }
func execBCC(p *Processor, mode AddrMode) { p.branchIf(mode, p.P&PCarry == 0) }
func execBCS(p *Processor, mode AddrMode) { p.branchIf(mode, p.P&PCarry != 0) }
func execBNE(p *Processor, mode AddrMode) { p.branchIf(mode, p.P&PZero == 0) }
func execBEQ(p *Processor, mode AddrMode) { p.branchIf(mode, p.P&PZero != 0) }

// branchIf consumes the relative-mode displacement unconditionally
// (it must advance PC past the operand either way) and, if taken,
// sets PC to the resolved target. No extra-cycle penalty is charged
// for a taken branch or a page crossing (spec Non-goals).
func (p *Processor) branchIf(mode AddrMode, take bool) {
	target := p.ResolveAddress(mode)
	if take {
		p.PC = target
	}
}

func execJMP(p *Processor, mode AddrMode) {
	p.PC = p.ResolveAddress(mode)
}

// execJSR pushes the address of the last byte of the JSR instruction
// (PC-1 after the operand has been fetched) and jumps to target.
func execJSR(p *Processor, mode AddrMode) {
	target := p.ResolveAddress(mode)
	p.PushWord(p.PC - 1)
	p.PC = target
}

// execRTS pops a return address and resumes one byte past it, undoing
// the -1 adjustment JSR made.
func execRTS(p *Processor, _ AddrMode) {
	p.PC = p.PopWord() + 1
}

// execBRK implements the software interrupt: skip the signature byte,
// push PC and P (with B and bit 5 set in the pushed copy), set I, and
// vector through IRQVector.
func execBRK(p *Processor, _ AddrMode) {
	p.PC++
	p.PushWord(p.PC)
	p.PushByte(p.P | PBreak | PAlways1)
	p.setFlag(PInterrupt, true)
	p.PC = p.ReadWord(IRQVector)
}

// execRTI pops P (forcing B to 0) and then PC, with no +1 adjustment
// (unlike RTS, since nothing was pre-decremented before the push).
func execRTI(p *Processor, _ AddrMode) {
	p.P = (p.PopByte() &^ PBreak) | PAlways1
	p.PC = p.PopWord()
}

func execCLC(p *Processor, _ AddrMode) { p.setFlag(PCarry, false) }
func execSEC(p *Processor, _ AddrMode) { p.setFlag(PCarry, true) }
func execCLI(p *Processor, _ AddrMode) { p.setFlag(PInterrupt, false) }
func execSEI(p *Processor, _ AddrMode) { p.setFlag(PInterrupt, true) }
func execCLV(p *Processor, _ AddrMode) { p.setFlag(POverflow, false) }
func execCLD(p *Processor, _ AddrMode) { p.setFlag(PDecimal, false) }
func execSED(p *Processor, _ AddrMode) { p.setFlag(PDecimal, true) }

// execNOP consumes its base cycles and nothing else.
func execNOP(p *Processor, _ AddrMode) {}
