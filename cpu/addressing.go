package cpu

// AddrMode is one of the 13 addressing modes of the documented NMOS
// 6502 instruction set.
type AddrMode int

const (
	ModeACC  AddrMode = iota // Accumulator: operand is the A register.
	ModeABS                  // Absolute: next two bytes are a 16-bit address.
	ModeABSX                 // Absolute,X: ABS + X, 16-bit wrap.
	ModeABSY                 // Absolute,Y: ABS + Y, 16-bit wrap.
	ModeIMM                  // Immediate: next byte is the value.
	ModeIMPL                 // Implied: no operand.
	ModeIND                  // Indirect: ABS names a location holding the target (JMP only).
	ModeXIND                 // (zp,X): zero-page pointer wrapped by X, word there is the target.
	ModeINDY                 // (zp),Y: zero-page pointer, word there + Y is the target.
	ModeREL                  // Relative: signed displacement from the byte after the operand.
	ModeZPG                  // Zero page: next byte is a 0x00xx address.
	ModeZPGX                 // Zero page,X: next byte + X, wraps within the zero page.
	ModeZPGY                 // Zero page,Y: next byte + Y, wraps within the zero page.
)

// instructionLength returns the total instruction length in bytes
// (opcode plus operand bytes) for mode, used to validate PC advancement
// independent of execution (spec §8).
func instructionLength(mode AddrMode) uint16 {
	switch mode {
	case ModeIMPL, ModeACC:
		return 1
	case ModeIMM, ModeZPG, ModeZPGX, ModeZPGY, ModeXIND, ModeINDY, ModeREL:
		return 2
	case ModeABS, ModeABSX, ModeABSY, ModeIND:
		return 3
	}
	return 1
}

// ResolveAddress consumes the operand bytes for mode from the
// instruction stream (advancing PC as it goes) and returns the
// effective address named by that mode. It must not be called for
// ModeIMM, ModeACC, or ModeIMPL, none of which name an address.
func (p *Processor) ResolveAddress(mode AddrMode) uint16 {
	switch mode {
	case ModeZPG:
		return uint16(p.FetchByte())
	case ModeZPGX:
		return uint16(p.FetchByte()+p.X) & 0x00FF
	case ModeZPGY:
		return uint16(p.FetchByte()+p.Y) & 0x00FF
	case ModeABS:
		return p.FetchWord()
	case ModeABSX:
		return p.FetchWord() + uint16(p.X)
	case ModeABSY:
		return p.FetchWord() + uint16(p.Y)
	case ModeIND:
		ptr := p.FetchWord()
		// The classic 6502 indirect-jump page-wrap bug: if the pointer
		// sits at the end of a page, the high byte is fetched from the
		// start of the *same* page rather than the next one. Real NMOS
		// hardware does this; it is part of the documented JMP (IND)
		// behavior this spec targets, not an undocumented extension.
		lo := uint16(p.ReadByte(ptr))
		hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
		hi := uint16(p.ReadByte(hiAddr))
		return (hi << 8) | lo
	case ModeXIND:
		zp := p.FetchByte() + p.X
		lo := uint16(p.ReadByte(uint16(zp)))
		hi := uint16(p.ReadByte(uint16(zp + 1)))
		return (hi << 8) | lo
	case ModeINDY:
		zp := p.FetchByte()
		lo := uint16(p.ReadByte(uint16(zp)))
		hi := uint16(p.ReadByte(uint16(zp + 1)))
		return ((hi << 8) | lo) + uint16(p.Y)
	case ModeREL:
		disp := int8(p.FetchByte())
		return uint16(int32(p.PC) + int32(disp))
	}
	return 0
}

// FetchOperand consumes the operand for mode and returns its value.
// For ModeACC it returns A directly; for ModeIMM it returns the byte
// following the opcode; for every address-producing mode it resolves
// the address and reads the byte there. It must not be called for
// ModeIMPL or ModeREL, neither of which yields a readable value.
func (p *Processor) FetchOperand(mode AddrMode) uint8 {
	switch mode {
	case ModeACC:
		return p.A
	case ModeIMM:
		return p.FetchByte()
	default:
		return p.ReadByte(p.ResolveAddress(mode))
	}
}
