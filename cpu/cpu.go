// Package cpu implements the NMOS 6502 instruction set: opcode
// decoding, addressing-mode resolution, per-operation execution
// (including all status-flag side effects and binary-coded-decimal
// arithmetic), stack and vector conventions, and a deterministic
// per-step execution trace.
//
// Cycle timing here is base-cycle-only. Extra-cycle penalties for
// page-crossings or taken branches are not modeled; hardware IRQ/NMI
// delivery during execution is not modeled. Only the BRK software
// interrupt and Reset are.
package cpu

import (
	"phakebit/bus"
)

// Status register bit masks. Bit 5 is physically always 1 in pushes;
// bit 4 (B) is always set in copies pushed by BRK/PHP, and PLP/RTI
// clear it when loading the live register. Reset's initial P (0x36)
// has it set.
const (
	PNegative  = uint8(0x80)
	POverflow  = uint8(0x40)
	PAlways1   = uint8(0x20)
	PBreak     = uint8(0x10)
	PDecimal   = uint8(0x08)
	PInterrupt = uint8(0x04)
	PZero      = uint8(0x02)
	PCarry     = uint8(0x01)
)

// Vector addresses, conventional for the 6502 family.
const (
	NMIVector   = uint16(0xFFFA)
	ResetVector = uint16(0xFFFC)
	IRQVector   = uint16(0xFFFE)
)

// stackBase is the fixed page the stack lives in; SP names the offset
// within it.
const stackBase = uint16(0x0100)

// State is the externally visible lifecycle state of a Processor.
type State int

const (
	// StateUnpowered is a Processor that has never had Reset called.
	StateUnpowered State = iota
	// StateReset is a Processor immediately after Reset.
	StateReset
	// StateRunning is a Processor that has executed at least one Step
	// since its last Reset.
	StateRunning
)

// Processor holds the complete architectural state of an NMOS 6502:
// registers, flags, the cycle counter, and the bus it executes
// against. It is the single owner of that state; nothing outside the
// package mutates it directly.
type Processor struct {
	A, X, Y uint8
	SP      uint8
	P       uint8
	PC      uint16
	Cycles  uint64

	state State
	bus   bus.Bus
}

// New returns a Processor wired to the given bus. The Processor is not
// usable until Reset is called; the bus itself is expected to already
// be powered on (RAM filled, any devices attached) by the caller.
func New(b bus.Bus) *Processor {
	return &Processor{bus: b}
}

// Reset initializes registers to their documented post-reset values
// and loads PC from the reset vector. A=X=Y=0, SP=0xFF, and P=0x36:
// interrupts disabled (I), bit 5 and bit 4 (B) set, and, as this
// implementation's preserved historical quirk, Z set as well (see
// DESIGN.md's Open Questions entry).
func (p *Processor) Reset() {
	p.A, p.X, p.Y = 0, 0, 0
	p.SP = 0xFF
	p.P = 0x36
	p.Cycles = 0
	p.PC = p.ReadWord(ResetVector)
	p.state = StateReset
}

// State reports the Processor's current lifecycle state.
func (p *Processor) State() State {
	return p.state
}

// ReadByte reads a single byte from the bus. It never fails.
func (p *Processor) ReadByte(addr uint16) uint8 {
	return p.bus.Read(addr)
}

// WriteByte writes a single byte to the bus. It never fails.
func (p *Processor) WriteByte(addr uint16, val uint8) {
	p.bus.Write(addr, val)
}

// ReadWord reads a little-endian 16-bit word: low byte at addr, high
// byte at addr+1.
func (p *Processor) ReadWord(addr uint16) uint16 {
	lo := uint16(p.bus.Read(addr))
	hi := uint16(p.bus.Read(addr + 1))
	return (hi << 8) | lo
}

// WriteWord writes a little-endian 16-bit word: low byte at addr, high
// byte at addr+1.
func (p *Processor) WriteWord(addr uint16, val uint16) {
	p.bus.Write(addr, uint8(val&0xFF))
	p.bus.Write(addr+1, uint8(val>>8))
}

// FetchByte reads the byte at PC and advances PC by one.
func (p *Processor) FetchByte() uint8 {
	v := p.ReadByte(p.PC)
	p.PC++
	return v
}

// FetchWord reads the little-endian word at PC and advances PC by two.
func (p *Processor) FetchWord() uint16 {
	v := p.ReadWord(p.PC)
	p.PC += 2
	return v
}

// PushByte pushes val onto the stack (page 1) and decrements SP,
// wrapping modulo 256.
func (p *Processor) PushByte(val uint8) {
	p.bus.Write(stackBase+uint16(p.SP), val)
	p.SP--
}

// PopByte increments SP (wrapping modulo 256) and returns the byte now
// at the top of the stack.
func (p *Processor) PopByte() uint8 {
	p.SP++
	return p.bus.Read(stackBase + uint16(p.SP))
}

// PushWord pushes a 16-bit value high byte first, then low byte, so a
// subsequent PopWord yields the original value.
func (p *Processor) PushWord(val uint16) {
	p.PushByte(uint8(val >> 8))
	p.PushByte(uint8(val & 0xFF))
}

// PopWord pops a 16-bit value written by PushWord: low byte first, then
// high byte.
func (p *Processor) PopWord() uint16 {
	lo := uint16(p.PopByte())
	hi := uint16(p.PopByte())
	return (hi << 8) | lo
}

// IncrementCycles adds n to the running cycle counter.
func (p *Processor) IncrementCycles(n uint64) {
	p.Cycles += n
}

// Flag accessors. Each setter takes the raw semantics described in
// spec §4.2: setN looks at bit 7 of v, setZ at whether v is zero,
// setC/setD/setV take an explicit bool.

func (p *Processor) setN(v uint8) {
	p.setFlag(PNegative, v&0x80 != 0)
}

func (p *Processor) setZ(v uint8) {
	p.setFlag(PZero, v == 0)
}

func (p *Processor) setNZ(v uint8) {
	p.setN(v)
	p.setZ(v)
}

func (p *Processor) setC(set bool) {
	p.setFlag(PCarry, set)
}

func (p *Processor) setV(set bool) {
	p.setFlag(POverflow, set)
}

func (p *Processor) setD(set bool) {
	p.setFlag(PDecimal, set)
}

func (p *Processor) setFlag(mask uint8, set bool) {
	if set {
		p.P |= mask
	} else {
		p.P &^= mask
	}
}

// Flag reads the named bit of P as 0 or 1.
func (p *Processor) Flag(mask uint8) uint8 {
	if p.P&mask != 0 {
		return 1
	}
	return 0
}
