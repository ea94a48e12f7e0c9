package cpu

import "fmt"

// Trace is a plain-value snapshot of one Step, sufficient to print a
// disassembly line and to compare against a golden trace in tests.
// OperandPeek is a raw display value only — it is read after the
// opcode has been decoded but never influences execution, which has
// already happened by the time the Trace is built.
type Trace struct {
	PCBefore    uint16
	Opcode      uint8
	Operation   string
	Mode        AddrMode
	OperandPeek uint16
	A, X, Y, SP uint8
	P           uint8
	BaseCycles  uint64
}

// Step decodes and executes exactly one instruction: it captures PC
// before fetch, consumes the opcode and operand bytes, runs the
// operation (including all flag side effects), adds the base cycle
// count, and returns a Trace describing what happened.
//
// Step returns a DecodeError, leaving PC at the offending opcode byte,
// if the byte at PC isn't a documented opcode. It panics with
// InvalidStateError if called before Reset.
func (p *Processor) Step() (Trace, error) {
	if p.state == StateUnpowered {
		panic(InvalidStateError{Reason: "Step called before Reset"})
	}
	p.state = StateRunning

	pcBefore := p.PC
	opcode := p.ReadByte(p.PC)
	inst := opcodeTable[opcode]
	if inst == nil {
		return Trace{}, DecodeError{Opcode: opcode, PC: pcBefore}
	}
	p.PC++

	operandPeek := peekOperand(p, pcBefore, inst.mode)

	inst.exec(p, inst.mode)
	p.IncrementCycles(inst.cycles)

	return Trace{
		PCBefore:    pcBefore,
		Opcode:      opcode,
		Operation:   inst.name,
		Mode:        inst.mode,
		OperandPeek: operandPeek,
		A:           p.A,
		X:           p.X,
		Y:           p.Y,
		SP:          p.SP,
		P:           p.P,
		BaseCycles:  inst.cycles,
	}, nil
}

// peekOperand reads the raw operand byte(s) that follow the opcode at
// pcBefore, purely for display. It reads directly off the bus rather
// than through Fetch* so it never disturbs PC or any execution state.
func peekOperand(p *Processor, pcBefore uint16, mode AddrMode) uint16 {
	switch instructionLength(mode) {
	case 2:
		return uint16(p.ReadByte(pcBefore + 1))
	case 3:
		lo := uint16(p.ReadByte(pcBefore + 1))
		hi := uint16(p.ReadByte(pcBefore + 2))
		return (hi << 8) | lo
	default:
		return 0
	}
}

// flagString renders P as the conventional NV-BDIZC column, using '-'
// for bit 5 (always set, never meaningfully "off"); every other bit
// shows its letter when set and '.' when clear.
func flagString(p uint8) string {
	bits := []struct {
		mask byte
		ch   byte
	}{
		{PNegative, 'N'},
		{POverflow, 'V'},
		{0, '-'},
		{PBreak, 'B'},
		{PDecimal, 'D'},
		{PInterrupt, 'I'},
		{PZero, 'Z'},
		{PCarry, 'C'},
	}
	out := make([]byte, len(bits))
	for i, b := range bits {
		if b.mask == 0 {
			out[i] = '-'
			continue
		}
		if p&b.mask != 0 {
			out[i] = b.ch
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

// operandString renders the operand portion of a disassembly line in
// conventional 6502 syntax, e.g. "#$0F", "$D012", "$06,X".
func operandString(t Trace) string {
	switch t.Mode {
	case ModeACC:
		return "A"
	case ModeIMPL:
		return ""
	case ModeIMM:
		return fmt.Sprintf("#$%.2X", t.OperandPeek)
	case ModeZPG:
		return fmt.Sprintf("$%.2X", t.OperandPeek)
	case ModeZPGX:
		return fmt.Sprintf("$%.2X,X", t.OperandPeek)
	case ModeZPGY:
		return fmt.Sprintf("$%.2X,Y", t.OperandPeek)
	case ModeABS:
		return fmt.Sprintf("$%.4X", t.OperandPeek)
	case ModeABSX:
		return fmt.Sprintf("$%.4X,X", t.OperandPeek)
	case ModeABSY:
		return fmt.Sprintf("$%.4X,Y", t.OperandPeek)
	case ModeIND:
		return fmt.Sprintf("($%.4X)", t.OperandPeek)
	case ModeXIND:
		return fmt.Sprintf("($%.2X,X)", t.OperandPeek)
	case ModeINDY:
		return fmt.Sprintf("($%.2X),Y", t.OperandPeek)
	case ModeREL:
		target := t.PCBefore + 2 + uint16(int8(t.OperandPeek))
		return fmt.Sprintf("$%.4X", target)
	}
	return ""
}

// operandBytes renders the raw operand bytes in program order, 2 hex
// digits each, padded to a fixed width so trace lines line up.
func operandBytes(t Trace) string {
	switch instructionLength(t.Mode) {
	case 3:
		return fmt.Sprintf("%.2X %.2X", t.OperandPeek&0xFF, (t.OperandPeek>>8)&0xFF)
	case 2:
		return fmt.Sprintf("%.2X   ", t.OperandPeek&0xFF)
	default:
		return "     "
	}
}

// String formats a Trace as a single human-readable disassembly line:
// PC, opcode, operand bytes, mnemonic and operand, A X Y SP, the
// NV-BDIZC flag column, and the base cycle count.
func (t Trace) String() string {
	mnemonic := fmt.Sprintf("%s %s", t.Operation, operandString(t))
	return fmt.Sprintf("%.4X  %.2X  %s  %-12s A:%.2X X:%.2X Y:%.2X SP:%.2X  %s  %d",
		t.PCBefore, t.Opcode, operandBytes(t), mnemonic,
		t.A, t.X, t.Y, t.SP, flagString(t.P), t.BaseCycles)
}
