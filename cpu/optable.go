package cpu

// execFunc performs the semantics of one operation given its resolved
// addressing mode. It is responsible for consuming any operand bytes
// itself (via ResolveAddress/FetchOperand) — the table only records
// which mode and how many base cycles apply.
type execFunc func(p *Processor, mode AddrMode)

// instruction is a single decoded table entry: the operation to run,
// the addressing mode it runs under, and the base cycle cost to charge
// regardless of any branch/page-cross penalty (not modeled, see
// spec §5 and §9).
type instruction struct {
	name   string
	mode   AddrMode
	cycles uint64
	exec   execFunc
}

// opcodeTable is a dense 256-entry decode table. A nil entry means the
// opcode is not part of the documented NMOS-6502 instruction set and
// Step will return a DecodeError for it.
var opcodeTable [256]*instruction

func op(code uint8, name string, mode AddrMode, cycles uint64, fn execFunc) {
	opcodeTable[code] = &instruction{name: name, mode: mode, cycles: cycles, exec: fn}
}

func init() {
	op(0x69, "ADC", ModeIMM, 2, execADC)
	op(0x65, "ADC", ModeZPG, 3, execADC)
	op(0x75, "ADC", ModeZPGX, 4, execADC)
	op(0x6D, "ADC", ModeABS, 4, execADC)
	op(0x7D, "ADC", ModeABSX, 4, execADC)
	op(0x79, "ADC", ModeABSY, 4, execADC)
	op(0x61, "ADC", ModeXIND, 6, execADC)
	op(0x71, "ADC", ModeINDY, 5, execADC)

	op(0x29, "AND", ModeIMM, 2, execAND)
	op(0x25, "AND", ModeZPG, 3, execAND)
	op(0x35, "AND", ModeZPGX, 4, execAND)
	op(0x2D, "AND", ModeABS, 4, execAND)
	op(0x3D, "AND", ModeABSX, 4, execAND)
	op(0x39, "AND", ModeABSY, 4, execAND)
	op(0x21, "AND", ModeXIND, 6, execAND)
	op(0x31, "AND", ModeINDY, 5, execAND)

	op(0x0A, "ASL", ModeACC, 2, execASL)
	op(0x06, "ASL", ModeZPG, 5, execASL)
	op(0x16, "ASL", ModeZPGX, 6, execASL)
	op(0x0E, "ASL", ModeABS, 6, execASL)
	op(0x1E, "ASL", ModeABSX, 7, execASL)

	op(0x90, "BCC", ModeREL, 2, execBCC)
	op(0xB0, "BCS", ModeREL, 2, execBCS)
	op(0xF0, "BEQ", ModeREL, 2, execBEQ)

	op(0x24, "BIT", ModeZPG, 3, execBIT)
	op(0x2C, "BIT", ModeABS, 4, execBIT)

	op(0x30, "BMI", ModeREL, 2, execBMI)
	op(0xD0, "BNE", ModeREL, 2, execBNE)
	op(0x10, "BPL", ModeREL, 2, execBPL)

	op(0x00, "BRK", ModeIMPL, 7, execBRK)

	op(0x50, "BVC", ModeREL, 2, execBVC)
	op(0x70, "BVS", ModeREL, 2, execBVS)

	op(0x18, "CLC", ModeIMPL, 2, execCLC)
	op(0xD8, "CLD", ModeIMPL, 2, execCLD)
	op(0x58, "CLI", ModeIMPL, 2, execCLI)
	op(0xB8, "CLV", ModeIMPL, 2, execCLV)

	op(0xC9, "CMP", ModeIMM, 2, execCMP)
	op(0xC5, "CMP", ModeZPG, 3, execCMP)
	op(0xD5, "CMP", ModeZPGX, 4, execCMP)
	op(0xCD, "CMP", ModeABS, 4, execCMP)
	op(0xDD, "CMP", ModeABSX, 4, execCMP)
	op(0xD9, "CMP", ModeABSY, 4, execCMP)
	op(0xC1, "CMP", ModeXIND, 6, execCMP)
	op(0xD1, "CMP", ModeINDY, 5, execCMP)

	op(0xE0, "CPX", ModeIMM, 2, execCPX)
	op(0xE4, "CPX", ModeZPG, 3, execCPX)
	op(0xEC, "CPX", ModeABS, 4, execCPX)

	op(0xC0, "CPY", ModeIMM, 2, execCPY)
	op(0xC4, "CPY", ModeZPG, 3, execCPY)
	op(0xCC, "CPY", ModeABS, 4, execCPY)

	op(0xC6, "DEC", ModeZPG, 5, execDEC)
	op(0xD6, "DEC", ModeZPGX, 6, execDEC)
	op(0xCE, "DEC", ModeABS, 6, execDEC)
	op(0xDE, "DEC", ModeABSX, 7, execDEC)

	op(0xCA, "DEX", ModeIMPL, 2, execDEX)
	op(0x88, "DEY", ModeIMPL, 2, execDEY)

	op(0x49, "EOR", ModeIMM, 2, execEOR)
	op(0x45, "EOR", ModeZPG, 3, execEOR)
	op(0x55, "EOR", ModeZPGX, 4, execEOR)
	op(0x4D, "EOR", ModeABS, 4, execEOR)
	op(0x5D, "EOR", ModeABSX, 4, execEOR)
	op(0x59, "EOR", ModeABSY, 4, execEOR)
	op(0x41, "EOR", ModeXIND, 6, execEOR)
	op(0x51, "EOR", ModeINDY, 5, execEOR)

	op(0xE6, "INC", ModeZPG, 5, execINC)
	op(0xF6, "INC", ModeZPGX, 6, execINC)
	op(0xEE, "INC", ModeABS, 6, execINC)
	op(0xFE, "INC", ModeABSX, 7, execINC)

	op(0xE8, "INX", ModeIMPL, 2, execINX)
	op(0xC8, "INY", ModeIMPL, 2, execINY)

	op(0x4C, "JMP", ModeABS, 3, execJMP)
	op(0x6C, "JMP", ModeIND, 5, execJMP)

	op(0x20, "JSR", ModeABS, 6, execJSR)

	op(0xA9, "LDA", ModeIMM, 2, execLDA)
	op(0xA5, "LDA", ModeZPG, 3, execLDA)
	op(0xB5, "LDA", ModeZPGX, 4, execLDA)
	op(0xAD, "LDA", ModeABS, 4, execLDA)
	op(0xBD, "LDA", ModeABSX, 4, execLDA)
	op(0xB9, "LDA", ModeABSY, 4, execLDA)
	op(0xA1, "LDA", ModeXIND, 6, execLDA)
	op(0xB1, "LDA", ModeINDY, 5, execLDA)

	op(0xA2, "LDX", ModeIMM, 2, execLDX)
	op(0xA6, "LDX", ModeZPG, 3, execLDX)
	op(0xB6, "LDX", ModeZPGY, 4, execLDX)
	op(0xAE, "LDX", ModeABS, 4, execLDX)
	op(0xBE, "LDX", ModeABSY, 4, execLDX)

	op(0xA0, "LDY", ModeIMM, 2, execLDY)
	op(0xA4, "LDY", ModeZPG, 3, execLDY)
	op(0xB4, "LDY", ModeZPGX, 4, execLDY)
	op(0xAC, "LDY", ModeABS, 4, execLDY)
	op(0xBC, "LDY", ModeABSX, 4, execLDY)

	op(0x4A, "LSR", ModeACC, 2, execLSR)
	op(0x46, "LSR", ModeZPG, 5, execLSR)
	op(0x56, "LSR", ModeZPGX, 6, execLSR)
	op(0x4E, "LSR", ModeABS, 6, execLSR)
	op(0x5E, "LSR", ModeABSX, 7, execLSR)

	op(0xEA, "NOP", ModeIMPL, 2, execNOP)

	op(0x09, "ORA", ModeIMM, 2, execORA)
	op(0x05, "ORA", ModeZPG, 3, execORA)
	op(0x15, "ORA", ModeZPGX, 4, execORA)
	op(0x0D, "ORA", ModeABS, 4, execORA)
	op(0x1D, "ORA", ModeABSX, 4, execORA)
	op(0x19, "ORA", ModeABSY, 4, execORA)
	op(0x01, "ORA", ModeXIND, 6, execORA)
	op(0x11, "ORA", ModeINDY, 5, execORA)

	op(0x48, "PHA", ModeIMPL, 3, execPHA)
	op(0x08, "PHP", ModeIMPL, 3, execPHP)
	op(0x68, "PLA", ModeIMPL, 4, execPLA)
	op(0x28, "PLP", ModeIMPL, 4, execPLP)

	op(0x2A, "ROL", ModeACC, 2, execROL)
	op(0x26, "ROL", ModeZPG, 5, execROL)
	op(0x36, "ROL", ModeZPGX, 6, execROL)
	op(0x2E, "ROL", ModeABS, 6, execROL)
	op(0x3E, "ROL", ModeABSX, 7, execROL)

	op(0x6A, "ROR", ModeACC, 2, execROR)
	op(0x66, "ROR", ModeZPG, 5, execROR)
	op(0x76, "ROR", ModeZPGX, 6, execROR)
	op(0x6E, "ROR", ModeABS, 6, execROR)
	op(0x7E, "ROR", ModeABSX, 7, execROR)

	op(0x40, "RTI", ModeIMPL, 6, execRTI)
	op(0x60, "RTS", ModeIMPL, 6, execRTS)

	op(0xE9, "SBC", ModeIMM, 2, execSBC)
	op(0xE5, "SBC", ModeZPG, 3, execSBC)
	op(0xF5, "SBC", ModeZPGX, 4, execSBC)
	op(0xED, "SBC", ModeABS, 4, execSBC)
	op(0xFD, "SBC", ModeABSX, 4, execSBC)
	op(0xF9, "SBC", ModeABSY, 4, execSBC)
	op(0xE1, "SBC", ModeXIND, 6, execSBC)
	op(0xF1, "SBC", ModeINDY, 5, execSBC)

	op(0x38, "SEC", ModeIMPL, 2, execSEC)
	op(0xF8, "SED", ModeIMPL, 2, execSED)
	op(0x78, "SEI", ModeIMPL, 2, execSEI)

	op(0x85, "STA", ModeZPG, 3, execSTA)
	op(0x95, "STA", ModeZPGX, 4, execSTA)
	op(0x8D, "STA", ModeABS, 4, execSTA)
	op(0x9D, "STA", ModeABSX, 5, execSTA)
	op(0x99, "STA", ModeABSY, 5, execSTA)
	op(0x81, "STA", ModeXIND, 6, execSTA)
	op(0x91, "STA", ModeINDY, 6, execSTA)

	op(0x86, "STX", ModeZPG, 3, execSTX)
	op(0x96, "STX", ModeZPGY, 4, execSTX)
	op(0x8E, "STX", ModeABS, 4, execSTX)

	op(0x84, "STY", ModeZPG, 3, execSTY)
	op(0x94, "STY", ModeZPGX, 4, execSTY)
	op(0x8C, "STY", ModeABS, 4, execSTY)

	op(0xAA, "TAX", ModeIMPL, 2, execTAX)
	op(0xA8, "TAY", ModeIMPL, 2, execTAY)
	op(0xBA, "TSX", ModeIMPL, 2, execTSX)
	op(0x8A, "TXA", ModeIMPL, 2, execTXA)
	op(0x9A, "TXS", ModeIMPL, 2, execTXS)
	op(0x98, "TYA", ModeIMPL, 2, execTYA)
}
