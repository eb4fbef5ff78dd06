package internal

import "fmt"

// Instruction is a decoded 16-bit opcode
type Instruction struct {
	Opcode uint16
	X      uint8  // the lower 4 bits of the high byte of the instruction
	Y      uint8  // the upper 4 bits of the low byte of the instruction
	N      uint8  // the lowest 4 bits of the instruction
	KK     uint8  // the lowest 8 bits of the instruction
	NNN    uint16 // the lowest 12 bits of the instruction
}

// Decode splits an opcode into its operand fields
func Decode(opcode uint16) Instruction {
	return Instruction{
		Opcode: opcode,
		X:      uint8((opcode >> 8) & 0x000F),
		Y:      uint8((opcode >> 4) & 0x000F),
		N:      uint8(opcode & 0x000F),
		KK:     uint8(opcode & 0x00FF),
		NNN:    opcode & 0x0FFF,
	}
}

// Family returns the top nibble of the opcode
func (in Instruction) Family() uint16 {
	return in.Opcode & 0xF000
}

// Mnemonic returns the assembly name of the instruction, or ??? for words
// that do not decode to a CHIP-8 instruction.
func (in Instruction) Mnemonic() string {
	switch in.Family() {
	case 0x0000:
		switch in.Opcode {
		case 0x00E0:
			return "CLS"
		case 0x00EE:
			return "RET"
		}
		return "SYS"
	case 0x1000, 0xB000:
		return "JP"
	case 0x2000:
		return "CALL"
	case 0x3000:
		return "SE"
	case 0x4000:
		return "SNE"
	case 0x5000:
		if in.N == 0 {
			return "SE"
		}
	case 0x6000, 0xA000:
		return "LD"
	case 0x7000:
		return "ADD"
	case 0x8000:
		switch in.N {
		case 0x0:
			return "LD"
		case 0x1:
			return "OR"
		case 0x2:
			return "AND"
		case 0x3:
			return "XOR"
		case 0x4:
			return "ADD"
		case 0x5:
			return "SUB"
		case 0x6:
			return "SHR"
		case 0x7:
			return "SUBN"
		case 0xE:
			return "SHL"
		}
	case 0x9000:
		if in.N == 0 {
			return "SNE"
		}
	case 0xC000:
		return "RND"
	case 0xD000:
		return "DRW"
	case 0xE000:
		switch in.KK {
		case 0x9E:
			return "SKP"
		case 0xA1:
			return "SKNP"
		}
	case 0xF000:
		switch in.KK {
		case 0x07, 0x0A, 0x15, 0x18, 0x29, 0x33, 0x55, 0x65:
			return "LD"
		case 0x1E:
			return "ADD"
		}
	}
	return "???"
}

// String formats the instruction with its operands, e.g. "LD V1, $05"
func (in Instruction) String() string {
	name := in.Mnemonic()
	if params := in.params(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

func (in Instruction) params() string {
	switch in.Family() {
	case 0x0000:
		if in.Opcode == 0x00E0 || in.Opcode == 0x00EE {
			return ""
		}
		return fmt.Sprintf("$%03X", in.NNN)
	case 0x1000, 0x2000:
		return fmt.Sprintf("$%03X", in.NNN)
	case 0xB000:
		return fmt.Sprintf("V0, $%03X", in.NNN)
	case 0x3000, 0x4000, 0x6000, 0x7000, 0xC000:
		return fmt.Sprintf("V%X, $%02X", in.X, in.KK)
	case 0x5000, 0x9000:
		if in.N != 0 {
			return fmt.Sprintf("$%04X", in.Opcode)
		}
		return fmt.Sprintf("V%X, V%X", in.X, in.Y)
	case 0x8000:
		if in.Mnemonic() != "???" {
			return fmt.Sprintf("V%X, V%X", in.X, in.Y)
		}
	case 0xA000:
		return fmt.Sprintf("I, $%03X", in.NNN)
	case 0xD000:
		return fmt.Sprintf("V%X, V%X, $%X", in.X, in.Y, in.N)
	case 0xE000:
		if in.KK == 0x9E || in.KK == 0xA1 {
			return fmt.Sprintf("V%X", in.X)
		}
	case 0xF000:
		switch in.KK {
		case 0x07:
			return fmt.Sprintf("V%X, DT", in.X)
		case 0x0A:
			return fmt.Sprintf("V%X, K", in.X)
		case 0x15:
			return fmt.Sprintf("DT, V%X", in.X)
		case 0x18:
			return fmt.Sprintf("ST, V%X", in.X)
		case 0x1E:
			return fmt.Sprintf("I, V%X", in.X)
		case 0x29:
			return fmt.Sprintf("F, V%X", in.X)
		case 0x33:
			return fmt.Sprintf("B, V%X", in.X)
		case 0x55:
			return fmt.Sprintf("[I], V%X", in.X)
		case 0x65:
			return fmt.Sprintf("V%X, [I]", in.X)
		}
	}
	return fmt.Sprintf("$%04X", in.Opcode)
}
