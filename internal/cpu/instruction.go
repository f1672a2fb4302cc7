package cpu

import (
	"fmt"
	"strings"
)

// mnemonics holds the assembly of every base opcode. Operands are written
// as placeholders, which Disassemble substitutes with the bytes that follow
// the opcode:
//
//	d8  = immediate byte    d16 = immediate word
//	a8  = $FF00 offset      a16 = address
//	r8  = signed offset
//
// The regular rows 0x40-0xBF are filled in by init.
var mnemonics = [256]string{
	0x00: "NOP", 0x01: "LD BC, d16", 0x02: "LD (BC), A", 0x03: "INC BC",
	0x04: "INC B", 0x05: "DEC B", 0x06: "LD B, d8", 0x07: "RLCA",
	0x08: "LD (a16), SP", 0x09: "ADD HL, BC", 0x0A: "LD A, (BC)", 0x0B: "DEC BC",
	0x0C: "INC C", 0x0D: "DEC C", 0x0E: "LD C, d8", 0x0F: "RRCA",

	0x10: "STOP", 0x11: "LD DE, d16", 0x12: "LD (DE), A", 0x13: "INC DE",
	0x14: "INC D", 0x15: "DEC D", 0x16: "LD D, d8", 0x17: "RLA",
	0x18: "JR r8", 0x19: "ADD HL, DE", 0x1A: "LD A, (DE)", 0x1B: "DEC DE",
	0x1C: "INC E", 0x1D: "DEC E", 0x1E: "LD E, d8", 0x1F: "RRA",

	0x20: "JR NZ, r8", 0x21: "LD HL, d16", 0x22: "LD (HL+), A", 0x23: "INC HL",
	0x24: "INC H", 0x25: "DEC H", 0x26: "LD H, d8", 0x27: "DAA",
	0x28: "JR Z, r8", 0x29: "ADD HL, HL", 0x2A: "LD A, (HL+)", 0x2B: "DEC HL",
	0x2C: "INC L", 0x2D: "DEC L", 0x2E: "LD L, d8", 0x2F: "CPL",

	0x30: "JR NC, r8", 0x31: "LD SP, d16", 0x32: "LD (HL-), A", 0x33: "INC SP",
	0x34: "INC (HL)", 0x35: "DEC (HL)", 0x36: "LD (HL), d8", 0x37: "SCF",
	0x38: "JR C, r8", 0x39: "ADD HL, SP", 0x3A: "LD A, (HL-)", 0x3B: "DEC SP",
	0x3C: "INC A", 0x3D: "DEC A", 0x3E: "LD A, d8", 0x3F: "CCF",

	0xC0: "RET NZ", 0xC1: "POP BC", 0xC2: "JP NZ, a16", 0xC3: "JP a16",
	0xC4: "CALL NZ, a16", 0xC5: "PUSH BC", 0xC6: "ADD A, d8", 0xC7: "RST 00H",
	0xC8: "RET Z", 0xC9: "RET", 0xCA: "JP Z, a16", 0xCB: "PREFIX CB",
	0xCC: "CALL Z, a16", 0xCD: "CALL a16", 0xCE: "ADC A, d8", 0xCF: "RST 08H",

	0xD0: "RET NC", 0xD1: "POP DE", 0xD2: "JP NC, a16", 0xD3: "ILLEGAL_D3",
	0xD4: "CALL NC, a16", 0xD5: "PUSH DE", 0xD6: "SUB d8", 0xD7: "RST 10H",
	0xD8: "RET C", 0xD9: "RETI", 0xDA: "JP C, a16", 0xDB: "ILLEGAL_DB",
	0xDC: "CALL C, a16", 0xDD: "ILLEGAL_DD", 0xDE: "SBC A, d8", 0xDF: "RST 18H",

	0xE0: "LDH (a8), A", 0xE1: "POP HL", 0xE2: "LD (C), A", 0xE3: "ILLEGAL_E3",
	0xE4: "ILLEGAL_E4", 0xE5: "PUSH HL", 0xE6: "AND d8", 0xE7: "RST 20H",
	0xE8: "ADD SP, r8", 0xE9: "JP (HL)", 0xEA: "LD (a16), A", 0xEB: "ILLEGAL_EB",
	0xEC: "ILLEGAL_EC", 0xED: "ILLEGAL_ED", 0xEE: "XOR d8", 0xEF: "RST 28H",

	0xF0: "LDH A, (a8)", 0xF1: "POP AF", 0xF2: "LD A, (C)", 0xF3: "DI",
	0xF4: "ILLEGAL_F4", 0xF5: "PUSH AF", 0xF6: "OR d8", 0xF7: "RST 30H",
	0xF8: "LD HL, SP+r8", 0xF9: "LD SP, HL", 0xFA: "LD A, (a16)", 0xFB: "EI",
	0xFC: "ILLEGAL_FC", 0xFD: "ILLEGAL_FD", 0xFE: "CP d8", 0xFF: "RST 38H",
}

// mnemonicsCB holds the assembly of every CB prefixed opcode.
var mnemonicsCB [256]string

// lengths holds the length in bytes of every base opcode,
// including its operands.
var lengths [256]uint8

var aluMnemonics = [8]string{"ADD A, ", "ADC A, ", "SUB ", "SBC A, ", "AND ", "XOR ", "OR ", "CP "}
var rotateMnemonics = [8]string{"RLC ", "RRC ", "RL ", "RR ", "SLA ", "SRA ", "SWAP ", "SRL "}

func init() {
	for i := 0x40; i < 0xC0; i++ {
		y, z := operand(i>>3&7), operand(i&7)
		switch {
		case i == 0x76:
			mnemonics[i] = "HALT"
		case i < 0x80:
			mnemonics[i] = "LD " + y.String() + ", " + z.String()
		default:
			mnemonics[i] = aluMnemonics[y] + z.String()
		}
	}

	for i := 0; i < 256; i++ {
		y, z := i>>3&7, operand(i&7)
		switch i >> 6 {
		case 0:
			mnemonicsCB[i] = rotateMnemonics[y] + z.String()
		case 1:
			mnemonicsCB[i] = fmt.Sprintf("BIT %d, %s", y, z)
		case 2:
			mnemonicsCB[i] = fmt.Sprintf("RES %d, %s", y, z)
		case 3:
			mnemonicsCB[i] = fmt.Sprintf("SET %d, %s", y, z)
		}

		name := mnemonics[i]
		switch {
		case strings.Contains(name, "d16"), strings.Contains(name, "a16"):
			lengths[i] = 3
		case strings.Contains(name, "d8"), strings.Contains(name, "a8"),
			strings.Contains(name, "r8"), i == 0x10, i == 0xCB:
			lengths[i] = 2
		default:
			lengths[i] = 1
		}
	}
}

// Disassemble decodes the instruction at the given address, returning its
// assembly and its length in bytes. Memory is read without advancing the
// CPU.
func (c *CPU) Disassemble(pc uint16) (string, uint16) {
	opcode := c.bus.Read(pc)
	if opcode == 0xCB {
		return mnemonicsCB[c.bus.Read(pc+1)], 2
	}

	name := mnemonics[opcode]
	low, high := c.bus.Read(pc+1), c.bus.Read(pc+2)
	switch {
	case strings.Contains(name, "d16"), strings.Contains(name, "a16"):
		word := fmt.Sprintf("$%04X", uint16(high)<<8|uint16(low))
		name = strings.NewReplacer("d16", word, "a16", word).Replace(name)
	case strings.Contains(name, "a8"):
		name = strings.Replace(name, "a8", fmt.Sprintf("$FF%02X", low), 1)
	case strings.Contains(name, "d8"):
		name = strings.Replace(name, "d8", fmt.Sprintf("$%02X", low), 1)
	case strings.Contains(name, "+r8"):
		name = strings.Replace(name, "+r8", fmt.Sprintf("%+d", int8(low)), 1)
	case strings.Contains(name, "r8"):
		name = strings.Replace(name, "r8", fmt.Sprintf("%+d", int8(low)), 1)
	}

	return name, uint16(lengths[opcode])
}
