package cpu

import (
	"bytes"
	"strings"
	"testing"
)

func TestCPU_Disassemble(t *testing.T) {
	tests := []struct {
		program  []uint8
		expected string
		length   uint16
	}{
		{[]uint8{0x00}, "NOP", 1},
		{[]uint8{0x01, 0x34, 0x12}, "LD BC, $1234", 3},
		{[]uint8{0x20, 0xFE}, "JR NZ, -2", 2},
		{[]uint8{0x3E, 0x42}, "LD A, $42", 2},
		{[]uint8{0xE0, 0x80}, "LDH ($FF80), A", 2},
		{[]uint8{0xF8, 0x05}, "LD HL, SP+5", 2},
		{[]uint8{0x10, 0x00}, "STOP", 2},
		{[]uint8{0x46}, "LD B, (HL)", 1},
		{[]uint8{0x76}, "HALT", 1},
		{[]uint8{0x9E}, "SBC A, (HL)", 1},
		{[]uint8{0xCF}, "RST 08H", 1},
		{[]uint8{0xCB, 0x7C}, "BIT 7, H", 2},
		{[]uint8{0xCB, 0x36}, "SWAP (HL)", 2},
		{[]uint8{0xD3}, "ILLEGAL_D3", 1},
	}

	for _, tt := range tests {
		c, _ := newTestCPU(tt.program...)
		name, length := c.Disassemble(0x0100)
		if name != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, name)
		}
		if length != tt.length {
			t.Errorf("%s: expected length %d, got %d", tt.expected, tt.length, length)
		}
	}
}

func TestCPU_MnemonicsComplete(t *testing.T) {
	for i := 0; i < 256; i++ {
		if mnemonics[i] == "" {
			t.Errorf("opcode 0x%02X has no mnemonic", i)
		}
		if mnemonicsCB[i] == "" {
			t.Errorf("CB opcode 0x%02X has no mnemonic", i)
		}
	}
}

func TestCPU_Dump(t *testing.T) {
	c, _ := newTestCPU(0xC3, 0x50, 0x01)

	var buf bytes.Buffer
	if err := c.Dump(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"(AF/BC/DE/HL/SP/PC): 01b0 0013 00d8 014d fffe 0100",
		"flags: Z-HC",
		"mode: running",
		"JP $0150",
		"c3 50 01",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected dump to contain %q, got:\n%s", want, out)
		}
	}
}

func TestCPU_Trace(t *testing.T) {
	var buf bytes.Buffer
	c, _ := newTestCPUWith([]Opt{WithTrace(&buf)}, 0x00, 0x3C)
	c.Step()
	c.Step()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 trace lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "0101  INC A") {
		t.Errorf("expected second line to trace INC A at 0x0101, got %q", lines[1])
	}
}

func TestCPU_Flags(t *testing.T) {
	c, _ := newTestCPU()
	c.setFlags(true, false, true, false)
	if c.F != 0xA0 {
		t.Errorf("expected F to be 0xA0, got 0x%02X", c.F)
	}

	c.setFlag(FlagCarry, true)
	c.setFlag(FlagZero, false)
	if c.F != 0x30 {
		t.Errorf("expected F to be 0x30, got 0x%02X", c.F)
	}

	conditions := []struct {
		cc       uint8
		expected bool
	}{
		{0, true}, {1, false}, {2, false}, {3, true},
	}
	for _, cond := range conditions {
		if c.condition(cond.cc) != cond.expected {
			t.Errorf("expected condition %d to be %t", cond.cc, cond.expected)
		}
	}
}

func TestState(t *testing.T) {
	c, _ := newTestCPU()
	s := c.State()

	if s.AF() != 0x01B0 || s.BC() != 0x0013 || s.DE() != 0x00D8 || s.HL() != 0x014D {
		t.Errorf("expected post boot register pairs, got %+v", s)
	}
	if s.Mode.String() != "running" {
		t.Errorf("expected mode running, got %s", s.Mode)
	}
}
