package timer

import (
	"testing"

	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/types"
)

func newTestTimer() (*Controller, *interrupts.Service, *types.HardwareRegisters) {
	irq := interrupts.NewService()
	regs := &types.HardwareRegisters{}
	return NewController(irq, regs), irq, regs
}

func TestController_Div(t *testing.T) {
	c, _, regs := newTestTimer()

	c.Tick(252)
	c.Tick(4)
	if regs.Read(types.DIV) != 1 {
		t.Errorf("expected DIV to be 1 after 256 cycles, got %d", regs.Read(types.DIV))
	}

	regs.Write(types.DIV, 0x42)
	if c.Div() != 0 {
		t.Errorf("expected a write to DIV to reset the divider, got 0x%04X", c.Div())
	}
}

func TestController_Frequencies(t *testing.T) {
	tests := []struct {
		tac    uint8
		period int
	}{
		{0x04, 1024},
		{0x05, 16},
		{0x06, 64},
		{0x07, 256},
	}

	for _, tt := range tests {
		c, _, regs := newTestTimer()
		regs.Write(types.TAC, tt.tac)

		for i := 0; i < tt.period*10; i += 4 {
			c.TickM()
		}
		if got := regs.Read(types.TIMA); got != 10 {
			t.Errorf("TAC 0x%02X: expected TIMA to be 10, got %d", tt.tac, got)
		}
	}
}

func TestController_Disabled(t *testing.T) {
	c, _, regs := newTestTimer()
	regs.Write(types.TAC, 0x01)
	c.Tick(200)
	if regs.Read(types.TIMA) != 0 {
		t.Errorf("expected TIMA to stay at 0 while disabled")
	}
	if regs.Read(types.TAC) != 0xF9 {
		t.Errorf("expected TAC to read 0xF9, got 0x%02X", regs.Read(types.TAC))
	}
}

func TestController_Overflow(t *testing.T) {
	c, irq, regs := newTestTimer()
	regs.Write(types.TMA, 0xF0)
	regs.Write(types.TIMA, 0xFF)
	regs.Write(types.TAC, 0x05)

	c.Tick(16)
	if regs.Read(types.TIMA) != 0 {
		t.Errorf("expected TIMA to read 0 in the cycle after overflow, got 0x%02X", regs.Read(types.TIMA))
	}
	if irq.Flag&interrupts.TimerFlag != 0 {
		t.Errorf("expected the interrupt to be requested after the reload cycle")
	}

	c.TickM()
	if regs.Read(types.TIMA) != 0xF0 {
		t.Errorf("expected TIMA to be reloaded with TMA, got 0x%02X", regs.Read(types.TIMA))
	}
	if irq.Flag&interrupts.TimerFlag == 0 {
		t.Errorf("expected a timer interrupt to be requested")
	}
}

func TestController_OverflowCancelled(t *testing.T) {
	c, irq, regs := newTestTimer()
	regs.Write(types.TIMA, 0xFF)
	regs.Write(types.TAC, 0x05)
	c.Tick(16)

	regs.Write(types.TIMA, 0x33)
	c.TickM()
	if regs.Read(types.TIMA) != 0x33 {
		t.Errorf("expected the write to cancel the reload, got 0x%02X", regs.Read(types.TIMA))
	}
	if irq.Flag&interrupts.TimerFlag != 0 {
		t.Errorf("expected no timer interrupt")
	}
}

func TestController_DivResetGlitch(t *testing.T) {
	c, _, regs := newTestTimer()
	regs.Write(types.TAC, 0x05)

	// bit 3 of the divider is set after 8 cycles
	c.Tick(8)
	regs.Write(types.DIV, 0)
	if regs.Read(types.TIMA) != 1 {
		t.Errorf("expected resetting DIV on a set bit to increment TIMA, got %d", regs.Read(types.TIMA))
	}
}
