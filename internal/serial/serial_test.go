package serial

import (
	"bytes"
	"testing"

	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/types"
)

func TestController_Transfer(t *testing.T) {
	irq := interrupts.NewService()
	regs := &types.HardwareRegisters{}
	c := NewController(irq, regs)

	var sink bytes.Buffer
	c.Attach(&sink)

	regs.Write(types.SB, 'H')
	regs.Write(types.SC, 0x81)
	if regs.Read(types.SC) != 0xFF {
		t.Errorf("expected SC to read 0xFF during a transfer, got 0x%02X", regs.Read(types.SC))
	}

	for i := 0; i < TransferCycles-4; i += 4 {
		c.Tick(4)
	}
	if irq.Flag&interrupts.SerialFlag != 0 || sink.Len() != 0 {
		t.Errorf("expected the transfer to still be in progress")
	}

	c.Tick(4)
	if sink.String() != "H" {
		t.Errorf("expected the sink to receive \"H\", got %q", sink.String())
	}
	if irq.Flag&interrupts.SerialFlag == 0 {
		t.Errorf("expected a serial interrupt")
	}
	if regs.Read(types.SB) != 0xFF {
		t.Errorf("expected 0xFF to be received, got 0x%02X", regs.Read(types.SB))
	}
	if regs.Read(types.SC) != 0x7F {
		t.Errorf("expected SC bit 7 to be cleared, got 0x%02X", regs.Read(types.SC))
	}
}

func TestController_ExternalClock(t *testing.T) {
	irq := interrupts.NewService()
	regs := &types.HardwareRegisters{}
	c := NewController(irq, regs)

	regs.Write(types.SC, 0x80)
	for i := 0; i < TransferCycles*2; i += 4 {
		c.Tick(4)
	}
	if irq.Flag != 0 {
		t.Errorf("expected no transfer without a clock")
	}
}
