// Package mmu provides a memory management unit for the Game Boy. The
// MMU is unaware of the other components, and handles all the memory
// reads and writes via the IOBus interface and the hardware register
// table the peripherals register themselves into.
package mmu

import (
	"github.com/thelolagemann/lr35902/internal/cartridge"
	"github.com/thelolagemann/lr35902/internal/interrupts"
	"github.com/thelolagemann/lr35902/internal/types"
	"github.com/thelolagemann/lr35902/pkg/log"
)

// IOBus is the interface that the MMU uses to communicate with the other
// components.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory, and
// delegates to the other components through the IOBus interface.
type MMU struct {
	// 64kB address space
	raw [65536]*types.Address

	// 0x0000 - 0x7FFF - ROM (32kB)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	Cart cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	Video IOBus

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *WRAM

	// 0xFF00 - 0xFF7F - I/O Registers
	registers *types.HardwareRegisters

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM [0x7F]uint8

	// 0xFF0F - interrupt flag register
	// 0xFFFF - interrupt enable register
	irq *interrupts.Service

	dma uint8

	Log log.Logger
}

// NewMMU returns a new MMU without a cartridge. IF and the OAM DMA
// register are mapped into regs.
func NewMMU(irq *interrupts.Service, regs *types.HardwareRegisters, video IOBus, l log.Logger) *MMU {
	m := &MMU{
		Video:     video,
		wRAM:      NewWRAM(),
		registers: regs,
		irq:       irq,
		Log:       l,
	}

	regs.Register(types.IF, irq.WriteFlag, irq.ReadFlag)
	regs.Register(types.DMA, m.transferOAM, func() uint8 {
		return m.dma
	})

	m.init()
	return m
}

func (m *MMU) init() {
	// setup raw memory
	addresses := []types.Address{
		{Read: m.readCart, Write: m.writeCart},
		{Read: m.Video.Read, Write: m.Video.Write},
		{Read: m.wRAM.Read, Write: m.wRAM.Write},
		{Read: func(uint16) uint8 { return 0xFF }, Write: func(uint16, uint8) {}},
		{Read: m.registers.Read, Write: m.registers.Write},
		{Read: readOffset(m.readZRAM, 0xFF80), Write: writeOffset(m.writeZRAM, 0xFF80)},
		{Read: func(uint16) uint8 { return m.irq.ReadEnable() }, Write: func(_ uint16, v uint8) { m.irq.WriteEnable(v) }},
	}

	regions := []struct {
		start, end int
		address    *types.Address
	}{
		{0x0000, 0x8000, &addresses[0]},  // ROM
		{0x8000, 0xA000, &addresses[1]},  // VRAM
		{0xA000, 0xC000, &addresses[0]},  // external RAM
		{0xC000, 0xFE00, &addresses[2]},  // WRAM + echo
		{0xFE00, 0xFEA0, &addresses[1]},  // OAM
		{0xFEA0, 0xFF00, &addresses[3]},  // unusable
		{0xFF00, 0xFF80, &addresses[4]},  // I/O
		{0xFF80, 0xFFFF, &addresses[5]},  // HRAM
		{0xFFFF, 0x10000, &addresses[6]}, // IE
	}
	for _, r := range regions {
		for i := r.start; i < r.end; i++ {
			m.raw[i] = r.address
		}
	}
}

func readOffset(read func(uint16) uint8, offset uint16) func(uint16) uint8 {
	return func(addr uint16) uint8 {
		return read(addr - offset)
	}
}

func writeOffset(write func(uint16, uint8), offset uint16) func(uint16, uint8) {
	return func(addr uint16, v uint8) {
		write(addr-offset, v)
	}
}

func (m *MMU) readZRAM(addr uint16) uint8 {
	return m.zRAM[addr]
}

func (m *MMU) writeZRAM(addr uint16, v uint8) {
	m.zRAM[addr] = v
}

// readCart reads from the cartridge, an empty slot reads 0xFF.
func (m *MMU) readCart(address uint16) uint8 {
	if m.Cart == nil {
		return 0xFF
	}
	return m.Cart.Read(address)
}

func (m *MMU) writeCart(address uint16, value uint8) {
	if m.Cart != nil {
		m.Cart.Write(address, value)
	}
}

// transferOAM copies 160 bytes from XX00 into OAM. The transfer
// completes at once.
func (m *MMU) transferOAM(v uint8) {
	m.dma = v
	src := uint16(v) << 8
	for i := uint16(0); i < 0xA0; i++ {
		m.Video.Write(0xFE00+i, m.Read(src+i))
	}
	m.Log.Debugf("OAM DMA from 0x%04X", src)
}

// Reset clears work RAM and zero page RAM. The cartridge is kept.
func (m *MMU) Reset() {
	m.wRAM.Reset()
	m.zRAM = [0x7F]uint8{}
	m.dma = 0
}

// Read returns the value at the given address. It handles all the memory
// banks, mirroring, I/O, etc.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address].Read(address)
}

// Write writes the value to the given address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address].Write(address, value)
}
