package types

// Address represents a memory address in the Game Boy's memory,
// which can be read from or written to. The MMU routes each of the
// 65536 addresses to one of these.
type Address struct {
	// Read is called when the address is read from.
	Read func(address uint16) uint8
	// Write is called when the address is written to.
	Write func(address uint16, value uint8)
}

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware registers are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

// IOBase is the start of the I/O page. It is the only region of the
// address space that the CPU refers to by name (LDH and LD (C)).
const IOBase HardwareAddress = 0xFF00

const (
	// P1 selects the joypad key group to read, and reads back the
	// state of the selected keys (0=pressed).
	P1 HardwareAddress = 0xFF00
	// SB holds the byte to be sent, and the byte received, by the
	// serial port.
	SB HardwareAddress = 0xFF01
	// SC controls the serial port.
	//
	//  Bit 7: Transfer Start (1=Transfer in progress or requested)
	//  Bit 0: Shift Clock    (0=External, 1=Internal)
	SC HardwareAddress = 0xFF02
	// DIV is the upper byte of the 16-bit system divider, incremented
	// at 16384Hz. Any write resets the whole divider to 0.
	DIV HardwareAddress = 0xFF04
	// TIMA is incremented at the rate selected by TAC. When it
	// overflows it is reloaded with TMA and a timer interrupt is
	// requested.
	TIMA HardwareAddress = 0xFF05
	// TMA is loaded into TIMA when it overflows.
	TMA HardwareAddress = 0xFF06
	// TAC controls the timer.
	//
	//  Bit 2:   Timer Enable
	//  Bit 1-0: Input Clock Select (00=4096Hz 01=262144Hz 10=65536Hz 11=16384Hz)
	TAC HardwareAddress = 0xFF07
	// IF is the interrupt request register. Writing a 1 to a bit
	// requests an interrupt, writing a 0 clears the request.
	//
	//  Bit 0: V-Blank  Interrupt Request (INT 40h)
	//  Bit 1: LCD STAT Interrupt Request (INT 48h)
	//  Bit 2: Timer    Interrupt Request (INT 50h)
	//  Bit 3: Serial   Interrupt Request (INT 58h)
	//  Bit 4: Joypad   Interrupt Request (INT 60h)
	IF HardwareAddress = 0xFF0F
	// LCDC controls the LCD.
	//
	//  Bit 7: LCD Enable                     (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 0: BG Display                     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// STAT reports the LCD mode and coincidence flag, and selects
	// which conditions request the LCD STAT interrupt.
	//
	//  Bit 6: LYC=LY Coincidence Interrupt (1=Enable)
	//  Bit 5: Mode 2 OAM Interrupt         (1=Enable)
	//  Bit 4: Mode 1 V-Blank Interrupt     (1=Enable)
	//  Bit 3: Mode 0 H-Blank Interrupt     (1=Enable)
	//  Bit 2: Coincidence Flag  (0:LYC<>LY, 1:LYC=LY) (Read Only)
	//  Bit 1-0: Mode Flag                              (Read Only)
	STAT HardwareAddress = 0xFF41
	// SCY is the vertical scroll position of the background.
	SCY HardwareAddress = 0xFF42
	// SCX is the horizontal scroll position of the background.
	SCX HardwareAddress = 0xFF43
	// LY is the scanline currently being drawn (0-153). Read only.
	LY HardwareAddress = 0xFF44
	// LYC is compared against LY to set the coincidence flag.
	LYC HardwareAddress = 0xFF45
	// DMA starts a transfer of 160 bytes from XX00 into OAM.
	DMA HardwareAddress = 0xFF46
	// BGP maps background colour numbers to shades.
	BGP HardwareAddress = 0xFF47
	// OBP0 and OBP1 map sprite colour numbers to shades.
	OBP0 HardwareAddress = 0xFF48
	OBP1 HardwareAddress = 0xFF49
	// WY and WX hold the position of the window.
	WY HardwareAddress = 0xFF4A
	WX HardwareAddress = 0xFF4B
	// IE is the interrupt enable register, laid out as IF.
	IE HardwareAddress = 0xFFFF
)
