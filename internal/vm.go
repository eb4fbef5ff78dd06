package internal

// Follows the CHIP-8 technical reference found at http://devernay.free.fr/hacks/chip8/C8TECH10.HTM

import (
	"github.com/pkg/errors"
)

// CHIP-8 VM constants
const (
	totalMemory    = 0x1000
	pcStartAddr    = 0x200
	maxProgramSize = totalMemory - pcStartAddr
	lastAddr       = totalMemory - 1
	stackSize      = 16
	fontsetAddr    = 0x000
	fontGlyphSize  = 5

	ScreenWidth  = 64
	ScreenHeight = 32
	KeyCount     = 16
)

// C8VM is an emulated CHIP-8 VM
type C8VM struct {
	opcode     uint16             // 16-bit opcode of the current instruction
	regV       [16]uint8          // 16 general purpose 8-bit registers
	regI       uint16             // 16-bit register that is generally used to store memory addresses
	delayTimer uint8              // Delay timer
	soundTimer uint8              // Sound timer
	pc         uint16             // Program counter
	sp         uint8              // Stack pointer, number of return addresses on the stack
	stack      [stackSize]uint16  // A stack of 16 16-bit values
	memory     [totalMemory]uint8 // 4 KB global memory

	drawFlag bool // Display changed since the last ShouldDraw

	// A 16-bit integer to hold the current key values in the form of individual bits.
	// So when 0 is pushed in the keypad, the 0'th bit will be set and so on.
	key uint16

	// LD Vx, K suspends the VM until a key is down. waitReg is the target register.
	waiting bool
	waitReg uint8

	// 32 rows x 64 columns display
	pixels [ScreenHeight][ScreenWidth]uint8

	quirks Quirks
	rand   RandomSource
}

var fontset = [...]uint8{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Fontset returns a copy of the built-in hexadecimal glyph table
func Fontset() []uint8 {
	f := fontset
	return f[:]
}

// NewC8VM creates a new instance of an emulated CHIP-8 VM
func NewC8VM(opts ...Option) (*C8VM, error) {
	vm := &C8VM{
		pc: pcStartAddr,
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.rand == nil {
		vm.rand = NewRandomSource(0)
	}
	copy(vm.memory[fontsetAddr:], fontset[:])
	return vm, nil
}

// Reset returns the VM to its post-load state. Memory, and with it the
// loaded program, is left untouched.
func (vm *C8VM) Reset() {
	vm.opcode = 0
	vm.regV = [16]uint8{}
	vm.regI = 0
	vm.delayTimer = 0
	vm.soundTimer = 0
	vm.pc = pcStartAddr
	vm.sp = 0
	vm.stack = [stackSize]uint16{}
	vm.key = 0
	vm.waiting = false
	vm.waitReg = 0
	vm.drawFlag = false
	vm.clearPixels()
}

// Load copies a raw program image into memory at 0x200. Registers are not
// reset, call Reset first when reloading a running VM.
func (vm *C8VM) Load(program []byte) error {
	if len(program) > maxProgramSize {
		return errors.Wrapf(ErrProgramTooLarge, "%d bytes (max: %d)", len(program), maxProgramSize)
	}
	copy(vm.memory[pcStartAddr:], program)
	return nil
}

// PC returns the program counter
func (vm *C8VM) PC() uint16 {
	return vm.pc
}

// I returns the address register
func (vm *C8VM) I() uint16 {
	return vm.regI
}

// SP returns the number of return addresses on the stack
func (vm *C8VM) SP() uint8 {
	return vm.sp
}

// V returns the value of register Vx
func (vm *C8VM) V(x uint8) uint8 {
	return vm.regV[x&0xF]
}

// Opcode returns the last executed opcode
func (vm *C8VM) Opcode() uint16 {
	return vm.opcode
}

// Memory returns the byte stored at addr
func (vm *C8VM) Memory(addr uint16) uint8 {
	return vm.memory[addr&lastAddr]
}

// DelayTimer returns the value of DT
func (vm *C8VM) DelayTimer() uint8 {
	return vm.delayTimer
}

// SoundTimer returns the value of ST
func (vm *C8VM) SoundTimer() uint8 {
	return vm.soundTimer
}

// WaitingForKey returns whether the VM is blocked on LD Vx, K
func (vm *C8VM) WaitingForKey() bool {
	return vm.waiting
}
