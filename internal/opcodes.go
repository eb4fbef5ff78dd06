package internal

import (
	"github.com/pkg/errors"
)

// Cycle describes the outcome of executing one opcode
type Cycle struct {
	PC           uint16 // Address the opcode was fetched from
	Opcode       uint16 // 16-bit opcode of the instruction
	Instruction  Instruction
	Invalid      bool // The opcode was not recognised and skipped
	Waiting      bool // The VM is blocked on LD Vx, K
	SoundStopped bool // The sound timer reached zero during this cycle
}

// Execute interprets a single opcode against the VM state. The program
// counter is advanced past the opcode before it is dispatched, jumps and
// calls override it afterwards.
func (vm *C8VM) Execute(opcode uint16) (Cycle, error) {
	in := Decode(opcode)
	c := Cycle{PC: vm.pc, Opcode: opcode, Instruction: in}
	vm.opcode = opcode

	x, y, n, kk, nnn := in.X, in.Y, in.N, in.KK, in.NNN

	vm.nextInstruction()

	switch in.Family() { // Compare against the first 4 bits of the instruction only
	case 0x0000:
		switch opcode {
		case 0x00E0: // CLS
			vm.clearPixels()
			vm.drawFlag = true
		case 0x00EE: // RET
			if vm.sp == 0 {
				return c, errors.Wrapf(ErrStackUnderflow, "RET at $%03X", c.PC)
			}
			vm.sp--
			vm.pc = vm.stack[vm.sp]
		default: // SYS nnn, machine code routines are ignored
		}
	case 0x1000: // JP nnn
		vm.pc = nnn
	case 0x2000: // CALL nnn
		if int(vm.sp) >= stackSize {
			return c, errors.Wrapf(ErrStackOverflow, "CALL $%03X at $%03X", nnn, c.PC)
		}
		vm.stack[vm.sp] = vm.pc
		vm.sp++
		vm.pc = nnn
	case 0x3000: // SE Vx, kk
		if vm.regV[x] == kk {
			vm.nextInstruction()
		}
	case 0x4000: // SNE Vx, kk
		if vm.regV[x] != kk {
			vm.nextInstruction()
		}
	case 0x5000:
		switch n {
		case 0x0: // SE Vx, Vy
			if vm.regV[x] == vm.regV[y] {
				vm.nextInstruction()
			}
		default:
			c.Invalid = true
		}
	case 0x6000: // LD Vx, kk
		vm.regV[x] = kk
	case 0x7000: // ADD Vx, kk
		vm.regV[x] = saturatingAdd(vm.regV[x], kk)
	case 0x8000:
		c.Invalid = !vm.executeALU(x, y, n)
	case 0x9000:
		switch n {
		case 0x0: // SNE Vx, Vy
			if vm.regV[x] != vm.regV[y] {
				vm.nextInstruction()
			}
		default:
			c.Invalid = true
		}
	case 0xA000: // LD I, nnn
		vm.regI = nnn
	case 0xB000: // JP V0, nnn
		vm.pc = nnn + uint16(vm.regV[0])
	case 0xC000: // RND Vx, kk
		vm.regV[x] = vm.rand.Byte() & kk
	case 0xD000: // DRW Vx, Vy, n
		collision := vm.drawSprite(vm.regV[x], vm.regV[y], n)
		vm.drawFlag = true
		vm.setFlag(collision)
	case 0xE000:
		switch kk {
		case 0x9E: // SKP Vx
			if vm.IsKeyDown(vm.regV[x] & 0xF) {
				vm.nextInstruction()
			}
		case 0xA1: // SKNP Vx
			if !vm.IsKeyDown(vm.regV[x] & 0xF) {
				vm.nextInstruction()
			}
		default:
			c.Invalid = true
		}
	case 0xF000:
		c.Invalid = !vm.executeMisc(x, kk)
	}

	c.Waiting = vm.waiting
	return c, nil
}

// executeALU handles the 8xyn register to register instructions. VF is
// always written last so that a flag survives x == 0xF.
func (vm *C8VM) executeALU(x, y, n uint8) bool {
	switch n {
	case 0x0: // LD Vx, Vy
		vm.regV[x] = vm.regV[y]
	case 0x1: // OR Vx, Vy
		vm.regV[x] |= vm.regV[y]
	case 0x2: // AND Vx, Vy
		vm.regV[x] &= vm.regV[y]
	case 0x3: // XOR Vx, Vy
		vm.regV[x] ^= vm.regV[y]
	case 0x4: // ADD Vx, Vy
		sum := uint16(vm.regV[x]) + uint16(vm.regV[y])
		vm.regV[x] = uint8(sum & 0x00FF)
		vm.setFlag(sum > 0xFF)
	case 0x5: // SUB Vx, Vy
		vx, vy := vm.regV[x], vm.regV[y]
		vm.regV[x] = saturatingSub(vx, vy)
		vm.setFlag(vx > vy)
	case 0x6: // SHR Vx {, Vy}
		vx := vm.regV[x]
		vm.regV[x] = vx >> 1
		vm.setFlag(vm.shiftRightFlag(vx))
	case 0x7: // SUBN Vx, Vy
		vx, vy := vm.regV[x], vm.regV[y]
		vm.regV[x] = saturatingSub(vy, vx)
		vm.setFlag(vy > vx)
	case 0xE: // SHL Vx {, Vy}
		vy := vm.regV[y]
		vm.regV[x] = vy << 1
		vm.setFlag(vm.shiftLeftFlag(vy))
	default:
		return false
	}
	return true
}

// executeMisc handles the Fxkk timer, key, and memory instructions
func (vm *C8VM) executeMisc(x, kk uint8) bool {
	switch kk {
	case 0x07: // LD Vx, DT
		vm.regV[x] = vm.delayTimer
	case 0x0A: // LD Vx, K
		if key, ok := vm.firstKeyDown(); ok {
			vm.regV[x] = key
		} else {
			vm.waiting = true
			vm.waitReg = x
		}
	case 0x15: // LD DT, Vx
		vm.delayTimer = vm.regV[x]
	case 0x18: // LD ST, Vx
		vm.soundTimer = vm.regV[x]
	case 0x1E: // ADD I, Vx
		vm.regI += uint16(vm.regV[x])
	case 0x29: // LD F, Vx
		vm.regI = fontsetAddr + uint16(vm.regV[x]&0x0F)*fontGlyphSize
	case 0x33: // LD B, Vx
		vx := vm.regV[x]
		vm.memory[vm.regI&lastAddr] = vx / 100
		vm.memory[(vm.regI+1)&lastAddr] = (vx / 10) % 10
		vm.memory[(vm.regI+2)&lastAddr] = vx % 10
	case 0x55: // LD [I], Vx
		for i := uint16(0); i <= uint16(x); i++ {
			vm.memory[(vm.regI+i)&lastAddr] = vm.regV[i]
		}
		vm.regI += uint16(x) + 1
	case 0x65: // LD Vx, [I]
		for i := uint16(0); i <= uint16(x); i++ {
			vm.regV[i] = vm.memory[(vm.regI+i)&lastAddr]
		}
		vm.regI += uint16(x) + 1
	default:
		return false
	}
	return true
}

// nextInstruction moves the program counter one instruction forward. It
// stops at the end of memory, the next fetch then fails.
func (vm *C8VM) nextInstruction() {
	if vm.pc <= lastAddr {
		vm.pc += 2
	}
}

func (vm *C8VM) setFlag(set bool) {
	if set {
		vm.regV[0xF] = 1
	} else {
		vm.regV[0xF] = 0
	}
}

func (vm *C8VM) shiftRightFlag(vx uint8) bool {
	if vm.quirks.LegacyShiftFlags {
		return vx&0x0F == 1
	}
	return vx&0x01 == 0x01
}

func (vm *C8VM) shiftLeftFlag(vx uint8) bool {
	if vm.quirks.LegacyShiftFlags {
		return vx&0xF0 == 1
	}
	return vx&0x80 == 0x80
}

func saturatingAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 0xFF {
		return 0xFF
	}
	return uint8(sum)
}

func saturatingSub(a, b uint8) uint8 {
	if b > a {
		return 0
	}
	return a - b
}
