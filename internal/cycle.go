package internal

import (
	"github.com/pkg/errors"
)

// Step fetches, decodes and executes the instruction at PC, then counts the
// delay and sound timers down by one. While the VM is waiting on LD Vx, K
// nothing is fetched and no state changes until a key is down.
func (vm *C8VM) Step() (Cycle, error) {
	if vm.waiting {
		return vm.resumeKeyWait(), nil
	}

	opcode, err := vm.fetch()
	if err != nil {
		return Cycle{PC: vm.pc}, err
	}

	c, err := vm.Execute(opcode)
	if err != nil {
		return c, err
	}
	c.SoundStopped = vm.tickTimers()
	return c, nil
}

// fetch reads the 16-bit big-endian opcode at PC
func (vm *C8VM) fetch() (uint16, error) {
	if vm.pc >= lastAddr {
		return 0, errors.Wrapf(ErrAddressOutOfRange, "fetch at $%04X", vm.pc)
	}
	return uint16(vm.memory[vm.pc])<<8 | uint16(vm.memory[vm.pc+1]), nil
}

// resumeKeyWait checks the keypad on behalf of a pending LD Vx, K. The
// program counter already points past the waiting instruction.
func (vm *C8VM) resumeKeyWait() Cycle {
	c := Cycle{
		PC:          vm.pc - 2,
		Opcode:      vm.opcode,
		Instruction: Decode(vm.opcode),
	}
	key, ok := vm.firstKeyDown()
	if !ok {
		c.Waiting = true
		return c
	}
	vm.regV[vm.waitReg] = key
	vm.waiting = false
	return c
}

// tickTimers decrements DT and ST toward zero. Returns true when ST went
// from nonzero to zero, the cue for a host to stop its tone.
func (vm *C8VM) tickTimers() bool {
	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
		return vm.soundTimer == 0
	}
	return false
}
