package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
)

func TestStepReturnsOpcode(t *testing.T) {
	vm := newTestVM(t, 0xA2F0)

	c, err := vm.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xA2F0), c.Opcode)
	assert.Equal(t, uint16(0x200), c.PC)
	assert.Equal(t, "LD I, $2F0", c.Instruction.String())
	assert.False(t, c.Invalid)
	assert.False(t, c.Waiting)
}

func TestStepTimers(t *testing.T) {
	vm := newTestVM(t,
		0x6102, // LD V1, $02
		0xF118, // LD ST, V1
		0xF115, // LD DT, V1
		0x1206, // JP $206
	)

	c, err := vm.Step()
	assert.NoError(t, err)
	assert.False(t, c.SoundStopped)

	c, err = vm.Step()
	assert.NoError(t, err)
	assert.False(t, c.SoundStopped)
	assert.Equal(t, uint8(1), vm.SoundTimer())

	c, err = vm.Step()
	assert.NoError(t, err)
	assert.True(t, c.SoundStopped)
	assert.Equal(t, uint8(0), vm.SoundTimer())
	assert.Equal(t, uint8(1), vm.DelayTimer())

	c, err = vm.Step()
	assert.NoError(t, err)
	assert.False(t, c.SoundStopped)
	assert.Equal(t, uint8(0), vm.DelayTimer())

	_, err = vm.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), vm.DelayTimer())
}

func TestWaitForKey(t *testing.T) {
	vm := newTestVM(t,
		0x6505, // LD V5, $05
		0xF50A, // LD V5, K
		0x6601, // LD V6, $01
	)
	vm.delayTimer = 10

	_, err := vm.Step()
	assert.NoError(t, err)
	c, err := vm.Step()
	assert.NoError(t, err)
	assert.True(t, c.Waiting)
	assert.True(t, vm.WaitingForKey())

	pc, regs, dt := vm.PC(), vm.regV, vm.DelayTimer()
	for i := 0; i < 5; i++ {
		c, err = vm.Step()
		assert.NoError(t, err)
		assert.True(t, c.Waiting)
		assert.Equal(t, uint16(0xF50A), c.Opcode)
		assert.Equal(t, pc, vm.PC())
		assert.Equal(t, regs, vm.regV)
		assert.Equal(t, dt, vm.DelayTimer())
	}

	assert.NoError(t, vm.SetKey(0xB, true))
	c, err = vm.Step()
	assert.NoError(t, err)
	assert.False(t, c.Waiting)
	assert.False(t, vm.WaitingForKey())
	assert.Equal(t, uint8(0xB), vm.V(5))
	assert.Equal(t, uint8(0), vm.V(6))

	_, err = vm.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(1), vm.V(6))
	assert.Equal(t, uint16(0x206), vm.PC())
}

func TestWaitForKeyAlreadyDown(t *testing.T) {
	vm := newTestVM(t, 0xF30A) // LD V3, K
	assert.NoError(t, vm.SetKey(4, true))
	assert.NoError(t, vm.SetKey(9, true))

	c, err := vm.Step()
	assert.NoError(t, err)
	assert.False(t, c.Waiting)
	assert.Equal(t, uint8(4), vm.V(3))
}

func TestResetAbortsKeyWait(t *testing.T) {
	vm := newTestVM(t, 0xF00A) // LD V0, K

	_, err := vm.Step()
	assert.NoError(t, err)
	assert.True(t, vm.WaitingForKey())

	vm.Reset()
	assert.False(t, vm.WaitingForKey())
	assert.Equal(t, uint16(0x200), vm.PC())
}

func TestFetchOutOfRange(t *testing.T) {
	vm := newTestVM(t, 0x1FFF) // JP $FFF

	_, err := vm.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0xFFF), vm.PC())

	_, err = vm.Step()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
	assert.True(t, IsFatal(err))
}

func TestFetchLastWord(t *testing.T) {
	vm := newTestVM(t, 0x1FFE) // JP $FFE
	vm.memory[0xFFE] = 0x61
	vm.memory[0xFFF] = 0x09

	_, err := vm.Step()
	assert.NoError(t, err)
	_, err = vm.Step()
	assert.NoError(t, err)
	assert.Equal(t, uint8(9), vm.V(1))
	assert.Equal(t, uint16(0x1000), vm.PC())

	_, err = vm.Step()
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}
