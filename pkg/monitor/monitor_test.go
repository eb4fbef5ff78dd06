package monitor

import (
	"testing"

	"github.com/mnafees/c8vm/internal"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestObserve(t *testing.T) {
	m := New(log.NewTestLogger(t), true)

	m.Observe(internal.Cycle{PC: 0x200, Opcode: 0x6105, Instruction: internal.Decode(0x6105)})
	m.Observe(internal.Cycle{PC: 0x202, Opcode: 0x5121, Instruction: internal.Decode(0x5121), Invalid: true})
	m.Observe(internal.Cycle{PC: 0x204, Opcode: 0xF00A, Instruction: internal.Decode(0xF00A), Waiting: true})
	m.Observe(internal.Cycle{PC: 0x206, Opcode: 0x1206, Instruction: internal.Decode(0x1206), SoundStopped: true})

	assert.Equal(t, uint64(4), m.Cycles)
	assert.Equal(t, uint64(1), m.InvalidOpcodes)
	assert.Equal(t, uint64(1), m.SoundStops)
}

func TestFatal(t *testing.T) {
	vm, err := internal.NewC8VM()
	assert.NoError(t, err)

	m := New(log.NewTestLogger(t), false)
	m.Fatal(errors.Wrap(internal.ErrStackUnderflow, "RET"), vm)
	assert.Equal(t, uint64(0), m.Cycles)
}
