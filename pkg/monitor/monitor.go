// Package monitor turns the per-cycle results of the VM into log output
// and counters for the frontends.
package monitor

import (
	"github.com/mnafees/c8vm/internal"
	"github.com/retroenv/retrogolib/log"
)

// Monitor observes executed cycles
type Monitor struct {
	logger *log.Logger
	trace  bool

	Cycles         uint64 // cycles observed, including key wait cycles
	InvalidOpcodes uint64 // unrecognised opcodes skipped by the VM
	SoundStops     uint64 // nonzero to zero transitions of the sound timer
}

// New returns a monitor logging to logger. With trace set every executed
// instruction is logged at debug level.
func New(logger *log.Logger, trace bool) *Monitor {
	return &Monitor{
		logger: logger,
		trace:  trace,
	}
}

// Observe records one cycle
func (m *Monitor) Observe(c internal.Cycle) {
	m.Cycles++

	if m.trace && !c.Waiting {
		m.logger.Debug("Executed",
			log.Hex("pc", c.PC),
			log.Hex("opcode", c.Opcode),
			log.String("asm", c.Instruction.String()))
	}

	if c.Invalid {
		m.InvalidOpcodes++
		m.logger.Warn("Invalid opcode",
			log.Hex("pc", c.PC),
			log.Hex("opcode", c.Opcode))
	}

	if c.SoundStopped {
		m.SoundStops++
		m.logger.Debug("Sound timer expired", log.Hex("pc", c.PC))
	}
}

// Fatal logs an error that ended the emulated session
func (m *Monitor) Fatal(err error, vm *internal.C8VM) {
	m.logger.Error("Emulation stopped",
		log.Err(err),
		log.Hex("pc", vm.PC()),
		log.Hex("opcode", vm.Opcode()),
		log.Int("cycles", int(m.Cycles)))
}
