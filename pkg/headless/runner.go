// Package headless runs CHIP-8 programs without a window, driven by a key
// script. It is used for regression runs and tracing.
package headless

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/mnafees/c8vm/internal"
	"github.com/mnafees/c8vm/pkg/monitor"
	"github.com/retroenv/retrogolib/log"
)

// Result summarises a headless run
type Result struct {
	Cycles         uint64 // cycles executed
	InvalidOpcodes uint64
	Frames         int    // number of times the display changed
	Digest         uint64 // digest of the display at the end of the run
	Waiting        bool   // the VM ended blocked on a key press
}

// String implements the fmt.Stringer interface
func (r Result) String() string {
	return fmt.Sprintf("cycles=%d frames=%d invalid=%d digest=%016x", r.Cycles, r.Frames, r.InvalidOpcodes, r.Digest)
}

// Runner executes a VM for a fixed cycle budget
type Runner struct {
	vm          *internal.C8VM
	logger      *log.Logger
	monitor     *monitor.Monitor
	keys        []KeyEvent
	digestEvery uint64
}

// NewRunner returns a runner for vm. Key events must be sorted by cycle, as
// returned by ParseKeyScript.
func NewRunner(vm *internal.C8VM, logger *log.Logger, keys []KeyEvent, trace bool, digestEvery int) *Runner {
	r := &Runner{
		vm:      vm,
		logger:  logger,
		monitor: monitor.New(logger, trace),
		keys:    keys,
	}
	if digestEvery > 0 {
		r.digestEvery = uint64(digestEvery)
	}
	return r
}

// Run executes up to cycles steps. It stops early with the context's error
// when ctx is cancelled, or with the VM's error on a fatal condition.
func (r *Runner) Run(ctx context.Context, cycles int) (Result, error) {
	var res Result
	nextKey := 0

	for cycle := uint64(0); cycle < uint64(cycles); cycle++ {
		if err := ctx.Err(); err != nil {
			return r.finish(res), err
		}

		for nextKey < len(r.keys) && r.keys[nextKey].Cycle <= cycle {
			ev := r.keys[nextKey]
			if err := r.vm.SetKey(ev.Key, ev.Down); err != nil {
				return r.finish(res), err
			}
			nextKey++
		}

		c, err := r.vm.Step()
		if err != nil {
			r.monitor.Fatal(err, r.vm)
			return r.finish(res), err
		}
		r.monitor.Observe(c)
		res.Cycles++

		if r.vm.ShouldDraw() {
			res.Frames++
		}

		if r.digestEvery > 0 && res.Cycles%r.digestEvery == 0 {
			r.logger.Info("Display digest",
				log.Int("cycle", int(res.Cycles)),
				log.String("digest", fmt.Sprintf("%016x", Digest(r.vm))))
		}
	}

	return r.finish(res), nil
}

func (r *Runner) finish(res Result) Result {
	res.InvalidOpcodes = r.monitor.InvalidOpcodes
	res.Digest = Digest(r.vm)
	res.Waiting = r.vm.WaitingForKey()
	return res
}

// Digest hashes the current display contents
func Digest(vm *internal.C8VM) uint64 {
	pixels := vm.Pixels()
	buf := make([]byte, 0, internal.ScreenWidth*internal.ScreenHeight)
	for _, row := range pixels {
		buf = append(buf, row[:]...)
	}
	return xxhash.Sum64(buf)
}
