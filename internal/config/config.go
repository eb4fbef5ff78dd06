// Package config handles command line options and logger setup for the
// emulator frontends.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mnafees/c8vm/internal"
	"github.com/retroenv/retrogolib/log"
)

// Options shared by all frontends
type Options struct {
	ROM string

	InstructionsPerSecond int
	LegacyShift           bool
	Seed                  int64

	Debug bool
	Quiet bool
	Trace bool

	// SDL frontend
	Scale int
	FPS   int

	// headless frontend
	Cycles      int
	Keys        string
	DigestEvery int
}

// Defaults
const (
	DefaultInstructionsPerSecond = 500
	DefaultScale                 = 20
	DefaultFPS                   = 60
	DefaultCycles                = 10000
)

// UsageError is returned when the command line is incomplete
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the flag defaults
func (e *UsageError) ShowUsage() {
	e.flags.Usage()
}

// ParseFlags parses the arguments (without the program name) for the named
// frontend. headless enables the cycle budget and key script flags.
func ParseFlags(name string, args []string, headless bool) (Options, error) {
	var opts Options

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	flags.Usage = func() {
		flags.SetOutput(os.Stderr)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <CHIP-8 program>\n\n", name)
		flags.PrintDefaults()
	}

	flags.IntVar(&opts.InstructionsPerSecond, "ips", DefaultInstructionsPerSecond, "instructions executed per second")
	flags.BoolVar(&opts.LegacyShift, "legacy-shift", false, "compute SHR/SHL flags with the legacy nibble masks")
	flags.Int64Var(&opts.Seed, "seed", 0, "random seed for RND, 0 uses the current time")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "quiet", false, "only log errors")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction (implies -debug)")

	if headless {
		flags.IntVar(&opts.Cycles, "cycles", DefaultCycles, "number of cycles to execute")
		flags.StringVar(&opts.Keys, "keys", "", "key script, e.g. \"100:5+,160:5-\" presses key 5 at cycle 100")
		flags.IntVar(&opts.DigestEvery, "digest-every", 0, "log a display digest every n cycles, 0 disables")
	} else {
		flags.IntVar(&opts.Scale, "scale", DefaultScale, "size of one CHIP-8 pixel on screen")
		flags.IntVar(&opts.FPS, "fps", DefaultFPS, "frames rendered per second")
	}

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	if flags.NArg() != 1 {
		return opts, &UsageError{flags: flags, msg: "no CHIP-8 program given"}
	}
	opts.ROM = flags.Arg(0)
	if opts.Trace {
		opts.Debug = true
	}
	if opts.InstructionsPerSecond <= 0 {
		return opts, &UsageError{flags: flags, msg: "ips must be positive"}
	}
	if !headless && (opts.FPS <= 0 || opts.Scale <= 0) {
		return opts, &UsageError{flags: flags, msg: "fps and scale must be positive"}
	}
	return opts, nil
}

// VMOptions returns the VM construction options selected on the command line
func (o Options) VMOptions() []internal.Option {
	return []internal.Option{
		internal.WithRandom(internal.NewRandomSource(o.Seed)),
		internal.WithQuirks(internal.Quirks{LegacyShiftFlags: o.LegacyShift}),
	}
}

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
