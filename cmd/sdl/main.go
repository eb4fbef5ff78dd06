package main

import (
	"errors"
	"os"

	"github.com/mnafees/c8vm/internal"
	"github.com/mnafees/c8vm/internal/config"
	"github.com/mnafees/c8vm/pkg/rom"
	"github.com/mnafees/c8vm/pkg/sdl"
	"github.com/retroenv/retrogolib/log"
)

func main() {
	opts, err := config.ParseFlags("chopper", os.Args[1:], false)
	if err != nil {
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage()
		}
		config.CreateLogger(false, false).Error("Invalid arguments", log.Err(err))
		os.Exit(1)
	}
	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	vm, err := internal.NewC8VM(opts.VMOptions()...)
	if err != nil {
		logger.Fatal(err.Error())
	}
	if err := rom.Load(vm, opts.ROM); err != nil {
		logger.Fatal(err.Error())
	}
	logger.Info("Program loaded", log.String("rom", opts.ROM))

	io := sdl.NewIO(vm, logger, sdl.Config{
		Scale:                 opts.Scale,
		FPS:                   opts.FPS,
		InstructionsPerSecond: opts.InstructionsPerSecond,
		Trace:                 opts.Trace,
	})
	defer io.Destroy()
	if err := io.SetupWindow("Chopper | CHIP-8 Emulator"); err != nil {
		logger.Fatal(err.Error())
	}

	if err := io.Loop(); err != nil {
		if !internal.IsFatal(err) {
			logger.Error("Frontend failed", log.Err(err))
		}
		io.Destroy()
		os.Exit(1)
	}
}
