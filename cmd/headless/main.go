package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/mnafees/c8vm/internal"
	"github.com/mnafees/c8vm/internal/config"
	"github.com/mnafees/c8vm/pkg/headless"
	"github.com/mnafees/c8vm/pkg/rom"
	"github.com/retroenv/retrogolib/log"
)

func main() {
	opts, err := config.ParseFlags("chopper-headless", os.Args[1:], true)
	if err != nil {
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			usageErr.ShowUsage()
		}
		config.CreateLogger(false, false).Error("Invalid arguments", log.Err(err))
		os.Exit(1)
	}
	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	keys, err := headless.ParseKeyScript(opts.Keys)
	if err != nil {
		logger.Fatal(err.Error())
	}

	vm, err := internal.NewC8VM(opts.VMOptions()...)
	if err != nil {
		logger.Fatal(err.Error())
	}
	if err := rom.Load(vm, opts.ROM); err != nil {
		logger.Fatal(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := headless.NewRunner(vm, logger, keys, opts.Trace, opts.DigestEvery)
	res, err := runner.Run(ctx, opts.Cycles)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("Operation cancelled", log.String("result", res.String()))
			return
		}
		stop()
		os.Exit(1)
	}

	logger.Info("Run finished",
		log.String("rom", opts.ROM),
		log.String("result", res.String()))
}
