// Command gridprobe builds a grid from configuration, scatters random markers
// over it and prints the result. With -debug the grid's debug primitives are
// written to the log.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"gridsys/internal/app"
	"gridsys/internal/config"
	"gridsys/internal/logging"
	"gridsys/pkg/grid"
)

func main() {
	cfg, err := config.Parse("gridprobe", os.Args[1:], os.Stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		logging.Fail(logger, "invalid config", err)
	}

	var overlay grid.DebugOverlay
	if cfg.Debug {
		overlay = grid.NewLogOverlay(logger)
	}
	board := app.NewBoard(cfg, logger, overlay)

	landed := board.Scatter(cfg.Scatter)
	logger.Info("scatter finished",
		zap.String("board", board.Title()),
		zap.Int("attempts", cfg.Scatter),
		zap.Int("landed", landed),
		zap.Int("notifications", board.Status().Changes()),
	)
	fmt.Print(board.Dump())
}
