package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/diegok/termpong/internal/app"
	"github.com/diegok/termpong/internal/config"
	"github.com/diegok/termpong/internal/logging"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage()
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	logger, closer, err := logging.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := app.NewApp(cfg, logger)
	runErr := application.Run()
	if runErr != nil {
		logger.Error("exiting", "error", runErr)
	}
	closer.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  termpong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --side <left|right>  Paddle you control (default: right)")
	fmt.Fprintln(os.Stderr, "  --ai <0-1>           AI paddle speed (default: 0.5)")
	fmt.Fprintf(os.Stderr, "  --fps <n>            Frames per second, %d-%d (default: %d)\n", config.MinFPS, config.MaxFPS, config.DefaultFPS)
	fmt.Fprintln(os.Stderr, "  --mute               Disable sound")
	fmt.Fprintln(os.Stderr, "  --config <file>      TOML config file")
	fmt.Fprintln(os.Stderr, "  --log <file>         Write logs to file")
	fmt.Fprintln(os.Stderr, "  --debug              Log debug messages")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  termpong --side left --ai 0.8")
	fmt.Fprintln(os.Stderr, "  termpong --config ~/.termpong.toml --log /tmp/termpong.log --debug")
}
