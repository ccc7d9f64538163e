package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/vburojevic/reqtriage/internal/cli"
	"github.com/vburojevic/reqtriage/internal/config"
)

func main() {
	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	// Config values become flag defaults; explicit flags still win
	vars := kong.Vars{
		"config_format": cfg.Format,
		"config_color":  cfg.Color,
		"config_file":   cfg.Defaults.File,
	}

	ctx := kong.Parse(&c,
		kong.Name("reqtriage"),
		kong.Description("Summarize a JSON request log export: status distribution, error and warning counts, issues by path.\n\nRun with no arguments to analyze ./logs_result.json"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	err = ctx.Run(globals)
	_ = globals.Logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
