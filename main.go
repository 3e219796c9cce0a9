package main

import (
	"log/slog"
	"os"

	"labsite/pkg/config"
	"labsite/pkg/handlers"

	"github.com/alecthomas/kong"
)

var version = "dev"

func main() {
	var cli handlers.CLI
	ctx := kong.Parse(&cli,
		kong.Name("labsite"),
		kong.Description("Generate derived content for the lab website"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	cfg, err := config.Load(cli.Root)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := ctx.Run(&handlers.Global{Config: cfg}); err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}
