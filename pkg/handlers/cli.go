package handlers

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"labsite/pkg/config"

	"github.com/alecthomas/kong"
)

// Global is bound into every command's Run.
type Global struct {
	Config *config.Config
}

type CLI struct {
	Root    string           `short:"r" help:"Site root directory" default:"." type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Feature FeatureCmd `cmd:"" help:"Write the featured publication include"`
	Members MembersCmd `cmd:"" help:"Generate one page per roster member"`
	PubMeta PubMetaCmd `cmd:"" name:"pub-meta" help:"Add default pdf/image entries to publication sidecars"`
	All     AllCmd     `cmd:"" help:"Run pub-meta, feature and members"`
	Watch   WatchCmd   `cmd:"" help:"Run all, then again on every content change"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

type FeatureCmd struct{}

func (c *FeatureCmd) Run(g *Global) error {
	return HandleFeature(g.Config)
}

type MembersCmd struct{}

func (c *MembersCmd) Run(g *Global) error {
	_, err := HandleMembers(g.Config)
	return err
}

type PubMetaCmd struct{}

func (c *PubMetaCmd) Run(g *Global) error {
	_, err := HandlePubMeta(g.Config)
	return err
}

type AllCmd struct{}

func (c *AllCmd) Run(g *Global) error {
	return HandleAll(g.Config)
}

type WatchCmd struct {
	Debounce time.Duration `help:"Quiet period before regenerating" default:"500ms"`
}

func (c *WatchCmd) Run(g *Global) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return HandleWatch(ctx, g.Config, c.Debounce)
}
