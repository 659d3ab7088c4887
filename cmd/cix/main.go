package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/benjamix95/codigo-sub004/internal/config"
	"github.com/benjamix95/codigo-sub004/internal/debug"
	"github.com/benjamix95/codigo-sub004/internal/indexcore"
	"github.com/benjamix95/codigo-sub004/internal/toolfacade"
	"github.com/benjamix95/codigo-sub004/internal/version"
)

func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	root := c.String("root")
	if root == "" {
		root = "."
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path %q: %w", root, err)
	}

	cfg, err := config.Load(absRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load config for %s: %w", absRoot, err)
	}
	cfg.Project.Root = absRoot

	if includeFlags := c.StringSlice("include"); len(includeFlags) > 0 {
		cfg.Include = includeFlags
	}
	if excludeFlags := c.StringSlice("exclude"); len(excludeFlags) > 0 {
		cfg.Exclude = append(cfg.Exclude, excludeFlags...)
	}
	return cfg, nil
}

func main() {
	app := &cli.App{
		Name:                   "cix",
		Usage:                  "Regex-based codebase indexing engine for AI assistants",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Workspace root to index",
				Value:   ".",
			},
			&cli.StringSliceFlag{
				Name:  "include",
				Usage: "Include glob patterns (stored in the loaded config; indexing does not filter by them)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Exclude files matching glob patterns",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging to stderr",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				debug.EnableDebug = "true"
				debug.SetDebugOutput(os.Stderr)
			}
			return nil
		},
		Commands: []*cli.Command{
			indexCommand,
			reindexCommand,
			queryCommand,
			mcpServeCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "cix:", err)
		os.Exit(1)
	}
}

// newContextWithSignals returns a context cancelled on SIGINT/SIGTERM, for
// the mcp subcommand's long-running stdio server loop.
func newContextWithSignals() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()
	return ctx, cancel
}

func newFacade(cfg *config.Config) *toolfacade.Facade {
	core := indexcore.New()
	core.SetCaps(cfg.Index.MaxFileSize, cfg.Index.MaxFileCount)
	return toolfacade.New(core, cfg.Project.Root, cfg.Exclude...)
}
