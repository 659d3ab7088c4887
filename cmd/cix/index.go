package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/benjamix95/codigo-sub004/internal/indexcore"
)

var indexCommand = &cli.Command{
	Name:  "index",
	Usage: "Run a full index of the workspace root and print a summary",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfigWithOverrides(c)
		if err != nil {
			return err
		}
		cfg.EnrichExclusionsWithBuildArtifacts()

		core := indexcore.New()
		core.SetCaps(cfg.Index.MaxFileSize, cfg.Index.MaxFileCount)
		result, err := core.IndexWorkspace(context.Background(), []string{cfg.Project.Root}, cfg.Exclude)
		if err != nil {
			return fmt.Errorf("index: %w", err)
		}
		fmt.Printf("indexed %d files, %d symbols in %dms\n", result.FilesScanned, result.SymbolsExtracted, result.DurationMs)
		return nil
	},
}

var reindexCommand = &cli.Command{
	Name:  "reindex",
	Usage: "Run a full index of the workspace root, then an incremental update pass, and print the update's counts",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfigWithOverrides(c)
		if err != nil {
			return err
		}
		cfg.EnrichExclusionsWithBuildArtifacts()

		core := indexcore.New()
		core.SetCaps(cfg.Index.MaxFileSize, cfg.Index.MaxFileCount)
		ctx := context.Background()
		if _, err := core.IndexWorkspace(ctx, []string{cfg.Project.Root}, cfg.Exclude); err != nil {
			return fmt.Errorf("reindex: initial index: %w", err)
		}
		result, err := core.IncrementalUpdate(ctx)
		if err != nil {
			return fmt.Errorf("reindex: %w", err)
		}
		fmt.Printf("reindex: %d files updated, %d new files, %dms\n", result.UpdatedFiles, result.AddedFiles, result.DurationMs)
		return nil
	},
}
