package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var queryCommand = &cli.Command{
	Name:      "query",
	Usage:     "Run a single ToolFacade tool invocation against the workspace and print its output",
	ArgsUsage: "<tool>",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "query", Usage: "query argument, for tools that take one"},
		&cli.StringFlag{Name: "path", Usage: "path argument, for tools that take one"},
		&cli.StringFlag{Name: "kind", Usage: "symbol kind filter / alias"},
		&cli.StringFlag{Name: "filePattern", Usage: "file glob/substring filter for codebase_search"},
		&cli.StringFlag{Name: "extension", Usage: "extension filter for find_files"},
		&cli.IntFlag{Name: "maxDepth", Usage: "max depth for project_structure", Value: 6},
	},
	Action: func(c *cli.Context) error {
		tool := c.Args().First()
		if tool == "" {
			return fmt.Errorf("query: missing tool name argument")
		}

		cfg, err := loadConfigWithOverrides(c)
		if err != nil {
			return err
		}
		cfg.EnrichExclusionsWithBuildArtifacts()

		facade := newFacade(cfg)
		args := map[string]string{}
		for _, name := range []string{"query", "path", "kind", "filePattern", "extension"} {
			if v := c.String(name); v != "" {
				args[name] = v
			}
		}
		if md := c.Int("maxDepth"); md > 0 {
			args["maxDepth"] = fmt.Sprintf("%d", md)
		}

		resp := facade.Invoke(context.Background(), "cli-query", tool, args)
		fmt.Println(resp.Title)
		fmt.Println(resp.Output)
		if !resp.OK {
			return fmt.Errorf("query: %s", resp.Output)
		}
		return nil
	},
}
