package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/urfave/cli/v2"

	"github.com/benjamix95/codigo-sub004/internal/debug"
	"github.com/benjamix95/codigo-sub004/internal/toolfacade"
	"github.com/benjamix95/codigo-sub004/internal/version"
)

var mcpServeCommand = &cli.Command{
	Name:  "mcp",
	Usage: "Run as an MCP server over stdio, exposing the indexing engine's tools",
	Action: func(c *cli.Context) error {
		debug.SetMCPMode(true)

		cfg, err := loadConfigWithOverrides(c)
		if err != nil {
			return debug.Fatal("failed to load config: %v", err)
		}
		cfg.EnrichExclusionsWithBuildArtifacts()

		facade := newFacade(cfg)

		server := mcp.NewServer(&mcp.Implementation{
			Name:    "cix-mcp-server",
			Version: version.Version,
		}, nil)
		registerTools(server, facade)

		ctx, cancel := newContextWithSignals()
		defer cancel()

		debug.LogMCP("starting MCP server over stdio")
		return server.Run(ctx, &mcp.StdioTransport{})
	},
}

// toolArgs is the shared request shape every facade tool accepts over MCP:
// a flat string-keyed argument bag.
type toolArgs struct {
	Query       string `json:"query,omitempty"`
	Path        string `json:"path,omitempty"`
	Kind        string `json:"kind,omitempty"`
	FilePattern string `json:"filePattern,omitempty"`
	Extension     string `json:"extension,omitempty"`
	MaxDepth      int    `json:"maxDepth,omitempty"`
	IncludeHidden bool   `json:"includeHidden,omitempty"`
	Root          string `json:"root,omitempty"`
}

func (a toolArgs) toMap() map[string]string {
	m := map[string]string{}
	if a.Query != "" {
		m["query"] = a.Query
	}
	if a.Path != "" {
		m["path"] = a.Path
	}
	if a.Kind != "" {
		m["kind"] = a.Kind
	}
	if a.FilePattern != "" {
		m["filePattern"] = a.FilePattern
	}
	if a.Extension != "" {
		m["extension"] = a.Extension
	}
	if a.MaxDepth != 0 {
		m["maxDepth"] = fmt.Sprintf("%d", a.MaxDepth)
	}
	if a.IncludeHidden {
		m["includeHidden"] = "true"
	}
	if a.Root != "" {
		m["root"] = a.Root
	}
	return m
}

// toolSpec describes one MCP tool registration: its name, description, and
// the subset of toolArgs fields it actually accepts.
type toolSpec struct {
	name        string
	description string
	required    []string
	properties  map[string]*jsonschema.Schema
}

var toolSpecs = []toolSpec{
	{
		name:        "codebase_search",
		description: "Semantic search over indexed symbols: literal substring plus stemmed widening across name, signature, and documentation.",
		required:    []string{"query"},
		properties: map[string]*jsonschema.Schema{
			"query":       {Type: "string", Description: "Search text"},
			"kind":        {Type: "string", Description: "Symbol kind or alias (function, property, type, ...)"},
			"filePattern": {Type: "string", Description: "Restrict to files matching this glob/substring"},
		},
	},
	{
		name:        "find_symbol",
		description: "Exact symbol lookup by name, falling back to ranked fuzzy search when there is no exact match.",
		required:    []string{"query"},
		properties: map[string]*jsonschema.Schema{
			"query": {Type: "string", Description: "Symbol name"},
			"kind":  {Type: "string", Description: "Symbol kind or alias"},
		},
	},
	{
		name:        "list_symbols",
		description: "List every symbol extracted from one file, in declaration order.",
		required:    []string{"path"},
		properties: map[string]*jsonschema.Schema{
			"path": {Type: "string", Description: "File path, relative to the workspace root"},
		},
	},
	{
		name:        "find_references",
		description: "Find every definition and use of a symbol name across the indexed workspace.",
		required:    []string{"query"},
		properties: map[string]*jsonschema.Schema{
			"query": {Type: "string", Description: "Symbol name"},
		},
	},
	{
		name:        "project_structure",
		description: "Render the workspace's directory tree.",
		properties: map[string]*jsonschema.Schema{
			"maxDepth":      {Type: "integer", Description: "Maximum tree depth to render (capped at 6)"},
			"includeHidden": {Type: "boolean", Description: "Include dotfiles and dot-directories"},
		},
	},
	{
		name:        "file_outline",
		description: "Render one file's symbol outline, grouped by container.",
		required:    []string{"path"},
		properties: map[string]*jsonschema.Schema{
			"path": {Type: "string", Description: "File path, relative to the workspace root"},
		},
	},
	{
		name:        "find_files",
		description: "Find files by name/path, scored by match quality, with glob fallback.",
		required:    []string{"query"},
		properties: map[string]*jsonschema.Schema{
			"query":     {Type: "string", Description: "File name, path fragment, or glob pattern"},
			"extension": {Type: "string", Description: "Restrict to this file extension"},
		},
	},
	{
		name:        "codebase_stats",
		description: "Summarize the indexed workspace: file/directory counts, size, language breakdown, largest files.",
	},
	{
		name:        "dependency_graph",
		description: "Show a file's imports and the files that import it.",
		required:    []string{"path"},
		properties: map[string]*jsonschema.Schema{
			"path": {Type: "string", Description: "File path, relative to the workspace root"},
		},
	},
	{
		name:        "list_types",
		description: "List every type-kinded symbol in the index (classes, structs, enums, protocols, interfaces, traits).",
	},
	{
		name:        "list_tests",
		description: "List every symbol recognized as a test.",
	},
	{
		name:        "index_status",
		description: "Report the index's current lifecycle status and summary counters.",
	},
	{
		name:        "reindex",
		description: "Trigger an incremental update (or a first full index, if the workspace has never been indexed).",
		properties: map[string]*jsonschema.Schema{
			"root": {Type: "string", Description: "Workspace root to index, if this is the first index"},
		},
	},
}

func registerTools(server *mcp.Server, facade *toolfacade.Facade) {
	for _, spec := range toolSpecs {
		spec := spec
		server.AddTool(&mcp.Tool{
			Name:        spec.name,
			Description: spec.description,
			InputSchema: &jsonschema.Schema{
				Type:       "object",
				Properties: spec.properties,
				Required:   spec.required,
			},
		}, makeHandler(facade, spec.name))
	}
}

func makeHandler(facade *toolfacade.Facade, tool string) func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var parsed toolArgs
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &parsed); err != nil {
				return errorResult(tool, fmt.Errorf("invalid parameters: %w", err)), nil
			}
		}

		resp := facade.Invoke(ctx, tool, tool, parsed.toMap())
		if !resp.OK {
			return errorResult(tool, fmt.Errorf("%s", resp.Output)), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: resp.Output}},
		}, nil
	}
}

func errorResult(tool string, err error) *mcp.CallToolResult {
	content, marshalErr := json.Marshal(map[string]interface{}{
		"success":   false,
		"error":     err.Error(),
		"operation": tool,
	})
	if marshalErr != nil {
		content = []byte(fmt.Sprintf(`{"success":false,"error":%q}`, err.Error()))
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(content)}},
		IsError: true,
	}
}
