package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ianfixes/Illuminator/internal/model"
	"github.com/ianfixes/Illuminator/internal/output"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the parse cache.
type mcpServer struct {
	cache *parseCache
	mcp   *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all illuminator tools.
func newMCPServer(cfg MCPConfig) *mcpServer {
	s := &mcpServer{
		cache: newParseCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"illuminator",
		"1.0.0",
	)

	s.registerTools()
	return s
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// accessors
	s.mcp.AddTool(
		mcp.NewTool("accessors",
			mcp.WithDescription("Parse an accessibility debug dump and return one accessor expression per locatable element, ready to paste into test code."),
			mcp.WithString("dump", mcp.Description("Full debug description text, including the element subtree section"), mcp.Required()),
			mcp.WithString("root", mcp.Description("Variable name of the application root in generated expressions (default: app)")),
			mcp.WithBoolean("fresh", mcp.Description("Discard cached parses and re-parse the dump text")),
		),
		s.handleAccessors,
	)

	// tree
	s.mcp.AddTool(
		mcp.NewTool("tree",
			mcp.WithDescription("Parse an accessibility debug dump into a typed element tree. Use flat:true for a breadcrumb list with compiled accessors."),
			mcp.WithString("dump", mcp.Description("Full debug description text"), mcp.Required()),
			mcp.WithBoolean("flat", mcp.Description("Flatten the tree into a breadcrumb list")),
			mcp.WithString("types", mcp.Description("Comma-separated type filter for flat output (e.g. \"Button,Cell\")")),
			mcp.WithString("root", mcp.Description("Variable name used for accessor expressions (default: app)")),
			mcp.WithBoolean("fresh", mcp.Description("Discard cached parses and re-parse the dump text")),
		),
		s.handleTree,
	)

	// diff
	s.mcp.AddTool(
		mcp.NewTool("diff",
			mcp.WithDescription("Compare two dumps of the same screen and report elements added, removed, and changed, matched by semantic identity rather than debug handle."),
			mcp.WithString("before", mcp.Description("Debug description before the change"), mcp.Required()),
			mcp.WithString("after", mcp.Description("Debug description after the change"), mcp.Required()),
			mcp.WithBoolean("fresh", mcp.Description("Discard cached parses and re-parse both dumps")),
		),
		s.handleDiff,
	)
}

// resultToText serializes a result struct to YAML for an MCP response.
func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("marshal result: %v", err)
	}
	return string(b)
}

func (s *mcpServer) handleAccessors(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	dump := stringParam(params, "dump", "")
	rootVar := stringParam(params, "root", "app")

	if dump == "" {
		return mcp.NewToolResultError("dump is required"), nil
	}
	if boolParam(params, "fresh", false) {
		s.cache.invalidateAll()
	}

	root, err := s.cache.parse(dump)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to parse dump: %v", err)), nil
	}

	accessors := model.AccessorDumpTree(root, rootVar)
	result := output.AccessorsResult{
		Root:      rootVar,
		Count:     len(accessors),
		Accessors: accessors,
	}
	if result.Accessors == nil {
		result.Accessors = []string{}
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	dump := stringParam(params, "dump", "")
	flat := boolParam(params, "flat", false)
	typesStr := stringParam(params, "types", "")
	rootVar := stringParam(params, "root", "app")

	if dump == "" {
		return mcp.NewToolResultError("dump is required"), nil
	}
	if boolParam(params, "fresh", false) {
		s.cache.invalidateAll()
	}

	root, err := s.cache.parse(dump)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to parse dump: %v", err)), nil
	}

	if !flat {
		return mcp.NewToolResultText(resultToText(output.TreeResult{Root: root})), nil
	}

	elements := model.FlattenTree(root, rootVar)
	if typesStr != "" {
		var types []string
		for _, t := range strings.Split(typesStr, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
		elements = model.FilterFlat(elements, types)
	}
	return mcp.NewToolResultText(resultToText(output.TreeFlatResult{Elements: elements})), nil
}

func (s *mcpServer) handleDiff(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	before := stringParam(params, "before", "")
	after := stringParam(params, "after", "")

	if before == "" || after == "" {
		return mcp.NewToolResultError("before and after are required"), nil
	}
	if boolParam(params, "fresh", false) {
		s.cache.invalidateAll()
	}

	prevRoot, err := s.cache.parse(before)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to parse before dump: %v", err)), nil
	}
	currRoot, err := s.cache.parse(after)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to parse after dump: %v", err)), nil
	}

	diff := model.DiffDumps(
		model.FlattenTree(prevRoot, "app"),
		model.FlattenTree(currRoot, "app"),
	)
	return mcp.NewToolResultText(resultToText(output.DiffResult{Diff: diff})), nil
}
