package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

func toolRequest(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func TestHandleTree_FreshDiscardsCachedParses(t *testing.T) {
	s := newMCPServer(MCPConfig{CacheTTL: time.Minute})

	stale, err := s.cache.parse(testDump)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := s.handleTree(context.Background(), toolRequest(map[string]any{
		"dump":  testDump,
		"fresh": true,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("tool returned error result: %+v", result)
	}

	after, err := s.cache.parse(testDump)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after == stale {
		t.Error("expected fresh:true to discard the previously cached tree")
	}
}

func TestHandleTree_ReusesCacheByDefault(t *testing.T) {
	s := newMCPServer(MCPConfig{CacheTTL: time.Minute})

	first, err := s.cache.parse(testDump)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.handleTree(context.Background(), toolRequest(map[string]any{
		"dump": testDump,
	})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := s.cache.parse(testDump)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected the cached tree to survive a default tool call")
	}
}

func TestHandleAccessors_MissingDump(t *testing.T) {
	s := newMCPServer(MCPConfig{CacheTTL: time.Minute})

	result, err := s.handleAccessors(context.Background(), toolRequest(map[string]any{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result when dump is missing")
	}
}
