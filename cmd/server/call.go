package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/goshopper/matchstick/pkg/mcpquic"
)

// cmdCall connects to a running server over QUIC and invokes one MCP tool.
// Arguments after the flags are key=value tool parameters.
func cmdCall(args []string) {
	fs := flag.NewFlagSet("call", flag.ExitOnError)
	addr := fs.String("addr", "localhost:8420", "server address")
	tool := fs.String("tool", "", "tool name (empty lists available tools)")
	insecure := fs.Bool("insecure", true, "skip TLS verification (dev servers use self-signed certs)")
	timeout := fs.Duration("timeout", 30*time.Second, "call timeout")
	fs.Parse(args)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := mcpquic.NewClient(*addr, mcpquic.ClientTLSConfig(*insecure))
	if err := c.Connect(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "connect %s: %v\n", *addr, err)
		os.Exit(1)
	}
	defer c.Close()

	if *tool == "" {
		tools, err := c.ListTools(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "list tools: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Available tools:")
		for _, t := range tools.Tools {
			fmt.Printf("  %-20s %s\n", t.Name, t.Description)
		}
		return
	}

	toolArgs := map[string]any{}
	for _, kv := range fs.Args() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			fmt.Fprintf(os.Stderr, "bad argument %q, want key=value\n", kv)
			os.Exit(1)
		}
		toolArgs[k] = v
	}

	result, err := c.CallTool(ctx, *tool, toolArgs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "call %s: %v\n", *tool, err)
		os.Exit(1)
	}
	if result.IsError {
		fmt.Fprintf(os.Stderr, "tool error: %s\n", textContent(result))
		os.Exit(1)
	}
	fmt.Println(textContent(result))
}

func textContent(result *mcp.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := mcp.AsTextContent(c); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}
