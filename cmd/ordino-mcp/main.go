package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "ordino/internal/adapters/mcp"
	"ordino/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("ordino-mcp: %v", err)
	}
	registry, err := cfg.Registry()
	if err != nil {
		log.Fatalf("ordino-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"ordino-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, registry)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("ordino-mcp: %v", err)
	}
}
