package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dircompare/internal/adapters/filesystem"
	"dircompare/internal/adapters/logging"
	mcpadapter "dircompare/internal/adapters/mcp"
	"dircompare/internal/config"
)

func main() {
	debug := flag.Bool("debug", false, "print debugging info to stderr")
	flag.Parse()

	// stdout carries the protocol, diagnostics go to stderr
	logger := logging.New(os.Stderr, *debug)
	repo := filesystem.NewRepository(logger)

	mcpServer := server.NewMCPServer(
		config.Name+"-mcp",
		config.Version,
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

	mcpadapter.RegisterTools(mcpServer, repo, logger)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("%s-mcp: %v", config.Name, err)
	}
}
