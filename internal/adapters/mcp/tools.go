package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"dircompare/internal/adapters/console"
	"dircompare/internal/application"
	"dircompare/internal/application/commands"
	"dircompare/internal/config"
	"dircompare/internal/ports"
)

// RegisterTools adds the comparison tools to the MCP server.
func RegisterTools(s *server.MCPServer, tree ports.Tree, log logrus.FieldLogger) {
	s.AddTool(missingTool(), missingHandler(tree, log))
	s.AddTool(reconcileTool(), reconcileHandler(tree, log))
}

// --- missing ---

func missingTool() mcp.Tool {
	return mcp.NewTool("missing",
		mcp.WithDescription("List files present under first_dir but absent, by relative path, from second_dir. Read-only."),
		mcp.WithString("first_dir",
			mcp.Description("Source root to enumerate"),
			mcp.Required(),
		),
		mcp.WithString("second_dir",
			mcp.Description("Target root checked for each relative path"),
			mcp.Required(),
		),
	)
}

func missingHandler(tree ports.Tree, log logrus.FieldLogger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfg, err := configFrom(req)
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewDiffCommand(tree, log, cfg.FirstDir, cfg.SecondDir).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(result.Missing) == 0 {
			return mcp.NewToolResultText("No missing files."), nil
		}
		return mcp.NewToolResultText(strings.Join(result.Paths(), "\n")), nil
	}
}

// --- reconcile ---

func reconcileTool() mcp.Tool {
	return mcp.NewTool("reconcile",
		mcp.WithDescription("Report missing files and copy them below copy_dir, mirroring their relative paths. Dry run unless copy is true."),
		mcp.WithString("first_dir",
			mcp.Description("Source root to enumerate"),
			mcp.Required(),
		),
		mcp.WithString("second_dir",
			mcp.Description("Target root checked for each relative path"),
			mcp.Required(),
		),
		mcp.WithString("copy_dir",
			mcp.Description("Destination root for missing files"),
			mcp.Required(),
		),
		mcp.WithBoolean("copy",
			mcp.Description("Perform the copies instead of printing them"),
		),
	)
}

func reconcileHandler(tree ports.Tree, log logrus.FieldLogger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cfg, err := configFrom(req)
		if err != nil {
			return toolError(err)
		}
		if err := application.ValidateRequired("copy_dir", cfg.CopyDir); err != nil {
			return toolError(err)
		}

		diff, err := commands.NewDiffCommand(tree, log, cfg.FirstDir, cfg.SecondDir).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var out bytes.Buffer
		reconcile := commands.NewReconcileCommand(tree, console.NewReporter(&out), diff.FirstDir, cfg.CopyDir, cfg.DryRun(), diff.Missing)
		result, err := reconcile.Execute(ctx)
		if err != nil {
			out.WriteString(err.Error())
			return mcp.NewToolResultError(out.String()), nil
		}

		verb := "copied"
		if result.DryRun {
			verb = "would copy"
		}
		fmt.Fprintf(&out, "%d missing, %s %d, %d directories", result.Reported, verb, result.Copied, result.Created)
		return mcp.NewToolResultText(out.String()), nil
	}
}

// --- helpers ---

func configFrom(req mcp.CallToolRequest) (config.Config, error) {
	cfg := config.Config{
		FirstDir:  req.GetString("first_dir", ""),
		SecondDir: req.GetString("second_dir", ""),
		CopyDir:   req.GetString("copy_dir", ""),
		Copy:      req.GetBool("copy", false),
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg.Normalized(), nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
