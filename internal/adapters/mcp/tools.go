// Package mcp exposes the organizer over the Model Context Protocol so
// agents can inspect the numbering structure, ask for category
// suggestions, and preview organization plans. All tools are read-only:
// nothing here touches the filesystem beyond listing input files.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"ordino/internal/adapters/filesystem"
	"ordino/internal/domain"
	"ordino/internal/organizer"
)

// RegisterTools adds the organizer tools to the MCP server.
func RegisterTools(s *server.MCPServer, registry *domain.Registry) {
	s.AddTool(overviewTool(), overviewHandler(registry))
	s.AddTool(suggestTool(), suggestHandler(registry))
	s.AddTool(planTool(), planHandler(registry))
}

// --- overview ---

func overviewTool() mcp.Tool {
	return mcp.NewTool("overview",
		mcp.WithDescription("Show the configured Johnny Decimal structure: areas, categories, and the system area if the layout has one."),
	)
}

func overviewHandler(registry *domain.Registry) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(organizer.Overview(registry)), nil
	}
}

// --- suggest_category ---

func suggestTool() mcp.Tool {
	return mcp.NewTool("suggest_category",
		mcp.WithDescription("Suggest a Johnny Decimal category for a file based on its name and an optional description."),
		mcp.WithString("file_path",
			mcp.Description("Path or name of the file to categorize"),
			mcp.Required(),
		),
		mcp.WithString("description",
			mcp.Description("What the file contains, if known"),
		),
		mcp.WithNumber("category_hint",
			mcp.Description("Preferred category number. Used when it exists in the structure."),
		),
	)
}

func suggestHandler(registry *domain.Registry) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filePath := req.GetString("file_path", "")
		if filePath == "" {
			return toolError(fmt.Errorf("file_path is required"))
		}
		description := req.GetString("description", "")
		hint := req.GetInt("category_hint", domain.NoHint)

		suggestion := domain.NewCategorizer(registry).Suggest(filePath, description, hint)
		areaName, _ := registry.AreaName(suggestion.Area)
		return mcp.NewToolResultText(fmt.Sprintf("%d %s (area %d %s)",
			suggestion.Category, suggestion.CategoryName,
			suggestion.Area, areaName)), nil
	}
}

// --- plan ---

func planTool() mcp.Tool {
	return mcp.NewTool("plan",
		mcp.WithDescription("Dry-run an organization plan: list the files under input_dir and show where each would go under output_dir. No files are moved."),
		mcp.WithString("input_dir",
			mcp.Description("Directory (or single file) to organize"),
			mcp.Required(),
		),
		mcp.WithString("output_dir",
			mcp.Description("Destination root for the organized structure"),
			mcp.Required(),
		),
		mcp.WithString("mode",
			mcp.Description("Organization mode: jd (default), date, or type"),
		),
	)
}

func planHandler(registry *domain.Registry) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		inputDir := req.GetString("input_dir", "")
		outputDir := req.GetString("output_dir", "")
		if inputDir == "" || outputDir == "" {
			return toolError(fmt.Errorf("input_dir and output_dir are required"))
		}

		files, err := filesystem.CollectFiles(inputDir)
		if err != nil {
			return toolError(err)
		}
		if len(files) == 0 {
			return mcp.NewToolResultText("No files to organize."), nil
		}

		var plan organizer.Plan
		switch mode := req.GetString("mode", "jd"); mode {
		case "jd":
			plan = organizer.NewPlanner(registry).Plan(files, outputDir, nil)
		case "date":
			plan = organizer.PlanByDate(files, outputDir, domain.LinkHard)
		case "type":
			plan = organizer.PlanByType(files, outputDir, domain.LinkHard)
		default:
			return toolError(fmt.Errorf("unknown mode: %s (expected jd, date, or type)", mode))
		}

		return mcp.NewToolResultText(renderPlan(plan, outputDir)), nil
	}
}

func renderPlan(plan organizer.Plan, base string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%d operations, %d skipped\n\n", len(plan.Operations), len(plan.Skipped))
	for _, op := range plan.Operations {
		fmt.Fprintf(&sb, "%s -> %s\n", op.Source, op.Destination)
	}
	for _, skip := range plan.Skipped {
		fmt.Fprintf(&sb, "skipped %s: %s\n", skip.Path, skip.Reason)
	}

	sb.WriteString("\n")
	sb.WriteString(organizer.RenderTree(organizer.SimulateTree(plan.Operations, base)))
	return sb.String()
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
