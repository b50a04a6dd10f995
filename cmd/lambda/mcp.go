package main

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/egarof00/PLGroup/pkg/ast"
	"github.com/egarof00/PLGroup/pkg/parser"
	"github.com/egarof00/PLGroup/pkg/printer"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the evaluator as an MCP tool over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.logger.Info("serving mcp over stdio")
			return server.ServeStdio(a.newMCPServer())
		},
	}
}

func (a *app) newMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"lambda",
		strings.TrimPrefix(cliToolVersion, "lambda "),
		server.WithToolCapabilities(false),
	)
	s.AddTool(
		mcp.NewTool("evaluate",
			mcp.WithDescription("Evaluate a lambda calculus term and return the rendered result."),
			mcp.WithString("source",
				mcp.Required(),
				mcp.Description(`Term to evaluate, e.g. (\x.x+1) 2`),
			),
			mcp.WithBoolean("ast",
				mcp.Description("If true, also return the parsed term as JSON"),
			),
		),
		a.handleEvaluate,
	)
	return s
}

func (a *app) handleEvaluate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source, err := request.RequireString("source")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	term, err := parser.Parse(source)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	result, err := a.interp.Evaluate(term)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out := printer.Render(result)
	if request.GetBool("ast", false) {
		data, err := ast.MarshalTermIndent(term)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out += "\n" + string(data)
	}
	return mcp.NewToolResultText(out), nil
}
