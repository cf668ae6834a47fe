package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/plugval/internal/domain"
)

// registerTools registers all plugval MCP tools on the given server.
func registerTools(s *server.MCPServer, host *Host) {
	s.AddTool(
		mcplib.NewTool("plugval_start_session",
			mcplib.WithDescription("Open a build session and return its id"),
			mcplib.WithString("level", mcplib.Description("Report level: none, inline, brief, default or verbose")),
		),
		handleStartSession(host),
	)

	s.AddTool(
		mcplib.NewTool("plugval_report_plugin_issue",
			mcplib.WithDescription("Record a plugin-level validation issue in a session"),
			sessionParam(),
			pluginParams("group"), pluginParams("artifact"), pluginParams("version"),
			mcplib.WithString("declaration", mcplib.Description("Where the plugin was declared")),
			mcplib.WithString("occurrence", mcplib.Description("Which module invoked the plugin")),
			mcplib.WithString("issue", mcplib.Required(), mcplib.Description("Issue text")),
		),
		handleReportPluginIssue(host),
	)

	s.AddTool(
		mcplib.NewTool("plugval_report_task_issue",
			mcplib.WithDescription("Record a validation issue scoped to one task (goal) of a plugin"),
			sessionParam(),
			pluginParams("group"), pluginParams("artifact"), pluginParams("version"),
			mcplib.WithString("goal", mcplib.Required(), mcplib.Description("Fully qualified goal name")),
			mcplib.WithString("implementation", mcplib.Required(), mcplib.Description("Implementing class name")),
			mcplib.WithString("declaration", mcplib.Description("Where the plugin was declared")),
			mcplib.WithString("occurrence", mcplib.Description("Which module invoked the plugin")),
			mcplib.WithString("issue", mcplib.Required(), mcplib.Description("Issue text")),
		),
		handleReportTaskIssue(host),
	)

	s.AddTool(
		mcplib.NewTool("plugval_session_issues",
			mcplib.WithDescription("Return the issues collected so far in a session as JSON"),
			sessionParam(),
		),
		handleSessionIssues(host),
	)

	s.AddTool(
		mcplib.NewTool("plugval_end_session",
			mcplib.WithDescription("End a session and return its log output, including the summary"),
			sessionParam(),
		),
		handleEndSession(host),
	)
}

func sessionParam() mcplib.ToolOption {
	return mcplib.WithString("session_id", mcplib.Required(), mcplib.Description("Id returned by plugval_start_session"))
}

func pluginParams(name string) mcplib.ToolOption {
	return mcplib.WithString(name, mcplib.Required(), mcplib.Description("Plugin "+name))
}

func handleStartSession(host *Host) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		level := request.GetString("level", "")
		if level != "" {
			if _, err := domain.ParseReportLevel(level); err != nil {
				return errorResult(fmt.Sprintf("unknown level %q (valid: %s)", level, domain.ReportLevelNames())), nil
			}
		}
		return textResult(host.Start(level)), nil
	}
}

func handleReportPluginIssue(host *Host) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		hs, errRes := requireSession(host, request)
		if errRes != nil {
			return errRes, nil
		}
		plugin, err := requirePlugin(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		issue, err := request.RequireString("issue")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		decl := request.GetString("declaration", "")
		occ := request.GetString("occurrence", "")
		if decl == "" && occ == "" {
			hs.reporter.ReportPluginIssue(hs.session, plugin, issue)
		} else {
			hs.reporter.ReportPluginIssueAt(hs.session, plugin, decl, occ, issue)
		}
		return textResult("recorded"), nil
	}
}

func handleReportTaskIssue(host *Host) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		hs, errRes := requireSession(host, request)
		if errRes != nil {
			return errRes, nil
		}
		plugin, err := requirePlugin(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		goal, err := request.RequireString("goal")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		impl, err := request.RequireString("implementation")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		issue, err := request.RequireString("issue")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		task := domain.TaskIdentity{Goal: goal, Implementation: impl}
		hs.reporter.ReportTaskIssue(hs.session, plugin,
			request.GetString("declaration", ""), request.GetString("occurrence", ""), task, issue)
		return textResult("recorded"), nil
	}
}

func handleSessionIssues(host *Host) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("session_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		snap, ok := host.Snapshot(id)
		if !ok {
			return errorResult(fmt.Sprintf("unknown session %q", id)), nil
		}
		if snap == nil {
			snap = []domain.IssueSetSnapshot{}
		}
		return jsonResult(snap)
	}
}

func handleEndSession(host *Host) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		id, err := request.RequireString("session_id")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		lines, ok := host.End(id)
		if !ok {
			return errorResult(fmt.Sprintf("unknown session %q", id)), nil
		}
		return textResult(strings.Join(lines, "\n")), nil
	}
}

func requireSession(host *Host, request mcplib.CallToolRequest) (*hostedSession, *mcplib.CallToolResult) {
	id, err := request.RequireString("session_id")
	if err != nil {
		return nil, errorResult(err.Error())
	}
	hs, ok := host.lookup(id)
	if !ok {
		return nil, errorResult(fmt.Sprintf("unknown session %q", id))
	}
	return hs, nil
}

func requirePlugin(request mcplib.CallToolRequest) (domain.PluginIdentity, error) {
	var p domain.PluginIdentity
	var err error
	if p.Group, err = request.RequireString("group"); err != nil {
		return p, err
	}
	if p.Artifact, err = request.RequireString("artifact"); err != nil {
		return p, err
	}
	if p.Version, err = request.RequireString("version"); err != nil {
		return p, err
	}
	return p, nil
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
