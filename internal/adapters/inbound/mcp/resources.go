package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/openkraft/plugval/internal/domain"
)

type levelInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// registerResources registers all plugval MCP resources on the given server.
func registerResources(s *server.MCPServer, host *Host) {
	s.AddResource(
		mcplib.NewResource(
			"plugval://levels",
			"Report Levels",
			mcplib.WithResourceDescription("Accepted values of the plugin.validation property"),
			mcplib.WithMIMEType("application/json"),
		),
		handleLevelsResource(),
	)

	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"plugval://sessions/{id}",
			"Session Issues",
			mcplib.WithTemplateDescription("Issues collected so far in an open session"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleSessionResource(host),
	)
}

func handleLevelsResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		levels := make([]levelInfo, 0, len(domain.ReportLevels))
		for _, l := range domain.ReportLevels {
			levels = append(levels, levelInfo{Name: l.String(), Description: l.Description()})
		}

		data, err := json.MarshalIndent(levels, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling levels: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "plugval://levels",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleSessionResource(host *Host) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		id := sessionIDArgument(request.Params.Arguments["id"])
		if id == "" {
			return nil, fmt.Errorf("session id is required")
		}

		snap, ok := host.Snapshot(id)
		if !ok {
			return nil, fmt.Errorf("unknown session %q", id)
		}
		if snap == nil {
			snap = []domain.IssueSetSnapshot{}
		}

		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling session: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

// sessionIDArgument reads a template argument, which the server may pass
// as a string or a single-element list.
func sessionIDArgument(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case []string:
		if len(id) > 0 {
			return id[0]
		}
	}
	return ""
}
