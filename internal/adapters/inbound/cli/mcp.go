package cli

import (
	"fmt"
	"path/filepath"

	mcpadapter "github.com/openkraft/plugval/internal/adapters/inbound/mcp"
	"github.com/openkraft/plugval/internal/adapters/outbound/config"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the plugval MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start plugval MCP server (stdio)",
		Long: "Start the plugval MCP server using stdio transport. Clients open build sessions, " +
			"report plugin and task issues into them and end them to receive the summary.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			absPath, err := filepath.Abs(projectPath)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			cfg, err := config.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			s := mcpadapter.NewPlugvalMCPServer(cfg)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Project path holding .plugval.yaml (defaults to current working directory)")

	return cmd
}
