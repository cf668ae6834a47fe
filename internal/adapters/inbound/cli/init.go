package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openkraft/plugval/internal/adapters/outbound/config"
	"github.com/openkraft/plugval/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		level string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .plugval.yaml configuration file",
		Long:  "Create a .plugval.yaml with the report level and logger settings.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			l, err := domain.ParseReportLevel(level)
			if err != nil {
				return fmt.Errorf("unknown level %q (valid: %s)", level, domain.ReportLevelNames())
			}

			if err := os.WriteFile(dest, []byte(generateConfig(l)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", "default", "Report level (none, inline, brief, default, verbose)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .plugval.yaml")

	return cmd
}

func generateConfig(l domain.ReportLevel) string {
	return fmt.Sprintf(`# plugval configuration
# See: plugval levels

properties:
  # %s
  %s: %s

log:
  # debug, info, warn, error or off. error and off hide the summary.
  level: info

# Concurrent reporters used by "plugval replay" (0 = number of CPUs).
jobs: 0
`, l.Description(), domain.ValidationLevelKey, strings.ToLower(l.String()))
}
