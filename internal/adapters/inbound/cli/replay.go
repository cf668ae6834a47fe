package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/openkraft/plugval/internal/adapters/outbound/config"
	"github.com/openkraft/plugval/internal/adapters/outbound/console"
	"github.com/openkraft/plugval/internal/adapters/outbound/eventlog"
	"github.com/openkraft/plugval/internal/adapters/outbound/gitinfo"
	"github.com/openkraft/plugval/internal/adapters/outbound/session"
	"github.com/openkraft/plugval/internal/application"
	"github.com/openkraft/plugval/internal/domain"
)

func newReplayCmd() *cobra.Command {
	var (
		path       string
		root       string
		defines    []string
		jobs       int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "replay <events.jsonl>",
		Short: "Replay recorded plugin validation events as one build session",
		Long: "Report every event of a JSON-lines event log concurrently into a fresh build session, " +
			"then end the session and print the validation summary.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			overrides, err := parseDefines(defines)
			if err != nil {
				return err
			}
			cfg = cfg.WithProperties(overrides)
			if cmd.Flags().Changed("jobs") {
				cfg.Jobs = jobs
			}

			rootDir, err := resolveRootDir(root, absPath, gitinfo.New())
			if err != nil {
				return err
			}

			logOut := cmd.OutOrStdout()
			if jsonOutput {
				logOut = cmd.ErrOrStderr()
			}
			logger := console.New(logOut, cfg.Log.Level)

			sess := session.New(uuid.NewString(), cfg.Properties)
			svc := application.NewReplayService(eventlog.New(), logger)
			result, err := svc.Replay(cmd.Context(), sess, args[0], application.ReplayOptions{
				RootDir: rootDir,
				Jobs:    cfg.Jobs,
			})
			if err != nil {
				return fmt.Errorf("replay failed: %w", err)
			}
			logger.Infof("Replayed %d event(s) into session %s", result.Events, sess.ID())

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path holding .plugval.yaml")
	cmd.Flags().StringVar(&root, "root", "", "Top-level project directory (defaults to the enclosing git worktree, then --path)")
	cmd.Flags().StringArrayVarP(&defines, "define", "D", nil, "Set a session property (key=value), e.g. -D plugin.validation=verbose")
	cmd.Flags().IntVar(&jobs, "jobs", 0, "Concurrent reporters (0 = number of CPUs)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the collected issues as JSON; log lines go to stderr")

	return cmd
}

func parseDefines(defines []string) (map[string]string, error) {
	props := make(map[string]string, len(defines))
	for _, d := range defines {
		key, value, ok := strings.Cut(d, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid property %q (expected key=value)", d)
		}
		props[key] = value
	}
	return props, nil
}

func resolveRootDir(root, projectPath string, locator domain.WorktreeLocator) (string, error) {
	if root != "" {
		abs, err := filepath.Abs(root)
		if err != nil {
			return "", fmt.Errorf("resolving root: %w", err)
		}
		return abs, nil
	}
	if top, err := locator.Root(projectPath); err == nil {
		return top, nil
	}
	return projectPath, nil
}
