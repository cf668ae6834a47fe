package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/openkraft/plugval/internal/domain"
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List accepted plugin.validation values",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderLevels(lipgloss.NewRenderer(cmd.OutOrStdout())))
			return nil
		},
	}
}

func renderLevels(r *lipgloss.Renderer) string {
	nameStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#D97706")).Width(10)
	descStyle := r.NewStyle().Foreground(lipgloss.Color("#6B7280"))

	var b strings.Builder
	fmt.Fprintf(&b, "Values for %s (case insensitive, default %s):\n\n",
		domain.ValidationLevelKey, domain.LevelDefault)
	for _, l := range domain.ReportLevels {
		b.WriteString("  " + nameStyle.Render(l.String()) + descStyle.Render(l.Description()) + "\n")
	}
	return b.String()
}
