package application

import (
	"fmt"

	"github.com/openkraft/plugval/internal/domain"
)

const remediationHint = "Fix reported issues by adjusting plugin configuration or by upgrading above listed plugins. " +
	"If no upgrade available, please notify plugin maintainers about reported issues."

// SummaryRenderer writes the end-of-session summary of collected issues.
// It implements domain.SessionEndListener.
type SummaryRenderer struct {
	logger domain.Logger
	levels *LevelResolver
}

// NewSummaryRenderer creates a renderer writing warnings to logger.
func NewSummaryRenderer(logger domain.Logger) *SummaryRenderer {
	return &SummaryRenderer{logger: logger, levels: NewLevelResolver(logger)}
}

// SessionEnded renders the summary for s. It reads the registry without
// blocking reporters; issues reported concurrently may be missed.
func (r *SummaryRenderer) SessionEnded(s domain.Session) {
	if r.logger == nil || !r.logger.WarnEnabled() {
		return
	}
	level := r.levels.ResolveSession(s)
	if level == domain.LevelNone || level == domain.LevelInline {
		return
	}
	reg := domain.RegistryFor(s)
	if reg == nil || reg.Len() == 0 {
		return
	}
	for _, line := range SummaryLines(level, reg.Snapshot()) {
		r.logger.Warn(line)
	}
}

// SummaryLines builds the summary for the given level. NONE, INLINE and an
// empty registry produce no lines.
func SummaryLines(level domain.ReportLevel, plugins []domain.IssueSetSnapshot) []string {
	if level == domain.LevelNone || level == domain.LevelInline || len(plugins) == 0 {
		return nil
	}

	lines := []string{
		"",
		fmt.Sprintf("Plugin validation issues were detected in %d plugin(s)", len(plugins)),
		"",
	}
	if level == domain.LevelBrief {
		return lines
	}

	for _, p := range plugins {
		lines = append(lines, " * "+p.Plugin)
		if level == domain.LevelVerbose {
			lines = appendDetails(lines, p)
		}
	}

	lines = append(lines, "")
	if level == domain.LevelVerbose {
		lines = append(lines, remediationHint)
	}
	lines = append(lines,
		fmt.Sprintf("For more or less details, use '%s' property with one of the values (case insensitive): %s",
			domain.ValidationLevelKey, domain.ReportLevelNames()),
		"",
	)
	return lines
}

func appendDetails(lines []string, p domain.IssueSetSnapshot) []string {
	lines = appendGroup(lines, "  Declared at location(s):", p.Declarations)
	lines = appendGroup(lines, "  Used in module(s):", p.Occurrences)
	lines = appendGroup(lines, "  Plugin issue(s):", p.PluginIssues)
	if len(p.TaskIssues) > 0 {
		lines = append(lines, "  Mojo issue(s):")
		for _, task := range p.TaskIssues {
			lines = append(lines, "   * Mojo "+task.Task)
			for _, issue := range task.Issues {
				lines = append(lines, "     - "+issue)
			}
		}
	}
	return append(lines, "")
}

func appendGroup(lines []string, header string, items []string) []string {
	if len(items) == 0 {
		return lines
	}
	lines = append(lines, header)
	for _, item := range items {
		lines = append(lines, "   * "+item)
	}
	return lines
}
