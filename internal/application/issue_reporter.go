package application

import "github.com/openkraft/plugval/internal/domain"

// IssueReporter records plugin validation issues into the session's
// registry. All methods are safe for concurrent use and never fail: a
// missing session is a no-op and a missing logger only drops inline lines.
type IssueReporter struct {
	logger domain.Logger
	levels *LevelResolver
}

// NewIssueReporter creates a reporter that logs inline issues to logger.
func NewIssueReporter(logger domain.Logger) *IssueReporter {
	return &IssueReporter{logger: logger, levels: NewLevelResolver(logger)}
}

// ReportPluginIssue records a plugin-level issue when only the plugin
// artifact is known.
func (r *IssueReporter) ReportPluginIssue(s domain.Session, plugin domain.PluginIdentity, issue string) {
	r.ReportPluginIssueAt(s, plugin, "", "", issue)
}

// ReportPluginIssueAt records a plugin-level issue together with where the
// plugin was declared and which module invoked it.
func (r *IssueReporter) ReportPluginIssueAt(s domain.Session, plugin domain.PluginIdentity, declaration, occurrence, issue string) {
	if s == nil {
		return
	}
	if reg := domain.RegistryFor(s); reg != nil {
		reg.GetOrCreate(plugin.Key()).AddPluginIssue(declaration, occurrence, issue)
	}
	r.inline(s, issue)
}

// ReportTaskIssue records an issue scoped to one task of the plugin.
func (r *IssueReporter) ReportTaskIssue(s domain.Session, plugin domain.PluginIdentity, declaration, occurrence string, task domain.TaskIdentity, issue string) {
	if s == nil {
		return
	}
	if reg := domain.RegistryFor(s); reg != nil {
		reg.GetOrCreate(plugin.Key()).AddTaskIssue(declaration, occurrence, task.Key(), issue)
	}
	r.inline(s, issue)
}

// inline logs the issue immediately under INLINE. Every call logs, even
// when storage already holds the same text.
func (r *IssueReporter) inline(s domain.Session, issue string) {
	if r.logger == nil {
		return
	}
	if r.levels.ResolveSession(s) == domain.LevelInline {
		r.logger.Warn(" " + issue)
	}
}
