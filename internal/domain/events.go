package domain

import "fmt"

// EventKind says which reporting call a BuildEvent replays.
type EventKind string

const (
	EventPluginIssue EventKind = "plugin"
	EventTaskIssue   EventKind = "task"
)

// BuildEvent is one recorded report call. Declaration and Occurrence take
// precedence over the structured DeclaredAt and Module fields.
type BuildEvent struct {
	Kind        EventKind           `json:"kind"`
	Plugin      PluginIdentity      `json:"plugin"`
	Task        *TaskIdentity       `json:"task,omitempty"`
	Declaration string              `json:"declaration,omitempty"`
	Occurrence  string              `json:"occurrence,omitempty"`
	DeclaredAt  *InputLocation      `json:"declared_at,omitempty"`
	Module      *ProjectCoordinates `json:"module,omitempty"`
	Issue       string              `json:"issue"`
}

// Validate checks that the event carries enough to be replayed.
func (e BuildEvent) Validate() error {
	switch e.Kind {
	case EventPluginIssue:
	case EventTaskIssue:
		if e.Task == nil || e.Task.Goal == "" {
			return fmt.Errorf("task event requires task.goal")
		}
	default:
		return fmt.Errorf("unknown event kind %q (valid: plugin, task)", e.Kind)
	}
	if e.Plugin.Artifact == "" {
		return fmt.Errorf("plugin.artifact must not be empty")
	}
	if e.Issue == "" {
		return fmt.Errorf("issue must not be empty")
	}
	return nil
}

// ResolvedDeclaration returns the declaration string, formatting
// DeclaredAt against rootDir when no preformatted value is present.
func (e BuildEvent) ResolvedDeclaration(rootDir string) string {
	if e.Declaration != "" || e.DeclaredAt == nil {
		return e.Declaration
	}
	return FormatDeclaration(e.DeclaredAt, rootDir)
}

// ResolvedOccurrence returns the occurrence string, formatting Module
// against rootDir when no preformatted value is present.
func (e BuildEvent) ResolvedOccurrence(rootDir string) string {
	if e.Occurrence != "" || e.Module == nil {
		return e.Occurrence
	}
	return FormatOccurrence(e.Module, rootDir)
}
