package domain

// PluginIdentity names a plugin by its coordinates. Plugins with the same
// identity share one IssueSet no matter which module reports them.
type PluginIdentity struct {
	Group    string `json:"group"`
	Artifact string `json:"artifact"`
	Version  string `json:"version"`
}

// Key returns the plugin key in group:artifact:version form.
func (p PluginIdentity) Key() string {
	return PluginKey(p.Group, p.Artifact, p.Version)
}

// PluginKey joins plugin coordinates into a registry key.
func PluginKey(group, artifact, version string) string {
	return group + ":" + artifact + ":" + version
}

// TaskIdentity names one goal of a plugin together with the class that
// implements it.
type TaskIdentity struct {
	Goal           string `json:"goal"`
	Implementation string `json:"implementation"`
}

// Key returns the task key used to group task-level issues.
func (t TaskIdentity) Key() string {
	return TaskKey(t.Goal, t.Implementation)
}

// TaskKey formats "<goal> (<implementation>)".
func TaskKey(goal, implementation string) string {
	return goal + " (" + implementation + ")"
}

// ExpectedProvidedScopeExclusions lists group:artifact pairs that do not
// belong to the build tool core and so must not be flagged by
// "expected in provided scope" checks.
var ExpectedProvidedScopeExclusions = []string{
	"org.apache.maven:maven-archiver",
	"org.apache.maven:maven-jxr",
	"org.apache.maven:plexus-utils",
}

// IsProvidedScopeExclusion reports whether group:artifact is excluded from
// provided-scope checks.
func IsProvidedScopeExclusion(group, artifact string) bool {
	ga := group + ":" + artifact
	for _, e := range ExpectedProvidedScopeExclusions {
		if e == ga {
			return true
		}
	}
	return false
}
