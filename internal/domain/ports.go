package domain

// Logger is the warning sink issues and summaries are written to.
type Logger interface {
	WarnEnabled() bool
	Warn(msg string)
}

// SessionData is a session-scoped key-value store.
type SessionData interface {
	// ComputeIfAbsent returns the value under key, storing create() first
	// if the key is missing. It is atomic per store.
	ComputeIfAbsent(key string, create func() any) any
}

// Session is the handle every reporting call receives. It scopes the
// issue registry and exposes the session configuration.
type Session interface {
	Data() SessionData
	Property(key string) (string, bool)
}

// SessionEndListener is notified once when a build session ends.
type SessionEndListener interface {
	SessionEnded(s Session)
}

// BuildSession is a Session with a one-shot end signal.
type BuildSession interface {
	Session
	Subscribe(l SessionEndListener)
	End()
}

// ConfigLoader loads project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// EventSource reads recorded build events.
type EventSource interface {
	Read(path string) ([]BuildEvent, error)
}

// WorktreeLocator finds the top-level directory of the project containing
// path.
type WorktreeLocator interface {
	Root(path string) (string, error)
}
