// Package console provides the leveled line logger that validation warnings
// and summaries are written to.
package console

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Level is a logger threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

var levelByName = map[string]Level{
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
	"off":   LevelOff,
}

// ParseLevel maps a level name case-insensitively. Empty or unknown names
// fall back to info.
func ParseLevel(name string) Level {
	if l, ok := levelByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return l
	}
	return LevelInfo
}

var (
	debugColor = lipgloss.Color("#6B7280")
	infoColor  = lipgloss.Color("#8B949E")
	warnColor  = lipgloss.Color("#F59E0B")
	errorColor = lipgloss.Color("#EF4444")
)

// Logger writes "[LEVEL] message" lines to a writer. It is safe for
// concurrent use; each line is written with a single Write call.
type Logger struct {
	mu        sync.Mutex
	w         io.Writer
	threshold Level
	tags      map[Level]string
}

// New creates a Logger writing to w at the named threshold. A nil writer
// discards everything and reports every level as disabled.
func New(w io.Writer, level string) *Logger {
	l := &Logger{w: w, threshold: ParseLevel(level)}
	if w == nil {
		return l
	}

	r := lipgloss.NewRenderer(w)
	l.tags = map[Level]string{
		LevelDebug: r.NewStyle().Foreground(debugColor).Render("[DEBUG]"),
		LevelInfo:  r.NewStyle().Foreground(infoColor).Bold(true).Render("[INFO]"),
		LevelWarn:  r.NewStyle().Foreground(warnColor).Bold(true).Render("[WARNING]"),
		LevelError: r.NewStyle().Foreground(errorColor).Bold(true).Render("[ERROR]"),
	}
	return l
}

// Enabled reports whether lines at level are written.
func (l *Logger) Enabled(level Level) bool {
	return l.w != nil && level < LevelOff && level >= l.threshold
}

// WarnEnabled reports whether warnings are written.
func (l *Logger) WarnEnabled() bool { return l.Enabled(LevelWarn) }

func (l *Logger) Debug(msg string) { l.log(LevelDebug, msg) }
func (l *Logger) Info(msg string)  { l.log(LevelInfo, msg) }
func (l *Logger) Warn(msg string)  { l.log(LevelWarn, msg) }
func (l *Logger) Error(msg string) { l.log(LevelError, msg) }

// Infof formats and logs at info level.
func (l *Logger) Infof(format string, args ...any) {
	if l.Enabled(LevelInfo) {
		l.log(LevelInfo, fmt.Sprintf(format, args...))
	}
}

func (l *Logger) log(level Level, msg string) {
	if !l.Enabled(level) {
		return
	}
	line := l.tags[level]
	if msg != "" {
		line += " " + msg
	}
	line += "\n"

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.w, line)
}
