package mcp

import (
	"sync"

	"github.com/google/uuid"

	"github.com/openkraft/plugval/internal/adapters/outbound/console"
	"github.com/openkraft/plugval/internal/adapters/outbound/session"
	"github.com/openkraft/plugval/internal/application"
	"github.com/openkraft/plugval/internal/domain"
)

// hostedSession is one open build session with its own warning sink.
type hostedSession struct {
	session  *session.MemorySession
	output   *console.Recorder
	reporter *application.IssueReporter
}

// Host keeps the open build sessions of a long-lived server. Sessions are
// isolated: each has its own data store, registry and output.
type Host struct {
	mu       sync.Mutex
	sessions map[string]*hostedSession
	defaults domain.ProjectConfig
}

// NewHost creates a Host whose sessions start from defaults.
func NewHost(defaults domain.ProjectConfig) *Host {
	return &Host{sessions: make(map[string]*hostedSession), defaults: defaults}
}

// Start opens a session. A non-empty level overrides the default report
// level property.
func (h *Host) Start(level string) string {
	cfg := h.defaults
	if level != "" {
		cfg = cfg.WithProperties(map[string]string{domain.ValidationLevelKey: level})
	}

	id := uuid.NewString()
	out := console.NewRecorder()
	sess := session.New(id, cfg.Properties)
	sess.Subscribe(application.NewSummaryRenderer(out))

	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[id] = &hostedSession{
		session:  sess,
		output:   out,
		reporter: application.NewIssueReporter(out),
	}
	return id
}

func (h *Host) lookup(id string) (*hostedSession, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	hs, ok := h.sessions[id]
	return hs, ok
}

// Snapshot returns the issues collected so far in session id.
func (h *Host) Snapshot(id string) ([]domain.IssueSetSnapshot, bool) {
	hs, ok := h.lookup(id)
	if !ok {
		return nil, false
	}
	reg := domain.RegistryFor(hs.session)
	if reg == nil {
		return nil, true
	}
	return reg.Snapshot(), true
}

// End fires the end signal of session id, forgets the session and returns
// every warning line it produced.
func (h *Host) End(id string) ([]string, bool) {
	h.mu.Lock()
	hs, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()
	if !ok {
		return nil, false
	}

	hs.session.End()
	return hs.output.Lines(), true
}

// Len returns the number of open sessions.
func (h *Host) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}
