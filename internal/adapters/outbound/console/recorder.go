package console

import "sync"

// Recorder is an in-memory warning sink. It keeps every warning line in
// order and is safe for concurrent use.
type Recorder struct {
	mu       sync.Mutex
	lines    []string
	disabled bool
}

// NewRecorder returns an empty Recorder with warnings enabled.
func NewRecorder() *Recorder { return &Recorder{} }

// DisableWarn makes WarnEnabled report false and drops further warnings.
func (r *Recorder) DisableWarn() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disabled = true
}

func (r *Recorder) WarnEnabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.disabled
}

func (r *Recorder) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disabled {
		return
	}
	r.lines = append(r.lines, msg)
}

// Lines returns a copy of the recorded lines.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}
