package domain

import "sync"

// orderedSet keeps distinct strings in first-insertion order.
type orderedSet struct {
	items []string
	index map[string]struct{}
}

func (s *orderedSet) add(v string) {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
}

func (s *orderedSet) values() []string {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out
}

// TaskIssues groups the issues reported for one task.
type TaskIssues struct {
	Task   string   `json:"task"`
	Issues []string `json:"issues"`
}

// IssueSet accumulates the issues of one plugin for the lifetime of a
// session. All four collections only grow and share a single lock, so a
// declaration and occurrence are always visible together with the issue
// that carried them.
type IssueSet struct {
	mu           sync.Mutex
	declarations orderedSet
	occurrences  orderedSet
	pluginIssues orderedSet
	taskOrder    []string
	taskIssues   map[string]*orderedSet
}

// NewIssueSet returns an empty IssueSet.
func NewIssueSet() *IssueSet {
	return &IssueSet{taskIssues: make(map[string]*orderedSet)}
}

// AddPluginIssue records a plugin-level issue. Empty declaration or
// occurrence strings mean "not known" and are skipped.
func (s *IssueSet) AddPluginIssue(declaration, occurrence, issue string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addContext(declaration, occurrence)
	s.pluginIssues.add(issue)
}

// AddTaskIssue records an issue scoped to the given task key.
func (s *IssueSet) AddTaskIssue(declaration, occurrence, task, issue string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addContext(declaration, occurrence)
	set, ok := s.taskIssues[task]
	if !ok {
		set = &orderedSet{}
		s.taskIssues[task] = set
		s.taskOrder = append(s.taskOrder, task)
	}
	set.add(issue)
}

func (s *IssueSet) addContext(declaration, occurrence string) {
	if declaration != "" {
		s.declarations.add(declaration)
	}
	if occurrence != "" {
		s.occurrences.add(occurrence)
	}
}

// Declarations returns the distinct declaration locations in report order.
func (s *IssueSet) Declarations() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.declarations.values()
}

// Occurrences returns the distinct invoking modules in report order.
func (s *IssueSet) Occurrences() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.occurrences.values()
}

// PluginIssues returns the distinct plugin-level issues in report order.
func (s *IssueSet) PluginIssues() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pluginIssues.values()
}

// TaskIssues returns task-level issues grouped by task, tasks in
// first-seen order.
func (s *IssueSet) TaskIssues() []TaskIssues {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.taskIssuesLocked()
}

func (s *IssueSet) taskIssuesLocked() []TaskIssues {
	if len(s.taskOrder) == 0 {
		return nil
	}
	out := make([]TaskIssues, 0, len(s.taskOrder))
	for _, task := range s.taskOrder {
		out = append(out, TaskIssues{Task: task, Issues: s.taskIssues[task].values()})
	}
	return out
}

// IssueSetSnapshot is a point-in-time copy of an IssueSet.
type IssueSetSnapshot struct {
	Plugin       string       `json:"plugin"`
	Declarations []string     `json:"declarations,omitempty"`
	Occurrences  []string     `json:"occurrences,omitempty"`
	PluginIssues []string     `json:"plugin_issues,omitempty"`
	TaskIssues   []TaskIssues `json:"task_issues,omitempty"`
}

// Snapshot copies all four collections under one lock.
func (s *IssueSet) Snapshot(pluginKey string) IssueSetSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return IssueSetSnapshot{
		Plugin:       pluginKey,
		Declarations: s.declarations.values(),
		Occurrences:  s.occurrences.values(),
		PluginIssues: s.pluginIssues.values(),
		TaskIssues:   s.taskIssuesLocked(),
	}
}
