package application

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/openkraft/plugval/internal/domain"
)

// ReplayOptions controls a replay run.
type ReplayOptions struct {
	// RootDir is the top-level project directory that structured
	// declaration and module paths are made relative to.
	RootDir string
	// Jobs bounds the number of concurrent reporters. Zero means GOMAXPROCS.
	Jobs int
}

// ReplayResult summarizes a replay run.
type ReplayResult struct {
	Events  int                       `json:"events"`
	Plugins []domain.IssueSetSnapshot `json:"plugins"`
}

// ReplayService drives a build session from a recorded event log:
// events are reported concurrently, then the session is ended so the
// summary renders.
type ReplayService struct {
	events   domain.EventSource
	reporter *IssueReporter
	renderer *SummaryRenderer
}

// NewReplayService creates a ReplayService logging through logger.
func NewReplayService(events domain.EventSource, logger domain.Logger) *ReplayService {
	return &ReplayService{
		events:   events,
		reporter: NewIssueReporter(logger),
		renderer: NewSummaryRenderer(logger),
	}
}

// Replay reports every event in path against sess and ends the session.
// The session ends even when the replay is cancelled.
func (s *ReplayService) Replay(ctx context.Context, sess domain.BuildSession, path string, opts ReplayOptions) (*ReplayResult, error) {
	events, err := s.events.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}

	sess.Subscribe(s.renderer)
	defer sess.End()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, ev := range events {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.Dispatch(sess, ev, opts.RootDir)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("replaying events: %w", err)
	}

	result := &ReplayResult{Events: len(events)}
	if reg := domain.RegistryFor(sess); reg != nil {
		result.Plugins = reg.Snapshot()
	}
	return result, nil
}

// Dispatch sends one event to the matching reporter call.
func (s *ReplayService) Dispatch(sess domain.Session, ev domain.BuildEvent, rootDir string) {
	decl := ev.ResolvedDeclaration(rootDir)
	occ := ev.ResolvedOccurrence(rootDir)

	switch ev.Kind {
	case domain.EventTaskIssue:
		if ev.Task == nil {
			return
		}
		s.reporter.ReportTaskIssue(sess, ev.Plugin, decl, occ, *ev.Task, ev.Issue)
	default:
		if decl == "" && occ == "" {
			s.reporter.ReportPluginIssue(sess, ev.Plugin, ev.Issue)
			return
		}
		s.reporter.ReportPluginIssueAt(sess, ev.Plugin, decl, occ, ev.Issue)
	}
}
