package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"portal/core/emitter"
	"portal/core/logger"

	"golang.org/x/sync/errgroup"
)

// PerformedEvent is emitted after every search that reached the sources
const PerformedEvent = "search.performed"

var (
	// ErrSourcePanicked wraps a panic recovered inside a single source
	ErrSourcePanicked = errors.New("search source panicked")

	// ErrSearchFailed wraps failures outside any single source
	ErrSearchFailed = errors.New("search failed")
)

// Session is a request-scoped handle on the persistence layer
type Session interface {
	Release() error
}

// Store hands out one session per search
type Store[S Session] interface {
	Acquire(ctx context.Context) (S, error)
}

// Searcher is what the controller depends on
type Searcher interface {
	Search(ctx context.Context, q Query) (*SearchResponse, error)
}

// Options tunes the fan-out
type Options struct {
	// Parallelism bounds concurrent source lookups; values below 1 mean 1
	Parallelism int
	// SourceTimeout bounds each source lookup; 0 disables it
	SourceTimeout time.Duration
}

// Performed is the payload of PerformedEvent
type Performed struct {
	Query    string
	Total    int
	Counts   map[string]int
	Failed   []string
	Duration time.Duration
}

// SearchService federates a query across every registered source
type SearchService[S Session] struct {
	Store    Store[S]
	Registry *Registry[S]
	Emitter  *emitter.Emitter
	Logger   logger.Logger
	Options  Options
}

type sourceOutcome struct {
	results  []SearchResult
	err      error
	duration time.Duration
}

func NewSearchService[S Session](store Store[S], registry *Registry[S], emitter *emitter.Emitter, log logger.Logger, opts Options) *SearchService[S] {
	if log == nil {
		log = logger.NewNop()
	}
	return &SearchService[S]{
		Store:    store,
		Registry: registry,
		Emitter:  emitter,
		Logger:   log,
		Options:  opts,
	}
}

// Search runs q against every source and concatenates the results in registry
// order. Failing sources are logged and contribute nothing. Only failures that
// prevent the whole search, such as not being able to acquire a session, are
// returned as errors.
func (s *SearchService[S]) Search(ctx context.Context, q Query) (response *SearchResponse, err error) {
	if q.IsEmpty() {
		return &SearchResponse{Results: []SearchResult{}, Total: 0}, nil
	}

	defer func() {
		if r := recover(); r != nil {
			response = nil
			err = fmt.Errorf("%w: %v", ErrSearchFailed, r)
		}
	}()

	start := time.Now()

	session, err := s.Store.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: acquire session: %w", ErrSearchFailed, err)
	}
	defer func() {
		if releaseErr := session.Release(); releaseErr != nil {
			s.Logger.Warn("Failed to release search session", logger.Err(releaseErr))
		}
	}()

	sources := s.Registry.Sources()
	outcomes := s.fanOut(ctx, session, sources, q)

	results := make([]SearchResult, 0)
	counts := make(map[string]int, len(sources))
	var failed []string

	for i, outcome := range outcomes {
		source := sources[i]
		if outcome.err != nil {
			s.Logger.Warn("Search source failed",
				logger.String("source", source.Type()),
				logger.String("table", source.Table()),
				logger.Duration("duration", outcome.duration),
				logger.Err(outcome.err))
			failed = append(failed, source.Type())
			continue
		}
		counts[source.Type()] = len(outcome.results)
		results = append(results, outcome.results...)
	}

	response = &SearchResponse{
		Results: results,
		Total:   len(results),
		Query:   q.Term,
	}

	elapsed := time.Since(start)
	s.Logger.Debug("Search completed",
		logger.String("query", q.Term),
		logger.Int("limit", q.Limit),
		logger.Int("total", response.Total),
		logger.Strings("failed", failed),
		logger.Duration("duration", elapsed))

	s.Emitter.Emit(PerformedEvent, Performed{
		Query:    q.Term,
		Total:    response.Total,
		Counts:   counts,
		Failed:   failed,
		Duration: elapsed,
	})

	return response, nil
}

// fanOut runs every source and stores its outcome at the source's registry
// index, so the caller sees registry order whatever the completion order was.
func (s *SearchService[S]) fanOut(ctx context.Context, session S, sources []Source[S], q Query) []sourceOutcome {
	outcomes := make([]sourceOutcome, len(sources))

	parallelism := s.Options.Parallelism
	if parallelism < 1 {
		parallelism = 1
	}

	var g errgroup.Group
	g.SetLimit(parallelism)
	for i, source := range sources {
		g.Go(func() error {
			outcomes[i] = s.runSource(ctx, session, source, q)
			// Never fail the group: one source must not cancel the others
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// runSource is the isolation boundary around a single source
func (s *SearchService[S]) runSource(ctx context.Context, session S, source Source[S], q Query) (outcome sourceOutcome) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			outcome = sourceOutcome{err: fmt.Errorf("%w: %v", ErrSourcePanicked, r)}
		}
		outcome.duration = time.Since(start)
	}()

	if s.Options.SourceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Options.SourceTimeout)
		defer cancel()
	}

	results, err := source.Search(ctx, session, q)
	if err != nil {
		return sourceOutcome{err: err}
	}
	if len(results) > q.Limit {
		results = results[:q.Limit]
	}
	return sourceOutcome{results: results}
}
