package search

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"portal/core/emitter"
	"portal/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSession struct {
	released atomic.Int32
}

func (s *fakeSession) Release() error {
	s.released.Add(1)
	return nil
}

type fakeStore struct {
	session  *fakeSession
	err      error
	acquired atomic.Int32
}

func (s *fakeStore) Acquire(context.Context) (*fakeSession, error) {
	s.acquired.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.session, nil
}

type fakeSource struct {
	label   string
	hits    int
	delay   time.Duration
	err     error
	panics  any
	calls   atomic.Int32
	mu      sync.Mutex
	queries []Query
}

func (f *fakeSource) Type() string        { return f.label }
func (f *fakeSource) Table() string       { return "table_" + f.label }
func (f *fakeSource) Fields() []string    { return []string{"name"} }
func (f *fakeSource) Ancestors() []string { return nil }

func (f *fakeSource) Search(ctx context.Context, _ *fakeSession, q Query) ([]SearchResult, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.queries = append(f.queries, q)
	f.mu.Unlock()

	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.panics != nil {
		panic(f.panics)
	}
	if f.err != nil {
		return nil, f.err
	}

	results := make([]SearchResult, f.hits)
	for i := range results {
		results[i] = SearchResult{
			Type:  f.label,
			Id:    fmt.Sprint(i + 1),
			Title: fmt.Sprintf("%s %d", f.label, i+1),
			Link:  "#",
		}
	}
	return results, nil
}

func newTestService(t *testing.T, opts Options, sources ...*fakeSource) (*SearchService[*fakeSession], *fakeStore, *observer.ObservedLogs) {
	t.Helper()

	registry := NewRegistry[*fakeSession]()
	for _, source := range sources {
		require.NoError(t, registry.Register(source))
	}

	core, logs := observer.New(zapcore.DebugLevel)
	store := &fakeStore{session: &fakeSession{}}
	service := NewSearchService[*fakeSession](store, registry, emitter.New(), logger.New(zap.New(core)), opts)
	return service, store, logs
}

func resultTypes(results []SearchResult) []string {
	types := make([]string, len(results))
	for i, r := range results {
		types[i] = r.Type
	}
	return types
}

func TestSearchService_EmptyQuery(t *testing.T) {
	source := &fakeSource{label: "Brand", hits: 1}
	service, store, _ := newTestService(t, Options{Parallelism: 4}, source)

	response, err := service.Search(context.Background(), NewQuery("   ", "", QueryOptions{}))
	require.NoError(t, err)

	assert.Empty(t, response.Results)
	assert.NotNil(t, response.Results)
	assert.Equal(t, 0, response.Total)
	assert.Empty(t, response.Query)
	assert.Equal(t, int32(0), store.acquired.Load(), "empty query must not touch the store")
	assert.Equal(t, int32(0), source.calls.Load())
}

func TestSearchService_RegistryOrderUnderConcurrency(t *testing.T) {
	// The first source finishes last
	first := &fakeSource{label: "Brand", hits: 2, delay: 60 * time.Millisecond}
	second := &fakeSource{label: "Category", hits: 1}
	third := &fakeSource{label: "Product", hits: 1, delay: 20 * time.Millisecond}
	service, store, _ := newTestService(t, Options{Parallelism: 3}, first, second, third)

	response, err := service.Search(context.Background(), NewQuery("cream", "", QueryOptions{}))
	require.NoError(t, err)

	assert.Equal(t, []string{"Brand", "Brand", "Category", "Product"}, resultTypes(response.Results))
	assert.Equal(t, 4, response.Total)
	assert.Equal(t, "cream", response.Query)
	assert.Equal(t, int32(1), store.session.released.Load())
}

func TestSearchService_SequentialMatchesParallel(t *testing.T) {
	build := func(parallelism int) []string {
		service, _, _ := newTestService(t, Options{Parallelism: parallelism},
			&fakeSource{label: "A", hits: 1, delay: 10 * time.Millisecond},
			&fakeSource{label: "B", hits: 2},
			&fakeSource{label: "C", hits: 1, delay: 5 * time.Millisecond},
		)
		response, err := service.Search(context.Background(), NewQuery("x", "", QueryOptions{}))
		require.NoError(t, err)
		return resultTypes(response.Results)
	}

	assert.Equal(t, build(1), build(8))
}

func TestSearchService_IsolatesFailingSources(t *testing.T) {
	healthy := &fakeSource{label: "Brand", hits: 1}
	broken := &fakeSource{label: "SOP", err: errors.New("connection reset")}
	panicking := &fakeSource{label: "SOP Type", panics: "nil relation"}
	tail := &fakeSource{label: "Agent", hits: 2}
	service, store, logs := newTestService(t, Options{Parallelism: 4}, healthy, broken, panicking, tail)

	response, err := service.Search(context.Background(), NewQuery("cream", "", QueryOptions{}))
	require.NoError(t, err)

	assert.Equal(t, []string{"Brand", "Agent", "Agent"}, resultTypes(response.Results))
	assert.Equal(t, 3, response.Total)
	assert.Equal(t, int32(1), store.session.released.Load())

	warnings := logs.FilterMessage("Search source failed").All()
	require.Len(t, warnings, 2)
	assert.Equal(t, zapcore.WarnLevel, warnings[0].Level)

	failed := map[string]string{}
	for _, entry := range warnings {
		fields := entry.ContextMap()
		failed[fields["source"].(string)] = fields["table"].(string)
		assert.Contains(t, fields, "error")
	}
	assert.Equal(t, map[string]string{"SOP": "table_SOP", "SOP Type": "table_SOP Type"}, failed)
}

func TestSearchService_PanicIsReportedAsSourceError(t *testing.T) {
	panicking := &fakeSource{label: "SOP", panics: "type mismatch"}
	service, _, _ := newTestService(t, Options{Parallelism: 1}, panicking)

	outcome := service.runSource(context.Background(), &fakeSession{}, panicking, NewQuery("x", "", QueryOptions{}))
	require.Error(t, outcome.err)
	assert.ErrorIs(t, outcome.err, ErrSourcePanicked)
	assert.Contains(t, outcome.err.Error(), "type mismatch")
}

func TestSearchService_AcquireFailure(t *testing.T) {
	source := &fakeSource{label: "Brand", hits: 1}
	service, store, _ := newTestService(t, Options{Parallelism: 2}, source)
	store.err = errors.New("database unreachable")

	response, err := service.Search(context.Background(), NewQuery("cream", "", QueryOptions{}))
	require.Error(t, err)
	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrSearchFailed)
	assert.Contains(t, err.Error(), "database unreachable")
	assert.Equal(t, int32(0), source.calls.Load())
}

func TestSearchService_LimitAppliesPerSource(t *testing.T) {
	a := &fakeSource{label: "Brand", hits: 4}
	b := &fakeSource{label: "Product", hits: 3}
	c := &fakeSource{label: "Agent", hits: 5}
	empty := &fakeSource{label: "User"}
	service, _, _ := newTestService(t, Options{Parallelism: 4}, a, b, c, empty)

	response, err := service.Search(context.Background(), NewQuery("cream", "1", QueryOptions{}))
	require.NoError(t, err)

	// One per matching source, not one overall
	assert.Equal(t, []string{"Brand", "Product", "Agent"}, resultTypes(response.Results))
	assert.Equal(t, 3, response.Total)
	for _, source := range []*fakeSource{a, b, c, empty} {
		require.Len(t, source.queries, 1)
		assert.Equal(t, 1, source.queries[0].Limit)
	}
}

func TestSearchService_SourceTimeout(t *testing.T) {
	slow := &fakeSource{label: "Knowledge", hits: 1, delay: time.Second}
	fast := &fakeSource{label: "Brand", hits: 1}
	service, store, logs := newTestService(t, Options{Parallelism: 2, SourceTimeout: 20 * time.Millisecond}, slow, fast)

	start := time.Now()
	response, err := service.Search(context.Background(), NewQuery("cream", "", QueryOptions{}))
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, []string{"Brand"}, resultTypes(response.Results))
	assert.Equal(t, int32(1), store.session.released.Load())

	warnings := logs.FilterMessage("Search source failed").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "Knowledge", warnings[0].ContextMap()["source"])
}

func TestSearchService_EmitsPerformedEvent(t *testing.T) {
	service, _, _ := newTestService(t, Options{Parallelism: 2},
		&fakeSource{label: "Brand", hits: 2},
		&fakeSource{label: "SOP", err: errors.New("boom")},
	)

	var got []Performed
	service.Emitter.On(PerformedEvent, func(data any) {
		got = append(got, data.(Performed))
	})

	_, err := service.Search(context.Background(), NewQuery("cream", "", QueryOptions{}))
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "cream", got[0].Query)
	assert.Equal(t, 2, got[0].Total)
	assert.Equal(t, map[string]int{"Brand": 2}, got[0].Counts)
	assert.Equal(t, []string{"SOP"}, got[0].Failed)
}

func TestSearchService_NoMatches(t *testing.T) {
	service, _, _ := newTestService(t, Options{Parallelism: 2},
		&fakeSource{label: "Brand"},
		&fakeSource{label: "Product"},
	)

	response, err := service.Search(context.Background(), NewQuery("xyzzynotfound", "", QueryOptions{}))
	require.NoError(t, err)

	assert.NotNil(t, response.Results)
	assert.Empty(t, response.Results)
	assert.Equal(t, 0, response.Total)
	assert.Equal(t, "xyzzynotfound", response.Query)
}

func TestRegistry(t *testing.T) {
	registry := NewRegistry[*fakeSession]()
	require.NoError(t, registry.Register(&fakeSource{label: "Brand"}))
	require.NoError(t, registry.Register(&fakeSource{label: "Product"}))

	err := registry.Register(&fakeSource{label: "Brand"})
	assert.Error(t, err)

	assert.Equal(t, 2, registry.Len())
	assert.Equal(t, []string{"Brand", "Product"}, registry.Types())

	source, ok := registry.Get("Product")
	require.True(t, ok)
	assert.Equal(t, "table_Product", source.Table())

	_, ok = registry.Get("Missing")
	assert.False(t, ok)

	// Sources returns a copy
	sources := registry.Sources()
	sources[0] = nil
	assert.NotNil(t, registry.Sources()[0])

	assert.Panics(t, func() {
		registry.MustRegister(&fakeSource{label: "Product"})
	})
}
