package search

import (
	"context"
	"fmt"
)

// Source is one searchable entity type. S is the request-scoped persistence
// session the source runs its lookup against.
type Source[S any] interface {
	// Type returns the fixed label used as SearchResult.Type
	Type() string

	// Table returns the source table identifier
	Table() string

	// Fields returns the columns matched with an OR of case-insensitive contains
	Fields() []string

	// Ancestors returns the relations loaded to build links and metadata
	Ancestors() []string

	// Search runs the lookup bounded by q.Limit and maps every hit
	Search(ctx context.Context, session S, q Query) ([]SearchResult, error)
}

// Registry holds the sources in their fixed output order
type Registry[S any] struct {
	sources []Source[S]
	types   map[string]int
}

// NewRegistry creates an empty registry
func NewRegistry[S any]() *Registry[S] {
	return &Registry[S]{
		types: make(map[string]int),
	}
}

// Register appends a source. Registration order is output order, so a type can
// only be registered once.
func (r *Registry[S]) Register(source Source[S]) error {
	if _, exists := r.types[source.Type()]; exists {
		return fmt.Errorf("search source %q already registered", source.Type())
	}
	r.types[source.Type()] = len(r.sources)
	r.sources = append(r.sources, source)
	return nil
}

// MustRegister registers every source and panics on a duplicate; for static
// registries built at start-up.
func (r *Registry[S]) MustRegister(sources ...Source[S]) *Registry[S] {
	for _, source := range sources {
		if err := r.Register(source); err != nil {
			panic(err)
		}
	}
	return r
}

// Get returns a source by type label
func (r *Registry[S]) Get(typeLabel string) (Source[S], bool) {
	index, exists := r.types[typeLabel]
	if !exists {
		return nil, false
	}
	return r.sources[index], true
}

// Sources returns the sources in registry order
func (r *Registry[S]) Sources() []Source[S] {
	return append([]Source[S](nil), r.sources...)
}

// Types returns the type labels in registry order
func (r *Registry[S]) Types() []string {
	types := make([]string, len(r.sources))
	for i, source := range r.sources {
		types[i] = source.Type()
	}
	return types
}

// Len returns the number of registered sources
func (r *Registry[S]) Len() int {
	return len(r.sources)
}
