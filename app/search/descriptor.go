package search

import (
	"context"
	"fmt"
	"strconv"

	coresearch "portal/core/app/search"
)

// descriptor binds one entity type to its repository lookup and result mapper
type descriptor[T any] struct {
	label     string
	table     string
	fields    []string
	ancestors []string
	find      func(Repository, context.Context, Lookup) ([]T, error)
	toResult  func(*T) coresearch.SearchResult
}

func (d descriptor[T]) Type() string        { return d.label }
func (d descriptor[T]) Table() string       { return d.table }
func (d descriptor[T]) Fields() []string    { return d.fields }
func (d descriptor[T]) Ancestors() []string { return d.ancestors }

func (d descriptor[T]) Search(ctx context.Context, session Session, q coresearch.Query) ([]coresearch.SearchResult, error) {
	records, err := d.find(session, ctx, Lookup{
		Term:     q.Term,
		Limit:    q.Limit,
		Fields:   d.fields,
		Preloads: d.ancestors,
	})
	if err != nil {
		return nil, fmt.Errorf("%s lookup failed: %w", d.table, err)
	}

	results := make([]coresearch.SearchResult, 0, len(records))
	for i := range records {
		result := d.toResult(&records[i])
		result.Type = d.label
		if result.Title == "" {
			result.Title = d.label + " #" + result.Id
		}
		if result.Link == "" {
			result.Link = noLink
		}
		if result.Metadata == nil {
			result.Metadata = make(map[string]any)
		}
		result.Metadata["table"] = d.table
		results = append(results, result)
	}
	return results, nil
}

func formatId(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
