package search

import (
	"strconv"
	"strings"
)

// DefaultLimit is the per-source limit used when none is supplied
const DefaultLimit = 50

// Query is a normalized search request
type Query struct {
	Raw   string // Term as received
	Term  string // Trimmed term; empty means nothing is searched
	Limit int    // Applied to every source independently
}

// QueryOptions controls limit parsing
type QueryOptions struct {
	DefaultLimit int // Used for missing, malformed or non-positive limits
	MaxLimit     int // Caps the limit when positive
}

// NewQuery trims the raw term and parses the raw limit. It never fails: bad
// limits fall back to the default.
func NewQuery(rawTerm, rawLimit string, opts QueryOptions) Query {
	defaultLimit := opts.DefaultLimit
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}

	limit := defaultLimit
	if parsed, err := strconv.Atoi(strings.TrimSpace(rawLimit)); err == nil && parsed > 0 {
		limit = parsed
	}
	if opts.MaxLimit > 0 && limit > opts.MaxLimit {
		limit = opts.MaxLimit
	}

	return Query{
		Raw:   rawTerm,
		Term:  strings.TrimSpace(rawTerm),
		Limit: limit,
	}
}

// IsEmpty reports whether the query should short-circuit
func (q Query) IsEmpty() bool {
	return q.Term == ""
}
