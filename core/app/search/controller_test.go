package search

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/core/config"
	"portal/core/emitter"
	"portal/core/logger"
	"portal/core/module"
	"portal/core/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searcherFunc func(ctx context.Context, q Query) (*SearchResponse, error)

func (f searcherFunc) Search(ctx context.Context, q Query) (*SearchResponse, error) {
	return f(ctx, q)
}

func newTestRouter(service Searcher, opts QueryOptions) *router.Router {
	r := router.New()
	NewSearchController(service, logger.NewNop(), opts).Routes(r.Group("/api"))
	return r
}

func serve(t *testing.T, r http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSearchController_Success(t *testing.T) {
	var received Query
	service := searcherFunc(func(_ context.Context, q Query) (*SearchResponse, error) {
		received = q
		return &SearchResponse{
			Results: []SearchResult{{
				Type:     "Brand",
				Id:       "1",
				Title:    "CreamCo",
				Link:     "/agent/products/creamco",
				Metadata: map[string]any{"table": "brands"},
			}},
			Total: 1,
			Query: q.Term,
		}, nil
	})

	rec := serve(t, newTestRouter(service, QueryOptions{}), "/api/search?q=%20cream%20&limit=5")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "cream", received.Term)
	assert.Equal(t, 5, received.Limit)
	assert.JSONEq(t, `{
		"results": [{
			"type": "Brand",
			"id": "1",
			"title": "CreamCo",
			"description": null,
			"link": "/agent/products/creamco",
			"metadata": {"table": "brands"}
		}],
		"total": 1,
		"query": "cream"
	}`, rec.Body.String())
}

func TestSearchController_DefaultLimit(t *testing.T) {
	var received Query
	service := searcherFunc(func(_ context.Context, q Query) (*SearchResponse, error) {
		received = q
		return &SearchResponse{Results: []SearchResult{}}, nil
	})

	serve(t, newTestRouter(service, QueryOptions{}), "/api/search?q=cream&limit=nope")
	assert.Equal(t, DefaultLimit, received.Limit)

	serve(t, newTestRouter(service, QueryOptions{DefaultLimit: 10, MaxLimit: 20}), "/api/search?q=cream&limit=99")
	assert.Equal(t, 20, received.Limit)
}

func TestSearchController_Failure(t *testing.T) {
	service := searcherFunc(func(context.Context, Query) (*SearchResponse, error) {
		return nil, errors.New("database unreachable")
	})

	rec := serve(t, newTestRouter(service, QueryOptions{}), "/api/search?q=cream")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Search failed: database unreachable", "results": [], "total": 0}`, rec.Body.String())
}

func TestSearchModule_EmptyQuery(t *testing.T) {
	r := router.New()
	deps := module.Dependencies{
		Router:  r.Group("/api"),
		Logger:  logger.NewNop(),
		Emitter: emitter.New(),
		Config:  &config.Config{Search: config.SearchConfig{DefaultLimit: 50, Parallelism: 1}},
	}

	mod := Init(deps, nil).(*Module)
	mod.Routes(deps.Router)

	rec := serve(t, r, "/api/search?q=")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"results": [], "total": 0}`, rec.Body.String())
}
