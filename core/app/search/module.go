package search

import (
	"context"

	"portal/core/logger"
	"portal/core/module"
	"portal/core/router"
)

// Provider builds the Searcher from the module dependencies; app/init.go supplies it
type Provider func(deps module.Dependencies) Searcher

type Module struct {
	module.DefaultModule
	Service    Searcher
	Controller *SearchController
}

// Init creates the search module. A nil provider yields a module whose searches
// always come back empty.
func Init(deps module.Dependencies, provider Provider) module.Module {
	log := deps.Logger
	if log == nil {
		log = logger.NewNop()
	}

	var service Searcher = emptySearcher{}
	if provider != nil {
		service = provider(deps)
	}

	var opts QueryOptions
	if deps.Config != nil {
		opts = QueryOptions{
			DefaultLimit: deps.Config.Search.DefaultLimit,
			MaxLimit:     deps.Config.Search.MaxLimit,
		}
	}

	if deps.Emitter != nil {
		deps.Emitter.On(PerformedEvent, func(data any) {
			performed, ok := data.(Performed)
			if !ok {
				return
			}
			log.Debug("Search performed",
				logger.String("query", performed.Query),
				logger.Int("total", performed.Total),
				logger.Any("counts", performed.Counts),
				logger.Strings("failed", performed.Failed))
		})
	}

	return &Module{
		Service:    service,
		Controller: NewSearchController(service, log, opts),
	}
}

// Routes registers the module routes
func (m *Module) Routes(router *router.RouterGroup) {
	m.Controller.Routes(router)
}

type emptySearcher struct{}

func (emptySearcher) Search(_ context.Context, q Query) (*SearchResponse, error) {
	return &SearchResponse{Results: []SearchResult{}, Query: q.Term}, nil
}
