package search

import (
	coresearch "portal/core/app/search"
	"portal/core/config"
	"portal/core/emitter"
	"portal/core/logger"
	"portal/core/module"

	"gorm.io/gorm"
)

// NewService wires the portal sources to the gorm store
func NewService(db *gorm.DB, events *emitter.Emitter, log logger.Logger, cfg config.SearchConfig) *coresearch.SearchService[Session] {
	return coresearch.NewSearchService[Session](
		NewGormStore(db),
		NewRegistry(),
		events,
		log,
		coresearch.Options{
			Parallelism:   cfg.Parallelism,
			SourceTimeout: cfg.SourceTimeout,
		},
	)
}

// Provider is handed to the core search module by app/init.go
func Provider(deps module.Dependencies) coresearch.Searcher {
	var cfg config.SearchConfig
	if deps.Config != nil {
		cfg = deps.Config.Search
	}
	return NewService(deps.DB, deps.Emitter, deps.Logger, cfg)
}
