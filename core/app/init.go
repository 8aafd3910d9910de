package app

import (
	"portal/core/app/search"
	"portal/core/app/users"
	"portal/core/module"
)

// CoreModules implements module.CoreModuleProvider interface
type CoreModules struct {
	SearchProvider search.Provider
}

// GetCoreModules returns the list of core modules to initialize
func (cm *CoreModules) GetCoreModules(deps module.Dependencies) map[string]module.Module {
	modules := make(map[string]module.Module)

	modules["users"] = users.Init(deps)

	// The app decides which sources are searched; nil yields empty results
	modules["search"] = search.Init(deps, cm.SearchProvider)

	return modules
}

// NewCoreModules creates a new core modules provider
func NewCoreModules(searchProvider search.Provider) *CoreModules {
	return &CoreModules{
		SearchProvider: searchProvider,
	}
}
