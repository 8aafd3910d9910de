package app

import (
	"portal/app/portal"
	appsearch "portal/app/search"
	"portal/core/app/search"
	"portal/core/module"
)

// AppModules implements module.AppModuleProvider interface
type AppModules struct{}

// GetAppModules returns the application modules to initialize
func (am *AppModules) GetAppModules(deps module.Dependencies) map[string]module.Module {
	modules := make(map[string]module.Module)

	modules["portal"] = portal.Init(deps)

	return modules
}

// NewAppModules creates a new app modules provider
func NewAppModules() *AppModules {
	return &AppModules{}
}

// GetSearchProvider returns the provider that plugs the portal sources into the
// core search module
func GetSearchProvider() search.Provider {
	return appsearch.Provider
}
