package module

// CoreModuleProvider supplies the framework modules (core/app/init.go)
type CoreModuleProvider interface {
	GetCoreModules(deps Dependencies) map[string]Module
}

// AppModuleProvider supplies the application modules (app/init.go)
type AppModuleProvider interface {
	GetAppModules(deps Dependencies) map[string]Module
}

// Orchestrator initializes core modules first, then app modules, so app tables
// and routes can rely on what core set up.
type Orchestrator struct {
	initializer *Initializer
	core        CoreModuleProvider
	app         AppModuleProvider
}

// NewOrchestrator creates a module orchestrator. Either provider may be nil.
func NewOrchestrator(initializer *Initializer, core CoreModuleProvider, app AppModuleProvider) *Orchestrator {
	return &Orchestrator{
		initializer: initializer,
		core:        core,
		app:         app,
	}
}

// InitializeCoreModules initializes the modules returned by the core provider
func (o *Orchestrator) InitializeCoreModules(deps Dependencies) []Module {
	if o.core == nil {
		return nil
	}
	return o.initialize(o.core.GetCoreModules(deps), deps)
}

// InitializeAppModules initializes the modules returned by the app provider
func (o *Orchestrator) InitializeAppModules(deps Dependencies) []Module {
	if o.app == nil {
		return nil
	}
	return o.initialize(o.app.GetAppModules(deps), deps)
}

func (o *Orchestrator) initialize(modules map[string]Module, deps Dependencies) []Module {
	if len(modules) == 0 {
		return []Module{}
	}
	return o.initializer.Initialize(modules, deps)
}
