package module

import (
	"fmt"
	"sort"
	"sync"

	"portal/core/config"
	"portal/core/emitter"
	"portal/core/logger"
	"portal/core/router"

	"gorm.io/gorm"
)

// Module is the unit of registration. Modules opt into lifecycle steps by
// implementing Init() error, Migrate() error and Routes(*router.RouterGroup).
type Module interface{}

// DefaultModule can be embedded to get no-op lifecycle hooks
type DefaultModule struct{}

func (DefaultModule) Init() error    { return nil }
func (DefaultModule) Migrate() error { return nil }

// Dependencies carries the shared infrastructure handed to every module
type Dependencies struct {
	DB      *gorm.DB
	Router  *router.RouterGroup
	Logger  logger.Logger
	Emitter *emitter.Emitter
	Config  *config.Config
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Module)
)

// RegisterModule records a module under a unique name
func RegisterModule(name string, mod Module) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[name]; exists {
		return fmt.Errorf("module %s already registered", name)
	}
	registry[name] = mod
	return nil
}

// GetModule returns a registered module by name
func GetModule(name string) (Module, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	mod, ok := registry[name]
	return mod, ok
}

// Initializer runs the lifecycle of a set of modules
type Initializer struct {
	logger logger.Logger
}

// NewInitializer creates a new module initializer
func NewInitializer(logger logger.Logger) *Initializer {
	return &Initializer{logger: logger}
}

// Initialize registers, initializes, migrates and routes every module. A module
// failing any step is logged and skipped; the others continue.
func (i *Initializer) Initialize(modules map[string]Module, deps Dependencies) []Module {
	var initialized []Module

	// Stable order keeps migrations and logs reproducible
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		mod := modules[name]

		if err := RegisterModule(name, mod); err != nil {
			i.logger.Error("Failed to register module",
				logger.String("module", name),
				logger.String("error", err.Error()))
			continue
		}

		if initModule, ok := mod.(interface{ Init() error }); ok {
			if err := initModule.Init(); err != nil {
				i.logger.Error("Failed to initialize module",
					logger.String("module", name),
					logger.String("error", err.Error()))
				continue
			}
		}

		if migrator, ok := mod.(interface{ Migrate() error }); ok {
			if err := migrator.Migrate(); err != nil {
				i.logger.Error("Failed to migrate module",
					logger.String("module", name),
					logger.String("error", err.Error()))
				continue
			}
		}

		if routeModule, ok := mod.(interface{ Routes(*router.RouterGroup) }); ok && deps.Router != nil {
			routeModule.Routes(deps.Router)
		}

		initialized = append(initialized, mod)
	}

	return initialized
}
