package portal

import (
	"portal/app/models"
	"portal/core/logger"
	"portal/core/module"

	"gorm.io/gorm"
)

// Module owns the catalog, SOP, knowledge, training and agent tables
type Module struct {
	module.DefaultModule
	DB           *gorm.DB
	Logger       logger.Logger
	SeedDemoData bool
}

// Init creates the portal module
func Init(deps module.Dependencies) module.Module {
	log := deps.Logger
	if log == nil {
		log = logger.NewNop()
	}

	mod := &Module{
		DB:     deps.DB,
		Logger: log,
	}
	if deps.Config != nil {
		mod.SeedDemoData = deps.Config.SeedDemoData
	}
	return mod
}

// Migrate creates the portal tables, then seeds the demo data when enabled
func (m *Module) Migrate() error {
	if err := m.DB.AutoMigrate(m.GetModels()...); err != nil {
		return err
	}
	if !m.SeedDemoData {
		return nil
	}

	if err := Seed(m.DB); err != nil {
		return err
	}
	m.Logger.Info("Portal demo data seeded")
	return nil
}

func (m *Module) GetModels() []any {
	return models.All()
}
