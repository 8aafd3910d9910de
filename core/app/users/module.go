package users

import (
	"portal/core/module"

	"gorm.io/gorm"
)

type Module struct {
	module.DefaultModule
	DB *gorm.DB
}

// Init creates the users module; it only owns the users table
func Init(deps module.Dependencies) module.Module {
	return &Module{DB: deps.DB}
}

func (m *Module) Migrate() error {
	return m.DB.AutoMigrate(&User{})
}

func (m *Module) GetModels() []any {
	return []any{
		&User{},
	}
}
