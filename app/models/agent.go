package models

import (
	"time"

	"gorm.io/gorm"
)

// Agent is a customer-service agent profile
type Agent struct {
	Id        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	Email     string         `json:"email" gorm:"size:255"`
	AgentCode string         `json:"agent_code" gorm:"size:64;index"`
	Team      string         `json:"team" gorm:"size:255"`
	Status    string         `json:"status" gorm:"size:32;default:active"`
}

// TableName returns the table name for the Agent model
func (m *Agent) TableName() string {
	return "agents"
}

// All returns every portal model, in dependency order for migrations
func All() []any {
	return []any{
		&Brand{}, &Category{}, &Subcategory{}, &Product{}, &ProductDetail{},
		&SopCategory{}, &Sop{}, &SopType{}, &SopDetail{},
		&Knowledge{}, &DetailKnowledge{}, &TypeDetailKnowledge{}, &ProductTypeDetailKnowledge{},
		&QualityTraining{}, &TypeQualityTraining{}, &DetailQualityTraining{}, &SubdetailQualityTraining{},
		&Agent{},
	}
}
