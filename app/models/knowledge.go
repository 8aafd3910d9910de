package models

import (
	"time"

	"gorm.io/gorm"
)

// Knowledge is a top-level knowledge base article
type Knowledge struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
}

// TableName returns the table name for the Knowledge model
func (m *Knowledge) TableName() string {
	return "knowledges"
}

// DetailKnowledge is a section of a knowledge article
type DetailKnowledge struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name        string         `json:"name" gorm:"size:255"`
	Detail      string         `json:"detail" gorm:"type:text"`
	KnowledgeId uint           `json:"knowledge_id" gorm:"index"`
	Knowledge   *Knowledge     `json:"knowledge,omitempty" gorm:"foreignKey:KnowledgeId;references:Id"`
}

// TableName returns the table name for the DetailKnowledge model
func (m *DetailKnowledge) TableName() string {
	return "detail_knowledges"
}

// TypeDetailKnowledge classifies a knowledge section
type TypeDetailKnowledge struct {
	Id                uint             `json:"id" gorm:"primarykey"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `json:"deleted_at" gorm:"index"`
	Name              string           `json:"name" gorm:"size:255;not null"`
	Description       string           `json:"description" gorm:"type:text"`
	DetailKnowledgeId uint             `json:"detail_knowledge_id" gorm:"index"`
	DetailKnowledge   *DetailKnowledge `json:"detail_knowledge,omitempty" gorm:"foreignKey:DetailKnowledgeId;references:Id"`
}

// TableName returns the table name for the TypeDetailKnowledge model
func (m *TypeDetailKnowledge) TableName() string {
	return "type_detail_knowledges"
}

// OwningKnowledge walks up to the knowledge article
func (m *TypeDetailKnowledge) OwningKnowledge() *Knowledge {
	if m.DetailKnowledge == nil {
		return nil
	}
	return m.DetailKnowledge.Knowledge
}

// ProductTypeDetailKnowledge ties a knowledge type to product specific text
type ProductTypeDetailKnowledge struct {
	Id                    uint                 `json:"id" gorm:"primarykey"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
	DeletedAt             gorm.DeletedAt       `json:"deleted_at" gorm:"index"`
	Name                  string               `json:"name" gorm:"size:255"`
	Detail                string               `json:"detail" gorm:"type:text"`
	TypeDetailKnowledgeId uint                 `json:"type_detail_knowledge_id" gorm:"index"`
	TypeDetailKnowledge   *TypeDetailKnowledge `json:"type_detail_knowledge,omitempty" gorm:"foreignKey:TypeDetailKnowledgeId;references:Id"`
}

// TableName returns the table name for the ProductTypeDetailKnowledge model
func (m *ProductTypeDetailKnowledge) TableName() string {
	return "product_type_detail_knowledges"
}

// OwningKnowledge walks up to the knowledge article
func (m *ProductTypeDetailKnowledge) OwningKnowledge() *Knowledge {
	if m.TypeDetailKnowledge == nil {
		return nil
	}
	return m.TypeDetailKnowledge.OwningKnowledge()
}
