package models

import (
	"time"

	"gorm.io/gorm"
)

// QualityTraining is a training module for agents
type QualityTraining struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
}

// TableName returns the table name for the QualityTraining model
func (m *QualityTraining) TableName() string {
	return "quality_trainings"
}

type TypeQualityTraining struct {
	Id                uint             `json:"id" gorm:"primarykey"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `json:"deleted_at" gorm:"index"`
	Name              string           `json:"name" gorm:"size:255;not null"`
	Description       string           `json:"description" gorm:"type:text"`
	QualityTrainingId uint             `json:"quality_training_id" gorm:"index"`
	QualityTraining   *QualityTraining `json:"quality_training,omitempty" gorm:"foreignKey:QualityTrainingId;references:Id"`
}

// TableName returns the table name for the TypeQualityTraining model
func (m *TypeQualityTraining) TableName() string {
	return "type_quality_trainings"
}

type DetailQualityTraining struct {
	Id                    uint                 `json:"id" gorm:"primarykey"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
	DeletedAt             gorm.DeletedAt       `json:"deleted_at" gorm:"index"`
	Name                  string               `json:"name" gorm:"size:255;not null"`
	Description           string               `json:"description" gorm:"type:text"`
	TypeQualityTrainingId uint                 `json:"type_quality_training_id" gorm:"index"`
	TypeQualityTraining   *TypeQualityTraining `json:"type_quality_training,omitempty" gorm:"foreignKey:TypeQualityTrainingId;references:Id"`
}

// TableName returns the table name for the DetailQualityTraining model
func (m *DetailQualityTraining) TableName() string {
	return "detail_quality_trainings"
}

// OwningQualityTraining walks up to the training
func (m *DetailQualityTraining) OwningQualityTraining() *QualityTraining {
	if m.TypeQualityTraining == nil {
		return nil
	}
	return m.TypeQualityTraining.QualityTraining
}

type SubdetailQualityTraining struct {
	Id                      uint                   `json:"id" gorm:"primarykey"`
	CreatedAt               time.Time              `json:"created_at"`
	UpdatedAt               time.Time              `json:"updated_at"`
	DeletedAt               gorm.DeletedAt         `json:"deleted_at" gorm:"index"`
	Name                    string                 `json:"name" gorm:"size:255;not null"`
	Description             string                 `json:"description" gorm:"type:text"`
	DetailQualityTrainingId uint                   `json:"detail_quality_training_id" gorm:"index"`
	DetailQualityTraining   *DetailQualityTraining `json:"detail_quality_training,omitempty" gorm:"foreignKey:DetailQualityTrainingId;references:Id"`
}

// TableName returns the table name for the SubdetailQualityTraining model
func (m *SubdetailQualityTraining) TableName() string {
	return "subdetail_quality_trainings"
}

// OwningQualityTraining walks up to the training
func (m *SubdetailQualityTraining) OwningQualityTraining() *QualityTraining {
	if m.DetailQualityTraining == nil {
		return nil
	}
	return m.DetailQualityTraining.OwningQualityTraining()
}
