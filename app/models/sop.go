package models

import (
	"time"

	"gorm.io/gorm"
)

// SopCategory groups standard operating procedures
type SopCategory struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
}

// TableName returns the table name for the SopCategory model
func (m *SopCategory) TableName() string {
	return "sop_categories"
}

// Sop is a standard operating procedure
type Sop struct {
	Id            uint           `json:"id" gorm:"primarykey"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name          string         `json:"name" gorm:"size:255;not null"`
	Description   string         `json:"description" gorm:"type:text"`
	SopCategoryId uint           `json:"sop_category_id" gorm:"index"`
	SopCategory   *SopCategory   `json:"sop_category,omitempty" gorm:"foreignKey:SopCategoryId;references:Id"`
}

// TableName returns the table name for the Sop model
func (m *Sop) TableName() string {
	return "sops"
}

// SopType is a variant of a SOP (for example per channel)
type SopType struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	SopId       uint           `json:"sop_id" gorm:"index"`
	Sop         *Sop           `json:"sop,omitempty" gorm:"foreignKey:SopId;references:Id"`
}

// TableName returns the table name for the SopType model
func (m *SopType) TableName() string {
	return "sop_types"
}

// SopDetail is one step or rule of a SOP type
type SopDetail struct {
	Id        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name      string         `json:"name" gorm:"size:255"`
	Value     string         `json:"value" gorm:"type:text"`
	SopTypeId uint           `json:"sop_type_id" gorm:"index"`
	SopType   *SopType       `json:"sop_type,omitempty" gorm:"foreignKey:SopTypeId;references:Id"`
}

// TableName returns the table name for the SopDetail model
func (m *SopDetail) TableName() string {
	return "sop_details"
}

// OwningSop walks up to the SOP the detail belongs to
func (m *SopDetail) OwningSop() *Sop {
	if m.SopType == nil {
		return nil
	}
	return m.SopType.Sop
}
