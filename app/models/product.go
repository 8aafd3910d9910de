package models

import (
	"time"

	"gorm.io/gorm"
)

// Brand is the root of the product catalog
type Brand struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Image       string         `json:"image" gorm:"size:255"`
}

// TableName returns the table name for the Brand model
func (m *Brand) TableName() string {
	return "brands"
}

// GetId returns the Id of the model
func (m *Brand) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Brand) GetModelName() string {
	return "brand"
}

// Category groups products of one brand
type Category struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	BrandId     uint           `json:"brand_id" gorm:"index"`
	Brand       *Brand         `json:"brand,omitempty" gorm:"foreignKey:BrandId;references:Id"`
}

// TableName returns the table name for the Category model
func (m *Category) TableName() string {
	return "categories"
}

// GetId returns the Id of the model
func (m *Category) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Category) GetModelName() string {
	return "category"
}

// Subcategory splits a category further
type Subcategory struct {
	Id          uint           `json:"id" gorm:"primarykey"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name        string         `json:"name" gorm:"size:255;not null"`
	Description string         `json:"description" gorm:"type:text"`
	CategoryId  uint           `json:"category_id" gorm:"index"`
	Category    *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryId;references:Id"`
}

// TableName returns the table name for the Subcategory model
func (m *Subcategory) TableName() string {
	return "subcategories"
}

// GetId returns the Id of the model
func (m *Subcategory) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Subcategory) GetModelName() string {
	return "subcategory"
}

// Product normally hangs below a subcategory, but may be attached directly to a
// category or a brand, or to nothing at all.
type Product struct {
	Id            uint           `json:"id" gorm:"primarykey"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name          string         `json:"name" gorm:"size:255;not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Capacity      string         `json:"capacity" gorm:"size:255"`
	BrandId       *uint          `json:"brand_id" gorm:"index"`
	Brand         *Brand         `json:"brand,omitempty" gorm:"foreignKey:BrandId;references:Id"`
	CategoryId    *uint          `json:"category_id" gorm:"index"`
	Category      *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryId;references:Id"`
	SubcategoryId *uint          `json:"subcategory_id" gorm:"index"`
	Subcategory   *Subcategory   `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryId;references:Id"`
}

// TableName returns the table name for the Product model
func (m *Product) TableName() string {
	return "products"
}

// GetId returns the Id of the model
func (m *Product) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *Product) GetModelName() string {
	return "product"
}

// ResolveCategory returns the product's category, taking it from the
// subcategory when the product is not linked to one directly.
func (m *Product) ResolveCategory() *Category {
	if m.Category != nil {
		return m.Category
	}
	if m.Subcategory != nil {
		return m.Subcategory.Category
	}
	return nil
}

// ResolveBrand returns the product's brand, walking up the category chain when
// the product is not linked to one directly.
func (m *Product) ResolveBrand() *Brand {
	if m.Brand != nil {
		return m.Brand
	}
	if category := m.ResolveCategory(); category != nil {
		return category.Brand
	}
	return nil
}

// ProductDetail is a free-text section of a product page
type ProductDetail struct {
	Id        uint           `json:"id" gorm:"primarykey"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
	Name      string         `json:"name" gorm:"size:255"`
	Detail    string         `json:"detail" gorm:"type:text"`
	ProductId uint           `json:"product_id" gorm:"index"`
	Product   *Product       `json:"product,omitempty" gorm:"foreignKey:ProductId;references:Id"`
}

// TableName returns the table name for the ProductDetail model
func (m *ProductDetail) TableName() string {
	return "product_details"
}

// GetId returns the Id of the model
func (m *ProductDetail) GetId() uint {
	return m.Id
}

// GetModelName returns the model name
func (m *ProductDetail) GetModelName() string {
	return "product_detail"
}
