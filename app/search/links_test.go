package search

import (
	"testing"

	"portal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestProductLink(t *testing.T) {
	acme := &models.Brand{Id: 1, Name: "Acme"}
	skinCare := &models.Category{Id: 2, Name: "Skin Care", BrandId: 1, Brand: acme}
	moisturizers := &models.Subcategory{Id: 3, Name: "Moisturizers", CategoryId: 2, Category: skinCare}

	tests := []struct {
		name    string
		product *models.Product
		want    string
	}{
		{
			name:    "full chain through subcategory",
			product: &models.Product{Name: "Night Serum", Subcategory: moisturizers},
			want:    "/agent/products/acme/skin-care/moisturizers/night-serum",
		},
		{
			name:    "category without subcategory",
			product: &models.Product{Name: "Day Cream", Brand: acme, Category: skinCare},
			want:    "/agent/products/acme/skin-care/day-cream",
		},
		{
			name:    "brand taken from category",
			product: &models.Product{Name: "Day Cream", Category: skinCare},
			want:    "/agent/products/acme/skin-care/day-cream",
		},
		{
			name:    "brand only",
			product: &models.Product{Name: "Travel Kit", Brand: acme},
			want:    "/agent/products/acme",
		},
		{
			name:    "no ancestors",
			product: &models.Product{Name: "Orphan"},
			want:    "/agent/products",
		},
		{
			name:    "category without brand",
			product: &models.Product{Name: "Orphan", Category: &models.Category{Name: "Loose"}},
			want:    "/agent/products",
		},
		{
			name:    "nil product",
			product: nil,
			want:    "/agent/products",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productLink(tt.product))
		})
	}
}

func TestCatalogLinks(t *testing.T) {
	creamCo := &models.Brand{Name: "CreamCo"}
	category := &models.Category{Name: "Skin  Care", Brand: &models.Brand{Name: "Acme"}}

	assert.Equal(t, "/agent/products/creamco", brandLink(creamCo))
	assert.Equal(t, "/agent/products/acme/skin-care", categoryLink(category))
	assert.Equal(t, "/agent/products", categoryLink(&models.Category{Name: "Loose"}))
	assert.Equal(t, "/agent/products/acme/skin-care/face", subcategoryLink(&models.Subcategory{Name: "Face", Category: category}))
	assert.Equal(t, "/agent/products", subcategoryLink(&models.Subcategory{Name: "Face"}))
}

func TestHierarchyLinks(t *testing.T) {
	complaints := &models.SopCategory{Name: "Complaints"}
	refund := &models.Sop{Name: "Refund Request", SopCategory: complaints}

	assert.Equal(t, "/agent/sop/complaints", sopCategoryLink(complaints))
	assert.Equal(t, "/agent/sop/complaints/refund-request", sopLink(refund))
	assert.Equal(t, "/agent/sop", sopLink(&models.Sop{Name: "Refund Request"}))
	assert.Equal(t, "/agent/sop", sopLink(nil))

	assert.Equal(t, "/agent/knowledge/shipping-policy", knowledgeLink(&models.Knowledge{Name: "Shipping Policy"}))
	assert.Equal(t, "/agent/knowledge", knowledgeLink(nil))

	assert.Equal(t, "/agent/quality-training/onboarding", qualityTrainingLink(&models.QualityTraining{Name: "Onboarding"}))
	assert.Equal(t, "/agent/quality-training", qualityTrainingLink(nil))
}

func TestChildrenLinkToOwner(t *testing.T) {
	sop := &models.Sop{Name: "Refund Request", SopCategory: &models.SopCategory{Name: "Complaints"}}
	sopType := &models.SopType{Name: "Via Chat", Sop: sop}
	sopDetail := &models.SopDetail{Name: "Verify order", SopType: sopType}
	assert.Equal(t, "/agent/sop/complaints/refund-request", sopTypeResult(sopType).Link)
	assert.Equal(t, "/agent/sop/complaints/refund-request", sopDetailResult(sopDetail).Link)

	knowledge := &models.Knowledge{Name: "Shipping Policy"}
	detail := &models.DetailKnowledge{Name: "Delivery times", Knowledge: knowledge}
	typeDetail := &models.TypeDetailKnowledge{Name: "Express", DetailKnowledge: detail}
	productType := &models.ProductTypeDetailKnowledge{Name: "Creams", TypeDetailKnowledge: typeDetail}
	for _, link := range []string{
		detailKnowledgeResult(detail).Link,
		typeDetailKnowledgeResult(typeDetail).Link,
		productTypeDetailKnowledgeResult(productType).Link,
	} {
		assert.Equal(t, "/agent/knowledge/shipping-policy", link)
	}

	training := &models.QualityTraining{Name: "Onboarding"}
	typeTraining := &models.TypeQualityTraining{Name: "Products", QualityTraining: training}
	detailTraining := &models.DetailQualityTraining{Name: "Creams", TypeQualityTraining: typeTraining}
	subdetail := &models.SubdetailQualityTraining{Name: "Quiz", DetailQualityTraining: detailTraining}
	for _, link := range []string{
		typeQualityTrainingResult(typeTraining).Link,
		detailQualityTrainingResult(detailTraining).Link,
		subdetailQualityTrainingResult(subdetail).Link,
	} {
		assert.Equal(t, "/agent/quality-training/onboarding", link)
	}

	// Broken owner chains fall back to the hierarchy root
	assert.Equal(t, "/agent/sop", sopDetailResult(&models.SopDetail{Name: "Loose"}).Link)
	assert.Equal(t, "/agent/knowledge", productTypeDetailKnowledgeResult(&models.ProductTypeDetailKnowledge{Name: "Loose"}).Link)
	assert.Equal(t, "/agent/quality-training", subdetailQualityTrainingResult(&models.SubdetailQualityTraining{Name: "Loose"}).Link)
}

func TestBlankNamesStopTheLink(t *testing.T) {
	acme := &models.Brand{Name: "Acme"}
	blankCategory := &models.Category{Name: "   ", Brand: acme}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"blank brand", brandLink(&models.Brand{Name: ""}), "/agent/products"},
		{"blank category", categoryLink(blankCategory), "/agent/products/acme"},
		{"blank category under product", productLink(&models.Product{Name: "Day Cream", Category: blankCategory}), "/agent/products/acme"},
		{"blank product", productLink(&models.Product{Name: " ", Brand: acme, Category: &models.Category{Name: "Skin Care", Brand: acme}}), "/agent/products/acme/skin-care"},
		{"blank sop", sopLink(&models.Sop{Name: "\t", SopCategory: &models.SopCategory{Name: "Complaints"}}), "/agent/sop/complaints"},
		{"blank knowledge", knowledgeLink(&models.Knowledge{}), "/agent/knowledge"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
