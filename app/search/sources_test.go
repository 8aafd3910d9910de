package search

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"portal/app/models"
	coresearch "portal/core/app/search"
	"portal/core/app/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistryOrder(t *testing.T) {
	registry := NewRegistry()

	assert.Equal(t, []string{
		TypeBrand,
		TypeCategory,
		TypeSubcategory,
		TypeProduct,
		TypeProductDetail,
		TypeSopCategory,
		TypeSop,
		TypeSopType,
		TypeSopDetail,
		TypeKnowledge,
		TypeDetailKnowledge,
		TypeTypeDetailKnowledge,
		TypeProductTypeDetailKnowledge,
		TypeQualityTraining,
		TypeTypeQualityTraining,
		TypeDetailQualityTraining,
		TypeSubdetailQualityTraining,
		TypeUser,
		TypeAgent,
	}, registry.Types())

	for _, source := range registry.Sources() {
		assert.NotEmpty(t, source.Table(), source.Type())
		assert.NotEmpty(t, source.Fields(), source.Type())
		assert.LessOrEqual(t, len(source.Fields()), 3, source.Type())
	}

	product, ok := registry.Get(TypeProduct)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "description", "capacity"}, product.Fields())
}

func TestLongTextIsTruncated(t *testing.T) {
	long := strings.Repeat("x", 450)

	descriptions := []*string{
		productDetailResult(&models.ProductDetail{Name: "Ingredients", Detail: long}).Description,
		sopDetailResult(&models.SopDetail{Name: "Verify", Value: long}).Description,
		detailKnowledgeResult(&models.DetailKnowledge{Name: "Delivery", Detail: long}).Description,
		productTypeDetailKnowledgeResult(&models.ProductTypeDetailKnowledge{Name: "Creams", Detail: long}).Description,
	}
	for _, description := range descriptions {
		require.NotNil(t, description)
		assert.Equal(t, coresearch.DescriptionLength, utf8.RuneCountInString(*description))
	}

	// Short descriptions of top-level entities pass through
	brand := brandResult(&models.Brand{Name: "Acme", Description: long})
	require.NotNil(t, brand.Description)
	assert.Equal(t, long, *brand.Description)

	// Empty text becomes null
	assert.Nil(t, knowledgeResult(&models.Knowledge{Name: "Shipping"}).Description)
}

func TestResultMetadata(t *testing.T) {
	acme := &models.Brand{Name: "Acme"}
	skinCare := &models.Category{Name: "Skin Care", Brand: acme}
	product := &models.Product{Id: 7, Name: "Night Serum", Capacity: "30 ml", Subcategory: &models.Subcategory{Name: "Moisturizers", Category: skinCare}}

	result := productResult(product)
	assert.Equal(t, "7", result.Id)
	assert.Equal(t, map[string]any{"brand": "Acme", "category": "Skin Care", "subcategory": "Moisturizers", "capacity": "30 ml"}, result.Metadata)

	detail := productDetailResult(&models.ProductDetail{Name: "Usage", Product: product})
	assert.Equal(t, map[string]any{"product": "Night Serum", "brand": "Acme", "category": "Skin Care", "subcategory": "Moisturizers"}, detail.Metadata)

	sopDetail := sopDetailResult(&models.SopDetail{
		Name: "Verify",
		SopType: &models.SopType{
			Name: "Via Chat",
			Sop:  &models.Sop{Name: "Refund", SopCategory: &models.SopCategory{Name: "Complaints"}},
		},
	})
	assert.Equal(t, map[string]any{"sopType": "Via Chat", "sop": "Refund", "sopCategory": "Complaints"}, sopDetail.Metadata)

	user := userResult(&users.User{Id: 3, FirstName: "Ana", LastName: "Silva", Username: "ana", Email: "ana@example.com", Role: "agent"})
	assert.Equal(t, "Ana Silva", user.Title)
	assert.Equal(t, noLink, user.Link)
	assert.Equal(t, "agent", user.Metadata["role"])

	agent := agentResult(&models.Agent{Name: "Dana Lee", AgentCode: "AG-001", Status: "active"})
	assert.Equal(t, noLink, agent.Link)
	assert.Equal(t, "active", agent.Metadata["status"])
}

// stubRepository serves fixed records to exercise the descriptor without a database
type stubRepository struct {
	Session
	details []models.ProductDetail
	err     error
	lookups []Lookup
}

func (s *stubRepository) ProductDetails(_ context.Context, l Lookup) ([]models.ProductDetail, error) {
	s.lookups = append(s.lookups, l)
	return s.details, s.err
}

func TestDescriptorSearch(t *testing.T) {
	source, ok := NewRegistry().Get(TypeProductDetail)
	require.True(t, ok)

	repo := &stubRepository{details: []models.ProductDetail{
		{Id: 4, Detail: "no name"},
		{Id: 5, Name: "Ingredients", Detail: "aqua"},
	}}

	results, err := source.Search(context.Background(), repo, coresearch.Query{Term: "a", Limit: 9})
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Len(t, repo.lookups, 1)
	assert.Equal(t, "a", repo.lookups[0].Term)
	assert.Equal(t, 9, repo.lookups[0].Limit)
	assert.Equal(t, []string{"name", "detail"}, repo.lookups[0].Fields)
	assert.Equal(t, source.Ancestors(), repo.lookups[0].Preloads)
	assert.NotEmpty(t, repo.lookups[0].Preloads)

	assert.Equal(t, TypeProductDetail, results[0].Type)
	assert.Equal(t, "Product Detail #4", results[0].Title)
	assert.Equal(t, "/agent/products", results[0].Link)
	assert.Equal(t, "product_details", results[0].Metadata["table"])
	assert.Equal(t, "Ingredients", results[1].Title)

	repo.err = errors.New("no such table")
	_, err = source.Search(context.Background(), repo, coresearch.Query{Term: "a", Limit: 9})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product_details")
}
