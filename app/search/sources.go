package search

import (
	"portal/app/models"
	coresearch "portal/core/app/search"
	"portal/core/app/users"
)

// Type labels, in registry order
const (
	TypeBrand                      = "Brand"
	TypeCategory                   = "Category"
	TypeSubcategory                = "Subcategory"
	TypeProduct                    = "Product"
	TypeProductDetail              = "Product Detail"
	TypeSopCategory                = "SOP Category"
	TypeSop                        = "SOP"
	TypeSopType                    = "SOP Type"
	TypeSopDetail                  = "SOP Detail"
	TypeKnowledge                  = "Knowledge"
	TypeDetailKnowledge            = "Detail Knowledge"
	TypeTypeDetailKnowledge        = "Type Detail Knowledge"
	TypeProductTypeDetailKnowledge = "Product-Type Detail Knowledge"
	TypeQualityTraining            = "Quality Training"
	TypeTypeQualityTraining        = "Type Quality Training"
	TypeDetailQualityTraining      = "Detail Quality Training"
	TypeSubdetailQualityTraining   = "Subdetail Quality Training"
	TypeUser                       = "User"
	TypeAgent                      = "Agent"
)

// userFullName matches "First Last" as one value. CONCAT is understood by
// sqlite (3.44+), mysql and postgres alike.
const userFullName = "CONCAT(first_name, ' ', last_name)"

// NewRegistry returns every portal source in output order
func NewRegistry() *coresearch.Registry[Session] {
	return coresearch.NewRegistry[Session]().MustRegister(
		descriptor[models.Brand]{
			label:    TypeBrand,
			table:    "brands",
			fields:   []string{"name", "description"},
			find:     Repository.Brands,
			toResult: brandResult,
		},
		descriptor[models.Category]{
			label:     TypeCategory,
			table:     "categories",
			fields:    []string{"name", "description"},
			ancestors: []string{"Brand"},
			find:      Repository.Categories,
			toResult:  categoryResult,
		},
		descriptor[models.Subcategory]{
			label:     TypeSubcategory,
			table:     "subcategories",
			fields:    []string{"name", "description"},
			ancestors: []string{"Category.Brand"},
			find:      Repository.Subcategories,
			toResult:  subcategoryResult,
		},
		descriptor[models.Product]{
			label:     TypeProduct,
			table:     "products",
			fields:    []string{"name", "description", "capacity"},
			ancestors: []string{"Brand", "Category.Brand", "Subcategory.Category.Brand"},
			find:      Repository.Products,
			toResult:  productResult,
		},
		descriptor[models.ProductDetail]{
			label:     TypeProductDetail,
			table:     "product_details",
			fields:    []string{"name", "detail"},
			ancestors: []string{"Product.Brand", "Product.Category.Brand", "Product.Subcategory.Category.Brand"},
			find:      Repository.ProductDetails,
			toResult:  productDetailResult,
		},
		descriptor[models.SopCategory]{
			label:    TypeSopCategory,
			table:    "sop_categories",
			fields:   []string{"name", "description"},
			find:     Repository.SopCategories,
			toResult: sopCategoryResult,
		},
		descriptor[models.Sop]{
			label:     TypeSop,
			table:     "sops",
			fields:    []string{"name", "description"},
			ancestors: []string{"SopCategory"},
			find:      Repository.Sops,
			toResult:  sopResult,
		},
		descriptor[models.SopType]{
			label:     TypeSopType,
			table:     "sop_types",
			fields:    []string{"name", "description"},
			ancestors: []string{"Sop.SopCategory"},
			find:      Repository.SopTypes,
			toResult:  sopTypeResult,
		},
		descriptor[models.SopDetail]{
			label:     TypeSopDetail,
			table:     "sop_details",
			fields:    []string{"name", "value"},
			ancestors: []string{"SopType.Sop.SopCategory"},
			find:      Repository.SopDetails,
			toResult:  sopDetailResult,
		},
		descriptor[models.Knowledge]{
			label:    TypeKnowledge,
			table:    "knowledges",
			fields:   []string{"name", "description"},
			find:     Repository.Knowledges,
			toResult: knowledgeResult,
		},
		descriptor[models.DetailKnowledge]{
			label:     TypeDetailKnowledge,
			table:     "detail_knowledges",
			fields:    []string{"name", "detail"},
			ancestors: []string{"Knowledge"},
			find:      Repository.DetailKnowledges,
			toResult:  detailKnowledgeResult,
		},
		descriptor[models.TypeDetailKnowledge]{
			label:     TypeTypeDetailKnowledge,
			table:     "type_detail_knowledges",
			fields:    []string{"name", "description"},
			ancestors: []string{"DetailKnowledge.Knowledge"},
			find:      Repository.TypeDetailKnowledges,
			toResult:  typeDetailKnowledgeResult,
		},
		descriptor[models.ProductTypeDetailKnowledge]{
			label:     TypeProductTypeDetailKnowledge,
			table:     "product_type_detail_knowledges",
			fields:    []string{"name", "detail"},
			ancestors: []string{"TypeDetailKnowledge.DetailKnowledge.Knowledge"},
			find:      Repository.ProductTypeDetailKnowledges,
			toResult:  productTypeDetailKnowledgeResult,
		},
		descriptor[models.QualityTraining]{
			label:    TypeQualityTraining,
			table:    "quality_trainings",
			fields:   []string{"name", "description"},
			find:     Repository.QualityTrainings,
			toResult: qualityTrainingResult,
		},
		descriptor[models.TypeQualityTraining]{
			label:     TypeTypeQualityTraining,
			table:     "type_quality_trainings",
			fields:    []string{"name", "description"},
			ancestors: []string{"QualityTraining"},
			find:      Repository.TypeQualityTrainings,
			toResult:  typeQualityTrainingResult,
		},
		descriptor[models.DetailQualityTraining]{
			label:     TypeDetailQualityTraining,
			table:     "detail_quality_trainings",
			fields:    []string{"name", "description"},
			ancestors: []string{"TypeQualityTraining.QualityTraining"},
			find:      Repository.DetailQualityTrainings,
			toResult:  detailQualityTrainingResult,
		},
		descriptor[models.SubdetailQualityTraining]{
			label:     TypeSubdetailQualityTraining,
			table:     "subdetail_quality_trainings",
			fields:    []string{"name", "description"},
			ancestors: []string{"DetailQualityTraining.TypeQualityTraining.QualityTraining"},
			find:      Repository.SubdetailQualityTrainings,
			toResult:  subdetailQualityTrainingResult,
		},
		descriptor[users.User]{
			label:    TypeUser,
			table:    "users",
			fields:   []string{userFullName, "username", "email"},
			find:     Repository.Users,
			toResult: userResult,
		},
		descriptor[models.Agent]{
			label:    TypeAgent,
			table:    "agents",
			fields:   []string{"name", "email", "agent_code"},
			find:     Repository.Agents,
			toResult: agentResult,
		},
	)
}

// metadata collects breadcrumb names, skipping the ones that are not loaded
type metadata map[string]any

func (m metadata) put(key, value string) metadata {
	if value != "" {
		m[key] = value
	}
	return m
}

func (m metadata) brand(brand *models.Brand) metadata {
	if brand != nil {
		m.put("brand", brand.Name)
	}
	return m
}

func (m metadata) category(category *models.Category) metadata {
	if category != nil {
		m.put("category", category.Name)
	}
	return m
}

func (m metadata) product(product *models.Product) metadata {
	if product == nil {
		return m
	}
	m.put("product", product.Name).brand(product.ResolveBrand()).category(product.ResolveCategory())
	if product.Subcategory != nil {
		m.put("subcategory", product.Subcategory.Name)
	}
	return m
}

func (m metadata) sop(sop *models.Sop) metadata {
	if sop == nil {
		return m
	}
	m.put("sop", sop.Name)
	if sop.SopCategory != nil {
		m.put("sopCategory", sop.SopCategory.Name)
	}
	return m
}

func (m metadata) knowledge(knowledge *models.Knowledge) metadata {
	if knowledge != nil {
		m.put("knowledge", knowledge.Name)
	}
	return m
}

func (m metadata) qualityTraining(training *models.QualityTraining) metadata {
	if training != nil {
		m.put("qualityTraining", training.Name)
	}
	return m
}

func longText(text string) *string {
	return coresearch.NewDescription(coresearch.Truncate(text, coresearch.DescriptionLength))
}

func brandResult(b *models.Brand) coresearch.SearchResult {
	return coresearch.SearchResult{
		Id:          formatId(b.Id),
		Title:       b.Name,
		Description: coresearch.NewDescription(b.Description),
		Link:        brandLink(b),
		Metadata:    metadata{},
	}
}

func categoryResult(c *models.Category) coresearch.SearchResult {
	return coresearch.SearchResult{
		Id:          formatId(c.Id),
		Title:       c.Name,
		Description: coresearch.NewDescription(c.Description),
		Link:        categoryLink(c),
		Metadata:    metadata{}.brand(c.Brand),
	}
}

func subcategoryResult(s *models.Subcategory) coresearch.SearchResult {
	meta := metadata{}.category(s.Category)
	if s.Category != nil {
		meta.brand(s.Category.Brand)
	}
	return coresearch.SearchResult{
		Id:          formatId(s.Id),
		Title:       s.Name,
		Description: coresearch.NewDescription(s.Description),
		Link:        subcategoryLink(s),
		Metadata:    meta,
	}
}

func productResult(p *models.Product) coresearch.SearchResult {
	meta := metadata{}.brand(p.ResolveBrand()).category(p.ResolveCategory())
	if p.Subcategory != nil {
		meta.put("subcategory", p.Subcategory.Name)
	}
	meta.put("capacity", p.Capacity)
	return coresearch.SearchResult{
		Id:          formatId(p.Id),
		Title:       p.Name,
		Description: coresearch.NewDescription(p.Description),
		Link:        productLink(p),
		Metadata:    meta,
	}
}

func productDetailResult(d *models.ProductDetail) coresearch.SearchResult {
	return coresearch.SearchResult{
		Id:          formatId(d.Id),
		Title:       d.Name,
		Description: longText(d.Detail),
		Link:        productLink(d.Product),
		Metadata:    metadata{}.product(d.Product),
	}
}

func sopCategoryResult(c *models.SopCategory) coresearch.SearchResult {
	return coresearch.SearchResult{
		Id:          formatId(c.Id),
		Title:       c.Name,
		Description: coresearch.NewDescription(c.Description),
		Link:        sopCategoryLink(c),
		Metadata:    metadata{},
	}
}

func sopResult(s *models.Sop) coresearch.SearchResult {
	meta := metadata{}
	if s.SopCategory != nil {
		meta.put("sopCategory", s.SopCategory.Name)
	}
	return coresearch.SearchResult{
		Id:          formatId(s.Id),
		Title:       s.Name,
		Description: coresearch.NewDescription(s.Description),
		Link:        sopLink(s),
		Metadata:    meta,
	}
}

func sopTypeResult(t *models.SopType) coresearch.SearchResult {
	return coresearch.SearchResult{
		Id:          formatId(t.Id),
		Title:       t.Name,
		Description: coresearch.NewDescription(t.Description),
		Link:        sopLink(t.Sop),
		Metadata:    metadata{}.sop(t.Sop),
	}
}

func sopDetailResult(d *models.SopDetail) coresearch.SearchResult {
	meta := metadata{}.sop(d.OwningSop())
	if d.SopType != nil {
		meta.put("sopType", d.SopType.Name)
	}
	return coresearch.SearchResult{
		Id:          formatId(d.Id),
		Title:       d.Name,
		Description: longText(d.Value),
		Link:        sopLink(d.OwningSop()),
		Metadata:    meta,
	}
}

func knowledgeResult(k *models.Knowledge) coresearch.SearchResult {
	return coresearch.SearchResult{
		Id:          formatId(k.Id),
		Title:       k.Name,
		Description: coresearch.NewDescription(k.Description),
		Link:        knowledgeLink(k),
		Metadata:    metadata{},
	}
}

func detailKnowledgeResult(d *models.DetailKnowledge) coresearch.SearchResult {
	return coresearch.SearchResult{
		Id:          formatId(d.Id),
		Title:       d.Name,
		Description: longText(d.Detail),
		Link:        knowledgeLink(d.Knowledge),
		Metadata:    metadata{}.knowledge(d.Knowledge),
	}
}

func typeDetailKnowledgeResult(t *models.TypeDetailKnowledge) coresearch.SearchResult {
	meta := metadata{}.knowledge(t.OwningKnowledge())
	if t.DetailKnowledge != nil {
		meta.put("detailKnowledge", t.DetailKnowledge.Name)
	}
	return coresearch.SearchResult{
		Id:          formatId(t.Id),
		Title:       t.Name,
		Description: coresearch.NewDescription(t.Description),
		Link:        knowledgeLink(t.OwningKnowledge()),
		Metadata:    meta,
	}
}

func productTypeDetailKnowledgeResult(p *models.ProductTypeDetailKnowledge) coresearch.SearchResult {
	meta := metadata{}.knowledge(p.OwningKnowledge())
	if p.TypeDetailKnowledge != nil {
		meta.put("typeDetailKnowledge", p.TypeDetailKnowledge.Name)
		if p.TypeDetailKnowledge.DetailKnowledge != nil {
			meta.put("detailKnowledge", p.TypeDetailKnowledge.DetailKnowledge.Name)
		}
	}
	return coresearch.SearchResult{
		Id:          formatId(p.Id),
		Title:       p.Name,
		Description: longText(p.Detail),
		Link:        knowledgeLink(p.OwningKnowledge()),
		Metadata:    meta,
	}
}

func qualityTrainingResult(q *models.QualityTraining) coresearch.SearchResult {
	return coresearch.SearchResult{
		Id:          formatId(q.Id),
		Title:       q.Name,
		Description: coresearch.NewDescription(q.Description),
		Link:        qualityTrainingLink(q),
		Metadata:    metadata{},
	}
}

func typeQualityTrainingResult(t *models.TypeQualityTraining) coresearch.SearchResult {
	return coresearch.SearchResult{
		Id:          formatId(t.Id),
		Title:       t.Name,
		Description: coresearch.NewDescription(t.Description),
		Link:        qualityTrainingLink(t.QualityTraining),
		Metadata:    metadata{}.qualityTraining(t.QualityTraining),
	}
}

func detailQualityTrainingResult(d *models.DetailQualityTraining) coresearch.SearchResult {
	meta := metadata{}.qualityTraining(d.OwningQualityTraining())
	if d.TypeQualityTraining != nil {
		meta.put("typeQualityTraining", d.TypeQualityTraining.Name)
	}
	return coresearch.SearchResult{
		Id:          formatId(d.Id),
		Title:       d.Name,
		Description: coresearch.NewDescription(d.Description),
		Link:        qualityTrainingLink(d.OwningQualityTraining()),
		Metadata:    meta,
	}
}

func subdetailQualityTrainingResult(s *models.SubdetailQualityTraining) coresearch.SearchResult {
	meta := metadata{}.qualityTraining(s.OwningQualityTraining())
	if detail := s.DetailQualityTraining; detail != nil {
		meta.put("detailQualityTraining", detail.Name)
		if detail.TypeQualityTraining != nil {
			meta.put("typeQualityTraining", detail.TypeQualityTraining.Name)
		}
	}
	return coresearch.SearchResult{
		Id:          formatId(s.Id),
		Title:       s.Name,
		Description: coresearch.NewDescription(s.Description),
		Link:        qualityTrainingLink(s.OwningQualityTraining()),
		Metadata:    meta,
	}
}

func userResult(u *users.User) coresearch.SearchResult {
	return coresearch.SearchResult{
		Id:          formatId(u.Id),
		Title:       u.DisplayName(),
		Description: coresearch.NewDescription(u.Email),
		Link:        noLink,
		Metadata:    metadata{}.put("email", u.Email).put("role", u.Role).put("username", u.Username),
	}
}

func agentResult(a *models.Agent) coresearch.SearchResult {
	return coresearch.SearchResult{
		Id:          formatId(a.Id),
		Title:       a.Name,
		Description: coresearch.NewDescription(a.Team),
		Link:        noLink,
		Metadata:    metadata{}.put("email", a.Email).put("status", a.Status).put("agentCode", a.AgentCode),
	}
}
