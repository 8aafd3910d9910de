package search

import (
	"strings"

	"portal/app/models"
	coresearch "portal/core/app/search"
)

const (
	productsRoot        = "/agent/products"
	sopRoot             = "/agent/sop"
	knowledgeRoot       = "/agent/knowledge"
	qualityTrainingRoot = "/agent/quality-training"

	// noLink marks entities without a detail page
	noLink = "#"
)

// joinLink appends one slug per name. A blank name ends the path there, so the
// link points at the deepest named ancestor.
func joinLink(root string, names ...string) string {
	var b strings.Builder
	b.WriteString(root)
	for _, name := range names {
		slug := coresearch.Slugify(name)
		if slug == "" {
			break
		}
		b.WriteByte('/')
		b.WriteString(slug)
	}
	return b.String()
}

func brandLink(brand *models.Brand) string {
	if brand == nil {
		return productsRoot
	}
	return joinLink(productsRoot, brand.Name)
}

func categoryLink(category *models.Category) string {
	if category == nil || category.Brand == nil {
		return productsRoot
	}
	return joinLink(productsRoot, category.Brand.Name, category.Name)
}

func subcategoryLink(subcategory *models.Subcategory) string {
	if subcategory == nil || subcategory.Category == nil || subcategory.Category.Brand == nil {
		return productsRoot
	}
	category := subcategory.Category
	return joinLink(productsRoot, category.Brand.Name, category.Name, subcategory.Name)
}

// productLink picks the deepest path the loaded ancestors allow
func productLink(product *models.Product) string {
	if product == nil {
		return productsRoot
	}
	brand := product.ResolveBrand()
	if brand == nil {
		return productsRoot
	}
	category := product.ResolveCategory()
	if category == nil {
		return joinLink(productsRoot, brand.Name)
	}
	if product.Subcategory != nil {
		return joinLink(productsRoot, brand.Name, category.Name, product.Subcategory.Name, product.Name)
	}
	return joinLink(productsRoot, brand.Name, category.Name, product.Name)
}

func sopCategoryLink(category *models.SopCategory) string {
	if category == nil {
		return sopRoot
	}
	return joinLink(sopRoot, category.Name)
}

func sopLink(sop *models.Sop) string {
	if sop == nil || sop.SopCategory == nil {
		return sopRoot
	}
	return joinLink(sopRoot, sop.SopCategory.Name, sop.Name)
}

func knowledgeLink(knowledge *models.Knowledge) string {
	if knowledge == nil {
		return knowledgeRoot
	}
	return joinLink(knowledgeRoot, knowledge.Name)
}

func qualityTrainingLink(training *models.QualityTraining) string {
	if training == nil {
		return qualityTrainingRoot
	}
	return joinLink(qualityTrainingRoot, training.Name)
}
