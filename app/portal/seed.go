package portal

import (
	"errors"

	"portal/app/models"

	"gorm.io/gorm"
)

// Seed inserts a small demo data set touching every searchable table. Rows are
// matched by name, so running it again adds nothing.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedCatalog(tx); err != nil {
			return err
		}
		if err := seedSops(tx); err != nil {
			return err
		}
		if err := seedKnowledge(tx); err != nil {
			return err
		}
		if err := seedQualityTraining(tx); err != nil {
			return err
		}
		return ensure(tx, &models.Agent{
			Name:      "Dana Lee",
			Email:     "dana.lee@example.com",
			AgentCode: "AG-001",
			Team:      "Skin Care",
			Status:    "active",
		}, "agent_code = ?", "AG-001")
	})
}

// ensure loads the record matching the condition into record, creating it
// from record's fields when there is none.
func ensure[T any](tx *gorm.DB, record *T, query string, args ...any) error {
	err := tx.Where(query, args...).First(record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return tx.Create(record).Error
	}
	return err
}

func seedCatalog(tx *gorm.DB) error {
	acme := &models.Brand{Name: "Acme", Description: "Personal care essentials"}
	if err := ensure(tx, acme, "name = ?", acme.Name); err != nil {
		return err
	}
	creamCo := &models.Brand{Name: "CreamCo", Description: "Dairy-free creams and spreads"}
	if err := ensure(tx, creamCo, "name = ?", creamCo.Name); err != nil {
		return err
	}

	skinCare := &models.Category{Name: "Skin Care", Description: "Face and body care", BrandId: acme.Id}
	if err := ensure(tx, skinCare, "name = ? AND brand_id = ?", skinCare.Name, acme.Id); err != nil {
		return err
	}
	moisturizers := &models.Subcategory{Name: "Moisturizers", CategoryId: skinCare.Id}
	if err := ensure(tx, moisturizers, "name = ? AND category_id = ?", moisturizers.Name, skinCare.Id); err != nil {
		return err
	}

	dayCream := &models.Product{
		Name:        "Day Cream",
		Description: "Light moisturizing cream with SPF 15",
		Capacity:    "50 ml",
		BrandId:     &acme.Id,
		CategoryId:  &skinCare.Id,
	}
	if err := ensure(tx, dayCream, "name = ?", dayCream.Name); err != nil {
		return err
	}
	nightSerum := &models.Product{
		Name:          "Night Serum",
		Description:   "Overnight repair serum",
		Capacity:      "30 ml",
		SubcategoryId: &moisturizers.Id,
	}
	if err := ensure(tx, nightSerum, "name = ?", nightSerum.Name); err != nil {
		return err
	}
	// Attached to its brand only; links to the brand page
	travelKit := &models.Product{
		Name:        "Travel Kit",
		Description: "Mini sizes of the best sellers",
		BrandId:     &acme.Id,
	}
	if err := ensure(tx, travelKit, "name = ?", travelKit.Name); err != nil {
		return err
	}

	ingredients := &models.ProductDetail{
		Name:      "Ingredients",
		Detail:    "Aqua, glycerin, shea butter, niacinamide, tocopherol, sodium hyaluronate, zinc oxide. Free from parabens and added fragrance. Suitable for sensitive skin and tested under dermatological supervision.",
		ProductId: dayCream.Id,
	}
	return ensure(tx, ingredients, "name = ? AND product_id = ?", ingredients.Name, dayCream.Id)
}

func seedSops(tx *gorm.DB) error {
	complaints := &models.SopCategory{Name: "Complaints", Description: "Handling customer complaints"}
	if err := ensure(tx, complaints, "name = ?", complaints.Name); err != nil {
		return err
	}
	refund := &models.Sop{Name: "Refund Request", Description: "Steps for refunding an order", SopCategoryId: complaints.Id}
	if err := ensure(tx, refund, "name = ?", refund.Name); err != nil {
		return err
	}
	chat := &models.SopType{Name: "Via Chat", Description: "Refunds requested in live chat", SopId: refund.Id}
	if err := ensure(tx, chat, "name = ? AND sop_id = ?", chat.Name, refund.Id); err != nil {
		return err
	}
	verify := &models.SopDetail{
		Name:      "Verify order",
		Value:     "Ask for the order number and the e-mail used at checkout, confirm the delivery date and check whether the cream was opened.",
		SopTypeId: chat.Id,
	}
	return ensure(tx, verify, "name = ? AND sop_type_id = ?", verify.Name, chat.Id)
}

func seedKnowledge(tx *gorm.DB) error {
	shipping := &models.Knowledge{Name: "Shipping Policy", Description: "Where and how fast we ship"}
	if err := ensure(tx, shipping, "name = ?", shipping.Name); err != nil {
		return err
	}
	delivery := &models.DetailKnowledge{Name: "Delivery times", Detail: "Standard delivery takes 2 to 4 working days.", KnowledgeId: shipping.Id}
	if err := ensure(tx, delivery, "name = ? AND knowledge_id = ?", delivery.Name, shipping.Id); err != nil {
		return err
	}
	express := &models.TypeDetailKnowledge{Name: "Express", Description: "Next day delivery", DetailKnowledgeId: delivery.Id}
	if err := ensure(tx, express, "name = ? AND detail_knowledge_id = ?", express.Name, delivery.Id); err != nil {
		return err
	}
	perishable := &models.ProductTypeDetailKnowledge{
		Name:                  "Creams by express",
		Detail:                "Creams ship in insulated packaging when sent by express.",
		TypeDetailKnowledgeId: express.Id,
	}
	return ensure(tx, perishable, "name = ? AND type_detail_knowledge_id = ?", perishable.Name, express.Id)
}

func seedQualityTraining(tx *gorm.DB) error {
	onboarding := &models.QualityTraining{Name: "Onboarding", Description: "First week training"}
	if err := ensure(tx, onboarding, "name = ?", onboarding.Name); err != nil {
		return err
	}
	products := &models.TypeQualityTraining{Name: "Product knowledge", QualityTrainingId: onboarding.Id}
	if err := ensure(tx, products, "name = ? AND quality_training_id = ?", products.Name, onboarding.Id); err != nil {
		return err
	}
	creams := &models.DetailQualityTraining{Name: "Creams", Description: "Day and night creams", TypeQualityTrainingId: products.Id}
	if err := ensure(tx, creams, "name = ? AND type_quality_training_id = ?", creams.Name, products.Id); err != nil {
		return err
	}
	quiz := &models.SubdetailQualityTraining{Name: "Day cream quiz", DetailQualityTrainingId: creams.Id}
	return ensure(tx, quiz, "name = ? AND detail_quality_training_id = ?", quiz.Name, creams.Id)
}
