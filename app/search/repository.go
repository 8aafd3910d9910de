package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"portal/app/models"
	"portal/core/app/users"

	"gorm.io/gorm"
)

// ErrSessionReleased is returned by lookups on a session after Release
var ErrSessionReleased = errors.New("search session already released")

// Lookup describes a single source lookup
type Lookup struct {
	Term     string   // Matched case-insensitively as a substring
	Limit    int      // Maximum records returned; 0 means unbounded
	Fields   []string // Columns OR'd together
	Preloads []string // Ancestor relations to eager-load
}

// Repository has one typed lookup per searchable entity
type Repository interface {
	Brands(ctx context.Context, l Lookup) ([]models.Brand, error)
	Categories(ctx context.Context, l Lookup) ([]models.Category, error)
	Subcategories(ctx context.Context, l Lookup) ([]models.Subcategory, error)
	Products(ctx context.Context, l Lookup) ([]models.Product, error)
	ProductDetails(ctx context.Context, l Lookup) ([]models.ProductDetail, error)

	SopCategories(ctx context.Context, l Lookup) ([]models.SopCategory, error)
	Sops(ctx context.Context, l Lookup) ([]models.Sop, error)
	SopTypes(ctx context.Context, l Lookup) ([]models.SopType, error)
	SopDetails(ctx context.Context, l Lookup) ([]models.SopDetail, error)

	Knowledges(ctx context.Context, l Lookup) ([]models.Knowledge, error)
	DetailKnowledges(ctx context.Context, l Lookup) ([]models.DetailKnowledge, error)
	TypeDetailKnowledges(ctx context.Context, l Lookup) ([]models.TypeDetailKnowledge, error)
	ProductTypeDetailKnowledges(ctx context.Context, l Lookup) ([]models.ProductTypeDetailKnowledge, error)

	QualityTrainings(ctx context.Context, l Lookup) ([]models.QualityTraining, error)
	TypeQualityTrainings(ctx context.Context, l Lookup) ([]models.TypeQualityTraining, error)
	DetailQualityTrainings(ctx context.Context, l Lookup) ([]models.DetailQualityTraining, error)
	SubdetailQualityTrainings(ctx context.Context, l Lookup) ([]models.SubdetailQualityTraining, error)

	Users(ctx context.Context, l Lookup) ([]users.User, error)
	Agents(ctx context.Context, l Lookup) ([]models.Agent, error)
}

// Session is a Repository bound to one search request
type Session interface {
	Repository
	Release() error
}

// GormStore hands out gorm backed sessions
type GormStore struct {
	DB *gorm.DB
}

// NewGormStore creates a store over the connection pool
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

// Acquire checks that the database is reachable and returns a session bound to ctx
func (s *GormStore) Acquire(ctx context.Context) (Session, error) {
	if s.DB == nil {
		return nil, errors.New("no database configured")
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database pool: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	return &gormSession{db: s.DB.WithContext(ctx)}, nil
}

type gormSession struct {
	db       *gorm.DB
	released atomic.Bool
}

func (s *gormSession) Release() error {
	if !s.released.CompareAndSwap(false, true) {
		return ErrSessionReleased
	}
	return nil
}

func (s *gormSession) Brands(ctx context.Context, l Lookup) ([]models.Brand, error) {
	return findMatching[models.Brand](ctx, s, l)
}

func (s *gormSession) Categories(ctx context.Context, l Lookup) ([]models.Category, error) {
	return findMatching[models.Category](ctx, s, l)
}

func (s *gormSession) Subcategories(ctx context.Context, l Lookup) ([]models.Subcategory, error) {
	return findMatching[models.Subcategory](ctx, s, l)
}

func (s *gormSession) Products(ctx context.Context, l Lookup) ([]models.Product, error) {
	return findMatching[models.Product](ctx, s, l)
}

func (s *gormSession) ProductDetails(ctx context.Context, l Lookup) ([]models.ProductDetail, error) {
	return findMatching[models.ProductDetail](ctx, s, l)
}

func (s *gormSession) SopCategories(ctx context.Context, l Lookup) ([]models.SopCategory, error) {
	return findMatching[models.SopCategory](ctx, s, l)
}

func (s *gormSession) Sops(ctx context.Context, l Lookup) ([]models.Sop, error) {
	return findMatching[models.Sop](ctx, s, l)
}

func (s *gormSession) SopTypes(ctx context.Context, l Lookup) ([]models.SopType, error) {
	return findMatching[models.SopType](ctx, s, l)
}

func (s *gormSession) SopDetails(ctx context.Context, l Lookup) ([]models.SopDetail, error) {
	return findMatching[models.SopDetail](ctx, s, l)
}

func (s *gormSession) Knowledges(ctx context.Context, l Lookup) ([]models.Knowledge, error) {
	return findMatching[models.Knowledge](ctx, s, l)
}

func (s *gormSession) DetailKnowledges(ctx context.Context, l Lookup) ([]models.DetailKnowledge, error) {
	return findMatching[models.DetailKnowledge](ctx, s, l)
}

func (s *gormSession) TypeDetailKnowledges(ctx context.Context, l Lookup) ([]models.TypeDetailKnowledge, error) {
	return findMatching[models.TypeDetailKnowledge](ctx, s, l)
}

func (s *gormSession) ProductTypeDetailKnowledges(ctx context.Context, l Lookup) ([]models.ProductTypeDetailKnowledge, error) {
	return findMatching[models.ProductTypeDetailKnowledge](ctx, s, l)
}

func (s *gormSession) QualityTrainings(ctx context.Context, l Lookup) ([]models.QualityTraining, error) {
	return findMatching[models.QualityTraining](ctx, s, l)
}

func (s *gormSession) TypeQualityTrainings(ctx context.Context, l Lookup) ([]models.TypeQualityTraining, error) {
	return findMatching[models.TypeQualityTraining](ctx, s, l)
}

func (s *gormSession) DetailQualityTrainings(ctx context.Context, l Lookup) ([]models.DetailQualityTraining, error) {
	return findMatching[models.DetailQualityTraining](ctx, s, l)
}

func (s *gormSession) SubdetailQualityTrainings(ctx context.Context, l Lookup) ([]models.SubdetailQualityTraining, error) {
	return findMatching[models.SubdetailQualityTraining](ctx, s, l)
}

func (s *gormSession) Users(ctx context.Context, l Lookup) ([]users.User, error) {
	return findMatching[users.User](ctx, s, l)
}

func (s *gormSession) Agents(ctx context.Context, l Lookup) ([]models.Agent, error) {
	return findMatching[models.Agent](ctx, s, l)
}

// findMatching selects the records of T where any of the lookup fields contains
// the term, ignoring case. Soft-deleted rows are excluded by gorm.
func findMatching[T any](ctx context.Context, s *gormSession, l Lookup) ([]T, error) {
	if s.released.Load() {
		return nil, ErrSessionReleased
	}
	if len(l.Fields) == 0 {
		return nil, errors.New("no match fields configured")
	}

	// '!' is the LIKE escape character; it behaves the same on sqlite, mysql and postgres.
	// Both sides are folded by the database so they always agree on case.
	pattern := "%" + escapeLike(l.Term) + "%"

	clauses := make([]string, len(l.Fields))
	args := make([]any, len(l.Fields))
	for i, field := range l.Fields {
		clauses[i] = "LOWER(" + field + ") LIKE LOWER(?) ESCAPE '!'"
		args[i] = pattern
	}

	query := s.db.WithContext(ctx).Where("("+strings.Join(clauses, " OR ")+")", args...)
	for _, relation := range l.Preloads {
		query = query.Preload(relation)
	}
	if l.Limit > 0 {
		query = query.Limit(l.Limit)
	}

	var records []T
	if err := query.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
