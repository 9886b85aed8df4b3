package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/faq"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/mappers"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/models"
)

type FAQRepository struct {
	db     *gorm.DB
	mapper mappers.FAQMapper
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{
		db:     db,
		mapper: mappers.NewFAQMapper(),
	}
}

func (r *FAQRepository) Save(ctx context.Context, f *faq.FAQ) error {
	model := r.mapper.ToModel(f)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save faq: %w", err)
	}

	return f.SetID(model.ID)
}

func (r *FAQRepository) ListActive(ctx context.Context, filter faq.Filter) ([]*faq.FAQ, error) {
	query := r.db.WithContext(ctx).
		Model(&models.FAQModel{}).
		Where("is_active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(question) LIKE ? OR LOWER(answer) LIKE ?", pattern, pattern)
	}

	var found []models.FAQModel
	if err := query.Order("id ASC").Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	faqs := make([]*faq.FAQ, 0, len(found))
	for i := range found {
		f, err := r.mapper.ToDomain(&found[i])
		if err != nil {
			return nil, err
		}
		faqs = append(faqs, f)
	}

	return faqs, nil
}
