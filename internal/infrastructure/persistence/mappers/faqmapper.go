package mappers

import (
	"time"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/faq"
	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/models"
)

type FAQMapper struct{}

func NewFAQMapper() FAQMapper {
	return FAQMapper{}
}

func (m FAQMapper) ToModel(f *faq.FAQ) *models.FAQModel {
	return &models.FAQModel{
		ID:        f.ID(),
		Question:  f.Question(),
		Answer:    f.Answer(),
		Category:  f.Category(),
		IsActive:  f.IsActive(),
		CreatedAt: f.CreatedAt().UnixMilli(),
	}
}

func (m FAQMapper) ToDomain(model *models.FAQModel) (*faq.FAQ, error) {
	return faq.ReconstructFAQ(
		model.ID,
		model.Question,
		model.Answer,
		model.Category,
		model.IsActive,
		time.UnixMilli(model.CreatedAt),
	)
}
