package usecases

import (
	"context"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/faq"
)

type ListFAQsQuery struct {
	Category string
	Search   string
}

type ListFAQsExecutor interface {
	Execute(ctx context.Context, query ListFAQsQuery) ([]*faq.FAQ, error)
}

type ListFAQsUseCase struct {
	faqRepo faq.FAQRepository
}

func NewListFAQsUseCase(faqRepo faq.FAQRepository) *ListFAQsUseCase {
	return &ListFAQsUseCase{faqRepo: faqRepo}
}

func (uc *ListFAQsUseCase) Execute(ctx context.Context, query ListFAQsQuery) ([]*faq.FAQ, error) {
	return uc.faqRepo.ListActive(ctx, faq.Filter{
		Category: query.Category,
		Search:   query.Search,
	})
}
