package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/faq"
)

type mockFAQRepository struct {
	SaveFunc       func(ctx context.Context, f *faq.FAQ) error
	ListActiveFunc func(ctx context.Context, filter faq.Filter) ([]*faq.FAQ, error)
}

func (m *mockFAQRepository) Save(ctx context.Context, f *faq.FAQ) error {
	return m.SaveFunc(ctx, f)
}

func (m *mockFAQRepository) ListActive(ctx context.Context, filter faq.Filter) ([]*faq.FAQ, error) {
	return m.ListActiveFunc(ctx, filter)
}

func TestListFAQsUseCase_PassesFilter(t *testing.T) {
	sample, err := faq.NewFAQ("How do I reset my password?", "Use the reset link.", "account")
	require.NoError(t, err)

	repo := &mockFAQRepository{
		ListActiveFunc: func(ctx context.Context, filter faq.Filter) ([]*faq.FAQ, error) {
			assert.Equal(t, "account", filter.Category)
			assert.Equal(t, "password", filter.Search)
			return []*faq.FAQ{sample}, nil
		},
	}

	uc := NewListFAQsUseCase(repo)
	result, err := uc.Execute(context.Background(), ListFAQsQuery{Category: "account", Search: "password"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "account", result[0].Category())
}
