package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/manideepv28/CustomerSupportPortal/internal/domain/faq"
)

type FAQRepository struct {
	mu     sync.RWMutex
	faqs   map[uint]*faq.FAQ
	nextID uint
}

func NewFAQRepository() *FAQRepository {
	return &FAQRepository{
		faqs:   make(map[uint]*faq.FAQ),
		nextID: 1,
	}
}

func (r *FAQRepository) Save(ctx context.Context, f *faq.FAQ) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := f.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
	r.faqs[f.ID()] = f

	return nil
}

func (r *FAQRepository) ListActive(ctx context.Context, filter faq.Filter) ([]*faq.FAQ, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(filter.Search)

	faqs := make([]*faq.FAQ, 0)
	for _, f := range r.faqs {
		if !f.IsActive() {
			continue
		}
		if filter.Category != "" && f.Category() != filter.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(f.Question()), search) &&
			!strings.Contains(strings.ToLower(f.Answer()), search) {
			continue
		}
		faqs = append(faqs, f)
	}

	sort.Slice(faqs, func(i, j int) bool {
		return faqs[i].ID() < faqs[j].ID()
	})

	return faqs, nil
}
