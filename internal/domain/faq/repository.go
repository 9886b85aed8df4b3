package faq

import "context"

// FAQRepository persists FAQ entries. Only active entries are listable.
type FAQRepository interface {
	Save(ctx context.Context, faq *FAQ) error
	// ListActive returns active FAQs, optionally narrowed by category and by a
	// case-insensitive substring search over question and answer.
	ListActive(ctx context.Context, filter Filter) ([]*FAQ, error)
}

// Filter narrows FAQ listings. Empty fields match everything.
type Filter struct {
	Category string
	Search   string
}
