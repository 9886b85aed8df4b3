package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/manideepv28/CustomerSupportPortal/internal/infrastructure/persistence/models"
)

const ticketCodePrefix = "TK"

// TicketCodeGenerator issues sequential ticket codes of the form TK001, TK002...
// The highest persisted code is loaded lazily and cached; subsequent calls
// increment in memory under the mutex.
type TicketCodeGenerator struct {
	db     *gorm.DB
	mu     sync.Mutex
	last   int
	loaded bool
}

func NewTicketCodeGenerator(db *gorm.DB) *TicketCodeGenerator {
	return &TicketCodeGenerator{db: db}
}

func (g *TicketCodeGenerator) Next(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.loaded {
		last, err := g.loadLast(ctx)
		if err != nil {
			return "", err
		}
		g.last = last
		g.loaded = true
	}

	g.last++
	return fmt.Sprintf("%s%03d", ticketCodePrefix, g.last), nil
}

func (g *TicketCodeGenerator) loadLast(ctx context.Context) (int, error) {
	var codes []string

	err := g.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Pluck("code", &codes).Error
	if err != nil {
		return 0, fmt.Errorf("failed to load ticket codes: %w", err)
	}

	last := 0
	for _, code := range codes {
		n, err := parseTicketCode(code)
		if err != nil {
			continue
		}
		if n > last {
			last = n
		}
	}

	return last, nil
}

func parseTicketCode(code string) (int, error) {
	if !strings.HasPrefix(code, ticketCodePrefix) {
		return 0, fmt.Errorf("unexpected ticket code format: %s", code)
	}
	return strconv.Atoi(strings.TrimPrefix(code, ticketCodePrefix))
}
