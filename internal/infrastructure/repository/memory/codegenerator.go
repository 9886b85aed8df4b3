package memory

import (
	"context"
	"fmt"
	"sync"
)

// CodeGenerator issues TK-prefixed codes from an in-memory counter.
type CodeGenerator struct {
	mu   sync.Mutex
	last int
}

// NewCodeGenerator starts the sequence after the given last-used number,
// so NewCodeGenerator(3) issues TK004 first.
func NewCodeGenerator(last int) *CodeGenerator {
	return &CodeGenerator{last: last}
}

func (g *CodeGenerator) Next(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.last++
	return fmt.Sprintf("TK%03d", g.last), nil
}
