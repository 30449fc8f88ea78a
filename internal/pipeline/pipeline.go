// Package pipeline cleans export items before they reach storage.
package pipeline

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/IshaanNene/ParlScrape/internal/types"
)

// Middleware processes an item and returns the (possibly modified) item.
// Return nil to drop the item from the pipeline.
type Middleware interface {
	// Name returns the middleware's identifier.
	Name() string

	// Process transforms an item. Return nil to drop the item.
	Process(item *types.Item) (*types.Item, error)
}

// Pipeline chains middleware processors together.
type Pipeline struct {
	middlewares []Middleware
	logger      *slog.Logger
}

// New creates a new Pipeline.
func New(logger *slog.Logger) *Pipeline {
	return &Pipeline{
		logger: logger.With("component", "pipeline"),
	}
}

// ForExport returns the pipeline applied to snapshot exports: trim strings,
// drop records without a title or name, drop duplicates within a kind.
func ForExport(logger *slog.Logger) *Pipeline {
	p := New(logger)
	p.Use(&TrimMiddleware{})
	p.Use(&RequiredFieldsMiddleware{AnyOf: []string{"title", "name"}})
	p.Use(NewDedupMiddleware("title", "name", "constituency", "date", "url"))
	return p
}

// Use adds a middleware to the pipeline chain.
func (p *Pipeline) Use(mw Middleware) {
	p.middlewares = append(p.middlewares, mw)
	p.logger.Debug("middleware added", "name", mw.Name(), "position", len(p.middlewares))
}

// Process runs the item through all middleware in order.
func (p *Pipeline) Process(item *types.Item) (*types.Item, error) {
	current := item
	for _, mw := range p.middlewares {
		result, err := mw.Process(current)
		if err != nil {
			return nil, fmt.Errorf("pipeline stage %s: %w", mw.Name(), err)
		}
		if result == nil {
			p.logger.Debug("item dropped", "stage", mw.Name(), "kind", item.Kind)
			return nil, nil
		}
		current = result
	}
	return current, nil
}

// Run processes a batch and returns the surviving items in order.
func (p *Pipeline) Run(items []*types.Item) ([]*types.Item, error) {
	out := make([]*types.Item, 0, len(items))
	for _, item := range items {
		processed, err := p.Process(item)
		if err != nil {
			return nil, err
		}
		if processed != nil {
			out = append(out, processed)
		}
	}
	if dropped := len(items) - len(out); dropped > 0 {
		p.logger.Info("items dropped before export", "dropped", dropped, "kept", len(out))
	}
	return out, nil
}

// Len returns the number of middleware in the chain.
func (p *Pipeline) Len() int {
	return len(p.middlewares)
}

// --- Built-in Middleware ---

// TrimMiddleware trims whitespace from all string fields.
type TrimMiddleware struct{}

func (m *TrimMiddleware) Name() string { return "trim" }

func (m *TrimMiddleware) Process(item *types.Item) (*types.Item, error) {
	for key, v := range item.Fields {
		if s, ok := v.(string); ok {
			item.Fields[key] = strings.TrimSpace(s)
		}
	}
	return item, nil
}

// RequiredFieldsMiddleware drops items where none of AnyOf holds a
// non-empty string.
type RequiredFieldsMiddleware struct {
	AnyOf []string
}

func (m *RequiredFieldsMiddleware) Name() string { return "required_fields" }

func (m *RequiredFieldsMiddleware) Process(item *types.Item) (*types.Item, error) {
	for _, field := range m.AnyOf {
		if item.GetString(field) != "" {
			return item, nil
		}
	}
	return nil, nil
}

// DedupMiddleware drops items whose kind and key fields repeat an earlier
// item.
type DedupMiddleware struct {
	mu     sync.Mutex
	seen   map[string]struct{}
	fields []string
}

func NewDedupMiddleware(fields ...string) *DedupMiddleware {
	return &DedupMiddleware{
		seen:   make(map[string]struct{}),
		fields: fields,
	}
}

func (m *DedupMiddleware) Name() string { return "dedup" }

func (m *DedupMiddleware) Process(item *types.Item) (*types.Item, error) {
	parts := make([]string, 0, len(m.fields)+1)
	parts = append(parts, item.Kind)
	for _, f := range m.fields {
		parts = append(parts, strings.ToLower(item.GetString(f)))
	}
	key := strings.Join(parts, "\x00")

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.seen[key]; exists {
		return nil, nil
	}
	m.seen[key] = struct{}{}
	return item, nil
}
