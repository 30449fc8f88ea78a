package pipeline

import (
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/IshaanNene/ParlScrape/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

func newItem(kind string, fields map[string]any) *types.Item {
	return &types.Item{Kind: kind, Fields: fields, Source: "live"}
}

func TestPipelineBasic(t *testing.T) {
	p := New(testLogger)
	p.Use(&TrimMiddleware{})

	item := newItem("news", map[string]any{"title": "  Speaker opens session  ", "tags": []any{"Speaker"}})

	result, err := p.Process(item)
	if err != nil {
		t.Fatalf("pipeline error: %v", err)
	}
	if result.GetString("title") != "Speaker opens session" {
		t.Errorf("expected trimmed title, got %q", result.GetString("title"))
	}
	if p.Len() != 1 {
		t.Errorf("expected 1 middleware, got %d", p.Len())
	}
}

func TestRequiredFieldsMiddleware(t *testing.T) {
	m := &RequiredFieldsMiddleware{AnyOf: []string{"title", "name"}}

	if result, _ := m.Process(newItem("member", map[string]any{"name": "Ama Mensah"})); result == nil {
		t.Error("item with a name should pass")
	}
	if result, _ := m.Process(newItem("bill", map[string]any{"title": "", "laidBy": "Minister"})); result != nil {
		t.Error("item without title or name should be dropped")
	}
}

func TestDedupMiddlewarePerKind(t *testing.T) {
	m := NewDedupMiddleware("title", "url")

	first := newItem("link", map[string]any{"title": "Budget", "url": "https://x/1"})
	again := newItem("link", map[string]any{"title": "BUDGET", "url": "https://x/1"})
	other := newItem("press_release", map[string]any{"title": "Budget", "url": "https://x/1"})

	if r, _ := m.Process(first); r == nil {
		t.Fatal("first item dropped")
	}
	if r, _ := m.Process(again); r != nil {
		t.Error("case-insensitive duplicate should be dropped")
	}
	if r, _ := m.Process(other); r == nil {
		t.Error("same key in another kind should pass")
	}
}

type failing struct{}

func (failing) Name() string { return "failing" }
func (failing) Process(*types.Item) (*types.Item, error) {
	return nil, errors.New("bad item")
}

func TestRunForExport(t *testing.T) {
	items := []*types.Item{
		newItem("bill", map[string]any{"title": " Fisheries Bill ", "url": "https://x/b"}),
		newItem("bill", map[string]any{"title": "Fisheries Bill", "url": "https://x/b"}),
		newItem("bill", map[string]any{"title": "  "}),
		newItem("member", map[string]any{"name": "Ama Mensah", "constituency": "Tamale Central"}),
	}

	out, err := ForExport(testLogger).Run(items)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 items, got %d", len(out))
	}
	if out[0].GetString("title") != "Fisheries Bill" || out[1].Kind != "member" {
		t.Errorf("unexpected items: %+v, %+v", out[0].Fields, out[1].Fields)
	}

	p := New(testLogger)
	p.Use(failing{})
	if _, err := p.Run(items); err == nil {
		t.Error("expected stage error")
	}
}
