package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Item is a flattened record prepared for snapshot export.
type Item struct {
	// Kind is the record type ("link", "news", "bill", "member").
	Kind string

	// Fields stores the record's JSON fields.
	Fields map[string]any

	// URL is the upstream page the record was scraped from.
	URL string

	// Source is "live" or "fallback".
	Source string

	// Timestamp is when this item was created.
	Timestamp time.Time
}

// NewItem flattens v (any JSON-serializable record) into an Item.
func NewItem(kind, sourceURL, source string, v any) (*Item, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal %s: %w", kind, err)
	}
	fields := make(map[string]any)
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("flatten %s: %w", kind, err)
	}
	return &Item{
		Kind:      kind,
		Fields:    fields,
		URL:       sourceURL,
		Source:    source,
		Timestamp: time.Now(),
	}, nil
}

// GetString retrieves a field value as a string.
func (i *Item) GetString(key string) string {
	s, _ := i.Fields[key].(string)
	return s
}

// Document returns the item as a single map with metadata keys prefixed by "_".
func (i *Item) Document() map[string]any {
	doc := make(map[string]any, len(i.Fields)+4)
	for k, v := range i.Fields {
		doc[k] = v
	}
	doc["_kind"] = i.Kind
	doc["_url"] = i.URL
	doc["_source"] = i.Source
	doc["_timestamp"] = i.Timestamp
	return doc
}

// ToFlatMap returns a flat map suitable for CSV export.
func (i *Item) ToFlatMap() map[string]string {
	flat := make(map[string]string, len(i.Fields)+4)
	flat["_kind"] = i.Kind
	flat["_url"] = i.URL
	flat["_source"] = i.Source
	flat["_timestamp"] = i.Timestamp.Format(time.RFC3339)

	for k, v := range i.Fields {
		switch val := v.(type) {
		case string:
			flat[k] = val
		case nil:
			flat[k] = ""
		default:
			b, _ := json.Marshal(val)
			flat[k] = string(b)
		}
	}
	return flat
}
