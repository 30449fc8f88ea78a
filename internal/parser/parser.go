// Package parser turns upstream HTML documents into typed records. Each
// content type is extracted by an ordered cascade of strategies, the first
// one yielding records wins.
package parser

import (
	"github.com/PuerkitoBio/goquery"
)

// Strategy is one way of pulling records of type T out of a document.
type Strategy[T any] struct {
	Name    string
	Extract func(doc *goquery.Document) []T
}

// Cascade applies strategies in order and returns the records of the first
// one that produced any, with its name. It returns nil and "" when every
// strategy comes up empty.
func Cascade[T any](doc *goquery.Document, strategies ...Strategy[T]) ([]T, string) {
	for _, s := range strategies {
		if out := s.Extract(doc); len(out) > 0 {
			return out, s.Name
		}
	}
	return nil, ""
}

// dedup keeps the first record for each key, preserving order.
func dedup[T any](in []T, key func(T) string) []T {
	seen := make(map[string]struct{}, len(in))
	out := in[:0:0]
	for _, v := range in {
		k := key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

func limit[T any](in []T, n int) []T {
	if n > 0 && len(in) > n {
		return in[:n]
	}
	return in
}
