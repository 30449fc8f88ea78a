package parser

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/IshaanNene/ParlScrape/internal/normalize"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

const headingSelector = "h1, h2, h3, h4, h5, h6"

// HomeExtractor collects the news and press release link lists from the
// upstream home page.
type HomeExtractor struct {
	base   string
	logger *slog.Logger
}

// NewHomeExtractor creates a home page extractor resolving links against base.
func NewHomeExtractor(base string, logger *slog.Logger) *HomeExtractor {
	return &HomeExtractor{
		base:   base,
		logger: logger.With("component", "home_extractor"),
	}
}

// Extract returns both link lists. Either may be empty.
func (e *HomeExtractor) Extract(doc *goquery.Document) types.HomeLinks {
	news, newsVia := Cascade(doc, e.strategies("latest news", "news")...)
	press, pressVia := Cascade(doc, e.strategies("press release", "press")...)

	e.logger.Debug("home extracted",
		"news", len(news), "news_strategy", newsVia,
		"press_releases", len(press), "press_strategy", pressVia,
	)
	return types.HomeLinks{News: orEmpty(news), PressReleases: orEmpty(press)}
}

func (e *HomeExtractor) strategies(heading, marker string) []Strategy[types.LinkItem] {
	return []Strategy[types.LinkItem]{
		{Name: "heading", Extract: func(doc *goquery.Document) []types.LinkItem {
			return e.underHeading(doc, heading)
		}},
		{Name: "class-id", Extract: func(doc *goquery.Document) []types.LinkItem {
			return e.byMarker(doc, marker)
		}},
	}
}

// underHeading collects the anchors that follow a heading containing text,
// up to the next heading.
func (e *HomeExtractor) underHeading(doc *goquery.Document, text string) []types.LinkItem {
	var items []types.LinkItem
	doc.Find(headingSelector).Each(func(_ int, h *goquery.Selection) {
		if !strings.Contains(strings.ToLower(h.Text()), text) {
			return
		}
		var found []types.LinkItem
		h.NextUntil(headingSelector).Each(func(_ int, sib *goquery.Selection) {
			if sib.Is("a[href]") {
				found = append(found, e.links(sib)...)
				return
			}
			found = append(found, e.links(sib.Find("a[href]"))...)
		})
		if len(found) == 0 {
			// heading wrapped in its own container; the list sits beside it
			found = e.links(h.Parent().Find("a[href]"))
		}
		items = append(items, found...)
	})
	return dedupLinks(items)
}

// byMarker collects anchors inside elements whose class or id mentions marker.
func (e *HomeExtractor) byMarker(doc *goquery.Document, marker string) []types.LinkItem {
	sel := fmt.Sprintf(`[class*="%[1]s"] a[href], [id*="%[1]s"] a[href]`, marker)
	return dedupLinks(e.links(doc.Find(sel)))
}

func (e *HomeExtractor) links(anchors *goquery.Selection) []types.LinkItem {
	var items []types.LinkItem
	anchors.Each(func(_ int, a *goquery.Selection) {
		title := normalize.CleanText(a.Text())
		if title == "" {
			title = normalize.CleanText(a.AttrOr("title", ""))
		}
		url := normalize.Absolutize(e.base, a.AttrOr("href", ""))
		if title == "" || url == "" {
			return
		}
		items = append(items, types.LinkItem{Title: title, URL: url})
	})
	return items
}

func dedupLinks(items []types.LinkItem) []types.LinkItem {
	return dedup(items, func(l types.LinkItem) string { return l.Title + "\x00" + l.URL })
}

func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
