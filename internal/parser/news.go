package parser

import (
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/IshaanNene/ParlScrape/internal/classify"
	"github.com/IshaanNene/ParlScrape/internal/normalize"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

const newsTagLimit = 3

var (
	// Tuesday, 20th June 2025 **Speaker Receives Delegation**
	weekdayBoldRe = regexp.MustCompile(`(?i)((?:mon|tues|wednes|thurs|fri|satur|sun)day),?\s+(\d{1,2})(?:st|nd|rd|th)?\s+([a-z]+)\s+(\d{4})\s*\*\*([^*]+)\*\*`)

	looseDateRe = regexp.MustCompile(`(?i)` + looseDate)

	// a date at the start of a block followed by free text
	leadingDateRe = regexp.MustCompile(`(?i)^\s*(?:(?:mon|tues|wednes|thurs|fri|satur|sun)day,?\s+)?(` + looseDate + `)\s*[-–—:|,]?\s*(.{10,})$`)
)

const looseDate = `\b\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?,?\s+\d{4}\b` +
	`|\b\d{1,2}[-/.]\d{1,2}[-/.]\d{4}\b` +
	`|\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{1,2},?\s+\d{4}\b`

// NewsExtractor pulls dated articles from the upstream news listing.
type NewsExtractor struct {
	base     string
	maxItems int
	now      func() time.Time
	logger   *slog.Logger
}

// NewNewsExtractor creates a news extractor. maxItems caps the result after
// deduplication; now supplies the date for undated entries.
func NewNewsExtractor(base string, maxItems int, now func() time.Time, logger *slog.Logger) *NewsExtractor {
	if now == nil {
		now = time.Now
	}
	return &NewsExtractor{
		base:     base,
		maxItems: maxItems,
		now:      now,
		logger:   logger.With("component", "news_extractor"),
	}
}

// Extract returns up to maxItems news items, deduplicated by title and date.
func (e *NewsExtractor) Extract(doc *goquery.Document) []types.NewsItem {
	items, via := Cascade(doc,
		Strategy[types.NewsItem]{Name: "weekday-bold", Extract: e.weekdayBold},
		Strategy[types.NewsItem]{Name: "bold-near-date", Extract: e.boldNearDate},
		Strategy[types.NewsItem]{Name: "leading-date", Extract: e.leadingDate},
	)
	items = dedup(items, func(n types.NewsItem) string { return n.Title + "\x00" + n.Date })
	items = limit(items, e.maxItems)

	e.logger.Debug("news extracted", "count", len(items), "strategy", via)
	return orEmpty(items)
}

// weekdayBold matches "<weekday>, <day> <month> <year> **<title>**" in the
// innermost elements whose text carries the pattern.
func (e *NewsExtractor) weekdayBold(doc *goquery.Document) []types.NewsItem {
	rendered := make(map[*html.Node]string)
	var matched []*goquery.Selection
	doc.Find("body *").Each(func(_ int, s *goquery.Selection) {
		text := renderText(s, true)
		if weekdayBoldRe.MatchString(text) {
			rendered[s.Get(0)] = text
			matched = append(matched, s)
		}
	})

	// drop any match that has a matching descendant
	outer := make(map[*html.Node]bool)
	for _, s := range matched {
		for p := s.Get(0).Parent; p != nil; p = p.Parent {
			if _, ok := rendered[p]; ok {
				outer[p] = true
			}
		}
	}

	var items []types.NewsItem
	for _, s := range matched {
		if outer[s.Get(0)] {
			continue
		}
		text := rendered[s.Get(0)]
		locs := weekdayBoldRe.FindAllStringSubmatchIndex(text, -1)
		for i, loc := range locs {
			title := normalize.CleanText(text[loc[10]:loc[11]])
			if title == "" {
				continue
			}
			date := normalize.ParseDate(text[loc[4]:loc[5]]+" "+text[loc[6]:loc[7]]+" "+text[loc[8]:loc[9]], e.now())

			end := len(text)
			if i+1 < len(locs) {
				end = locs[i+1][0]
			}
			desc := truncate(text[loc[1]:end])

			items = append(items, e.item(s, title, date, desc))
		}
	}
	return items
}

// boldNearDate takes bold text as the title when its parent mentions a date.
func (e *NewsExtractor) boldNearDate(doc *goquery.Document) []types.NewsItem {
	var items []types.NewsItem
	doc.Find("strong, b").Each(func(_ int, s *goquery.Selection) {
		title := normalize.CleanText(s.Text())
		if len(title) < 10 {
			return
		}
		parent := s.Parent()
		parentText := normalize.CleanText(renderText(parent, false))
		raw := looseDateRe.FindString(parentText)
		if raw == "" {
			return
		}
		date := normalize.ParseDate(raw, e.now())
		desc := truncate(textAfter(parentText, title))
		items = append(items, e.item(parent, title, date, desc))
	})
	return items
}

// leadingDate matches paragraphs that open with a date followed by text.
// The first sentence becomes the title.
func (e *NewsExtractor) leadingDate(doc *goquery.Document) []types.NewsItem {
	var items []types.NewsItem
	doc.Find("p, div").Each(func(_ int, s *goquery.Selection) {
		if s.Find("p, div").Length() > 0 {
			return
		}
		text := normalize.CleanText(s.Text())
		m := leadingDateRe.FindStringSubmatch(text)
		if m == nil {
			return
		}
		date := normalize.ParseDate(m[1], e.now())
		rest := m[len(m)-1]

		title, desc := rest, ""
		if i := strings.Index(rest, ". "); i > 0 {
			title, desc = rest[:i], rest[i+2:]
		}
		title = normalize.CleanText(title)
		if len(title) < 10 {
			return
		}
		items = append(items, e.item(s, title, date, truncate(desc)))
	})
	return items
}

func (e *NewsExtractor) item(sel *goquery.Selection, title, date, desc string) types.NewsItem {
	url := linkFor(sel, title, e.base)
	if url == "" {
		url = e.base
	}
	img, alt := nearbyImage(sel, e.base)
	return types.NewsItem{
		Title:       title,
		URL:         url,
		Date:        date,
		Description: desc,
		Category:    classify.News.Categorize(title),
		Tags:        classify.News.Tags(title, newsTagLimit),
		ImageURL:    img,
		ImageAlt:    alt,
	}
}
