package parser

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/IshaanNene/ParlScrape/internal/classify"
	"github.com/IshaanNene/ParlScrape/internal/normalize"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

const billTagLimit = 5

// BillRow is one raw row of the bills table before classification.
type BillRow struct {
	Title      string
	LaidBy     string
	LaidOn     string
	GazettedOn string
	URL        string
}

// BillsExtractor reads the upstream bills table.
type BillsExtractor struct {
	base    string
	perPage int
	window  time.Duration
	logger  *slog.Logger
}

// NewBillsExtractor creates a bills extractor. perPage caps rows per page
// and window is the in-progress window used for status inference.
func NewBillsExtractor(base string, perPage int, window time.Duration, logger *slog.Logger) *BillsExtractor {
	return &BillsExtractor{
		base:    base,
		perPage: perPage,
		window:  window,
		logger:  logger.With("component", "bills_extractor"),
	}
}

// Rows returns the qualifying table rows of doc. Rows without an anchor
// link to pageURL.
func (e *BillsExtractor) Rows(doc *goquery.Document, pageURL string) []BillRow {
	rows, via := Cascade(doc,
		Strategy[BillRow]{Name: "table-rows", Extract: func(d *goquery.Document) []BillRow {
			return e.rows(d.Find("tr"), "td, th", pageURL)
		}},
		Strategy[BillRow]{Name: "aria-rows", Extract: func(d *goquery.Document) []BillRow {
			return e.rows(d.Find(`[role="row"]`), `[role="cell"], [role="gridcell"], [role="rowheader"]`, pageURL)
		}},
	)
	rows = dedup(rows, func(r BillRow) string { return r.Title + "\x00" + r.URL })
	rows = limit(rows, e.perPage)

	e.logger.Debug("bill rows extracted", "count", len(rows), "strategy", via)
	return rows
}

// Extract builds classified bills for one page. Bill numbers continue the
// sequence of earlier pages.
func (e *BillsExtractor) Extract(doc *goquery.Document, pageURL string, page int, now time.Time) []types.Bill {
	return e.Build(e.Rows(doc, pageURL), page, now)
}

// Build classifies rows as bills of the given page.
func (e *BillsExtractor) Build(rows []BillRow, page int, now time.Time) []types.Bill {
	bills := make([]types.Bill, 0, len(rows))
	offset := (max(page, 1) - 1) * e.perPage
	for i, r := range rows {
		bills = append(bills, NewBill(r, offset+i+1, now, e.window))
	}
	return bills
}

func (e *BillsExtractor) rows(trs *goquery.Selection, cellSel, pageURL string) []BillRow {
	var out []BillRow
	trs.Each(func(_ int, tr *goquery.Selection) {
		cells := tr.ChildrenFiltered(cellSel)
		if cells.Length() < 4 {
			return
		}
		first := cells.Eq(0)
		title := normalize.CleanText(first.Text())
		if title == "" || strings.EqualFold(title, "Title") {
			return
		}

		url := normalize.Absolutize(e.base, first.Find("a[href]").First().AttrOr("href", ""))
		if url == "" {
			url = pageURL
		}
		out = append(out, BillRow{
			Title:      title,
			LaidBy:     normalize.CleanText(cells.Eq(1).Text()),
			LaidOn:     normalize.CleanText(cells.Eq(2).Text()),
			GazettedOn: normalize.CleanText(cells.Eq(3).Text()),
			URL:        url,
		})
	})
	return out
}

// NewBill classifies a row. seq is the 1-based position in the listing.
func NewBill(r BillRow, seq int, now time.Time, window time.Duration) types.Bill {
	laid, _ := normalize.ParseDateStrict(r.LaidOn)
	gazetted, _ := normalize.ParseDateStrict(r.GazettedOn)

	status := classify.InferStatus(laid, gazetted, now, window)
	category := classify.Categorize(r.Title)
	stage := classify.StageFor(status)

	return types.Bill{
		Title:               r.Title,
		LaidBy:              r.LaidBy,
		LaidOn:              normalize.ISO(r.LaidOn),
		GazettedOn:          normalize.ISO(r.GazettedOn),
		URL:                 r.URL,
		BillNumber:          fmt.Sprintf("BILL-%d", seq),
		Category:            category,
		Status:              status,
		Stage:               stage,
		Priority:            classify.InferPriority(r.Title),
		Description:         describeBill(r, category, stage),
		Tags:                classify.ExtractTags(r.Title),
		FormattedLaidOn:     normalize.DisplayDate(r.LaidOn),
		FormattedGazettedOn: normalize.DisplayDate(r.GazettedOn),
	}
}

func describeBill(r BillRow, category, stage string) string {
	by := r.LaidBy
	if by == "" {
		by = "the sponsoring Minister"
	}
	area := "general"
	if category != classify.DefaultCategory {
		area = strings.ToLower(category)
	}
	return fmt.Sprintf("The %s, a %s bill laid before Parliament by %s, is at the %s.", r.Title, area, by, strings.ToLower(stage))
}
