package scraper

import (
	"context"
	"fmt"

	"github.com/IshaanNene/ParlScrape/internal/parser"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

// Bills scrapes one page of the bills listing. Fetch and parse failures, or
// an empty first page, yield the sample bills. The error is non-nil only
// when ctx ends.
func (s *Service) Bills(ctx context.Context, page int) (Result[types.BillsPage], error) {
	page = max(page, 1)
	now := s.now()
	pageURL := withPage(s.cfg.Upstream.URL(s.cfg.Upstream.BillsPath), page)

	doc, err := s.document(ctx, "bills", pageURL)
	if err != nil {
		if ctx.Err() != nil {
			return Result[types.BillsPage]{}, ctx.Err()
		}
		return s.billsFallback(fmt.Sprintf("bills page %d unavailable: %v", page, err)), nil
	}

	bills := s.bills.Extract(doc, pageURL, page, now)
	if len(bills) == 0 && page == 1 {
		return s.billsFallback("no bills found on the listing page"), nil
	}

	perPage := s.cfg.Scraper.BillsPerPage
	totalPages := parser.MaxPageParam(doc)
	if totalPages == 0 {
		totalPages = parser.EstimatePages(len(bills), perPage)
	}
	totalPages = max(totalPages, page)

	s.metrics.BillsScraped.Add(int64(len(bills)))
	s.logger.Info("bills scraped", "page", page, "count", len(bills), "total_pages", totalPages)

	return live(billsPage(bills, page, totalPages, perPage)), nil
}

func (s *Service) billsFallback(reason string) Result[types.BillsPage] {
	bills := s.bills.Build(sampleBillRows(s.cfg.Upstream.URL(s.cfg.Upstream.BillsPath), s.now()), 1, s.now())
	s.metrics.BillsFallbacks.Add(1)
	s.logger.Warn("serving sample bills", "reason", reason, "count", len(bills))
	return fallback(billsPage(bills, 1, 1, len(bills)), reason)
}

// billsPage fills the paging fields. TotalBills is exact on the last page
// and an upper bound otherwise.
func billsPage(bills []types.Bill, page, totalPages, perPage int) types.BillsPage {
	total := totalPages * perPage
	if page == totalPages {
		total = (totalPages-1)*perPage + len(bills)
	}
	return types.BillsPage{
		Bills:       bills,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalBills:  total,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
