package observability

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// Metrics tracks scrape and API counters.
type Metrics struct {
	// Upstream fetches
	FetchesTotal    atomic.Int64
	FetchesFailed   atomic.Int64
	BytesDownloaded atomic.Int64

	// Extracted records by kind
	NewsItems    atomic.Int64
	HomeLinks    atomic.Int64
	BillsScraped atomic.Int64
	MembersFound atomic.Int64

	// Fallbacks substituted for live data
	BillsFallbacks   atomic.Int64
	MembersFallbacks atomic.Int64

	// Member pages skipped after a failed fetch
	PagesSkipped atomic.Int64

	// API
	APIRequests     atomic.Int64
	APIErrors       atomic.Int64
	SnapshotsStored atomic.Int64

	logger *slog.Logger
}

// NewMetrics creates a new Metrics instance.
func NewMetrics(logger *slog.Logger) *Metrics {
	return &Metrics{
		logger: logger.With("component", "metrics"),
	}
}

// ServeHTTP serves metrics in Prometheus text exposition format.
func (m *Metrics) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")

	metrics := []struct {
		name  string
		help  string
		value int64
	}{
		{"parlscrape_fetches_total", "Total upstream page fetches", m.FetchesTotal.Load()},
		{"parlscrape_fetches_failed_total", "Total failed upstream page fetches", m.FetchesFailed.Load()},
		{"parlscrape_bytes_downloaded_total", "Total bytes downloaded from upstream", m.BytesDownloaded.Load()},
		{"parlscrape_news_items_total", "Total news items extracted", m.NewsItems.Load()},
		{"parlscrape_home_links_total", "Total home page links extracted", m.HomeLinks.Load()},
		{"parlscrape_bills_total", "Total bills extracted", m.BillsScraped.Load()},
		{"parlscrape_members_total", "Total members extracted", m.MembersFound.Load()},
		{"parlscrape_bills_fallbacks_total", "Bills responses served from sample data", m.BillsFallbacks.Load()},
		{"parlscrape_members_fallbacks_total", "Members responses served from sample data", m.MembersFallbacks.Load()},
		{"parlscrape_member_pages_skipped_total", "Member listing pages skipped after fetch errors", m.PagesSkipped.Load()},
		{"parlscrape_api_requests_total", "Total API requests", m.APIRequests.Load()},
		{"parlscrape_api_errors_total", "Total API error responses", m.APIErrors.Load()},
		{"parlscrape_snapshots_stored_total", "Total snapshot items exported", m.SnapshotsStored.Load()},
	}

	for _, metric := range metrics {
		fmt.Fprintf(w, "# HELP %s %s\n", metric.name, metric.help)
		fmt.Fprintf(w, "# TYPE %s counter\n", metric.name)
		fmt.Fprintf(w, "%s %d\n", metric.name, metric.value)
	}
}

// Snapshot returns all metrics as a map.
func (m *Metrics) Snapshot() map[string]int64 {
	return map[string]int64{
		"fetches_total":        m.FetchesTotal.Load(),
		"fetches_failed":       m.FetchesFailed.Load(),
		"bytes_downloaded":     m.BytesDownloaded.Load(),
		"news_items":           m.NewsItems.Load(),
		"home_links":           m.HomeLinks.Load(),
		"bills":                m.BillsScraped.Load(),
		"members":              m.MembersFound.Load(),
		"bills_fallbacks":      m.BillsFallbacks.Load(),
		"members_fallbacks":    m.MembersFallbacks.Load(),
		"member_pages_skipped": m.PagesSkipped.Load(),
		"api_requests":         m.APIRequests.Load(),
		"api_errors":           m.APIErrors.Load(),
		"snapshots_stored":     m.SnapshotsStored.Load(),
	}
}

// LogSummary writes the current counters at info level.
func (m *Metrics) LogSummary() {
	args := make([]any, 0, 26)
	for k, v := range m.Snapshot() {
		args = append(args, k, v)
	}
	m.logger.Info("metrics summary", args...)
}
