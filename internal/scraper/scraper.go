// Package scraper fetches the parliament website and turns its pages into
// typed records. Bills and members degrade to sample data when the upstream
// cannot be scraped; every result says which it is.
package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/IshaanNene/ParlScrape/internal/config"
	"github.com/IshaanNene/ParlScrape/internal/fetcher"
	"github.com/IshaanNene/ParlScrape/internal/observability"
	"github.com/IshaanNene/ParlScrape/internal/parser"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

// Source tells whether a result was scraped or substituted.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// Result is scraped data tagged with its provenance. Reason explains a
// fallback and is empty for live data.
type Result[T any] struct {
	Data   T      `json:"data"`
	Source Source `json:"source"`
	Reason string `json:"reason,omitempty"`
}

// IsFallback reports whether Data is sample data.
func (r Result[T]) IsFallback() bool { return r.Source == SourceFallback }

func live[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: SourceLive}
}

func fallback[T any](data T, reason string) Result[T] {
	return Result[T]{Data: data, Source: SourceFallback, Reason: reason}
}

// Service runs the extractors against the upstream site.
type Service struct {
	cfg     *config.Config
	fetcher fetcher.Fetcher
	metrics *observability.Metrics
	pacer   *fetcher.Pacer

	home    *parser.HomeExtractor
	news    *parser.NewsExtractor
	bills   *parser.BillsExtractor
	members *parser.MembersExtractor

	now func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand

	logger *slog.Logger
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now for date inference.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRand sets the source of generated member profile fields.
func WithRand(r *rand.Rand) Option {
	return func(s *Service) { s.rng = r }
}

// New creates a Service. A nil metrics gets a private instance.
func New(cfg *config.Config, f fetcher.Fetcher, metrics *observability.Metrics, logger *slog.Logger, opts ...Option) *Service {
	if metrics == nil {
		metrics = observability.NewMetrics(logger)
	}
	s := &Service{
		cfg:     cfg,
		fetcher: f,
		metrics: metrics,
		pacer:   fetcher.NewPacer(cfg.Scraper.PageDelay),
		now:     time.Now,
		logger:  logger.With("component", "scraper"),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		seed := uint64(cfg.Scraper.RandomSeed)
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		s.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	base := cfg.Upstream.BaseURL
	s.home = parser.NewHomeExtractor(base, logger)
	s.news = parser.NewNewsExtractor(base, cfg.Scraper.MaxNewsItems, s.now, logger)
	s.bills = parser.NewBillsExtractor(base, cfg.Scraper.BillsPerPage, cfg.Scraper.InProgressWindow, logger)
	s.members = parser.NewMembersExtractor(base, logger)
	return s
}

// Metrics returns the counters the service updates.
func (s *Service) Metrics() *observability.Metrics { return s.metrics }

// document fetches rawURL and parses it.
func (s *Service) document(ctx context.Context, tag, rawURL string) (*goquery.Document, error) {
	req, err := types.NewRequest(rawURL)
	if err != nil {
		return nil, err
	}
	req.Tag = tag

	s.metrics.FetchesTotal.Add(1)
	resp, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		s.metrics.FetchesFailed.Add(1)
		return nil, err
	}
	s.metrics.BytesDownloaded.Add(int64(len(resp.Body)))
	if !resp.IsSuccess() {
		s.metrics.FetchesFailed.Add(1)
		return nil, &types.FetchError{URL: rawURL, StatusCode: resp.StatusCode, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	doc, err := resp.Document()
	if err != nil {
		return nil, &types.ParseError{URL: rawURL, Extractor: tag, Err: err}
	}
	s.logger.Debug("page fetched", "tag", tag, "url", rawURL,
		"status", resp.StatusCode, "bytes", len(resp.Body), "duration", resp.FetchDuration)
	return doc, nil
}

// withPage sets the page query parameter on rawURL.
func withPage(rawURL string, page int) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *Service) intn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.IntN(n)
}
