package scraper

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/IshaanNene/ParlScrape/internal/types"
)

// Home scrapes the latest news and press release links from the home page.
func (s *Service) Home(ctx context.Context) (Result[types.HomeLinks], error) {
	pageURL := s.cfg.Upstream.URL(s.cfg.Upstream.HomePath)
	doc, err := s.document(ctx, "home", pageURL)
	if err != nil {
		return Result[types.HomeLinks]{}, fmt.Errorf("scrape home: %w", err)
	}

	links := s.home.Extract(doc)
	s.metrics.HomeLinks.Add(int64(len(links.News) + len(links.PressReleases)))
	s.logger.Info("home scraped", "news", len(links.News), "press_releases", len(links.PressReleases))
	return live(links), nil
}

// NewsQuery filters the news listing. A zero Limit means the configured
// default.
type NewsQuery struct {
	Category string
	Limit    int
}

// NewsList is a filtered news listing. Categories are the distinct
// categories of the whole listing and Total counts matches before Limit.
type NewsList struct {
	News       []types.NewsItem `json:"news"`
	Categories []string         `json:"categories"`
	Total      int              `json:"total"`
}

// News scrapes the news listing.
func (s *Service) News(ctx context.Context, q NewsQuery) (Result[NewsList], error) {
	pageURL := s.cfg.Upstream.URL(s.cfg.Upstream.NewsPath)
	doc, err := s.document(ctx, "news", pageURL)
	if err != nil {
		return Result[NewsList]{}, fmt.Errorf("scrape news: %w", err)
	}

	items := s.news.Extract(doc)
	s.metrics.NewsItems.Add(int64(len(items)))

	list := NewsList{
		News:       filterNews(items, q.Category),
		Categories: newsCategories(items),
	}
	list.Total = len(list.News)

	limit := q.Limit
	if limit <= 0 {
		limit = s.cfg.Scraper.DefaultNewsLimit
	}
	if limit > 0 && len(list.News) > limit {
		list.News = list.News[:limit]
	}

	s.logger.Info("news scraped", "extracted", len(items), "matched", list.Total,
		"returned", len(list.News), "category", q.Category)
	return live(list), nil
}

func filterNews(items []types.NewsItem, category string) []types.NewsItem {
	if category == "" || strings.EqualFold(category, "all") {
		return items
	}
	out := make([]types.NewsItem, 0, len(items))
	for _, it := range items {
		if strings.EqualFold(it.Category, category) {
			out = append(out, it)
		}
	}
	return out
}

func newsCategories(items []types.NewsItem) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, it := range items {
		if _, ok := seen[it.Category]; ok {
			continue
		}
		seen[it.Category] = struct{}{}
		out = append(out, it.Category)
	}
	sort.Strings(out)
	return out
}
