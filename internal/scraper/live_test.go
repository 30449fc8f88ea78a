package scraper

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IshaanNene/ParlScrape/internal/config"
	"github.com/IshaanNene/ParlScrape/internal/fetcher"
)

// Run with PARLSCRAPE_LIVE=1 to scrape the real website.
func TestLiveUpstream(t *testing.T) {
	if os.Getenv("PARLSCRAPE_LIVE") != "1" {
		t.Skip("set PARLSCRAPE_LIVE=1 to run against the live website")
	}

	cfg := config.DefaultConfig()
	cfg.Fetcher.Timeout = 30 * time.Second
	f, err := fetcher.NewHTTPFetcher(cfg, testLogger)
	require.NoError(t, err)
	defer f.Close()

	svc := New(cfg, f, nil, testLogger)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	home, err := svc.Home(ctx)
	require.NoError(t, err)
	t.Logf("home: %d news, %d press releases", len(home.Data.News), len(home.Data.PressReleases))

	bills, err := svc.Bills(ctx, 1)
	require.NoError(t, err)
	t.Logf("bills: source=%s count=%d pages=%d reason=%q",
		bills.Source, len(bills.Data.Bills), bills.Data.TotalPages, bills.Reason)

	members, err := svc.Members(ctx, MemberFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, members.Data.Members)
	t.Logf("members: source=%s count=%d", members.Source, members.Data.TotalCount)
}
