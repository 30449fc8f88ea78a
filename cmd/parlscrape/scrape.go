package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/IshaanNene/ParlScrape/internal/config"
	"github.com/IshaanNene/ParlScrape/internal/pipeline"
	"github.com/IshaanNene/ParlScrape/internal/scraper"
	"github.com/IshaanNene/ParlScrape/internal/storage"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

var (
	scrapePage     int
	scrapeCategory string
	scrapeLimit    int
	scrapeFilter   scraper.MemberFilter
	scrapeJSON     bool
	scrapeExport   bool
	scrapeFormat   string
	scrapeOutput   string
)

var scrapeTargets = []string{"home", "news", "bills", "members", "all"}

func scrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "scrape [home|news|bills|members|all]",
		Short:     "Scrape the parliament website once and print or export the records",
		Args:      cobra.ExactArgs(1),
		ValidArgs: scrapeTargets,
		RunE:      runScrape,
	}

	cmd.Flags().IntVar(&scrapePage, "page", 1, "bills page")
	cmd.Flags().StringVar(&scrapeCategory, "category", "", "news category filter")
	cmd.Flags().IntVar(&scrapeLimit, "limit", 0, "maximum news items (0 = configured default)")
	cmd.Flags().StringVar(&scrapeFilter.Party, "party", "", "member party filter")
	cmd.Flags().StringVar(&scrapeFilter.Region, "region", "", "member region filter")
	cmd.Flags().StringVar(&scrapeFilter.Committee, "committee", "", "member committee filter")
	cmd.Flags().StringVar(&scrapeFilter.Role, "role", "", "member role filter")
	cmd.Flags().StringVar(&scrapeFilter.Search, "search", "", "member name or constituency search")
	cmd.Flags().BoolVar(&scrapeJSON, "json", false, "print JSON instead of tables")
	cmd.Flags().BoolVar(&scrapeExport, "export", false, "write the records to the configured storage")
	cmd.Flags().StringVarP(&scrapeFormat, "format", "f", "", "export format: json, jsonl, csv, mongodb (overrides storage.type)")
	cmd.Flags().StringVarP(&scrapeOutput, "output", "o", "", "export directory (overrides storage.output_path)")

	return cmd
}

// snapshot collects the results of one scrape run.
type snapshot struct {
	Home    *scraper.Result[types.HomeLinks]   `json:"home,omitempty"`
	News    *scraper.Result[scraper.NewsList]  `json:"news,omitempty"`
	Bills   *scraper.Result[types.BillsPage]   `json:"bills,omitempty"`
	Members *scraper.Result[types.MembersPage] `json:"members,omitempty"`
}

func runScrape(cmd *cobra.Command, args []string) error {
	target := strings.ToLower(args[0])
	if !slices.Contains(scrapeTargets, target) {
		return fmt.Errorf("unknown target %q (want one of %s)", target, strings.Join(scrapeTargets, ", "))
	}

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if scrapeFormat != "" {
		cfg.Storage.Type = scrapeFormat
	}
	if scrapeOutput != "" {
		cfg.Storage.OutputPath = scrapeOutput
	}
	if scrapeExport {
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
	}

	svc, f, err := newService(cfg, logger)
	if err != nil {
		return err
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	snap, err := collect(ctx, svc, target)
	if err != nil {
		return err
	}

	warnFallbacks(logger, snap)

	out := cmd.OutOrStdout()
	if scrapeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(snap); err != nil {
			return err
		}
	} else {
		render(out, snap)
	}

	if scrapeExport {
		n, err := export(cfg, snap, logger)
		if err != nil {
			return err
		}
		svc.Metrics().SnapshotsStored.Add(int64(n))
		fmt.Fprintf(os.Stderr, "exported %d records to %s storage\n", n, cfg.Storage.Type)
	}

	svc.Metrics().LogSummary()
	return nil
}

func collect(ctx context.Context, svc *scraper.Service, target string) (*snapshot, error) {
	snap := &snapshot{}
	all := target == "all"

	if all || target == "home" {
		res, err := svc.Home(ctx)
		if err != nil {
			return nil, err
		}
		snap.Home = &res
	}
	if all || target == "news" {
		res, err := svc.News(ctx, scraper.NewsQuery{Category: scrapeCategory, Limit: scrapeLimit})
		if err != nil {
			return nil, err
		}
		snap.News = &res
	}
	if all || target == "bills" {
		res, err := svc.Bills(ctx, scrapePage)
		if err != nil {
			return nil, err
		}
		snap.Bills = &res
	}
	if all || target == "members" {
		res, err := svc.Members(ctx, scrapeFilter)
		if err != nil {
			return nil, err
		}
		snap.Members = &res
	}
	return snap, nil
}

func render(w io.Writer, snap *snapshot) {
	newTable := func(title string, header table.Row) table.Writer {
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetTitle(title)
		t.AppendHeader(header)
		t.SetStyle(table.StyleRounded)
		return t
	}

	if snap.Home != nil {
		t := newTable(sourceTitle("Home", snap.Home.Source, snap.Home.Reason), table.Row{"Section", "Title", "URL"})
		for _, l := range snap.Home.Data.News {
			t.AppendRow(table.Row{"News", l.Title, l.URL})
		}
		for _, l := range snap.Home.Data.PressReleases {
			t.AppendRow(table.Row{"Press", l.Title, l.URL})
		}
		t.Render()
	}
	if snap.News != nil {
		t := newTable(sourceTitle("News", snap.News.Source, snap.News.Reason), table.Row{"Date", "Category", "Title", "Tags"})
		for _, n := range snap.News.Data.News {
			t.AppendRow(table.Row{n.Date, n.Category, n.Title, strings.Join(n.Tags, ", ")})
		}
		t.AppendFooter(table.Row{"", "", fmt.Sprintf("%d of %d", len(snap.News.Data.News), snap.News.Data.Total), ""})
		t.Render()
	}
	if snap.Bills != nil {
		p := snap.Bills.Data
		t := newTable(sourceTitle("Bills", snap.Bills.Source, snap.Bills.Reason), table.Row{"No.", "Title", "Status", "Stage", "Priority", "Laid On"})
		for _, b := range p.Bills {
			t.AppendRow(table.Row{b.BillNumber, b.Title, b.Status, b.Stage, b.Priority, b.FormattedLaidOn})
		}
		t.AppendFooter(table.Row{"", fmt.Sprintf("page %d of %d", p.CurrentPage, p.TotalPages), "", "", "", ""})
		t.Render()
	}
	if snap.Members != nil {
		p := snap.Members.Data
		t := newTable(sourceTitle("Members", snap.Members.Source, snap.Members.Reason), table.Row{"Name", "Constituency", "Region", "Party", "Role"})
		for _, m := range p.Members {
			t.AppendRow(table.Row{m.Name, m.Constituency, m.Region, m.Party, m.Role})
		}
		t.AppendFooter(table.Row{fmt.Sprintf("%d members", p.TotalCount), "", "", "", ""})
		t.Render()
	}
}

func warnFallbacks(logger *slog.Logger, snap *snapshot) {
	if r := snap.Bills; r != nil && r.IsFallback() {
		logger.Warn("bills are sample data", "reason", r.Reason)
	}
	if r := snap.Members; r != nil && r.IsFallback() {
		logger.Warn("members are sample data", "reason", r.Reason)
	}
}

func sourceTitle(name string, src scraper.Source, reason string) string {
	if src == scraper.SourceFallback {
		return fmt.Sprintf("%s (sample data: %s)", name, reason)
	}
	return name
}

// export writes every record of snap to the configured storage and returns
// the number of records written.
func export(cfg *config.Config, snap *snapshot, logger *slog.Logger) (int, error) {
	var items []*types.Item
	add := func(batch []*types.Item, err error) error {
		if err != nil {
			return err
		}
		items = append(items, batch...)
		return nil
	}

	up := cfg.Upstream
	if r := snap.Home; r != nil {
		homeURL := up.URL(up.HomePath)
		if err := add(storage.Items("link", homeURL, string(r.Source), r.Data.News)); err != nil {
			return 0, err
		}
		if err := add(storage.Items("press_release", homeURL, string(r.Source), r.Data.PressReleases)); err != nil {
			return 0, err
		}
	}
	if r := snap.News; r != nil {
		if err := add(storage.Items("news", up.URL(up.NewsPath), string(r.Source), r.Data.News)); err != nil {
			return 0, err
		}
	}
	if r := snap.Bills; r != nil {
		if err := add(storage.Items("bill", up.URL(up.BillsPath), string(r.Source), r.Data.Bills)); err != nil {
			return 0, err
		}
	}
	if r := snap.Members; r != nil {
		if err := add(storage.Items("member", up.URL(up.MembersPath), string(r.Source), r.Data.Members)); err != nil {
			return 0, err
		}
	}

	items, err := pipeline.ForExport(logger).Run(items)
	if err != nil {
		return 0, err
	}

	store, err := storage.New(cfg.Storage, logger)
	if err != nil {
		return 0, fmt.Errorf("create storage: %w", err)
	}
	if err := store.Store(items); err != nil {
		store.Close()
		return 0, fmt.Errorf("store snapshot: %w", err)
	}
	if err := store.Close(); err != nil {
		return 0, fmt.Errorf("close storage: %w", err)
	}
	return len(items), nil
}
