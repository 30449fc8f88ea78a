package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IshaanNene/ParlScrape/internal/config"
	"github.com/IshaanNene/ParlScrape/internal/scraper"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

func testSnapshot() *snapshot {
	bills := scraper.Result[types.BillsPage]{
		Data: types.BillsPage{
			Bills:       []types.Bill{{Title: "Fisheries Bill", BillNumber: "BILL-1", Status: types.StatusPassed}},
			CurrentPage: 1,
			TotalPages:  1,
			TotalBills:  1,
		},
		Source: scraper.SourceFallback,
		Reason: "bills page 1 unavailable",
	}
	members := scraper.Result[types.MembersPage]{
		Data: types.MembersPage{
			Members:    []types.ParliamentMember{{Name: "Ama Mensah", Constituency: "Tamale Central", Party: "NDC"}},
			TotalCount: 1,
		},
		Source: scraper.SourceLive,
	}
	return &snapshot{Bills: &bills, Members: &members}
}

func TestExportJSON(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Storage.Type = "json"
	cfg.Storage.OutputPath = t.TempDir()

	n, err := export(cfg, testSnapshot(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	raw, err := os.ReadFile(filepath.Join(cfg.Storage.OutputPath, "snapshot.json"))
	require.NoError(t, err)
	var docs []map[string]any
	require.NoError(t, json.Unmarshal(raw, &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "bill", docs[0]["_kind"])
	assert.Equal(t, "fallback", docs[0]["_source"])
	assert.Equal(t, "https://www.parliament.gh/bills", docs[0]["_url"])
	assert.Equal(t, "member", docs[1]["_kind"])
}

func TestRenderMarksSampleData(t *testing.T) {
	var buf bytes.Buffer
	render(&buf, testSnapshot())

	out := buf.String()
	assert.Contains(t, out, "Bills (sample data: bills page 1 unavailable)")
	assert.Contains(t, out, "Fisheries Bill")
	assert.Contains(t, out, "Ama Mensah")
}
