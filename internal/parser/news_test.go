package parser

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IshaanNene/ParlScrape/internal/classify"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

var fixedNow = func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }

func newNewsExtractor() *NewsExtractor {
	return NewNewsExtractor(testBase+"/news", 15, fixedNow, testLogger)
}

func TestNewsWeekdayBold(t *testing.T) {
	doc := makeDoc(t, `
		<div class="listing">
			<div class="item">
				<img src="/img/a.jpg" alt="Speaker at the podium">
				<p>Tuesday, 20th June 2025 <strong><a href="/news/speaker-kenya">Speaker Receives Delegation from Kenya</a></strong> The Speaker welcomed a delegation.</p>
			</div>
			<div class="item">
				<p>Wednesday, 21 June 2025 <b>Finance Committee Meets on Budget</b> Members considered estimates.</p>
			</div>
			<div class="item">
				<p>Tuesday, 20th June 2025 <strong>Speaker Receives Delegation from Kenya</strong> A repeat.</p>
			</div>
		</div>`)

	got := newNewsExtractor().Extract(doc)

	want := []types.NewsItem{
		{
			Title:       "Speaker Receives Delegation from Kenya",
			URL:         "https://www.parliament.gh/news/speaker-kenya",
			Date:        "2025-06-20",
			Description: "The Speaker welcomed a delegation.",
			Category:    "Speaker",
			Tags:        []string{"Speaker", "Delegation"},
			ImageURL:    "https://www.parliament.gh/img/a.jpg",
			ImageAlt:    "Speaker at the podium",
		},
		{
			Title:       "Finance Committee Meets on Budget",
			URL:         "https://www.parliament.gh/news",
			Date:        "2025-06-21",
			Description: "Members considered estimates.",
			Category:    "Committees",
			Tags:        []string{"Committee", "Budget"},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("news mismatch (-want +got):\n%s", diff)
	}
}

func TestNewsCapAndCategories(t *testing.T) {
	var b strings.Builder
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "<p>Monday, %d March 2025 <strong>Plenary sitting report number %d</strong> text</p>", i, i)
	}

	got := newNewsExtractor().Extract(makeDoc(t, b.String()))

	require.Len(t, got, 15)
	for _, n := range got {
		assert.True(t, classify.News.Has(n.Category), n.Category)
		assert.LessOrEqual(t, len(n.Tags), 3)
		assert.NotEmpty(t, n.Title)
		assert.NotEmpty(t, n.URL)
	}
	assert.Equal(t, "2025-03-01", got[0].Date)
	assert.Equal(t, "Plenary", got[0].Category)
}

func TestNewsBoldNearDate(t *testing.T) {
	doc := makeDoc(t, `<div class="post"><span>12/03/2025</span> <b>Parliament Approves Loan Agreement</b> for roads.</div>`)

	got := newNewsExtractor().Extract(doc)

	require.Len(t, got, 1)
	assert.Equal(t, "Parliament Approves Loan Agreement", got[0].Title)
	assert.Equal(t, "2025-03-12", got[0].Date)
	assert.Equal(t, "Budget & Finance", got[0].Category)
	assert.Equal(t, "for roads.", got[0].Description)
}

func TestNewsLeadingDate(t *testing.T) {
	doc := makeDoc(t, `<p>5 March 2025 - Members of Parliament sworn in at the Chamber. The ceremony was chaired by the Clerk.</p>`)

	got := newNewsExtractor().Extract(doc)

	require.Len(t, got, 1)
	assert.Equal(t, "Members of Parliament sworn in at the Chamber", got[0].Title)
	assert.Equal(t, "2025-03-05", got[0].Date)
	assert.Equal(t, "The ceremony was chaired by the Clerk.", got[0].Description)
}

func TestNewsNoMatches(t *testing.T) {
	got := newNewsExtractor().Extract(makeDoc(t, `<p>No dated content here at all.</p>`))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
