package parser

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IshaanNene/ParlScrape/internal/classify"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

const billsPageURL = testBase + "/bills?page=1"

func newBillsExtractor() *BillsExtractor {
	return NewBillsExtractor(testBase, 20, classify.DefaultInProgressWindow, testLogger)
}

func TestBillsExtractorRowLaidToday(t *testing.T) {
	now := time.Now()
	doc := makeDoc(t, fmt.Sprintf(`
		<table>
			<tr><th>Title</th><th>Laid By</th><th>Laid On</th><th>Gazetted On</th></tr>
			<tr><td>Title</td><td>X</td><td>01-01-2020</td><td></td></tr>
			<tr>
				<td><a href="/bills/health-insurance">National Health Insurance Amendment Bill</a></td>
				<td>Minister for Health</td>
				<td>%s</td>
				<td></td>
			</tr>
			<tr><td>Short row</td><td>x</td></tr>
		</table>`, now.Format("02-01-2006")))

	bills := newBillsExtractor().Extract(doc, billsPageURL, 1, now)

	require.Len(t, bills, 1)
	b := bills[0]
	assert.Equal(t, "National Health Insurance Amendment Bill", b.Title)
	assert.Equal(t, "https://www.parliament.gh/bills/health-insurance", b.URL)
	assert.Equal(t, "Minister for Health", b.LaidBy)
	assert.Equal(t, now.Format("2006-01-02"), b.LaidOn)
	assert.Empty(t, b.GazettedOn)
	assert.Equal(t, types.StatusInProgress, b.Status)
	assert.Equal(t, "Committee Stage", b.Stage)
	assert.Equal(t, "Health", b.Category)
	assert.Equal(t, types.PriorityMedium, b.Priority)
	assert.Equal(t, "BILL-1", b.BillNumber)
	assert.Equal(t, now.Format("2 January 2006"), b.FormattedLaidOn)
	assert.Contains(t, b.Description, "National Health Insurance Amendment Bill")
	assert.LessOrEqual(t, len(b.Tags), 5)
}

func TestBillsExtractorDedupAndCap(t *testing.T) {
	var rows strings.Builder
	rows.WriteString(`<tr><td>Fisheries Bill</td><td>Minister</td><td>01-02-2019</td><td>05-06-2019</td></tr>`)
	for i := 1; i <= 25; i++ {
		fmt.Fprintf(&rows, `<tr><td>Bill number %d</td><td>Minister</td><td>01-02-2019</td><td></td></tr>`, i)
	}
	rows.WriteString(`<tr><td>Fisheries Bill</td><td>Minister</td><td>01-02-2019</td><td>05-06-2019</td></tr>`)
	doc := makeDoc(t, "<table>"+rows.String()+"</table>")

	bills := newBillsExtractor().Extract(doc, billsPageURL, 2, time.Now())

	require.Len(t, bills, 20)
	assert.Equal(t, "Fisheries Bill", bills[0].Title)
	assert.Equal(t, billsPageURL, bills[0].URL)
	assert.Equal(t, types.StatusPassed, bills[0].Status)
	assert.Equal(t, "2019-06-05", bills[0].GazettedOn)
	assert.Equal(t, "BILL-21", bills[0].BillNumber)
	assert.Equal(t, "BILL-40", bills[19].BillNumber)

	seen := map[string]bool{}
	for _, b := range bills {
		assert.False(t, seen[b.Title], "duplicate %q", b.Title)
		seen[b.Title] = true
	}
}

func TestBillsExtractorARIAGrid(t *testing.T) {
	doc := makeDoc(t, `
		<div role="grid">
			<div role="row"><span role="cell">Energy Sector Levy Bill</span><span role="cell">Minister for Energy</span><span role="cell">10-03-2015</span><span role="cell"></span></div>
		</div>`)

	bills := newBillsExtractor().Extract(doc, billsPageURL, 1, time.Now())

	require.Len(t, bills, 1)
	assert.Equal(t, "Finance", bills[0].Category)
	assert.Equal(t, types.StatusIntroduced, bills[0].Status)
	assert.Equal(t, "First Reading", bills[0].Stage)
}

func TestNewBillUnparsableDates(t *testing.T) {
	b := NewBill(BillRow{Title: "Emergency Powers Bill", LaidOn: "pending", URL: billsPageURL}, 3, time.Now(), 0)
	assert.Equal(t, "pending", b.LaidOn)
	assert.Equal(t, "pending", b.FormattedLaidOn)
	assert.Empty(t, b.FormattedGazettedOn)
	assert.Equal(t, types.StatusIntroduced, b.Status)
	assert.Equal(t, types.PriorityHigh, b.Priority)
	assert.Equal(t, "BILL-3", b.BillNumber)
}

func TestMaxPageParam(t *testing.T) {
	doc := makeDoc(t, `<a href="/bills?page=2">2</a><a href="/bills?page=7">7</a><a href="/bills?sort=asc&page=3">3</a><a href="/other">x</a>`)
	assert.Equal(t, 7, MaxPageParam(doc))
	assert.Equal(t, 0, MaxPageParam(makeDoc(t, `<a href="/bills">all</a>`)))
}

func TestEstimatePages(t *testing.T) {
	assert.Equal(t, 1, EstimatePages(0, 20))
	assert.Equal(t, 1, EstimatePages(20, 20))
	assert.Equal(t, 2, EstimatePages(21, 20))
	assert.Equal(t, 1, EstimatePages(5, 0))
}
