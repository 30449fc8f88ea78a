package normalize

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const base = "https://www.parliament.gh"

func TestAbsolutize(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"#top", ""},
		{"javascript:void(0)", ""},
		{"mailto:clerk@parliament.gh", ""},
		{"tel:+233302000000", ""},
		{"data:image/png;base64,AAAA", ""},
		{"//cdn.parliament.gh/img/a.jpg", "https://cdn.parliament.gh/img/a.jpg"},
		{"https://www.parliament.gh/news?id=1", "https://www.parliament.gh/news?id=1"},
		{"/news?id=3", "https://www.parliament.gh/news?id=3"},
		{"news?id=3", "https://www.parliament.gh/news?id=3"},
		{"mps/profile.php?mp=12", "https://www.parliament.gh/mps/profile.php?mp=12"},
		{"/docs/bill.pdf#page=2", "https://www.parliament.gh/docs/bill.pdf"},
		{"ftp://files.parliament.gh/x", ""},
		{"http://", ""},
		{"%zz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			assert.Equal(t, tt.want, Absolutize(base, tt.href))
		})
	}
}

func TestAbsolutizeNeverPanics(t *testing.T) {
	inputs := []string{"\x00", "::::", "http://[::1", "/\\//", "?", "../../..", "https://%", string([]byte{0xff, 0xfe})}
	for _, in := range inputs {
		assert.NotPanics(t, func() { _ = Absolutize(base, in) })
		assert.NotPanics(t, func() { _ = Absolutize("not a base", in) })
	}
}

func TestParseDateDayMonthYear(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-06-20", ParseDate("20-06-2025", now))
	assert.Equal(t, "2024-03-05", ParseDate("5-3-2024", now))
	assert.Equal(t, "2023-11-01", ParseDate("01/11/2023", now))

	// every DD-MM-YYYY input maps to the same fields, never swapped
	for d := 1; d <= 28; d++ {
		for m := 1; m <= 12; m++ {
			raw := fmt.Sprintf("%02d-%02d-2025", d, m)
			assert.Equal(t, fmt.Sprintf("2025-%02d-%02d", m, d), ParseDate(raw, now), raw)
		}
	}
}

func TestParseDateGenericAndFallback(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "2025-06-20", ParseDate("Friday, 20th June 2025", now))
	assert.Equal(t, "2025-06-20", ParseDate("June 20, 2025", now))
	assert.Equal(t, "2025-06-20", ParseDate("2025-06-20", now))
	assert.Equal(t, "2026-10-15", ParseDate("sometime last week", now))
	assert.Equal(t, "2026-10-15", ParseDate("", now))
}

func TestParseDateStrict(t *testing.T) {
	_, ok := ParseDateStrict("")
	assert.False(t, ok)

	_, ok = ParseDateStrict("31-02-2025")
	assert.False(t, ok)

	got, ok := ParseDateStrict("07-08-2024")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2024, 8, 7, 0, 0, 0, 0, time.UTC), got)
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "20 June 2025", DisplayDate("20-06-2025"))
	assert.Equal(t, "", DisplayDate("  "))
	assert.Equal(t, "Pending", DisplayDate("Pending"))
	assert.Equal(t, "2025-06-20", ISO(" 20-06-2025 "))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Hon. Kwame Asante", CleanText("  Hon. Kwame \n\t Asante "))
}

func TestOrigin(t *testing.T) {
	assert.Equal(t, "https://www.parliament.gh", Origin("https://www.parliament.gh/mps?page=2"))
	assert.Equal(t, "", Origin("/relative"))
}
