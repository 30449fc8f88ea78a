package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/IshaanNene/ParlScrape/internal/types"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		// "insurance" is also a Finance keyword; Health is declared first
		{"National Health Insurance Amendment Bill", "Health"},
		{"Income Tax (Amendment) Bill, 2025", "Finance"},
		{"Petroleum Revenue Management Bill", "Finance"},
		{"Ghana Cocoa Board Bill", "Agriculture"},
		{"Criminal Offences (Amendment) Bill", "Justice"},
		{"Mysterious Matters Bill", DefaultCategory},
		{"", DefaultCategory},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.title))
		})
	}
}

func TestCategorizeCaseInsensitive(t *testing.T) {
	assert.Equal(t, "Education", Categorize("FREE SENIOR HIGH SCHOOL BILL"))
}

func TestNewsTaxonomy(t *testing.T) {
	assert.Equal(t, "Speaker", News.Categorize("Speaker Receives Delegation from Kenya"))
	assert.Equal(t, "Committees", News.Categorize("Finance Committee Meets on Budget"))
	assert.Equal(t, "International", News.Categorize("ECOWAS Parliamentarians Visit Accra"))
	assert.Equal(t, DefaultCategory, News.Categorize("A quiet Tuesday"))
	assert.True(t, News.Has("Plenary"))
	assert.True(t, News.Has(DefaultCategory))
	assert.False(t, News.Has("Sports"))
}

func TestExtractTags(t *testing.T) {
	tags := ExtractTags("Emergency Health Insurance Levy Amendment Bill to Repeal Tax on Loan Revenue")
	assert.Len(t, tags, 5)
	assert.Equal(t, []string{"Amendment", "Repeal", "Emergency", "Health", "Insurance"}, tags)

	assert.Empty(t, ExtractTags("Nothing relevant"))
	assert.Equal(t, []string{"Local Government"}, ExtractTags("Local Government Bill"))

	newsTags := News.Tags("Speaker, Clerk and Committee chairs brief the Minister on the Budget", 3)
	assert.Len(t, newsTags, 3)
	assert.Equal(t, []string{"Speaker", "Committee", "Budget"}, newsTags)
}

func TestInferStatus(t *testing.T) {
	now := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	window := DefaultInProgressWindow
	var zero time.Time

	assert.Equal(t, types.StatusPassed, InferStatus(now.AddDate(-2, 0, 0), now.AddDate(0, 0, 10), now, window))
	assert.Equal(t, types.StatusInProgress, InferStatus(now, zero, now, window))
	assert.Equal(t, types.StatusInProgress, InferStatus(now.AddDate(0, -2, 0), now.AddDate(0, -1, 0), now, window))
	assert.Equal(t, types.StatusPassed, InferStatus(now.AddDate(-1, 0, 0), now.AddDate(0, -8, 0), now, window))
	assert.Equal(t, types.StatusIntroduced, InferStatus(now.AddDate(-1, 0, 0), zero, now, window))
	assert.Equal(t, types.StatusIntroduced, InferStatus(zero, zero, now, window))
	// non-positive window falls back to the default
	assert.Equal(t, types.StatusInProgress, InferStatus(now.AddDate(0, -1, 0), zero, now, 0))
}

func TestStageFor(t *testing.T) {
	assert.Equal(t, "First Reading", StageFor(types.StatusIntroduced))
	assert.Equal(t, "Committee Stage", StageFor(types.StatusInProgress))
	assert.Equal(t, "Passed", StageFor(types.StatusPassed))
}

func TestInferPriority(t *testing.T) {
	assert.Equal(t, types.PriorityHigh, InferPriority("Emergency Powers Bill"))
	assert.Equal(t, types.PriorityHigh, InferPriority("Urgent Amendment Bill"))
	assert.Equal(t, types.PriorityMedium, InferPriority("Companies (Amendment) Bill"))
	assert.Equal(t, types.PriorityMedium, InferPriority("Repeal of Old Ordinances Bill"))
	assert.Equal(t, types.PriorityNormal, InferPriority("Fisheries Bill"))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Local Government", TitleCase("local government"))
	assert.Equal(t, "", TitleCase("   "))
}
