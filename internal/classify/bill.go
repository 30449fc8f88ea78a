package classify

import (
	"strings"
	"time"

	"github.com/IshaanNene/ParlScrape/internal/types"
)

// DefaultInProgressWindow is how long after being laid a bill counts as in
// progress when no window is configured.
const DefaultInProgressWindow = 183 * 24 * time.Hour

// InferStatus derives a bill's status from its laid and gazette dates. A zero
// time means the date is unknown. Checks run in order: future gazette, recent
// laying, past gazette.
func InferStatus(laidOn, gazettedOn, now time.Time, window time.Duration) types.BillStatus {
	if window <= 0 {
		window = DefaultInProgressWindow
	}
	cutoff := now.Add(-window)

	switch {
	case !gazettedOn.IsZero() && gazettedOn.After(now):
		return types.StatusPassed
	case !laidOn.IsZero() && laidOn.After(cutoff):
		return types.StatusInProgress
	case !gazettedOn.IsZero() && !gazettedOn.After(now):
		return types.StatusPassed
	default:
		return types.StatusIntroduced
	}
}

// StageFor maps a status to its display stage.
func StageFor(status types.BillStatus) string {
	switch status {
	case types.StatusPassed:
		return "Passed"
	case types.StatusInProgress:
		return "Committee Stage"
	default:
		return "First Reading"
	}
}

// InferPriority flags emergency legislation high and amending/repealing
// legislation medium.
func InferPriority(title string) types.BillPriority {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "emergency") || strings.Contains(lower, "urgent"):
		return types.PriorityHigh
	case strings.Contains(lower, "amendment") || strings.Contains(lower, "repeal"):
		return types.PriorityMedium
	default:
		return types.PriorityNormal
	}
}
