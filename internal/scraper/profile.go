package scraper

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/IshaanNene/ParlScrape/internal/normalize"
	"github.com/IshaanNene/ParlScrape/internal/reference"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

var activityKinds = []struct {
	kind   string
	format string
}{
	{"Question", "Asked the Minister a question on %s"},
	{"Statement", "Made a statement on %s"},
	{"Committee", "Attended a sitting of the %s"},
	{"Constituency", "Visited communities in %s"},
}

var statementTopics = []string{
	"road infrastructure", "youth employment", "cocoa prices", "school feeding",
	"health insurance claims", "galamsey", "rural electrification", "water supply",
}

// enrich fills the derived and generated member fields. Generated numbers
// are display filler.
func (s *Service) enrich(m types.ParliamentMember) types.ParliamentMember {
	m.ID = memberID(m.Name, m.Constituency)
	m.Region = reference.RegionFor(m.Constituency)

	party := reference.Party(m.Party)
	m.Party = party.Code
	m.PartyFullName = party.FullName
	m.PartyColor = party.Color

	if m.Role == "" {
		m.Role = s.role()
	}
	if len(m.Committees) == 0 {
		m.Committees = s.committees()
	}

	m.Performance = types.MemberPerformance{
		AttendanceRate:     s.rate(70, 99),
		BillsSponsored:     s.intn(8),
		MotionsMoved:       s.intn(15),
		QuestionsAsked:     5 + s.intn(60),
		StatementsMade:     2 + s.intn(30),
		CommitteeMeetings:  10 + s.intn(50),
		ConstituencyVisits: 4 + s.intn(40),
	}

	total := 120 + s.intn(80)
	absent := s.intn(total / 10)
	abstain := s.intn(total / 20)
	no := s.intn((total - absent - abstain) / 3)
	m.VotingRecord = types.VotingRecord{
		TotalVotes: total,
		Yes:        total - absent - abstain - no,
		No:         no,
		Abstain:    abstain,
		Absent:     absent,
		PartyLine:  s.rate(80, 100),
	}

	m.PopularityScore = 40 + s.intn(61)
	m.InfluenceScore = 30 + s.intn(71)

	handle := handleFor(m.Name)
	m.Social = types.SocialHandles{
		Twitter:  "@" + handle,
		Facebook: "facebook.com/" + handle,
		Email:    handle + "@parliament.gh",
	}
	m.RecentActivity = s.activity(m)
	return m
}

// memberID is stable across scrapes of the same member.
func memberID(name, constituency string) string {
	key := strings.ToLower(name + "|" + constituency)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

func (s *Service) role() string {
	switch n := s.intn(20); {
	case n == 0:
		return reference.RoleCommitteeChair
	case n == 1:
		return reference.RoleRankingMember
	default:
		return reference.RoleMember
	}
}

func (s *Service) committees() []string {
	n := 1 + s.intn(3)
	picked := make([]string, 0, n)
	seen := make(map[int]bool, n)
	for len(picked) < n {
		i := s.intn(len(reference.Committees))
		if seen[i] {
			continue
		}
		seen[i] = true
		picked = append(picked, reference.Committees[i])
	}
	return picked
}

func (s *Service) activity(m types.ParliamentMember) []types.Activity {
	now := s.now()
	out := make([]types.Activity, 0, 3)
	for i := range 3 {
		k := activityKinds[s.intn(len(activityKinds))]
		var subject string
		switch k.kind {
		case "Committee":
			subject = m.Committees[s.intn(len(m.Committees))]
		case "Constituency":
			subject = m.Constituency
		default:
			subject = statementTopics[s.intn(len(statementTopics))]
		}
		date := now.AddDate(0, 0, -(i*7 + s.intn(7)))
		out = append(out, types.Activity{
			Date:        date.Format(normalize.ISODate),
			Type:        k.kind,
			Description: fmt.Sprintf(k.format, subject),
		})
	}
	return out
}

// rate returns a percentage in [lo, hi) with one decimal.
func (s *Service) rate(lo, hi int) float64 {
	v := float64(lo) + float64(s.intn((hi-lo)*10))/10
	return math.Round(v*10) / 10
}

func handleFor(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteByte('.')
		}
		for _, r := range f {
			if r >= 'a' && r <= 'z' {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
