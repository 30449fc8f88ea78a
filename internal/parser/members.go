package parser

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"github.com/IshaanNene/ParlScrape/internal/normalize"
	"github.com/IshaanNene/ParlScrape/internal/reference"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

var (
	profileHrefRe = regexp.MustCompile(`(?i)/(?:mps?|members?|profile)(?:/|\?|\.php)`)
	honorificRe   = regexp.MustCompile(`(?i)^(?:rt\.?\s+)?(?:hon(?:ourable|\.)?\s+)`)
	constLabelRe  = regexp.MustCompile(`(?i)constituency\s*:\s*([^\n|]+)`)

	// Hon. Ama Mensah – Tamale Central – NDC
	dashLineRe = regexp.MustCompile(`(?m)^\s*(?:Hon\.?\s+)?([A-Z][A-Za-z.'\- ]+?)\s+[–—-]\s+([A-Z][A-Za-z.'\- ]+?)\s+[–—-]\s+(NPP|NDC|Independent|IND)\b`)

	// Name: Ama Mensah
	// Constituency: Tamale Central
	// Party: NDC
	labelledRe = regexp.MustCompile(`(?m)^\s*(?:(?i:name)\s*:\s*)?(?:Hon\.?\s+)?([A-Z][^\n:]{3,60}?)\s*\n\s*(?i:constituency)\s*:\s*([^\n]+?)\s*\n\s*(?i:party)\s*:\s*([^\n]+)`)
)

// skipLabels are anchor texts on profile-looking links that are not names.
var skipLabels = map[string]bool{
	"view profile": true, "read more": true, "more": true, "profile": true,
	"members": true, "mps": true, "members of parliament": true, "next": true, "previous": true,
}

// MembersExtractor reads member cards from the upstream member listing.
type MembersExtractor struct {
	base   string
	logger *slog.Logger
}

// NewMembersExtractor creates a member listing extractor.
func NewMembersExtractor(base string, logger *slog.Logger) *MembersExtractor {
	return &MembersExtractor{
		base:   base,
		logger: logger.With("component", "members_extractor"),
	}
}

// Extract returns the members on one listing page with name, constituency,
// party and links filled in. The regex strategies only run when the HTML
// strategies find no one.
func (e *MembersExtractor) Extract(doc *goquery.Document) []types.ParliamentMember {
	members, via := Cascade(doc,
		Strategy[types.ParliamentMember]{Name: "profile-anchors", Extract: e.profileAnchors},
		Strategy[types.ParliamentMember]{Name: "member-cards", Extract: e.memberCards},
		Strategy[types.ParliamentMember]{Name: "dash-lines", Extract: e.dashLines},
		Strategy[types.ParliamentMember]{Name: "labelled-blocks", Extract: e.labelledBlocks},
	)
	members = DedupMembers(members)

	e.logger.Debug("members extracted", "count", len(members), "strategy", via)
	return members
}

// DedupMembers keeps the first member per name and constituency.
func DedupMembers(in []types.ParliamentMember) []types.ParliamentMember {
	return dedup(in, func(m types.ParliamentMember) string {
		return strings.ToLower(m.Name) + "\x00" + strings.ToLower(m.Constituency)
	})
}

// profileAnchors treats each link to a member profile as a card; the
// nearest block around the anchor supplies constituency and party.
func (e *MembersExtractor) profileAnchors(doc *goquery.Document) []types.ParliamentMember {
	var out []types.ParliamentMember
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if !profileHrefRe.MatchString(href) {
			return
		}
		name := cleanName(a.Text())
		if name == "" {
			name = cleanName(a.AttrOr("title", ""))
		}
		if !looksLikeName(name) {
			return
		}
		if m, ok := e.fromCard(cardFor(a), name, href); ok {
			out = append(out, m)
		}
	})
	return out
}

// cardFor climbs from a profile anchor to the smallest enclosing block that
// carries more than the name, without swallowing a neighbouring profile.
func cardFor(a *goquery.Selection) *goquery.Selection {
	card := a.Parent()
	for range 4 {
		if len(lines(renderText(card, false))) >= 2 {
			break
		}
		parent := card.Parent()
		if parent.Length() == 0 || parent.Is("body") || profileLinks(parent) > 1 {
			break
		}
		card = parent
	}
	return card
}

func profileLinks(sel *goquery.Selection) int {
	return sel.Find("a[href]").FilterFunction(func(_ int, a *goquery.Selection) bool {
		return profileHrefRe.MatchString(a.AttrOr("href", ""))
	}).Length()
}

// memberCards reads elements whose class names them as member cards and
// takes the name from a heading.
func (e *MembersExtractor) memberCards(doc *goquery.Document) []types.ParliamentMember {
	var out []types.ParliamentMember
	doc.Find(`[class*="member"], [class*="mp-"], [class*="profile-card"]`).Each(func(_ int, card *goquery.Selection) {
		name := cleanName(card.Find(`h2, h3, h4, h5, [class*="name"]`).First().Text())
		if !looksLikeName(name) {
			return
		}
		href := card.Find("a[href]").First().AttrOr("href", "")
		if m, ok := e.fromCard(card, name, href); ok {
			out = append(out, m)
		}
	})
	return out
}

func (e *MembersExtractor) fromCard(card *goquery.Selection, name, href string) (types.ParliamentMember, bool) {
	text := renderText(card, false)
	party := reference.NormalizeParty(card.Find(`[class*="party"]`).First().Text())
	if party == "" {
		party = reference.NormalizeParty(text)
	}

	constituency := normalize.CleanText(card.Find(`[class*="constituency"]`).First().Text())
	if constituency == "" {
		if m := constLabelRe.FindStringSubmatch(text); m != nil {
			constituency = normalize.CleanText(m[1])
		}
	}
	if constituency == "" {
		constituency = guessConstituency(lines(text), name)
	}
	constituency = strings.TrimPrefix(constituency, "Constituency: ")
	if constituency == "" {
		return types.ParliamentMember{}, false
	}

	img, _ := nearbyImage(card, e.base)
	return newMember(name, constituency, party, normalize.Absolutize(e.base, href), img), true
}

// dashLines matches "Name – Constituency – Party" lines in the page text.
func (e *MembersExtractor) dashLines(doc *goquery.Document) []types.ParliamentMember {
	text := renderText(doc.Find("body"), false)
	var out []types.ParliamentMember
	for _, m := range dashLineRe.FindAllStringSubmatch(text, -1) {
		name := cleanName(m[1])
		if !looksLikeName(name) {
			continue
		}
		out = append(out, newMember(name, normalize.CleanText(m[2]), reference.NormalizeParty(m[3]), "", ""))
	}
	return out
}

// labelledBlocks matches name lines followed by "Constituency:" and
// "Party:" lines.
func (e *MembersExtractor) labelledBlocks(doc *goquery.Document) []types.ParliamentMember {
	text := strings.Join(lines(renderText(doc.Find("body"), false)), "\n")
	var out []types.ParliamentMember
	for _, m := range labelledRe.FindAllStringSubmatch(text, -1) {
		name := cleanName(m[1])
		if !looksLikeName(name) {
			continue
		}
		out = append(out, newMember(name, normalize.CleanText(m[2]), reference.NormalizeParty(m[3]), "", ""))
	}
	return out
}

func newMember(name, constituency, party, profileURL, imageURL string) types.ParliamentMember {
	if party == "" {
		party = types.PartyIndependent
	}
	return types.ParliamentMember{
		Name:         name,
		Constituency: constituency,
		Party:        party,
		ProfileURL:   profileURL,
		ImageURL:     imageURL,
	}
}

// guessConstituency picks the first card line that is neither the name, a
// party nor a link label.
func guessConstituency(ls []string, name string) string {
	for _, l := range ls {
		switch {
		case strings.EqualFold(cleanName(l), name),
			reference.NormalizeParty(l) != "" && len(l) <= 40,
			skipLabels[strings.ToLower(l)]:
			continue
		}
		if looksLikeName(l) || len(strings.Fields(l)) <= 5 {
			return l
		}
	}
	return ""
}

func cleanName(s string) string {
	s = normalize.CleanText(s)
	return normalize.CleanText(honorificRe.ReplaceAllString(s, ""))
}

// looksLikeName accepts two to six words of letters and name punctuation.
func looksLikeName(s string) bool {
	if s == "" || skipLabels[strings.ToLower(s)] {
		return false
	}
	words := strings.Fields(s)
	if len(words) < 2 || len(words) > 6 {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) && !strings.ContainsRune(".'-", r) {
			return false
		}
	}
	return true
}
