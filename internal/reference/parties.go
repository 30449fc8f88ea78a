// Package reference holds the static lookup tables used to enrich scraped
// members: parties, regions, committees and roles. Tables are built once and
// never mutated.
package reference

import (
	"regexp"
	"strings"

	"github.com/IshaanNene/ParlScrape/internal/types"
)

// PartyInfo describes a party as displayed by the API.
type PartyInfo struct {
	Code     string `json:"code"`
	FullName string `json:"fullName"`
	Color    string `json:"color"`
}

var parties = map[string]PartyInfo{
	types.PartyNPP:         {Code: types.PartyNPP, FullName: "New Patriotic Party", Color: "#0047AB"},
	types.PartyNDC:         {Code: types.PartyNDC, FullName: "National Democratic Congress", Color: "#008000"},
	types.PartyIndependent: {Code: types.PartyIndependent, FullName: "Independent", Color: "#808080"},
}

// PartyCodes lists the known party codes in display order.
var PartyCodes = []string{types.PartyNPP, types.PartyNDC, types.PartyIndependent}

// Party returns the metadata for a party code. Unknown codes are reported as
// Independent.
func Party(code string) PartyInfo {
	if p, ok := parties[code]; ok {
		return p
	}
	return parties[types.PartyIndependent]
}

var partyRe = regexp.MustCompile(`(?i)\b(NPP|NDC|IND|Independent|New Patriotic Party|National Democratic Congress)\b`)

// NormalizeParty maps free text to a party code. It returns "" when the
// text names no known party.
func NormalizeParty(s string) string {
	m := partyRe.FindString(s)
	if m == "" {
		return ""
	}
	switch strings.ToUpper(m) {
	case "NPP", "NEW PATRIOTIC PARTY":
		return types.PartyNPP
	case "NDC", "NATIONAL DEMOCRATIC CONGRESS":
		return types.PartyNDC
	default:
		return types.PartyIndependent
	}
}
