// Package classify labels free-text titles with categories, tags, and the
// bill status/stage/priority heuristics. It is keyword matching, not a model.
package classify

import (
	"strings"
	"unicode"
)

// DefaultCategory is returned when no keyword matches.
const DefaultCategory = "General"

// Category is a named keyword list. Keywords are lower case.
type Category struct {
	Name     string
	Keywords []string
}

// Taxonomy is an ordered category table plus a flat tag keyword list.
// Declaration order breaks ties: the first category with a match wins.
type Taxonomy struct {
	Categories  []Category
	TagKeywords []string
}

// Categorize returns the first category whose keywords occur in title.
func (tx *Taxonomy) Categorize(title string) string {
	lower := strings.ToLower(title)
	for _, c := range tx.Categories {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				return c.Name
			}
		}
	}
	return DefaultCategory
}

// Tags returns up to limit title-cased tag keywords found in title, in
// keyword list order.
func (tx *Taxonomy) Tags(title string, limit int) []string {
	lower := strings.ToLower(title)
	tags := make([]string, 0, limit)
	seen := make(map[string]struct{}, limit)
	for _, kw := range tx.TagKeywords {
		if len(tags) >= limit {
			break
		}
		if !strings.Contains(lower, kw) {
			continue
		}
		tag := TitleCase(kw)
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// Has reports whether name is one of the taxonomy's categories or the default.
func (tx *Taxonomy) Has(name string) bool {
	if name == DefaultCategory {
		return true
	}
	for _, c := range tx.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// TitleCase upper-cases the first letter of each word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// Bills classifies bill titles. Health precedes Finance so that health
// insurance legislation is labelled Health.
var Bills = &Taxonomy{
	Categories: []Category{
		{Name: "Health", Keywords: []string{"health", "medical", "hospital", "disease", "pharmacy", "nursing", "mental"}},
		{Name: "Education", Keywords: []string{"education", "school", "university", "college", "teacher", "training", "scholarship"}},
		{Name: "Finance", Keywords: []string{"finance", "financial", "tax", "revenue", "budget", "appropriation", "loan", "bank", "levy", "fees", "insurance", "customs", "excise"}},
		{Name: "Energy", Keywords: []string{"energy", "petroleum", "oil", "gas", "electricity", "power", "renewable"}},
		{Name: "Agriculture", Keywords: []string{"agriculture", "farm", "cocoa", "fisheries", "food", "livestock", "plant"}},
		{Name: "Security", Keywords: []string{"security", "defence", "defense", "police", "armed forces", "military", "immigration", "narcotics"}},
		{Name: "Justice", Keywords: []string{"justice", "court", "criminal", "judicial", "legal", "prison", "evidence", "rights"}},
		{Name: "Infrastructure", Keywords: []string{"road", "railway", "infrastructure", "housing", "construction", "transport", "water", "sanitation"}},
		{Name: "Environment", Keywords: []string{"environment", "climate", "forest", "mining", "minerals", "land", "wildlife"}},
		{Name: "Technology", Keywords: []string{"technology", "digital", "cyber", "communication", "data protection", "electronic", "broadcasting"}},
		{Name: "Local Government", Keywords: []string{"local government", "district", "assembly", "chieftaincy", "decentralisation"}},
		{Name: "Governance", Keywords: []string{"constitution", "election", "electoral", "parliament", "governance", "public service", "presidential", "office"}},
	},
	TagKeywords: []string{
		"amendment", "repeal", "emergency", "urgent", "health", "insurance", "education", "tax", "revenue",
		"budget", "loan", "energy", "petroleum", "mining", "agriculture", "security", "justice", "road",
		"digital", "constitution", "election", "local government", "environment", "levy", "housing",
	},
}

// News classifies news headlines.
var News = &Taxonomy{
	Categories: []Category{
		{Name: "Speaker", Keywords: []string{"speaker"}},
		{Name: "Committees", Keywords: []string{"committee"}},
		{Name: "Legislation", Keywords: []string{"bill", "act ", "law", "legislation", "amendment"}},
		{Name: "Budget & Finance", Keywords: []string{"budget", "finance", "tax", "loan", "revenue", "economic"}},
		{Name: "Plenary", Keywords: []string{"plenary", "sitting", "debate", "motion", "house", "vote", "approves", "adjourn"}},
		{Name: "Health", Keywords: []string{"health", "hospital", "medical"}},
		{Name: "Education", Keywords: []string{"education", "school", "students", "university"}},
		{Name: "International", Keywords: []string{"delegation", "international", "ambassador", "bilateral", "ecowas", "commonwealth", "ipu", "visit"}},
		{Name: "Events", Keywords: []string{"ceremony", "launch", "anniversary", "workshop", "seminar", "forum", "award"}},
	},
	TagKeywords: []string{
		"speaker", "committee", "bill", "budget", "minister", "majority", "minority", "clerk",
		"delegation", "health", "education", "women", "youth", "security", "economy", "constituency",
	},
}

// Categorize labels a bill title using the Bills taxonomy.
func Categorize(title string) string {
	return Bills.Categorize(title)
}

// ExtractTags returns up to five bill tags for title.
func ExtractTags(title string) []string {
	return Bills.Tags(title, 5)
}
