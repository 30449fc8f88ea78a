package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"

	"github.com/IshaanNene/ParlScrape/internal/normalize"
)

// descriptionWidth is the display width descriptions are cut to.
const descriptionWidth = 200

var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "tr": true, "td": true, "th": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"section": true, "article": true, "header": true, "footer": true, "ul": true, "ol": true,
}

// renderText returns the text of sel with block boundaries as newlines.
// With markBold, <strong>/<b> content is wrapped in ** markers.
func renderText(sel *goquery.Selection, markBold bool) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeNode(&b, n, markBold, false)
	}
	return b.String()
}

func writeNode(b *strings.Builder, n *html.Node, markBold, inBold bool) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "noscript", "template":
			return
		}
	case html.DocumentNode:
	default:
		return
	}

	bold := markBold && !inBold && (n.Data == "strong" || n.Data == "b")
	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		b.WriteByte('\n')
	}
	if bold {
		b.WriteString(" **")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNode(b, c, markBold, inBold || bold)
	}
	if bold {
		b.WriteString("** ")
	}
	if block {
		b.WriteByte('\n')
	}
}

// lines splits rendered text into cleaned, non-empty lines.
func lines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = normalize.CleanText(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// truncate shortens s to descriptionWidth display cells.
func truncate(s string) string {
	s = normalize.CleanText(strings.ReplaceAll(s, "**", ""))
	return runewidth.Truncate(s, descriptionWidth, "...")
}

// textAfter returns the text following needle in haystack, or "".
func textAfter(haystack, needle string) string {
	if needle == "" {
		return ""
	}
	i := strings.Index(haystack, needle)
	if i < 0 {
		return ""
	}
	return strings.TrimLeft(haystack[i+len(needle):], " \t\n*:-–|")
}

// nearbyImage finds the first image inside sel or, failing that, its parent.
func nearbyImage(sel *goquery.Selection, base string) (src, alt string) {
	img := sel.Find("img").First()
	if img.Length() == 0 {
		img = sel.Parent().Find("img").First()
	}
	if img.Length() == 0 {
		return "", ""
	}
	src, _ = img.Attr("src")
	if src == "" {
		src, _ = img.Attr("data-src")
	}
	alt, _ = img.Attr("alt")
	return normalize.Absolutize(base, src), normalize.CleanText(alt)
}

// linkFor picks the anchor in sel whose text contains title, else the first
// anchor in sel, else the nearest enclosing anchor.
func linkFor(sel *goquery.Selection, title, base string) string {
	var href string
	sel.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if strings.Contains(normalize.CleanText(a.Text()), title) {
			href, _ = a.Attr("href")
			return false
		}
		return true
	})
	if href == "" {
		href, _ = sel.Find("a[href]").First().Attr("href")
	}
	if href == "" {
		href, _ = sel.Closest("a[href]").Attr("href")
	}
	return normalize.Absolutize(base, href)
}
