package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
)

var (
	pageParamRe = regexp.MustCompile(`(?:[?&]page=|/page/)(\d+)`)
	pageOfRe    = regexp.MustCompile(`(?i)\bpage\s+\d+\s+of\s+(\d+)\b`)
)

// maxBarePage is the largest number the body-text scan accepts as a page link.
const maxBarePage = 20

// MaxPageParam returns the largest N among anchors linking to "page=N",
// found by XPath. It returns 0 when there are none.
func MaxPageParam(doc *goquery.Document) int {
	if len(doc.Nodes) == 0 {
		return 0
	}
	nodes, err := htmlquery.QueryAll(doc.Nodes[0], "//a[contains(@href,'page=')]")
	if err != nil {
		return 0
	}
	best := 0
	for _, n := range nodes {
		best = max(best, pageParam(htmlquery.SelectAttr(n, "href")))
	}
	return best
}

// EstimatePages returns ceil(count/perPage), at least 1.
func EstimatePages(count, perPage int) int {
	if perPage <= 0 || count <= 0 {
		return 1
	}
	return (count + perPage - 1) / perPage
}

// PageCount discovers the number of listing pages, trying the selector
// strategies in order and then bare page numbers in the body text. ok is
// false when nothing was found.
func PageCount(doc *goquery.Document) (pages int, via string, ok bool) {
	found, via := Cascade(doc,
		Strategy[int]{Name: "pagination-list", Extract: func(d *goquery.Document) []int {
			return numericLinks(d.Find(".pagination a, .pagination li, ul.pager a, .pager__items a"))
		}},
		Strategy[int]{Name: "page-param", Extract: func(d *goquery.Document) []int {
			return nonZero(MaxPageParam(d))
		}},
		Strategy[int]{Name: "nav-container", Extract: func(d *goquery.Document) []int {
			return numericLinks(d.Find(`nav a, [class*="pag"] a, [class*="pager"] span`))
		}},
		Strategy[int]{Name: "last-link", Extract: lastLink},
		Strategy[int]{Name: "page-of", Extract: func(d *goquery.Document) []int {
			m := pageOfRe.FindStringSubmatch(d.Find("body").Text())
			if m == nil {
				return nil
			}
			n, _ := strconv.Atoi(m[1])
			return nonZero(n)
		}},
		Strategy[int]{Name: "body-numbers", Extract: func(d *goquery.Document) []int {
			return nonZero(bareNumberRun(d.Find("body").Text()))
		}},
	)
	if len(found) == 0 {
		return 0, "", false
	}
	return found[0], via, true
}

func numericLinks(sel *goquery.Selection) []int {
	best := 0
	sel.Each(func(_ int, s *goquery.Selection) {
		if n, err := strconv.Atoi(strings.TrimSpace(s.Text())); err == nil && n > best {
			best = n
		}
	})
	return nonZero(best)
}

func lastLink(doc *goquery.Document) []int {
	best := 0
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(a.Text()))
		title := strings.ToLower(a.AttrOr("title", ""))
		if !strings.HasPrefix(label, "last") && label != "»»" && !strings.Contains(title, "last page") {
			return
		}
		best = max(best, pageParam(a.AttrOr("href", "")))
	})
	return nonZero(best)
}

// bareNumberRun finds runs of at least three consecutive integers
// ("1 2 3 …") no greater than maxBarePage and returns the largest run end.
func bareNumberRun(text string) int {
	best, prev, run := 0, 0, 0
	for _, tok := range strings.Fields(text) {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 1 || n > maxBarePage {
			prev, run = 0, 0
			continue
		}
		if n == prev+1 {
			run++
		} else {
			run = 1
		}
		prev = n
		if run >= 3 {
			best = max(best, n)
		}
	}
	return best
}

func pageParam(href string) int {
	m := pageParamRe.FindStringSubmatch(href)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}

func nonZero(n int) []int {
	if n <= 0 {
		return nil
	}
	return []int{n}
}
