package scraper

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/IshaanNene/ParlScrape/internal/parser"
	"github.com/IshaanNene/ParlScrape/internal/types"
)

// MemberFilter narrows the member listing. Empty fields match everything.
// Party, Region, Committee and Role compare case-insensitively; Search is a
// substring of the name or constituency.
type MemberFilter struct {
	Party     string
	Region    string
	Committee string
	Role      string
	Search    string
}

func (f MemberFilter) match(m types.ParliamentMember) bool {
	if f.Party != "" && !strings.EqualFold(m.Party, f.Party) {
		return false
	}
	if f.Region != "" && !strings.EqualFold(m.Region, f.Region) {
		return false
	}
	if f.Role != "" && !strings.EqualFold(m.Role, f.Role) {
		return false
	}
	if f.Committee != "" && !containsFold(m.Committees, f.Committee) {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(m.Name), q) &&
			!strings.Contains(strings.ToLower(m.Constituency), q) {
			return false
		}
	}
	return true
}

// Members scrapes every page of the member listing, enriches and filters
// the members. When nothing can be scraped the sample members are used. The
// error is non-nil only when ctx ends.
func (s *Service) Members(ctx context.Context, f MemberFilter) (Result[types.MembersPage], error) {
	scraped, err := s.scrapeMembers(ctx)
	if ctx.Err() != nil {
		return Result[types.MembersPage]{}, ctx.Err()
	}

	src, reason := SourceLive, ""
	switch {
	case err != nil:
		src, reason = SourceFallback, err.Error()
	case len(scraped) == 0:
		src, reason = SourceFallback, "no members found on any listing page"
	}
	if src == SourceFallback {
		scraped = sampleMemberList()
		s.metrics.MembersFallbacks.Add(1)
		s.logger.Warn("serving sample members", "reason", reason, "count", len(scraped))
	} else {
		s.metrics.MembersFound.Add(int64(len(scraped)))
	}

	all := make([]types.ParliamentMember, len(scraped))
	for i, m := range scraped {
		all[i] = s.enrich(m)
	}

	page := membersPage(all, f)
	s.logger.Info("members listed", "source", src, "total", len(all), "matched", page.TotalCount)
	return Result[types.MembersPage]{Data: page, Source: src, Reason: reason}, nil
}

// scrapeMembers discovers the page count from the first listing page and
// fetches the rest one at a time. Failed pages after the first are skipped.
func (s *Service) scrapeMembers(ctx context.Context) ([]types.ParliamentMember, error) {
	listURL := s.cfg.Upstream.URL(s.cfg.Upstream.MembersPath)
	first, err := s.document(ctx, "members", listURL)
	if err != nil {
		return nil, fmt.Errorf("member listing unavailable: %w", err)
	}

	pages, via, ok := parser.PageCount(first)
	if !ok {
		pages, via = s.cfg.Scraper.DefaultMemberPages, "default"
	}
	if limit := s.cfg.Scraper.MaxMemberPages; limit > 0 && pages > limit {
		pages = limit
	}
	s.logger.Info("member pages discovered", "pages", pages, "via", via)

	all := s.members.Extract(first)
	for p := 2; p <= pages; p++ {
		if err := s.pacer.Wait(ctx); err != nil {
			return nil, err
		}
		pageURL := withPage(listURL, p)
		doc, err := s.document(ctx, "members", pageURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.metrics.PagesSkipped.Add(1)
			s.logger.Warn("member page skipped", "page", p, "url", pageURL, "error", err)
			continue
		}
		all = append(all, s.members.Extract(doc)...)
	}
	return parser.DedupMembers(all), nil
}

// membersPage filters all and computes facets over the unfiltered set.
func membersPage(all []types.ParliamentMember, f MemberFilter) types.MembersPage {
	matched := make([]types.ParliamentMember, 0, len(all))
	for _, m := range all {
		if f.match(m) {
			matched = append(matched, m)
		}
	}

	return types.MembersPage{
		Members:    matched,
		TotalCount: len(matched),
		Parties:    facet(all, func(m types.ParliamentMember) []string { return []string{m.Party} }),
		Regions:    facet(all, func(m types.ParliamentMember) []string { return []string{m.Region} }),
		Committees: facet(all, func(m types.ParliamentMember) []string { return m.Committees }),
		Roles:      facet(all, func(m types.ParliamentMember) []string { return []string{m.Role} }),
	}
}

func facet(all []types.ParliamentMember, values func(types.ParliamentMember) []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, m := range all {
		for _, v := range values(m) {
			if _, ok := seen[v]; ok || v == "" {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func containsFold(list []string, v string) bool {
	for _, s := range list {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
