package api

import (
	"net/http"
	"strconv"

	"github.com/IshaanNene/ParlScrape/internal/config"
	"github.com/IshaanNene/ParlScrape/internal/scraper"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": config.Version,
	})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	res, err := s.scraper.Home(r.Context())
	if err != nil {
		s.logger.Error("home scrape failed", "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusBadGateway, "failed to fetch parliament home page: "+err.Error())
		return
	}
	writeResult(w, res)
}

func (s *Server) handleNews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, ok := positiveParam(q.Get("limit"))
	if !ok {
		writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	res, err := s.scraper.News(r.Context(), scraper.NewsQuery{Category: q.Get("category"), Limit: limit})
	if err != nil {
		s.logger.Error("news scrape failed", "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusBadGateway, "failed to fetch parliament news: "+err.Error())
		return
	}
	writeResult(w, res)
}

func (s *Server) handleBills(w http.ResponseWriter, r *http.Request) {
	page, ok := positiveParam(r.URL.Query().Get("page"))
	if !ok {
		writeError(w, http.StatusBadRequest, "page must be a positive integer")
		return
	}

	res, err := s.scraper.Bills(r.Context(), page)
	if err != nil {
		s.logger.Error("bills scrape failed", "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "failed to fetch bills: "+err.Error())
		return
	}
	writeResult(w, res)
}

func (s *Server) handleMembers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := scraper.MemberFilter{
		Party:     q.Get("party"),
		Region:    q.Get("region"),
		Committee: q.Get("committee"),
		Role:      q.Get("role"),
		Search:    q.Get("search"),
	}

	res, err := s.scraper.Members(r.Context(), filter)
	if err != nil {
		s.logger.Error("members scrape failed", "error", err, "request_id", RequestIDFrom(r.Context()))
		writeError(w, http.StatusInternalServerError, "failed to fetch members: "+err.Error())
		return
	}
	writeResult(w, res)
}

// positiveParam parses an optional positive integer. Empty yields 0.
func positiveParam(v string) (int, bool) {
	if v == "" {
		return 0, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}
