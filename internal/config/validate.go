package config

import (
	"fmt"
	"net/url"
)

// Validate checks the configuration for invalid values.
func Validate(cfg *Config) error {
	if err := ValidateURL(cfg.Upstream.BaseURL); err != nil {
		return fmt.Errorf("upstream.base_url: %w", err)
	}

	if cfg.Scraper.InProgressWindow <= 0 {
		return fmt.Errorf("scraper.in_progress_window must be > 0")
	}
	if cfg.Scraper.DefaultMemberPages < 1 {
		return fmt.Errorf("scraper.default_member_pages must be >= 1, got %d", cfg.Scraper.DefaultMemberPages)
	}
	if cfg.Scraper.MaxMemberPages < cfg.Scraper.DefaultMemberPages {
		return fmt.Errorf("scraper.max_member_pages (%d) must be >= default_member_pages (%d)",
			cfg.Scraper.MaxMemberPages, cfg.Scraper.DefaultMemberPages)
	}
	if cfg.Scraper.PageDelay < 0 {
		return fmt.Errorf("scraper.page_delay must be >= 0")
	}
	if cfg.Scraper.BillsPerPage < 1 {
		return fmt.Errorf("scraper.bills_per_page must be >= 1, got %d", cfg.Scraper.BillsPerPage)
	}
	if cfg.Scraper.MaxNewsItems < 1 {
		return fmt.Errorf("scraper.max_news_items must be >= 1, got %d", cfg.Scraper.MaxNewsItems)
	}
	if cfg.Scraper.DefaultNewsLimit < 1 {
		return fmt.Errorf("scraper.default_news_limit must be >= 1, got %d", cfg.Scraper.DefaultNewsLimit)
	}

	if cfg.Fetcher.Type != "http" && cfg.Fetcher.Type != "browser" {
		return fmt.Errorf("fetcher.type must be 'http' or 'browser', got %q", cfg.Fetcher.Type)
	}
	if cfg.Fetcher.Timeout < 0 {
		return fmt.Errorf("fetcher.timeout must be >= 0")
	}
	if cfg.Fetcher.MaxBodySize <= 0 {
		return fmt.Errorf("fetcher.max_body_size must be > 0")
	}
	if cfg.Fetcher.MaxRedirects < 0 {
		return fmt.Errorf("fetcher.max_redirects must be >= 0")
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", cfg.Server.Port)
	}

	validStorageTypes := map[string]bool{
		"json": true, "jsonl": true, "csv": true, "mongodb": true,
	}
	storageTypes := cfg.Storage.Types()
	if len(storageTypes) == 0 {
		return fmt.Errorf("storage.type is required")
	}
	for _, t := range storageTypes {
		if !validStorageTypes[t] {
			return fmt.Errorf("storage.type %q is not supported (valid: json, jsonl, csv, mongodb)", t)
		}
		if t == "mongodb" && cfg.Storage.MongoURI == "" {
			return fmt.Errorf("storage.mongo_uri is required for mongodb storage")
		}
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be debug/info/warn/error, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be 'text' or 'json', got %q", cfg.Logging.Format)
	}

	return nil
}

// ValidateURL checks if a URL string is a usable upstream origin.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}
	return nil
}
