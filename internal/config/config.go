package config

import (
	"strings"
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for ParlScrape.
type Config struct {
	Upstream UpstreamConfig `mapstructure:"upstream" yaml:"upstream"`
	Scraper  ScraperConfig  `mapstructure:"scraper"  yaml:"scraper"`
	Fetcher  FetcherConfig  `mapstructure:"fetcher"  yaml:"fetcher"`
	Server   ServerConfig   `mapstructure:"server"   yaml:"server"`
	Storage  StorageConfig  `mapstructure:"storage"  yaml:"storage"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
	Metrics  MetricsConfig  `mapstructure:"metrics"  yaml:"metrics"`
}

// UpstreamConfig locates the pages scraped on the parliament website.
type UpstreamConfig struct {
	BaseURL     string `mapstructure:"base_url"     yaml:"base_url"`
	HomePath    string `mapstructure:"home_path"    yaml:"home_path"`
	NewsPath    string `mapstructure:"news_path"    yaml:"news_path"`
	BillsPath   string `mapstructure:"bills_path"   yaml:"bills_path"`
	MembersPath string `mapstructure:"members_path" yaml:"members_path"`
}

// ScraperConfig holds the extraction heuristics that depend on the upstream layout.
type ScraperConfig struct {
	// InProgressWindow is how far back a laid date still counts as in-progress.
	InProgressWindow time.Duration `mapstructure:"in_progress_window"   yaml:"in_progress_window"`
	// DefaultMemberPages is used when the member listing page count cannot be detected.
	DefaultMemberPages int           `mapstructure:"default_member_pages" yaml:"default_member_pages"`
	MaxMemberPages     int           `mapstructure:"max_member_pages"     yaml:"max_member_pages"`
	PageDelay          time.Duration `mapstructure:"page_delay"           yaml:"page_delay"`
	BillsPerPage       int           `mapstructure:"bills_per_page"       yaml:"bills_per_page"`
	MaxNewsItems       int           `mapstructure:"max_news_items"       yaml:"max_news_items"`
	DefaultNewsLimit   int           `mapstructure:"default_news_limit"   yaml:"default_news_limit"`
	// RandomSeed seeds generated member profile fields. Zero means time-based.
	RandomSeed int64 `mapstructure:"random_seed" yaml:"random_seed"`
}

// FetcherConfig controls the page fetcher.
type FetcherConfig struct {
	Type            string        `mapstructure:"type"              yaml:"type"`
	Timeout         time.Duration `mapstructure:"timeout"           yaml:"timeout"`
	FollowRedirects bool          `mapstructure:"follow_redirects"  yaml:"follow_redirects"`
	MaxRedirects    int           `mapstructure:"max_redirects"     yaml:"max_redirects"`
	MaxBodySize     int64         `mapstructure:"max_body_size"     yaml:"max_body_size"`
	TLSInsecure     bool          `mapstructure:"tls_insecure"      yaml:"tls_insecure"`
	IdleConnTimeout time.Duration `mapstructure:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    yaml:"max_idle_conns"`
	UserAgents      []string      `mapstructure:"user_agents"       yaml:"user_agents"`
	Stealth         bool          `mapstructure:"stealth"           yaml:"stealth"`
}

// ServerConfig controls the JSON API server.
type ServerConfig struct {
	Port            int           `mapstructure:"port"             yaml:"port"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"  yaml:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// StorageConfig controls snapshot export. Type may list several backends
// separated by commas ("jsonl,mongodb").
type StorageConfig struct {
	Type       string `mapstructure:"type"        yaml:"type"`
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
	MongoURI   string `mapstructure:"mongo_uri"   yaml:"mongo_uri"`
	Database   string `mapstructure:"database"    yaml:"database"`
	Collection string `mapstructure:"collection"  yaml:"collection"`
}

// Types returns the backends named by Type.
func (s StorageConfig) Types() []string {
	var out []string
	for _, t := range strings.Split(s.Type, ",") {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	Output string `mapstructure:"output" yaml:"output"`
}

// MetricsConfig controls the Prometheus text endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Path    string `mapstructure:"path"    yaml:"path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Upstream: UpstreamConfig{
			BaseURL:     "https://www.parliament.gh",
			HomePath:    "/",
			NewsPath:    "/news",
			BillsPath:   "/bills",
			MembersPath: "/mps",
		},
		Scraper: ScraperConfig{
			InProgressWindow:   183 * 24 * time.Hour, // ~6 months
			DefaultMemberPages: 7,
			MaxMemberPages:     40,
			PageDelay:          1 * time.Second,
			BillsPerPage:       20,
			MaxNewsItems:       15,
			DefaultNewsLimit:   12,
		},
		Fetcher: FetcherConfig{
			Type:            "http",
			FollowRedirects: true,
			MaxRedirects:    10,
			MaxBodySize:     10 * 1024 * 1024, // 10MB
			IdleConnTimeout: 90 * time.Second,
			MaxIdleConns:    20,
			UserAgents: []string{
				"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
				"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			},
		},
		Server: ServerConfig{
			Port:            8080,
			RequestTimeout:  2 * time.Minute,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Type:       "json",
			OutputPath: "./output",
			Database:   "parlscrape",
			Collection: "snapshots",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// URL joins the upstream base URL with a path.
func (u UpstreamConfig) URL(path string) string {
	if path == "" || path == "/" {
		return u.BaseURL + "/"
	}
	if path[0] != '/' {
		path = "/" + path
	}
	return u.BaseURL + path
}
