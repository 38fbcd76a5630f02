package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port           string        `yaml:"port"`
	YtDlpPath      string        `yaml:"ytdlp_path"`
	RedisURL       string        `yaml:"redis_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	SearchLimit    int           `yaml:"search_limit"`
	LogLevel       string        `yaml:"log_level"`
	AllowedOrigin  string        `yaml:"cors_allowed_origin"`

	Cookies struct {
		File     string `yaml:"file"`
		RedisKey string `yaml:"redis_key"`
	} `yaml:"cookies"`

	Feeds struct {
		Home     string `yaml:"home"`
		Trending string `yaml:"trending"`
	} `yaml:"feeds"`
}

func defaults() Config {
	var cfg Config
	cfg.Port = "8080"
	cfg.YtDlpPath = "yt-dlp"
	cfg.RequestTimeout = 60 * time.Second
	cfg.SearchLimit = 20
	cfg.LogLevel = "info"
	cfg.AllowedOrigin = "*"
	cfg.Feeds.Home = ":ytrec"
	cfg.Feeds.Trending = "https://www.youtube.com/feed/trending"
	return cfg
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order of precedence (environment wins). The file is
// taken from CONFIG_PATH, else ./config.yaml when present.
func Load() (Config, error) {
	cfg := defaults()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getenv("PORT", cfg.Port)
	cfg.YtDlpPath = getenv("YTDLP_PATH", cfg.YtDlpPath)
	cfg.RedisURL = getenv("REDIS_URL", cfg.RedisURL)
	cfg.RequestTimeout = getenvDuration("REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.SearchLimit = getenvInt("SEARCH_LIMIT", cfg.SearchLimit)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.AllowedOrigin = getenv("CORS_ALLOWED_ORIGIN", cfg.AllowedOrigin)
	cfg.Cookies.File = getenv("COOKIES_FILE", cfg.Cookies.File)
	cfg.Cookies.RedisKey = getenv("COOKIES_REDIS_KEY", cfg.Cookies.RedisKey)
	cfg.Feeds.Home = getenv("HOME_FEED_URL", cfg.Feeds.Home)
	cfg.Feeds.Trending = getenv("TRENDING_FEED_URL", cfg.Feeds.Trending)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("config: decode %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: port is empty")
	}
	if c.Cookies.RedisKey != "" && c.RedisURL == "" {
		return errors.New("config: COOKIES_REDIS_KEY requires REDIS_URL")
	}
	if c.Cookies.RedisKey != "" && c.Cookies.File != "" {
		return errors.New("config: set either COOKIES_FILE or COOKIES_REDIS_KEY, not both")
	}
	if c.Feeds.Home == "" || c.Feeds.Trending == "" {
		return errors.New("config: feed references must not be empty")
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	raw := getenv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	raw := getenv(key, "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return def
	}
	return d
}
