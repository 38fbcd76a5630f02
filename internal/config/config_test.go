package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG_PATH", "PORT", "YTDLP_PATH", "REDIS_URL", "REQUEST_TIMEOUT", "SEARCH_LIMIT",
	"LOG_LEVEL", "CORS_ALLOWED_ORIGIN", "COOKIES_FILE", "COOKIES_REDIS_KEY", "HOME_FEED_URL", "TRENDING_FEED_URL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "yt-dlp", cfg.YtDlpPath)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 20, cfg.SearchLimit)
	assert.Equal(t, ":ytrec", cfg.Feeds.Home)
	assert.Equal(t, "https://www.youtube.com/feed/trending", cfg.Feeds.Trending)
	assert.Empty(t, cfg.Cookies.File)
	assert.Equal(t, "*", cfg.AllowedOrigin)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
ytdlp_path: /opt/yt-dlp
request_timeout: 30s
search_limit: 10
cookies:
  file: /secrets/cookies.txt
feeds:
  trending: https://www.youtube.com/feed/trending?bp=music
`), 0o600))

	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SEARCH_LIMIT", "15")
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/opt/yt-dlp", cfg.YtDlpPath)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 15, cfg.SearchLimit)
	assert.Equal(t, "/secrets/cookies.txt", cfg.Cookies.File)
	assert.Equal(t, ":ytrec", cfg.Feeds.Home)
	assert.Equal(t, "https://www.youtube.com/feed/trending?bp=music", cfg.Feeds.Trending)
}

func TestLoad_BadFile(t *testing.T) {
	clearEnv(t)

	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err := Load()
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [unclosed"), 0o600))
	t.Setenv("CONFIG_PATH", path)
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	t.Setenv("COOKIES_REDIS_KEY", "yt:cookies")
	_, err := Load()
	assert.ErrorContains(t, err, "requires REDIS_URL")

	t.Setenv("REDIS_URL", "redis://localhost:6379")
	_, err = Load()
	assert.NoError(t, err)

	t.Setenv("COOKIES_FILE", "/tmp/cookies.txt")
	_, err = Load()
	assert.ErrorContains(t, err, "not both")
}
