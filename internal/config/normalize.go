package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	if c.TMDB.APIKey == "" {
		c.TMDB.APIKey = strings.TrimSpace(os.Getenv("TMDB_API_KEY"))
	}
	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	c.TMDB.ImageBaseURL = strings.TrimSpace(c.TMDB.ImageBaseURL)
	if c.TMDB.ImageBaseURL != "" && !strings.HasSuffix(c.TMDB.ImageBaseURL, "/") {
		c.TMDB.ImageBaseURL += "/"
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	c.TMDB.Region = strings.ToUpper(strings.TrimSpace(c.TMDB.Region))

	c.Cache.RedisURL = strings.TrimSpace(c.Cache.RedisURL)
	if c.Cache.RedisURL == "" {
		c.Cache.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	}
	c.Cache.KeyPrefix = strings.TrimSpace(c.Cache.KeyPrefix)

	if c.Resolver.OverridesPath != "" {
		expanded, err := expandPath(c.Resolver.OverridesPath)
		if err != nil {
			return err
		}
		c.Resolver.OverridesPath = expanded
	}
	cleaned := make([]string, 0, len(c.Resolver.Stopwords))
	for _, word := range c.Resolver.Stopwords {
		if word = strings.ToLower(strings.TrimSpace(word)); word != "" {
			cleaned = append(cleaned, word)
		}
	}
	c.Resolver.Stopwords = cleaned

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", trimmed, err)
	}
	return abs, nil
}
