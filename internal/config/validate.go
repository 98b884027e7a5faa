package config

import (
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTMDB(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTMDB() error {
	if c.TMDB.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/cinebot/config.toml"
		}
		return fmt.Errorf("tmdb.api_key is required. Set TMDB_API_KEY env var or edit %s (create with 'cinebot config init')", defaultPath)
	}
	if c.TMDB.BaseURL == "" {
		return fmt.Errorf("tmdb.base_url must not be empty")
	}
	if c.TMDB.ImageBaseURL == "" {
		return fmt.Errorf("tmdb.image_base_url must not be empty")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	bounds := map[string]int{
		"catalog.max_results":        c.Catalog.MaxResults,
		"catalog.max_person_results": c.Catalog.MaxPersonResults,
		"catalog.max_cast":           c.Catalog.MaxCast,
		"catalog.max_crew":           c.Catalog.MaxCrew,
		"catalog.max_videos":         c.Catalog.MaxVideos,
		"catalog.max_similar":        c.Catalog.MaxSimilar,
		"catalog.max_known_for":      c.Catalog.MaxKnownFor,
		"catalog.max_companies":      c.Catalog.MaxCompanies,
	}
	for name, value := range bounds {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
