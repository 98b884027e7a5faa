package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mattn/go-isatty"

	"cinebot/internal/agent"
	"cinebot/internal/catalog"
	"cinebot/internal/config"
	"cinebot/internal/logging"
	"cinebot/internal/resolver"
	"cinebot/internal/session"
	"cinebot/internal/tmdb"
)

// commandContext carries lazily constructed dependencies between commands.
type commandContext struct {
	configFlag *string

	cfg        *config.Config
	configPath string
	logger     *slog.Logger
	agent      *agent.Agent
	state      *session.State
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) configValue() string {
	if c.configFlag == nil {
		return ""
	}
	return *c.configFlag
}

// ensureConfig loads and validates configuration once per invocation.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}
	cfg, path, _, err := config.Load(c.configValue())
	if err != nil {
		return nil, err
	}
	c.cfg = cfg
	c.configPath = path
	return cfg, nil
}

// ensureLogger builds the process logger. The console format degrades to
// JSON when stderr is not a terminal.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	if c.logger != nil {
		return c.logger, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	format := cfg.Logging.Format
	if format == "" || format == "console" {
		format = "console"
		if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
			format = "json"
		}
	}
	logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, Format: format})
	if err != nil {
		return nil, err
	}
	c.logger = logger
	return logger, nil
}

// ensureAgent wires the full stack: TMDB client, cache store, gateway,
// resolver, operation layer, and one session.
func (c *commandContext) ensureAgent() (*agent.Agent, *session.State, error) {
	if c.agent != nil {
		return c.agent, c.state, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, nil, err
	}

	client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language)
	if err != nil {
		return nil, nil, fmt.Errorf("tmdb client: %w", err)
	}

	store, err := newStore(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	gateway, err := catalog.NewGateway(client, catalog.Options{
		Store: store,
		Bounds: catalog.Bounds{
			MaxResults:       cfg.Catalog.MaxResults,
			MaxPersonResults: cfg.Catalog.MaxPersonResults,
			MaxCast:          cfg.Catalog.MaxCast,
			MaxCrew:          cfg.Catalog.MaxCrew,
			MaxVideos:        cfg.Catalog.MaxVideos,
			MaxSimilar:       cfg.Catalog.MaxSimilar,
			MaxKnownFor:      cfg.Catalog.MaxKnownFor,
			MaxCompanies:     cfg.Catalog.MaxCompanies,
		},
		ImageBase: cfg.TMDB.ImageBaseURL,
		Region:    cfg.TMDB.Region,
		KeyPrefix: cfg.Cache.KeyPrefix,
		Logger:    logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("catalog gateway: %w", err)
	}

	overrides := resolver.NewOverrides(cfg.Resolver.OverridesPath, logger)
	res := resolver.New(gateway, overrides, cfg.Resolver.Stopwords, logger)

	c.agent = agent.New(gateway, res, logger)
	c.state = session.New()
	return c.agent, c.state, nil
}

// newStore selects the cache backend. A configured redis URL that fails its
// ping degrades to the in-process store with a warning rather than refusing
// to start.
func newStore(cfg *config.Config, logger *slog.Logger) (catalog.Store, error) {
	if cfg.Cache.RedisURL == "" {
		return catalog.NewMemoryStore(), nil
	}
	store, err := catalog.NewRedisStore(cfg.Cache.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("redis store: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		logger.Warn("redis unreachable, using in-process cache", logging.Error(err))
		return catalog.NewMemoryStore(), nil
	}
	return store, nil
}
