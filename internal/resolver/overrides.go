package resolver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"cinebot/internal/logging"
)

// Overrides maps known-ambiguous normalized titles to a preferred release
// year, used when the user names such a title without an explicit year. The
// backing JSON file is reloaded when its modification time changes.
type Overrides struct {
	path   string
	logger *slog.Logger
	mu     sync.RWMutex
	loaded time.Time
	years  map[string]int
}

// NewOverrides constructs an override catalog backed by the provided JSON
// file. An empty path yields a nil catalog, which every lookup treats as
// "no override".
func NewOverrides(path string, logger *slog.Logger) *Overrides {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil
	}
	return &Overrides{path: trimmed, logger: logging.NewComponentLogger(logger, "overrides")}
}

// PreferredYear returns the configured year for a normalized title, if any.
func (o *Overrides) PreferredYear(normalizedTitle string) (int, bool) {
	if o == nil {
		return 0, false
	}
	if err := o.ensureLoaded(); err != nil {
		o.logger.Warn("failed to load title overrides", logging.Error(err))
		return 0, false
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	year, ok := o.years[normalizedTitle]
	return year, ok
}

func (o *Overrides) ensureLoaded() error {
	info, err := os.Stat(o.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	o.mu.RLock()
	alreadyLoaded := !o.loaded.IsZero() && o.loaded.Equal(info.ModTime())
	o.mu.RUnlock()
	if alreadyLoaded {
		return nil
	}

	data, err := os.ReadFile(o.path)
	if err != nil {
		return err
	}

	years := make(map[string]int)
	if len(data) > 0 {
		var raw map[string]int
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		for title, year := range raw {
			if normalized := normalizeTitle(title); normalized != "" && year > 0 {
				years[normalized] = year
			}
		}
	}

	o.mu.Lock()
	o.years = years
	o.loaded = info.ModTime()
	o.mu.Unlock()

	o.logger.Debug("loaded title overrides",
		logging.String("path", o.path),
		logging.Int("count", len(years)))
	return nil
}
