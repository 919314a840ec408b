// Package bootstrap wires configuration into a ready session for the frontends.
package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/younwookim/chasearena/configs"
	"github.com/younwookim/chasearena/internal/application/session"
	"github.com/younwookim/chasearena/internal/application/system"
	"github.com/younwookim/chasearena/internal/infrastructure/config"
)

// Load reads the configuration from dir, or from the embedded defaults when dir is empty
func Load(dir string) (*config.ArenaConfig, error) {
	loader := config.NewFSLoader(configs.FS, ".")
	if dir != "" {
		loader = config.NewLoader(dir)
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// NewSession builds the stage grid and starts a session on it.
// A zero seed in the settings leaves the session's time-based seed in place.
func NewSession(cfg *config.ArenaConfig, logger *slog.Logger, observers ...session.Observer) (*session.Session, error) {
	grid, err := system.LoadGrid(cfg.Stage)
	if err != nil {
		return nil, err
	}

	opts := []session.Option{session.WithLogger(logger)}
	if cfg.Settings.Seed != 0 {
		opts = append(opts, session.WithSeed(cfg.Settings.Seed))
	}
	for _, o := range observers {
		opts = append(opts, session.WithObserver(o))
	}

	return session.New(grid, opts...)
}
