package system

import (
	"fmt"

	"github.com/younwookim/chasearena/internal/domain/entity"
	"github.com/younwookim/chasearena/internal/infrastructure/config"
)

// LoadGrid converts a StageConfig into a validated Grid
func LoadGrid(cfg *config.StageConfig) (*entity.Grid, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: no stage config", entity.ErrConfiguration)
	}
	if cfg.CellSize != 0 && cfg.CellSize != entity.CellSize {
		return nil, fmt.Errorf("%w: stage %s has cell size %d, want %d",
			entity.ErrConfiguration, cfg.ID, cfg.CellSize, entity.CellSize)
	}

	grid := entity.NewGrid(
		cfg.Layers.Grid,
		entity.Point{X: cfg.HouseExit.X, Y: cfg.HouseExit.Y},
		entity.Point{X: cfg.HouseDoor.X, Y: cfg.HouseDoor.Y},
	)
	if err := grid.Validate(); err != nil {
		return nil, fmt.Errorf("invalid stage %s: %w", cfg.ID, err)
	}

	return grid, nil
}
