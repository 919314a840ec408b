package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/younwookim/chasearena/internal/domain/entity"
)

// ArenaConfig holds all loaded configurations
type ArenaConfig struct {
	Settings *Settings
	Stage    *StageConfig
}

// Loader loads arena configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSettings loads arena.json
func (l *Loader) LoadSettings() (*Settings, error) {
	data, err := fs.ReadFile(l.fsys, "arena.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read arena.json: %w: %w", entity.ErrConfiguration, err)
	}

	cfg := Settings{
		Display: DisplayConfig{Title: "Chase Arena", Scale: 2, HUDHeight: 24},
		Audio:   AudioConfig{SampleRate: 44100},
		Log:     LogConfig{Level: "info", Format: "text"},
		Stage:   "classic",
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse arena.json: %w: %w", entity.ErrConfiguration, err)
	}

	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	path := "stages/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read stage %s: %w: %w", name, entity.ErrConfiguration, err)
	}

	var cfg StageConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse stage %s: %w: %w", name, entity.ErrConfiguration, err)
	}

	return &cfg, nil
}

// LoadAll loads the settings and the stage they name
func (l *Loader) LoadAll() (*ArenaConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	stage, err := l.LoadStage(settings.Stage)
	if err != nil {
		return nil, err
	}

	return &ArenaConfig{
		Settings: settings,
		Stage:    stage,
	}, nil
}
