package config

// Settings is the root config for arena.json
type Settings struct {
	Display DisplayConfig `json:"display"`
	Audio   AudioConfig   `json:"audio"`
	Log     LogConfig     `json:"log"`
	// Stage names the file under stages/ to play
	Stage string `json:"stage"`
	// Seed feeds the frightened-mode random source. 0 picks a time-based seed.
	Seed int64 `json:"seed"`
}

type DisplayConfig struct {
	Title     string `json:"title"`
	Scale     int    `json:"scale"`
	HUDHeight int    `json:"hudHeight"`
}

type AudioConfig struct {
	Enabled    bool `json:"enabled"`
	SampleRate int  `json:"sampleRate"`
	// Volume is a base-2 gain: 0 is unchanged, -1 halves the amplitude
	Volume float64 `json:"volume"`
}

type LogConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // text, json
}
