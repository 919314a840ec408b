package config

// StageConfig is the root config for stage JSON files
type StageConfig struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	CellSize  int            `json:"cellSize"`
	HouseExit PositionConfig `json:"houseExit"`
	HouseDoor PositionConfig `json:"houseDoor"`
	Layers    LayersConfig   `json:"layers"`
}

type PositionConfig struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type LayersConfig struct {
	// Grid holds one string per cell row, one symbol per cell
	Grid []string `json:"grid"`
}
