package config

// GridConfig holds all configurable business rules and constraints
type GridConfig struct {
	// Grid constraints
	DefaultGridSize int
	MinGridSize     int
	MaxGridSize     int

	// Tile rules
	BaseTileValue int
	WinTileValue  int

	// Spawn rules
	InitialTileCount     int
	SpawnFourProbability float64

	// Lineage constraints
	MaxSourceConcepts int
}

// DefaultGridConfig returns the default grid configuration
func DefaultGridConfig() *GridConfig {
	return &GridConfig{
		// Grid constraints
		DefaultGridSize: 4,
		MinGridSize:     2,
		MaxGridSize:     8,

		// Tile rules
		BaseTileValue: 2,
		WinTileValue:  2048,

		// Spawn rules
		InitialTileCount:     2,
		SpawnFourProbability: 0.1,

		// Lineage constraints
		MaxSourceConcepts: 1024,
	}
}

// TrainingGridConfig returns the opt-in training rule set
func TrainingGridConfig() *GridConfig {
	cfg := DefaultGridConfig()

	// A lower mastery target makes won/game-over paths reachable by hand
	cfg.WinTileValue = 64
	cfg.MaxGridSize = 16

	return cfg
}

// LoadGridConfig loads grid configuration for the named rule set.
// Anything other than "training" gets the standard rules.
func LoadGridConfig(rules string) *GridConfig {
	switch rules {
	case "training":
		return TrainingGridConfig()
	default:
		return DefaultGridConfig()
	}
}

// Validate checks if the configuration is valid
func (c *GridConfig) Validate() error {
	if c.MinGridSize < 2 {
		return errMinGridSize
	}
	if c.MaxGridSize < c.MinGridSize {
		return errGridSizeBounds
	}
	if c.DefaultGridSize < c.MinGridSize || c.DefaultGridSize > c.MaxGridSize {
		return errDefaultGridSize
	}
	if c.BaseTileValue < 2 || c.BaseTileValue&(c.BaseTileValue-1) != 0 {
		return errBaseTileValue
	}
	if c.WinTileValue <= c.BaseTileValue || c.WinTileValue&(c.WinTileValue-1) != 0 {
		return errWinTileValue
	}
	if c.SpawnFourProbability < 0 || c.SpawnFourProbability > 1 {
		return errSpawnProbability
	}
	if c.InitialTileCount < 0 || c.InitialTileCount > c.MinGridSize*c.MinGridSize {
		return errInitialTileCount
	}
	return nil
}
