package config

import "errors"

var (
	errMinGridSize      = errors.New("minimum grid size must be at least 2")
	errGridSizeBounds   = errors.New("maximum grid size must not be below minimum")
	errDefaultGridSize  = errors.New("default grid size must be within configured bounds")
	errBaseTileValue    = errors.New("base tile value must be a power of two, minimum 2")
	errWinTileValue     = errors.New("win tile value must be a power of two above the base value")
	errSpawnProbability = errors.New("spawn-four probability must be within [0, 1]")
	errInitialTileCount = errors.New("initial tile count must fit the smallest allowed grid")
)
