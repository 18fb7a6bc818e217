package config

import (
	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/internal/observability"
)

// Playback defaults.
const (
	DefaultSpeed = 50
	DefaultSeed  = builder.DefaultSeed
)

// Sorting defaults.
const (
	DefaultArraySize = builder.DefaultArraySize
	DefaultArrayMax  = builder.DefaultArrayMax
)

// Pathfinding defaults.
const (
	DefaultGridSize            = builder.DefaultGridSize
	DefaultGridWallProbability = builder.PathfindingWallProbability
	DefaultGridSolvable        = false
)

// Maze defaults.
const (
	DefaultMazeSize             = builder.DefaultGridSize
	DefaultMazeWallProbability  = builder.MazeWallProbability
	DefaultMazeShowBacktracking = true
)

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = observability.FormatText
)
