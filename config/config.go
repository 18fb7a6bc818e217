// Package config loads and validates stepviz settings from defaults, an
// optional YAML file and STEPVIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/stepviz/internal/observability"
)

// Sentinel validation errors.
var (
	ErrInvalidSpeed       = errors.New("speed must be within [0,100]")
	ErrInvalidSize        = errors.New("size must be positive")
	ErrInvalidProbability = errors.New("wall probability must be within [0,1]")
	ErrInvalidLogLevel    = errors.New("unknown log level")
	ErrInvalidLogFormat   = errors.New("unknown log format")
)

// EnvPrefix is the prefix of environment overrides, e.g. STEPVIZ_ARRAY_SIZE.
const EnvPrefix = "STEPVIZ"

const maxSpeed = 100

// Config holds every setting of the stepviz CLI.
type Config struct {
	Array   ArrayConfig   `mapstructure:"array"   yaml:"array"`
	Grid    GridConfig    `mapstructure:"grid"    yaml:"grid"`
	Maze    MazeConfig    `mapstructure:"maze"    yaml:"maze"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Seed    int64         `mapstructure:"seed"    yaml:"seed"`
	Speed   int           `mapstructure:"speed"   yaml:"speed"`
}

// ArrayConfig sizes the random arrays of the sorting algorithms.
type ArrayConfig struct {
	Size int `mapstructure:"size" yaml:"size"`
	Max  int `mapstructure:"max"  yaml:"max"`
}

// GridConfig shapes the random grids of the pathfinding algorithms.
type GridConfig struct {
	Rows            int     `mapstructure:"rows"             yaml:"rows"`
	Cols            int     `mapstructure:"cols"             yaml:"cols"`
	WallProbability float64 `mapstructure:"wall_probability" yaml:"wall_probability"`
	Solvable        bool    `mapstructure:"solvable"         yaml:"solvable"`
}

// MazeConfig shapes the random mazes of the maze solver.
type MazeConfig struct {
	Rows             int     `mapstructure:"rows"              yaml:"rows"`
	Cols             int     `mapstructure:"cols"              yaml:"cols"`
	WallProbability  float64 `mapstructure:"wall_probability"  yaml:"wall_probability"`
	ShowBacktracking bool    `mapstructure:"show_backtracking" yaml:"show_backtracking"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// LoadConfig loads configuration from file and environment variables.
// An empty configPath searches for config.yaml in the working directory and
// $HOME/.stepviz; a missing file there is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("config")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME/.stepviz")
	}

	viperCfg.SetEnvPrefix(EnvPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := Validate(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Speed: DefaultSpeed,
		Seed:  DefaultSeed,
		Array: ArrayConfig{Size: DefaultArraySize, Max: DefaultArrayMax},
		Grid: GridConfig{
			Rows:            DefaultGridSize,
			Cols:            DefaultGridSize,
			WallProbability: DefaultGridWallProbability,
			Solvable:        DefaultGridSolvable,
		},
		Maze: MazeConfig{
			Rows:             DefaultMazeSize,
			Cols:             DefaultMazeSize,
			WallProbability:  DefaultMazeWallProbability,
			ShowBacktracking: DefaultMazeShowBacktracking,
		},
		Logging: LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("speed", DefaultSpeed)
	viperCfg.SetDefault("seed", DefaultSeed)

	viperCfg.SetDefault("array.size", DefaultArraySize)
	viperCfg.SetDefault("array.max", DefaultArrayMax)

	viperCfg.SetDefault("grid.rows", DefaultGridSize)
	viperCfg.SetDefault("grid.cols", DefaultGridSize)
	viperCfg.SetDefault("grid.wall_probability", DefaultGridWallProbability)
	viperCfg.SetDefault("grid.solvable", DefaultGridSolvable)

	viperCfg.SetDefault("maze.rows", DefaultMazeSize)
	viperCfg.SetDefault("maze.cols", DefaultMazeSize)
	viperCfg.SetDefault("maze.wall_probability", DefaultMazeWallProbability)
	viperCfg.SetDefault("maze.show_backtracking", DefaultMazeShowBacktracking)

	viperCfg.SetDefault("logging.level", DefaultLogLevel)
	viperCfg.SetDefault("logging.format", DefaultLogFormat)
}

// Validate checks ranges and enumerations of config.
func Validate(config *Config) error {
	if config.Speed < 0 || config.Speed > maxSpeed {
		return fmt.Errorf("%w: %d", ErrInvalidSpeed, config.Speed)
	}

	sizes := []struct {
		name string
		v    int
	}{
		{"array.size", config.Array.Size},
		{"array.max", config.Array.Max},
		{"grid.rows", config.Grid.Rows},
		{"grid.cols", config.Grid.Cols},
		{"maze.rows", config.Maze.Rows},
		{"maze.cols", config.Maze.Cols},
	}
	for _, s := range sizes {
		if s.v <= 0 {
			return fmt.Errorf("%w: %s=%d", ErrInvalidSize, s.name, s.v)
		}
	}

	if !validProbability(config.Grid.WallProbability) {
		return fmt.Errorf("%w: grid %v", ErrInvalidProbability, config.Grid.WallProbability)
	}
	if !validProbability(config.Maze.WallProbability) {
		return fmt.Errorf("%w: maze %v", ErrInvalidProbability, config.Maze.WallProbability)
	}

	if _, err := observability.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, config.Logging.Level)
	}

	if _, err := observability.ParseFormat(config.Logging.Format); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, config.Logging.Format)
	}

	return nil
}

func validProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
