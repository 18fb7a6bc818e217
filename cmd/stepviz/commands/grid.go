package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/snapshot"
)

// Grid editing errors.
var (
	ErrBadCoord        = errors.New("coordinate must be row,col")
	ErrEditWithoutGrid = errors.New("--start, --end and --wall need --grid")
)

// gridEdits are the layout edits applied to a grid file before a run.
type gridEdits struct {
	path  string
	start string
	end   string
	walls []string
}

func (e *gridEdits) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&e.path, "grid", "", "Grid layout file for pathfinding and maze runs (see \"stepviz grid\")")
	cmd.Flags().StringVar(&e.start, "start", "", "Move the start cell to row,col")
	cmd.Flags().StringVar(&e.end, "end", "", "Move the end cell to row,col")
	cmd.Flags().StringArrayVar(&e.walls, "wall", nil, "Toggle a wall at row,col (repeatable)")
}

func (e *gridEdits) empty() bool {
	return e.start == "" && e.end == "" && len(e.walls) == 0
}

// load reads the grid file and applies the edits. It returns nil when no
// grid file was given.
func (e *gridEdits) load() (snapshot.Grid, error) {
	if e.path == "" {
		if !e.empty() {
			return nil, ErrEditWithoutGrid
		}
		return nil, nil
	}

	data, err := os.ReadFile(e.path)
	if err != nil {
		return nil, fmt.Errorf("read grid: %w", err)
	}
	g, err := gridgraph.Parse(strings.Split(string(data), "\n")...)
	if err != nil {
		return nil, fmt.Errorf("parse grid %s: %w", e.path, err)
	}

	for _, ep := range []struct {
		at   string
		kind snapshot.CellType
	}{{e.start, snapshot.CellStart}, {e.end, snapshot.CellEnd}} {
		if ep.at == "" {
			continue
		}
		c, err := parseCoord(ep.at)
		if err != nil {
			return nil, err
		}
		if g, err = gridgraph.MoveEndpoint(g, c, ep.kind); err != nil {
			return nil, err
		}
	}

	for _, w := range e.walls {
		c, err := parseCoord(w)
		if err != nil {
			return nil, err
		}
		if !gridgraph.InBounds(g.Rows(), g.Cols(), c) {
			return nil, fmt.Errorf("wall %v: %w", c, gridgraph.ErrOutOfBounds)
		}
		g, _ = gridgraph.Paint(g, c, g.At(c).Type != snapshot.CellWall)
	}
	return g, nil
}

func parseCoord(s string) (snapshot.Coord, error) {
	row, col, ok := strings.Cut(s, ",")
	if !ok {
		return snapshot.Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(row))
	if err != nil {
		return snapshot.Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(col))
	if err != nil {
		return snapshot.Coord{}, fmt.Errorf("%w: %q", ErrBadCoord, s)
	}
	return snapshot.Coord{Row: r, Col: c}, nil
}

// NewGridCommand creates the grid command.
func NewGridCommand() *cobra.Command {
	var (
		configPath string
		seed       int64
		maze       bool
		solvable   bool
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print a random grid layout",
		Long: `Print a random grid drawn from the configured size, wall probability and
seed. The layout can be edited and passed to "stepviz run --grid".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			rows, cols, p := cfg.Grid.Rows, cfg.Grid.Cols, cfg.Grid.WallProbability
			if maze {
				rows, cols, p = cfg.Maze.Rows, cfg.Maze.Cols, cfg.Maze.WallProbability
			}
			opts := []builder.BuilderOption{builder.WithSeed(cfg.Seed)}
			if solvable || (!maze && cfg.Grid.Solvable) {
				opts = append(opts, builder.WithSolvable())
			}

			g, err := builder.RandomGrid(rows, cols, p, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), gridgraph.Format(g))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default ./config.yaml or $HOME/.stepviz/config.yaml)")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "Random seed (overrides config)")
	cmd.Flags().BoolVar(&maze, "maze", false, "Use the maze size and wall probability")
	cmd.Flags().BoolVar(&solvable, "solvable", false, "Clear walls until the end is reachable")

	return cmd
}
