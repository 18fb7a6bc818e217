package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/internal/observability"
	"github.com/katalvlaran/stepviz/snapshot"
)

// ErrGridUnsupported is returned when a fixed grid is given to an algorithm
// that does not run on grids.
var ErrGridUnsupported = errors.New("driver: algorithm does not run on a grid")

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger. Panics on nil.
func WithLogger(l *slog.Logger) SessionOption {
	if l == nil {
		panic("driver: WithLogger(nil)")
	}
	return func(s *Session) { s.logger = l }
}

// WithMetrics sets the counters the session updates. Panics on nil.
func WithMetrics(m *Metrics) SessionOption {
	if m == nil {
		panic("driver: WithMetrics(nil)")
	}
	return func(s *Session) { s.metrics = m }
}

// defaultListOp searches the default list for its fourth value.
var defaultListOp = ListOp{Kind: ListSearch, Value: 9}

// WithListOp sets the operation of a linked-list session. The default
// searches for 9.
func WithListOp(op ListOp) SessionOption {
	return func(s *Session) { s.listOp = op }
}

// WithGrid fixes the grid of a pathfinding or maze session. Endpoints are
// taken from its start and end cells (see gridgraph.Locate) and every Reset
// restores it. Panics on nil.
func WithGrid(g snapshot.Grid) SessionOption {
	if g == nil {
		panic("driver: WithGrid(nil)")
	}
	return func(s *Session) { s.grid = g.Clone() }
}

// Session is the state of one algorithm: its current random instance and
// the run over it, if one has started.
type Session struct {
	alg     Algorithm
	cfg     config.Config
	rng     *rand.Rand
	input   Input
	run     *Run
	listOp  ListOp
	grid    snapshot.Grid
	logger  *slog.Logger
	metrics *Metrics
}

// NewSession validates cfg and builds the first instance for alg.
func NewSession(alg Algorithm, cfg *config.Config, opts ...SessionOption) (*Session, error) {
	if _, ok := alg.Info(); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("new session: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = builder.DefaultSeed
	}
	s := &Session{
		alg:    alg,
		cfg:    *cfg,
		rng:    rand.New(rand.NewSource(seed)),
		listOp: defaultListOp,
		logger: observability.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.grid != nil {
		if err := s.checkGrid(); err != nil {
			return nil, err
		}
	}

	if err := s.generate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Algorithm returns the session's algorithm.
func (s *Session) Algorithm() Algorithm { return s.alg }

// Input returns the current instance. The returned value shares no memory
// with the session.
func (s *Session) Input() Input {
	in := s.input
	in.Array = append([]int(nil), s.input.Array...)
	if s.input.Grid != nil {
		in.Grid = s.input.Grid.Clone()
	}
	if s.input.List != nil {
		in.List = s.input.List.Clone()
	}
	return in
}

// Run returns the current run, or nil when no step has been taken since the
// last Reset.
func (s *Session) Run() *Run { return s.run }

// Reset discards the current run and draws a fresh instance. A linked-list
// session returns to the default list.
func (s *Session) Reset() error {
	s.abandon()
	if err := s.generate(); err != nil {
		return err
	}
	s.logger.Debug("session reset", slog.String("algorithm", string(s.alg)))
	return nil
}

// SetListOp discards the current run and selects the operation the next
// linked-list run performs on the current list.
func (s *Session) SetListOp(op ListOp) {
	s.abandon()
	s.listOp = op
	s.input.ListOp = op
}

// Step creates the run on first use and advances it by one step. It reports
// false once the run is complete. A finished linked-list run hands its
// resulting list to the next run.
func (s *Session) Step() (Step, bool, error) {
	if s.run == nil {
		run, err := Create(s.alg, s.input)
		if err != nil {
			return Step{}, false, err
		}
		s.run = run
		s.logger.Debug("run created", slog.String("algorithm", string(s.alg)))
	}

	if s.run.Done() {
		return Step{}, false, nil
	}

	step, ok := s.run.Advance()
	if ok {
		s.metrics.observeStep(s.alg)
		return step, true, nil
	}

	outcome := s.run.Outcome()
	s.metrics.observeRun(s.alg, outcome)
	s.logger.Info("run completed",
		slog.String("algorithm", string(s.alg)),
		slog.Int("steps", s.run.Steps()),
		slog.String("outcome", string(outcome)))

	if l, ok := s.run.List(); ok {
		s.input.List = l
	}
	return Step{}, false, nil
}

// Play steps the session every Interval(speed) until the run completes, fn
// returns an error or ctx is done.
func (s *Session) Play(ctx context.Context, speed int, fn func(Step) error) error {
	ticker := time.NewTicker(Interval(speed))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		step, ok, err := s.Step()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(step); err != nil {
			return err
		}
	}
}

// abandon drops an unfinished run.
func (s *Session) abandon() {
	if s.run != nil && !s.run.Done() {
		s.metrics.observeRun(s.alg, OutcomeAbandoned)
		s.logger.Debug("run abandoned",
			slog.String("algorithm", string(s.alg)),
			slog.Int("steps", s.run.Steps()))
	}
	s.run = nil
}

// checkGrid rejects a fixed grid the session cannot run.
func (s *Session) checkGrid() error {
	switch s.alg.Category() {
	case CategoryPathfinding, CategoryMaze:
	default:
		return fmt.Errorf("%w: %q", ErrGridUnsupported, s.alg)
	}
	if s.grid.Rows() == 0 || s.grid.Cols() == 0 {
		return fmt.Errorf("new session: %w", gridgraph.ErrEmptyGrid)
	}
	start, end := gridgraph.Locate(s.grid)
	if err := gridgraph.Validate(s.grid, start, end); err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	return nil
}

// fixedGrid returns a copy of the session grid and its endpoints.
func (s *Session) fixedGrid() (snapshot.Grid, snapshot.Coord, snapshot.Coord) {
	start, end := gridgraph.Locate(s.grid)
	return s.grid.Clone(), start, end
}

// generate draws the instance for the session's category.
func (s *Session) generate() error {
	opts := []builder.BuilderOption{builder.WithRand(s.rng)}

	var in Input
	switch s.alg.Category() {
	case CategorySorting:
		values, err := builder.RandomArray(s.cfg.Array.Size, s.cfg.Array.Max, opts...)
		if err != nil {
			return fmt.Errorf("generate array: %w", err)
		}
		in.Array = values

	case CategoryPathfinding:
		if s.grid != nil {
			in.Grid, in.Start, in.End = s.fixedGrid()
			break
		}
		if s.cfg.Grid.Solvable {
			opts = append(opts, builder.WithSolvable())
		}
		g, err := builder.RandomGrid(s.cfg.Grid.Rows, s.cfg.Grid.Cols, s.cfg.Grid.WallProbability, opts...)
		if err != nil {
			return fmt.Errorf("generate grid: %w", err)
		}
		in.Grid = g
		in.Start, in.End = builder.GridEndpoints(s.cfg.Grid.Rows, s.cfg.Grid.Cols)

	case CategoryMaze:
		in.HideBacktracking = !s.cfg.Maze.ShowBacktracking
		if s.grid != nil {
			in.Grid, in.Start, in.End = s.fixedGrid()
			break
		}
		g, err := builder.RandomGrid(s.cfg.Maze.Rows, s.cfg.Maze.Cols, s.cfg.Maze.WallProbability, opts...)
		if err != nil {
			return fmt.Errorf("generate maze: %w", err)
		}
		in.Grid = g
		in.Start, in.End = builder.GridEndpoints(s.cfg.Maze.Rows, s.cfg.Maze.Cols)

	case CategoryData:
		in.List = builder.DefaultList()
		in.ListOp = s.listOp
	}

	s.input = in
	return nil
}
