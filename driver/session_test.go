package driver_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/driver"
	"github.com/katalvlaran/stepviz/gridgraph"
	"github.com/katalvlaran/stepviz/internal/observability"
	"github.com/katalvlaran/stepviz/snapshot"
)

type SessionSuite struct {
	suite.Suite
	cfg *config.Config
}

func (s *SessionSuite) SetupTest() {
	s.cfg = config.Default()
	s.cfg.Array.Size = 8
	s.cfg.Grid.Rows, s.cfg.Grid.Cols = 6, 6
	s.cfg.Maze.Rows, s.cfg.Maze.Cols = 6, 6
	s.cfg.Seed = 7
}

func (s *SessionSuite) drain(sess *driver.Session) []driver.Step {
	var out []driver.Step
	for {
		step, ok, err := sess.Step()
		s.Require().NoError(err)
		if !ok {
			return out
		}
		out = append(out, step)
	}
}

func (s *SessionSuite) TestInstancesFollowConfig() {
	sess, err := driver.NewSession(driver.MergeSort, s.cfg)
	s.Require().NoError(err)
	in := sess.Input()
	s.Len(in.Array, 8)
	for _, v := range in.Array {
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, s.cfg.Array.Max)
	}

	sess, err = driver.NewSession(driver.BFS, s.cfg)
	s.Require().NoError(err)
	in = sess.Input()
	s.Equal(6, in.Grid.Rows())
	s.Equal(6, in.Grid.Cols())
	s.Equal(snapshot.Coord{}, in.Start)
	s.Equal(snapshot.Coord{Row: 5, Col: 5}, in.End)
	s.Equal(snapshot.CellStart, in.Grid.At(in.Start).Type)
	s.Equal(snapshot.CellEnd, in.Grid.At(in.End).Type)

	sess, err = driver.NewSession(driver.LinkedList, s.cfg)
	s.Require().NoError(err)
	s.Equal([]int{3, 7, 2, 9, 5}, sess.Input().List.Values())
}

func (s *SessionSuite) TestLazyRunAndReset() {
	sess, err := driver.NewSession(driver.BubbleSort, s.cfg)
	s.Require().NoError(err)
	s.Nil(sess.Run())

	first := sess.Input().Array
	step, ok, err := sess.Step()
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(0, step.Index)
	s.Require().NotNil(sess.Run())
	s.Equal(1, sess.Run().Steps())

	s.Require().NoError(sess.Reset())
	s.Nil(sess.Run())
	s.NotEqual(first, sess.Input().Array)

	step, ok, err = sess.Step()
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(0, step.Index)
	s.Equal(sess.Input().Array, step.Array.Values())
}

func (s *SessionSuite) TestCompletedStaysCompleted() {
	sess, err := driver.NewSession(driver.AStar, s.cfg)
	s.Require().NoError(err)
	steps := s.drain(sess)
	s.NotEmpty(steps)
	s.True(sess.Run().Done())

	_, ok, err := sess.Step()
	s.Require().NoError(err)
	s.False(ok)
}

func (s *SessionSuite) TestDeterministicPerSeed() {
	for _, alg := range []driver.Algorithm{driver.QuickSort, driver.DFS, driver.Maze} {
		a, err := driver.NewSession(alg, s.cfg)
		s.Require().NoError(err)
		b, err := driver.NewSession(alg, s.cfg)
		s.Require().NoError(err)
		s.Equal(s.drain(a), s.drain(b), alg)

		s.Require().NoError(a.Reset())
		s.Require().NoError(b.Reset())
		s.Equal(a.Input(), b.Input(), alg)
	}
}

func (s *SessionSuite) TestSolvableGrid() {
	s.cfg.Grid.WallProbability = 0.6
	s.cfg.Grid.Solvable = true
	for seed := int64(1); seed <= 10; seed++ {
		s.cfg.Seed = seed
		sess, err := driver.NewSession(driver.BFS, s.cfg)
		s.Require().NoError(err)
		s.drain(sess)
		s.Equal(driver.OutcomeFound, sess.Run().Outcome(), "seed %d", seed)
	}
}

func (s *SessionSuite) TestMazeBacktrackingFromConfig() {
	s.cfg.Maze.ShowBacktracking = false
	sess, err := driver.NewSession(driver.Maze, s.cfg)
	s.Require().NoError(err)
	s.True(sess.Input().HideBacktracking)
	for _, step := range s.drain(sess) {
		s.NotEqual(snapshot.KindBacktrack, step.Kind())
	}
}

func (s *SessionSuite) TestLinkedListKeepsResult() {
	sess, err := driver.NewSession(driver.LinkedList, s.cfg,
		driver.WithListOp(driver.ListOp{Kind: driver.ListInsertHead, Value: 1}))
	s.Require().NoError(err)
	s.drain(sess)
	s.Equal([]int{1, 3, 7, 2, 9, 5}, sess.Input().List.Values())

	sess.SetListOp(driver.ListOp{Kind: driver.ListDelete, Value: 9})
	s.Nil(sess.Run())
	s.drain(sess)
	s.Equal([]int{1, 3, 7, 2, 5}, sess.Input().List.Values())

	s.Require().NoError(sess.Reset())
	s.Equal([]int{3, 7, 2, 9, 5}, sess.Input().List.Values())
}

func (s *SessionSuite) TestDefaultListOpSearches() {
	sess, err := driver.NewSession(driver.LinkedList, s.cfg)
	s.Require().NoError(err)
	steps := s.drain(sess)
	s.Equal(snapshot.KindFound, steps[len(steps)-1].Kind())
	s.Equal(9, steps[len(steps)-1].List.Value)
}

func (s *SessionSuite) TestInputIsACopy() {
	sess, err := driver.NewSession(driver.BFS, s.cfg)
	s.Require().NoError(err)
	in := sess.Input()
	in.Grid.At(in.Start).Type = snapshot.CellPath
	s.Equal(snapshot.CellStart, sess.Input().Grid.At(in.Start).Type)
}

func (s *SessionSuite) TestLogging() {
	var buf bytes.Buffer
	logger, err := observability.NewLogger("debug", observability.FormatText, &buf)
	s.Require().NoError(err)

	sess, err := driver.NewSession(driver.BubbleSort, s.cfg, driver.WithLogger(logger))
	s.Require().NoError(err)
	_, _, err = sess.Step()
	s.Require().NoError(err)
	s.Contains(buf.String(), "run created")

	s.Require().NoError(sess.Reset())
	s.Contains(buf.String(), "run abandoned")

	s.drain(sess)
	s.Contains(buf.String(), "run completed")
	s.Contains(buf.String(), "outcome=completed")
}

func (s *SessionSuite) TestPlay() {
	sess, err := driver.NewSession(driver.BubbleSort, s.cfg)
	s.Require().NoError(err)

	var got []driver.Step
	err = sess.Play(context.Background(), driver.MaxSpeed, func(step driver.Step) error {
		got = append(got, step)
		return nil
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(got)
	s.Equal(sess.Run().Steps(), len(got))
	s.Equal(snapshot.KindDone, got[len(got)-1].Kind())
}

func (s *SessionSuite) TestPlayStops() {
	sess, err := driver.NewSession(driver.BubbleSort, s.cfg)
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = sess.Play(ctx, driver.MaxSpeed, func(driver.Step) error { return nil })
	s.Require().ErrorIs(err, context.Canceled)

	stop := errors.New("stop")
	calls := 0
	err = sess.Play(context.Background(), driver.MaxSpeed, func(driver.Step) error {
		calls++
		if calls == 3 {
			return stop
		}
		return nil
	})
	s.Require().ErrorIs(err, stop)
	s.Equal(3, sess.Run().Steps())
}

func (s *SessionSuite) TestFixedGrid() {
	g, err := gridgraph.Parse("..#E", ".S#.", "....")
	s.Require().NoError(err)

	for _, alg := range []driver.Algorithm{driver.BFS, driver.Maze} {
		sess, err := driver.NewSession(alg, s.cfg, driver.WithGrid(g))
		s.Require().NoError(err)
		in := sess.Input()
		s.Equal(g, in.Grid, alg)
		s.Equal(snapshot.Coord{Row: 1, Col: 1}, in.Start)
		s.Equal(snapshot.Coord{Row: 0, Col: 3}, in.End)

		steps := s.drain(sess)
		s.Equal(driver.OutcomeFound, sess.Run().Outcome(), alg)
		s.NotEmpty(steps)

		s.Require().NoError(sess.Reset())
		s.Equal(g, sess.Input().Grid, "reset restores the fixed grid")
	}

	sess, err := driver.NewSession(driver.DFS, s.cfg, driver.WithGrid(g))
	s.Require().NoError(err)
	g[0][0].Type = snapshot.CellWall
	s.Equal(snapshot.CellEmpty, sess.Input().Grid[0][0].Type, "the session keeps its own copy")
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func TestNewSession_Errors(t *testing.T) {
	_, err := driver.NewSession("bogo-sort", nil)
	require.ErrorIs(t, err, driver.ErrUnknownAlgorithm)

	cfg := config.Default()
	cfg.Speed = 200
	_, err = driver.NewSession(driver.BFS, cfg)
	require.ErrorIs(t, err, config.ErrInvalidSpeed)

	cfg = config.Default()
	cfg.Grid.Rows, cfg.Grid.Cols = 1, 1
	_, err = driver.NewSession(driver.BFS, cfg)
	require.Error(t, err)

	sess, err := driver.NewSession(driver.BubbleSort, nil)
	require.NoError(t, err)
	assert.Len(t, sess.Input().Array, config.DefaultArraySize)
}

func TestNewSession_GridErrors(t *testing.T) {
	g, err := gridgraph.Parse("S.", ".E")
	require.NoError(t, err)
	_, err = driver.NewSession(driver.QuickSort, nil, driver.WithGrid(g))
	require.ErrorIs(t, err, driver.ErrGridUnsupported)

	walled, err := gridgraph.Parse("S.", ".#")
	require.NoError(t, err)
	_, err = driver.NewSession(driver.AStar, nil, driver.WithGrid(walled))
	require.ErrorIs(t, err, snapshot.ErrInvalidInput, "default end on a wall")

	_, err = driver.NewSession(driver.BFS, nil, driver.WithGrid(snapshot.Grid{}))
	require.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestSessionOptions_NilPanics(t *testing.T) {
	assert.PanicsWithValue(t, "driver: WithLogger(nil)", func() { driver.WithLogger(nil) })
	assert.PanicsWithValue(t, "driver: WithMetrics(nil)", func() { driver.WithMetrics(nil) })
	assert.PanicsWithValue(t, "driver: WithGrid(nil)", func() { driver.WithGrid(nil) })
}
