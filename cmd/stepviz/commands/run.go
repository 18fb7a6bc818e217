// Package commands implements the stepviz CLI command handlers.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/driver"
	"github.com/katalvlaran/stepviz/internal/observability"
	"github.com/katalvlaran/stepviz/render"
)

// ErrUnknownListOp is returned for an --op value that is not a list operation.
var ErrUnknownListOp = errors.New("unknown list operation")

// RunCommand holds the flags of the run command.
type RunCommand struct {
	configPath string
	speed      int
	seed       int64
	op         string
	value      int
	instant    bool
	quiet      bool
	noColor    bool
	metrics    bool
	grid       gridEdits
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	rc := &RunCommand{}

	cmd := &cobra.Command{
		Use:   "run <algorithm>",
		Short: "Play an algorithm on a random instance",
		Long: `Play an algorithm step by step on a random instance drawn from the
configured sizes and seed. Use "stepviz list" for the algorithm ids.

Pathfinding and maze algorithms can run on a fixed layout instead:
  stepviz grid > maze.txt
  stepviz run astar --grid maze.txt --start 0,0 --wall 2,3`,
		Args: cobra.ExactArgs(1),
		RunE: rc.run,
	}

	cmd.Flags().StringVarP(&rc.configPath, "config", "c", "", "Config file (default ./config.yaml or $HOME/.stepviz/config.yaml)")
	cmd.Flags().IntVarP(&rc.speed, "speed", "s", config.DefaultSpeed, "Playback speed 0-100 (overrides config)")
	cmd.Flags().Int64Var(&rc.seed, "seed", config.DefaultSeed, "Random seed for the instance (overrides config)")
	cmd.Flags().StringVar(&rc.op, "op", string(driver.ListSearch), "Linked-list operation: insert-head, insert-tail, delete, search")
	cmd.Flags().IntVar(&rc.value, "value", 9, "Value for the linked-list operation")
	cmd.Flags().BoolVar(&rc.instant, "instant", false, "Print every step without delay")
	cmd.Flags().BoolVarP(&rc.quiet, "quiet", "q", false, "Only print the summary")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&rc.metrics, "metrics", false, "Print Prometheus metrics after the run")
	rc.grid.register(cmd)

	return cmd
}

func (rc *RunCommand) run(cmd *cobra.Command, args []string) error {
	info, err := driver.Lookup(args[0])
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig(rc.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("speed") {
		cfg.Speed = rc.speed
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = rc.seed
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics, err := driver.NewMetrics(registry)
	if err != nil {
		return err
	}

	opts := []driver.SessionOption{driver.WithLogger(logger), driver.WithMetrics(metrics)}
	if info.Category == driver.CategoryData {
		op, err := parseListOp(rc.op, rc.value)
		if err != nil {
			return err
		}
		opts = append(opts, driver.WithListOp(op))
	}

	grid, err := rc.grid.load()
	if err != nil {
		return err
	}
	if grid != nil {
		opts = append(opts, driver.WithGrid(grid))
	}

	session, err := driver.NewSession(info.ID, cfg, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var renderOpts []render.Option
	if rc.noColor {
		renderOpts = append(renderOpts, render.WithColor(false))
	}
	renderer := render.New(out, renderOpts...)

	var last driver.Step
	onStep := func(step driver.Step) error {
		last = step
		if rc.quiet {
			return nil
		}
		return renderer.Step(step)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	started := time.Now()
	if rc.instant {
		err = drain(session, onStep)
	} else {
		err = session.Play(ctx, cfg.Speed, onStep)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if run := session.Run(); run != nil {
		summary := render.Summarize(info, run, last, time.Since(started))
		fmt.Fprintln(out, summary.Table())
	}

	if rc.metrics {
		return writeMetrics(out, registry)
	}
	return nil
}

// drain steps session to completion without waiting.
func drain(session *driver.Session, fn func(driver.Step) error) error {
	for {
		step, ok, err := session.Step()
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

func parseListOp(kind string, value int) (driver.ListOp, error) {
	switch k := driver.ListOpKind(kind); k {
	case driver.ListInsertHead, driver.ListInsertTail, driver.ListDelete, driver.ListSearch:
		return driver.ListOp{Kind: k, Value: value}, nil
	default:
		return driver.ListOp{}, fmt.Errorf("%w: %q", ErrUnknownListOp, kind)
	}
}

func writeMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
