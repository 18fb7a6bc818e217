// Package driver connects the step generators to a presentation loop.
//
// What
//
//   - Algorithms / Lookup: the registry of runnable algorithms with the
//     name, category, complexity and description shown beside a run.
//   - Create / Run.Advance: build a run over an explicit input and pull
//     exactly one Step per call until completion.
//   - Session: the state of one algorithm tab. It owns the random instance,
//     creates the run lazily on the first Step, discards it on Reset and
//     replays it on a timer with Play.
//   - Interval: maps the 0..100 speed control to a delay between steps.
//   - Metrics: Prometheus counters for steps and finished runs.
//
// Determinism
//
//	A Session draws its instances from one *rand.Rand seeded by the
//	configuration, so the same seed yields the same sequence of instances
//	and therefore the same steps. Play is the only time-based component.
//
// Usage
//
//	cfg := config.Default()
//	s, err := driver.NewSession(driver.BFS, cfg, driver.WithLogger(logger))
//	if err != nil {
//		return err
//	}
//	err = s.Play(ctx, cfg.Speed, func(step driver.Step) error {
//		return render(step)
//	})
//
// Errors
//
//   - ErrUnknownAlgorithm for an id missing from the registry.
//   - Create wraps the generator's *snapshot.InvalidInputError.
//   - Play returns ctx.Err() when cancelled and the callback's error as is.
package driver
