package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"findaword/internal/config"
	"findaword/internal/eval"
	"findaword/internal/fitness"
	"findaword/internal/ga"
	"findaword/internal/logging"
	"findaword/internal/metrics"
)

type runOptions struct {
	configPath  string
	generations int
	seed        int64
	target      string
	timeout     time.Duration
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evolve a population until it finds the target",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			level, err := logging.ParseLevel(cfg.Logging.Level)
			if err != nil {
				return err
			}
			logger := logging.NewSlog(cmd.ErrOrStderr(), level, cfg.Logging.Format)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if opts.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.timeout)
				defer cancel()
			}

			res, err := evolve(ctx, cfg, logger)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), cfg, res)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "path to config file (defaults apply when empty)")
	flags.IntVar(&opts.generations, "generations", 0, "override ga.max_generations")
	flags.Int64Var(&opts.seed, "seed", 0, "override the RNG seed")
	flags.StringVar(&opts.target, "target", "", "override the target phrase")
	flags.DurationVar(&opts.timeout, "timeout", 0, "stop the run after this duration")
	return cmd
}

// loadConfig reads the config file, or the defaults, and applies flag overrides
func loadConfig(opts runOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	if opts.generations > 0 {
		cfg.GA.MaxGenerations = opts.generations
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if opts.target != "" {
		cfg.Target = opts.target
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runResult summarizes a finished run
type runResult struct {
	RunID       string
	Generations int
	Found       bool
	Stopped     bool
	Champion    string
	Score       float64
	Elapsed     time.Duration
}

// evolve runs generations until the target is found, the generation budget is
// spent or ctx is done. Cancellation is a normal stop, not an error.
func evolve(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*runResult, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	target := ga.GenomeFromString(cfg.Target)

	stopMetric, err := fitness.ParseMetric(cfg.StopMetric)
	if err != nil {
		return nil, err
	}
	resolver, err := cfg.Resolver()
	if err != nil {
		return nil, err
	}

	pop, err := ga.NewPopulation(cfg.Population.Size, cfg.Population.MinIndividualSize, cfg.Population.MaxIndividualSize, rng)
	if err != nil {
		return nil, fmt.Errorf("create population: %w", err)
	}

	scorer := eval.NewScorer(cfg.GA.Workers)
	breeder := ga.NewBreeder(cfg.BreederConfig(), scorer, logger)

	recorder, err := logging.NewRecorder(cfg.Logging.CSVPath, cfg.Logging.JSONPath, logger)
	if err != nil {
		return nil, fmt.Errorf("create recorder: %w", err)
	}
	if err := recorder.Init(); err != nil {
		return nil, fmt.Errorf("init recorder: %w", err)
	}
	defer recorder.Close()

	var runMetrics *metrics.Recorder
	if cfg.Metrics.Textfile != "" {
		runMetrics = metrics.NewRecorder()
	}

	logger.Info("run started",
		slog.String("run_id", recorder.RunID()),
		slog.String("target", cfg.Target),
		slog.Int64("seed", cfg.Seed),
		slog.Int("population", cfg.Population.Size),
		slog.Int("workers", scorer.Workers()),
	)

	res := &runResult{RunID: recorder.RunID()}
	start := time.Now()

	for gen := 1; gen <= cfg.GA.MaxGenerations; gen++ {
		if ctx.Err() != nil {
			res.Stopped = true
			break
		}

		stepStart := time.Now()
		report, err := breeder.Advance(ctx, pop, target, resolver.Next(rng), rng)
		if err != nil {
			if ctx.Err() != nil {
				res.Stopped = true
				break
			}
			return nil, err
		}
		if runMetrics != nil {
			runMetrics.Observe(report, time.Since(stepStart))
		}
		if gen%cfg.Logging.Every == 0 || gen == 1 {
			if err := recorder.LogGeneration(report); err != nil {
				logger.Warn("failed to record generation", slog.Any("error", err))
			}
		}
		res.Generations = pop.Generation

		// Check the new generation against the target
		scores, err := scorer.Score(ctx, pop, target, stopMetric)
		if err != nil {
			if ctx.Err() != nil {
				res.Stopped = true
				break
			}
			return nil, err
		}
		champion, best := pop.Best(scores)
		if champion == nil {
			continue
		}
		res.Champion = champion.String()
		res.Score = scores[best]
		if res.Score == 0 {
			res.Found = true
			break
		}
	}
	res.Elapsed = time.Since(start)

	logger.Info("run finished",
		slog.String("run_id", res.RunID),
		slog.Int("generations", res.Generations),
		slog.Bool("found", res.Found),
		slog.Bool("stopped", res.Stopped),
		slog.String("champion", res.Champion),
		slog.Duration("elapsed", res.Elapsed),
	)

	if cfg.Logging.Champion != "" {
		c := logging.Champion{
			Generation: res.Generations,
			Score:      res.Score,
			Metric:     stopMetric.String(),
			Genome:     res.Champion,
		}
		if err := logging.SaveChampion(cfg.Logging.Champion, c); err != nil {
			logger.Warn("failed to save champion", slog.Any("error", err))
		}
	}
	if runMetrics != nil {
		if err := runMetrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("failed to write metrics", slog.Any("error", err))
		}
	}
	return res, nil
}

func printResult(w io.Writer, cfg *config.Config, res *runResult) error {
	status := "not found"
	switch {
	case res.Found:
		status = "found"
	case res.Stopped:
		status = "stopped"
	}
	_, err := fmt.Fprintf(w, "Run %s: %s after %d generations (%s)\nTarget:   %q\nChampion: %q (%s %.6f)\n",
		res.RunID, status, res.Generations, res.Elapsed.Round(time.Millisecond),
		cfg.Target, res.Champion, cfg.StopMetric, res.Score)
	return err
}
