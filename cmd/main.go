package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gridironlab/coachnet/internal/adapters/csvio"
	app "github.com/gridironlab/coachnet/internal/app"
	"github.com/gridironlab/coachnet/internal/config"
	"github.com/gridironlab/coachnet/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := app.New(
		app.WithLogger(log),
		app.WithStaffFiles(cfg.StaffFiles),
		app.WithClosenessFile(cfg.ClosenessFile),
		app.WithPerformanceFiles(cfg.PerformanceFiles),
		app.WithRecencyCutoff(cfg.RecencyCutoff),
		app.WithMaxDegree(cfg.MaxDegree),
		app.WithPromotionStep(cfg.PromotionStep),
		app.WithTopPerPosition(cfg.TopPerPosition),
		app.WithClusterCount(cfg.ClusterCount),
		app.WithWorkerCount(cfg.WorkerCount),
	)
	if err := svc.Build(ctx); err != nil {
		log.Error(ctx, "pipeline build failed", logger.Error(err))
		return 1
	}

	targets := cfg.Targets
	if len(targets) == 0 {
		targets = svc.HeadCoachCandidates()
		log.Info(ctx, "no targets configured; comparing all head-coach candidates",
			logger.Int("targets", len(targets)),
		)
	}

	recs, err := svc.RecommendAll(ctx, targets)
	if err != nil {
		// Failed targets are already excluded; the rest of the batch
		// proceeds.
		log.Warn(ctx, "some recommendation runs failed", logger.Error(err))
	}
	if len(recs) == 0 {
		log.Error(ctx, "no recommendation runs succeeded")
		return 1
	}

	summaries, matrix := svc.Aggregate(ctx, recs)
	clusters := svc.Cluster(ctx, recs)

	w := csvio.NewWriter(cfg.OutputDir)
	if err := w.Recommendations(ctx, recs); err != nil {
		log.Error(ctx, "failed writing recommendations", logger.Error(err))
		return 1
	}
	if err := w.Ranking(ctx, summaries); err != nil {
		log.Error(ctx, "failed writing ranking", logger.Error(err))
		return 1
	}
	if err := w.Matrix(ctx, matrix); err != nil {
		log.Error(ctx, "failed writing matrix", logger.Error(err))
		return 1
	}
	if err := w.Clusters(ctx, clusters); err != nil {
		log.Error(ctx, "failed writing clusters", logger.Error(err))
		return 1
	}

	log.Info(ctx, "batch complete",
		logger.Int("targets", len(recs)),
		logger.String("output_dir", cfg.OutputDir),
	)
	return 0
}
