package jobs

import (
	"context"
	"log/slog"

	"workshop/internal/core/application/notifier"

	"github.com/robfig/cron/v3"
)

// DefaultStatsSchedule logs transition counters once a minute.
const DefaultStatsSchedule = "0 * * * * *"

type StatsSource interface {
	Snapshot() notifier.MetricsSnapshot
}

// TransitionStatsJob periodically logs the status change counters collected
// by the metrics listener. Nothing is logged while the counters stand still.
type TransitionStatsJob struct {
	stats    StatsSource
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
	last     notifier.MetricsSnapshot
}

func NewTransitionStatsJob(stats StatsSource, schedule string, logger *slog.Logger) *TransitionStatsJob {
	if schedule == "" {
		schedule = DefaultStatsSchedule
	}
	return &TransitionStatsJob{
		stats:    stats,
		schedule: schedule,
		cron:     newCron(),
		logger:   logger.With("component", "transition_stats_job"),
	}
}

func (j *TransitionStatsJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Transition stats job started", "schedule", j.schedule)
	return nil
}

// RunOnce logs the counters if they changed since the previous run and
// reports whether it did. It must not be called concurrently.
func (j *TransitionStatsJob) RunOnce(ctx context.Context) bool {
	s := j.stats.Snapshot()
	if s == j.last {
		return false
	}
	j.last = s

	j.logger.InfoContext(ctx, "Order status changes",
		slog.Int64("total", s.Total),
		slog.Int64("in_progress", s.InProgress),
		slog.Int64("completed", s.Completed),
		slog.Int64("cancelled", s.Cancelled),
		slog.Int64("other", s.Other),
	)
	return true
}

func (j *TransitionStatsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Transition stats job stopped")
}
