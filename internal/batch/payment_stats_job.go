package batch

import (
	"context"
	"emi-payments/internal/domain/payment"
	"emi-payments/internal/infrastructure/monitoring"
	"fmt"
	"log/slog"
	"time"
)

const statsWindow = 24 * time.Hour

type StatsReader interface {
	SummarizeSince(ctx context.Context, since time.Time) (payment.Summary, error)
}

// PaymentStatsJob refreshes the trailing-window payment gauges. It only reads.
type PaymentStatsJob struct {
	stats  StatsReader
	logger *slog.Logger
	now    func() time.Time
}

func NewPaymentStatsJob(stats StatsReader, logger *slog.Logger) *PaymentStatsJob {
	if stats == nil || logger == nil {
		panic("PaymentStatsJob dependencies cannot be nil")
	}
	return &PaymentStatsJob{
		stats:  stats,
		logger: logger.With("job", "PaymentStats"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (j *PaymentStatsJob) Run(ctx context.Context) error {
	startTime := time.Now()
	since := j.now().Add(-statsWindow)

	j.logger.DebugContext(ctx, "Starting payment statistics job.", slog.Time("since", since))

	summary, err := j.stats.SummarizeSince(ctx, since)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to summarize payments, gauges left unchanged.", slog.Any("error", err))
		return fmt.Errorf("cannot refresh payment statistics: %w", err)
	}

	volume, _ := summary.Total.Float64()
	monitoring.SetPaymentWindowStats(summary.Count, volume)

	j.logger.InfoContext(ctx, "Payment statistics job finished.",
		slog.Duration("duration", time.Since(startTime)),
		slog.Int64("payments", summary.Count),
		slog.String("volume", summary.Total.StringFixed(2)))
	return nil
}
