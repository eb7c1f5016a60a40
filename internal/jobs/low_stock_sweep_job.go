package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/adapters/out/postgres/stockrepo"

	"github.com/robfig/cron/v3"
)

// lowStockSchedule runs the sweep every ten minutes.
const lowStockSchedule = "0 */10 * * * *"

// LowStockSource provides the stock rows currently below a threshold.
type LowStockSource interface {
	Below(ctx context.Context, threshold int) ([]stockrepo.LowStockRow, error)
}

// LowStockSweepJob periodically scans stock levels and logs products
// that dropped below the configured threshold, so operators see supply
// problems before the next order list is opened.
type LowStockSweepJob struct {
	source    LowStockSource
	threshold int
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockSweepJob creates the periodic low-stock sweep.
func NewLowStockSweepJob(source LowStockSource, threshold int, logger *slog.Logger) *LowStockSweepJob {
	return &LowStockSweepJob{
		source:    source,
		threshold: threshold,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "low_stock_sweep_job"),
	}
}

// Start begins the sweep on its schedule.
func (j *LowStockSweepJob) Start() error {
	_, err := j.cron.AddFunc(lowStockSchedule, func() {
		j.sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock sweep job started (running every 10 minutes)")
	return nil
}

// Stop stops the sweep job.
func (j *LowStockSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock sweep job stopped")
}

func (j *LowStockSweepJob) sweep(ctx context.Context) {
	rows, err := j.source.Below(ctx, j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock sweep failed", "error", err)
		return
	}

	if len(rows) == 0 {
		return
	}

	for _, row := range rows {
		j.logger.WarnContext(ctx, "Product stock below threshold",
			"product_id", row.Key.ProductID.String(),
			"variant_id", row.Key.VariantID.String(),
			"quantity", row.Quantity,
			"threshold", j.threshold,
		)
	}

	j.logger.InfoContext(ctx, "Low stock sweep completed", "low_rows", len(rows))
}
