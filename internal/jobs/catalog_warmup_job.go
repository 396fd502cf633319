package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultCatalogWarmupSchedule refreshes the catalog cache every five minutes.
const DefaultCatalogWarmupSchedule = "0 */5 * * * *"

const warmupTimeout = 30 * time.Second

// CatalogWarmer reloads a product catalog cache.
type CatalogWarmer interface {
	Warm(ctx context.Context) (int, error)
}

// CatalogWarmupJob keeps the product catalog cache filled so that order forms are
// not served from the database.
type CatalogWarmupJob struct {
	warmer   CatalogWarmer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCatalogWarmupJob creates a warm-up job. The schedule is a cron expression with
// a seconds field; empty means DefaultCatalogWarmupSchedule.
func NewCatalogWarmupJob(warmer CatalogWarmer, schedule string, logger *slog.Logger) *CatalogWarmupJob {
	if schedule == "" {
		schedule = DefaultCatalogWarmupSchedule
	}
	return &CatalogWarmupJob{
		warmer:   warmer,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "catalog_warmup_job"),
	}
}

// Start warms the cache once in the background and then on every tick.
func (j *CatalogWarmupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	go j.run()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog warm-up job started", "schedule", j.schedule)
	return nil
}

// Stop stops the schedule and waits for a running warm-up to finish.
func (j *CatalogWarmupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog warm-up job stopped")
}

func (j *CatalogWarmupJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), warmupTimeout)
	defer cancel()

	count, err := j.warmer.Warm(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Catalog warm-up failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Catalog cache warmed", "products", count)
}
