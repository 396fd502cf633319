// Package jobs provides scheduled background tasks for the kitchen service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// CatalogWarmupJob reloads the redis product catalog cache on a schedule, so
// that order forms and totals rarely reach the catalog database.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cachedCatalog, "0 */5 * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field. The warm-up job
// also runs once right after it starts.
//
// # Error Handling
//
// A failed warm-up is logged and retried on the next tick; the cache then falls
// back to the database on a miss.
package jobs
