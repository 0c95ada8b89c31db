// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the order lifecycle.
//
// # Available Jobs
//
// 1. StaleOrderJob - Runs every ten minutes and flags pending orders nobody
// confirmed within the freshness window, so operators can chase them.
// 2. DailySummaryJob - Runs every morning and logs the previous day's order
// counts and delivered revenue.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(listOrdersHandler, statsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs only read data, so every failure is logged and the next tick
// simply tries again. Failed job starts will stop any already running jobs.
package jobs
