// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic monitoring of the order pipeline.
//
// # Available Jobs
//
// 1. PendingOrdersJob - periodically reports the approval backlog (orders still Pending)
// 2. StalledOrdersJob - periodically reports orders sitting with the supplier (InProcess, Shipped)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getOrdersByStatusHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The jobs are observation only: failures are logged and the next tick tries
// again. Failed job starts will stop any already running jobs.
package jobs
