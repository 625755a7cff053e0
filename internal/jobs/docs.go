// Package jobs provides scheduled background tasks for the workshop.
//
// Jobs are built on github.com/robfig/cron/v3 with seconds-precision
// schedules. A tick is skipped while the previous run of the same job is
// still going.
//
// # Available Jobs
//
//  1. PendingOrderAssignmentJob - assigns new orders that still wait for a worker
//  2. TransitionStatsJob - logs the order status change counters
//
// # Usage
//
//	jobManager := jobs.NewJobManager(assignPendingHandler, metrics, jobs.Schedules{}, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The assignment job treats "no pending orders" and "every worker is busy" as
// normal outcomes and ends the tick quietly. Persistence errors are logged and
// the next tick tries again.
package jobs
