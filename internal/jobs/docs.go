// Package jobs provides scheduled background tasks for the delivery estimation system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. ReferenceDataAuditJob - Re-checks the shipped reference tables for duplicate
// prefixes and one-way border rows, and reports findings through the structured log.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(directory, borders, "0 3 * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Audit findings are expected conditions, logged at warn level. The job itself
// only fails to start on an invalid cron spec.
package jobs
