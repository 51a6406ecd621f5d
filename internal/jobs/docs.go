// Package jobs provides scheduled background tasks for the GrubDash service.
//
// Jobs use github.com/robfig/cron/v3 with the seconds field enabled, so a
// schedule such as "0 * * * * *" runs at the start of every minute.
//
// # Available Jobs
//
// OrderBacklogJob reads every order through the list-orders query and logs
// how many orders sit in each status. It only reads.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(listOrdersHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// An empty schedule disables the job.
package jobs
