package config

import "log"

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs holds statically configured jobs. Jobs needing DB access register
// through cron.Register from their own package init (see cron/jobs).
var CronJobs = map[string]CronJob{
	"heartbeat": {Schedule: "@every 15m", Job: func(args ...string) {
		log.Println("cron heartbeat")
	}},
	// Add more jobs here
}
