package config

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// Built-in jobs live in cron/jobs and self-register via cron.Register;
// CronJobs is the config-level hook for ad hoc additions.
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
