package repository

// Store keys. Each holds one JSON document; the names match data written by
// earlier versions of the app and must not change.
const (
	KeyNotifications  = "notifications"
	KeyPreferences    = "notificationPreferences"
	KeyJobs           = "recruiter_jobs"
	KeyApplicants     = "recruiter_applicants"
	KeyEmailTemplates = "recruiter_email_templates"
	KeyInterviews     = "recruiter_interviews"
)
