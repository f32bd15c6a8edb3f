package model

// Run operations
const (
	OperationMissingEmailReport = "missing_email_report"
	OperationUpdateEmails       = "update_emails"
)

// Report files
const (
	MissingEmailsFile     = "missing_emails.json"
	EmailUpdateErrorsFile = "email_update_errors.json"
)
