package model

import "time"

// ReconcileRun is an append-only audit record of one report or reconciliation invocation.
type ReconcileRun struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Operation string `bson:"operation" json:"operation"` // missing_email_report, update_emails

	// Counters
	TotalUsers   int `bson:"total_users" json:"total_users"`
	MissingEmail int `bson:"missing_email" json:"missing_email"`
	UpdatedCount int `bson:"updated_count" json:"updated_count"`
	ErrorCount   int `bson:"error_count" json:"error_count"`

	// Details
	UpdatedUserIDs []int      `bson:"updated_user_ids,omitempty" json:"updated_user_ids,omitempty"`
	Errors         []ErrorLog `bson:"errors,omitempty" json:"errors,omitempty"`
	ReportFile     string     `bson:"report_file,omitempty" json:"report_file,omitempty"`

	StartedAt time.Time `bson:"started_at" json:"started_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
