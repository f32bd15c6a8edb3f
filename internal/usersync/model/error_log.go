package model

// ErrorLog records why a user could not be given an email during a reconciliation run.
// AttemptedEmail is null when the failure happened before an address was derived.
type ErrorLog struct {
	UserID         int     `json:"userId" bson:"user_id"`
	AttemptedEmail *string `json:"attemptedEmail" bson:"attempted_email,omitempty"`
	Error          string  `json:"error" bson:"error"`
}
