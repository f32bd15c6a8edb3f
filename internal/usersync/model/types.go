package model

// ErrorResponse for consistent error handling
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (e *ErrorDetail) Error() string {
	return e.Message
}

// UpdateEmailsResponse is the body of POST /users/update-emails
type UpdateEmailsResponse struct {
	UpdatedUsers []User     `json:"updated_users"`
	Errors       []ErrorLog `json:"errors"`
}

// NewUpdateEmailsResponse never leaves either list nil so both render as JSON arrays.
func NewUpdateEmailsResponse(updated []User, errs []ErrorLog) UpdateEmailsResponse {
	if updated == nil {
		updated = []User{}
	}
	if errs == nil {
		errs = []ErrorLog{}
	}
	return UpdateEmailsResponse{UpdatedUsers: updated, Errors: errs}
}
