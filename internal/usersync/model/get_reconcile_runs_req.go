package model

import "strings"

type GetReconcileRunsReq struct {
	Operation string `query:"operation" validate:"omitempty,oneof=missing_email_report update_emails"`

	// Pagination
	Page int `query:"page" validate:"omitempty,min=1"`
	Size int `query:"size" validate:"omitempty,min=1,max=1000"`
}

func (r *GetReconcileRunsReq) Validate() error {
	r.Operation = strings.ToLower(strings.TrimSpace(r.Operation))

	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = 100
	}
	if r.Size > 1000 {
		r.Size = 1000
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// GetReconcileRunsResp is one page of run history, newest first.
type GetReconcileRunsResp struct {
	Data       []*ReconcileRun `json:"data"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalCount int64           `json:"total_count"`
}
