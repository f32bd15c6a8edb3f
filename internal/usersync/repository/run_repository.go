package repository

import (
	"context"

	"usersync/internal/usersync/model"
)

// RunRepository defines the interface for reconcile run history (append-only)
type RunRepository interface {
	// CreateRun stores a new run record
	CreateRun(ctx context.Context, run *model.ReconcileRun) error
	// FindRuns returns one page of runs, newest first, plus the total count
	FindRuns(ctx context.Context, req model.GetReconcileRunsReq) ([]*model.ReconcileRun, int64, error)
	// EnsureIndexes creates indexes for efficient querying
	EnsureIndexes(ctx context.Context) error
}
