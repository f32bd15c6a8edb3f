package repository

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"usersync/internal/usersync/model"
)

// MemoryRunRepository keeps run history in process memory when no MongoDB is configured.
type MemoryRunRepository struct {
	mu     sync.RWMutex
	nextID int64
	runs   []*model.ReconcileRun
}

var _ RunRepository = (*MemoryRunRepository)(nil)

func NewMemoryRunRepository() *MemoryRunRepository {
	return &MemoryRunRepository{nextID: 1}
}

func (r *MemoryRunRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

func (r *MemoryRunRepository) CreateRun(ctx context.Context, run *model.ReconcileRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	if run.ID == "" {
		run.ID = strconv.FormatInt(r.nextID, 10)
		r.nextID++
	}

	runCopy := *run
	r.runs = append(r.runs, &runCopy)
	return nil
}

func (r *MemoryRunRepository) FindRuns(ctx context.Context, req model.GetReconcileRunsReq) ([]*model.ReconcileRun, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*model.ReconcileRun, 0, len(r.runs))
	for i := len(r.runs) - 1; i >= 0; i-- {
		run := r.runs[i]
		if req.Operation != "" && run.Operation != req.Operation {
			continue
		}
		matched = append(matched, run)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))

	start := (req.Page - 1) * req.Size
	if start < 0 || start >= len(matched) {
		return []*model.ReconcileRun{}, total, nil
	}
	end := start + req.Size
	if end > len(matched) {
		end = len(matched)
	}

	result := make([]*model.ReconcileRun, 0, end-start)
	for _, run := range matched[start:end] {
		runCopy := *run
		result = append(result, &runCopy)
	}
	return result, total, nil
}
