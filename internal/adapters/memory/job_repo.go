package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
)

// JobRepo tracks background jobs, their items, and their logs.
type JobRepo struct {
	mu    sync.RWMutex
	jobs  map[string]*domain.Job
	items map[string][]*domain.JobItem
	logs  map[string][]*domain.JobLog
}

func NewJobRepo() *JobRepo {
	return &JobRepo{
		jobs:  map[string]*domain.Job{},
		items: map[string][]*domain.JobItem{},
		logs:  map[string][]*domain.JobLog{},
	}
}

func (r *JobRepo) Create(ctx context.Context, j *domain.Job) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	now := time.Now()
	j.CreatedAt = now
	j.UpdatedAt = now
	cp := *j
	r.jobs[j.ID] = &cp
	return j.ID, nil
}

func (r *JobRepo) UpdateProgress(ctx context.Context, jobID string, done, total int, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return ErrNotFound
	}
	j.Progress = done
	j.Total = total
	if status != "" {
		j.Status = status
	}
	j.UpdatedAt = time.Now()
	return nil
}

func (r *JobRepo) AddItem(ctx context.Context, ji *domain.JobItem) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ji.ID == "" {
		ji.ID = uuid.NewString()
	}
	ji.UpdatedAt = time.Now()
	cp := *ji
	r.items[ji.JobID] = append(r.items[ji.JobID], &cp)
	return ji.ID, nil
}

func (r *JobRepo) UpdateItem(ctx context.Context, itemID string, status, errMsg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, items := range r.items {
		for _, it := range items {
			if it.ID == itemID {
				it.Status = status
				it.Error = errMsg
				it.UpdatedAt = time.Now()
				return nil
			}
		}
	}
	return ErrNotFound
}

func (r *JobRepo) AddLog(ctx context.Context, jl *domain.JobLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if jl.ID == "" {
		jl.ID = uuid.NewString()
	}
	if jl.Time.IsZero() {
		jl.Time = time.Now()
	}
	cp := *jl
	r.logs[jl.JobID] = append(r.logs[jl.JobID], &cp)
	return nil
}

func (r *JobRepo) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.jobs[jobID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *JobRepo) List(ctx context.Context, limit int) ([]*domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		cp := *j
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *JobRepo) ListItems(ctx context.Context, jobID string) ([]*domain.JobItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := r.items[jobID]
	out := make([]*domain.JobItem, 0, len(items))
	for _, it := range items {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *JobRepo) ListLogs(ctx context.Context, jobID string, limit int) ([]*domain.JobLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	logs := r.logs[jobID]
	out := make([]*domain.JobLog, 0, len(logs))
	for _, l := range logs {
		cp := *l
		out = append(out, &cp)
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (r *JobRepo) Delete(ctx context.Context, jobID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.jobs, jobID)
	delete(r.items, jobID)
	delete(r.logs, jobID)
	return nil
}
