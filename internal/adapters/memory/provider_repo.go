package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
)

var ErrNotFound = errors.New("not found")

// ProviderRepo keeps LLM provider configurations for the session.
type ProviderRepo struct {
	mu   sync.RWMutex
	byID map[string]*domain.Provider
}

func NewProviderRepo() *ProviderRepo {
	return &ProviderRepo{byID: map[string]*domain.Provider{}}
}

func (r *ProviderRepo) Create(ctx context.Context, p *domain.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *ProviderRepo) Update(ctx context.Context, p *domain.Provider) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.byID[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *ProviderRepo) Get(ctx context.Context, id string) (*domain.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *ProviderRepo) List(ctx context.Context) ([]*domain.Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Provider, 0, len(r.byID))
	for _, p := range r.byID {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *ProviderRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
	return nil
}
