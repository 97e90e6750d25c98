package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
)

// TemplateRepo stores prompt template overrides keyed by (type, role).
type TemplateRepo struct {
	mu    sync.RWMutex
	byKey map[string]*domain.Template
}

func NewTemplateRepo() *TemplateRepo {
	return &TemplateRepo{byKey: map[string]*domain.Template{}}
}

func key(typ, role string) string { return typ + "/" + role }

// GetEffective returns the stored override for (type, role), or nil when the
// caller should fall back to the built-in template.
func (r *TemplateRepo) GetEffective(ctx context.Context, typ, role string) (*domain.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byKey[key(typ, role)]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *TemplateRepo) Upsert(ctx context.Context, t *domain.Template) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.UpdatedAt = time.Now()
	cp := *t
	r.byKey[key(t.Type, t.Role)] = &cp
	return nil
}
