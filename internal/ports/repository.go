package ports

import (
	"context"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
)

type ProviderRepository interface {
	Create(ctx context.Context, p *domain.Provider) error
	Update(ctx context.Context, p *domain.Provider) error
	Get(ctx context.Context, id string) (*domain.Provider, error)
	List(ctx context.Context) ([]*domain.Provider, error)
	Delete(ctx context.Context, id string) error
}

type TemplateRepository interface {
	GetEffective(ctx context.Context, typ, role string) (*domain.Template, error)
	Upsert(ctx context.Context, t *domain.Template) error
}

type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) (string, error)
	UpdateProgress(ctx context.Context, jobID string, done, total int, status string) error
	AddItem(ctx context.Context, ji *domain.JobItem) (string, error)
	UpdateItem(ctx context.Context, itemID string, status, errMsg string) error
	AddLog(ctx context.Context, jl *domain.JobLog) error
	Get(ctx context.Context, jobID string) (*domain.Job, error)
	List(ctx context.Context, limit int) ([]*domain.Job, error)
	ListItems(ctx context.Context, jobID string) ([]*domain.JobItem, error)
	ListLogs(ctx context.Context, jobID string, limit int) ([]*domain.JobLog, error)
	Delete(ctx context.Context, jobID string) error
}
