package app

import (
	"context"
	"time"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/jobs"
)

type JobsAPI struct {
	r    *jobs.Runner
	repo ports.JobRepository
}

func NewJobsAPI(r *jobs.Runner, repo ports.JobRepository) *JobsAPI {
	return &JobsAPI{r: r, repo: repo}
}

type StartTranslateLanguageRequest struct {
	ProviderID string `json:"providerId"`
	TargetLang string `json:"targetLang"`
	Model      string `json:"model"`
}

type StartJobResponse struct {
	JobID string `json:"jobId"`
}

func (a *JobsAPI) StartTranslateLanguage(req StartTranslateLanguageRequest) (StartJobResponse, error) {
	ctx := context.Background()
	jid, err := a.r.StartTranslateLanguage(ctx, req.ProviderID, jobs.TranslateLanguageParams{TargetLang: req.TargetLang, Model: req.Model})
	if err != nil {
		return StartJobResponse{}, err
	}
	return StartJobResponse{JobID: jid}, nil
}

type StartTranslateFieldsRequest struct {
	ProviderID  string   `json:"providerId"`
	FieldIDs    []string `json:"fieldIds"`
	TargetLangs []string `json:"targetLangs"`
	Model       string   `json:"model"`
}

func (a *JobsAPI) StartTranslateFields(req StartTranslateFieldsRequest) (StartJobResponse, error) {
	ctx := context.Background()
	jid, err := a.r.StartTranslateFields(ctx, req.ProviderID, jobs.TranslateFieldsParams{FieldIDs: req.FieldIDs, TargetLangs: req.TargetLangs, Model: req.Model})
	if err != nil {
		return StartJobResponse{}, err
	}
	return StartJobResponse{JobID: jid}, nil
}

func (a *JobsAPI) Cancel(jobID string) bool { return a.r.Cancel(jobID) }

type JobDTO struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
	Total    int    `json:"total"`
}

func (a *JobsAPI) Get(jobID string) (*JobDTO, error) {
	ctx := context.Background()
	j, err := a.repo.Get(ctx, jobID)
	if err != nil || j == nil {
		return nil, err
	}
	return &JobDTO{ID: j.ID, Type: j.Type, Status: j.Status, Progress: j.Progress, Total: j.Total}, nil
}

func (a *JobsAPI) List(limit int) ([]*JobDTO, error) {
	ctx := context.Background()
	js, err := a.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*JobDTO, 0, len(js))
	for _, j := range js {
		out = append(out, &JobDTO{ID: j.ID, Type: j.Type, Status: j.Status, Progress: j.Progress, Total: j.Total})
	}
	return out, nil
}

type JobItemDTO struct {
	ID           string `json:"id"`
	FieldID      string `json:"fieldId"`
	LanguageCode string `json:"languageCode"`
	VariantID    string `json:"variantId"`
	Status       string `json:"status"`
	Error        string `json:"error"`
}

func (a *JobsAPI) Items(jobID string) ([]*JobItemDTO, error) {
	ctx := context.Background()
	items, err := a.repo.ListItems(ctx, jobID)
	if err != nil {
		return nil, err
	}
	out := make([]*JobItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, &JobItemDTO{ID: it.ID, FieldID: it.FieldID, LanguageCode: it.LanguageCode, VariantID: it.VariantID, Status: it.Status, Error: it.Error})
	}
	return out, nil
}

type JobLogDTO struct {
	ID      string `json:"id"`
	Time    string `json:"time"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

func (a *JobsAPI) Logs(jobID string, limit int) ([]*JobLogDTO, error) {
	ctx := context.Background()
	logs, err := a.repo.ListLogs(ctx, jobID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*JobLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, &JobLogDTO{ID: l.ID, Time: l.Time.Format(time.RFC3339), Level: l.Level, Message: l.Message})
	}
	return out, nil
}

func (a *JobsAPI) Delete(jobID string) (bool, error) {
	ctx := context.Background()
	return true, a.repo.Delete(ctx, jobID)
}
