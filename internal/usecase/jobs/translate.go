package jobs

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/session"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/translator"
)

type Deps struct {
	Jobs      ports.JobRepository
	Providers ports.ProviderRepository
	Session   *session.Session
}

// Runner executes background translation jobs against the live session.
type Runner struct {
	d      Deps
	trans  *translator.Service
	mu     sync.Mutex
	active map[string]context.CancelFunc
	em     EventEmitter
}

func NewRunner(d Deps, trans *translator.Service) *Runner {
	return &Runner{d: d, trans: trans, active: map[string]context.CancelFunc{}}
}

type EventEmitter interface {
	Emit(name string, payload any)
}

func (r *Runner) SetEmitter(em EventEmitter) { r.em = em }

type TranslateLanguageParams struct {
	TargetLang string `json:"targetLang"`
	Model      string `json:"model"`
}

type TranslateFieldsParams struct {
	FieldIDs    []string `json:"fieldIds"`
	TargetLangs []string `json:"targetLangs"`
	Model       string   `json:"model"`
}

// workItem is one field/language/variant cell a job still has to fill.
type workItem struct {
	fieldID   string
	lang      string
	variantID string
	path      string
}

// StartTranslateLanguage queues a job that fills every untranslated field for
// one target language. Cells that would inherit a base-variant translation are
// not translated separately.
func (r *Runner) StartTranslateLanguage(ctx context.Context, providerID string, p TranslateLanguageParams) (string, error) {
	if p.Model == "" {
		if prov, err := r.d.Providers.Get(ctx, providerID); err == nil && prov != nil {
			p.Model = prov.Model
		}
	}
	items := r.pendingItems(nil, []string{p.TargetLang})
	job := &domain.Job{Type: "translate_language", Status: "queued", ProviderID: providerID, Progress: 0, Total: len(items)}
	id, err := r.d.Jobs.Create(ctx, job)
	if err != nil {
		return "", err
	}
	_ = r.d.Jobs.UpdateProgress(ctx, id, 0, len(items), "running")
	if r.em != nil {
		r.em.Emit("job.started", map[string]any{"jobId": id, "total": len(items), "model": p.Model, "providerId": providerID})
	}
	r.log(ctx, id, "info", fmt.Sprintf("job started: lang=%s model=%s cells=%d", p.TargetLang, p.Model, len(items)))
	cctx, cancel := context.WithCancel(context.Background())
	r.mu.Lock()
	r.active[id] = cancel
	r.mu.Unlock()
	go r.run(cctx, id, providerID, p.Model, items)
	return id, nil
}

// StartTranslateFields queues a job for specific fields across one or more
// target languages.
func (r *Runner) StartTranslateFields(ctx context.Context, providerID string, p TranslateFieldsParams) (string, error) {
	if p.Model == "" {
		if prov, err := r.d.Providers.Get(ctx, providerID); err == nil && prov != nil {
			p.Model = prov.Model
		}
	}
	items := r.pendingItems(p.FieldIDs, p.TargetLangs)
	job := &domain.Job{Type: "translate_fields", Status: "queued", ProviderID: providerID, Progress: 0, Total: len(items)}
	id, err := r.d.Jobs.Create(ctx, job)
	if err != nil {
		return "", err
	}
	_ = r.d.Jobs.UpdateProgress(ctx, id, 0, len(items), "running")
	if r.em != nil {
		r.em.Emit("job.started", map[string]any{"jobId": id, "total": len(items), "model": p.Model, "providerId": providerID})
	}
	r.log(ctx, id, "info", fmt.Sprintf("job started: fields=%d langs=%d model=%s cells=%d", len(p.FieldIDs), len(p.TargetLangs), p.Model, len(items)))
	cctx, cancel := context.WithCancel(context.Background())
	r.mu.Lock()
	r.active[id] = cancel
	r.mu.Unlock()
	go r.run(cctx, id, providerID, p.Model, items)
	return id, nil
}

// pendingItems walks the project and returns the cells still needing a
// translation. Pass fieldIDs=nil to consider every field.
func (r *Runner) pendingItems(fieldIDs []string, langs []string) []workItem {
	project := r.d.Session.Project()
	base := project.BaseVariant()
	var wanted map[string]struct{}
	if fieldIDs != nil {
		wanted = make(map[string]struct{}, len(fieldIDs))
		for _, id := range fieldIDs {
			wanted[id] = struct{}{}
		}
	}
	var items []workItem
	for _, del := range project.Deliverables {
		for _, asset := range del.Assets {
			for _, f := range asset.Fields {
				if wanted != nil {
					if _, ok := wanted[f.ID]; !ok {
						continue
					}
				}
				for _, lang := range langs {
					if lang == project.SourceLanguage {
						continue
					}
					for _, v := range project.SkuVariants {
						src := r.d.Session.EffectiveTranslation(f.ID, project.SourceLanguage, v.ID)
						if strings.TrimSpace(src.Value) == "" {
							continue
						}
						// Non-base variants without their own source copy
						// inherit the base translation instead.
						if src.InheritedFrom != "" && (base == nil || v.ID != base.ID) {
							continue
						}
						tgt := r.d.Session.EffectiveTranslation(f.ID, lang, v.ID)
						if tgt.Value != "" && tgt.InheritedFrom == "" {
							continue
						}
						path, _ := r.d.Session.VariablePath(f.ID)
						items = append(items, workItem{fieldID: f.ID, lang: lang, variantID: v.ID, path: path})
					}
				}
			}
		}
	}
	return items
}

func (r *Runner) run(ctx context.Context, jobID, providerID, model string, items []workItem) {
	total := len(items)
	done := 0
	for _, it := range items {
		select {
		case <-ctx.Done():
			_ = r.d.Jobs.UpdateProgress(ctx, jobID, done, total, "canceled")
			if r.em != nil {
				r.em.Emit("job.progress", map[string]any{"jobId": jobID, "done": done, "total": total, "status": "canceled"})
			}
			return
		default:
		}
		item := &domain.JobItem{JobID: jobID, FieldID: it.fieldID, LanguageCode: it.lang, VariantID: it.variantID, Status: "running"}
		itemID, _ := r.d.Jobs.AddItem(ctx, item)
		if r.em != nil {
			r.em.Emit("job.item.start", map[string]any{"jobId": jobID, "fieldId": it.fieldID, "path": it.path, "lang": it.lang, "model": model})
		}
		r.log(ctx, jobID, "info", fmt.Sprintf("translate start: path=%s lang=%s model=%s", it.path, it.lang, model))
		ictx, cancel := context.WithTimeout(ctx, 60*time.Second)
		txt, err := r.trans.TranslateField(ictx, translator.TranslateArgs{
			ProviderID: providerID,
			FieldID:    it.fieldID,
			TargetLang: it.lang,
			VariantID:  it.variantID,
			Model:      model,
		})
		cancel()
		if err != nil {
			_ = r.d.Jobs.UpdateItem(ctx, itemID, "failed", err.Error())
			r.log(ctx, jobID, "error", fmt.Sprintf("%s -> %s: %v", it.path, it.lang, err))
			if r.em != nil {
				r.em.Emit("job.item.done", map[string]any{"jobId": jobID, "fieldId": it.fieldID, "path": it.path, "lang": it.lang, "error": err.Error()})
			}
		} else {
			_ = r.d.Jobs.UpdateItem(ctx, itemID, "done", "")
			r.log(ctx, jobID, "info", fmt.Sprintf("translate done: path=%s lang=%s len=%d", it.path, it.lang, len(txt)))
			if r.em != nil {
				r.em.Emit("job.item.done", map[string]any{"jobId": jobID, "fieldId": it.fieldID, "path": it.path, "lang": it.lang, "text": txt})
			}
		}
		done++
		_ = r.d.Jobs.UpdateProgress(ctx, jobID, done, total, "running")
		if r.em != nil {
			r.em.Emit("job.progress", map[string]any{"jobId": jobID, "done": done, "total": total, "status": "running"})
		}
	}
	_ = r.d.Jobs.UpdateProgress(ctx, jobID, done, total, "done")
	if r.em != nil {
		r.em.Emit("job.progress", map[string]any{"jobId": jobID, "done": done, "total": total, "status": "done"})
	}
}

func (r *Runner) log(ctx context.Context, jobID, level, message string) {
	_ = r.d.Jobs.AddLog(ctx, &domain.JobLog{JobID: jobID, Level: level, Message: message})
	if r.em != nil {
		r.em.Emit("job.log", map[string]any{"jobId": jobID, "level": level, "message": message, "ts": time.Now().UTC().Format(time.RFC3339)})
	}
}

// Cancel stops a running job. Returns false when the job is not active.
func (r *Runner) Cancel(jobID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cancel, ok := r.active[jobID]; ok {
		cancel()
		delete(r.active, jobID)
		return true
	}
	return false
}
