package app

import (
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/session"
)

type ProjectAPI struct {
	sess *session.Session
}

func NewProjectAPI(sess *session.Session) *ProjectAPI { return &ProjectAPI{sess: sess} }

// Get returns the current project tree.
func (a *ProjectAPI) Get() *domain.Project {
	return a.sess.Project()
}

// Load replaces the working project, reseeding placeholders and resetting
// the undo history.
func (a *ProjectAPI) Load(p *domain.Project) *domain.Project {
	a.sess.SetProject(p)
	return a.sess.Project()
}

func (a *ProjectAPI) Rename(name string) *domain.Project {
	a.sess.RenameProject(name)
	return a.sess.Project()
}

func (a *ProjectAPI) UpdateSettings(s domain.ProjectSettings) *domain.Project {
	a.sess.UpdateSettings(s)
	return a.sess.Project()
}

type Progress struct {
	Filled int `json:"filled"`
	Total  int `json:"total"`
}

func (a *ProjectAPI) Progress() Progress {
	filled, total := a.sess.Progress()
	return Progress{Filled: filled, Total: total}
}

func (a *ProjectAPI) FillSampleContent() {
	a.sess.FillSampleContent()
}

func (a *ProjectAPI) ClearAllTranslations() {
	a.sess.ClearAllTranslations()
}
