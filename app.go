package main

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/api/bridge"
	jobsusecase "github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/jobs"
)

// App struct
type App struct {
	ctx    context.Context
	log    *zap.Logger
	runner *jobsusecase.Runner
	bridge *bridge.Server
}

// NewApp creates a new App application struct
func NewApp(log *zap.Logger) *App {
	return &App{log: log}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	if a.runner != nil {
		a.runner.SetEmitter(wailsEmitter{ctx: a.ctx})
	}
	if a.bridge != nil {
		go func() {
			if err := a.bridge.Start(); err != nil {
				a.log.Error("bridge stopped", zap.Error(err))
			}
		}()
	}
}

func (a *App) shutdown(ctx context.Context) {
	if a.bridge != nil {
		_ = a.bridge.Shutdown(ctx)
	}
	_ = a.log.Sync()
}

// SetRunner allows main() to provide the job runner so we can wire event emitter on startup
func (a *App) SetRunner(r *jobsusecase.Runner) {
	a.runner = r
}

// SetBridge allows main() to provide the plugin bridge so startup can launch it
func (a *App) SetBridge(b *bridge.Server) {
	a.bridge = b
}

type wailsEmitter struct{ ctx context.Context }

func (w wailsEmitter) Emit(name string, payload any) {
	runtime.EventsEmit(w.ctx, name, payload)
}
