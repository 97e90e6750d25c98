package main

import (
	"embed"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"go.uber.org/zap"

	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/figma"
	llmfactory "github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/llm/factory"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/memory"
	promptrenderer "github.com/michael-ottmar/global-retail-copy-accelerator/internal/adapters/prompt"
	apiapp "github.com/michael-ottmar/global-retail-copy-accelerator/internal/api/app"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/api/bridge"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/config"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/domain"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/ports"
	exporterusecase "github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/exporter"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/importer"
	jobsusecase "github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/jobs"
	"github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/session"
	translatorusecase "github.com/michael-ottmar/global-retail-copy-accelerator/internal/usecase/translator"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		println("Config Error:", err.Error())
		return
	}
	log := newLogger(cfg.LogLevel)

	// Create an instance of the app structure
	app := NewApp(log)

	// In-memory repositories
	providerRepo := memory.NewProviderRepo()
	templateRepo := memory.NewTemplateRepo()
	jobRepo := memory.NewJobRepo()

	// Editing session, seeded with the sample project
	sess := session.New(domain.SampleProject(uuid.NewString, time.Now()))

	// Design source and importer service
	figmaClient := figma.New(cfg.FigmaURL, cfg.FigmaToken, log)
	importSvc := importer.New(sess)

	// Prompt renderer and translator service
	pr := promptrenderer.New(templateRepo)
	transSvc := translatorusecase.New(translatorusecase.Deps{
		Providers: providerRepo,
		Prompt:    pr,
		Session:   sess,
		BuildProvider: func(p *domain.Provider) (ports.Provider, error) {
			prov, ok := llmfactory.FromProvider(p)
			if !ok {
				return nil, fmt.Errorf("unsupported provider: %s", p.Type)
			}
			return prov, nil
		},
	})

	// Job runner
	runner := jobsusecase.NewRunner(jobsusecase.Deps{Jobs: jobRepo, Providers: providerRepo, Session: sess}, transSvc)
	app.SetRunner(runner)

	// Exporters and service
	expReg := apiapp.NewDefaultExporterRegistry()
	expSvc := exporterusecase.New(sess, expReg)

	// Plugin bridge
	app.SetBridge(bridge.New(cfg.BridgeAddr, importSvc, figmaClient, cfg.FigmaToken, log))

	// API bindings
	projectAPI := apiapp.NewProjectAPI(sess)
	structureAPI := apiapp.NewStructureAPI(sess)
	translationAPI := apiapp.NewTranslationAPI(sess)
	languageAPI := apiapp.NewLanguageAPI(sess)
	variantAPI := apiapp.NewVariantAPI(sess)
	importAPI := apiapp.NewImportAPI(importSvc, figmaClient)
	providerAPI := apiapp.NewProviderAPI(providerRepo)
	translateAPI := apiapp.NewTranslateAPI(transSvc)
	jobsAPI := apiapp.NewJobsAPI(runner, jobRepo)
	exportAPI := apiapp.NewExportAPI(expSvc)

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Global Retail Copy Accelerator",
		Width:  1280,
		Height: 820,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 24, G: 24, B: 27, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
			projectAPI,
			structureAPI,
			translationAPI,
			languageAPI,
			variantAPI,
			importAPI,
			providerAPI,
			translateAPI,
			jobsAPI,
			exportAPI,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
