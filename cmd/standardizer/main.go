package main

import (
	"molstd/internal/standardizer/handler"
	"molstd/internal/standardizer/service"
	"molstd/internal/standardizer/validator"
	"molstd/pkg/app"
	"molstd/pkg/config"
	"molstd/pkg/standardization"
)

const serviceName = "standardizer"

func main() {
	cfg := config.Load(serviceName)
	cfg.Log.Info("Starting Standardizer service")

	registry := standardization.Default()
	standardizerService := service.NewStandardizerService(
		registry,
		validator.NewMoleculeValidator(),
		cfg,
	)
	cfg.Log.Info("Standardizer service initialized",
		"standardizations", registry.Len(),
		"default_pipeline", cfg.Standardizations,
	)

	application := app.NewApplication(cfg)
	application.SetApp(
		handler.NewHealthHandler(registry),
		handler.NewStandardizerHandler(standardizerService, cfg.Log),
	)
	application.Run()
}
