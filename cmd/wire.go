package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	backendadapter "github.com/marketcrew/mc-cli/internal/adapters/backend"
	contentadapter "github.com/marketcrew/mc-cli/internal/adapters/render/content"
	sessionrepo "github.com/marketcrew/mc-cli/internal/adapters/session/toml"
	"github.com/marketcrew/mc-cli/internal/application"
	"github.com/marketcrew/mc-cli/internal/domain"
	"github.com/marketcrew/mc-cli/internal/ports"
)

const (
	backendURLKey     = "backend.base_url"
	defaultBackendURL = "http://localhost:8000"
)

type app struct {
	sessions        *application.SessionService
	orchestrator    *application.Orchestrator
	delivery        *application.DeliveryService
	access          *application.AccessService
	contentRenderer func(domain.ContentSet, contentadapter.RenderOptions) (string, error)
	logger          *log.Logger
	baseURL         string
}

func wireApp() (*app, error) {
	// A local .env is optional; absence is not an error.
	_ = godotenv.Load()

	cfg := viper.New()
	cfg.SetDefault(backendURLKey, defaultBackendURL)
	if err := cfg.BindEnv(backendURLKey, "MC_BACKEND_URL"); err != nil {
		return nil, fmt.Errorf("bind backend url env: %w", err)
	}

	repo, err := sessionrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	logger.SetLevel(log.WarnLevel)
	if raw := os.Getenv("MC_LOG_LEVEL"); raw != "" {
		level, err := log.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("parse MC_LOG_LEVEL: %w", err)
		}
		logger.SetLevel(level)
	}

	baseURL := cfg.GetString(backendURLKey)
	client := backendadapter.NewClient(baseURL, http.DefaultClient)

	return &app{
		sessions:        application.NewSessionService(repo, client, ports.SystemClock{}),
		orchestrator:    application.NewOrchestrator(client, logger),
		delivery:        application.NewDeliveryService(client),
		access:          application.NewAccessService(client),
		contentRenderer: contentadapter.Render,
		logger:          logger,
		baseURL:         baseURL,
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
