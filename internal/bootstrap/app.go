package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-portfolio/internal/extract"
	"resume-portfolio/internal/llm"
	"resume-portfolio/internal/llm/gemini"
	openai "resume-portfolio/internal/llm/openai"
	"resume-portfolio/internal/portfolio"
	"resume-portfolio/internal/shared/config"
	"resume-portfolio/internal/shared/server"
	"resume-portfolio/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	LLM              llm.Completer
	PortfolioService *portfolio.Service
	PortfolioHandler *portfolio.Handler
}

// Option overrides a dependency, mainly for tests.
type Option func(*App)

// WithCompleter replaces the provider client built from config.
func WithCompleter(c llm.Completer) Option {
	return func(a *App) { a.LLM = c }
}

// Build wires the completion client, the conversion service and the router.
func Build(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	app := &App{Config: cfg}
	for _, opt := range opts {
		opt(app)
	}

	if app.LLM == nil {
		client, err := BuildCompleter(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.LLM = client
	}

	renderer, err := portfolio.NewRenderer(cfg.PortfolioYear)
	if err != nil {
		return nil, fmt.Errorf("parse portfolio template: %w", err)
	}

	app.PortfolioService = &portfolio.Service{
		Extractor: extract.PDF{},
		LLM:       app.LLM,
		Renderer:  renderer,
	}
	app.PortfolioHandler = portfolio.NewHandler(app.PortfolioService, cfg.MaxUploadBytes)
	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		PortfolioHandler: app.PortfolioHandler,
	})
	return app, nil
}

// BuildCompleter constructs the configured provider client once per process.
// Without a credential the placeholder client is used so the service still
// starts and answers every conversion with an upstream error.
func BuildCompleter(ctx context.Context, cfg config.Config) (llm.Completer, error) {
	if strings.TrimSpace(cfg.LLMAPIKey) == "" {
		telemetry.Warn("bootstrap.llm_placeholder", map[string]any{"provider": cfg.LLMProvider})
		return llm.PlaceholderClient{}, nil
	}

	switch cfg.LLMProvider {
	case "gemini":
		return gemini.NewClient(ctx, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	case "openai":
		baseURL := cfg.LLMBaseURL
		if baseURL == "" {
			baseURL = openai.OpenAIBaseURL
		}
		return openai.NewClient(cfg.LLMAPIKey, cfg.LLMModel, baseURL, cfg.LLMTimeout)
	default:
		return openai.NewClient(cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMBaseURL, cfg.LLMTimeout)
	}
}
