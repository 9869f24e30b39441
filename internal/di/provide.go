package di

import (
	"fmt"

	"bfhl-server/internal/answer"
	"bfhl-server/internal/config"
	"bfhl-server/internal/gemini"
	"bfhl-server/internal/handler"
	"bfhl-server/internal/logging"
	"bfhl-server/internal/server"
)

// InitializeApp 은 애플리케이션 의존성을 초기화하고 App 인스턴스를 반환한다.
func InitializeApp() (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	fallbackTable, err := answer.LoadFallbackTable()
	if err != nil {
		return nil, fmt.Errorf("fallback table: %w", err)
	}

	geminiClient, err := gemini.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	resolver := answer.NewResolver(cfg, geminiClient, fallbackTable, logger)
	bfhlHandler := handler.NewBFHLHandler(cfg, resolver, logger)
	router := handler.NewRouter(cfg, logger, bfhlHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return &App{
		Server: httpServer,
		Logger: logger,
		Config: cfg,
	}, nil
}
