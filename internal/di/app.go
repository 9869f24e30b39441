package di

import (
	"log/slog"
	"net/http"

	"bfhl-server/internal/config"
)

// App 는 애플리케이션 구성 요소를 묶는다.
type App struct {
	Server *http.Server
	Logger *slog.Logger
	Config *config.Config
}
