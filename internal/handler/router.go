package handler

import (
	"log/slog"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"bfhl-server/internal/config"
	"bfhl-server/internal/httperror"
	"bfhl-server/internal/middleware"
)

// NewRouter 는 HTTP 라우터를 구성한다.
func NewRouter(cfg *config.Config, logger *slog.Logger, bfhlHandler *BFHLHandler) *gin.Engine {
	setGinMode(cfg.Logging.Level)

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		gin.CustomRecovery(recoveryHandler(cfg, logger)),
		middleware.SecurityHeaders(),
		cors.Default(),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.RateLimit(cfg),
	)

	RegisterHealthRoutes(router, cfg)
	bfhlHandler.RegisterRoutes(router)

	return router
}

// recoveryHandler 는 패닉을 500 envelope 로 변환한다. 상세는 로그에만 남긴다.
func recoveryHandler(cfg *config.Config, logger *slog.Logger) gin.RecoveryFunc {
	return func(c *gin.Context, recovered any) {
		logger.Error(
			"panic_recovered",
			"request_id", middleware.GetRequestID(c),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		status, payload := httperror.Response(httperror.NewInternal(), cfg.Identifier)
		c.AbortWithStatusJSON(status, payload)
	}
}

func setGinMode(level string) {
	if strings.EqualFold(strings.TrimSpace(level), "debug") {
		gin.SetMode(gin.DebugMode)
		return
	}
	gin.SetMode(gin.ReleaseMode)
}
