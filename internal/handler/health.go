package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bfhl-server/internal/config"
)

// HealthResponse 는 /health 응답 본문이다. data 필드 없이 envelope 골격만 가진다.
type HealthResponse struct {
	Success    bool   `json:"success"`
	Identifier string `json:"identifier"`
}

// RegisterHealthRoutes 는 상태 확인 라우트를 등록한다.
func RegisterHealthRoutes(router *gin.Engine, cfg *config.Config) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{
			Success:    true,
			Identifier: cfg.Identifier,
		})
	})
}
