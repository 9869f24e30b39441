package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bfhl-server/internal/answer"
	"bfhl-server/internal/config"
	"bfhl-server/internal/handler/shared"
	"bfhl-server/internal/httperror"
	"bfhl-server/internal/mathx"
	"bfhl-server/internal/middleware"
)

// BFHLHandler 는 /bfhl 단일 엔드포인트 핸들러다.
type BFHLHandler struct {
	cfg      *config.Config
	resolver *answer.Resolver
	logger   *slog.Logger
}

// NewBFHLHandler 는 BFHL 핸들러를 생성한다.
func NewBFHLHandler(cfg *config.Config, resolver *answer.Resolver, logger *slog.Logger) *BFHLHandler {
	return &BFHLHandler{
		cfg:      cfg,
		resolver: resolver,
		logger:   logger,
	}
}

// RegisterRoutes 는 BFHL 라우트를 등록한다.
func (h *BFHLHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/bfhl", h.handleBFHL)
}

func (h *BFHLHandler) handleBFHL(c *gin.Context) {
	req, err := DecodeRequest(c, h.cfg.Limits)
	if err != nil {
		h.writeError(c, "", err)
		return
	}

	data, err := h.dispatch(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, string(req.Kind), err)
		return
	}

	shared.WriteData(c, h.cfg.Identifier, data)
}

// dispatch 는 디코딩된 union 을 키별 핸들러로 전달한다.
func (h *BFHLHandler) dispatch(ctx context.Context, req *Request) (any, error) {
	switch req.Kind {
	case KindFibonacci:
		return h.fibonacci(req.N)
	case KindPrime:
		return mathx.FilterPrimes(req.Values), nil
	case KindLCM:
		return mathx.ReduceLCM(req.Values), nil
	case KindHCF:
		return mathx.ReduceGCD(req.Values), nil
	case KindAI:
		return h.resolver.Resolve(ctx, req.Question)
	default:
		return nil, httperror.NewInternal()
	}
}

func (h *BFHLHandler) fibonacci(n int64) (any, error) {
	maxTerms := int64(h.cfg.Limits.MaxFibonacciTerms)
	if n < 0 || n > maxTerms {
		return nil, httperror.NewUnprocessable(
			fmt.Sprintf("Field 'fibonacci' must be between 0 and %d", maxTerms))
	}
	return mathx.Fibonacci(int(n)), nil
}

func (h *BFHLHandler) writeError(c *gin.Context, kind string, err error) {
	if apiErr := httperror.FromError(err); apiErr.Status >= http.StatusInternalServerError {
		h.logger.Error(
			"bfhl_request_failed",
			"request_id", middleware.GetRequestID(c),
			"kind", kind,
			"status", apiErr.Status,
			"err", err,
		)
	}
	shared.WriteError(c, h.cfg.Identifier, err)
}
