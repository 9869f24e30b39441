package answer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"bfhl-server/internal/config"
	"bfhl-server/internal/httperror"
)

// Provider 는 단답 질의가 가능한 생성형 모델 클라이언트다.
type Provider interface {
	Configured() bool
	OneWord(ctx context.Context, question string) (string, error)
}

// Resolver 는 질문을 단일 단어 답으로 해석한다.
// 요청마다 Attempt(0..maxRetries) → Fallback → Fail 순서로 진행한다.
type Resolver struct {
	cfg      *config.Config
	provider Provider
	fallback *FallbackTable
	logger   *slog.Logger
}

// NewResolver 는 Resolver 를 생성한다.
func NewResolver(cfg *config.Config, provider Provider, fallback *FallbackTable, logger *slog.Logger) *Resolver {
	return &Resolver{
		cfg:      cfg,
		provider: provider,
		fallback: fallback,
		logger:   logger,
	}
}

// Resolve 는 질문을 검증하고 단답을 반환한다.
// 키 미설정이나 재시도 소진 시 fallback 테이블을 조회하고, 거기서도
// 못 찾으면 마지막으로 기록된 오류를 그대로 돌려준다.
func (r *Resolver) Resolve(ctx context.Context, question string) (string, error) {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return "", httperror.NewBadRequest("Field 'AI' must be a non-empty string")
	}
	if maxLen := r.cfg.Limits.MaxQuestionLength; utf8.RuneCountInString(trimmed) > maxLen {
		return "", httperror.NewUnprocessable(
			fmt.Sprintf("Field 'AI' must not exceed %d characters", maxLen))
	}

	var lastErr *httperror.Error
	if r.provider.Configured() {
		word, attemptErr := r.attempt(ctx, trimmed)
		if attemptErr == nil {
			return word, nil
		}
		lastErr = attemptErr
	} else {
		lastErr = httperror.NewServiceUnavailable("AI service is not configured")
	}

	if canned, ok := r.fallback.Lookup(trimmed); ok {
		r.logger.Info("ai_fallback_answer", "question_len", len(trimmed))
		return canned, nil
	}

	return "", lastErr
}

func (r *Resolver) attempt(ctx context.Context, question string) (string, *httperror.Error) {
	base := time.Duration(r.cfg.Gemini.BackoffBaseMillis) * time.Millisecond
	maxRetries := r.cfg.Gemini.MaxRetries

	var lastErr *httperror.Error
	for i := 0; i <= maxRetries; i++ {
		text, err := r.provider.OneWord(ctx, question)
		if err == nil {
			return SanitizeOneWord(text), nil
		}

		apiErr, retryable := Classify(err)
		lastErr = apiErr
		r.logger.Warn(
			"ai_attempt_failed",
			"attempt", i,
			"kind", string(apiErr.Kind),
			"retryable", retryable,
			"err", err,
		)

		if !retryable || i == maxRetries {
			break
		}

		// 선형 백오프: base × (attempt+1)
		if !r.wait(ctx, base*time.Duration(i+1)) {
			return "", httperror.NewBadGateway("AI provider request canceled")
		}
	}

	if lastErr == nil {
		lastErr = httperror.NewBadGateway("AI provider request failed")
	}
	return "", lastErr
}

func (r *Resolver) wait(ctx context.Context, delay time.Duration) bool {
	if delay <= 0 {
		return true
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
