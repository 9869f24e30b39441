package answer

import (
	"context"
	"errors"

	"bfhl-server/internal/gemini"
	"bfhl-server/internal/httperror"
)

// Classify 는 업스트림 오류를 내부 오류와 재시도 가능 여부로 분류한다.
// 429 와 5xx(→502) 만 재시도 대상이다. 401/403 은 재시도하지 않는다.
func Classify(err error) (*httperror.Error, bool) {
	if err == nil {
		return nil, false
	}

	if errors.Is(err, gemini.ErrMissingAPIKey) {
		return httperror.NewServiceUnavailable("AI service is not configured"), false
	}

	status, ok := gemini.StatusCode(err)
	if !ok {
		// 상태 코드가 없는 전송 계층 실패. 일시 장애로 보고 재시도한다.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return httperror.NewBadGateway("AI provider request canceled"), false
		}
		return httperror.NewBadGateway("AI provider request failed"), true
	}

	switch {
	case status == 429:
		return httperror.NewRateLimited("AI provider rate limited the request"), true
	case status == 401 || status == 403:
		return httperror.NewServiceUnavailable("AI provider rejected the configured credentials"), false
	case status >= 500:
		return httperror.NewBadGateway("AI provider returned a server error"), true
	default:
		return httperror.NewBadGateway("AI provider returned an unexpected response"), false
	}
}
