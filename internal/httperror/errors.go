package httperror

import (
	"context"
	"errors"
	"net/http"

	"bfhl-server/internal/gemini"
)

// Kind 는 API 오류 종류다.
type Kind string

const (
	// KindBadRequest 는 본문 형식 오류다.
	KindBadRequest Kind = "BAD_REQUEST"
	// KindUnprocessableEntity 는 상한 초과 오류다.
	KindUnprocessableEntity Kind = "UNPROCESSABLE_ENTITY"
	// KindPayloadTooLarge 는 본문 크기 초과 오류다.
	KindPayloadTooLarge Kind = "PAYLOAD_TOO_LARGE"
	// KindUnsupportedMediaType 는 Content-Type 오류다.
	KindUnsupportedMediaType Kind = "UNSUPPORTED_MEDIA_TYPE"
	// KindServiceUnavailable 는 의존성 미설정/인증 거부 오류다.
	KindServiceUnavailable Kind = "SERVICE_UNAVAILABLE"
	// KindRateLimited 는 요청 제한 오류다.
	KindRateLimited Kind = "RATE_LIMITED"
	// KindBadGateway 는 업스트림 장애 오류다.
	KindBadGateway Kind = "BAD_GATEWAY"
	// KindInternal 는 내부 오류다.
	KindInternal Kind = "INTERNAL_ERROR"
)

// Error 는 내부 표준 오류 타입이다.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

// Error 는 오류 메시지를 반환한다.
func (e *Error) Error() string {
	return e.Message
}

// ErrorEnvelope 는 오류 응답 본문이다. 성공 envelope 와 동일한 골격을 가진다.
type ErrorEnvelope struct {
	Success    bool   `json:"success"`
	Identifier string `json:"identifier"`
	Error      string `json:"error"`
}

// Response 는 오류를 HTTP 상태와 envelope 로 변환한다.
func Response(err error, identifier string) (int, ErrorEnvelope) {
	apiErr := FromError(err)
	if apiErr == nil {
		apiErr = NewInternal()
	}
	return apiErr.Status, ErrorEnvelope{
		Success:    false,
		Identifier: identifier,
		Error:      apiErr.Message,
	}
}

// FromError 는 임의 오류를 내부 오류 타입으로 변환한다.
// 분류되지 않은 오류는 상세를 감춘 InternalError 로 수렴한다.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return NewPayloadTooLarge("Request body too large")
	}

	if errors.Is(err, gemini.ErrMissingAPIKey) {
		return NewServiceUnavailable("AI service is not configured")
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewBadGateway("AI provider request timed out")
	}

	return NewInternal()
}

// NewBadRequest 는 400 오류를 생성한다.
func NewBadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Status: http.StatusBadRequest, Message: message}
}

// NewUnprocessable 는 422 오류를 생성한다.
func NewUnprocessable(message string) *Error {
	return &Error{Kind: KindUnprocessableEntity, Status: http.StatusUnprocessableEntity, Message: message}
}

// NewPayloadTooLarge 는 413 오류를 생성한다.
func NewPayloadTooLarge(message string) *Error {
	return &Error{Kind: KindPayloadTooLarge, Status: http.StatusRequestEntityTooLarge, Message: message}
}

// NewUnsupportedMediaType 는 415 오류를 생성한다.
func NewUnsupportedMediaType(message string) *Error {
	return &Error{Kind: KindUnsupportedMediaType, Status: http.StatusUnsupportedMediaType, Message: message}
}

// NewServiceUnavailable 는 503 오류를 생성한다.
func NewServiceUnavailable(message string) *Error {
	return &Error{Kind: KindServiceUnavailable, Status: http.StatusServiceUnavailable, Message: message}
}

// NewRateLimited 는 429 오류를 생성한다.
func NewRateLimited(message string) *Error {
	return &Error{Kind: KindRateLimited, Status: http.StatusTooManyRequests, Message: message}
}

// NewBadGateway 는 502 오류를 생성한다.
func NewBadGateway(message string) *Error {
	return &Error{Kind: KindBadGateway, Status: http.StatusBadGateway, Message: message}
}

// NewInternal 는 500 오류를 생성한다. 호출자 상세는 노출하지 않는다.
func NewInternal() *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: "Internal server error"}
}
