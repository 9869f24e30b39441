package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"bfhl-server/internal/config"
	"bfhl-server/internal/httperror"
)

// RequestKind 는 /bfhl 요청의 단일 키다.
type RequestKind string

const (
	// KindFibonacci 는 fibonacci 요청이다.
	KindFibonacci RequestKind = "fibonacci"
	// KindPrime 는 prime 요청이다.
	KindPrime RequestKind = "prime"
	// KindLCM 는 lcm 요청이다.
	KindLCM RequestKind = "lcm"
	// KindHCF 는 hcf 요청이다.
	KindHCF RequestKind = "hcf"
	// KindAI 는 AI 요청이다.
	KindAI RequestKind = "AI"
)

const allowedKeys = "fibonacci, prime, lcm, hcf, AI"

// Request 는 키별 payload 를 담는 tagged union 이다.
// Kind 에 따라 N / Values / Question 중 하나만 유효하다.
type Request struct {
	Kind     RequestKind
	N        int64
	Values   []int64
	Question string
}

// DecodeRequest 는 본문을 검증해 Request 로 변환한다.
// Content-Type(415), 본문 크기(413), JSON 유효성(400), 단일 키 불변식(400)을
// 차례로 검사한 뒤 키별 값 형태를 검증한다.
func DecodeRequest(c *gin.Context, limits config.LimitsConfig) (*Request, error) {
	if c.ContentType() != "application/json" {
		return nil, httperror.NewUnsupportedMediaType("Content-Type must be application/json")
	}

	body := http.MaxBytesReader(c.Writer, c.Request.Body, limits.MaxBodyBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return nil, err
		}
		return nil, httperror.NewBadRequest("Failed to read request body")
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw map[string]any
	if err := decoder.Decode(&raw); err != nil {
		return nil, httperror.NewBadRequest("Request body must be a valid JSON object")
	}

	if len(raw) != 1 {
		return nil, httperror.NewBadRequest(
			"Request body must contain exactly one of: " + allowedKeys)
	}

	for key, value := range raw {
		switch RequestKind(key) {
		case KindFibonacci:
			n, ok := wholeNumber(value)
			if !ok {
				return nil, httperror.NewBadRequest("Field 'fibonacci' must be an integer")
			}
			return &Request{Kind: KindFibonacci, N: n}, nil

		case KindPrime, KindLCM, KindHCF:
			values, err := integerArray(key, value, limits.MaxArrayLength)
			if err != nil {
				return nil, err
			}
			return &Request{Kind: RequestKind(key), Values: values}, nil

		case KindAI:
			question, ok := value.(string)
			if !ok {
				return nil, httperror.NewBadRequest("Field 'AI' must be a string")
			}
			return &Request{Kind: KindAI, Question: question}, nil

		default:
			return nil, httperror.NewBadRequest(
				fmt.Sprintf("Unknown key '%s', expected one of: %s", key, allowedKeys))
		}
	}

	// len(raw) == 1 이므로 도달 불가
	return nil, httperror.NewBadRequest("Request body must contain exactly one of: " + allowedKeys)
}

func integerArray(field string, value any, maxLength int) ([]int64, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, httperror.NewBadRequest(
			fmt.Sprintf("Field '%s' must be an array of integers", field))
	}
	if len(items) == 0 {
		return nil, httperror.NewBadRequest(
			fmt.Sprintf("Field '%s' must be a non-empty array", field))
	}
	if len(items) > maxLength {
		return nil, httperror.NewUnprocessable(
			fmt.Sprintf("Field '%s' must not exceed %d elements", field, maxLength))
	}

	values := make([]int64, 0, len(items))
	for _, item := range items {
		n, ok := wholeNumber(item)
		if !ok {
			return nil, httperror.NewBadRequest(
				fmt.Sprintf("Field '%s' must contain only integers", field))
		}
		values = append(values, n)
	}
	return values, nil
}

// wholeNumber 는 소수부가 없는 JSON 숫자만 받아들인다. 5.0 은 5 로 통과한다.
func wholeNumber(value any) (int64, bool) {
	number, ok := value.(json.Number)
	if !ok {
		return 0, false
	}

	if n, err := number.Int64(); err == nil {
		return n, true
	}

	f, err := number.Float64()
	if err != nil {
		return 0, false
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}
