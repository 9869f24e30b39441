package gemini

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"

	"bfhl-server/internal/config"
)

// ErrMissingAPIKey 는 Gemini API 키가 없을 때 반환된다.
var ErrMissingAPIKey = errors.New("missing gemini api key")

const oneWordInstruction = "Answer the question in exactly one word. " +
	"No punctuation, no explanation, just the single word."

// Client 는 Gemini 호출을 담당한다. 키가 여러 개면 호출마다 순환한다.
type Client struct {
	cfg       *config.Config
	mu        sync.Mutex
	clients   map[string]*genai.Client
	apiKeys   []string
	apiKeyIdx int
}

// NewClient 는 Gemini 클라이언트를 생성한다.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	return &Client{
		cfg:     cfg,
		clients: make(map[string]*genai.Client),
		apiKeys: cfg.Gemini.APIKeys,
	}, nil
}

// Configured 는 API 키가 설정되어 있는지 반환한다.
func (c *Client) Configured() bool {
	return len(c.apiKeys) > 0
}

// OneWord 는 질문에 대한 단답 텍스트를 반환한다. 후처리는 호출자 몫이다.
func (c *Client) OneWord(ctx context.Context, question string) (string, error) {
	client, err := c.selectClient(ctx)
	if err != nil {
		return "", err
	}

	generateConfig := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(0)),
		MaxOutputTokens:   int32(c.cfg.Gemini.MaxOutputTokens),
		SystemInstruction: genai.NewContentFromText(oneWordInstruction, genai.RoleUser),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr(int32(0)),
		},
	}

	contents := []*genai.Content{genai.NewContentFromText(question, genai.RoleUser)}
	response, err := client.Models.GenerateContent(ctx, c.cfg.Gemini.Model, contents, generateConfig)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return response.Text(), nil
}

// StatusCode 는 업스트림 오류에서 HTTP 상태 코드를 추출한다.
func StatusCode(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	return 0, false
}

func (c *Client) selectClient(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.apiKeys) == 0 {
		return nil, ErrMissingAPIKey
	}

	key := c.apiKeys[c.apiKeyIdx%len(c.apiKeys)]
	c.apiKeyIdx++
	if client, ok := c.clients[key]; ok {
		return client, nil
	}

	timeout := time.Duration(c.cfg.Gemini.TimeoutSeconds) * time.Second
	client, err := genai.NewClient(context.WithoutCancel(ctx), &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			Timeout: genai.Ptr(timeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	c.clients[key] = client
	return client, nil
}
