package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"ai-planner-backend/utils"

	"github.com/tmc/langchaingo/llms"
)

// DashScope 文本生成接口（通义千问）
const generationURL = "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation"

var (
	ErrAPIKeyMissing           = errors.New("model api key is not configured")
	ErrModelUnreachable        = errors.New("failed to reach model service")
	ErrUnexpectedModelResponse = errors.New("unexpected model response structure")
)

// UpstreamError 模型服务返回的结构化错误，状态码原样透传给调用方
type UpstreamError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model service error (status %d): %s - %s", e.StatusCode, e.Code, e.Message)
}

type QwenClient struct {
	model      string
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

type QwenOption func(*QwenClient)

func WithEndpoint(endpoint string) QwenOption {
	return func(c *QwenClient) {
		c.endpoint = endpoint
	}
}

func WithHTTPClient(client *http.Client) QwenOption {
	return func(c *QwenClient) {
		c.httpClient = client
	}
}

func NewQwenClient(model, apiKey string, opts ...QwenOption) *QwenClient {
	c := &QwenClient{
		model:    model,
		apiKey:   apiKey,
		endpoint: generationURL,
		httpClient: utils.NewHTTPClient(
			utils.WithTimeout(120 * time.Second),
		),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type generationRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []apiMessage `json:"messages"`
	} `json:"input"`
	Parameters struct {
		ResultFormat string `json:"result_format"`
	} `json:"parameters"`
}

type generationResponse struct {
	Output struct {
		Choices []struct {
			Message apiMessage `json:"message"`
		} `json:"choices"`
	} `json:"output"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Generate 同步调用一次模型，返回原始文本回复。不重试。
func (c *QwenClient) Generate(ctx context.Context, messages []llms.ChatMessage) (string, error) {
	if c.apiKey == "" {
		return "", ErrAPIKeyMissing
	}

	reqBody := generationRequest{Model: c.model}
	reqBody.Parameters.ResultFormat = "message"
	for _, msg := range messages {
		reqBody.Input.Messages = append(reqBody.Input.Messages, apiMessage{
			Role:    apiRole(msg.GetType()),
			Content: msg.GetContent(),
		})
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var genResp generationResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnexpectedModelResponse, err)
	}

	if resp.StatusCode != http.StatusOK {
		if genResp.Code != "" && genResp.Message != "" {
			return "", &UpstreamError{
				StatusCode: resp.StatusCode,
				Code:       genResp.Code,
				Message:    genResp.Message,
			}
		}
		return "", fmt.Errorf("model service returned status %d", resp.StatusCode)
	}

	if len(genResp.Output.Choices) == 0 || genResp.Output.Choices[0].Message.Content == "" {
		return "", ErrUnexpectedModelResponse
	}
	return genResp.Output.Choices[0].Message.Content, nil
}

func apiRole(t llms.ChatMessageType) string {
	switch t {
	case llms.ChatMessageTypeSystem:
		return "system"
	case llms.ChatMessageTypeAI:
		return "assistant"
	default:
		return "user"
	}
}
