// Package assist drafts reflection and learning text through an
// external generative-text service. It is a boundary component: it
// returns advisory text for the author to copy into a field and never
// touches persisted data.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Failure categories, each mapped to a distinct user-facing message by
// the shell. Anything else surfaces as *APIError.
var (
	ErrNoAPIKey    = errors.New("API key not configured")
	ErrInvalidKey  = errors.New("invalid API key")
	ErrRateLimited = errors.New("rate limit reached")
	ErrTimeout     = errors.New("request timed out")
)

// APIError is a generic transport failure carrying the service's status
// and detail text.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.Status, e.Detail)
}

// Config holds client settings. The API key lives only in memory for
// the session; it is never written to disk.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// DefaultConfig returns sensible defaults for the messages endpoint.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:    apiKey,
		BaseURL:   "https://api.anthropic.com/v1",
		Model:     "claude-sonnet-4-20250514",
		MaxTokens: 1000,
		Timeout:   30 * time.Second,
	}
}

// Client calls the messages endpoint synchronously. The call blocks the
// interaction until it returns or the client-side timeout fires.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient builds a client from config.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1000
	}
	return &Client{
		apiKey:    cfg.APIKey,
		baseURL:   cfg.BaseURL,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type response struct {
	Content []contentBlock `json:"content"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the prompt as a single user-role message and returns
// the first content item's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoAPIKey
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	start := time.Now()
	c.logger.Debug("assist request",
		zap.String("model", c.model),
		zap.Int("prompt_len", len(prompt)))

	body, err := json.Marshal(request{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isClientTimeout(err) {
			c.logger.Warn("assist request timed out", zap.Duration("after", time.Since(start)))
			return "", ErrTimeout
		}
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return "", ErrInvalidKey
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	default:
		c.logger.Warn("assist request failed",
			zap.Int("status", resp.StatusCode))
		return "", &APIError{Status: resp.StatusCode, Detail: strings.TrimSpace(string(data))}
	}

	var out response
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if out.Error != nil {
		return "", &APIError{Status: resp.StatusCode, Detail: out.Error.Message}
	}
	if len(out.Content) == 0 {
		return "", errors.New("no completion returned")
	}

	c.logger.Debug("assist request completed",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_len", len(out.Content[0].Text)))
	return out.Content[0].Text, nil
}

func isClientTimeout(err error) bool {
	var ue interface{ Timeout() bool }
	if errors.As(err, &ue) {
		return ue.Timeout()
	}
	return false
}

// UserMessage maps a failure to the advisory text shown inline to the
// author. External-service errors never touch stored data.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNoAPIKey):
		return "Please provide your API key to use the assistant."
	case errors.Is(err, ErrInvalidKey):
		return "Invalid API key. Please check your key and try again."
	case errors.Is(err, ErrRateLimited):
		return "Rate limit reached. Please wait a moment and try again."
	case errors.Is(err, ErrTimeout):
		return "Request timed out. Please check your internet connection and try again."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
