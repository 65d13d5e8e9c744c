package escalate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	// Temperature is fixed for reproducibility and recorded in the audit log.
	Temperature = 0.2

	defaultEndpoint = "https://api.openai.com/v1/chat/completions"
	defaultModel    = "gpt-4o-mini"
	defaultTimeout  = 8 * time.Second

	systemPrompt = "You are a deterministic network asset classifier. Reply in strict JSON."
)

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the chat-completions URL. Used by tests.
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithModel sets the model name sent with each request. Default: gpt-4o-mini.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// WithTimeout sets the per-attempt HTTP timeout. Default: 8s.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// Client calls an OpenAI-style chat-completions endpoint and parses the
// strict-JSON classification reply. One attempt per call; no retries — a
// failed attempt is final for that row.
type Client struct {
	endpoint   string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client authenticating with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint:   defaultEndpoint,
		model:      defaultModel,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatRequest struct {
	Model          string         `json:"model"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat responseFormat `json:"response_format"`
	Messages       []chatMessage  `json:"messages"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type classification struct {
	DeviceType *string  `json:"device_type"`
	Confidence *float64 `json:"confidence"`
}

// Classify sends the prompt and maps every possible failure to an explicit
// Result kind. It never returns an error: collaborator failure is a valid,
// expected outcome.
func (c *Client) Classify(ctx context.Context, prompt string) Result {
	body, err := json.Marshal(chatRequest{
		Model:          c.model,
		Temperature:    Temperature,
		ResponseFormat: responseFormat{Type: "json_object"},
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return Result{Kind: TransportError, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{Kind: TransportError, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return Result{Kind: TimedOut, Err: err}
		}
		return Result{Kind: TransportError, Err: err}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Kind: TransportError, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Kind: TransportError, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}

	var envelope chatResponse
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return Result{Kind: MalformedResponse, Err: err}
	}
	if len(envelope.Choices) == 0 {
		return Result{Kind: MalformedResponse, Err: errors.New("no choices in response")}
	}

	content := envelope.Choices[0].Message.Content
	var cls classification
	if err := json.Unmarshal([]byte(content), &cls); err != nil {
		return Result{Kind: MalformedResponse, Err: err, Body: content}
	}

	r := Result{Kind: Ok, Body: content}
	if cls.DeviceType != nil {
		r.DeviceType = *cls.DeviceType
	}
	if cls.Confidence != nil {
		r.Confidence = *cls.Confidence
		r.HasConfidence = true
	}
	return r
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
