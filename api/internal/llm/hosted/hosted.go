// Package hosted talks to an OpenAI-style chat-completion endpoint that
// authenticates with an "apikey" header.
package hosted

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"breed-bot/api/internal/llm"
)

const (
	DefaultURL   = "http://thaillm.or.th/api/pathumma/v1/chat/completions"
	DefaultModel = "/model"
)

type Engine struct {
	URL    string
	APIKey string
	Model  string
	httpc  *http.Client
}

func New(url, key, model string, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = llm.DefaultTimeout
	}
	return &Engine{
		URL:    url,
		APIKey: key,
		Model:  model,
		httpc:  &http.Client{Timeout: timeout},
	}
}

func (e *Engine) Name() string { return "hosted" }

func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Generate(ctx context.Context, req llm.Request) llm.Result {
	body := map[string]any{
		"model": e.Model,
		"messages": []any{
			map[string]any{"role": "user", "content": req.Prompt},
		},
		"max_tokens":  req.MaxTokens,
		"temperature": req.Temperature,
	}

	var raw struct {
		Choices []struct {
			Message struct {
				Content *string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	headers := map[string]string{"apikey": e.APIKey}
	if err := llm.PostJSON(ctx, e.httpc, e.URL, headers, body, &raw); err != nil {
		return llm.Result{Failure: llm.Classify(fmt.Errorf("hosted: %w", err))}
	}
	if len(raw.Choices) == 0 || raw.Choices[0].Message.Content == nil {
		return llm.Fail(llm.FailureMalformed, 0, fmt.Errorf("hosted: %w: no choices[0].message.content", llm.ErrMalformed))
	}
	return llm.Succeed(strings.TrimSpace(*raw.Choices[0].Message.Content))
}
