package ollama

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"breed-bot/api/internal/llm"
)

const (
	DefaultURL   = "http://localhost:11434"
	DefaultModel = "llama3.2:1b"
)

// Engine calls the Ollama /api/generate endpoint without streaming.
// Ollama picks its own sampling settings; MaxTokens and Temperature are not sent.
type Engine struct {
	BaseURL string
	Model   string
	httpc   *http.Client
}

func New(baseURL, model string, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = llm.DefaultTimeout
	}
	return &Engine{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (e *Engine) Name() string { return "ollama" }

func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Generate(ctx context.Context, req llm.Request) llm.Result {
	body := map[string]any{
		"model":  e.Model,
		"prompt": req.Prompt,
		"stream": false,
	}
	var out struct {
		Response *string `json:"response"`
	}
	if err := llm.PostJSON(ctx, e.httpc, e.BaseURL+"/api/generate", nil, body, &out); err != nil {
		return llm.Result{Failure: llm.Classify(fmt.Errorf("ollama: %w", err))}
	}
	if out.Response == nil {
		return llm.Fail(llm.FailureMalformed, 0, fmt.Errorf("ollama: %w: no response field", llm.ErrMalformed))
	}
	return llm.Succeed(strings.TrimSpace(*out.Response))
}
