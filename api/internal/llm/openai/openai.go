package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"breed-bot/api/internal/llm"
)

const DefaultModel = "gpt-4o-mini"

type Engine struct {
	Model   string
	client  openai.Client
	timeout time.Duration
}

// New builds a client for api.openai.com, or for any compatible server when
// baseURL is set.
func New(apiKey, model, baseURL string, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = llm.DefaultTimeout
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(timeout),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Engine{Model: model, client: openai.NewClient(opts...), timeout: timeout}
}

func (e *Engine) Name() string     { return "openai" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Generate(ctx context.Context, req llm.Request) llm.Result {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(e.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(req.Prompt),
		},
		MaxTokens:   openai.Int(int64(req.MaxTokens)),
		Temperature: openai.Float(req.Temperature),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return llm.Fail(llm.FailureHTTP, apiErr.StatusCode, fmt.Errorf("openai: %w", err))
		}
		return llm.Result{Failure: llm.Classify(fmt.Errorf("openai: %w", err))}
	}
	if len(resp.Choices) == 0 {
		return llm.Fail(llm.FailureMalformed, 0, fmt.Errorf("openai: %w: empty choices", llm.ErrMalformed))
	}
	return llm.Succeed(strings.TrimSpace(resp.Choices[0].Message.Content))
}
