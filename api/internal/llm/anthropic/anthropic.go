package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"breed-bot/api/internal/llm"
)

const DefaultModel = "claude-sonnet-4-5"

// Engine uses the Messages API. Thinking blocks are returned to the splitter
// wrapped in <think> tags so they end up as reasoning, never in the answer.
type Engine struct {
	Model   string
	client  *anthropic.Client
	timeout time.Duration
}

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
	client := anthropic.NewClient(opts...)
	return &Engine{Model: model, client: &client, timeout: timeout}
}

func (e *Engine) Name() string     { return "anthropic" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Generate(ctx context.Context, req llm.Request) llm.Result {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.Model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
		Temperature: anthropic.Float(req.Temperature),
	}
	msg, err := e.client.Messages.New(ctx, params)
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return llm.Fail(llm.FailureHTTP, apiErr.StatusCode, fmt.Errorf("anthropic: %w", err))
		}
		return llm.Result{Failure: llm.Classify(fmt.Errorf("anthropic: %w", err))}
	}

	var b strings.Builder
	var texts int
	for _, block := range msg.Content {
		switch block.Type {
		case "thinking":
			b.WriteString("<think>" + block.AsThinking().Thinking + "</think>\n")
		case "text":
			b.WriteString(block.AsText().Text)
			texts++
		}
	}
	if texts == 0 {
		return llm.Fail(llm.FailureMalformed, 0, fmt.Errorf("anthropic: %w: no text block", llm.ErrMalformed))
	}
	return llm.Succeed(strings.TrimSpace(b.String()))
}
