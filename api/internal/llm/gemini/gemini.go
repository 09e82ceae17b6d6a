package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"breed-bot/api/internal/llm"
)

const DefaultModel = "gemini-2.5-flash"

type Engine struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func New(apiKey, model string, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = llm.DefaultTimeout
	}
	return &Engine{
		APIKey:  strings.TrimSpace(apiKey),
		Model:   strings.TrimSpace(model),
		Timeout: timeout,
	}
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Generate(ctx context.Context, req llm.Request) llm.Result {
	if e.APIKey == "" {
		return llm.Fail(llm.FailureHTTP, 401, errors.New("gemini: GEMINI_API_KEY is empty"))
	}
	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return llm.Result{Failure: classify(err)}
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:     ptrFloat32(float32(req.Temperature)),
		MaxOutputTokens: ptrInt32(int32(req.MaxTokens)),
	}

	resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return llm.Result{Failure: classify(err)}
	}
	text, ok := firstText(resp)
	if !ok {
		return llm.Fail(llm.FailureMalformed, 0, fmt.Errorf("gemini: %w: no text part", llm.ErrMalformed))
	}
	return llm.Succeed(strings.TrimSpace(text))
}

func classify(err error) *llm.Failure {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &llm.Failure{Kind: llm.FailureHTTP, Status: gerr.Code, Err: fmt.Errorf("gemini: %w", err)}
	}
	return llm.Classify(fmt.Errorf("gemini: %w", err))
}

func firstText(resp *genai.GenerateContentResponse) (string, bool) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", false
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t), true
			}
		}
	}
	return "", false
}

func ptrFloat32(v float32) *float32 { return &v }
func ptrInt32(v int32) *int32       { return &v }
