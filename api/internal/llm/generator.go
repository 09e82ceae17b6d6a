package llm

import (
	"context"
	"fmt"
	"time"
)

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = 30 * time.Second

// Request is one prompt with its sampling parameters.
type Request struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

type FailureKind int

const (
	FailureTimeout FailureKind = iota + 1
	FailureHTTP
	FailureMalformed
	FailureNetwork
)

func (k FailureKind) String() string {
	switch k {
	case FailureTimeout:
		return "timeout"
	case FailureHTTP:
		return "http_error"
	case FailureMalformed:
		return "malformed_response"
	case FailureNetwork:
		return "network_error"
	default:
		return "unknown"
	}
}

// Failure is the typed outcome of a generation that produced no answer.
// Status is set only for FailureHTTP.
type Failure struct {
	Kind   FailureKind
	Status int
	Err    error
}

func (f *Failure) Error() string {
	if f.Kind == FailureHTTP {
		return fmt.Sprintf("%s %d: %v", f.Kind, f.Status, f.Err)
	}
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

func (f *Failure) Unwrap() error { return f.Err }

// Result holds either a split answer or a Failure, never both.
type Result struct {
	Raw       string
	Reasoning string
	Answer    string
	Failure   *Failure
}

func (r Result) OK() bool { return r.Failure == nil }

// Succeed splits raw backend output into reasoning and answer.
func Succeed(raw string) Result {
	reasoning, answer := SplitThinking(raw)
	return Result{Raw: raw, Reasoning: reasoning, Answer: answer}
}

func Fail(kind FailureKind, status int, err error) Result {
	return Result{Failure: &Failure{Kind: kind, Status: status, Err: err}}
}

//go:generate go run go.uber.org/mock/mockgen -source=generator.go -destination=../mocks/mock_generator.go -package=mocks

// Generator is implemented by every text-generation backend. Generate never
// panics on backend errors; they come back as Result.Failure.
type Generator interface {
	Name() string
	Generate(ctx context.Context, req Request) Result
}
