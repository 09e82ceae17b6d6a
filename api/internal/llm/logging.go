package llm

import (
	"context"
	"log/slog"
	"time"
)

type loggingGenerator struct {
	wrapped Generator
	log     *slog.Logger
}

// WithLogging logs every call to g with its duration and outcome.
func WithLogging(g Generator, log *slog.Logger) Generator {
	return &loggingGenerator{wrapped: g, log: log}
}

func (l *loggingGenerator) Name() string { return l.wrapped.Name() }

func (l *loggingGenerator) Generate(ctx context.Context, req Request) Result {
	l.log.Debug("generation request",
		"backend", l.Name(), "prompt_len", len(req.Prompt),
		"max_tokens", req.MaxTokens, "temperature", req.Temperature)

	t := time.Now()
	res := l.wrapped.Generate(ctx, req)
	elapsed := time.Since(t)

	if !res.OK() {
		l.log.Warn("generation failed",
			"backend", l.Name(), "kind", res.Failure.Kind.String(),
			"status", res.Failure.Status, "elapsed", elapsed, "error", res.Failure.Err)
		return res
	}
	l.log.Info("generation done",
		"backend", l.Name(), "elapsed", elapsed,
		"answer_len", len(res.Answer), "reasoning_len", len(res.Reasoning))
	return res
}
