package reply

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"breed-bot/api/internal/llm"
	"breed-bot/api/internal/vision"
)

// Generation parameters for the two prompt kinds.
var (
	ChatParams       = llm.Request{MaxTokens: 2048, Temperature: 0.3}
	EnrichmentParams = llm.Request{MaxTokens: 1500, Temperature: 0.3}
)

//go:generate go run go.uber.org/mock/mockgen -source=composer.go -destination=../mocks/mock_reply.go -package=mocks

type Classifier interface {
	Classify(in vision.Tensor) (vision.Ranking, error)
}

// Engines picks the generation backend for a user.
type Engines interface {
	Get(userID string) llm.Generator
}

// Reply is the outbound text plus what the recorder needs to know about it.
type Reply struct {
	Text      string
	Reasoning string
	Canned    bool
	// Degraded is set when a backend failed and a fallback was used.
	Degraded bool
}

type Composer struct {
	engines    Engines
	classifier Classifier
	canned     map[string]string
	log        *slog.Logger
}

func NewComposer(engines Engines, classifier Classifier, canned map[string]string, log *slog.Logger) *Composer {
	if canned == nil {
		canned = DefaultCanned()
	}
	return &Composer{engines: engines, classifier: classifier, canned: canned, log: log}
}

// Text answers a text message: canned phrase, backend answer or fallback.
// Fallbacks never carry reasoning.
func (c *Composer) Text(ctx context.Context, userID, text string) Reply {
	if answer, ok := c.canned[text]; ok {
		return Reply{Text: answer, Canned: true}
	}

	req := ChatParams
	req.Prompt = text
	res := c.engines.Get(userID).Generate(ctx, req)
	if !res.OK() {
		c.log.Warn("text reply degraded", "user_id", userID, "kind", res.Failure.Kind.String(), "error", res.Failure)
		return Reply{Text: msgTextFallback, Degraded: true}
	}
	if res.Answer == "" {
		c.log.Warn("text reply degraded", "user_id", userID, "kind", "empty_answer")
		return Reply{Text: msgTextFallback, Degraded: true}
	}
	return Reply{Text: res.Answer, Reasoning: res.Reasoning}
}

// Image classifies a photo and, when a backend answers, appends breed notes.
func (c *Composer) Image(ctx context.Context, userID string, data []byte) Reply {
	ranking, err := c.classify(data)
	if err != nil {
		if errors.Is(err, vision.ErrTensorShape) {
			c.log.Error("classifier contract violated", "user_id", userID, "error", err)
		} else {
			c.log.Warn("image classification failed", "user_id", userID, "error", err)
		}
		return Reply{Text: msgImageError}
	}

	base := predictionHeader + RenderRanking(ranking)

	prompt, err := EnrichmentPrompt(ranking)
	if err != nil {
		c.log.Error("enrichment skipped", "user_id", userID, "error", err)
		return Reply{Text: base, Degraded: true}
	}
	req := EnrichmentParams
	req.Prompt = prompt
	res := c.engines.Get(userID).Generate(ctx, req)
	if !res.OK() {
		c.log.Warn("enrichment unavailable", "user_id", userID, "kind", res.Failure.Kind.String(), "error", res.Failure)
		return Reply{Text: base, Degraded: true}
	}
	if res.Answer == "" {
		c.log.Warn("enrichment unavailable", "user_id", userID, "kind", "empty_answer")
		return Reply{Text: base, Degraded: true}
	}
	return Reply{Text: base + enrichmentHeader + res.Answer, Reasoning: res.Reasoning}
}

func (c *Composer) classify(data []byte) (vision.Ranking, error) {
	in, err := vision.PreprocessBytes(data)
	if err != nil {
		return nil, err
	}
	return c.classifier.Classify(in)
}

// DisplayLabel shows a label with spaces instead of underscores.
func DisplayLabel(label string) string {
	return strings.ReplaceAll(label, "_", " ")
}

// RenderRanking formats one "{rank}. {label} ({pct:.2f}%)" line per prediction.
func RenderRanking(r vision.Ranking) string {
	lines := make([]string, 0, len(r))
	for i, p := range r {
		lines = append(lines, fmt.Sprintf("%d. %s (%.2f%%)", i+1, DisplayLabel(p.Label), p.Confidence*100))
	}
	return strings.Join(lines, "\n")
}

// EnrichmentPrompt asks for breed details about a full top-3 ranking.
func EnrichmentPrompt(r vision.Ranking) (string, error) {
	if len(r) != vision.TopK {
		return "", fmt.Errorf("enrichment needs %d predictions, got %d", vision.TopK, len(r))
	}
	b0, b1, b2 := DisplayLabel(r[0].Label), DisplayLabel(r[1].Label), DisplayLabel(r[2].Label)
	return fmt.Sprintf(enrichmentTemplate,
		b0, r[0].Confidence*100,
		b1, r[1].Confidence*100,
		b2, r[2].Confidence*100,
		b0, b0, b1, b2,
	), nil
}
