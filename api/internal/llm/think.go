package llm

import (
	"regexp"
	"strings"
)

var (
	reThink      = regexp.MustCompile(`(?s)<think>(.*?)</think>`)
	reBlankLines = regexp.MustCompile(`\n\s*\n`)
)

// SplitThinking separates <think>...</think> segments from the visible answer.
// Inner segments are joined with "\n". Every removed segment leaves a
// paragraph break, blank line runs collapse to one, and the answer is
// trimmed. Nested or unterminated tags are not supported.
func SplitThinking(raw string) (reasoning, answer string) {
	matches := reThink.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return "", strings.TrimSpace(raw)
	}

	parts := make([]string, 0, len(matches))
	for _, m := range matches {
		parts = append(parts, m[1])
	}

	answer = reThink.ReplaceAllLiteralString(raw, "\n\n")
	answer = reBlankLines.ReplaceAllString(answer, "\n\n")
	return strings.Join(parts, "\n"), strings.TrimSpace(answer)
}
