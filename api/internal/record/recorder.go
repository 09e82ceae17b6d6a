// Package record persists one ConversationRecord per handled message.
package record

import (
	"context"
	"log/slog"
	"time"
)

// Record is one handled message. It is never mutated after Record is called.
type Record struct {
	Time         time.Time
	UserID       string
	Question     string
	Answer       string
	Reasoning    string
	ResponseTime time.Duration
}

//go:generate go run go.uber.org/mock/mockgen -source=recorder.go -destination=../mocks/mock_sink.go -package=mocks

// Sink stores records append-only.
type Sink interface {
	Name() string
	Append(ctx context.Context, rec Record) error
}

// Recorder fans a record out to every sink. Sink errors are logged and
// never returned.
type Recorder struct {
	sinks []Sink
	log   *slog.Logger
	now   func() time.Time
}

func NewRecorder(log *slog.Logger, sinks ...Sink) *Recorder {
	return &Recorder{sinks: sinks, log: log, now: time.Now}
}

// Record stamps rec with the current time when unset and appends it.
func (r *Recorder) Record(ctx context.Context, rec Record) {
	if rec.Time.IsZero() {
		rec.Time = r.now()
	}
	for _, s := range r.sinks {
		if err := s.Append(ctx, rec); err != nil {
			r.log.Error("log write failed", "sink", s.Name(), "user_id", rec.UserID, "error", err)
		}
	}
}
