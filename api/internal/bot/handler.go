// Package bot drives one incoming chat event through reply composition,
// delivery and recording. Transports only translate platform updates into
// IncomingEvent values.
package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"breed-bot/api/internal/record"
	"breed-bot/api/internal/reply"
)

type EventKind int

const (
	EventText EventKind = iota + 1
	EventImage
)

type IncomingEvent struct {
	Kind       EventKind
	UserID     string
	ReplyToken string
	Text       string
	MessageID  string
	ReceivedAt time.Time
}

//go:generate go run go.uber.org/mock/mockgen -source=handler.go -destination=../mocks/mock_bot.go -package=mocks

type ReplyChannel interface {
	Reply(ctx context.Context, replyToken, text string) error
}

type MediaFetcher interface {
	Fetch(ctx context.Context, messageID string) ([]byte, error)
}

type Responder interface {
	Text(ctx context.Context, userID, text string) reply.Reply
	Image(ctx context.Context, userID string, data []byte) reply.Reply
}

type Handler struct {
	responder Responder
	replies   ReplyChannel
	media     MediaFetcher
	archive   *Archive
	recorder  *record.Recorder
	log       *slog.Logger
	now       func() time.Time
}

// NewHandler wires a handler. archive may be nil to skip saving images.
func NewHandler(responder Responder, replies ReplyChannel, media MediaFetcher, archive *Archive, recorder *record.Recorder, log *slog.Logger) *Handler {
	return &Handler{
		responder: responder,
		replies:   replies,
		media:     media,
		archive:   archive,
		recorder:  recorder,
		log:       log,
		now:       time.Now,
	}
}

// Handle answers ev and records it once. It never returns an error: send
// failures are logged and the record is still written.
func (h *Handler) Handle(ctx context.Context, ev IncomingEvent) {
	start := ev.ReceivedAt
	if start.IsZero() {
		start = h.now()
	}
	log := h.log.With("request_id", uuid.NewString(), "user_id", ev.UserID)

	var (
		question string
		out      reply.Reply
	)
	switch ev.Kind {
	case EventText:
		question = ev.Text
		out = h.responder.Text(ctx, ev.UserID, ev.Text)
	case EventImage:
		question, out = h.handleImage(ctx, log, ev)
	default:
		log.Debug("unsupported event ignored", "kind", ev.Kind)
		return
	}

	if err := h.replies.Reply(ctx, ev.ReplyToken, out.Text); err != nil {
		log.Warn("reply not delivered", "error", err)
	}
	elapsed := h.now().Sub(start)

	log.Info("message handled",
		"kind", kindName(ev.Kind), "canned", out.Canned, "degraded", out.Degraded, "elapsed", elapsed)

	h.recorder.Record(ctx, record.Record{
		UserID:       ev.UserID,
		Question:     question,
		Answer:       out.Text,
		Reasoning:    out.Reasoning,
		ResponseTime: elapsed,
	})
}

func (h *Handler) handleImage(ctx context.Context, log *slog.Logger, ev IncomingEvent) (string, reply.Reply) {
	data, err := h.media.Fetch(ctx, ev.MessageID)
	if err != nil {
		log.Warn("image fetch failed", "message_id", ev.MessageID, "error", err)
		return record.ImageMarker + " Error", reply.Reply{Text: reply.ImageError()}
	}

	id := ev.MessageID
	if h.archive != nil {
		name, err := h.archive.Save(ev.MessageID, data)
		if err != nil {
			log.Warn("image archive failed", "message_id", ev.MessageID, "error", err)
		} else {
			id = name
		}
	}
	return record.ImageMarker + " " + id, h.responder.Image(ctx, ev.UserID, data)
}

func kindName(k EventKind) string {
	switch k {
	case EventText:
		return "text"
	case EventImage:
		return "image"
	default:
		return "unknown"
	}
}
