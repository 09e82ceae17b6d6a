// Package line adapts the LINE Messaging API to bot events.
package line

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/line/line-bot-sdk-go/v7/linebot"

	"breed-bot/api/internal/bot"
	"breed-bot/api/internal/util"
)

// MaxMessageLen is the LINE limit for one text message.
const MaxMessageLen = 5000

type EventHandler interface {
	Handle(ctx context.Context, ev bot.IncomingEvent)
}

// Channel replies to and downloads from one LINE channel.
type Channel struct {
	Client *linebot.Client
}

func NewChannel(secret, token string, opts ...linebot.ClientOption) (*Channel, error) {
	c, err := linebot.New(secret, token, opts...)
	if err != nil {
		return nil, fmt.Errorf("line: client: %w", err)
	}
	return &Channel{Client: c}, nil
}

// Reply implements bot.ReplyChannel.
func (c *Channel) Reply(ctx context.Context, replyToken, text string) error {
	msg := linebot.NewTextMessage(util.Truncate(text, MaxMessageLen))
	if _, err := c.Client.ReplyMessage(replyToken, msg).WithContext(ctx).Do(); err != nil {
		return fmt.Errorf("line: reply: %w", err)
	}
	return nil
}

// Fetch implements bot.MediaFetcher.
func (c *Channel) Fetch(ctx context.Context, messageID string) ([]byte, error) {
	res, err := c.Client.GetMessageContent(messageID).WithContext(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("line: content %s: %w", messageID, err)
	}
	defer res.Content.Close()
	return io.ReadAll(res.Content)
}

// Webhook is the callback endpoint. Events are handled before the 200 is
// written.
type Webhook struct {
	Channel *Channel
	Handler EventHandler
	Log     *slog.Logger
}

func (w *Webhook) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	events, err := w.Channel.Client.ParseRequest(r)
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			w.Log.Warn("line webhook: invalid signature")
			http.Error(rw, "invalid signature", http.StatusBadRequest)
			return
		}
		w.Log.Error("line webhook: bad request", "error", err)
		http.Error(rw, "bad request", http.StatusBadRequest)
		return
	}

	ctx := context.WithoutCancel(r.Context())
	for _, e := range events {
		ev, ok := EventFromLine(e)
		if !ok {
			w.Log.Debug("line webhook: event ignored", "type", e.Type)
			continue
		}
		w.Handler.Handle(ctx, ev)
	}
	_, _ = io.WriteString(rw, "OK")
}

// EventFromLine maps text and image message events; everything else is
// ignored.
func EventFromLine(e *linebot.Event) (bot.IncomingEvent, bool) {
	if e.Type != linebot.EventTypeMessage {
		return bot.IncomingEvent{}, false
	}
	// The clock starts when the event is handled; e.Timestamp is when LINE
	// created it and includes delivery delay.
	ev := bot.IncomingEvent{ReplyToken: e.ReplyToken, ReceivedAt: time.Now()}
	if e.Source != nil {
		ev.UserID = e.Source.UserID
	}
	switch m := e.Message.(type) {
	case *linebot.TextMessage:
		ev.Kind = bot.EventText
		ev.Text = m.Text
		ev.MessageID = m.ID
	case *linebot.ImageMessage:
		ev.Kind = bot.EventImage
		ev.MessageID = m.ID
	default:
		return bot.IncomingEvent{}, false
	}
	return ev, true
}
