package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"breed-bot/api/internal/bot"
	"breed-bot/api/internal/llm"
	"breed-bot/api/internal/util"
)

// MaxMessageLen is the Telegram limit for one text message.
const MaxMessageLen = 4096

type Router struct {
	Bot     *tgbotapi.BotAPI
	Handler *bot.Handler
	Engines *llm.Manager
	// Intro answers /start.
	Intro string
	HTTP  *http.Client
	Log   *slog.Logger
}

func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil {
		return
	}
	if msg.IsCommand() {
		r.HandleCommand(msg)
		return
	}
	ev, ok := EventFromMessage(msg)
	if !ok {
		return
	}
	r.Handler.Handle(ctx, ev)
}

func (r *Router) HandleCommand(msg *tgbotapi.Message) {
	cid := msg.Chat.ID
	switch msg.Command() {
	case "start":
		r.send(cid, r.Intro)
	case "engine":
		r.send(cid, r.engineCommand(userID(msg), msg.CommandArguments()))
	default:
		r.send(cid, "ไม่รู้จักคำสั่งนี้ครับ ใช้ได้: /start, /engine")
	}
}

// engineCommand shows the current backend, or switches to the named one.
func (r *Router) engineCommand(uid, args string) string {
	fields := strings.Fields(args)
	available := strings.Join(r.Engines.Names(), ", ")
	if len(fields) == 0 {
		return fmt.Sprintf("ตอนนี้ใช้: %s\nเลือกได้: %s\nตัวอย่าง: /engine ollama", r.Engines.Get(uid).Name(), available)
	}
	name := strings.ToLower(fields[0])
	if name == "default" {
		r.Engines.Reset(uid)
		return "กลับไปใช้: " + r.Engines.Default().Name()
	}
	g, err := r.Engines.Set(uid, name)
	if err != nil {
		r.Log.Debug("engine switch rejected", "user_id", uid, "error", err)
		return "ไม่รู้จัก " + name + "\nเลือกได้: " + available
	}
	r.Log.Info("engine switched", "user_id", uid, "backend", g.Name())
	return "เปลี่ยนเป็น: " + g.Name()
}

// Reply implements bot.ReplyChannel. The reply token is the chat id.
func (r *Router) Reply(_ context.Context, replyToken, text string) error {
	cid, err := strconv.ParseInt(replyToken, 10, 64)
	if err != nil {
		return fmt.Errorf("telegram: bad chat id %q: %w", replyToken, err)
	}
	if _, err := r.Bot.Send(tgbotapi.NewMessage(cid, util.Truncate(text, MaxMessageLen))); err != nil {
		return fmt.Errorf("telegram: send: %w", err)
	}
	return nil
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, util.Truncate(text, MaxMessageLen))); err != nil {
		r.Log.Warn("telegram send failed", "chat_id", chatID, "error", err)
	}
}

// EventFromMessage maps a chat message to a bot event. Photos use the
// largest size, identified by its file id.
func EventFromMessage(msg *tgbotapi.Message) (bot.IncomingEvent, bool) {
	ev := bot.IncomingEvent{
		UserID:     userID(msg),
		ReplyToken: strconv.FormatInt(msg.Chat.ID, 10),
		ReceivedAt: time.Now(),
	}
	switch {
	case len(msg.Photo) > 0:
		ev.Kind = bot.EventImage
		ev.MessageID = msg.Photo[len(msg.Photo)-1].FileID
	case msg.Text != "":
		ev.Kind = bot.EventText
		ev.Text = msg.Text
	default:
		return bot.IncomingEvent{}, false
	}
	return ev, true
}

func userID(msg *tgbotapi.Message) string {
	if msg.From != nil {
		return strconv.FormatInt(msg.From.ID, 10)
	}
	return strconv.FormatInt(msg.Chat.ID, 10)
}
