package telegram

import (
	"context"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// RegisterWebhook points Telegram at baseURL+path and drops queued updates.
func RegisterWebhook(api *tgbotapi.BotAPI, baseURL, path string) error {
	wh, err := tgbotapi.NewWebhook(strings.TrimRight(baseURL, "/") + path)
	if err != nil {
		return err
	}
	wh.DropPendingUpdates = true
	_, err = api.Request(wh)
	return err
}

// Webhook serves Telegram webhook posts.
func (r *Router) Webhook() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		upd, err := r.Bot.HandleUpdate(req)
		if err != nil {
			r.Log.Warn("telegram webhook: bad update", "error", err)
			http.Error(w, "bad update", http.StatusBadRequest)
			return
		}
		r.HandleUpdate(context.WithoutCancel(req.Context()), *upd)
		w.WriteHeader(http.StatusOK)
	})
}
