package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mama165/sdk-go/logs"

	"breed-bot/api/internal/app"
	"breed-bot/api/internal/config"
	"breed-bot/api/internal/httpserver"
	"breed-bot/api/internal/line"
	"breed-bot/api/internal/telegram"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	addr := "0.0.0.0:" + cfg.Port
	switch cfg.Platform {
	case config.PlatformTelegram:
		return runTelegram(ctx, cfg, a, addr, log)
	default:
		return runLine(ctx, cfg, a, addr, log)
	}
}

func runLine(ctx context.Context, cfg *config.Config, a *app.App, addr string, log *slog.Logger) error {
	ch, err := line.NewChannel(cfg.LineChannelSecret, cfg.LineChannelToken)
	if err != nil {
		return err
	}
	wh := &line.Webhook{Channel: ch, Handler: a.NewHandler(ch, ch), Log: log}
	mux := httpserver.NewMux(pinger(a), map[string]http.Handler{"POST " + cfg.LineWebhookPath: wh})
	log.Info("line webhook ready", "path", cfg.LineWebhookPath)
	return httpserver.Serve(ctx, addr, mux, log)
}

func runTelegram(ctx context.Context, cfg *config.Config, a *app.App, addr string, log *slog.Logger) error {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	r := &telegram.Router{Bot: api, Engines: a.Engines, Intro: a.Intro(), Log: log}
	r.Handler = a.NewHandler(r, r)

	routes := map[string]http.Handler{}
	if cfg.WebhookURL != "" {
		path := "/webhook/" + shortHash(api.Token)
		if err := telegram.RegisterWebhook(api, cfg.WebhookURL, path); err != nil {
			return fmt.Errorf("telegram webhook: %w", err)
		}
		routes["POST "+path] = r.Webhook()
		log.Info("telegram webhook mode", "path", path)
		return httpserver.Serve(ctx, addr, httpserver.NewMux(pinger(a), routes), log)
	}

	if _, err := api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		log.Warn("telegram: delete webhook failed", "error", err)
	}
	log.Info("telegram polling mode")
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	errc := make(chan error, 1)
	go func() {
		errc <- httpserver.Serve(ctx, addr, httpserver.NewMux(pinger(a), routes), log)
		cancel()
	}()
	telegram.Poll(ctx, api, log, r.HandleUpdate)
	cancel()
	return <-errc
}

func pinger(a *app.App) httpserver.Pinger {
	if a.DB == nil {
		return nil
	}
	return a.DB
}

// shortHash derives a stable secret webhook path from the bot token (FNV-1a).
func shortHash(s string) string {
	h := uint64(1469598103934665603)
	const prime = 1099511628211
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return fmt.Sprintf("%016x", h)
}
