// Package app assembles the bot's long-lived components from configuration.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"breed-bot/api/internal/bot"
	"breed-bot/api/internal/config"
	"breed-bot/api/internal/llm"
	"breed-bot/api/internal/llm/anthropic"
	"breed-bot/api/internal/llm/gemini"
	"breed-bot/api/internal/llm/hosted"
	"breed-bot/api/internal/llm/ollama"
	"breed-bot/api/internal/llm/openai"
	"breed-bot/api/internal/record"
	"breed-bot/api/internal/reply"
	"breed-bot/api/internal/store"
	"breed-bot/api/internal/vision"
)

type App struct {
	Engines  *llm.Manager
	Composer *reply.Composer
	Recorder *record.Recorder
	Archive  *bot.Archive
	Canned   map[string]string
	// DB is nil when no Postgres DSN is configured.
	DB *sql.DB

	log     *slog.Logger
	network *vision.ONNXNetwork
}

// New loads the model, registers backends and opens the record sinks.
func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	a := &App{log: log}

	net, err := vision.NewONNXNetwork(cfg.ModelPath, cfg.OnnxRuntimeLib)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", cfg.ModelPath, err)
	}
	a.network = net
	log.Info("model loaded", "path", cfg.ModelPath, "classes", vision.NumClasses)

	a.Engines, err = Backends(cfg, log)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Canned, err = reply.LoadCanned(cfg.CannedRepliesFile)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Composer = reply.NewComposer(a.Engines, vision.NewClassifier(net), a.Canned, log)

	sinks := []record.Sink{record.NewDailyCSV(cfg.LogDir, cfg.LogThinking)}
	if dsn := ResolveDSN(envLookup); dsn != "" {
		a.DB, err = openDB(ctx, dsn, log)
		if err != nil {
			a.Close()
			return nil, err
		}
		repo := store.NewConversationRepo(a.DB)
		if err := repo.EnsureSchema(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("conversations schema: %w", err)
		}
		sinks = append(sinks, repo)
	}
	a.Recorder = record.NewRecorder(log, sinks...)

	if cfg.ImagesDir != "" {
		a.Archive = bot.NewArchive(cfg.ImagesDir)
	}
	return a, nil
}

// NewHandler builds an event handler for one transport.
func (a *App) NewHandler(replies bot.ReplyChannel, media bot.MediaFetcher) *bot.Handler {
	return bot.NewHandler(a.Composer, replies, media, a.Archive, a.Recorder, a.log)
}

// Intro is the /start greeting.
func (a *App) Intro() string {
	if s, ok := a.Canned[reply.PhraseName]; ok {
		return s
	}
	return reply.DefaultCanned()[reply.PhraseName]
}

func (a *App) Close() {
	if a.network != nil {
		a.network.Close()
	}
	if a.DB != nil {
		_ = a.DB.Close()
	}
}

// Backends registers hosted and ollama always, and the SDK backends whose
// keys are set or that are the default. A default backend without its key is
// still registered: its calls fail and replies degrade to the fallback text.
// Every backend is wrapped with logging.
func Backends(cfg *config.Config, log *slog.Logger) (*llm.Manager, error) {
	if !cfg.HasKey(cfg.LLMBackend) {
		log.Warn("default backend has no key, text replies will use the fallback",
			"backend", cfg.LLMBackend, "env", cfg.KeyName(cfg.LLMBackend))
	}
	wanted := func(name string) bool { return cfg.HasKey(name) || cfg.LLMBackend == name }

	all := []llm.Generator{
		hosted.New(cfg.ThaiLLMURL, cfg.ThaiLLMAPIKey, cfg.ThaiLLMModel, cfg.LLMTimeout),
		ollama.New(cfg.OllamaURL, cfg.OllamaModel, cfg.LLMTimeout),
	}
	if wanted("gemini") {
		all = append(all, gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout))
	}
	if wanted("openai") {
		all = append(all, openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.LLMTimeout))
	}
	if wanted("anthropic") {
		all = append(all, anthropic.New(cfg.AnthropicAPIKey, cfg.AnthropicModel, "", cfg.LLMTimeout))
	}

	var def llm.Generator
	others := make([]llm.Generator, 0, len(all))
	for _, g := range all {
		g = llm.WithLogging(g, log)
		if g.Name() == cfg.LLMBackend {
			def = g
			continue
		}
		others = append(others, g)
	}
	if def == nil {
		return nil, fmt.Errorf("unknown backend %q", cfg.LLMBackend)
	}
	m := llm.NewManager(def, others...)
	log.Info("backends registered", "default", def.Name(), "available", m.Names())
	return m, nil
}

func openDB(ctx context.Context, dsn string, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Ping: %w", err)
	}
	log.Info("db connected", "dsn", SafeDSNSummary(dsn))
	return db, nil
}
