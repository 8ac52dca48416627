package app

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/assistant"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/config"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/core"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/metrics"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp/intent"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp/sentiment"
	"github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/nlp/smartreply"
	transporthttp "github.com/yashaswini-mn-26/Pingo-A-ChatApp/internal/transport/http"
)

// App wires together core and transport layers.
type App struct {
	server          *stdhttp.Server
	shutdownTimeout time.Duration
	hub             *core.Hub
	log             *zerolog.Logger
}

// New constructs the application with provided configuration. Every
// assistant table is loaded and validated here, so a bad corpus, lexicon
// or reply table stops the process before it listens.
func New(cfg *config.Config, logger *zerolog.Logger) (*App, error) {
	router, m, err := newRouter(cfg, logger)
	if err != nil {
		return nil, err
	}

	hub := core.NewHub(router, logger, m)
	server := transporthttp.NewServer(hub, cfg, m, logger)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		hub:             hub,
		log:             logger,
	}, nil
}

func newRouter(cfg *config.Config, logger *zerolog.Logger) (*core.Router, *metrics.Metrics, error) {
	corpus, err := intent.LoadCorpus(cfg.CorpusPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load corpus: %w", err)
	}
	classifier, err := intent.Train(corpus)
	if err != nil {
		return nil, nil, fmt.Errorf("train classifier: %w", err)
	}

	lexicon, err := sentiment.LoadLexicon(cfg.LexiconPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load lexicon: %w", err)
	}
	scorer, err := sentiment.New(lexicon)
	if err != nil {
		return nil, nil, fmt.Errorf("build scorer: %w", err)
	}

	table, err := smartreply.LoadTable(cfg.RepliesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load reply table: %w", err)
	}
	suggester, err := smartreply.New(table)
	if err != nil {
		return nil, nil, fmt.Errorf("build suggester: %w", err)
	}

	logger.Info().
		Int("examples", len(corpus.Examples)).
		Int("labels", len(classifier.Labels())).
		Int("lexicon_words", len(lexicon)).
		Int("reply_keys", len(table)).
		Msg("assistant tables loaded")

	var m *metrics.Metrics
	var opts []assistant.Option
	if cfg.MetricsEnabled {
		m = metrics.New()
		opts = append(opts, assistant.WithObserver(func(label intent.Label) {
			m.IntentClassified(string(label))
		}))
	}

	return core.NewRouter(assistant.New(classifier, opts...), scorer, suggester), m, nil
}

// Handler exposes the HTTP handler, mainly for tests.
func (a *App) Handler() stdhttp.Handler {
	return a.server.Handler
}

// Run starts the hub and the HTTP server and blocks until context
// cancellation or fatal error.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go a.hub.Run(ctx)

	go func() {
		a.log.Info().Str("addr", a.server.Addr).Msg("http server listening")
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down http server")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
