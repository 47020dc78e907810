package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"synapse-go/internal/api"
	"synapse-go/internal/app"
	"synapse-go/internal/config"
	"synapse-go/internal/logger"
	"synapse-go/internal/processor"
	"synapse-go/internal/session"
	"synapse-go/internal/transcript"
)

func main() {
	_ = godotenv.Load() // loads .env
	log := logger.New()
	log.WithField("service", "synapse-go").Info("starting service")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	reg, err := app.Lexicons(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to load lexicon")
	}
	if cfg.Scoring.LexiconPath != "" && cfg.Scoring.WatchLexicon {
		if err := reg.Watch(ctx, cfg.Scoring.LexiconPath, log.WithComponent("lexicon")); err != nil {
			log.WithError(err).Warn("lexicon watch disabled")
		}
	}
	loc, _ := reg.Get(cfg.Scoring.Locale)

	classifier, closeClassifier, err := app.Classifier(ctx, cfg, loc, log.Entry)
	if err != nil {
		log.WithError(err).Fatal("failed to build sentiment classifier")
	}
	defer closeClassifier.Close()

	catalog, err := app.Scenarios(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to load scenario catalog")
	}
	log.WithField("scenarios", catalog.Len()).WithField("path", cfg.Scenarios.Path).Info("scenario catalog loaded")

	store, err := session.NewSQLiteStore(cfg.Store.Path, cfg.Store.Compress)
	if err != nil {
		log.WithError(err).Fatal("failed to open session store")
	}
	defer store.Close()

	claims, closeClaims, err := app.Claimer(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect claim store")
	}
	defer closeClaims.Close()

	deps := processor.Deps{
		Scorer:    app.Pipeline(cfg, reg, classifier, log.Entry),
		Scenarios: catalog,
		Sessions:  store,
		Claims:    claims,
		Product:   cfg.Export.Product,
		Log:       log.WithComponent("processor"),
	}
	if cfg.Transcribe.URL != "" {
		deps.Transcriber = transcript.NewTranscriber(cfg.Transcribe.URL)
	}
	svc := processor.New(deps)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewRouter(&api.Container{Scenarios: catalog, Sessions: svc, Log: log}),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdown); err != nil {
			log.WithError(err).Warn("graceful shutdown failed")
		}
	}()

	log.WithField("addr", cfg.Server.Addr).
		WithField("locale", cfg.Scoring.Locale).
		WithField("sentiment", cfg.Sentiment.Provider).
		Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server terminated")
	}
	log.Info("server stopped")
}
