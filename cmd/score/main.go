package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"synapse-go/internal/app"
	"synapse-go/internal/config"
	"synapse-go/internal/export"
	"synapse-go/internal/logger"
	"synapse-go/internal/processor"
	"synapse-go/internal/session"
	"synapse-go/internal/transcript"
)

func main() {
	transcriptPath := flag.String("transcript", "", "transcript file (speaker: text lines or JSON turns)")
	scenarioID := flag.String("scenario", "", "scenario id from the catalog")
	role := flag.String("role", "", "user role shown in the report")
	catalogPath := flag.String("catalog", "", "scenario catalog (.yaml or .xlsx); overrides config")
	outDir := flag.String("out", ".", "directory for the exported workbook")
	batchPath := flag.String("batch", "", "XLSX batch of sessions to score into the session store")
	workers := flag.Int("workers", 4, "sessions scored in parallel in batch mode")
	flag.Parse()

	single := *transcriptPath != "" && *scenarioID != ""
	if !single && *batchPath == "" {
		fmt.Fprintln(os.Stderr, "usage: score --transcript file --scenario id [--role r] [--out dir] [--catalog path]")
		fmt.Fprintln(os.Stderr, "       score --batch sessions.xlsx [--workers N] [--catalog path]")
		os.Exit(2)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *catalogPath != "" {
		cfg.Scenarios.Path = *catalogPath
	}

	ctx := context.Background()
	if single {
		err = runSingle(ctx, cfg, *transcriptPath, *scenarioID, *role, *outDir)
	} else {
		err = runBatch(ctx, cfg, *batchPath, *workers)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runSingle(ctx context.Context, cfg config.Config, path, scenarioID, role, outDir string) error {
	log := logger.New().WithComponent("score")

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	conv, err := transcript.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parse transcript: %w", err)
	}

	reg, err := app.Lexicons(cfg)
	if err != nil {
		return err
	}
	loc, _ := reg.Get(cfg.Scoring.Locale)
	classifier, closer, err := app.Classifier(ctx, cfg, loc, log)
	if err != nil {
		return err
	}
	defer closer.Close()

	catalog, err := app.Scenarios(cfg)
	if err != nil {
		return err
	}
	sc, err := catalog.Get(ctx, scenarioID)
	if err != nil {
		return err
	}

	res, err := app.Pipeline(cfg, reg, classifier, log).Score(ctx, conv, sc, role)
	if err != nil {
		return err
	}

	at := time.Now()
	data, err := export.Render(res.Report, export.Meta{
		Product:   cfg.Export.Product,
		Scenario:  sc,
		UserRole:  role,
		Timestamp: at,
	})
	if err != nil {
		return err
	}
	out := filepath.Join(outDir, export.Filename(cfg.Export.Product, sc.Area, sc.Title, at))
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	log.WithField("path", out).WithField("overall", res.Report.OverallScore).Info("report exported")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func runBatch(ctx context.Context, cfg config.Config, path string, workers int) error {
	log := logger.New().WithComponent("score")

	reqs, err := processor.LoadBatch(path)
	if err != nil {
		return fmt.Errorf("load batch: %w", err)
	}
	log.WithField("sessions", len(reqs)).Info("batch loaded")

	reg, err := app.Lexicons(cfg)
	if err != nil {
		return err
	}
	loc, _ := reg.Get(cfg.Scoring.Locale)
	classifier, closer, err := app.Classifier(ctx, cfg, loc, log)
	if err != nil {
		return err
	}
	defer closer.Close()

	catalog, err := app.Scenarios(cfg)
	if err != nil {
		return err
	}
	store, err := session.NewSQLiteStore(cfg.Store.Path, cfg.Store.Compress)
	if err != nil {
		return err
	}
	defer store.Close()

	deps := processor.Deps{
		Scorer:    app.Pipeline(cfg, reg, classifier, log),
		Scenarios: catalog,
		Sessions:  store,
		Product:   cfg.Export.Product,
		Log:       log,
	}
	if cfg.Transcribe.URL != "" {
		deps.Transcriber = transcript.NewTranscriber(cfg.Transcribe.URL)
	}
	svc := processor.New(deps)

	results := svc.ScoreBatch(ctx, reqs, workers)
	failed := 0
	for _, r := range results {
		if r.Error != "" {
			failed++
		}
	}
	log.WithField("scored", len(results)-failed).WithField("failed", failed).Info("batch finished")

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
