package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/crimson-sun/rake/internal/audit"
	"github.com/crimson-sun/rake/internal/config"
	"github.com/crimson-sun/rake/internal/dict"
	"github.com/crimson-sun/rake/internal/docs"
	"github.com/crimson-sun/rake/internal/engine"
	"github.com/crimson-sun/rake/internal/escalate"
	"github.com/crimson-sun/rake/internal/logging"
	"github.com/crimson-sun/rake/internal/output"
	"github.com/crimson-sun/rake/internal/output/anomalyjson"
	"github.com/crimson-sun/rake/internal/output/cleancsv"
	"github.com/crimson-sun/rake/internal/output/multi"
	"github.com/crimson-sun/rake/internal/output/sqlite"
	"github.com/crimson-sun/rake/internal/pipeline"
	"github.com/crimson-sun/rake/internal/source"
)

func main() {
	cfg := config.Load()

	flag.StringVar(&cfg.Input, "input", cfg.Input, "path to the raw inventory CSV")
	flag.StringVar(&cfg.OutDir, "outdir", cfg.OutDir, "directory to write outputs")
	flag.BoolVar(&cfg.UseLLM, "use-llm", cfg.UseLLM, "enable LLM escalation when OPENAI_API_KEY is present")
	flag.StringVar(&cfg.DictPath, "dict", cfg.DictPath, "optional YAML dictionary overlay")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "row processing workers")
	flag.StringVar(&cfg.SQLitePath, "sqlite", cfg.SQLitePath, "optional SQLite database to mirror results into")
	flag.Parse()

	logging.Init(logging.ParseLevel(cfg.LogLevel))

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}
	if err := docs.Ensure(cfg.OutDir); err != nil {
		log.Fatalf("failed to write docs: %v", err)
	}

	dicts := dict.Default()
	if cfg.DictPath != "" {
		var err error
		dicts, err = dict.Load(cfg.DictPath)
		if err != nil {
			log.Fatalf("failed to load dictionaries: %v", err)
		}
	}

	auditLog, err := audit.Open(filepath.Join(cfg.OutDir, "prompts.md"))
	if err != nil {
		log.Fatalf("failed to open audit log: %v", err)
	}
	defer auditLog.Close()

	var engOpts []engine.Option
	switch {
	case cfg.UseLLM && cfg.APIKey != "":
		clientOpts := []escalate.Option{
			escalate.WithModel(cfg.LLMModel),
			escalate.WithTimeout(cfg.LLMTimeout),
		}
		if cfg.LLMEndpoint != "" {
			clientOpts = append(clientOpts, escalate.WithEndpoint(cfg.LLMEndpoint))
		}
		cls := escalate.NewClient(cfg.APIKey, clientOpts...)
		engOpts = append(engOpts, engine.WithEscalation(cls, auditLog))
	case cfg.UseLLM:
		slog.Warn("escalation requested but OPENAI_API_KEY is not set; using heuristics only")
	}
	eng := engine.New(dicts, engOpts...)

	// Graceful shutdown: cancels any in-flight escalation calls.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rows, err := source.NewCSV(cfg.Input).Records(ctx)
	if err != nil {
		log.Fatalf("failed to read %s: %v", cfg.Input, err)
	}

	slog.Info("processing inventory", "rows", len(rows), "workers", cfg.Workers)
	result := pipeline.Run(ctx, eng, rows, cfg.Workers)

	cleanPath := filepath.Join(cfg.OutDir, "inventory_clean.csv")
	anomaliesPath := filepath.Join(cfg.OutDir, "anomalies.json")

	sinks := make([]output.Output, 0, 3)
	recordsCSV, err := cleancsv.New(cleanPath)
	if err != nil {
		log.Fatalf("failed to create %s: %v", cleanPath, err)
	}
	sinks = append(sinks, recordsCSV, anomalyjson.New(anomaliesPath))
	if cfg.SQLitePath != "" {
		db, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			log.Fatalf("failed to open %s: %v", cfg.SQLitePath, err)
		}
		sinks = append(sinks, db)
	}
	out := multi.New(sinks...)

	for _, rec := range result.Records {
		if err := out.WriteRecord(ctx, rec); err != nil {
			log.Fatalf("failed to write record: %v", err)
		}
	}
	for _, a := range result.Anomalies {
		if err := out.WriteAnomaly(ctx, a); err != nil {
			log.Fatalf("failed to write anomaly: %v", err)
		}
	}
	if err := out.Close(); err != nil {
		log.Fatalf("failed to finalize outputs: %v", err)
	}

	slog.Info("done", "records", len(result.Records), "anomalies", len(result.Anomalies))
	fmt.Printf("Wrote: %s\n", cleanPath)
	fmt.Printf("Wrote: %s\n", anomaliesPath)
	fmt.Printf("Wrote docs into: %s\n", cfg.OutDir)
}
