// Command flatfiledemo is a minimal runnable harness around the
// config/field/entity/record packages: it picks one job from a manifest by
// name, opens the job's input file, and decodes it line by line into the
// demo's own BatchHeader/LineItem entities, writing each decoded record to
// stdout as JSON. It is
// deliberately not a full orchestrator (no batching, no persistence, no
// scheduling) — just enough to drive RecordParser end to end, reading
// lines the same way a bufio.Reader paired with
// go-corelib/ios.ByteReadLine would in a production import job.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/jf-tech/go-corelib/ios"
	"github.com/lmittmann/tint"

	"github.com/jarede-dev/flatfiledecoder/config"
	"github.com/jarede-dev/flatfiledecoder/entity"
	"github.com/jarede-dev/flatfiledecoder/importctx"
	"github.com/jarede-dev/flatfiledecoder/record"
)

// runConfig is the demo's own environment-bound configuration, the
// out-of-core analogue of the layout/manifest YAML configuration the
// decoding packages themselves take as arguments.
type runConfig struct {
	ManifestPath string `env:"FLATFILE_MANIFEST,required"`
	JobName      string `env:"FLATFILE_JOB,required"`
	BatchID      string `env:"FLATFILE_BATCH_ID"`
	LogLevel     string `env:"FLATFILE_LOG_LEVEL" envDefault:"info"`
}

func main() {
	if err := run(); err != nil {
		slog.Error("flatfiledemo failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg runConfig
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("flatfiledemo: invalid environment configuration: %w", err)
	}
	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	manifestFile, err := os.Open(cfg.ManifestPath)
	if err != nil {
		return fmt.Errorf("flatfiledemo: opening manifest: %w", err)
	}
	defer manifestFile.Close()

	jobs, err := config.LoadManifest(manifestFile)
	if err != nil {
		return fmt.Errorf("flatfiledemo: loading manifest: %w", err)
	}
	job, err := findJob(jobs, cfg.JobName)
	if err != nil {
		return err
	}

	layoutFile, err := os.Open(job.LayoutPath)
	if err != nil {
		return fmt.Errorf("flatfiledemo: opening layout '%s': %w", job.LayoutPath, err)
	}
	defer layoutFile.Close()

	layout, err := config.LoadLayout(layoutFile)
	if err != nil {
		return fmt.Errorf("flatfiledemo: loading layout: %w", err)
	}

	registry := entity.NewRegistry()
	registry.Register("BatchHeader", &BatchHeader{})
	registry.Register("LineItem", &LineItem{})
	entityType, err := registry.Resolve(job.TargetEntity)
	if err != nil {
		return err
	}

	batchID := job.BatchID
	if batchID == "" {
		batchID = cfg.BatchID
	}
	if batchID == "" {
		batchID = uuid.NewString()
	}
	ctx := importctx.ImportContext{
		ImportedAtUTC: time.Now().UTC(),
		SourceSystem:  job.SourceSystem,
		BatchID:       batchID,
	}
	logger.Info("starting job", "job", job.Name, "mode", job.Mode, "batchId", ctx.BatchID)

	return decodeFile(job, entityType, layout, registry, ctx, logger)
}

func findJob(jobs []config.Job, name string) (config.Job, error) {
	for _, j := range jobs {
		if j.Name == name {
			return j, nil
		}
	}
	return config.Job{}, fmt.Errorf("flatfiledemo: no job named '%s' in manifest", name)
}

func decodeFile(
	job config.Job, entityType reflect.Type, layout *config.Layout, registry *entity.Registry,
	ctx importctx.ImportContext, logger *slog.Logger,
) error {
	inputFile, err := os.Open(job.InputGlob)
	if err != nil {
		return fmt.Errorf("flatfiledemo: opening input '%s': %w", job.InputGlob, err)
	}
	defer inputFile.Close()

	parser := record.NewRecordParser(registry)
	r := bufio.NewReader(inputFile)
	enc := json.NewEncoder(os.Stdout)
	lineNo := 0
	for {
		line, err := ios.ByteReadLine(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("flatfiledemo: reading input: %w", err)
		}
		lineNo++
		if len(line) == 0 {
			continue
		}
		decoded, err := decodeLine(parser, string(line), entityType, layout, job.Mode, ctx)
		if err != nil {
			var cfgErr *config.Error
			if errors.As(err, &cfgErr) {
				return fmt.Errorf("flatfiledemo: fatal configuration error at line %d: %w", lineNo, err)
			}
			logger.Warn("skipping unparsable line", "line", lineNo, "error", err)
			continue
		}
		if err := enc.Encode(decoded); err != nil {
			return fmt.Errorf("flatfiledemo: encoding decoded record: %w", err)
		}
	}
	logger.Info("job complete", "job", job.Name, "linesRead", lineNo)
	return nil
}

func decodeLine(
	parser *record.RecordParser, line string, entityType reflect.Type, layout *config.Layout,
	mode config.ParseMode, ctx importctx.ImportContext,
) (interface{}, error) {
	if mode == config.ModeGraph {
		return parser.ParseGraph(line, entityType, layout, ctx)
	}
	return parser.ParseSingle(line, entityType, layout, ctx)
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: time.Kitchen,
	}))
}
