// main is the entry point of the lang-basics exercises.
//
// STARTUP SEQUENCE:
//  1. Load configuration (YAML file and/or environment variables)
//  2. Initialise the logger
//  3. Open the SQLite database the exercises store records in
//  4. Register every exercise, in order
//  5. Run the configured exercises, writing their output to stdout
//
// RUNNING:
//
//	go run ./cmd/lang-basics --config=config/local.yaml
//
// or, with no config file at all:
//
//	EXERCISES=shapes,attributes OUTPUT_FORMAT=yaml go run ./cmd/lang-basics
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/aanand-mishra/lang-basics/internal/codec/text"
	"github.com/aanand-mishra/lang-basics/internal/config"
	"github.com/aanand-mishra/lang-basics/internal/exercise"
	"github.com/aanand-mishra/lang-basics/internal/storage/sqlite"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// Logs go to stderr; stdout is reserved for exercise output.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting lang-basics",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	format, err := text.ParseFormat(cfg.Output.Format)
	if err != nil {
		log.Error("invalid output format", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	storage, err := sqlite.New(cfg.StoragePath)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer storage.Close()

	log.Info("storage initialised", slog.String("path", cfg.StoragePath))

	// ── 4. Register Exercises ─────────────────────────────────────────────
	// Exercise table:
	//   shapes      → area / perimeter of a rectangle and a square
	//   formatting  → debug, display and pretty debug output
	//   derives     → binary encoding, copy, clone, equality
	//   attributes  → tag-driven text encoding
	registry := exercise.NewRegistry().
		Handle("shapes", exercise.Shapes()).
		Handle("formatting", exercise.Formatting()).
		Handle("derives", exercise.Derives(storage)).
		Handle("attributes", exercise.Attributes(format))

	// ── 5. Run ────────────────────────────────────────────────────────────
	run := registry.RunAll
	if len(cfg.Exercises) > 0 {
		log.Debug("running selected exercises",
			slog.Any("exercises", cfg.Exercises))
		run = func(w io.Writer) error {
			return registry.RunSelected(cfg.Exercises, w)
		}
	}

	if err := run(os.Stdout); err != nil {
		log.Error("exercise failed", slog.String("error", err.Error()))
		storage.Close()
		os.Exit(1) // deferred calls do not run after os.Exit
	}

	log.Info("all exercises finished")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
