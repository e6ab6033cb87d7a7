// Package main is the entry point for the mimetree inspection CLI. It reads
// MIME messages from .eml files or mbox streams, parses them and prints the
// resulting tree.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mimetree/mimetree"
	"github.com/mimetree/mimetree/internal/config"
	"github.com/mimetree/mimetree/internal/input"
	"github.com/mimetree/mimetree/internal/textenc"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration file (optional)")
	format := flag.String("format", "", "input format: auto, eml or mbox (overrides config)")
	flag.Parse()

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *format != "" {
		cfg.Input.Format = *format
	}

	// Setup structured logging
	setupLogger(cfg.Logging.Level)

	parser := mimetree.NewParser(cfg.Options())

	paths := flag.Args()
	if len(paths) == 0 {
		// No paths: read one stream from stdin.
		paths = []string{"-"}
	}

	failures := 0
	for _, path := range paths {
		if err := inspect(parser, cfg, path); err != nil {
			slog.Error("failed to inspect input", "path", path, "error", err)
			failures++
		}
	}
	if failures > 0 {
		os.Exit(1)
	}
}

// inspect reads, transcodes and parses every message in one input and
// prints its diagnostic rendering. Messages that fail to parse are logged
// and skipped; only I/O-level failures abort the input.
func inspect(parser *mimetree.Parser, cfg *config.Config, path string) error {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	messages, err := input.ReadMessages(r, cfg.Input.Format)
	if err != nil {
		return err
	}

	for i, raw := range messages {
		text, err := textenc.Decode(raw, cfg.Input.Charset)
		if err != nil {
			slog.Warn("skipping message that cannot be transcoded",
				"path", path,
				"index", i,
				"error", err,
			)
			continue
		}

		msg, err := parser.Parse(text)
		if err != nil {
			slog.Warn("skipping message that cannot be parsed",
				"path", path,
				"index", i,
				"error", err,
			)
			continue
		}

		fmt.Println(msg.String())
	}
	return nil
}

// loadConfig loads configuration from the specified path (YAML + env override)
// or from environment variables only if no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// setupLogger configures the global slog logger with JSON output and the
// specified log level.
func setupLogger(level string) {
	var logLevel slog.Level

	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
