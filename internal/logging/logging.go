// Package logging builds the process-wide zap logger.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how verbosely to log.
type Options struct {
	Level string
	// File is an output path. Empty means stderr, unless Quiet is set.
	File string
	// Quiet discards output when no File is set. The terminal UI uses it so
	// log lines never corrupt the alternate screen.
	Quiet bool
}

// New returns a JSON logger configured by opts.
func New(opts Options) (*zap.Logger, error) {
	if opts.File == "" && opts.Quiet {
		return zap.NewNop(), nil
	}

	level, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.Sampling = nil
	if opts.File != "" {
		cfg.OutputPaths = []string{opts.File}
		cfg.ErrorOutputPaths = []string{opts.File}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger.With(zap.String("app", "stride")), nil
}
