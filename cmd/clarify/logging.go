package main

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig controls where the CLI logs.
type LogConfig struct {
	Verbose bool   // log to stderr
	File    string // log file path, empty for none

	MaxSize    int // megabytes before rotating
	MaxBackups int
	MaxAge     int // days
}

// newLogger builds the CLI logger and a func that releases the log file.
// With nothing to log to, it discards.
func newLogger(cfg LogConfig, stderr io.Writer) (*slog.Logger, func() error) {
	var (
		writers []io.Writer
		closeFn = func() error { return nil }
	)
	if cfg.Verbose {
		writers = append(writers, stderr)
	}
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    withDefault(cfg.MaxSize, 10),
			MaxBackups: withDefault(cfg.MaxBackups, 3),
			MaxAge:     withDefault(cfg.MaxAge, 30),
			Compress:   true,
		}
		writers = append(writers, file)
		closeFn = file.Close
	}

	if len(writers) == 0 {
		return slog.New(slog.DiscardHandler), closeFn
	}
	h := slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), closeFn
}

func withDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
