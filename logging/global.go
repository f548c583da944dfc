package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/giygas/protocols-api/config"
)

// LoggingService owns the process logger and its rotating file
type LoggingService struct {
	Logger *slog.Logger
	file   *RotatingLogger
}

// Options configure InitLogger
type Options struct {
	Dir            string
	Env            config.Environment
	Level          string
	RetentionWeeks int
	MaxFileSize    int64
	Verbose        bool      // keep info logs on the console in test runs
	Console        io.Writer // defaults to stdout
}

var DefaultLoggingService *LoggingService

// InitLogger sets up console and file logging and installs the logger as the
// slog default. When the log directory is unusable it falls back to console only.
func InitLogger(opts Options) *LoggingService {
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	maxSize := opts.MaxFileSize
	if maxSize == 0 {
		maxSize = defaultMaxFileSize
	}
	retention := opts.RetentionWeeks
	if retention <= 0 {
		retention = 4
	}

	consoleHandler := slog.NewTextHandler(console, &slog.HandlerOptions{
		Level: GetConsoleLogLevel(opts.Env, opts.Level, opts.Verbose),
	})

	svc := &LoggingService{}
	rl, err := NewRotatingLogger(opts.Dir, retention, maxSize)
	if err != nil {
		svc.Logger = slog.New(consoleHandler)
		svc.Logger.Error("File logging disabled", "dir", opts.Dir, "error", err)
	} else {
		svc.file = rl
		fileHandler := slog.NewJSONHandler(rl, &slog.HandlerOptions{Level: GetFileLogLevel()})
		svc.Logger = slog.New(&fanoutHandler{handlers: []slog.Handler{consoleHandler, fileHandler}})
	}

	DefaultLoggingService = svc
	slog.SetDefault(svc.Logger)
	return svc
}

// Close flushes and closes the log file
func (s *LoggingService) Close() error {
	if s == nil || s.file == nil {
		return nil
	}
	return s.file.Close()
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// GetConsoleLogLevel picks the console level. An explicit level wins except in
// test runs, which stay quiet unless verbose.
func GetConsoleLogLevel(env config.Environment, level string, verbose bool) slog.Level {
	if env == config.EnvTest {
		if verbose {
			return slog.LevelInfo
		}
		return slog.LevelError
	}
	if level != "" {
		return parseLogLevel(level)
	}
	switch env {
	case config.EnvProduction, config.EnvStaging:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// GetFileLogLevel keeps everything in the file
func GetFileLogLevel() slog.Level {
	return slog.LevelDebug
}

func current() *slog.Logger {
	if DefaultLoggingService == nil || DefaultLoggingService.Logger == nil {
		return fallback
	}
	return DefaultLoggingService.Logger
}

// fallback is used before InitLogger runs
var fallback = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

// Logger returns the process logger, or the stderr fallback before InitLogger
func Logger() *slog.Logger {
	return current()
}

func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

func Error(msg string, args ...any) {
	current().Error(msg, args...)
}

func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

func Debug(msg string, args ...any) {
	current().Debug(msg, args...)
}
