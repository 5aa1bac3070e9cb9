package logging

import (
	"context"
	"io"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// secretGroup names the slog group that holds redacted key material.
const secretGroup = "secret"

// Logger is what the sampler, the key generator and the attacks log through.
// Every method takes the search's context so handlers can correlate the
// attempts of one key generation or one attack.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// New binds a Logger to logger, or to slog.Default() when logger is nil.
func New(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

// Discard returns a Logger that drops every record. Components start with it.
func Discard() Logger {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l Logger) Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// Component tags every record of l with the engine stage that emitted it,
// e.g. "sampler" under the key generator.
func Component(l Logger, name string) Logger {
	return OrDiscard(l).With("component", name)
}

type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *slogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *slogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *slogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// Redacted stands in for one private value (d, p, q or a recovered exponent).
// The key is logged, the number is not.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Secrets groups the redacted stand-ins for several private values under
// "secret", so a text handler prints secret.d=[redacted] and so on.
func Secrets(keys ...string) slog.Attr {
	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, Redacted(k))
	}
	return slog.Group(secretGroup, attrs...)
}

// Placeholder returns the string logged in place of a private value.
func Placeholder() string {
	return redactedPlaceholder
}
