package logx

import "log/slog"

// slogAdapter bridges the Logger interface onto a *slog.Logger.
type slogAdapter struct {
	base *slog.Logger
}

// NewSlogAdapter wraps a *slog.Logger as a Logger.
func NewSlogAdapter(base *slog.Logger) Logger {
	return &slogAdapter{base: base}
}

func (a *slogAdapter) Debug(msg string, fields ...Field) { a.base.Debug(msg, pairs(fields)...) }
func (a *slogAdapter) Info(msg string, fields ...Field)  { a.base.Info(msg, pairs(fields)...) }
func (a *slogAdapter) Warn(msg string, fields ...Field)  { a.base.Warn(msg, pairs(fields)...) }
func (a *slogAdapter) Error(msg string, fields ...Field) { a.base.Error(msg, pairs(fields)...) }

// With returns a Logger whose entries all carry the given fields.
func (a *slogAdapter) With(fields ...Field) Logger {
	return &slogAdapter{base: a.base.With(pairs(fields)...)}
}

// Sync is a no-op; slog handlers write through.
func (a *slogAdapter) Sync() error { return nil }

// pairs flattens fields into slog's alternating key/value form.
func pairs(fields []Field) []any {
	args := make([]any, 0, 2*len(fields))
	for _, f := range fields {
		args = append(args, f.Key, f.Value)
	}
	return args
}
