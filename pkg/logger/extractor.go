package logger

import (
	"context"
	"log/slog"
)

// ContextValue returns an extractor that logs the string stored under key as attr.
// Empty or missing values are skipped.
func ContextValue(key any, attr string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			return slog.String(attr, v), true
		}
		return slog.Attr{}, false
	}
}
