// Package logging defines the structured-logging interface shared by the
// portal CLI and the data server. The CLI wraps slog, the server wraps zap;
// consumers only see Logger.
package logging

import "context"

// Logger is a context-aware, structured logger. The variadic args are
// key–value pairs:
//
//	log.Info(ctx, "catalog loaded", "products", len(list))
type Logger interface {
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
