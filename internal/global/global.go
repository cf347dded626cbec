package global

import (
	"context"
)

type ContextKey uint

const (
	CancelKey ContextKey = iota
	VersionKey
	ConfigKey
)

// Version returns the program version stored in ctx, or "unknown"
func Version(ctx context.Context) string {
	if v, ok := ctx.Value(VersionKey).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// Cancel cancels the command context stored in ctx, if any
func Cancel(ctx context.Context) {
	if cancel, ok := ctx.Value(CancelKey).(context.CancelFunc); ok {
		cancel()
	}
}
