package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/bluefalconink/chad/internal/contract"
)

// ctxKey is a private type for context keys in this package.
type ctxKey int

const suppressProgressKey ctxKey = iota

// WithSuppressProgress returns a context that silences audit progress output.
// Used by the MCP server to keep stdio clean for the protocol.
func WithSuppressProgress(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressProgressKey, true)
}

func shouldSuppressProgress(ctx context.Context) bool {
	v, ok := ctx.Value(suppressProgressKey).(bool)
	return ok && v
}

// logProgress prints a progress line unless the context silences it.
func logProgress(ctx context.Context, format string, args ...any) {
	if shouldSuppressProgress(ctx) {
		return
	}
	fmt.Printf(format+"\n", args...)
}

// logAuditHeader announces the scan targets and budget.
func logAuditHeader(ctx context.Context, cfg *contract.Config, owners []string) {
	logProgress(ctx, "[SCAN] chad auditor -- scanning %s", strings.Join(owners, ", "))
	logProgress(ctx, "   Budget: %d API calls max", cfg.MaxAPICalls)
}
