package ctxutil

import "context"

type traceDataKey struct{}

type TraceData struct {
	TraceID   string
	RequestID string
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(ctx, traceDataKey{}, td)
}

func GetTraceData(ctx context.Context) *TraceData {
	val := ctx.Value(traceDataKey{})
	if td, ok := val.(*TraceData); ok {
		return td
	}
	return nil
}

type bearerKey struct{}

// WithBearer stores the caller's raw bearer credential. The token is never
// parsed here; it is forwarded verbatim to the store.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

func GetBearer(ctx context.Context) string {
	val := ctx.Value(bearerKey{})
	if tok, ok := val.(string); ok {
		return tok
	}
	return ""
}
