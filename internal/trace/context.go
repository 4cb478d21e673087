package trace

import "context"

type ctxKey struct{}

// FromContext returns the tracer stored in ctx or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok {
		return t
	}
	return Nop
}

func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, ctxKey{}, t)
}

// SpanContext is the parent span handed down to nested work.
type SpanContext struct {
	SpanID uint64
	GID    uint64
}

type spanCtxKey struct{}

func CurrentSpan(ctx context.Context) SpanContext {
	if ctx == nil {
		return SpanContext{}
	}
	sc, _ := ctx.Value(spanCtxKey{}).(SpanContext)
	return sc
}

func WithSpanContext(ctx context.Context, sc SpanContext) context.Context {
	return context.WithValue(ctx, spanCtxKey{}, sc)
}

// WithSpan makes sp the parent of spans opened under the returned context.
func WithSpan(ctx context.Context, sp *Span) context.Context {
	if sp == nil || sp.id == 0 {
		return ctx
	}
	return WithSpanContext(ctx, SpanContext{SpanID: sp.id, GID: sp.gid})
}
