// Package trace is the front end's logging layer.
//
// Events are grouped into spans (begin/end pairs) tagged with a scope:
// the driver span covers one CLI command, pass spans cover a whole
// directory run and module spans cover lexing or parsing one file.
//
//	ctx = trace.WithTracer(ctx, tracer)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopeModule, "parse", parent)
//	defer sp.End("")
//
// Output goes to a stream (text or NDJSON), to an in-memory ring that is
// dumped when a command fails, or to both.
package trace
