package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"snowball/internal/trace"
)

// activeTrace holds what finishTracing needs once Execute returns.
var activeTrace struct {
	tracer trace.Tracer
	span   *trace.Span
	format trace.Format
}

// setupTracing inspects trace-related flags, builds the tracer and opens the
// driver span for this invocation.
func setupTracing(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()

	traceOutput, err := pf.GetString("trace")
	if err != nil {
		return fmt.Errorf("failed to get trace flag: %w", err)
	}
	levelStr, err := pf.GetString("trace-level")
	if err != nil {
		return fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	formatStr, err := pf.GetString("trace-format")
	if err != nil {
		return fmt.Errorf("failed to get trace-format flag: %w", err)
	}
	modeStr, err := pf.GetString("trace-mode")
	if err != nil {
		return fmt.Errorf("failed to get trace-mode flag: %w", err)
	}
	ringSize, err := pf.GetInt("trace-ring-size")
	if err != nil {
		return fmt.Errorf("failed to get trace-ring-size flag: %w", err)
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return fmt.Errorf("invalid trace level: %w", err)
	}
	// --trace без уровня подразумевает phase
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return nil
	}

	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return fmt.Errorf("invalid trace format: %w", err)
	}
	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return fmt.Errorf("invalid trace mode: %w", err)
	}

	runID := uuid.NewString()
	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
		RunID:      runID,
	})
	if err != nil {
		return fmt.Errorf("failed to create tracer: %w", err)
	}

	span := trace.Begin(tracer, trace.ScopeDriver, cmd.CommandPath(), 0).WithExtra("run", runID)
	ctx = trace.WithSpan(trace.WithTracer(ctx, tracer), span)
	cmd.SetContext(ctx)

	activeTrace.tracer = tracer
	activeTrace.span = span
	activeTrace.format = format
	return nil
}

// finishTracing closes the driver span and the tracer. When the run failed
// and the tracer keeps a ring buffer, the ring is dumped to stderr.
func finishTracing(runErr error) {
	tracer := activeTrace.tracer
	if tracer == nil {
		return
	}
	detail := "ok"
	if runErr != nil {
		detail = "failed"
	}
	activeTrace.span.End(detail)

	if runErr != nil {
		if ring, ok := trace.RingOf(tracer); ok {
			fmt.Fprintln(os.Stderr, "trace: last events before failure:")
			if err := ring.Dump(os.Stderr, activeTrace.format); err != nil {
				fmt.Fprintf(os.Stderr, "trace: dump error: %v\n", err)
			}
		}
	}
	if err := tracer.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: flush error: %v\n", err)
	}
	if err := tracer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "trace: close error: %v\n", err)
	}
}
