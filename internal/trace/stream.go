package trace

import (
	"io"
	"sync"
)

// StreamTracer writes every accepted event immediately.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	closer io.Closer // set only when the tracer owns w
	level  Level
	format Format
	run    string
}

func NewStreamTracer(w io.Writer, level Level, format Format, run string) *StreamTracer {
	return &StreamTracer{w: w, level: level, format: format, run: run}
}

func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope, ev.Kind) {
		return
	}
	ev.Seq = NextSeq()
	ev.Run = t.run
	data := FormatEvent(ev, t.format)

	t.mu.Lock()
	defer t.mu.Unlock()
	// ошибки записи трассы не должны ронять команду
	_, _ = t.w.Write(data) //nolint:errcheck
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if f, ok := t.w.(interface{ Sync() error }); ok && t.closer != nil {
		return f.Sync()
	}
	return nil
}

func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if t.closer != nil {
		return t.closer.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
